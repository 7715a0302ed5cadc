// Copyright 2025 The Rivaas Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package routecore

import "fmt"

// variableEdge is a node's single outgoing variable transition. Every
// endpoint that reaches a node through its variable edge agrees on name
// (invariant 1).
type variableEdge struct {
	name string
	node *node
}

// wildcardEdge is a node's single outgoing wildcard transition. Its node is
// always terminal: it has no literals, variable, or wildcard of its own
// (invariant 2), so lookup code that reaches a wildcard node never needs to
// check for further children.
type wildcardEdge struct {
	name string
	node *node
}

// node is one state in the route trie. literals, variable, and wildcard are
// mutually exclusive transitions tried in that priority order during
// lookup; methods holds the endpoints registered at this exact node.
//
// Thread safety: node is mutated only by Router.Insert during the build
// phase. Once the router is handed to request-serving code, no field here
// is written again — lookups are pure reads, so no node requires locking.
type node struct {
	methods  map[string][]Endpoint
	literals map[string]*node
	variable *variableEdge
	wildcard *wildcardEdge
}

// findOrCreateLiteral returns n's child for the literal label, creating it
// if absent.
func (n *node) findOrCreateLiteral(label string) *node {
	if n.literals == nil {
		n.literals = make(map[string]*node)
	}
	child, ok := n.literals[label]
	if !ok {
		child = &node{}
		n.literals[label] = child
	}
	return child
}

// findOrCreateVariable returns n's variable child for name, enforcing
// invariant 1: a node may carry at most one variable name, and every
// insertion through this node must agree on it.
func (n *node) findOrCreateVariable(name, path string) *node {
	if n.variable == nil {
		n.variable = &variableEdge{name: name, node: &node{}}
		return n.variable.node
	}
	if n.variable.name != name {
		panic(fmt.Sprintf(
			"routecore: attempted to use variable name %q, but a different name (%q) has already been used for this path segment in %q",
			name, n.variable.name, path))
	}
	return n.variable.node
}

// findOrCreateWildcard returns n's wildcard child for name, enforcing the
// same name-consistency rule as findOrCreateVariable.
func (n *node) findOrCreateWildcard(name, path string) *node {
	if n.wildcard == nil {
		n.wildcard = &wildcardEdge{name: name, node: &node{}}
		return n.wildcard.node
	}
	if n.wildcard.name != name {
		panic(fmt.Sprintf(
			"routecore: attempted to use variable name %q, but a different name (%q) has already been used for this path segment in %q",
			name, n.wildcard.name, path))
	}
	return n.wildcard.node
}

// insertEndpoint adds e to n's method bucket, enforcing invariant 4: no two
// endpoints for the same method at the same node may have overlapping
// version predicates.
func (n *node) insertEndpoint(method string, e Endpoint) {
	if n.methods == nil {
		n.methods = make(map[string][]Endpoint)
	}

	for _, existing := range n.methods[method] {
		if existing.Version.Equals(e.Version) {
			panic(fmt.Sprintf("routecore: attempted to create duplicate route for method %q at path %q", method, e.Path))
		}
		if existing.Version.Overlaps(e.Version) {
			panic(fmt.Sprintf("routecore: attempted to register multiple handlers for method %q with overlapping version ranges at path %q", method, e.Path))
		}
	}

	n.methods[method] = append(n.methods[method], e)
}
