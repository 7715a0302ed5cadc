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

import (
	"fmt"
	"slices"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Router maps (method, path, optional version) to a registered Endpoint.
//
// A Router has two lifecycle phases. During the build phase, single
// goroutine startup code calls Insert; during the serve phase the router is
// read-only and Lookup/Endpoints are safe to call concurrently from many
// goroutines without external synchronization, since no field is written
// after Insert returns.
type Router struct {
	root               *node
	hasVersionedRoutes bool
}

// New returns an empty Router ready for Insert calls.
func New() *Router {
	return &Router{root: &node{}}
}

// Insert registers e into the trie. It panics on any programming error:
// a malformed registration path, an inconsistent variable name, or a
// version predicate that overlaps an existing endpoint for the same method
// at the same path. These are startup-time mistakes and are never reported
// to an HTTP client.
func (r *Router) Insert(e Endpoint) {
	segments := parseRegistrationPath(e.Path)
	method := strings.ToUpper(e.Method)

	cur := r.root
	seen := make(map[string]bool, len(segments))

	for _, seg := range segments {
		switch seg.kind {
		case segmentLiteral:
			cur = cur.findOrCreateLiteral(seg.literal)
		case segmentVar:
			if seen[seg.name] {
				panic(fmt.Sprintf("routecore: variable name %q used more than once in path %q", seg.name, e.Path))
			}
			seen[seg.name] = true
			cur = cur.findOrCreateVariable(seg.name, e.Path)
		case segmentWildcard:
			if seen[seg.name] {
				panic(fmt.Sprintf("routecore: variable name %q used more than once in path %q", seg.name, e.Path))
			}
			seen[seg.name] = true
			cur = cur.findOrCreateWildcard(seg.name, e.Path)
		}
	}

	cur.insertEndpoint(method, e)

	if !e.Version.IsAll() {
		r.hasVersionedRoutes = true
	}
}

// HasVersionedRoutes reports whether any registered endpoint has a version
// predicate other than version.All(). A host that serves a router for
// which this returns true must thread a request version into every
// Lookup call.
func (r *Router) HasVersionedRoutes() bool {
	return r.hasVersionedRoutes
}

// LookupResult is returned by a successful Lookup.
type LookupResult struct {
	Handler             HandlerRef
	OperationID         string
	Variables           Variables
	BodyContentType     string
	RequestBodyMaxBytes int64
}

// Lookup resolves method and rawPath (and, for versioned routers, v) to a
// registered endpoint.
//
// A nil v represents an unversioned lookup; only endpoints registered with
// version.All() can match it. Lookup performs no I/O and does not block. It
// allocates the decoded segment slice on every call, the variable-binding
// map once a variable or wildcard edge is taken, a copy of the remaining
// segments for a wildcard binding, and the Allow slice for a
// Method-Not-Allowed result.
func (r *Router) Lookup(method, rawPath string, v *semver.Version) (LookupResult, *LookupError) {
	segments, err := parseRequestPath(rawPath)
	if err != nil {
		return LookupResult{}, &LookupError{Status: StatusBadRequest, Err: err}
	}
	method = strings.ToUpper(method)

	cur := r.root
	var vars Variables

	matchedViaWildcard := false
walk:
	for i, seg := range segments {
		if child, ok := cur.literals[seg]; ok {
			cur = child
			continue
		}
		if cur.variable != nil {
			vars = bindVariable(vars, cur.variable.name, seg)
			cur = cur.variable.node
			continue
		}
		if cur.wildcard != nil {
			components := append([]string(nil), segments[i:]...)
			vars = bindWildcard(vars, cur.wildcard.name, components)
			cur = cur.wildcard.node
			matchedViaWildcard = true
			break walk
		}
		return LookupResult{}, &LookupError{Status: StatusNotFound}
	}

	// Step 3: a registration like /{p:.*} must match the empty path. If we
	// consumed every segment through literal/variable edges and landed on a
	// node with no explicit bucket for this method, but that node exposes a
	// wildcard edge, fall through into it with an empty component list.
	if !matchedViaWildcard && cur.wildcard != nil {
		if _, hasMethod := cur.methods[method]; !hasMethod {
			vars = bindWildcard(vars, cur.wildcard.name, []string{})
			cur = cur.wildcard.node
		}
	}

	endpoint, ok := selectEndpoint(cur.methods[method], v)
	if ok {
		return LookupResult{
			Handler:             endpoint.Handler,
			OperationID:         endpoint.OperationID,
			Variables:           vars,
			BodyContentType:     endpoint.BodyContentType,
			RequestBodyMaxBytes: endpoint.RequestBodyMaxBytes,
		}, nil
	}

	if allow := allowedMethods(cur.methods, v); len(allow) > 0 {
		return LookupResult{}, &LookupError{Status: StatusMethodNotAllowed, Allow: allow}
	}
	return LookupResult{}, &LookupError{Status: StatusNotFound}
}

// selectEndpoint returns the first endpoint in candidates whose version
// predicate matches v, per the version selector's small-linear-scan design:
// the insert-time overlap invariant guarantees at most one candidate can
// ever match.
func selectEndpoint(candidates []Endpoint, v *semver.Version) (Endpoint, bool) {
	for _, e := range candidates {
		if e.Version.Matches(v) {
			return e, true
		}
	}
	return Endpoint{}, false
}

// allowedMethods returns, sorted for a stable Allow header, every method key
// in methods that has at least one endpoint matching v.
func allowedMethods(methods map[string][]Endpoint, v *semver.Version) []string {
	var allow []string
	for m, candidates := range methods {
		if _, ok := selectEndpoint(candidates, v); ok {
			allow = append(allow, m)
		}
	}
	slices.Sort(allow)
	return allow
}

func bindVariable(vars Variables, name, value string) Variables {
	if vars == nil {
		vars = make(Variables)
	}
	vars[name] = Binding{Value: value}
	return vars
}

func bindWildcard(vars Variables, name string, components []string) Variables {
	if vars == nil {
		vars = make(Variables)
	}
	vars[name] = Binding{Wildcard: true, Components: components}
	return vars
}
