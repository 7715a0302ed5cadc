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
	"iter"
	"slices"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// EndpointView is one endpoint surfaced by Router.Endpoints, paired with the
// reconstructed registration-style path it was reached by.
type EndpointView struct {
	Path     string
	Method   string
	Endpoint *Endpoint
}

// Endpoints returns an iterator over every registered endpoint in
// deterministic preorder: at each node, methods are visited in sorted
// order, then the node's literal children in label-sorted order, then its
// variable child, then its wildcard child.
//
// A nil v yields every endpoint regardless of version. A non-nil v yields
// only endpoints whose version predicate matches it; this is what a
// documentation generator uses to render the surface of one API version.
//
// Endpoints never mutates the router and is safe to call concurrently with
// Lookup and with other Endpoints calls.
func (r *Router) Endpoints(v *semver.Version) iter.Seq[EndpointView] {
	return func(yield func(EndpointView) bool) {
		walkEndpoints(r.root, nil, v, yield)
	}
}

// walkEndpoints performs the preorder traversal, stopping early if yield
// returns false. segments accumulates the path-so-far as registration-style
// tokens ("{name}" or "{name:.*}" for variable and wildcard edges).
func walkEndpoints(n *node, segments []string, v *semver.Version, yield func(EndpointView) bool) bool {
	if n == nil {
		return true
	}

	path := "/" + strings.Join(segments, "/")

	methods := make([]string, 0, len(n.methods))
	for m := range n.methods {
		methods = append(methods, m)
	}
	slices.Sort(methods)

	for _, m := range methods {
		for i := range n.methods[m] {
			e := &n.methods[m][i]
			if v != nil && !e.Version.Matches(v) {
				continue
			}
			if !yield(EndpointView{Path: path, Method: m, Endpoint: e}) {
				return false
			}
		}
	}

	literals := make([]string, 0, len(n.literals))
	for label := range n.literals {
		literals = append(literals, label)
	}
	slices.Sort(literals)

	for _, label := range literals {
		if !walkEndpoints(n.literals[label], append(segments, label), v, yield) {
			return false
		}
	}

	if n.variable != nil {
		if !walkEndpoints(n.variable.node, append(segments, "{"+n.variable.name+"}"), v, yield) {
			return false
		}
	}

	if n.wildcard != nil {
		if !walkEndpoints(n.wildcard.node, append(segments, "{"+n.wildcard.name+":.*}"), v, yield) {
			return false
		}
	}

	return true
}
