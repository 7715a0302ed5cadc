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

// Package version provides the semantic-version range predicates that
// routecore attaches to endpoints.
//
// A Predicate answers one question: does a given request version (or the
// absence of one) fall within the range an endpoint was registered for?
// Predicates are immutable values built once at startup and compared for
// overlap before a route is allowed into the trie.
//
// # Basic Usage
//
//	p := version.All()
//	p.Matches(nil) // true
//
//	v1, _ := semver.NewVersion("1.2.3")
//	p = version.From(v1)
//	p.Matches(v1)   // true
//	p.Matches(nil)  // false
//
// # Half-Open Ranges
//
//	lo, _ := semver.NewVersion("2.0.0")
//	hi, _ := semver.NewVersion("3.0.0")
//	p, err := version.FromUntil(lo, hi) // [2.0.0, 3.0.0)
//
// FromUntil returns an error if lower is not strictly less than upper.
// The router package only receives already-built predicates, so handling
// that error is up to the code that constructs the predicate.
//
// # Overlap
//
// Two predicates Overlap if some version satisfies both. The router uses
// this to reject ambiguous registrations: two endpoints for the same
// method at the same trie node must never have overlapping predicates.
package version
