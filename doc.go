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

// Package routecore provides the request routing core for versioned REST
// APIs: a trie that maps (method, path, optional API version) to a
// registered endpoint while extracting named path variables.
//
// This package deliberately does not listen on a socket, invoke handlers,
// or parse request bodies — it is the pure data structure an HTTP layer
// calls into. See the sibling version package for the semantic-version
// range predicates endpoints are registered with.
//
// # Key Features
//
//   - Literal, variable ("{name}"), and wildcard ("{name:.*}") path
//     segments with literal > variable > wildcard match priority
//   - Per-endpoint semantic-version ranges, with overlap rejection at
//     registration time
//   - Not-Found vs. Method-Not-Allowed disambiguation with a correct,
//     version-aware Allow list
//   - A read-only, lock-free lookup path safe for concurrent use once
//     registration is complete
//   - Deterministic endpoint enumeration for documentation generators
//
// # Registration
//
//	r := routecore.New()
//	r.Insert(routecore.Endpoint{
//	    Method:  "GET",
//	    Path:    "/projects/{id}",
//	    Version: version.All(),
//	    Handler: getProjectHandler,
//	})
//
// # Lookup
//
//	result, lookupErr := r.Lookup("GET", "/projects/42", nil)
//	if lookupErr != nil {
//	    // lookupErr.Status is 400, 404, or 405; lookupErr.Allow is set for 405
//	}
//	id := result.Variables["id"].Value
//
// # Registration Errors
//
// Insert panics on programming errors: malformed registration paths,
// inconsistent variable names, or overlapping version ranges for the same
// method at the same path. These are startup-time mistakes, never
// conditions recoverable at request time.
package routecore
