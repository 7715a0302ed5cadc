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

import "rivaas.dev/routecore/version"

// HandlerRef is the host's opaque handler reference. The core never
// inspects or invokes it; it only stores it and hands it back on a
// successful lookup. Interface values are cheap to copy, so a HandlerRef
// can be returned from Lookup without extra allocation.
type HandlerRef any

// ExtensionMode describes how an endpoint treats fields it does not
// recognize in a request body. The core does not interpret this value; it
// is carried so the host's body extractor can apply the right policy
// without a second lookup.
type ExtensionMode uint8

const (
	// ExtensionModeStrict rejects unknown fields.
	ExtensionModeStrict ExtensionMode = iota
	// ExtensionModeAllow silently ignores unknown fields.
	ExtensionModeAllow
)

// Endpoint is an immutable record describing one registered handler. The
// host constructs an Endpoint and hands it to Router.Insert; the router
// stores it without mutating it.
type Endpoint struct {
	// Handler is the opaque reference returned on a successful lookup.
	Handler HandlerRef

	// Method is the HTTP method this endpoint handles, compared
	// case-insensitively (the router upper-cases it at registration time).
	Method string

	// Path is the registration path, kept verbatim for diagnostics; the
	// router derives its own trie structure from it and never re-parses
	// this field for matching after Insert returns.
	Path string

	// OperationID is an opaque identifier for documentation generation.
	OperationID string

	// BodyContentType tags the expected request body encoding (e.g.
	// "application/json"); the core never parses bodies itself.
	BodyContentType string

	// RequestBodyMaxBytes caps the request body size the host should
	// accept before invoking Handler. Zero means the host's default.
	RequestBodyMaxBytes int64

	// Response is an opaque descriptor of the endpoint's response shape,
	// interpreted only by the host's documentation generator.
	Response any

	// Tags categorizes the endpoint for documentation generation.
	Tags []string

	// Deprecated marks the endpoint as deprecated without removing it.
	Deprecated bool

	// Hidden excludes the endpoint from generated documentation while
	// still routing requests to it.
	Hidden bool

	// ExtensionMode controls unknown-field handling in the request body.
	ExtensionMode ExtensionMode

	// Version is the semantic-version range this endpoint applies to.
	// The zero value behaves as version.All(); version.All() states an
	// unconstrained endpoint explicitly.
	Version version.Predicate
}

// Binding is the value extracted for one path variable. A variable segment
// produces a Binding with Wildcard false and Value set; a wildcard segment
// produces a Binding with Wildcard true and Components set (possibly to an
// empty, non-nil slice).
type Binding struct {
	Wildcard   bool
	Value      string
	Components []string
}

// Variables maps a registered variable or wildcard name to its extracted
// binding for one successful lookup.
type Variables map[string]Binding
