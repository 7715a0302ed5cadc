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
	"errors"
	"fmt"
)

// Static errors for the request-time miss channel. Programming errors
// raised during Insert are not in this table: they panic with a message
// built at the call site so it can quote the offending path verbatim.
var (
	// ErrDotSegment is the underlying reason for a Bad-Request lookup
	// error caused by a "." or ".." path segment.
	ErrDotSegment = errors.New("routecore: dot-segments are not permitted")

	// ErrInvalidPathEncoding is the underlying reason for a Bad-Request
	// lookup error caused by malformed percent-encoding.
	ErrInvalidPathEncoding = errors.New("routecore: invalid path encoding")
)

// Status is the HTTP status a LookupError should be reported as. The core
// never originates any status outside this set.
type Status int

// The three miss kinds the router can produce, per the error classifier.
const (
	StatusBadRequest       Status = 400
	StatusNotFound         Status = 404
	StatusMethodNotAllowed Status = 405
)

func (s Status) String() string {
	switch s {
	case StatusBadRequest:
		return "Bad Request"
	case StatusNotFound:
		return "Not Found"
	case StatusMethodNotAllowed:
		return "Method Not Allowed"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// LookupError is returned by Router.Lookup when no handler can be resolved.
// A Not-Found error never carries variable bindings; a Method-Not-Allowed
// error always carries the full set of version-matching sibling methods at
// the resolved node, per the Allow-header-completeness property.
type LookupError struct {
	Status Status
	// Allow lists, for a StatusMethodNotAllowed error, every method with at
	// least one endpoint at the resolved node that matches the requested
	// version. It is nil for any other status.
	Allow []string
	// Err is the underlying reason, set for StatusBadRequest.
	Err error
}

func (e *LookupError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("routecore: %s: %v", e.Status, e.Err)
	}
	return fmt.Sprintf("routecore: %s", e.Status)
}

func (e *LookupError) Unwrap() error {
	return e.Err
}
