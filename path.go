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
	"net/url"
	"strings"
)

// parseRequestPath normalizes and percent-decodes the raw path component of
// a request URI into an ordered sequence of segments.
//
// Consecutive slashes collapse (empty segments are dropped), "." and ".."
// segments are rejected, and percent-decoding happens per segment so a
// decoded "%2F" never re-splits a segment. "/", "//", and "////" all
// normalize to an empty slice.
func parseRequestPath(raw string) ([]string, error) {
	parts := strings.Split(raw, "/")
	segments := make([]string, 0, len(parts))

	for _, part := range parts {
		if part == "" {
			continue
		}
		if part == "." || part == ".." {
			return nil, ErrDotSegment
		}

		decoded, err := url.PathUnescape(part)
		if err != nil {
			return nil, ErrInvalidPathEncoding
		}
		segments = append(segments, decoded)
	}

	return segments, nil
}
