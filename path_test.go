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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRequestPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		raw      string
		expected []string
	}{
		{name: "root", raw: "/", expected: []string{}},
		{name: "double slash root", raw: "//", expected: []string{}},
		{name: "quadruple slash root", raw: "////", expected: []string{}},
		{name: "single segment", raw: "/users", expected: []string{"users"}},
		{name: "collapses consecutive slashes", raw: "/users//42", expected: []string{"users", "42"}},
		{name: "trailing slash dropped", raw: "/users/42/", expected: []string{"users", "42"}},
		{
			name:     "percent-decoded segment never re-splits",
			raw:      "/files/a%2Fb",
			expected: []string{"files", "a/b"},
		},
		{
			name:     "decodes space",
			raw:      "/users/john%20doe",
			expected: []string{"users", "john doe"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := parseRequestPath(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseRequestPathRejectsDotSegments(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"/.", "/..", "/users/../admin", "/./users"} {
		_, err := parseRequestPath(raw)
		assert.ErrorIs(t, err, ErrDotSegment, "path %q", raw)
	}
}

func TestParseRequestPathRejectsInvalidEncoding(t *testing.T) {
	t.Parallel()

	_, err := parseRequestPath("/users/%zz")
	assert.ErrorIs(t, err, ErrInvalidPathEncoding)
}

// FuzzParseRequestPath fuzzes parseRequestPath with arbitrary raw paths.
// This fuzz test ensures the parser never panics, even with malformed or
// adversarial input, and that it produces exactly one segment per
// non-empty "/"-delimited part of the raw path (a decoded "%2F" must never
// re-split a segment).
func FuzzParseRequestPath(f *testing.F) {
	f.Add("/")
	f.Add("//")
	f.Add("")
	f.Add("/users")
	f.Add("/users/42")
	f.Add("/users//42")
	f.Add("/users/42/")
	f.Add("/users/%2F")
	f.Add("/users/%2e%2e")
	f.Add("/./users")
	f.Add("/../users")
	f.Add("/users/%zz")
	f.Add("/users/%")
	f.Add("/users/john%20doe")
	f.Add("/\x00/users")
	f.Add("/very/long/path/with/many/segments/that/might/cause/issues")

	f.Fuzz(func(t *testing.T, raw string) {
		segments, err := parseRequestPath(raw)
		if err != nil {
			return
		}
		nonEmpty := 0
		for _, part := range strings.Split(raw, "/") {
			if part != "" {
				nonEmpty++
			}
		}
		assert.Len(t, segments, nonEmpty, "a decoded %2F must never re-split a segment")
	})
}
