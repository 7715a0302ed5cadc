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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRegistrationPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		path     string
		expected []segment
	}{
		{
			name:     "root",
			path:     "/",
			expected: []segment{},
		},
		{
			name:     "single literal",
			path:     "/users",
			expected: []segment{{kind: segmentLiteral, literal: "users"}},
		},
		{
			name: "literal and variable",
			path: "/users/{id}",
			expected: []segment{
				{kind: segmentLiteral, literal: "users"},
				{kind: segmentVar, name: "id"},
			},
		},
		{
			name: "trailing wildcard",
			path: "/files/{path:.*}",
			expected: []segment{
				{kind: segmentLiteral, literal: "files"},
				{kind: segmentWildcard, name: "path"},
			},
		},
		{
			name:     "tolerated trailing slash",
			path:     "/users/",
			expected: []segment{{kind: segmentLiteral, literal: "users"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := parseRegistrationPath(tt.path)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseRegistrationPathPanics(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		path string
	}{
		{"missing leading slash", "users"},
		{"empty segment", "/users//profile"},
		{"unbalanced open brace", "/users/{id"},
		{"unbalanced close brace", "/users/id}"},
		{"empty variable name", "/users/{}"},
		{"unsupported pattern", "/users/{id:[0-9]+}"},
		{"wildcard not last", "/files/{path:.*}/meta"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Panics(t, func() {
				parseRegistrationPath(tt.path)
			})
		})
	}
}

func TestParseRegistrationSegmentVariable(t *testing.T) {
	t.Parallel()

	seg := parseRegistrationSegment("{id}", "/users/{id}")
	require.Equal(t, segmentVar, seg.kind)
	assert.Equal(t, "id", seg.name)
}
