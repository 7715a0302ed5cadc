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

package version

import "errors"

// Static errors for predicate construction. These are the only errors this
// package returns; everything else is a pure value comparison.
var (
	// ErrLowerNotBelowUpper is returned by FromUntil when lower is not
	// strictly less than upper.
	ErrLowerNotBelowUpper = errors.New("version: lower bound must be strictly less than upper bound")
)
