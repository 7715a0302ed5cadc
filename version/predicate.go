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

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// kind identifies which range shape a Predicate holds.
type kind uint8

const (
	kindAll kind = iota
	kindFrom
	kindUntil
	kindFromUntil
)

// Predicate describes the inclusive/exclusive range of semantic versions an
// endpoint applies to. The zero value behaves exactly as All(); use All,
// From, Until, or FromUntil to construct one explicitly.
//
// Predicate is an immutable value type: comparisons never mutate it, and it
// is safe to share across goroutines once constructed.
type Predicate struct {
	kind  kind
	lower *semver.Version // inclusive, nil unless kind is From or FromUntil
	upper *semver.Version // exclusive, nil unless kind is Until or FromUntil
}

// All returns the distinguished predicate that matches every version,
// including an unversioned (nil) lookup.
func All() Predicate {
	return Predicate{kind: kindAll}
}

// From returns a predicate matching any version greater than or equal to
// lower. It never matches an unversioned lookup.
func From(lower *semver.Version) Predicate {
	return Predicate{kind: kindFrom, lower: lower}
}

// Until returns a predicate matching any version strictly less than upper.
// It never matches an unversioned lookup.
func Until(upper *semver.Version) Predicate {
	return Predicate{kind: kindUntil, upper: upper}
}

// FromUntil returns a predicate matching any version v with
// lower <= v < upper. It never matches an unversioned lookup.
//
// FromUntil returns ErrLowerNotBelowUpper if lower is not strictly less than
// upper; callers that treat this as a programming error should panic on a
// non-nil error.
func FromUntil(lower, upper *semver.Version) (Predicate, error) {
	if !lower.LessThan(upper) {
		return Predicate{}, fmt.Errorf("%w: %s is not less than %s", ErrLowerNotBelowUpper, lower, upper)
	}
	return Predicate{kind: kindFromUntil, lower: lower, upper: upper}, nil
}

// IsAll reports whether p is the distinguished All predicate.
func (p Predicate) IsAll() bool {
	return p.kind == kindAll
}

// Matches reports whether p admits the request version v. A nil v represents
// an unversioned lookup, which only All matches.
func (p Predicate) Matches(v *semver.Version) bool {
	if p.kind == kindAll {
		return true
	}
	if v == nil {
		return false
	}
	switch p.kind {
	case kindFrom:
		return !v.LessThan(p.lower)
	case kindUntil:
		return v.LessThan(p.upper)
	case kindFromUntil:
		return !v.LessThan(p.lower) && v.LessThan(p.upper)
	default:
		return false
	}
}

// Overlaps reports whether some version satisfies both p and other. All
// overlaps with everything, including itself.
func (p Predicate) Overlaps(other Predicate) bool {
	if p.kind == kindAll || other.kind == kindAll {
		return true
	}

	// Reduce both predicates to an optional lower/upper bound (nil meaning
	// unbounded in that direction) and test whether the two intervals
	// intersect.
	pLower, pUpper := p.bounds()
	oLower, oUpper := other.bounds()

	// The intervals fail to intersect iff one's upper bound is at or below
	// the other's lower bound.
	if pUpper != nil && oLower != nil && !oLower.LessThan(pUpper) {
		return false
	}
	if oUpper != nil && pLower != nil && !pLower.LessThan(oUpper) {
		return false
	}
	return true
}

// bounds returns p's inclusive lower and exclusive upper bound, with nil
// meaning unbounded in that direction. All is never passed to bounds by
// Overlaps (it short-circuits first), so bounds need not handle kindAll.
func (p Predicate) bounds() (lower, upper *semver.Version) {
	switch p.kind {
	case kindFrom:
		return p.lower, nil
	case kindUntil:
		return nil, p.upper
	case kindFromUntil:
		return p.lower, p.upper
	default:
		return nil, nil
	}
}

// Equals reports whether p and other describe the identical range.
func (p Predicate) Equals(other Predicate) bool {
	if p.kind != other.kind {
		return false
	}
	switch p.kind {
	case kindAll:
		return true
	case kindFrom:
		return p.lower.Equal(other.lower)
	case kindUntil:
		return p.upper.Equal(other.upper)
	case kindFromUntil:
		return p.lower.Equal(other.lower) && p.upper.Equal(other.upper)
	default:
		return false
	}
}

// String renders the predicate for diagnostics and panic messages.
func (p Predicate) String() string {
	switch p.kind {
	case kindAll:
		return "all versions"
	case kindFrom:
		return fmt.Sprintf(">=%s", p.lower)
	case kindUntil:
		return fmt.Sprintf("<%s", p.upper)
	case kindFromUntil:
		return fmt.Sprintf(">=%s, <%s", p.lower, p.upper)
	default:
		return "invalid predicate"
	}
}
