// Copyright 2025 The S2 Geometry Project Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package geom implements the planar primitives shared by the hull and
// Voronoi packages: a fuzzy-comparison point type with optional directional
// endpoints, oriented-area tests, and the line algebra (construction,
// parallelism, intersection, perpendicular bisector) that the half-edge
// model builds on.
package geom

import (
	"fmt"
	"math"

	"github.com/blevesearch/voronoi/r2"
)

// epsBase is the relative-epsilon scale used by FuzzyCompare. Design note:
// the source this package generalizes mixed absolute and relative epsilons
// across files; the relative form is the one kept here as the single policy
// for coordinate comparisons (Orient keeps its own fixed epsilon, see below).
const epsBase = 1e-9

// Kind tags what a Point's (X, Y) pair means. A half-edge endpoint can be an
// ordinary location, a direction at infinity, or (transiently, while both
// ends of a half-edge are unbounded) a line origin.
type Kind int8

const (
	// Finite marks an ordinary, bounded endpoint: (X, Y) is a location.
	Finite Kind = 0

	// DirQ1..DirQ4 mark an endpoint at infinity in the given quadrant;
	// (X, Y) carries the carrying line's (A, B) coefficients.
	DirQ1 Kind = 1
	DirQ2 Kind = 2
	DirQ3 Kind = 3
	DirQ4 Kind = 4

	// OriginQ1..OriginQ4 mark the transient "both ends at infinity" form:
	// X carries the line's constant c (see Line), Y is unused.
	OriginQ1 Kind = -1
	OriginQ2 Kind = -2
	OriginQ3 Kind = -3
	OriginQ4 Kind = -4
)

// IsFinite reports whether k represents a bounded endpoint.
func (k Kind) IsFinite() bool { return k == Finite }

// IsDir reports whether k represents a direction-at-infinity endpoint.
func (k Kind) IsDir() bool { return k > 0 }

// IsOrigin reports whether k represents a transient line-origin endpoint.
func (k Kind) IsOrigin() bool { return k < 0 }

// Quadrant returns the 1-4 quadrant number a Dir or Origin kind encodes,
// with 0 for Finite.
func (k Kind) Quadrant() int {
	if k < 0 {
		return int(-k)
	}
	return int(k)
}

// Point is a tagged coordinate pair: a finite site or half-edge endpoint, a
// directional endpoint at infinity, or a transient line-origin endpoint.
//
// Attr and Index are carried for callers, never inspected by this package:
// Attr lets an external height/texture provider (see the terrain collaborator
// this module excludes) tag a site without the core depending on it; Index
// is assigned by the driver after sorting and deduplication and gives it a
// stable key into its parallel slice of cells.
type Point struct {
	X, Y  float64
	Kind  Kind
	Attr  any
	Index int
}

// NewPoint returns a finite point at (x, y).
func NewPoint(x, y float64) Point {
	return Point{X: x, Y: y, Kind: Finite}
}

// Vector returns p's coordinates as an r2.Vector, discarding Kind/Attr/Index.
func (p Point) Vector() r2.Vector { return r2.Vector{X: p.X, Y: p.Y} }

func (p Point) String() string {
	switch {
	case p.Kind.IsFinite():
		return fmt.Sprintf("(%g, %g)", p.X, p.Y)
	case p.Kind.IsDir():
		return fmt.Sprintf("dir(%g, %g)@Q%d", p.X, p.Y, p.Kind.Quadrant())
	default:
		return fmt.Sprintf("origin(c=%g)@Q%d", p.X, p.Kind.Quadrant())
	}
}

// FuzzyCompare implements the three-valued relative-epsilon comparison of
// spec §4.1: eps(b) = (|b|+1)*epsBase, returning -1/0/+1 for a<b, a==b, a>b.
func FuzzyCompare(a, b float64) int {
	eps := (math.Abs(b) + 1) * epsBase
	diff := a - b
	switch {
	case diff < -eps:
		return -1
	case diff > eps:
		return 1
	default:
		return 0
	}
}

// FuzzyEqual reports whether a and b are equal within FuzzyCompare's epsilon.
func FuzzyEqual(a, b float64) bool { return FuzzyCompare(a, b) == 0 }

// FuzzyLess reports whether a is fuzzily less than b.
func FuzzyLess(a, b float64) bool { return FuzzyCompare(a, b) < 0 }

// FuzzyEquals reports whether p and q represent the same location, comparing
// both coordinates with FuzzyCompare. Only meaningful for finite points.
func (p Point) FuzzyEquals(q Point) bool {
	return FuzzyEqual(p.X, q.X) && FuzzyEqual(p.Y, q.Y)
}

// Less orders points lexicographically by (X, Y), the order the recursive
// driver sorts input sites by before recursing (spec §4.6).
func (p Point) Less(q Point) bool { return p.Vector().LessThan(q.Vector()) }

// DistSqr returns the squared Euclidean distance between p and q.
func (p Point) DistSqr(q Point) float64 {
	dx, dy := p.X-q.X, p.Y-q.Y
	return dx*dx + dy*dy
}
