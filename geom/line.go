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

package geom

import (
	"math"

	"github.com/blevesearch/voronoi/r2"
)

// Line is the implicit line Ax + By + C = 0. It carries no orientation: (A,
// B, C) and any non-zero multiple of it describe the same line.
type Line struct {
	A, B, C float64
}

// LineABC builds a line directly from its coefficients.
func LineABC(a, b, c float64) Line { return Line{a, b, c} }

// LineThrough returns the line through p and q.
func LineThrough(p, q Point) Line {
	a := q.Y - p.Y
	b := p.X - q.X
	c := -a*p.X - b*p.Y
	return Line{a, b, c}
}

// PerpendicularBisector returns the line through mid, perpendicular to the
// segment (p, q): the locus of points equidistant from p and q. This is the
// Voronoi bisector between two sites.
func PerpendicularBisector(p, q Point) Line {
	// The bisector is perpendicular to segment pq, so its own normal is
	// parallel to pq itself: n = q - p (not its Perp, which would instead
	// be the normal of the line THROUGH p and q).
	n := q.Vector().Sub(p.Vector())
	mid := p.Vector().Midpoint(q.Vector())
	c := -n.X*mid.X - n.Y*mid.Y
	return Line{n.X, n.Y, c}
}

// LineFromPointDirection returns the line through origin whose coefficients
// are (A, B) = dir, C = −(dir · origin), so dir is the line's normal. A
// directional endpoint stores its "direction" in this (A, B) form. This is the half-edge line
// reconstruction of spec §4.2's "exactly one end directional" case, where
// origin is the half-edge's finite endpoint and dir is the other (unbounded)
// endpoint's direction vector.
func LineFromPointDirection(origin Point, dir r2.Vector) Line {
	c := -(dir.X*origin.X + dir.Y*origin.Y)
	return Line{dir.X, dir.Y, c}
}

// IsParallel reports whether l and other never meet (including when they are
// the same line).
func (l Line) IsParallel(other Line) bool {
	return FuzzyEqual(l.A*other.B-other.A*l.B, 0)
}

// IsEqual reports whether l and other describe the same line.
func (l Line) IsEqual(other Line) bool {
	if !l.IsParallel(other) {
		return false
	}
	// Pick whichever coefficient pair is non-degenerate to cross-check scale.
	if !FuzzyEqual(l.A, 0) || !FuzzyEqual(other.A, 0) {
		return FuzzyEqual(l.A*other.C, other.A*l.C)
	}
	return FuzzyEqual(l.B*other.C, other.B*l.C)
}

// Intersect returns the point where l and other cross, and false if they are
// parallel. Division is taken on whichever axis avoids a near-zero
// denominator, mirroring the fixed-point at infinity the driver never needs
// to construct directly.
func (l Line) Intersect(other Line) (Point, bool) {
	denom := l.A*other.B - other.A*l.B
	if FuzzyEqual(denom, 0) {
		return Point{}, false
	}
	px := (l.B*other.C - other.B*l.C) / denom
	var py float64
	if !FuzzyEqual(l.B, 0) {
		py = (-l.C - l.A*px) / l.B
	} else {
		py = (-other.C - other.A*px) / other.B
	}
	return NewPoint(px, py), true
}

// At returns the point on l with the given X, assuming l is not vertical.
func (l Line) At(x float64) (Point, bool) {
	if FuzzyEqual(l.B, 0) {
		return Point{}, false
	}
	return NewPoint(x, (-l.C-l.A*x)/l.B), true
}

// Value returns Ax + By + C, whose sign tells which side of l a point falls
// on: negative, zero (on the line, within FuzzyCompare's epsilon), positive.
func (l Line) Value(p Point) float64 { return l.A*p.X + l.B*p.Y + l.C }

// Side returns the sign of l.Value(p), fuzzily: -1, 0, or 1.
func (l Line) Side(p Point) int { return FuzzyCompare(l.Value(p), 0) }

// Length is the Euclidean norm of l's (A, B) normal vector, used to scale
// Value into an approximate distance when comparing across different lines.
func (l Line) Length() float64 { return math.Hypot(l.A, l.B) }
