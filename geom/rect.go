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

// Rect is an axis-aligned bounding rectangle, generalizing the teacher's
// R2Rect to a plain value type (no spherical/lat-lng baggage) used solely
// to clip unbounded cell boundaries for presentation.
type Rect struct {
	Min, Max Point
}

// RectFromPoints returns the smallest Rect containing lo and hi, ordering
// coordinates so Min <= Max on both axes regardless of argument order.
func RectFromPoints(lo, hi Point) Rect {
	if lo.X > hi.X {
		lo.X, hi.X = hi.X, lo.X
	}
	if lo.Y > hi.Y {
		lo.Y, hi.Y = hi.Y, lo.Y
	}
	return Rect{Min: NewPoint(lo.X, lo.Y), Max: NewPoint(hi.X, hi.Y)}
}

// Contains reports whether p falls within r, inclusive of the boundary.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Clamp returns p moved onto r's boundary if it lies outside r, unchanged
// otherwise.
func (r Rect) Clamp(p Point) Point {
	x, y := p.X, p.Y
	switch {
	case x < r.Min.X:
		x = r.Min.X
	case x > r.Max.X:
		x = r.Max.X
	}
	switch {
	case y < r.Min.Y:
		y = r.Min.Y
	case y > r.Max.Y:
		y = r.Max.Y
	}
	return NewPoint(x, y)
}
