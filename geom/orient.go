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

// orientEps is the fixed epsilon spec §4.1 calls for in Orient, distinct
// from FuzzyCompare's relative epsilon used for coordinate comparisons.
const orientEps = 1e-9

// Orient returns the signed turn of the ordered triple (a, b, c): -1 if c is
// clockwise of (strictly right of) the directed line ab, +1 if c is
// counter-clockwise of (strictly left of) ab, 0 if the three are collinear
// within orientEps.
//
// Orient(a, b, c) == -Orient(b, a, c) for all a, b, c (antisymmetric under
// swapping the first two arguments).
func Orient(a, b, c Point) int {
	s := (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
	switch {
	case s < -orientEps:
		return -1
	case s > orientEps:
		return 1
	default:
		return 0
	}
}
