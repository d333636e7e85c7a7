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

package hull

import "github.com/blevesearch/voronoi/geom"

// FindRightChain locates, on the cyclic ring r, the pair of nodes that are
// the clockwise and counter-clockwise tangent points as seen from p, which
// must lie strictly to the left of r's x-range.
//
// Open question: this walk has no termination guard if r is not actually a
// convex polygon in ccw order (see the upstream design notes); callers
// must ensure that precondition holds.
func FindRightChain(p geom.Point, r *Node) (cw, ccw *Node) {
	if r == r.Next {
		return r, r
	}
	if r.Next == r.Prev {
		if geom.Orient(p, r.Site, r.Next.Site) < 0 {
			return r.Next, r
		}
		return r, r.Next
	}
	current := r
	for cw == nil || ccw == nil {
		prevOrient := geom.Orient(p, current.Site, current.Prev.Site)
		nextOrient := geom.Orient(p, current.Site, current.Next.Site)
		if cw == nil && prevOrient > 0 && nextOrient >= 0 {
			cw = current
		}
		if ccw == nil && prevOrient <= 0 && nextOrient < 0 {
			ccw = current
		}
		current = current.Next
	}
	return cw, ccw
}

// Merge fuses the two hulls left and right (each a ccw cyclic ring built
// from a contiguous, disjoint x-sorted half) across their common tangents,
// returning the merged ring's head, the lower bridge, and the upper bridge
// — the pair of sites the Voronoi seam walk starts from.
func Merge(left, right *Node) (merged *Node, lower, upper Bridge) {
	cw, ccw := FindRightChain(left.Site, right)

	var l, r *Node
	if left.Next != left {
		l = left.Next
	}
	r = cw

	m := []*Node{left}
	low, up := 0, 0

	for l != nil || r != nil {
		var curr *Node
		rside := l == nil || (r != nil && geom.Orient(left.Site, l.Site, r.Site) < 0)
		if rside {
			curr = r
			if r == ccw {
				r = nil
			} else {
				r = r.Next
			}
		} else {
			curr = l
			if l.Next == left {
				l = nil
			} else {
				l = l.Next
			}
		}
		for len(m) >= 2 && geom.Orient(m[len(m)-2].Site, m[len(m)-1].Site, curr.Site) <= 0 {
			m = m[:len(m)-1]
		}
		if m[len(m)-1].Next != curr {
			if rside {
				low = len(m) - 1
			} else {
				up = len(m) - 1
			}
		}
		m = append(m, curr)
	}

	if len(m) > 2 && geom.Orient(m[len(m)-2].Site, m[len(m)-1].Site, m[0].Site) <= 0 {
		m = m[:len(m)-1]
	}
	if m[len(m)-1].Next != m[0] {
		up = len(m) - 1
	}
	up2 := (up + 1) % len(m)

	upper = Bridge{First: m[up].Site, Second: m[up2].Site}
	if geom.Orient(m[up].Site, m[up].Next.Site, m[up2].Site) == 0 {
		upper.First = m[up].Next.Site
	}
	if geom.Orient(m[up].Site, m[up2].Prev.Site, m[up2].Site) == 0 {
		upper.Second = m[up2].Prev.Site
	}

	lower = Bridge{First: m[low].Site, Second: m[low+1].Site}
	if geom.Orient(m[low].Site, m[low].Next.Site, m[low+1].Site) == 0 {
		lower.First = m[low].Next.Site
	}
	if geom.Orient(m[low].Site, m[low+1].Prev.Site, m[low+1].Site) == 0 {
		lower.Second = m[low+1].Prev.Site
	}

	m[low].Next = m[low+1]
	m[low+1].Prev = m[low]
	m[up].Next = m[up2]
	m[up2].Prev = m[up]

	return m[0], lower, upper
}
