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

// Package voronoi implements the divide-and-conquer Voronoi merge: the
// monotone seam walk that stitches two halves' cell boundaries together
// along the upper bridge of their merged hull, plus the recursive driver
// that ties the hull and Voronoi merges together.
package voronoi

import (
	"github.com/blevesearch/voronoi/dcel"
	"github.com/blevesearch/voronoi/geom"
)

// cursor is one side's walking state as the seam descends: which cell it
// is currently inside, which edge of that cell it is scanning, the edge at
// which it entered the cell (so the new chain can later be spliced at that
// point), whether the walk has passed the cell's head pointer, and the
// latest candidate intersection with the seam.
type cursor struct {
	cell        *dcel.Cell
	cp          *geom.Point
	top         *dcel.HalfEdge
	edge        *dcel.HalfEdge
	headSkipped bool
	clockwise   bool
}

func newCursor(cell *dcel.Cell, clockwise bool) *cursor {
	return &cursor{cell: cell, edge: cell.Head, clockwise: clockwise}
}

// set re-anchors the cursor after crossing into a new cell through newEdge.
func (c *cursor) set(newEdge *dcel.HalfEdge) {
	c.cell = newEdge.Cell
	c.top = newEdge
	c.edge = newEdge
	c.cp = nil
	c.headSkipped = false
}

func (c *cursor) move() {
	if c.clockwise {
		if c.edge == c.cell.Head {
			c.headSkipped = true
		}
		c.edge = c.edge.Prev
	} else {
		c.edge = c.edge.Next
		if c.edge == c.cell.Head {
			c.headSkipped = true
		}
	}
}

// intersection scans the cell's boundary once for the lowest intersection
// of an edge with seam that is strictly below last (break ties by larger
// x). If the intersection lands on an existing endpoint, cp snaps to that
// endpoint's identity and the cursor advances past it.
func (c *cursor) intersection(seam geom.Line, last *geom.Point) {
	c.cp = nil
	if c.edge == nil {
		return
	}
	start := c.edge
	for {
		if p, ok := c.edge.Line().Intersect(seam); ok {
			cmpY := -1
			if last != nil {
				cmpY = geom.FuzzyCompare(p.Y, last.Y)
			}
			if (cmpY < 0 || (cmpY == 0 && geom.FuzzyCompare(p.X, last.X) > 0)) && c.edge.OnEdge(p) {
				s, e := c.edge.GetStart(), c.edge.GetEnd()
				switch {
				case s != nil && p.FuzzyEquals(*s):
					c.cp = s
					if c.clockwise {
						c.move()
					}
				case e != nil && p.FuzzyEquals(*e):
					c.cp = e
					if !c.clockwise {
						c.move()
					}
				default:
					pp := p
					c.cp = &pp
				}
				return
			}
		}
		c.move()
		if c.edge == start {
			return
		}
	}
}
