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

// Package dcel implements the half-edge (doubly-connected edge list) model
// that records a Voronoi diagram's cell boundaries: cells own a cyclic
// boundary of half-edges whose endpoints may be ordinary locations or
// directions at infinity.
package dcel

import "github.com/blevesearch/voronoi/geom"

// Cell is the Voronoi region of a single site. Head is any half-edge on the
// cell's boundary, or nil before the cell has been given a boundary.
type Cell struct {
	Site geom.Point
	Head *HalfEdge
}

// NewCell returns an empty cell for site.
func NewCell(site geom.Point) *Cell {
	return &Cell{Site: site}
}

// HalfEdge is one directed side of an undirected Voronoi edge. source is
// shared with whichever sibling half-edge describes the same physical
// point, so that splitting an edge or promoting a directional endpoint to
// finite stays consistent across every half-edge that references it.
type HalfEdge struct {
	source     *geom.Point
	Twin       *HalfEdge
	Next, Prev *HalfEdge
	Cell       *Cell
}

// CreateEdge builds a twin pair of half-edges carrying line l, with left
// owning the edge directed from p1 to p2 and right owning the reverse. A
// nil p1 or p2 fabricates a directional endpoint at infinity: the quadrant
// is chosen by the sign of l.A*l.B, with l.A == 0 treated like a positive
// product. If both are nil, p2 becomes a transient
// ORIGIN endpoint carrying the line's constant. The two half-edges form a
// self-looping cycle until spliced into their cells.
func CreateEdge(p1, p2 *geom.Point, l geom.Line, left, right *Cell) (*HalfEdge, *HalfEdge) {
	q := 4
	if !((l.A > 0 && l.B > 0) || (l.A < 0 && l.B < 0) || geom.FuzzyEqual(l.A, 0)) {
		q = 3
	}
	if p1 == nil {
		p1 = &geom.Point{X: l.A, Y: l.B, Kind: geom.Kind(q - 2)}
		if p2 == nil {
			p2 = &geom.Point{X: l.C, Y: 0, Kind: geom.Kind(-q)}
		}
	} else if p2 == nil {
		p2 = &geom.Point{X: l.A, Y: l.B, Kind: geom.Kind(q)}
	}

	leftEdge := &HalfEdge{source: p1, Cell: left}
	rightEdge := &HalfEdge{source: p2, Cell: right}
	leftEdge.Twin = rightEdge
	rightEdge.Next, rightEdge.Prev = rightEdge, rightEdge
	rightEdge.Twin = leftEdge
	leftEdge.Next, leftEdge.Prev = leftEdge, leftEdge
	return leftEdge, rightEdge
}

// RawStart returns h's start endpoint as stored, finite or not: callers
// presenting unbounded rays (see voronoiio.ClipToRect) need the direction
// carried by a DIR or ORIGIN kind, which GetStart discards.
func (h *HalfEdge) RawStart() geom.Point { return *h.source }

// RawEnd returns h's end endpoint as stored, finite or not.
func (h *HalfEdge) RawEnd() geom.Point { return *h.Twin.source }

// GetStart returns h's start point if finite, nil if it is at infinity.
func (h *HalfEdge) GetStart() *geom.Point {
	if h.source.Kind.IsFinite() {
		return h.source
	}
	return nil
}

// GetEnd returns h's end point (its twin's source) if finite, nil otherwise.
func (h *HalfEdge) GetEnd() *geom.Point {
	if h.Twin.source.Kind.IsFinite() {
		return h.Twin.source
	}
	return nil
}

// SetStart reassigns h's start to p. If the opposite end (h's twin's
// source) was a transient ORIGIN point, it is promoted in place to the DIR
// point of the matching quadrant first, since the line no longer has two
// unbounded ends once h gains a finite start.
func (h *HalfEdge) SetStart(p *geom.Point) {
	if h.Twin.source.Kind.IsOrigin() {
		h.source.Kind = geom.Kind(h.Twin.source.Kind.Quadrant())
		h.Twin.source = h.source
	}
	h.source = p
}

// SetEnd reassigns h's end (its twin's source) to p, symmetric to SetStart.
func (h *HalfEdge) SetEnd(p *geom.Point) {
	if h.source.Kind.IsOrigin() {
		h.Twin.source.Kind = geom.Kind(h.source.Kind.Quadrant())
		h.source = h.Twin.source
	}
	h.Twin.source = p
}

// Quadrant returns which of the four quadrants h points into, used by
// OnEdge to resolve on-edge membership.
func (h *HalfEdge) Quadrant() int {
	sv, tv := int(h.source.Kind), int(h.Twin.source.Kind)
	if sv == 0 && tv == 0 {
		dx := geom.FuzzyCompare(h.Twin.source.X, h.source.X)
		dy := geom.FuzzyCompare(h.Twin.source.Y, h.source.Y)
		switch {
		case dx >= 0 && dy > 0:
			return 1
		case dx < 0 && dy >= 0:
			return 2
		case dx <= 0 && dy < 0:
			return 3
		default:
			return 4
		}
	}
	if sv != 0 {
		return h.source.Kind.Quadrant()
	}
	if tv < 3 {
		return tv + 2
	}
	return tv - 2
}

// Line reconstructs h's carrying line from whichever of its endpoints are
// finite, directional, or transient-origin, per the three cases of §4.2.
func (h *HalfEdge) Line() geom.Line {
	sv, tv := int(h.source.Kind), int(h.Twin.source.Kind)
	switch {
	case sv == 0 && tv == 0:
		return geom.LineThrough(*h.source, *h.Twin.source)
	case sv != 0 && tv != 0:
		// Both ends unbounded: the ORIGIN endpoint already carries the
		// line's constant directly (see CreateEdge), not a geometric point
		// to take a dot product against, so this case does not go through
		// LineFromPointDirection.
		if sv > 0 {
			return geom.LineABC(h.source.X, h.source.Y, h.Twin.source.X)
		}
		return geom.LineABC(h.Twin.source.X, h.Twin.source.Y, h.source.X)
	default:
		if sv > 0 {
			return geom.LineFromPointDirection(*h.Twin.source, h.source.Vector())
		}
		return geom.LineFromPointDirection(*h.source, h.Twin.source.Vector())
	}
}

// OnEdge reports whether p, already known to lie on h's carrying line,
// falls within the bounded/unbounded extent h actually represents.
func (h *HalfEdge) OnEdge(p geom.Point) bool {
	s, e := h.GetStart(), h.GetEnd()
	switch {
	case s != nil && e != nil:
		return geom.FuzzyCompare(p.X, min(s.X, e.X)) >= 0 &&
			geom.FuzzyCompare(p.X, max(s.X, e.X)) <= 0 &&
			geom.FuzzyCompare(p.Y, min(s.Y, e.Y)) >= 0 &&
			geom.FuzzyCompare(p.Y, max(s.Y, e.Y)) <= 0
	case s == nil && e == nil:
		return true
	}
	switch h.Quadrant() {
	case 1:
		if s == nil {
			return geom.FuzzyCompare(p.X, e.X) <= 0 && geom.FuzzyCompare(p.Y, e.Y) <= 0
		}
		return geom.FuzzyCompare(p.X, s.X) >= 0 && geom.FuzzyCompare(p.Y, s.Y) >= 0
	case 2:
		if s == nil {
			return geom.FuzzyCompare(p.X, e.X) >= 0 && geom.FuzzyCompare(p.Y, e.Y) <= 0
		}
		return geom.FuzzyCompare(p.X, s.X) <= 0 && geom.FuzzyCompare(p.Y, s.Y) >= 0
	case 3:
		if s == nil {
			return geom.FuzzyCompare(p.X, e.X) >= 0 && geom.FuzzyCompare(p.Y, e.Y) >= 0
		}
		return geom.FuzzyCompare(p.X, s.X) <= 0 && geom.FuzzyCompare(p.Y, s.Y) <= 0
	default:
		if s == nil {
			return geom.FuzzyCompare(p.X, e.X) <= 0 && geom.FuzzyCompare(p.Y, e.Y) >= 0
		}
		return geom.FuzzyCompare(p.X, s.X) >= 0 && geom.FuzzyCompare(p.Y, s.Y) <= 0
	}
}

func min(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
