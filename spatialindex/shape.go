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

// Package spatialindex adapts a built Voronoi cell into the
// bleve_index_api.GeoJSON shape a search index filters and intersects
// documents against, so a caller can index "nearest seed" regions the way
// it would index any other polygon field.
package spatialindex

import (
	"fmt"

	index "github.com/blevesearch/bleve_index_api"

	"github.com/blevesearch/voronoi/dcel"
	"github.com/blevesearch/voronoi/geom"
)

// CellShape is a bleve_index_api.GeoJSON view of one Voronoi cell's
// bounded boundary. Unbounded rays/lines have no finite polygon
// representation and are dropped; see NewCellShape.
type CellShape struct {
	cell    *dcel.Cell
	polygon []geom.Point
}

// NewCellShape walks cell's boundary and collects the finite vertices in
// order, reporting ok = false if the cell has no boundary or is entirely
// unbounded (fewer than 3 finite vertices).
func NewCellShape(cell *dcel.Cell) (*CellShape, bool) {
	if cell.Head == nil {
		return nil, false
	}
	var poly []geom.Point
	curr := cell.Head
	for {
		if s := curr.GetStart(); s != nil {
			poly = append(poly, *s)
		}
		curr = curr.Next
		if curr == cell.Head {
			break
		}
	}
	if len(poly) < 3 {
		return nil, false
	}
	return &CellShape{cell: cell, polygon: poly}, true
}

// Type implements index.GeoJSON.
func (s *CellShape) Type() string { return "Polygon" }

// Intersects implements index.GeoJSON, reporting whether any boundary
// segment of s's bounded polygon touches or crosses one of other's. A
// polygon lying wholly inside the other, with no boundary contact, is
// reported as not intersecting. other must itself be a *CellShape;
// this adapter only needs to compare Voronoi cells against each other.
func (s *CellShape) Intersects(other index.GeoJSON) (bool, error) {
	o, ok := other.(*CellShape)
	if !ok {
		return false, fmt.Errorf("spatialindex: cannot intersect CellShape with %T", other)
	}
	for i := range s.polygon {
		a1, a2 := s.polygon[i], s.polygon[(i+1)%len(s.polygon)]
		for j := range o.polygon {
			b1, b2 := o.polygon[j], o.polygon[(j+1)%len(o.polygon)]
			if segmentsIntersect(a1, a2, b1, b2) {
				return true, nil
			}
		}
	}
	return false, nil
}

// Site returns the seed site the shape's cell belongs to.
func (s *CellShape) Site() geom.Point { return s.cell.Site }

func segmentsIntersect(p1, q1, p2, q2 geom.Point) bool {
	o1 := geom.Orient(p1, q1, p2)
	o2 := geom.Orient(p1, q1, q2)
	o3 := geom.Orient(p2, q2, p1)
	o4 := geom.Orient(p2, q2, q1)
	if o1 != o2 && o3 != o4 {
		return true
	}
	return o1 == 0 && onSegment(p1, p2, q1) ||
		o2 == 0 && onSegment(p1, q2, q1) ||
		o3 == 0 && onSegment(p2, p1, q2) ||
		o4 == 0 && onSegment(p2, q1, q2)
}

func onSegment(p, q, r geom.Point) bool {
	return q.X <= max(p.X, r.X) && q.X >= min(p.X, r.X) &&
		q.Y <= max(p.Y, r.Y) && q.Y >= min(p.Y, r.Y)
}

func max(a, b float64) float64 {
	if a >= b {
		return a
	}
	return b
}

func min(a, b float64) float64 {
	if a >= b {
		return b
	}
	return a
}
