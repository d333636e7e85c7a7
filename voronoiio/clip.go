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

// Package voronoiio provides presentation helpers for a built Voronoi
// diagram: a jsoniter-based codec for sites and cells, and a viewport clamp
// for unbounded rays/lines. Neither touches the DCEL the core built; both
// are read-only conveniences for a rendering or golden-file consumer.
package voronoiio

import (
	"github.com/blevesearch/voronoi/dcel"
	"github.com/blevesearch/voronoi/geom"
)

var quadrantDir = map[int]geom.Point{
	1: {X: 1, Y: 1},
	2: {X: -1, Y: 1},
	3: {X: -1, Y: -1},
	4: {X: 1, Y: -1},
}

// ClipToRect walks cell's boundary and returns its vertices clamped into
// rect: finite vertices are clamped directly, unbounded endpoints are
// projected a fixed distance outward (scaled to rect's own size) along
// their quadrant before clamping. It performs no mutation of the DCEL and
// is meant purely for rendering or serialization, not for correctness
// checks.
func ClipToRect(cell *dcel.Cell, rect geom.Rect) []geom.Point {
	if cell.Head == nil {
		return nil
	}

	reach := 2 * (rect.Max.X - rect.Min.X + rect.Max.Y - rect.Min.Y + 1)

	var pts []geom.Point
	curr := cell.Head
	for {
		start := curr.RawStart()
		switch {
		case start.Kind.IsFinite():
			pts = append(pts, rect.Clamp(start))
		case start.Kind.IsDir():
			anchor := cell.Site
			if end := curr.GetEnd(); end != nil {
				anchor = *end
			}
			dir := quadrantDir[start.Kind.Quadrant()]
			far := geom.NewPoint(anchor.X+dir.X*reach, anchor.Y+dir.Y*reach)
			pts = append(pts, rect.Clamp(far))
		default:
			// Transient ORIGIN endpoint: approximate with the cell's own
			// site, the only stable finite reference point available.
			pts = append(pts, rect.Clamp(cell.Site))
		}
		curr = curr.Next
		if curr == cell.Head {
			break
		}
	}
	return pts
}
