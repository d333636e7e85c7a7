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

package voronoi

import (
	"github.com/blevesearch/voronoi/dcel"
	"github.com/blevesearch/voronoi/errs"
	"github.com/blevesearch/voronoi/geom"
	"github.com/blevesearch/voronoi/internal/invariant"
)

// seamIterationLimit bounds the seam walk. The seam is guaranteed to make
// strictly downward progress when sites are distinct and sorted (§4.4); a
// walk that exceeds this has hit a case the epsilon model cannot resolve.
const seamIterationLimit = 1 << 20

// Merge walks the seam between leftCell and rightCell — the perpendicular
// bisector of the two cells' current sites, descending monotonically in
// y — carving each side's boundary and stitching newly created half-edges
// into the affected cells' cyclic boundaries. leftCell and rightCell are
// the sites identified by the merged hull's upper bridge (Second and
// First respectively).
func Merge(leftCell, rightCell *dcel.Cell) error {
	_, err := mergeSeam(leftCell, rightCell)
	return err
}

func mergeSeam(leftCell, rightCell *dcel.Cell) ([]*dcel.HalfEdge, error) {
	left := newCursor(leftCell, true)
	right := newCursor(rightCell, false)
	var deletion []*dcel.HalfEdge
	var lastP *geom.Point
	var leftChain, rightChain *dcel.HalfEdge

	for iter := 0; ; iter++ {
		if iter >= seamIterationLimit {
			return nil, errs.New(errs.DegenerateInput,
				"seam walk between %v and %v did not terminate", leftCell.Site, rightCell.Site)
		}

		seam := geom.PerpendicularBisector(left.cell.Site, right.cell.Site)
		left.intersection(seam, lastP)
		right.intersection(seam, lastP)

		if left.cp == nil && right.cp == nil {
			edge, _ := dcel.CreateEdge(nil, lastP, seam, left.cell, right.cell)
			leftChain = addChainLink(edge, leftChain, true)
			rightChain = addChainLink(edge.Twin, rightChain, false)
			connectChain(nil, leftChain, left.top, left.headSkipped, &deletion)
			connectChain(right.top, rightChain, nil, right.headSkipped, &deletion)
			break
		}

		var cmp int
		switch {
		case left.cp == nil:
			cmp = 1
		case right.cp == nil:
			cmp = -1
		default:
			cmp = geom.FuzzyCompare(right.cp.Y, left.cp.Y)
		}
		point := left.cp
		if cmp > 0 {
			point = right.cp
		}

		edge, _ := dcel.CreateEdge(point, lastP, seam, left.cell, right.cell)
		leftChain = addChainLink(edge, leftChain, true)
		rightChain = addChainLink(edge.Twin, rightChain, false)
		lastP = point

		if cmp <= 0 {
			intersectTwin := left.edge.Twin
			if e := left.edge.GetEnd(); e != nil && point.FuzzyEquals(*e) {
				intersectTwin = left.edge.Next.Twin.Next
			}
			left.edge.SetEnd(point)
			intersectTwin.SetStart(point)
			connectChain(left.edge, leftChain, left.top, left.headSkipped, &deletion)
			left.set(intersectTwin)
			leftChain = nil
		}
		if cmp >= 0 {
			intersectTwin := right.edge.Twin
			if s := right.edge.GetStart(); s != nil && point.FuzzyEquals(*s) {
				for right.edge.Prev.Twin.Prev != intersectTwin {
					intersectTwin.SetEnd(point)
					intersectTwin = intersectTwin.Next.Twin
				}
			}
			right.edge.SetStart(point)
			intersectTwin.SetEnd(point)
			connectChain(right.top, rightChain, right.edge, right.headSkipped, &deletion)
			right.set(intersectTwin)
			rightChain = nil
		}
	}

	invariant.CellCycleClosed(leftCell, seamIterationLimit)
	invariant.CellCycleClosed(rightCell, seamIterationLimit)
	return deletion, nil
}
