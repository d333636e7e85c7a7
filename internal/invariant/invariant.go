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

// Package invariant guards the DCEL structural post-conditions of §7/§8's
// P5 (twin symmetry, next/prev agreement, distinct twin cells). Checks
// panic with context when built with -tags debug and are a no-op
// otherwise, matching the assertgo convention.
package invariant

import (
	assert "github.com/aurelien-rainone/assertgo"

	"github.com/blevesearch/voronoi/dcel"
)

// TwinSymmetric asserts e.Twin.Twin == e.
func TwinSymmetric(e *dcel.HalfEdge) {
	assert.True(e.Twin.Twin == e, "half-edge %p: twin.twin != self", e)
}

// NextPrevConsistent asserts e.Next.Prev == e.
func NextPrevConsistent(e *dcel.HalfEdge) {
	assert.True(e.Next.Prev == e, "half-edge %p: next.prev != self", e)
}

// DistinctTwinCells asserts a half-edge and its twin bound different cells.
func DistinctTwinCells(e *dcel.HalfEdge) {
	assert.True(e.Cell != e.Twin.Cell, "half-edge %p: cell == twin.cell", e)
}

// CellCycleClosed walks cell.Head.Next until it returns to Head, asserting
// it does so within at most limit steps, and that every visited edge
// belongs to cell.
func CellCycleClosed(cell *dcel.Cell, limit int) {
	if cell.Head == nil {
		return
	}
	curr := cell.Head
	steps := 0
	for {
		assert.True(curr.Cell == cell, "half-edge %p: cell pointer disagrees with owning cell", curr)
		curr = curr.Next
		steps++
		if curr == cell.Head {
			return
		}
		assert.True(steps < limit, "cell %v: boundary walk did not close within %d steps", cell.Site, limit)
	}
}

// HalfEdge asserts the full set of structural invariants for e.
func HalfEdge(e *dcel.HalfEdge) {
	TwinSymmetric(e)
	NextPrevConsistent(e)
	DistinctTwinCells(e)
}
