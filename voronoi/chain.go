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
	"github.com/blevesearch/voronoi/internal/invariant"
)

// markForDeletion appends every half-edge from curr up to (not including)
// finish, following Next, to deletion.
func markForDeletion(curr, finish *dcel.HalfEdge, deletion *[]*dcel.HalfEdge) {
	for curr != finish {
		*deletion = append(*deletion, curr)
		curr = curr.Next
	}
}

// addChainLink appends edge to the chain currently headed by head (nil for
// an empty chain), returning the chain's new head: edge itself if inHead,
// otherwise the unchanged head.
func addChainLink(edge, head *dcel.HalfEdge, inHead bool) *dcel.HalfEdge {
	if head == nil {
		edge.Next, edge.Prev = edge, edge
		invariant.HalfEdge(edge)
		return edge
	}
	edge.Next = head
	edge.Prev = head.Prev
	head.Prev.Next = edge
	head.Prev = edge
	invariant.HalfEdge(edge)
	if inHead {
		return edge
	}
	return head
}

// connectChain splices the newly built chain [chainStart..chainStart.Prev]
// into the cell's boundary, replacing the old arc between first and
// second. The four cases are distinguished by which of first/second is
// nil (an unbounded side of the chain that contacts no existing edge).
func connectChain(first, chainStart, second *dcel.HalfEdge, headSkipped bool, deletion *[]*dcel.HalfEdge) {
	cell := chainStart.Cell
	chainEnd := chainStart.Prev

	switch {
	case first != nil && second != nil:
		if cell.Head != cell.Head.Next && cell.Head.Next == cell.Head.Prev &&
			cell.Head.Line().IsParallel(cell.Head.Next.Line()) {
			if cell.Head.GetStart() != nil {
				cell.Head = cell.Head.Next
			}
			headSkipped = false
		} else {
			markForDeletion(first.Next, second, deletion)
		}
		first.Next = chainStart
		chainStart.Prev = first
		second.Prev = chainEnd
		chainEnd.Next = second
		if headSkipped {
			cell.Head = chainStart
		}
		invariant.HalfEdge(first)
		invariant.HalfEdge(second)

	case first == nil && second == nil:
		if cell.Head != nil {
			cell.Head.Prev, cell.Head.Next = chainStart, chainStart
			chainStart.Prev, chainStart.Next = cell.Head, cell.Head
			invariant.HalfEdge(cell.Head)
		}
		cell.Head = chainStart

	case first == nil:
		markForDeletion(cell.Head.Prev.Next, second, deletion)
		cell.Head.Prev.Next = chainStart
		chainStart.Prev = cell.Head.Prev
		second.Prev = chainEnd
		chainEnd.Next = second
		cell.Head = chainStart
		invariant.HalfEdge(second)

	default: // second == nil
		markForDeletion(first.Next, cell.Head, deletion)
		first.Next = chainStart
		chainStart.Prev = first
		cell.Head.Prev = chainEnd
		chainEnd.Next = cell.Head
		invariant.HalfEdge(first)
	}
	invariant.HalfEdge(chainStart)
	invariant.HalfEdge(chainEnd)
}
