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

// Package hull implements the divide-and-conquer convex hull merge: given
// two hulls built from disjoint, x-sorted halves, it produces the merged
// hull and the upper/lower common-tangent bridges the Voronoi merge walks
// from.
package hull

import "github.com/blevesearch/voronoi/geom"

// Node is one vertex of a hull, held in a counter-clockwise cyclic
// doubly-linked list.
type Node struct {
	Site       geom.Point
	Next, Prev *Node
}

// NewNode returns a singleton cyclic ring holding site.
func NewNode(site geom.Point) *Node {
	n := &Node{Site: site}
	n.Next, n.Prev = n, n
	return n
}

// Bridge identifies the two sites a common tangent touches. For the upper
// bridge returned by Merge, First is on the right-hand hull and Second on
// the left-hand hull, matching the (p_right, p_left) convention the Voronoi
// seam walk expects as its entry point. The lower bridge is ordered the
// other way: First on the left-hand hull, Second on the right-hand hull.
type Bridge struct {
	First, Second geom.Point
}
