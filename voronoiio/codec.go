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

package voronoiio

import (
	jsoniter "github.com/json-iterator/go"

	"github.com/blevesearch/voronoi/dcel"
	"github.com/blevesearch/voronoi/geom"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// siteDoc is the wire shape for a site list fed to Build.
type siteDoc struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// cellDoc is the wire shape for one cell's bounded boundary, used by
// golden-file regression tests of hull/cell shapes.
type cellDoc struct {
	Site     siteDoc    `json:"site"`
	Boundary []siteDoc  `json:"boundary"`
	Unbounded []int     `json:"unboundedAt,omitempty"`
}

// MarshalSites encodes sites as a flat JSON array of {x,y} objects.
func MarshalSites(sites []geom.Point) ([]byte, error) {
	docs := make([]siteDoc, len(sites))
	for i, s := range sites {
		docs[i] = siteDoc{X: s.X, Y: s.Y}
	}
	return json.Marshal(docs)
}

// UnmarshalSites decodes a flat JSON array of {x,y} objects into FINITE
// points, ready for voronoi.Build.
func UnmarshalSites(data []byte) ([]geom.Point, error) {
	var docs []siteDoc
	if err := json.Unmarshal(data, &docs); err != nil {
		return nil, err
	}
	sites := make([]geom.Point, len(docs))
	for i, d := range docs {
		sites[i] = geom.NewPoint(d.X, d.Y)
	}
	return sites, nil
}

// MarshalCells encodes each cell's site and the finite vertices of its
// boundary, recording the boundary index of any unbounded endpoint so a
// reader can tell a clipped ray from a genuine missing vertex.
func MarshalCells(cells []*dcel.Cell) ([]byte, error) {
	docs := make([]cellDoc, len(cells))
	for i, cell := range cells {
		doc := cellDoc{Site: siteDoc{X: cell.Site.X, Y: cell.Site.Y}}
		if cell.Head != nil {
			curr := cell.Head
			idx := 0
			for {
				if s := curr.GetStart(); s != nil {
					doc.Boundary = append(doc.Boundary, siteDoc{X: s.X, Y: s.Y})
				} else {
					doc.Unbounded = append(doc.Unbounded, idx)
				}
				idx++
				curr = curr.Next
				if curr == cell.Head {
					break
				}
			}
		}
		docs[i] = doc
	}
	return json.Marshal(docs)
}
