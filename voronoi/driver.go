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
	"sort"

	"github.com/blevesearch/voronoi/dcel"
	"github.com/blevesearch/voronoi/errs"
	"github.com/blevesearch/voronoi/geom"
	"github.com/blevesearch/voronoi/hull"
)

// config holds Build's one tunable surface: an optional annotation hook
// fed by an external height-field-style provider, never inspected by the
// core itself.
type config struct {
	annotate func(geom.Point) any
}

// Option configures a Build call.
type Option func(*config)

// WithAnnotate registers a hook called once per deduplicated site before
// its cell is created; the returned value is stored in geom.Point.Attr.
func WithAnnotate(f func(geom.Point) any) Option {
	return func(c *config) { c.annotate = f }
}

// Build sorts sites lexicographically by (x, y), removes fuzzy duplicates,
// and recursively merges hulls leaves-first, alternating the hull merge
// with the Voronoi seam merge on every internal node. It returns the
// merged convex hull (ccw cyclic ring) and one Cell per distinct site,
// the Voronoi diagram materialized as a side effect in each cell's
// half-edge boundary.
func Build(sites []geom.Point, opts ...Option) (*hull.Node, []*dcel.Cell, error) {
	if len(sites) == 0 {
		return nil, nil, errs.New(errs.EmptyInput, "empty site set")
	}

	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	working := make([]geom.Point, len(sites))
	copy(working, sites)
	sort.Slice(working, func(i, j int) bool { return working[i].Less(working[j]) })

	deduped := make([]geom.Point, 0, len(working))
	for _, p := range working {
		if n := len(deduped); n > 0 && p.FuzzyEquals(deduped[n-1]) {
			continue
		}
		deduped = append(deduped, p)
	}

	cells := make([]*dcel.Cell, len(deduped))
	for i := range deduped {
		deduped[i].Index = i
		if cfg.annotate != nil {
			deduped[i].Attr = cfg.annotate(deduped[i])
		}
		cells[i] = dcel.NewCell(deduped[i])
	}

	head, err := buildRange(deduped, cells)
	if err != nil {
		return nil, nil, err
	}
	return head, cells, nil
}

// buildRange recurses on a contiguous range of the sorted, deduplicated,
// index-assigned site slice, alternately calling the hull and Voronoi
// mergers on the way back up.
func buildRange(sites []geom.Point, cells []*dcel.Cell) (*hull.Node, error) {
	if len(sites) == 1 {
		return hull.NewNode(sites[0]), nil
	}

	mid := len(sites) / 2
	left, err := buildRange(sites[:mid], cells)
	if err != nil {
		return nil, err
	}
	right, err := buildRange(sites[mid:], cells)
	if err != nil {
		return nil, err
	}

	merged, _, upper := hull.Merge(left, right)
	if err := Merge(cells[upper.Second.Index], cells[upper.First.Index]); err != nil {
		return nil, err
	}
	return merged, nil
}
