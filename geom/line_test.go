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

package geom

import "testing"

func TestLineThroughIntersect(t *testing.T) {
	l1 := LineThrough(NewPoint(0, 0), NewPoint(2, 0))
	l2 := LineThrough(NewPoint(1, -1), NewPoint(1, 1))
	p, ok := l1.Intersect(l2)
	if !ok {
		t.Fatalf("expected an intersection")
	}
	if !FuzzyEqual(p.X, 1) || !FuzzyEqual(p.Y, 0) {
		t.Errorf("l1 ∩ l2 = %v, want (1, 0)", p)
	}
}

func TestIntersectionCommutative(t *testing.T) {
	pts := [][4]float64{
		{0, 0, 4, 0}, {0, 0, 0, 4}, {1, 1, 5, 3}, {-2, 3, 4, -1},
	}
	for _, a := range pts {
		for _, b := range pts {
			l1 := LineThrough(NewPoint(a[0], a[1]), NewPoint(a[2], a[3]))
			l2 := LineThrough(NewPoint(b[0], b[1]), NewPoint(b[2], b[3]))
			p1, ok1 := l1.Intersect(l2)
			p2, ok2 := l2.Intersect(l1)
			if ok1 != ok2 {
				t.Fatalf("intersection existence disagrees for %v, %v", l1, l2)
			}
			if !ok1 {
				continue
			}
			if !FuzzyEqual(p1.X, p2.X) || !FuzzyEqual(p1.Y, p2.Y) {
				t.Errorf("l1.Intersect(l2) = %v, l2.Intersect(l1) = %v, want equal", p1, p2)
			}
		}
	}
}

func TestLineParallel(t *testing.T) {
	l1 := LineThrough(NewPoint(0, 0), NewPoint(2, 0))
	l2 := LineThrough(NewPoint(0, 1), NewPoint(2, 1))
	if !l1.IsParallel(l2) {
		t.Errorf("expected %v parallel to %v", l1, l2)
	}
	if l1.IsEqual(l2) {
		t.Errorf("did not expect %v equal to %v", l1, l2)
	}
	l3 := LineABC(l1.A*2, l1.B*2, l1.C*2)
	if !l1.IsEqual(l3) {
		t.Errorf("expected %v equal to its doubled coefficients %v", l1, l3)
	}
}

func TestPerpendicularBisectorVertical(t *testing.T) {
	// A horizontal segment's bisector is the vertical line x=1.
	p, q := NewPoint(0, 0), NewPoint(2, 0)
	bis := PerpendicularBisector(p, q)
	if !FuzzyEqual(bis.Value(NewPoint(1, 0)), 0) || !FuzzyEqual(bis.Value(NewPoint(1, 5)), 0) {
		t.Errorf("expected x=1 to lie on the bisector of %v", bis)
	}
	if FuzzyEqual(bis.Value(NewPoint(0, 0)), 0) {
		t.Errorf("did not expect p itself to lie on its own bisector")
	}
}

func TestPerpendicularBisectorEquidistant(t *testing.T) {
	p, q := NewPoint(0, 0), NewPoint(4, 2)
	bis := PerpendicularBisector(p, q)
	mid := NewPoint(2, 1)
	if !FuzzyEqual(bis.Value(mid), 0) {
		t.Errorf("bisector does not pass through midpoint: value(%v) = %v", mid, bis.Value(mid))
	}
	for _, x := range []float64{-3, 0, 2, 5, 10} {
		pt, ok := bis.At(x)
		if !ok {
			t.Fatalf("expected bisector to be non-vertical")
		}
		dp := pt.DistSqr(p)
		dq := pt.DistSqr(q)
		if !FuzzyEqual(dp, dq) {
			t.Errorf("point %v on bisector: distSqr to p = %v, to q = %v", pt, dp, dq)
		}
	}
}
