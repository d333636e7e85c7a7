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

func TestFuzzyCompare(t *testing.T) {
	tests := []struct {
		a, b float64
		want int
	}{
		{1, 1, 0},
		{1, 1 + 1e-12, 0},
		{1, 1.1, -1},
		{1.1, 1, 1},
		{0, 0, 0},
		{0, 1e-15, 0},
	}
	for _, test := range tests {
		if got := FuzzyCompare(test.a, test.b); got != test.want {
			t.Errorf("FuzzyCompare(%v, %v) = %d, want %d", test.a, test.b, got, test.want)
		}
	}
}

func TestKindQuadrant(t *testing.T) {
	tests := []struct {
		k    Kind
		want int
	}{
		{Finite, 0},
		{DirQ1, 1}, {DirQ2, 2}, {DirQ3, 3}, {DirQ4, 4},
		{OriginQ1, 1}, {OriginQ2, 2}, {OriginQ3, 3}, {OriginQ4, 4},
	}
	for _, test := range tests {
		if got := test.k.Quadrant(); got != test.want {
			t.Errorf("Kind(%d).Quadrant() = %d, want %d", test.k, got, test.want)
		}
	}
}

func TestKindClassification(t *testing.T) {
	if !Finite.IsFinite() || Finite.IsDir() || Finite.IsOrigin() {
		t.Errorf("Finite classified incorrectly")
	}
	if !DirQ2.IsDir() || DirQ2.IsFinite() || DirQ2.IsOrigin() {
		t.Errorf("DirQ2 classified incorrectly")
	}
	if !OriginQ3.IsOrigin() || OriginQ3.IsFinite() || OriginQ3.IsDir() {
		t.Errorf("OriginQ3 classified incorrectly")
	}
}

func TestPointLess(t *testing.T) {
	a, b := NewPoint(0, 0), NewPoint(1, 0)
	if !a.Less(b) {
		t.Errorf("expected (0,0) < (1,0)")
	}
	if b.Less(a) {
		t.Errorf("expected (1,0) not < (0,0)")
	}
	c, d := NewPoint(1, 0), NewPoint(1, 1)
	if !c.Less(d) {
		t.Errorf("expected (1,0) < (1,1)")
	}
}

func TestPointFuzzyEquals(t *testing.T) {
	a := NewPoint(1, 1)
	b := NewPoint(1+1e-13, 1-1e-13)
	if !a.FuzzyEquals(b) {
		t.Errorf("expected %v fuzzily equal to %v", a, b)
	}
	c := NewPoint(1.1, 1)
	if a.FuzzyEquals(c) {
		t.Errorf("expected %v not fuzzily equal to %v", a, c)
	}
}
