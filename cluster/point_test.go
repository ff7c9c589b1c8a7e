// Copyright 2026 The Agglo Authors
// SPDX-License-Identifier: Apache-2.0

package cluster

import (
	"math"
	"testing"
)

const floatTol = 1e-12

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= floatTol
}

func TestPointDistance(t *testing.T) {
	tests := []struct {
		name string
		a, b Point
		want float64
	}{
		{
			name: "identical points",
			a:    Point{ID: 1, X: 3, Y: 4},
			b:    Point{ID: 1, X: 3, Y: 4},
			want: 0,
		},
		{
			name: "origin to origin",
			a:    Point{ID: 1},
			b:    Point{ID: 2},
			want: 0,
		},
		{
			name: "3-4-5 triangle",
			a:    Point{ID: 1, X: 0, Y: 0},
			b:    Point{ID: 2, X: 3, Y: 4},
			want: 5,
		},
		{
			name: "unit diagonal",
			a:    Point{ID: 1, X: 0, Y: 0},
			b:    Point{ID: 2, X: 1, Y: 1},
			want: math.Sqrt2,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := PointDistance(tc.a, tc.b); !almostEqual(got, tc.want) {
				t.Errorf("PointDistance(%v, %v) = %v, want %v", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestPointDistanceSymmetry(t *testing.T) {
	a := Point{ID: 1, X: 12.5, Y: 997.25}
	b := Point{ID: 2, X: 0.75, Y: 31}

	if d1, d2 := PointDistance(a, b), PointDistance(b, a); d1 != d2 {
		t.Errorf("PointDistance is not symmetric: %v vs %v", d1, d2)
	}
}

func TestPointString(t *testing.T) {
	p := Point{ID: 42, X: 10.5, Y: 0}
	if got, want := p.String(), "42[10.5,0]"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
