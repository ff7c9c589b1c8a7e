// Copyright 2026 The Agglo Authors
// SPDX-License-Identifier: Apache-2.0

package cluster

import (
	"fmt"
	"math"
)

// Point is a labeled 2-D coordinate. It is an immutable value once
// created; the ID is expected to be unique across the input but is not
// re-validated here.
type Point struct {
	ID int     `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

// String returns a string representation of the Point, matching the
// textual output format: id[x,y].
func (p Point) String() string {
	return fmt.Sprintf("%d[%g,%g]", p.ID, p.X, p.Y)
}

// PointDistance returns the Euclidean distance between two points.
func PointDistance(a, b Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y

	return math.Sqrt(dx*dx + dy*dy)
}
