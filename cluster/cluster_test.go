// Copyright 2026 The Agglo Authors
// SPDX-License-Identifier: Apache-2.0

package cluster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCluster(t *testing.T) {
	c := NewCluster(0)
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, 0, c.Cap())

	c = NewCluster(4)
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, 4, c.Cap())
}

func TestNewClusterNegativeCapacityPanics(t *testing.T) {
	assert.Panics(t, func() { NewCluster(-1) })
}

func TestAppendGrowsInFixedChunks(t *testing.T) {
	c := NewCluster(0)

	c.Append(Point{ID: 1})
	assert.Equal(t, 1, c.Len())
	assert.Equal(t, growthChunk, c.Cap())

	for i := 2; i <= growthChunk; i++ {
		c.Append(Point{ID: i})
	}
	assert.Equal(t, growthChunk, c.Len())
	assert.Equal(t, growthChunk, c.Cap())

	// The append past the first chunk triggers the next increment.
	c.Append(Point{ID: growthChunk + 1})
	assert.Equal(t, growthChunk+1, c.Len())
	assert.Equal(t, 2*growthChunk, c.Cap())
}

func TestAppendPreservesExistingPoints(t *testing.T) {
	c := NewCluster(1)
	c.Append(Point{ID: 7, X: 1, Y: 2})
	c.Append(Point{ID: 8, X: 3, Y: 4})

	require.Equal(t, 2, c.Len())
	assert.Equal(t, Point{ID: 7, X: 1, Y: 2}, c.At(0))
	assert.Equal(t, Point{ID: 8, X: 3, Y: 4}, c.At(1))
}

func TestClearIsIdempotent(t *testing.T) {
	c := NewCluster(2)
	c.Append(Point{ID: 1})

	c.Clear()
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, 0, c.Cap())

	c.Clear()
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, 0, c.Cap())

	// A cleared cluster must be appendable again.
	c.Append(Point{ID: 2})
	assert.Equal(t, 1, c.Len())
}

func TestSortByID(t *testing.T) {
	c := NewCluster(3)
	c.Append(Point{ID: 9})
	c.Append(Point{ID: 1})
	c.Append(Point{ID: 4})

	c.SortByID()

	got := make([]int, 0, c.Len())
	for _, p := range c.Points() {
		got = append(got, p.ID)
	}
	assert.Equal(t, []int{1, 4, 9}, got)
}

func TestAbsorb(t *testing.T) {
	c1 := NewCluster(2)
	c1.Append(Point{ID: 5, X: 1, Y: 1})
	c1.Append(Point{ID: 2, X: 2, Y: 2})

	c2 := NewCluster(2)
	c2.Append(Point{ID: 9, X: 3, Y: 3})
	c2.Append(Point{ID: 1, X: 4, Y: 4})

	c1.Absorb(c2)

	require.Equal(t, 4, c1.Len())

	ids := make([]int, 0, c1.Len())
	for _, p := range c1.Points() {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []int{1, 2, 5, 9}, ids, "absorbed cluster must be sorted by id")

	// The absorbed cluster keeps its points; clearing it is the
	// caller's job.
	assert.Equal(t, 2, c2.Len())
}
