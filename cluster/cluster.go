// Copyright 2026 The Agglo Authors
// SPDX-License-Identifier: Apache-2.0

package cluster

import "sort"

// growthChunk is the fixed capacity increment used when a full cluster
// needs to grow.
const growthChunk = 10

// Cluster is a growable, exclusively owned collection of Points.
//
// Capacity grows in fixed increments of growthChunk and never shrinks
// except through Clear. Callers must not retain views obtained from
// Points or At across a later Append or Absorb, since growth may
// reallocate the backing storage.
type Cluster struct {
	points []Point
}

// NewCluster returns an empty cluster with the given initial capacity.
// A capacity of zero is valid and allocates no storage. A negative
// capacity is a programmer error and panics.
func NewCluster(capacity int) *Cluster {
	if capacity < 0 {
		panic("cluster: negative cluster capacity")
	}

	c := &Cluster{}
	if capacity > 0 {
		c.points = make([]Point, 0, capacity)
	}

	return c
}

// Len reports the number of points in the cluster.
func (c *Cluster) Len() int { return len(c.points) }

// Cap reports the current capacity of the cluster's storage.
func (c *Cluster) Cap() int { return cap(c.points) }

// At returns the point at index i. It panics if i is out of range.
func (c *Cluster) At(i int) Point { return c.points[i] }

// Points returns a read-only view of the cluster's points. The slice
// is only valid until the next Append, Absorb or Clear.
func (c *Cluster) Points() []Point { return c.points }

// Append adds a point at the end of the cluster, growing the storage
// in growthChunk increments when full. Existing points are preserved;
// the new buffer is installed only after they have been copied, so a
// failed allocation (a runtime panic) leaves no partial state behind.
func (c *Cluster) Append(p Point) {
	if len(c.points) == cap(c.points) {
		newCap := cap(c.points)
		for newCap <= len(c.points) {
			newCap += growthChunk
		}

		grown := make([]Point, len(c.points), newCap)
		copy(grown, c.points)
		c.points = grown
	}

	c.points = append(c.points, p)
}

// Clear releases the cluster's storage, resetting it to an empty
// cluster with zero capacity. It is idempotent.
func (c *Cluster) Clear() {
	c.points = nil
}

// SortByID orders the cluster's points ascending by ID. IDs are
// expected to be unique, so tie order is irrelevant.
func (c *Cluster) SortByID() {
	sort.Slice(c.points, func(i, j int) bool {
		return c.points[i].ID < c.points[j].ID
	})
}

// Absorb appends every point of other into c and re-sorts c by ID.
// other is left untouched; the caller is responsible for clearing it
// once the merge has been accounted for.
func (c *Cluster) Absorb(other *Cluster) {
	for _, p := range other.points {
		c.Append(p)
	}

	c.SortByID()
}
