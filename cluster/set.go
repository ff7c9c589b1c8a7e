// Copyright 2026 The Agglo Authors
// SPDX-License-Identifier: Apache-2.0

package cluster

// Set is a dense, order-significant sequence of clusters. Indices
// 0..Len()-1 are always contiguous; removal compacts the sequence so
// no gaps persist between driver steps. The Set owns its clusters: a
// cluster removed from the set is cleared and must not be reused.
type Set struct {
	clusters []*Cluster
}

// NewSet returns an empty set with room for capacity clusters.
func NewSet(capacity int) *Set {
	return &Set{clusters: make([]*Cluster, 0, capacity)}
}

// Len reports the number of clusters in the set.
func (s *Set) Len() int { return len(s.clusters) }

// At returns the cluster at index i. It panics if i is out of range.
func (s *Set) At(i int) *Cluster { return s.clusters[i] }

// Append adds a cluster at the end of the set.
func (s *Set) Append(c *Cluster) {
	s.clusters = append(s.clusters, c)
}

// TotalPoints reports the number of points across all clusters. The
// driver conserves this count across every merge step.
func (s *Set) TotalPoints() int {
	var n int
	for _, c := range s.clusters {
		n += c.Len()
	}

	return n
}

// FindNearestPair returns the indices (i, j), i < j, of the pair of
// clusters with the smallest distance under l. Pairs are scanned in
// row-major order (i ascending, then j ascending) and the running best
// is replaced whenever a pair's distance is less than OR EQUAL to it,
// so among ties the pair examined last wins. This tie-break is part of
// the observable contract: it decides which pair is merged when
// distances are equal.
//
// The set must hold at least two clusters; fewer is a programmer error
// and panics.
func (s *Set) FindNearestPair(l Linkage) (int, int) {
	if len(s.clusters) < 2 {
		panic("cluster: FindNearestPair requires at least two clusters")
	}

	best := l.Between(s.clusters[0], s.clusters[1])
	bi, bj := 0, 1

	for i := 0; i < len(s.clusters); i++ {
		for j := i + 1; j < len(s.clusters); j++ {
			if d := l.Between(s.clusters[i], s.clusters[j]); d <= best {
				best = d
				bi, bj = i, j
			}
		}
	}

	return bi, bj
}

// Merge absorbs the points of cluster j into cluster i, leaving
// cluster i sorted by point ID. Cluster j is not modified; callers
// normally follow with RemoveAt(j) to compact the emptied slot.
// Equal or out-of-range indices panic.
func (s *Set) Merge(i, j int) {
	if i == j {
		panic("cluster: Merge requires distinct indices")
	}

	s.clusters[i].Absorb(s.clusters[j])
}

// RemoveAt removes the cluster at idx: its storage is cleared, every
// following cluster shifts one position earlier, and the set's length
// shrinks by one. Clusters keep their ID ordering; nothing else about
// them changes. An out-of-range index panics.
func (s *Set) RemoveAt(idx int) {
	if idx < 0 || idx >= len(s.clusters) {
		panic("cluster: RemoveAt index out of range")
	}

	s.clusters[idx].Clear()
	copy(s.clusters[idx:], s.clusters[idx+1:])
	s.clusters[len(s.clusters)-1] = nil
	s.clusters = s.clusters[:len(s.clusters)-1]
}
