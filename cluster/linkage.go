// Copyright 2026 The Agglo Authors
// SPDX-License-Identifier: Apache-2.0

package cluster

import "fmt"

// Linkage selects how the distance between two clusters is derived
// from their member-point distances. It is an explicit value threaded
// into the driver and the distance computations, never ambient state.
type Linkage int

const (
	// LinkageAverage is unweighted pair-group average: the mean of
	// all pairwise point distances. This is the default.
	LinkageAverage Linkage = iota
	// LinkageSingle uses the minimum pairwise point distance.
	LinkageSingle
	// LinkageComplete uses the maximum pairwise point distance.
	LinkageComplete
)

func (l Linkage) String() string {
	switch l {
	case LinkageAverage:
		return "average"
	case LinkageSingle:
		return "min"
	case LinkageComplete:
		return "max"
	default:
		return fmt.Sprintf("Linkage(%d)", int(l))
	}
}

// ParseLinkage maps the textual linkage names used by the CLI and the
// HTTP API to a Linkage value.
func ParseLinkage(s string) (Linkage, error) {
	switch s {
	case "", "average":
		return LinkageAverage, nil
	case "min":
		return LinkageSingle, nil
	case "max":
		return LinkageComplete, nil
	default:
		return LinkageAverage, fmt.Errorf("unknown linkage %q", s)
	}
}

// Between computes the distance between two non-empty clusters under
// l. The computation is O(a.Len()·b.Len()) and is recomputed on every
// call; nothing is cached. Calling it with an empty cluster is a
// programmer error and panics.
func (l Linkage) Between(a, b *Cluster) float64 {
	if a.Len() == 0 || b.Len() == 0 {
		panic("cluster: linkage distance requires non-empty clusters")
	}

	switch l {
	case LinkageSingle:
		best := PointDistance(a.points[0], b.points[0])
		for _, pa := range a.points {
			for _, pb := range b.points {
				if d := PointDistance(pa, pb); d < best {
					best = d
				}
			}
		}

		return best
	case LinkageComplete:
		best := PointDistance(a.points[0], b.points[0])
		for _, pa := range a.points {
			for _, pb := range b.points {
				if d := PointDistance(pa, pb); d > best {
					best = d
				}
			}
		}

		return best
	default:
		var sum float64
		for _, pa := range a.points {
			for _, pb := range b.points {
				sum += PointDistance(pa, pb)
			}
		}

		return sum / float64(a.Len()*b.Len())
	}
}
