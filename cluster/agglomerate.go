// Copyright 2026 The Agglo Authors
// SPDX-License-Identifier: Apache-2.0

package cluster

import "errors"

var (
	// ErrInvalidTarget reports a target cluster count below one.
	ErrInvalidTarget = errors.New("target cluster count must be at least 1")
	// ErrTargetExceedsClusters reports a target cluster count larger
	// than the number of clusters in the set.
	ErrTargetExceedsClusters = errors.New("target cluster count exceeds available clusters")
	// ErrEmptySet reports an agglomeration attempt over an empty set.
	ErrEmptySet = errors.New("cluster set is empty")
)

// Options configures an agglomeration run.
type Options struct {
	// Linkage selects the cluster distance rule. The zero value is
	// LinkageAverage.
	Linkage Linkage

	// Progress, when non-nil, is invoked after every merge step with
	// the number of merges performed so far and the total number of
	// merges the run will perform.
	Progress func(done, total int)
}

// Agglomerate reduces set to target clusters by repeatedly merging the
// two nearest clusters under opts.Linkage. Each step finds the nearest
// pair (i, j) with i < j, absorbs cluster j into cluster i (leaving i
// sorted by point ID) and removes slot j, shrinking the set by one.
//
// Configuration errors are detected before any mutation: a target
// below one, an empty set, or a target above set.Len() leave the set
// untouched. A target equal to set.Len() succeeds without performing
// any merge.
func Agglomerate(set *Set, target int, opts Options) error {
	if target < 1 {
		return ErrInvalidTarget
	}

	if set.Len() < 1 {
		return ErrEmptySet
	}

	if target > set.Len() {
		return ErrTargetExceedsClusters
	}

	total := set.Len() - target
	for done := 0; set.Len() > target; done++ {
		i, j := set.FindNearestPair(opts.Linkage)
		set.Merge(i, j)
		set.RemoveAt(j)

		if opts.Progress != nil {
			opts.Progress(done+1, total)
		}
	}

	return nil
}
