// Copyright 2026 The Agglo Authors
// SPDX-License-Identifier: Apache-2.0

// Package cluster implements agglomerative hierarchical clustering of
// 2-D labeled points.
//
// Every input point starts as a singleton [Cluster] inside a [Set]. The
// [Agglomerate] driver then repeatedly finds the two nearest clusters
// under the configured [Linkage] and merges the later one into the
// earlier one, until the set has been reduced to the requested number
// of clusters.
//
// Basic usage:
//
//	set := cluster.NewSet(len(points))
//	for _, p := range points {
//		c := cluster.NewCluster(1)
//		c.Append(p)
//		set.Append(c)
//	}
//	err := cluster.Agglomerate(set, 2, cluster.Options{Linkage: cluster.LinkageAverage})
//
// The package is single-threaded: a Set and its Clusters must not be
// shared between goroutines while a run is in progress.
package cluster
