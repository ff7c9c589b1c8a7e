// Copyright 2026 The Agglo Authors
// SPDX-License-Identifier: Apache-2.0

package pointfile

import (
	"fmt"
	"io"
	"os"

	"github.com/pairgroup/agglo/cluster"
)

// Fprint writes the final cluster set to w, one line per cluster in
// index order, each listing its member points ordered by ID:
//
//	Clusters:
//	cluster 0: 1[0,0] 2[0,1]
//	cluster 1: 3[10,10] 4[10,11]
func Fprint(w io.Writer, set *cluster.Set) error {
	if _, err := fmt.Fprintln(w, "Clusters:"); err != nil {
		return err
	}

	for i := 0; i < set.Len(); i++ {
		if _, err := fmt.Fprintf(w, "cluster %d:", i); err != nil {
			return err
		}

		for _, p := range set.At(i).Points() {
			if _, err := fmt.Fprintf(w, " %s", p); err != nil {
				return err
			}
		}

		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}

	return nil
}

// Print writes the final cluster set to stdout.
func Print(set *cluster.Set) error {
	return Fprint(os.Stdout, set)
}
