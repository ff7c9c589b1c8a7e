// Copyright 2026 The Agglo Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/mattn/go-isatty"
	"github.com/pairgroup/agglo/cluster"
	"github.com/pairgroup/agglo/pointfile"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

var (
	singleLinkage   bool
	completeLinkage bool
)

func init() {
	rootCmd.Flags().BoolVar(&singleLinkage, "min", false,
		"use single linkage (minimum pairwise distance) between clusters")
	rootCmd.Flags().BoolVar(&completeLinkage, "max", false,
		"use complete linkage (maximum pairwise distance) between clusters")
	rootCmd.MarkFlagsMutuallyExclusive("min", "max")
}

func runClustering(_ *cobra.Command, args []string) error {
	target := 1
	if len(args) > 1 {
		n, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid cluster count %q", args[1])
		}

		if n <= 0 {
			return fmt.Errorf("cluster count must be positive, got %d", n)
		}

		target = n
	}

	// Linkage flags take effect only together with an explicit cluster
	// count argument; a bare filename always clusters down to one
	// cluster under average linkage.
	linkage := cluster.LinkageAverage
	if len(args) > 1 {
		switch {
		case singleLinkage:
			linkage = cluster.LinkageSingle
		case completeLinkage:
			linkage = cluster.LinkageComplete
		}
	}

	set, err := pointfile.LoadFile(args[0])
	if err != nil {
		return err
	}

	if target > set.Len() {
		return fmt.Errorf("cluster count %d exceeds the %d clusters in %s: %w",
			target, set.Len(), args[0], cluster.ErrTargetExceedsClusters)
	}

	opts := cluster.Options{Linkage: linkage}

	var bar *progressbar.ProgressBar
	if merges := set.Len() - target; merges > 0 && isatty.IsTerminal(os.Stderr.Fd()) {
		bar = progressbar.NewOptions(merges,
			progressbar.OptionSetDescription("Merging clusters"),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
		opts.Progress = func(_, _ int) {
			_ = bar.Add(1)
		}
	}

	if err := cluster.Agglomerate(set, target, opts); err != nil {
		return err
	}

	if bar != nil {
		_ = bar.Finish()
	}

	return pointfile.Print(set)
}
