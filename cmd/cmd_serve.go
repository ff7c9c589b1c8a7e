// Copyright 2026 The Agglo Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"github.com/pairgroup/agglo/server"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the clustering HTTP API (local only)",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return server.NewServer().Run()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
