// Copyright 2026 The Agglo Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"github.com/pairgroup/agglo/cmd"
)

var Version = "development"

func main() {
	cmd.Execute(Version)
}
