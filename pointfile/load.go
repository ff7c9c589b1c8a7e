// Copyright 2026 The Agglo Authors
// SPDX-License-Identifier: Apache-2.0

// Package pointfile reads the textual point-list format and prints
// clustering results. It is the thin I/O boundary around package
// cluster: the loader hands the engine a fully validated set of
// singleton clusters, and the printer renders whatever set the engine
// hands back.
package pointfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pairgroup/agglo/cluster"
)

const countPrefix = "count="

// Coordinates must fall inside the closed square [0,1000]².
const (
	coordMin = 0
	coordMax = 1000
)

// Load parses a point list from r and returns a set with one
// singleton cluster per point, in input order.
//
// The format is strict: the first line must be exactly count=<N> with
// N ≥ 1, followed by exactly N lines of the form <id> <x> <y>. Any
// deviation, including trailing content after the last point, is a
// format error.
func Load(r io.Reader) (*cluster.Set, error) {
	scanner := bufio.NewScanner(r)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("reading point file: %w", err)
		}

		return nil, fmt.Errorf("line 1: missing %q header", countPrefix)
	}

	count, err := parseCountLine(scanner.Text())
	if err != nil {
		return nil, err
	}

	set := cluster.NewSet(count)

	for i := 0; i < count; i++ {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return nil, fmt.Errorf("reading point file: %w", err)
			}

			return nil, fmt.Errorf("expected %d points, file ends after %d", count, i)
		}

		p, err := parsePointLine(scanner.Text(), i+2)
		if err != nil {
			return nil, err
		}

		c := cluster.NewCluster(1)
		c.Append(p)
		set.Append(c)
	}

	if scanner.Scan() {
		return nil, fmt.Errorf("line %d: unexpected content after %d points", count+2, count)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading point file: %w", err)
	}

	return set, nil
}

// LoadFile opens path and parses it with Load.
func LoadFile(path string) (*cluster.Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening point file: %w", err)
	}
	defer f.Close()

	set, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return set, nil
}

func parseCountLine(line string) (int, error) {
	rest, ok := strings.CutPrefix(line, countPrefix)
	if !ok {
		return 0, fmt.Errorf("line 1: expected %q header, got %q", countPrefix, line)
	}

	count, err := strconv.Atoi(rest)
	if err != nil {
		return 0, fmt.Errorf("line 1: invalid point count %q", rest)
	}

	if count < 1 {
		return 0, fmt.Errorf("line 1: point count must be at least 1, got %d", count)
	}

	return count, nil
}

func parsePointLine(line string, lineno int) (cluster.Point, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return cluster.Point{}, fmt.Errorf("line %d: expected \"<id> <x> <y>\", got %q", lineno, line)
	}

	id, err := strconv.Atoi(fields[0])
	if err != nil {
		return cluster.Point{}, fmt.Errorf("line %d: invalid point id %q", lineno, fields[0])
	}

	x, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return cluster.Point{}, fmt.Errorf("line %d: invalid x coordinate %q", lineno, fields[1])
	}

	y, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return cluster.Point{}, fmt.Errorf("line %d: invalid y coordinate %q", lineno, fields[2])
	}

	if x < coordMin || x > coordMax || y < coordMin || y > coordMax {
		return cluster.Point{}, fmt.Errorf("line %d: coordinates out of range [%d,%d]: (%g,%g)",
			lineno, coordMin, coordMax, x, y)
	}

	return cluster.Point{ID: id, X: x, Y: y}, nil
}
