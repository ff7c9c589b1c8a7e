// Copyright 2026 The Agglo Authors
// SPDX-License-Identifier: Apache-2.0

package pointfile

import (
	"strings"
	"testing"

	"github.com/pairgroup/agglo/cluster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFprint(t *testing.T) {
	set, err := Load(strings.NewReader("count=4\n1 0 0\n2 0 1\n3 10 10\n4 10 11\n"))
	require.NoError(t, err)
	require.NoError(t, cluster.Agglomerate(set, 2, cluster.Options{}))

	var sb strings.Builder
	require.NoError(t, Fprint(&sb, set))

	want := "Clusters:\n" +
		"cluster 0: 1[0,0] 2[0,1]\n" +
		"cluster 1: 3[10,10] 4[10,11]\n"
	assert.Equal(t, want, sb.String())
}

func TestFprintSingletons(t *testing.T) {
	set, err := Load(strings.NewReader("count=2\n8 1.5 2\n3 0 0\n"))
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, Fprint(&sb, set))

	// Input order is preserved when no merges were performed.
	want := "Clusters:\n" +
		"cluster 0: 8[1.5,2]\n" +
		"cluster 1: 3[0,0]\n"
	assert.Equal(t, want, sb.String())
}
