package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lojf/ecaplanner/internal/catalog"
)

const csvRows = `ECA ID,Description,Programme,Fee,Teacher,Day,Location,Time,Min-Max
,Primary Clubs,,,,,,,
ART1,,Art Club Years 1 to 6,0,Ms A,Monday,Art Room,15:30 - 16:20,8 - 16
SWIM1,,Swim Squad Years 3 to 6,4500,Mr B,Wed,Pool,15:30 - 16:30,6 - 10
`

func TestRun(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "eca.csv")
	require.NoError(t, os.WriteFile(in, []byte(csvRows), 0o644))

	for _, name := range []string{"out/eca.json", "out/eca.yaml"} {
		out := filepath.Join(dir, name)
		var stdout bytes.Buffer
		require.NoError(t, run([]string{"-in", in, "-out", out, "-term", "T3"}, &stdout))
		assert.Contains(t, stdout.String(), "activities: 2 (free 1, paid 1)")

		cat, err := catalog.LoadFile(out)
		require.NoError(t, err, name)
		assert.Equal(t, 2, cat.Len())
		assert.Equal(t, "T3", cat.Meta().Term)
	}
}

func TestRun_Errors(t *testing.T) {
	var stdout bytes.Buffer
	assert.ErrorIs(t, run([]string{"-h"}, &stdout), errHelp)
	assert.Error(t, run([]string{"-in", filepath.Join(t.TempDir(), "missing.csv")}, &stdout))
	assert.Error(t, run([]string{"-bogus"}, &stdout))
}
