package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gitrdm/ndtmsim/pkg/ndtm"
)

const fixtureDescription = `tr
0 a a R 1
acc
1
max
10
run
a
b
`

func TestRunCommandEmitsOneVerdictPerInput(t *testing.T) {
	root := newRootCommand()
	var stdout bytes.Buffer
	root.SetOut(&stdout)
	root.SetIn(strings.NewReader(fixtureDescription))
	root.SetArgs([]string{"run"})

	require.NoError(t, root.Execute())
	require.Equal(t, "1\n0\n", stdout.String())
}

func TestRunCommandReadsFromInputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "machine.txt")
	require.NoError(t, os.WriteFile(path, []byte(fixtureDescription), 0o644))

	root := newRootCommand()
	var stdout bytes.Buffer
	root.SetOut(&stdout)
	root.SetArgs([]string{"run", "--input", path})

	require.NoError(t, root.Execute())
	require.Equal(t, "1\n0\n", stdout.String())
}

func TestRunCommandReportsParseErrors(t *testing.T) {
	root := newRootCommand()
	var stdout bytes.Buffer
	root.SetOut(&stdout)
	root.SetIn(strings.NewReader("not a valid description"))
	root.SetArgs([]string{"run"})

	err := root.Execute()
	require.Error(t, err)
}

func TestRunCommandReportsQueueOverflowAsResourceExhausted(t *testing.T) {
	const overflowDescription = `tr
0 a a R 0
0 a b R 0
acc
9
max
20
run
aaaa
`
	root := newRootCommand()
	var stdout bytes.Buffer
	root.SetOut(&stdout)
	root.SetIn(strings.NewReader(overflowDescription))
	root.SetArgs([]string{"run", "--queue-capacity", "1"})

	err := root.Execute()
	require.Error(t, err)
	require.ErrorIs(t, err, ndtm.ErrQueueOverflow)
	require.ErrorIs(t, err, errResourceExhausted)
}

func TestSelftestCommandPasses(t *testing.T) {
	root := newRootCommand()
	var stdout bytes.Buffer
	root.SetOut(&stdout)
	root.SetArgs([]string{"selftest", "--workers", "2"})

	require.NoError(t, root.Execute())
	require.Contains(t, stdout.String(), "PASS")
	require.NotContains(t, stdout.String(), "FAIL")
}

func TestVersionInfo(t *testing.T) {
	info := GetVersionInfo()
	require.Equal(t, Version, info.Version)
}
