package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/npat-efault/treedp/errors"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	err := app.Run(append([]string{"optbst"}, args...))
	return out.String(), err
}

func TestCount(t *testing.T) {
	for _, st := range []string{"recursive", "iterative", "closed"} {
		out, err := run(t, "--strategy", st, "count")
		require.NoError(t, err)
		assert.Equal(t, "5\n", out, "strategy %s", st)
	}
	out, err := run(t, "--freq", "1,1,1,1", "count")
	require.NoError(t, err)
	assert.Equal(t, "14\n", out)
}

func TestShapes(t *testing.T) {
	out, err := run(t, "shapes")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 5)
	assert.Equal(t, "map[1:[0 2]]", lines[2])
}

func TestCost(t *testing.T) {
	for _, st := range []string{"recursive", "iterative"} {
		out, err := run(t, "--strategy", st, "cost")
		require.NoError(t, err)
		assert.Equal(t, "142\n", out, "strategy %s", st)
	}
}

func TestTree(t *testing.T) {
	out, err := run(t, "tree")
	require.NoError(t, err)
	assert.Equal(t, "map[0:[1] 2:[0]]\n", out)
}

func TestErrors(t *testing.T) {
	_, err := run(t, "--freq", "1", "cost")
	assert.True(t, errors.IsInvalidArgument(err))
	_, err = run(t, "--n", "4", "cost")
	assert.True(t, errors.IsInvalidArgument(err))
	_, err = run(t, "--strategy", "greedy", "count")
	assert.True(t, errors.IsInvalidArgument(err))
	_, err = run(t, "--strategy", "closed", "cost")
	assert.True(t, errors.IsInvalidArgument(err))
}
