package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exampleValues = "1,7,4,23,8,9,4,3,5,7,9,67,6345,324"

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := NewRootCommand()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestWalk(t *testing.T) {
	tests := []struct {
		order string
		want  string
	}{
		{"level", "8 4 67 3 7 23 6345 1 5 9 324\n"},
		{"in", "1 3 4 5 7 8 9 23 67 324 6345\n"},
		{"pre", "8 4 3 1 7 5 67 23 9 6345 324\n"},
		{"post", "1 3 5 7 4 9 23 324 6345 67 8\n"},
	}
	for _, tt := range tests {
		t.Run(tt.order, func(t *testing.T) {
			out, err := run(t, "--values", exampleValues, "walk", tt.order)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}

	out, err := run(t, "--values", "3,1,2", "walk")
	require.NoError(t, err)
	assert.Equal(t, "1 2 3\n", out)
}

func TestWalkUnknownOrder(t *testing.T) {
	_, err := run(t, "--values", "1,2,3", "walk", "sideways")
	assert.ErrorContains(t, err, "unknown order")
}

func TestInsertDelete(t *testing.T) {
	out, err := run(t, "--values", "1,2,3", "--insert", "4,5", "walk", "level")
	require.NoError(t, err)
	assert.Equal(t, "3 2 5 1 4\n", out)

	out, err = run(t, "--values", "1,2,3,4,5,6,7", "--delete", "1,2,3", "balanced")
	require.NoError(t, err)
	assert.Equal(t, "false\n", out)

	out, err = run(t, "--values", "1,2,3", "--insert", "2", "--delete", "9", "walk")
	require.NoError(t, err)
	assert.Equal(t, "1 2 3\n", out)
}

func TestFind(t *testing.T) {
	out, err := run(t, "--values", exampleValues, "--insert", "350", "find", "350")
	require.NoError(t, err)
	assert.Equal(t, "found 350 at depth 4, height 0\n", out)

	out, err = run(t, "--values", exampleValues, "find", "2")
	require.NoError(t, err)
	assert.Equal(t, "2 not found\n", out)

	_, err = run(t, "--values", exampleValues, "find", "two")
	assert.ErrorContains(t, err, "invalid value")
}

func TestPrintAndHeight(t *testing.T) {
	out, err := run(t, "--values", "1,2,3", "print")
	require.NoError(t, err)
	assert.Equal(t, "│   ┌── 3\n└── 2\n    └── 1\n", out)

	out, err = run(t, "--values", exampleValues, "height")
	require.NoError(t, err)
	assert.Equal(t, "3\n", out)

	t.Setenv(valuesEnv, "")
	out, err = run(t, "print")
	require.NoError(t, err)
	assert.Equal(t, "(empty)\n", out)

	out, err = run(t, "height")
	require.NoError(t, err)
	assert.Equal(t, "-1\n", out)
}

func TestValuesFromEnv(t *testing.T) {
	t.Setenv(valuesEnv, " 5, 1 ,3,,")
	out, err := run(t, "walk")
	require.NoError(t, err)
	assert.Equal(t, "1 3 5\n", out)

	t.Setenv(valuesEnv, "1,x")
	_, err = run(t, "walk")
	assert.ErrorContains(t, err, valuesEnv)
}

func TestValuesFromEnvFile(t *testing.T) {
	t.Setenv(valuesEnv, "")
	os.Unsetenv(valuesEnv)
	f := filepath.Join(t.TempDir(), "bst.env")
	require.NoError(t, os.WriteFile(f, []byte(valuesEnv+"=10,20,30,40\n"), 0o600))

	out, err := run(t, "--env-file", f, "height")
	require.NoError(t, err)
	assert.Equal(t, "2\n", out)

	_, err = run(t, "--env-file", filepath.Join(t.TempDir(), "missing.env"), "height")
	assert.ErrorContains(t, err, "could not load env file")
}

func TestParseValues(t *testing.T) {
	v, err := parseValues("")
	require.NoError(t, err)
	assert.Empty(t, v)

	v, err = parseValues("-3, 4")
	require.NoError(t, err)
	assert.Equal(t, []int{-3, 4}, v)
}
