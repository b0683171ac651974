package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the root command with args and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--env-file", ""}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func write(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestDistanceCmd(t *testing.T) {
	out, err := run(t, "distance", "kitten", "sitting")
	require.NoError(t, err)
	assert.Equal(t, "3\n", out)

	out, err = run(t, "distance", "ab", "ba", "--ops")
	require.NoError(t, err)
	assert.Equal(t, "2\n0 s(b,a)@1 1\n1 s(a,b)@0 1\n", out)
}

func TestMedianCmd(t *testing.T) {
	dir := t.TempDir()
	in := write(t, dir, "set.txt", "abc\nabc\nabd\n")
	cfg := write(t, dir, "cfg.yaml", "precision: 2\nlog_format: json\n")
	out := filepath.Join(dir, "result.txt")
	metrics := filepath.Join(dir, "metrics.prom")

	_, err := run(t, "--config", cfg, "--metrics", metrics, "median", in, out)
	require.NoError(t, err)

	body, err := os.ReadFile(out)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(body)), "\n")
	require.GreaterOrEqual(t, len(lines), 6)
	assert.True(t, strings.HasPrefix(lines[0], "# run "))
	assert.True(t, strings.HasPrefix(lines[1], "SetMedian AvgDist: "))
	assert.Equal(t, "abc", lines[2])
	assert.True(t, strings.HasPrefix(lines[3], "Mean AvgDist: "))
	assert.Equal(t, "abc", lines[4])
	assert.True(t, strings.HasPrefix(lines[5], "PFO "))

	_, err = os.Stat(out + ".log")
	assert.NoError(t, err)

	prom, err := os.ReadFile(metrics)
	require.NoError(t, err)
	assert.Contains(t, string(prom), `strmean_distance_computations_total{phase="set_median"}`)
}

func TestBatchCmd(t *testing.T) {
	dir := t.TempDir()
	a := write(t, dir, "a.txt", "aab\naba\nbaa\n")
	b := write(t, dir, "b.yaml", "samples:\n  - {sequence: kitten}\n  - {sequence: sitting}\n  - {sequence: mitten}\n")
	outDir := filepath.Join(dir, "out")

	_, err := run(t, "batch", "--jobs", "2", outDir, a, b)
	require.NoError(t, err)

	for _, name := range []string{"a.out", "a.out.log", "b.out", "b.out.log"} {
		_, err = os.Stat(filepath.Join(outDir, name))
		assert.NoError(t, err, name)
	}

	_, err = run(t, "batch", outDir, filepath.Join(dir, "missing.txt"))
	assert.Error(t, err)

	_, err = run(t, "batch", "--jobs", "0", outDir, a)
	assert.Error(t, err)
}

func TestBatchCmd_OutputCollision(t *testing.T) {
	dir := t.TempDir()
	txt := write(t, dir, "set.txt", "aaa\naab\n")
	yml := write(t, dir, "set.yaml", "samples:\n  - {sequence: zzz}\n  - {sequence: zzy}\n")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "d2"), 0o755))
	again := write(t, filepath.Join(dir, "d2"), "set.txt", "bbb\n")
	outDir := filepath.Join(dir, "out")

	for _, inputs := range [][]string{{txt, yml}, {txt, again}} {
		_, err := run(t, append([]string{"batch", outDir}, inputs...)...)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "set.out")
	}

	_, err := os.Stat(filepath.Join(outDir, "set.out"))
	assert.ErrorIs(t, err, os.ErrNotExist, "nothing is computed when names collide")
}

func TestRootCmd_BadConfig(t *testing.T) {
	dir := t.TempDir()
	cfg := write(t, dir, "cfg.yaml", "comparator: nope\n")
	_, err := run(t, "--config", cfg, "distance", "a", "b")
	assert.Error(t, err)
}
