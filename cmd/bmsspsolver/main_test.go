package main

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureRun(t *testing.T, args []string) (code int, stdout, stderr string) {
	t.Helper()
	outFile, err := os.CreateTemp(t.TempDir(), "stdout")
	require.NoError(t, err)
	errFile, err := os.CreateTemp(t.TempDir(), "stderr")
	require.NoError(t, err)
	defer outFile.Close()
	defer errFile.Close()

	code = run(args, outFile, errFile)

	var outBuf, errBuf bytes.Buffer
	_, err = outFile.Seek(0, 0)
	require.NoError(t, err)
	_, err = outBuf.ReadFrom(outFile)
	require.NoError(t, err)
	_, err = errFile.Seek(0, 0)
	require.NoError(t, err)
	_, err = errBuf.ReadFrom(errFile)
	require.NoError(t, err)

	return code, outBuf.String(), errBuf.String()
}

func TestRunRandomGraph(t *testing.T) {
	code, stdout, _ := captureRun(t, []string{"-random", "-n", "20", "-m", "40", "-seed", "7"})
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "d[0] = 0")
	assert.Equal(t, 20, strings.Count(stdout, "d["))
}

func TestRunVerifyAgreesOnRandomGraph(t *testing.T) {
	code, _, stderr := captureRun(t, []string{"-random", "-n", "15", "-m", "30", "-seed", "9", "-verify"})
	assert.Equal(t, 0, code)
	assert.Contains(t, stderr, "verify: bmssp.Solve matches refdijkstra.Solve")
}

func TestRunRequiresGraphOrRandom(t *testing.T) {
	code, _, stderr := captureRun(t, []string{})
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "one of -graph or -random is required")
}

func TestRunLoadsGraphFile(t *testing.T) {
	path := t.TempDir() + "/g.txt"
	require.NoError(t, os.WriteFile(path, []byte("3 2\n0 1 1\n1 2 2\n"), 0o644))

	code, stdout, _ := captureRun(t, []string{"-graph", path})
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "d[0] = 0")
	assert.Contains(t, stdout, "d[1] = 1")
	assert.Contains(t, stdout, "d[2] = 3")
}
