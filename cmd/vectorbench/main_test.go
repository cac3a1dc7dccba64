package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vector "github.com/changx03/custom-vector-multithread"
	"github.com/changx03/custom-vector-multithread/internal/config"
)

func TestRootCmd(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--sizes", "8,64", "--threads", "2", "--runs", "50", "--max-size", "500", "--seed", "1", "--log-level", "error"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "Testing with 90% of the vectors under 8 elements:")
	assert.Contains(t, out.String(), "Testing with 90% of the vectors under 64 elements:")
	assert.Equal(t, 2, strings.Count(out.String(), "Speedup factor"))
}

func TestRootCmdInvalidFlags(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--threads", "0", "--log-level", "error"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "threads 0 must be positive")
}

func TestRootCmdFlagOverridesInvalidEnv(t *testing.T) {
	t.Setenv(config.EnvThreads, "0")

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--threads", "2", "--sizes", "8", "--runs", "20", "--max-size", "200", "--seed", "1", "--log-level", "error"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "Speedup factor")
}

func TestRootCmdFlagOverridesInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("threads: 0\nruns: 0\ntypical_sizes: [8]\n"), 0600))

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--config", path, "--threads", "2", "--runs", "20", "--max-size", "200", "--seed", "1", "--log-level", "error"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "Testing with 90% of the vectors under 8 elements:")
}

func TestRootCmdInvalidFileWithoutOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("threads: 0\n"), 0600))

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--config", path, "--log-level", "error"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
	assert.Contains(t, err.Error(), "threads 0 must be positive")
}

func TestRootCmdMemoryLimit(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	// 64 bytes hold the initial 8 ints but not the first growth.
	cmd.SetArgs([]string{"--sizes", "8", "--threads", "1", "--runs", "500", "--seed", "3", "--memory-limit", "64B", "--log-level", "error"})

	err := cmd.Execute()
	require.Error(t, err)
	require.True(t, errors.Is(err, vector.ErrAllocation), "got %v", err)
}
