package runner

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jctratt/colls/pkg/colls/logging"
)

// fakeLister writes a shell script standing in for the listing tool. The
// script ignores the --color flag and any other arguments.
func fakeLister(t *testing.T, script string) Options {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fakels")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script+"\n"), 0o755))
	return Options{Path: path, ColorMode: "never"}
}

func TestRun_CapturesLines(t *testing.T) {
	opts := fakeLister(t, `printf 'total 24\nline one\nline two\n'`)
	lines, err := Run(context.Background(), opts)
	require.NoError(t, err)
	assert.Equal(t, []string{"total 24", "line one", "line two"}, lines)
}

func TestRun_EmptyOutput(t *testing.T) {
	lines, err := Run(context.Background(), fakeLister(t, "true"))
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestRun_FailureCarriesStderr(t *testing.T) {
	_, err := Run(context.Background(), fakeLister(t, `echo "cannot access" >&2; exit 2`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot access")
}

func TestRun_MissingBinary(t *testing.T) {
	_, err := Run(context.Background(), Options{Path: "/nonexistent/ls", ColorMode: "never"})
	assert.Error(t, err)
}

func TestRun_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Run(ctx, fakeLister(t, "sleep 5"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_LogsAfterLoggingInit(t *testing.T) {
	// Loggers fetched before Init discard everything. Run must fetch its
	// logger per call so invocations land in the file once Init ran.
	logPath := filepath.Join(t.TempDir(), "colls.log")
	require.NoError(t, logging.Init(logging.Config{Level: "debug", Path: logPath}))
	defer func() { require.NoError(t, logging.Close()) }()

	_, err := Run(context.Background(), fakeLister(t, "true"))
	require.NoError(t, err)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "running listing tool")
}

func TestResolveColor(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "notatty")
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, "always", ResolveColor("always", f))
	assert.Equal(t, "never", ResolveColor("never", f))
	// A regular file is not a terminal.
	assert.Equal(t, "never", ResolveColor("auto", f))
}
