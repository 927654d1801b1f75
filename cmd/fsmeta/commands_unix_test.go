//go:build unix

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/jxsl13/fsmeta"
	"github.com/jxsl13/fsmeta/internal/testutils"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// isolate keeps config files of the machine running the tests out of reach.
func isolate(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
}

func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := NewRootCmd(&out, &errOut)
	cmd.SetArgs(args)
	err = cmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func TestPermsCommand(t *testing.T) {
	isolate(t)

	file := filepath.Join(t.TempDir(), "test.txt")
	testutils.CreateFile(t, afero.NewOsFs(), file, "test_content", 0o644)
	testutils.MustExist(t, afero.NewOsFs(), file)

	out, _, err := run(t, "perms", file)
	require.NoError(t, err)
	require.Equal(t, "-rw-r--r--\n", out)
}

func TestOwnerCommandMissingPath(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "missing")

	out, _, err := run(t, "owner", path)
	require.True(t, errors.Is(err, errLookupFailed))
	require.Equal(t, "invalid path: "+path+"\n", out)

	out, _, err = run(t, "--degraded", "owner", path)
	require.NoError(t, err)
	require.Equal(t, fsmeta.UnknownOwner+"\n", out)
}

func TestStatCommandJSON(t *testing.T) {
	isolate(t)

	dir := filepath.Join(t.TempDir(), "sub")
	testutils.Mkdir(t, afero.NewOsFs(), dir, 0o755)

	out, _, err := run(t, "-o", "json", "stat", dir)

	var r map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	require.Equal(t, dir, r["path"])
	require.Equal(t, "drwxr-xr-x", r["permissions"])
	if err != nil {
		// uid without user database entry
		require.True(t, errors.Is(err, errLookupFailed))
		require.NotEmpty(t, r["owner_error"])
		return
	}
	require.NotEmpty(t, r["owner"])
}

func TestConfigFileAndFlagOverride(t *testing.T) {
	isolate(t)

	cfgPath := filepath.Join(t.TempDir(), "fsmeta.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("output: yaml\nlog_level: debug\n"), 0o644))

	file := filepath.Join(t.TempDir(), "test.txt")
	testutils.CreateFile(t, afero.NewOsFs(), file, "test_content", 0o600)

	out, _, err := run(t, "-c", cfgPath, "perms", file)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "---\n"), out)

	var r map[string]string
	require.NoError(t, yaml.Unmarshal([]byte(out), &r))
	require.Equal(t, "-rw-------", r["permissions"])
	require.Equal(t, file, r["path"])

	out, _, err = run(t, "-c", cfgPath, "-o", "text", "perms", file)
	require.NoError(t, err)
	require.Equal(t, "-rw-------\n", out)
}

func TestInvalidFlags(t *testing.T) {
	isolate(t)

	_, _, err := run(t, "-o", "csv", "perms", ".")
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid output")

	_, _, err = run(t, "-c", filepath.Join(t.TempDir(), "missing.yaml"), "perms", ".")
	require.Error(t, err)

	_, _, err = run(t, "perms")
	require.Error(t, err)
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestWatchReportsChmod(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "test.txt")
	testutils.CreateFile(t, afero.NewOsFs(), file, "test_content", 0o644)

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	var out syncBuffer
	a, err := newApp(DefaultConfig(), logger, &out)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- a.watch(ctx, file)
	}()

	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "-rw-r--r--")
	}, 5*time.Second, 10*time.Millisecond)

	require.NoError(t, os.Chmod(file, 0o600))

	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "-rw-------")
	}, 5*time.Second, 10*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
}

func TestWatchStopsOnRemove(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "test.txt")
	testutils.CreateFile(t, afero.NewOsFs(), file, "test_content", 0o644)

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	var out syncBuffer
	a, err := newApp(DefaultConfig(), logger, &out)
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() {
		done <- a.watch(context.Background(), file)
	}()

	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "-rw-r--r--")
	}, 5*time.Second, 10*time.Millisecond)

	require.NoError(t, os.Remove(file))
	testutils.MustNotExist(t, afero.NewOsFs(), file)

	select {
	case err := <-done:
		require.True(t, errors.Is(err, errWatchedPathGone))
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop after the path was removed")
	}
	require.Contains(t, out.String(), "invalid path: "+file)
}

func TestWatchIgnoresDirectoryEntries(t *testing.T) {
	t.Parallel()

	osfs := afero.NewOsFs()
	dir := filepath.Join(t.TempDir(), "d")
	testutils.Mkdir(t, osfs, dir, 0o755)

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	var out syncBuffer
	a, err := newApp(DefaultConfig(), logger, &out)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- a.watch(ctx, dir)
	}()

	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "drwxr-xr-x")
	}, 5*time.Second, 10*time.Millisecond)

	child := filepath.Join(dir, "child")
	testutils.CreateFile(t, osfs, child, "test_content", 0o644)
	require.NoError(t, os.Remove(child))

	// events arrive in order, the chmod line comes after all child events
	testutils.Chmod(t, osfs, dir, 0o700)

	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "drwx------")
	}, 5*time.Second, 10*time.Millisecond)

	cancel()
	require.NoError(t, <-done)

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, 2, out.String())
	require.True(t, strings.HasPrefix(lines[0], "drwxr-xr-x\t"), lines[0])
	require.True(t, strings.HasPrefix(lines[1], "drwx------\t"), lines[1])
}

func TestWatchStopsOnRename(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "test.txt")
	testutils.CreateFile(t, afero.NewOsFs(), file, "test_content", 0o644)

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	var out syncBuffer
	a, err := newApp(DefaultConfig(), logger, &out)
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() {
		done <- a.watch(context.Background(), file)
	}()

	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "-rw-r--r--")
	}, 5*time.Second, 10*time.Millisecond)

	require.NoError(t, os.Rename(file, filepath.Join(dir, "renamed.txt")))

	select {
	case err := <-done:
		require.True(t, errors.Is(err, errWatchedPathGone))
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop after the path was renamed")
	}
	require.Contains(t, out.String(), "invalid path: "+file)
}
