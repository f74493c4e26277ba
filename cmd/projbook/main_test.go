package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/h0rv/projbook/internal/domain"
)

// runCLI executes the root command against an isolated data file.
func runCLI(t *testing.T, dataFile string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("PROJBOOK_STORAGE", "")
	t.Setenv("PROJBOOK_LOG_LEVEL", "error")
	dataFileFlag, storageFlag = "", ""

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--data-file", dataFile}, args...))
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestExec(t *testing.T) {
	dataFile := filepath.Join(t.TempDir(), "book.json")

	out, err := runCLI(t, dataFile, "exec", "project", "-a", "n/Website", "r/octo/site")
	require.NoError(t, err)
	assert.Contains(t, out, "New project added: Website (#1)")

	out, err = runCLI(t, dataFile, "exec", "issue", "-a", "pid/1", "t/Fix", "login", "pr/high")
	require.NoError(t, err)
	assert.Contains(t, out, "New issue added: Fix login (#1)")

	out, err = runCLI(t, dataFile, "exec", "project", "-l")
	require.NoError(t, err)
	assert.Contains(t, out, "1. Website (#1)  https://github.com/octo/site")
	assert.Contains(t, out, "1 issues (0 completed)")
}

func TestExec_Errors(t *testing.T) {
	dataFile := filepath.Join(t.TempDir(), "book.json")

	_, err := runCLI(t, dataFile, "exec", "project", "-a")
	assert.ErrorIs(t, err, domain.ErrInvalidFormat)

	require.NoError(t, os.WriteFile(dataFile, []byte("{broken"), 0o644))
	_, err = runCLI(t, dataFile, "exec", "project", "-a", "n/Website")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPersistence)

	raw, err := os.ReadFile(dataFile)
	require.NoError(t, err)
	assert.Equal(t, "{broken", string(raw), "a damaged book is never overwritten by exec")
}

func TestExportRestore(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "book.json")
	_, err := runCLI(t, source, "exec", "project", "-a", "n/Website", "d/2024-12-01")
	require.NoError(t, err)
	_, err = runCLI(t, source, "exec", "client", "-a", "n/Amy", "pid/1", "e/amy@example.com")
	require.NoError(t, err)

	exported, err := runCLI(t, source, "export", "--format", "yaml")
	require.NoError(t, err)
	assert.Contains(t, exported, "name: Website")

	backup := filepath.Join(dir, "backup.yaml")
	require.NoError(t, os.WriteFile(backup, []byte(exported), 0o644))

	target := filepath.Join(dir, "restored.json")
	out, err := runCLI(t, target, "restore", backup)
	require.NoError(t, err)
	assert.Contains(t, out, "Restored 1 clients, 1 projects and 0 issues")

	listed, err := runCLI(t, target, "exec", "client", "-l")
	require.NoError(t, err)
	assert.Contains(t, listed, "Amy (#1)")
}

func TestExport_UnknownFormat(t *testing.T) {
	_, err := runCLI(t, filepath.Join(t.TempDir(), "book.json"), "export", "--format", "csv")
	assert.ErrorContains(t, err, `unknown format "csv"`)
}

func TestOpen_NoRepository(t *testing.T) {
	dataFile := filepath.Join(t.TempDir(), "book.json")
	_, err := runCLI(t, dataFile, "exec", "project", "-a", "n/Offline")
	require.NoError(t, err)

	_, err = runCLI(t, dataFile, "open", "1")
	assert.ErrorContains(t, err, "no repository")

	_, err = runCLI(t, dataFile, "open", "x")
	assert.ErrorIs(t, err, domain.ErrValidation)
}
