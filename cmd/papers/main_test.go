package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"paperapi/internal/paper"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the CLI in an isolated working directory and home.
func run(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append(args, "--db", filepath.Join(dir, "papers.db")))
	err := cmd.Execute()
	return out.String(), err
}

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", dir)
	t.Setenv("PAPERS_DB", "")
	os.Unsetenv("PAPERS_DB")
	return dir
}

func decode(t *testing.T, out string) []paper.Paper {
	t.Helper()
	var papers []paper.Paper
	require.NoError(t, json.Unmarshal([]byte(out), &papers))
	return papers
}

func TestList(t *testing.T) {
	dir := isolate(t)

	out, err := run(t, dir, "list", "--json")
	require.NoError(t, err)
	assert.Len(t, decode(t, out), 10)

	out, err = run(t, dir, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "ID")
	assert.Contains(t, out, "The Rise of Renewable Energy")
}

func TestSearch(t *testing.T) {
	dir := isolate(t)

	out, err := run(t, dir, "search", "processing", "--json")
	require.NoError(t, err)
	papers := decode(t, out)
	require.Len(t, papers, 1)
	assert.Equal(t, "4", papers[0].ID)

	_, err = run(t, dir, "search", "nlp")
	assert.EqualError(t, err, "no such article found")

	_, err = run(t, dir, "search", "")
	assert.Error(t, err)
}

func TestSaveAndRemove(t *testing.T) {
	dir := isolate(t)

	out, err := run(t, dir, "saved")
	require.NoError(t, err)
	assert.Contains(t, out, "No papers.")

	_, err = run(t, dir, "save", "4")
	require.NoError(t, err)
	out, err = run(t, dir, "save", "9", "--json")
	require.NoError(t, err)
	assert.Len(t, decode(t, out), 2)

	out, err = run(t, dir, "save", "4", "--json")
	require.NoError(t, err)
	assert.Len(t, decode(t, out), 2)

	out, err = run(t, dir, "remove", "4", "--json")
	require.NoError(t, err)
	papers := decode(t, out)
	require.Len(t, papers, 1)
	assert.Equal(t, "9", papers[0].ID)

	_, err = run(t, dir, "remove", "4")
	assert.EqualError(t, err, `paper "4" is not saved`)

	_, err = run(t, dir, "save", "42")
	assert.Error(t, err)
}

func TestConfigFile(t *testing.T) {
	dir := isolate(t)
	catalogPath := filepath.Join(dir, "catalog.yaml")
	require.NoError(t, os.WriteFile(catalogPath, []byte("papers:\n  - {id: x, title: Only One, authors: Someone}\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "papers.yaml"), []byte("catalog: "+catalogPath+"\n"), 0o644))

	out, err := run(t, dir, "list", "--json")
	require.NoError(t, err)
	papers := decode(t, out)
	require.Len(t, papers, 1)
	assert.Equal(t, "x", papers[0].ID)

	_, err = run(t, dir, "list", "--config", filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	dir := isolate(t)
	out, err := run(t, dir, "version")
	require.NoError(t, err)
	assert.Equal(t, "papers dev\n", out)
}
