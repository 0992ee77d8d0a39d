//go:build !windows

package dmenu

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeMenu writes a shell script standing in for the menu program and
// returns a Menu pointed at it.
func fakeMenu(t *testing.T, script string) (*Menu, string) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "menu")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script+"\n"), 0755))

	m := New(Config{}, discard())
	m.SetProgram(path)
	return m, dir
}

func TestSelect_ReturnsChosenLine(t *testing.T) {
	m, _ := fakeMenu(t, `head -n 1`)

	got, err := m.Select([]string{"first", "second"}, "Connections")
	require.NoError(t, err)
	assert.Equal(t, "first", got)
}

func TestSelect_EscapeIsCancellation(t *testing.T) {
	m, _ := fakeMenu(t, `exit 1`)

	got, err := m.Select([]string{"first"}, "Connections")
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestSelect_TrimsWhitespace(t *testing.T) {
	m, _ := fakeMenu(t, `echo "  padded  "`)

	got, err := m.Select([]string{"padded"}, "Connections")
	require.NoError(t, err)
	assert.Equal(t, "padded", got)
}

func TestInput_ZeroLineCount(t *testing.T) {
	m, dir := fakeMenu(t, `echo "$@" > "`+"$ARGS_FILE"+`"; echo secret`)
	argsFile := filepath.Join(dir, "args")
	t.Setenv("ARGS_FILE", argsFile)

	got, err := m.Input("Passphrase")
	require.NoError(t, err)
	assert.Equal(t, "secret", got)

	args, err := os.ReadFile(argsFile)
	require.NoError(t, err)
	assert.Contains(t, string(args), "-l 0")
	assert.Contains(t, string(args), "-p Passphrase")
}

func TestInput_PassphraseFlags(t *testing.T) {
	cfg := Config{Dmenu: map[string]string{"passphrase_flags": "-password"}}
	m := New(cfg, discard())

	dir := t.TempDir()
	path := filepath.Join(dir, "menu")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\necho \"$@\" > \"$ARGS_FILE\"\n"), 0755))
	m.SetProgram(path)
	t.Setenv("ARGS_FILE", filepath.Join(dir, "args"))

	_, err := m.Input("Passphrase")
	require.NoError(t, err)

	args, err := os.ReadFile(filepath.Join(dir, "args"))
	require.NoError(t, err)
	assert.Contains(t, string(args), "-password")
}
