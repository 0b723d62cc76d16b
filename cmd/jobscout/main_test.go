package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestMain returns a Main backed by a throwaway database.
func newTestMain(t *testing.T) *Main {
	t.Helper()
	m := NewMain()
	m.DBPath = t.TempDir() + "/jobscout.db"
	return m
}

func TestMain_Run(t *testing.T) {
	t.Run("no arguments shows help and errors", func(t *testing.T) {
		t.Parallel()

		m := newTestMain(t)
		var stdout, stderr bytes.Buffer

		err := m.Run(context.Background(), nil, &stdout, &stderr)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no command specified")
		assert.Contains(t, stdout.String(), "discover")
	})

	t.Run("help command succeeds", func(t *testing.T) {
		t.Parallel()

		m := newTestMain(t)
		var stdout, stderr bytes.Buffer

		err := m.Run(context.Background(), []string{"--help"}, &stdout, &stderr)
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "jobscout")
	})

	t.Run("unknown command errors", func(t *testing.T) {
		t.Parallel()

		m := newTestMain(t)
		var stdout, stderr bytes.Buffer

		err := m.Run(context.Background(), []string{"bogus"}, &stdout, &stderr)
		require.Error(t, err)
	})

	t.Run("boards command lists known domains", func(t *testing.T) {
		t.Parallel()

		m := newTestMain(t)
		var stdout, stderr bytes.Buffer

		err := m.Run(context.Background(), []string{"boards"}, &stdout, &stderr)
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "greenhouse.io")
		assert.Contains(t, stdout.String(), "lever.co")
	})

	t.Run("list on a fresh database prints a hint", func(t *testing.T) {
		t.Parallel()

		m := newTestMain(t)
		var stdout, stderr bytes.Buffer

		err := m.Run(context.Background(), []string{"list"}, &stdout, &stderr)
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No discoveries found")
	})

	t.Run("discover with llm but no key errors", func(t *testing.T) {
		m := newTestMain(t)
		t.Setenv("GEMINI_API_KEY", "")
		var stdout, stderr bytes.Buffer

		err := m.Run(context.Background(), []string{"discover", "--llm", "https://example.com/careers"}, &stdout, &stderr)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "GEMINI_API_KEY")
	})
}
