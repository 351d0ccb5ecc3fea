package main_test

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	main "github.com/mwalczak/linktray/cmd/linktray"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain_Run(t *testing.T) {
	t.Run("list works against a fresh session store", func(t *testing.T) {
		t.Setenv("LINKTRAY_DATA", t.TempDir())

		m := main.NewMain()
		m.ConfigPath = filepath.Join(t.TempDir(), "absent.yaml")

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"list"}, stdout, stderr)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No links captured")
	})

	t.Run("clear then list round-trips through the store", func(t *testing.T) {
		t.Setenv("LINKTRAY_DATA", t.TempDir())

		m := main.NewMain()
		m.ConfigPath = filepath.Join(t.TempDir(), "absent.yaml")

		stdout := &bytes.Buffer{}
		err := m.Run(context.Background(), []string{"clear", "--force"}, stdout, &bytes.Buffer{})

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Deleted all links")
	})

	t.Run("no command prints help and errors", func(t *testing.T) {
		t.Setenv("LINKTRAY_DATA", t.TempDir())

		m := main.NewMain()
		m.ConfigPath = filepath.Join(t.TempDir(), "absent.yaml")

		stdout := &bytes.Buffer{}
		err := m.Run(context.Background(), nil, stdout, &bytes.Buffer{})

		require.Error(t, err)
		assert.Contains(t, stdout.String(), "capture")
	})
}
