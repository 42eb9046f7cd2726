package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/llmstxt/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionFile(t *testing.T) {
	t.Parallel()

	t.Run("missing file means no version", func(t *testing.T) {
		t.Parallel()

		vf := fs.NewVersionFile(filepath.Join(t.TempDir(), "LAST_VERSION"))

		tag, ok, err := vf.CurrentVersion(context.Background())

		require.NoError(t, err)
		assert.False(t, ok)
		assert.Empty(t, tag)
	})

	t.Run("blank file means no version", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "LAST_VERSION")
		require.NoError(t, os.WriteFile(path, []byte("  \n"), 0644))

		_, ok, err := fs.NewVersionFile(path).CurrentVersion(context.Background())

		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("update then read returns the tag", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "LAST_VERSION")
		vf := fs.NewVersionFile(path)
		ctx := context.Background()

		require.NoError(t, vf.UpdateVersion(ctx, "0.10.1"))
		require.NoError(t, vf.UpdateVersion(ctx, "0.11.0"))
		tag, ok, err := vf.CurrentVersion(ctx)

		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "0.11.0", tag)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "0.11.0\n", string(data))
	})

	t.Run("rejects empty tag", func(t *testing.T) {
		t.Parallel()

		vf := fs.NewVersionFile(filepath.Join(t.TempDir(), "LAST_VERSION"))

		require.Error(t, vf.UpdateVersion(context.Background(), ""))
	})
}
