package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fwojciec/llmstxt"
	"github.com/fwojciec/llmstxt/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDocs(t *testing.T, dir string, docs map[string]string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0755))
	for slug, content := range docs {
		require.NoError(t, os.WriteFile(filepath.Join(dir, slug+".md"), []byte(content), 0644))
	}
}

func TestCombiner_Combine(t *testing.T) {
	t.Parallel()

	t.Run("joins documents in slug order with separators", func(t *testing.T) {
		t.Parallel()

		// Given four documents at different depths
		root := t.TempDir()
		dir := filepath.Join(root, "latest")
		writeDocs(t, dir, map[string]string{
			"a.b.c": "# ABC",
			"index": "# Index",
			"a.b":   "# AB",
			"a":     "# A",
		})
		artifact := filepath.Join(root, "llms.txt")

		// When I combine them
		result, err := fs.NewCombiner(dir, artifact).Combine(context.Background())

		// Then the artifact lists shallow pages first
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "index", "a.b", "a.b.c"}, result.Slugs)
		assert.True(t, result.Written())
		assert.Equal(t, artifact, result.Path)

		data, err := os.ReadFile(artifact)
		require.NoError(t, err)
		assert.Equal(t, "# A\n\n---\n\n# Index\n\n---\n\n# AB\n\n---\n\n# ABC", string(data))
		assert.Equal(t, len(data), result.Bytes)
		assert.Equal(t, 3, strings.Count(string(data), llmstxt.Separator))
	})

	t.Run("includes documents whose slug starts with a dot", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		dir := filepath.Join(root, "latest")
		store := fs.NewDocumentStore(dir)
		ctx := context.Background()
		require.NoError(t, store.SaveDocument(ctx, &llmstxt.Document{Slug: ".well-known.security", Content: "# Security"}))
		require.NoError(t, store.SaveDocument(ctx, &llmstxt.Document{Slug: "index", Content: "# Index"}))

		result, err := fs.NewCombiner(dir, filepath.Join(root, "llms.txt")).Combine(ctx)

		require.NoError(t, err)
		assert.Equal(t, []string{"index", ".well-known.security"}, result.Slugs)
	})

	t.Run("unreadable document is reported and the rest are combined", func(t *testing.T) {
		t.Parallel()

		if os.Geteuid() == 0 {
			t.Skip("file permissions are not enforced for root")
		}

		// Given one document that cannot be read
		root := t.TempDir()
		dir := filepath.Join(root, "latest")
		writeDocs(t, dir, map[string]string{
			"index":  "# Index",
			"guide":  "# Guide",
			"secret": "# Secret",
		})
		secret := filepath.Join(dir, "secret.md")
		require.NoError(t, os.Chmod(secret, 0))
		t.Cleanup(func() { _ = os.Chmod(secret, 0644) })
		artifact := filepath.Join(root, "llms.txt")

		// When I combine
		result, err := fs.NewCombiner(dir, artifact).Combine(context.Background())

		// Then the readable documents are written and the bad one is an issue
		require.NoError(t, err)
		assert.Equal(t, []string{"guide", "index"}, result.Slugs)
		require.Len(t, result.Issues, 1)
		assert.Equal(t, "secret", result.Issues[0].Slug)
		assert.Error(t, result.Issues[0].Err)

		data, err := os.ReadFile(artifact)
		require.NoError(t, err)
		assert.Equal(t, "# Guide\n\n---\n\n# Index", string(data))
	})

	t.Run("excludes changelog documents", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		dir := filepath.Join(root, "latest")
		writeDocs(t, dir, map[string]string{
			"index":             "# Index",
			"release.CHANGELOG": "# Changes",
		})
		artifact := filepath.Join(root, "llms.txt")

		result, err := fs.NewCombiner(dir, artifact).Combine(context.Background())

		require.NoError(t, err)
		assert.Equal(t, []string{"index"}, result.Slugs)
		assert.Equal(t, []string{"release.CHANGELOG"}, result.Excluded)
		data, err := os.ReadFile(artifact)
		require.NoError(t, err)
		assert.NotContains(t, string(data), "Changes")
	})

	t.Run("trims content and skips whitespace-only documents", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		dir := filepath.Join(root, "latest")
		writeDocs(t, dir, map[string]string{
			"a": "\n\n  # A  \n\n",
			"b": "   \n\t\n",
		})
		artifact := filepath.Join(root, "llms.txt")

		result, err := fs.NewCombiner(dir, artifact).Combine(context.Background())

		require.NoError(t, err)
		assert.Equal(t, []string{"a"}, result.Slugs)
		assert.Equal(t, []string{"b"}, result.Empty)
		data, err := os.ReadFile(artifact)
		require.NoError(t, err)
		assert.Equal(t, "# A", string(data))
	})

	t.Run("no surviving documents writes no artifact", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		dir := filepath.Join(root, "latest")
		writeDocs(t, dir, map[string]string{"changelog": "# Changes"})
		artifact := filepath.Join(root, "llms.txt")

		result, err := fs.NewCombiner(dir, artifact).Combine(context.Background())

		require.NoError(t, err)
		assert.False(t, result.Written())
		assert.Empty(t, result.Path)
		_, err = os.Stat(artifact)
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("missing working directory is not an error", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()

		result, err := fs.NewCombiner(filepath.Join(root, "latest"), filepath.Join(root, "llms.txt")).Combine(context.Background())

		require.NoError(t, err)
		assert.False(t, result.Written())
	})

	t.Run("overwrites previous artifact", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		dir := filepath.Join(root, "latest")
		writeDocs(t, dir, map[string]string{"index": "# New"})
		artifact := filepath.Join(root, "llms.txt")
		require.NoError(t, os.WriteFile(artifact, []byte("old content that is longer"), 0644))

		_, err := fs.NewCombiner(dir, artifact).Combine(context.Background())

		require.NoError(t, err)
		data, err := os.ReadFile(artifact)
		require.NoError(t, err)
		assert.Equal(t, "# New", string(data))
	})
}
