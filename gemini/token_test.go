package gemini_test

import (
	"context"
	"testing"

	"github.com/fwojciec/llmstxt"
	"github.com/fwojciec/llmstxt/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenCounter_CountTokens(t *testing.T) {
	t.Parallel()

	tc, err := gemini.NewTokenCounter(gemini.DefaultModel)
	require.NoError(t, err)

	t.Run("counts tokens in text", func(t *testing.T) {
		t.Parallel()

		count, err := tc.CountTokens(context.Background(), "# Starter Tutorial\n\nInstall the package.")

		require.NoError(t, err)
		assert.Positive(t, count)
	})

	t.Run("blank text returns zero", func(t *testing.T) {
		t.Parallel()

		count, err := tc.CountTokens(context.Background(), "  \n")

		require.NoError(t, err)
		assert.Equal(t, 0, count)
	})

	t.Run("combined documents count at least their parts", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		a, err := tc.CountTokens(ctx, "# Loading data with readers")
		require.NoError(t, err)
		b, err := tc.CountTokens(ctx, "# Querying an index with a query engine")
		require.NoError(t, err)

		combined, err := tc.CountTokens(ctx, llmstxt.JoinDocuments([]string{
			"# Loading data with readers",
			"# Querying an index with a query engine",
		}))

		require.NoError(t, err)
		assert.GreaterOrEqual(t, combined, a+b)
	})
}
