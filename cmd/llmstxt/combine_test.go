package main_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/llmstxt"
	main "github.com/fwojciec/llmstxt/cmd/llmstxt"
	"github.com/fwojciec/llmstxt/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCombineCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints the artifact summary", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    testContext(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Combiner: &mock.Combiner{
				CombineFn: func(context.Context) (*llmstxt.CombineResult, error) {
					return &llmstxt.CombineResult{
						Path:     "/out/llms.txt",
						Slugs:    []string{"index", "guide"},
						Excluded: []string{"changelog"},
						Bytes:    2048,
					}, nil
				},
			},
		}

		err := (&main.CombineCmd{}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Wrote /out/llms.txt: 2 documents, 2.0 KB")
		assert.Contains(t, stdout.String(), "Excluded changelogs: [changelog]")
	})

	t.Run("explains when there is nothing to combine", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    testContext(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Paths:  llmstxt.Paths{Root: "/out"},
			Combiner: &mock.Combiner{
				CombineFn: func(context.Context) (*llmstxt.CombineResult, error) {
					return &llmstxt.CombineResult{}, nil
				},
			},
		}

		err := (&main.CombineCmd{}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No documents in /out/latest")
	})

	t.Run("returns combine errors", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    testContext(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Combiner: &mock.Combiner{
				CombineFn: func(context.Context) (*llmstxt.CombineResult, error) {
					return nil, errors.New("permission denied")
				},
			},
		}

		err := (&main.CombineCmd{}).Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "permission denied")
	})
}
