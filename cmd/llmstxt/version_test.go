package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/llmstxt"
	main "github.com/fwojciec/llmstxt/cmd/llmstxt"
	"github.com/fwojciec/llmstxt/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func currentVersion(tag string) *mock.VersionService {
	return &mock.VersionService{
		CurrentVersionFn: func(context.Context) (string, bool, error) {
			return tag, tag != "", nil
		},
	}
}

func TestVersionShowCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints the current version", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: testContext(), Stdout: stdout, Stderr: &bytes.Buffer{}, Versions: currentVersion("0.12.3")}

		err := (&main.VersionShowCmd{}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "0.12.3\n", stdout.String())
	})

	t.Run("explains when no version is recorded", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: testContext(), Stdout: stdout, Stderr: &bytes.Buffer{}, Versions: currentVersion("")}

		err := (&main.VersionShowCmd{}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No version recorded")
	})
}

func TestVersionSetCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("records the tag", func(t *testing.T) {
		t.Parallel()

		var updated string
		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    testContext(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Versions: &mock.VersionService{
				UpdateVersionFn: func(_ context.Context, tag string) error {
					updated = tag
					return nil
				},
			},
		}

		err := (&main.VersionSetCmd{Tag: "2.0"}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "2.0", updated)
		assert.Contains(t, stdout.String(), "Current version: 2.0")
	})

	t.Run("rejects an invalid tag", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: testContext(), Stdout: &bytes.Buffer{}, Stderr: stderr}

		err := (&main.VersionSetCmd{Tag: "a/b"}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, llmstxt.EINVALID, llmstxt.ErrorCode(err))
	})
}

func TestVersionsCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("marks the current version", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    testContext(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Archiver: &mock.Archiver{
				ListSnapshotsFn: func(context.Context) ([]string, error) {
					return []string{"1.0", "1.1"}, nil
				},
			},
			Versions: currentVersion("1.1"),
		}

		err := (&main.VersionsCmd{}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "  1.0\n* 1.1\n", stdout.String())
	})

	t.Run("explains when nothing is archived", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    testContext(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Archiver: &mock.Archiver{
				ListSnapshotsFn: func(context.Context) ([]string, error) { return nil, nil },
			},
		}

		err := (&main.VersionsCmd{}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No archived versions")
	})
}
