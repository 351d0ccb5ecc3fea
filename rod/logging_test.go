package rod_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/mwalczak/linktray"
	"github.com/mwalczak/linktray/mock"
	"github.com/mwalczak/linktray/rod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingAccessor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("delegates and logs the result", func(t *testing.T) {
		t.Parallel()

		next := &mock.PageAccessor{
			ExtractFn: func(_ context.Context, _ *linktray.Tab, _ linktray.CaptureContext) (*linktray.Link, error) {
				return &linktray.Link{Title: "Example", URL: "https://example.com"}, nil
			},
		}

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		accessor := rod.NewLoggingAccessor(next, logger)

		link, err := accessor.Extract(context.Background(), &linktray.Tab{ID: "t1", URL: "https://example.com"}, linktray.CaptureContext{Kind: linktray.CaptureShortcut})

		require.NoError(t, err)
		require.NotNil(t, link)
		assert.Contains(t, buf.String(), "extract")
		assert.Contains(t, buf.String(), "https://example.com")
	})

	t.Run("logs a nil result without panicking", func(t *testing.T) {
		t.Parallel()

		next := &mock.PageAccessor{
			ExtractFn: func(context.Context, *linktray.Tab, linktray.CaptureContext) (*linktray.Link, error) {
				return nil, nil
			},
		}

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		accessor := rod.NewLoggingAccessor(next, logger)

		link, err := accessor.Extract(context.Background(), &linktray.Tab{ID: "t1"}, linktray.CaptureContext{})

		require.NoError(t, err)
		assert.Nil(t, link)
	})
}

func TestLoggingAccessor_ActiveTab(t *testing.T) {
	t.Parallel()

	next := &mock.PageAccessor{
		ActiveTabFn: func(context.Context) (*linktray.Tab, error) {
			return &linktray.Tab{ID: "t1", URL: "https://example.com"}, nil
		},
	}

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	accessor := rod.NewLoggingAccessor(next, logger)

	tab, err := accessor.ActiveTab(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "t1", tab.ID)
	assert.Contains(t, buf.String(), "active tab")
}
