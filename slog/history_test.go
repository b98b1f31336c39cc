package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/devdocs"
	"github.com/fwojciec/devdocs/mock"
	devslog "github.com/fwojciec/devdocs/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func debugLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestLoggingHistoryService(t *testing.T) {
	t.Parallel()

	t.Run("logs create with assigned id", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.HistoryService{
			CreateQAItemFn: func(_ context.Context, item *devdocs.QAItem) error {
				item.ID = "qa-1"
				return nil
			},
		}

		err := devslog.NewLoggingHistoryService(inner, debugLogger(&buf)).
			CreateQAItem(context.Background(), &devdocs.QAItem{Question: "q"})

		require.NoError(t, err)
		assert.Contains(t, buf.String(), `msg="history create"`)
		assert.Contains(t, buf.String(), "id=qa-1")
	})

	t.Run("logs find with count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.HistoryService{
			FindQAItemsFn: func(context.Context, devdocs.QAFilter) ([]*devdocs.QAItem, error) {
				return []*devdocs.QAItem{{ID: "1"}, {ID: "2"}}, nil
			},
		}

		items, err := devslog.NewLoggingHistoryService(inner, debugLogger(&buf)).
			FindQAItems(context.Background(), devdocs.QAFilter{})

		require.NoError(t, err)
		assert.Len(t, items, 2)
		assert.Contains(t, buf.String(), "count=2")
	})

	t.Run("logs clear errors", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.HistoryService{
			ClearQAItemsFn: func(context.Context) error {
				return errors.New("disk full")
			},
		}

		err := devslog.NewLoggingHistoryService(inner, debugLogger(&buf)).ClearQAItems(context.Background())

		require.Error(t, err)
		assert.Contains(t, buf.String(), `err="disk full"`)
	})

	t.Run("stays quiet above debug level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.HistoryService{
			ClearQAItemsFn: func(context.Context) error { return nil },
		}

		err := devslog.NewLoggingHistoryService(inner, slog.New(slog.NewTextHandler(&buf, nil))).
			ClearQAItems(context.Background())

		require.NoError(t, err)
		assert.Empty(t, buf.String())
	})
}
