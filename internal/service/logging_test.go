//go:build !integration

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/guttosm/container-order-service/internal/domain/model"
	"github.com/guttosm/container-order-service/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestNewLoggingService(t *testing.T) {
	svc := NewLoggingService(mocks.NewMockLogsRepositoryInterface(t))
	assert.IsType(t, &LoggingServiceImpl{}, svc)
}

func TestLoggingService_CreateLog(t *testing.T) {
	tests := []struct {
		name    string
		entry   *model.LogEntry
		repoErr error
		check   func(*testing.T, *model.LogEntry)
	}{
		{
			name:  "defaults are filled",
			entry: &model.LogEntry{Message: "item added", SessionID: "s-1", ActionType: model.ActionItemAdded},
			check: func(t *testing.T, e *model.LogEntry) {
				assert.False(t, e.ID.IsZero())
				assert.False(t, e.Timestamp.IsZero())
				assert.Equal(t, "info", e.Level)
			},
		},
		{
			name: "explicit values are kept",
			entry: &model.LogEntry{
				ID:        primitive.NewObjectID(),
				Timestamp: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
				Level:     "error",
				Message:   "submission failed",
			},
			check: func(t *testing.T, e *model.LogEntry) {
				assert.Equal(t, "error", e.Level)
				assert.Equal(t, 2026, e.Timestamp.Year())
			},
		},
		{
			name:    "repository error is returned",
			entry:   &model.LogEntry{Message: "x"},
			repoErr: errors.New("write failed"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockLogsRepositoryInterface(t)
			repo.On("Create", mock.Anything, tt.entry).Return(tt.repoErr)

			err := NewLoggingService(repo).CreateLog(context.Background(), tt.entry)
			if tt.repoErr != nil {
				assert.ErrorIs(t, err, tt.repoErr)
				return
			}
			require.NoError(t, err)
			tt.check(t, tt.entry)
		})
	}
}

func TestLoggingService_CreateLogs(t *testing.T) {
	t.Run("empty batch skips the repository", func(t *testing.T) {
		repo := mocks.NewMockLogsRepositoryInterface(t)
		assert.NoError(t, NewLoggingService(repo).CreateLogs(context.Background(), nil))
	})

	t.Run("batch is prepared and written once", func(t *testing.T) {
		entries := []*model.LogEntry{{Message: "a"}, {Message: "b", Level: "warn"}}
		repo := mocks.NewMockLogsRepositoryInterface(t)
		repo.On("CreateMany", mock.Anything, entries).Return(nil).Once()

		require.NoError(t, NewLoggingService(repo).CreateLogs(context.Background(), entries))
		assert.Equal(t, "info", entries[0].Level)
		assert.Equal(t, "warn", entries[1].Level)
		assert.False(t, entries[1].ID.IsZero())
	})
}

func TestLoggingService_QueryLogs(t *testing.T) {
	tests := []struct {
		name      string
		opts      model.LogQueryOptions
		wantLimit int
		wantSkip  int
	}{
		{name: "no limit uses the cap", opts: model.LogQueryOptions{}, wantLimit: MaxLogQueryLimit},
		{name: "limit above cap is clamped", opts: model.LogQueryOptions{Limit: 10000}, wantLimit: MaxLogQueryLimit},
		{name: "small limit is kept", opts: model.LogQueryOptions{Limit: 20, Skip: 40}, wantLimit: 20, wantSkip: 40},
		{name: "negative skip is reset", opts: model.LogQueryOptions{Limit: 5, Skip: -1}, wantLimit: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockLogsRepositoryInterface(t)
			repo.On("Query", mock.Anything, mock.MatchedBy(func(o model.LogQueryOptions) bool {
				return o.Limit == tt.wantLimit && o.Skip == tt.wantSkip
			})).Return([]*model.LogEntry{{Message: "one"}}, nil)

			entries, err := NewLoggingService(repo).QueryLogs(context.Background(), tt.opts)
			require.NoError(t, err)
			require.Len(t, entries, 1)
			assert.Equal(t, "one", entries[0].Message)
		})
	}

	t.Run("repository error", func(t *testing.T) {
		repo := mocks.NewMockLogsRepositoryInterface(t)
		repo.On("Query", mock.Anything, mock.Anything).Return(nil, errors.New("boom"))

		entries, err := NewLoggingService(repo).QueryLogs(context.Background(), model.LogQueryOptions{})
		assert.Error(t, err)
		assert.Nil(t, entries)
	})
}

func TestLoggingService_CountLogs(t *testing.T) {
	repo := mocks.NewMockLogsRepositoryInterface(t)
	opts := model.LogQueryOptions{Level: "error"}
	repo.On("Count", mock.Anything, opts).Return(int64(7), nil)

	n, err := NewLoggingService(repo).CountLogs(context.Background(), opts)
	require.NoError(t, err)
	assert.Equal(t, int64(7), n)
}

func TestLoggingService_AuditTrail(t *testing.T) {
	repo := mocks.NewMockLogsRepositoryInterface(t)
	repo.On("Query", mock.Anything, model.LogQueryOptions{SessionID: "s-1", Limit: 50}).Return([]*model.LogEntry{
		{Message: "order submitted", SessionID: "s-1", ActionType: model.ActionOrderSubmitted},
		{Message: "HTTP request", SessionID: "s-1"},
		{Message: "item added", SessionID: "s-1", ActionType: model.ActionItemAdded},
	}, nil)

	trail, err := NewLoggingService(repo).AuditTrail(context.Background(), "s-1", 50)
	require.NoError(t, err)
	require.Len(t, trail, 2)
	assert.Equal(t, model.ActionOrderSubmitted, trail[0].ActionType)
	assert.Equal(t, model.ActionItemAdded, trail[1].ActionType)
}
