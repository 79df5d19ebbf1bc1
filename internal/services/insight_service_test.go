package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"blockday/internal/domain"
	"blockday/internal/insights"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRequester struct {
	insight *domain.Insight
	err     error
	calls   int
	last    insights.Summary
}

func (f *fakeRequester) RequestInsight(ctx context.Context, summary insights.Summary) (*domain.Insight, error) {
	f.calls++
	f.last = summary
	if f.err != nil {
		return nil, f.err
	}
	return f.insight, nil
}

func TestInsightRefresh_SavesOnSuccess(t *testing.T) {
	repo := newTestRepo(t)
	requester := &fakeRequester{
		insight: &domain.Insight{
			RequestID:       "req-1",
			Score:           81,
			Summary:         "Strong morning, weak evening.",
			Recommendations: []string{"Move deep work earlier"},
			CreatedAt:       time.Now(),
		},
	}
	service := NewInsightService(repo, requester, 10)
	ctx := context.Background()

	fresh, err := service.Refresh(ctx)
	require.NoError(t, err)
	assert.Equal(t, 81.0, fresh.Score)
	assert.Equal(t, 1, requester.calls)
	assert.Equal(t, 3, requester.last.TaskCount) // seeded starter content

	stored, err := service.Latest(ctx)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "req-1", stored.RequestID)
	assert.Equal(t, []string{"Move deep work earlier"}, stored.Recommendations)
}

func TestInsightRefresh_FailureKeepsPrior(t *testing.T) {
	repo := newTestRepo(t)
	requester := &fakeRequester{
		insight: &domain.Insight{RequestID: "req-1", Score: 60, Summary: "ok", CreatedAt: time.Now()},
	}
	service := NewInsightService(repo, requester, 10)
	ctx := context.Background()

	_, err := service.Refresh(ctx)
	require.NoError(t, err)

	requester.err = fmt.Errorf("model unavailable")
	_, err = service.Refresh(ctx)
	require.Error(t, err)

	stored, err := service.Latest(ctx)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "req-1", stored.RequestID)
}

func TestInsightLatest_EmptySlot(t *testing.T) {
	repo := newTestRepo(t)
	service := NewInsightService(repo, &fakeRequester{}, 10)

	stored, err := service.Latest(context.Background())
	require.NoError(t, err)
	assert.Nil(t, stored)
}

func TestInsightRefresh_NewerRequestReplacesSlot(t *testing.T) {
	repo := newTestRepo(t)
	requester := &fakeRequester{
		insight: &domain.Insight{RequestID: "req-1", Score: 60, Summary: "first", CreatedAt: time.Now()},
	}
	service := NewInsightService(repo, requester, 10)
	ctx := context.Background()

	_, err := service.Refresh(ctx)
	require.NoError(t, err)

	requester.insight = &domain.Insight{RequestID: "req-2", Score: 70, Summary: "second", CreatedAt: time.Now()}
	_, err = service.Refresh(ctx)
	require.NoError(t, err)

	stored, err := service.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, "req-2", stored.RequestID)
	assert.Equal(t, "second", stored.Summary)
}
