package services

import (
	"context"

	"blockday/internal/domain"
	"blockday/internal/errors"
	"blockday/internal/insights"
	"blockday/internal/repository/sqlite"
)

// insightServiceImpl implements InsightService
type insightServiceImpl struct {
	repo       sqlite.Repository
	requester  InsightRequester
	mapper     *domain.Mapper
	recentLogs int
}

// NewInsightService creates a new insight service instance
func NewInsightService(repo sqlite.Repository, requester InsightRequester, recentLogs int) InsightService {
	return &insightServiceImpl{
		repo:       repo,
		requester:  requester,
		mapper:     domain.NewMapper(),
		recentLogs: recentLogs,
	}
}

// BuildSummary extracts the compact payload the model sees
func (s *insightServiceImpl) BuildSummary(ctx context.Context) (insights.Summary, error) {
	dbTasks, err := s.repo.ListTasks(ctx)
	if err != nil {
		return insights.Summary{}, err
	}
	dbLogs, err := s.repo.ListTimeLogs(ctx)
	if err != nil {
		return insights.Summary{}, err
	}

	tasks := s.mapper.Task.FromDatabaseSlice(dbTasks)
	logs := s.mapper.TimeLog.FromDatabaseSlice(dbLogs)
	return insights.BuildSummary(tasks, logs, s.recentLogs), nil
}

// Refresh requests a fresh insight and replaces the stored slot on
// success. On any failure the previous insight stays untouched.
func (s *insightServiceImpl) Refresh(ctx context.Context) (*domain.Insight, error) {
	summary, err := s.BuildSummary(ctx)
	if err != nil {
		return nil, err
	}

	insight, err := s.requester.RequestInsight(ctx, summary)
	if err != nil {
		return nil, err
	}

	dbInsight, err := s.mapper.Insight.ToDatabase(*insight)
	if err != nil {
		return nil, errors.NewDatabaseError("encode insight", err)
	}
	if err := s.repo.SaveInsight(ctx, &dbInsight); err != nil {
		return nil, err
	}
	return insight, nil
}

// Latest returns the stored insight, or nil when none has been
// generated yet.
func (s *insightServiceImpl) Latest(ctx context.Context) (*domain.Insight, error) {
	dbInsight, err := s.repo.LatestInsight(ctx)
	if err != nil {
		if errors.IsErrorType(err, errors.ErrorTypeNotFound) {
			return nil, nil
		}
		return nil, err
	}

	insight, err := s.mapper.Insight.FromDatabase(*dbInsight)
	if err != nil {
		return nil, errors.NewDatabaseError("decode insight", err)
	}
	return &insight, nil
}
