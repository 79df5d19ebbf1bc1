package services

import (
	"context"

	"blockday/internal/domain"
	"blockday/internal/repository/sqlite"
	"blockday/internal/scoring"
)

// scoringServiceImpl implements ScoringService
type scoringServiceImpl struct {
	repo   sqlite.Repository
	mapper *domain.Mapper
	rules  scoring.Rules
}

// NewScoringService creates a new scoring service instance
func NewScoringService(repo sqlite.Repository, rules scoring.Rules) ScoringService {
	return &scoringServiceImpl{
		repo:   repo,
		mapper: domain.NewMapper(),
		rules:  rules,
	}
}

// Evaluate recomputes the day's XP and balance from the stores. Nothing
// is cached; two calls against unchanged stores return the same score.
func (s *scoringServiceImpl) Evaluate(ctx context.Context) (*Score, error) {
	dbTasks, err := s.repo.ListTasks(ctx)
	if err != nil {
		return nil, err
	}
	dbLogs, err := s.repo.ListTimeLogs(ctx)
	if err != nil {
		return nil, err
	}
	spent, err := s.repo.GetSpentXP(ctx)
	if err != nil {
		return nil, err
	}

	tasks := s.mapper.Task.FromDatabaseSlice(dbTasks)
	logs := s.mapper.TimeLog.FromDatabaseSlice(dbLogs)

	result := scoring.Evaluate(tasks, logs, s.rules)
	return &Score{
		Result:  result,
		SpentXP: spent,
		Balance: scoring.Balance(result, spent),
	}, nil
}
