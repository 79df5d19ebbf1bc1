package services

import (
	"context"
	"time"

	"blockday/internal/domain"
	"blockday/internal/repository/sqlite"
	"blockday/internal/validation"
)

// planningServiceImpl implements PlanningService
type planningServiceImpl struct {
	repo      sqlite.Repository
	mapper    *domain.Mapper
	validator *validation.PlanningValidator
}

// NewPlanningService creates a new planning service instance
func NewPlanningService(repo sqlite.Repository) PlanningService {
	return &planningServiceImpl{
		repo:      repo,
		mapper:    domain.NewMapper(),
		validator: validation.NewPlanningValidator(),
	}
}

// CreateGoal validates and persists a new planning goal
func (s *planningServiceImpl) CreateGoal(ctx context.Context, title string, category domain.Category) (*domain.PlanningTask, error) {
	goal := domain.PlanningTask{
		Title:     title,
		Category:  category,
		CreatedAt: time.Now(),
	}
	if err := s.validator.ValidateGoalForCreation(goal); err != nil {
		return nil, err
	}

	dbGoal := s.mapper.Planning.ToDatabase(goal)
	if err := s.repo.CreatePlanningTask(ctx, &dbGoal); err != nil {
		return nil, err
	}

	created := s.mapper.Planning.FromDatabase(dbGoal)
	return &created, nil
}

// ListGoals retrieves all planning goals in creation order
func (s *planningServiceImpl) ListGoals(ctx context.Context) ([]domain.PlanningTask, error) {
	dbGoals, err := s.repo.ListPlanningTasks(ctx)
	if err != nil {
		return nil, err
	}
	return s.mapper.Planning.FromDatabaseSlice(dbGoals), nil
}

// DeleteGoal deletes a planning goal; tasks that pointed at it keep
// living with the link cleared.
func (s *planningServiceImpl) DeleteGoal(ctx context.Context, id int64) error {
	if err := s.validator.ValidateGoalID(id); err != nil {
		return err
	}
	return s.repo.DeletePlanningTask(ctx, id)
}
