package services

import (
	"context"
	"fmt"
	"time"

	"blockday/internal/domain"
	"blockday/internal/errors"
	"blockday/internal/logging"
	"blockday/internal/repository/sqlite"
	"blockday/internal/validation"
)

// taskServiceImpl implements TaskService
type taskServiceImpl struct {
	repo      sqlite.Repository
	mapper    *domain.Mapper
	validator *validation.TaskValidator
}

// NewTaskService creates a new task service instance
func NewTaskService(repo sqlite.Repository) TaskService {
	return &taskServiceImpl{
		repo:      repo,
		mapper:    domain.NewMapper(),
		validator: validation.NewTaskValidator(),
	}
}

// CreateTask validates and persists a new task. A planning link pointing
// at a goal that does not exist is dropped rather than rejected.
func (s *taskServiceImpl) CreateTask(ctx context.Context, task domain.Task) (*domain.Task, error) {
	if task.Priority == "" {
		task.Priority = domain.PriorityMedium
	}
	if task.Profile == "" {
		task.Profile = domain.ProfileStandard
	}
	if task.Status == "" {
		task.Status = domain.StatusTodo
	}
	if task.CreatedAt.IsZero() {
		task.CreatedAt = time.Now()
	}

	if err := s.validator.ValidateTaskForCreation(task); err != nil {
		return nil, err
	}

	if task.PlanningTaskID != nil {
		if _, err := s.repo.GetPlanningTask(ctx, *task.PlanningTaskID); err != nil {
			if !errors.IsErrorType(err, errors.ErrorTypeNotFound) {
				return nil, err
			}
			logging.Debugf("dropping link to missing planning goal %d\n", *task.PlanningTaskID)
			task.PlanningTaskID = nil
		}
	}

	dbTask := s.mapper.Task.ToDatabase(task)
	if err := s.repo.CreateTask(ctx, &dbTask); err != nil {
		return nil, err
	}

	created := s.mapper.Task.FromDatabase(dbTask)
	return &created, nil
}

// GetTask retrieves a single task by ID
func (s *taskServiceImpl) GetTask(ctx context.Context, id int64) (*domain.Task, error) {
	if err := s.validator.ValidateTaskID(id); err != nil {
		return nil, err
	}

	dbTask, err := s.repo.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}

	task := s.mapper.Task.FromDatabase(*dbTask)
	return &task, nil
}

// ListTasks retrieves all tasks in schedule order
func (s *taskServiceImpl) ListTasks(ctx context.Context) ([]domain.Task, error) {
	dbTasks, err := s.repo.ListTasks(ctx)
	if err != nil {
		return nil, err
	}
	return s.mapper.Task.FromDatabaseSlice(dbTasks), nil
}

// CycleTask advances a task one step through todo -> partial -> done.
// Tasks with a checklist jump between todo and done instead: cycling a
// not-done checklist force-completes every item, cycling a done one
// resets every item. Reaching done completes a linked planning goal.
func (s *taskServiceImpl) CycleTask(ctx context.Context, id int64) (*domain.Task, error) {
	task, err := s.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}

	if task.HasSubTasks() {
		completed := task.EffectiveStatus() != domain.StatusDone
		if err := s.repo.SetAllSubTasksCompleted(ctx, id, completed); err != nil {
			return nil, err
		}
	} else {
		next := task.Status.Next()
		if err := s.repo.UpdateTaskStatus(ctx, id, string(next)); err != nil {
			return nil, err
		}
	}

	updated, err := s.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.completeLinkedGoal(ctx, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// ToggleSubTask flips one checklist item. The parent's status is always
// derived from its items, so reaching all-complete counts as done and
// completes a linked planning goal.
func (s *taskServiceImpl) ToggleSubTask(ctx context.Context, taskID, subTaskID int64) (*domain.Task, error) {
	if err := s.validator.ValidateSubTaskID(subTaskID); err != nil {
		return nil, err
	}

	task, err := s.GetTask(ctx, taskID)
	if err != nil {
		return nil, err
	}

	var target *domain.SubTask
	for i := range task.SubTasks {
		if task.SubTasks[i].ID == subTaskID {
			target = &task.SubTasks[i]
			break
		}
	}
	if target == nil {
		return nil, errors.NewNotFoundError("sub-task", fmt.Sprintf("%d", subTaskID))
	}

	if err := s.repo.SetSubTaskCompleted(ctx, subTaskID, !target.Completed); err != nil {
		return nil, err
	}

	updated, err := s.GetTask(ctx, taskID)
	if err != nil {
		return nil, err
	}

	if err := s.completeLinkedGoal(ctx, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteTask deletes a task and its checklist
func (s *taskServiceImpl) DeleteTask(ctx context.Context, id int64) error {
	if err := s.validator.ValidateTaskID(id); err != nil {
		return err
	}
	return s.repo.DeleteTask(ctx, id)
}

// completeLinkedGoal marks the linked planning goal completed once the
// task reaches done. The completion is one-way; leaving done later does
// not reopen the goal. A dangling link is ignored.
func (s *taskServiceImpl) completeLinkedGoal(ctx context.Context, task *domain.Task) error {
	if task.PlanningTaskID == nil || task.EffectiveStatus() != domain.StatusDone {
		return nil
	}
	if err := s.repo.CompletePlanningTask(ctx, *task.PlanningTaskID); err != nil {
		if errors.IsErrorType(err, errors.ErrorTypeNotFound) {
			logging.Debugf("task %d linked to missing planning goal %d\n", task.ID, *task.PlanningTaskID)
			return nil
		}
		return err
	}
	return nil
}
