package services

import (
	"context"
	"testing"

	"blockday/internal/config"
	"blockday/internal/domain"
	"blockday/internal/repository/sqlite"
	"blockday/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Seeded starter content: task 1 is the Morning Routine checklist,
// task 2 is the staked "1 Thing", task 3 is the deep Night Routine.
const (
	seedMorningID = int64(1)
	seedStakeID   = int64(2)
	seedNightID   = int64(3)
)

func newTestRepo(t *testing.T) sqlite.Repository {
	t.Helper()
	repo, err := config.CreateTestRepository()
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestCreateTask_Defaults(t *testing.T) {
	repo := newTestRepo(t)
	service := NewTaskService(repo)

	created, err := service.CreateTask(context.Background(), domain.Task{Title: "Write report"})

	require.NoError(t, err)
	assert.Greater(t, created.ID, int64(0))
	assert.Equal(t, domain.PriorityMedium, created.Priority)
	assert.Equal(t, domain.StatusTodo, created.Status)
	assert.Equal(t, domain.ProfileStandard, created.Profile)
	assert.False(t, created.CreatedAt.IsZero())
}

func TestCreateTask_ValidationErrors(t *testing.T) {
	repo := newTestRepo(t)
	service := NewTaskService(repo)
	stake := 100

	tests := []struct {
		name string
		task domain.Task
	}{
		{
			name: "empty title",
			task: domain.Task{Title: "   "},
		},
		{
			name: "stake with checklist",
			task: domain.Task{
				Title:    "Impossible",
				XPStakes: &stake,
				SubTasks: []domain.SubTask{{Title: "item", XP: 10}},
			},
		},
		{
			name: "bad schedule",
			task: domain.Task{
				Title:    "Late show",
				Schedule: &domain.ScheduleBlock{StartHour: 25, DurationHours: 1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.CreateTask(context.Background(), tt.task)
			require.Error(t, err)
			assert.True(t, validation.IsValidationError(err))
		})
	}
}

func TestCreateTask_DropsDanglingPlanningLink(t *testing.T) {
	repo := newTestRepo(t)
	service := NewTaskService(repo)
	missing := int64(999)

	created, err := service.CreateTask(context.Background(), domain.Task{
		Title:          "Orphaned",
		PlanningTaskID: &missing,
	})

	require.NoError(t, err)
	assert.Nil(t, created.PlanningTaskID)
}

func TestCycleTask_PlainTask(t *testing.T) {
	repo := newTestRepo(t)
	service := NewTaskService(repo)
	ctx := context.Background()

	created, err := service.CreateTask(ctx, domain.Task{Title: "Call dentist"})
	require.NoError(t, err)

	expected := []domain.Status{domain.StatusPartial, domain.StatusDone, domain.StatusTodo}
	for _, want := range expected {
		task, err := service.CycleTask(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, want, task.Status)
	}
}

func TestCycleTask_ChecklistJumpsBetweenTodoAndDone(t *testing.T) {
	repo := newTestRepo(t)
	service := NewTaskService(repo)
	ctx := context.Background()

	task, err := service.CycleTask(ctx, seedMorningID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusDone, task.EffectiveStatus())
	assert.Equal(t, len(task.SubTasks), task.CompletedSubTasks())

	task, err = service.CycleTask(ctx, seedMorningID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusTodo, task.EffectiveStatus())
	assert.Equal(t, 0, task.CompletedSubTasks())
}

func TestCycleTask_ChecklistMidwayForceCompletes(t *testing.T) {
	repo := newTestRepo(t)
	service := NewTaskService(repo)
	ctx := context.Background()

	task, err := service.ToggleSubTask(ctx, seedMorningID, seedMorningID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPartial, task.EffectiveStatus())

	task, err = service.CycleTask(ctx, seedMorningID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusDone, task.EffectiveStatus())
}

func TestToggleSubTask_DerivesStatus(t *testing.T) {
	repo := newTestRepo(t)
	service := NewTaskService(repo)
	ctx := context.Background()

	task, err := service.GetTask(ctx, seedMorningID)
	require.NoError(t, err)
	require.NotEmpty(t, task.SubTasks)

	var updated *domain.Task
	for _, subTask := range task.SubTasks {
		updated, err = service.ToggleSubTask(ctx, seedMorningID, subTask.ID)
		require.NoError(t, err)
	}
	assert.Equal(t, domain.StatusDone, updated.EffectiveStatus())

	updated, err = service.ToggleSubTask(ctx, seedMorningID, task.SubTasks[0].ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPartial, updated.EffectiveStatus())
}

func TestCycleTask_CompletesLinkedGoalOneWay(t *testing.T) {
	repo := newTestRepo(t)
	tasks := NewTaskService(repo)
	planning := NewPlanningService(repo)
	ctx := context.Background()

	goal, err := planning.CreateGoal(ctx, "Ship the redesign", domain.CategoryMonthly)
	require.NoError(t, err)

	task, err := tasks.CreateTask(ctx, domain.Task{
		Title:          "Finish the last mock",
		PlanningTaskID: &goal.ID,
	})
	require.NoError(t, err)

	_, err = tasks.CycleTask(ctx, task.ID) // partial
	require.NoError(t, err)
	_, err = tasks.CycleTask(ctx, task.ID) // done
	require.NoError(t, err)

	goals, err := planning.ListGoals(ctx)
	require.NoError(t, err)
	require.Len(t, goals, 1)
	assert.True(t, goals[0].Completed)

	// Leaving done does not reopen the goal
	_, err = tasks.CycleTask(ctx, task.ID) // back to todo
	require.NoError(t, err)
	goals, err = planning.ListGoals(ctx)
	require.NoError(t, err)
	assert.True(t, goals[0].Completed)
}

func TestDeleteTask_RemovesChecklist(t *testing.T) {
	repo := newTestRepo(t)
	service := NewTaskService(repo)
	ctx := context.Background()

	require.NoError(t, service.DeleteTask(ctx, seedMorningID))

	_, err := service.GetTask(ctx, seedMorningID)
	require.Error(t, err)

	remaining, err := service.ListTasks(ctx)
	require.NoError(t, err)
	assert.Len(t, remaining, 2)
}

func TestListTasks_ScheduleOrder(t *testing.T) {
	repo := newTestRepo(t)
	service := NewTaskService(repo)
	ctx := context.Background()

	_, err := service.CreateTask(ctx, domain.Task{Title: "Unscheduled errand"})
	require.NoError(t, err)
	_, err = service.CreateTask(ctx, domain.Task{
		Title:    "Early gym",
		Schedule: &domain.ScheduleBlock{StartHour: 5, StartMinute: 30, DurationHours: 1},
	})
	require.NoError(t, err)

	tasks, err := service.ListTasks(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 5)

	assert.Equal(t, "Early gym", tasks[0].Title)
	assert.Equal(t, "Morning Routine", tasks[1].Title)
	assert.Equal(t, "Unscheduled errand", tasks[4].Title)
}
