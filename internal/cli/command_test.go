package cli

import (
	"bytes"
	"context"
	"testing"

	"blockday/internal/config"
	"blockday/internal/repository/sqlite"
	"blockday/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) (*App, *bytes.Buffer, sqlite.Repository) {
	t.Helper()
	repo, err := config.CreateTestRepository()
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	cfg := config.NewConfig()
	container := services.NewServiceContainer(repo, cfg)

	var buf bytes.Buffer
	return NewAppWithOutput(container, cfg, &buf), &buf, repo
}

func TestListCommand_ShowsSeededSchedule(t *testing.T) {
	app, buf, _ := newTestApp(t)

	err := NewListCommand(app).Execute(context.Background(), nil)

	require.NoError(t, err)
	output := buf.String()
	assert.Contains(t, output, "06:00-07:00 Morning Routine (0/5)")
	assert.Contains(t, output, "09:00-11:00 1 Thing [stake 100] !high")
	assert.Contains(t, output, "21:00-22:00 Night Routine (0/4)")
	assert.Contains(t, output, "Hydrate")
}

func TestAddCommand_PlainTask(t *testing.T) {
	app, buf, _ := newTestApp(t)

	err := NewAddCommand(app).Execute(context.Background(), []string{"Call", "dentist"}, &addOptions{})

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Added task 4: Call dentist")
}

func TestAddCommand_ScheduledStake(t *testing.T) {
	app, buf, _ := newTestApp(t)

	opts := &addOptions{at: "14:30", duration: 1.5, stake: 200, high: true}
	err := NewAddCommand(app).Execute(context.Background(), []string{"Deep work"}, opts)

	require.NoError(t, err)
	output := buf.String()
	assert.Contains(t, output, "scheduled 14:30 for 1h30m")
	assert.Contains(t, output, "staked 200 XP")
}

func TestAddCommand_RejectsConflictingPriorityFlags(t *testing.T) {
	app, _, _ := newTestApp(t)

	opts := &addOptions{high: true, low: true}
	err := NewAddCommand(app).Execute(context.Background(), []string{"Confused"}, opts)

	require.Error(t, err)
}

func TestAddCommand_RejectsHalfSchedule(t *testing.T) {
	app, _, _ := newTestApp(t)

	opts := &addOptions{at: "9:00"}
	err := NewAddCommand(app).Execute(context.Background(), []string{"No duration"}, opts)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "--for")
}

func TestCycleCommand_PlainStatusAdvances(t *testing.T) {
	app, buf, _ := newTestApp(t)
	ctx := context.Background()

	// The staked task cycles through the three states
	require.NoError(t, NewCycleCommand(app).Execute(ctx, []string{"2"}))
	assert.Contains(t, buf.String(), "[~] 1 Thing")

	buf.Reset()
	require.NoError(t, NewCycleCommand(app).Execute(ctx, []string{"2"}))
	assert.Contains(t, buf.String(), "[x] 1 Thing")
}

func TestCycleCommand_BadID(t *testing.T) {
	app, _, _ := newTestApp(t)

	err := NewCycleCommand(app).Execute(context.Background(), []string{"zero"})
	require.Error(t, err)

	err = NewCycleCommand(app).Execute(context.Background(), []string{"999"})
	require.Error(t, err)
}

func TestCheckCommand_TogglesItem(t *testing.T) {
	app, buf, _ := newTestApp(t)

	err := NewCheckCommand(app).Execute(context.Background(), []string{"1", "1"})

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "[~] Morning Routine (1/5)")
}

func TestStatsCommand_FreshBoard(t *testing.T) {
	app, buf, _ := newTestApp(t)

	err := NewStatsCommand(app).Execute(context.Background(), nil)

	require.NoError(t, err)
	output := buf.String()
	assert.Contains(t, output, "Today: 0/3 tasks done")
	assert.Contains(t, output, "Total XP:    0")
	assert.Contains(t, output, "Balance:     0 XP")
}

func TestShopCommands_AddListBuy(t *testing.T) {
	app, buf, _ := newTestApp(t)
	ctx := context.Background()
	shop := NewShopCommand(app)

	require.NoError(t, shop.ExecuteAdd(ctx, "Movie night", "50", ""))
	assert.Contains(t, buf.String(), "Added reward 1: Movie night (50 XP)")

	buf.Reset()
	require.NoError(t, shop.ExecuteList(ctx))
	assert.Contains(t, buf.String(), "Balance: 0 XP")
	assert.Contains(t, buf.String(), "Movie night")

	// Broke: the redemption must bounce
	buf.Reset()
	err := shop.ExecuteBuy(ctx, "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redeem reward")
}

func TestPlanCommands_AddListDelete(t *testing.T) {
	app, buf, _ := newTestApp(t)
	ctx := context.Background()
	plan := NewPlanCommand(app)

	require.NoError(t, plan.ExecuteAdd(ctx, "Ship the redesign", "monthly"))
	assert.Contains(t, buf.String(), "Added monthly goal 1")

	buf.Reset()
	require.NoError(t, plan.ExecuteList(ctx))
	assert.Contains(t, buf.String(), "[ ] monthly Ship the redesign")

	buf.Reset()
	require.NoError(t, plan.ExecuteDelete(ctx, "1"))
	require.NoError(t, plan.ExecuteList(ctx))
	assert.Contains(t, buf.String(), "No planning goals yet")
}

func TestDeleteCommand(t *testing.T) {
	app, buf, repo := newTestApp(t)
	ctx := context.Background()

	err := NewDeleteCommand(app).Execute(ctx, []string{"3"})

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Deleted task 3")

	tasks, err := repo.ListTasks(ctx)
	require.NoError(t, err)
	assert.Len(t, tasks, 2)
}

func TestLogsCommand_CSVHeader(t *testing.T) {
	app, buf, _ := newTestApp(t)

	err := NewLogsCommand(app).Execute(context.Background(), true)

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "id,task_id,task_title,start_time,end_time,duration_seconds")
}

func TestInsightsCommand_EmptySlot(t *testing.T) {
	app, buf, _ := newTestApp(t)

	err := NewInsightsCommand(app).Execute(context.Background(), false)

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "No insights yet")
}
