package scoring

import (
	"testing"

	"blockday/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stakeTask(stake int, priority domain.Priority, status domain.Status) domain.Task {
	return domain.Task{
		Title:    "staked",
		Priority: priority,
		Status:   status,
		Profile:  domain.ProfileStandard,
		XPStakes: &stake,
	}
}

func plainTask(priority domain.Priority, status domain.Status) domain.Task {
	return domain.Task{
		Title:    "plain",
		Priority: priority,
		Status:   status,
		Profile:  domain.ProfileStandard,
	}
}

func checklistTask(profile domain.Profile, total, completed int) domain.Task {
	subTasks := make([]domain.SubTask, total)
	for i := range subTasks {
		subTasks[i] = domain.SubTask{Title: "item", XP: 10, Completed: i < completed, Position: i}
	}
	return domain.Task{
		Title:    "checklist",
		Priority: domain.PriorityMedium,
		Status:   domain.StatusTodo, // stored status is ignored for checklists
		Profile:  profile,
		SubTasks: subTasks,
	}
}

func focusLog(seconds int64) domain.TimeLog {
	return domain.TimeLog{TaskID: 1, TaskTitle: "focus", DurationSeconds: seconds}
}

func TestEvaluate_EmptyInputs(t *testing.T) {
	result := Evaluate(nil, nil, Default())

	assert.Equal(t, 0, result.TotalXP)
	assert.Equal(t, 0.0, result.RawXP)
	assert.Equal(t, 0, result.FocusBonus)
	assert.Equal(t, 0.0, result.AdherenceRate)
	assert.Equal(t, 1.0, result.AdherenceMultiplier)
}

func TestEvaluate_StakeSymmetry(t *testing.T) {
	tests := []struct {
		name        string
		task        domain.Task
		expectedRaw float64
	}{
		{
			name:        "todo stake loses the full wager",
			task:        stakeTask(100, domain.PriorityMedium, domain.StatusTodo),
			expectedRaw: -100,
		},
		{
			name:        "partial stake contributes nothing",
			task:        stakeTask(100, domain.PriorityMedium, domain.StatusPartial),
			expectedRaw: 0,
		},
		{
			name:        "done stake wins the full wager",
			task:        stakeTask(100, domain.PriorityMedium, domain.StatusDone),
			expectedRaw: 100,
		},
		{
			name:        "done high-priority stake is multiplied",
			task:        stakeTask(100, domain.PriorityHigh, domain.StatusDone),
			expectedRaw: 120,
		},
		{
			name:        "todo high-priority stake loss is not multiplied",
			task:        stakeTask(100, domain.PriorityHigh, domain.StatusTodo),
			expectedRaw: -100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Evaluate([]domain.Task{tt.task}, nil, Default())
			assert.InDelta(t, tt.expectedRaw, result.RawXP, 1e-9)
		})
	}
}

func TestEvaluate_ChecklistBonusAndPenalty(t *testing.T) {
	tests := []struct {
		name        string
		task        domain.Task
		expectedRaw float64
	}{
		{
			name:        "standard checklist fully done earns linear plus bonus",
			task:        checklistTask(domain.ProfileStandard, 5, 5),
			expectedRaw: 75, // 5*10 + 25
		},
		{
			name:        "standard checklist untouched pays the penalty",
			task:        checklistTask(domain.ProfileStandard, 5, 0),
			expectedRaw: -25,
		},
		{
			name:        "standard checklist partially done earns linear only",
			task:        checklistTask(domain.ProfileStandard, 5, 2),
			expectedRaw: 20,
		},
		{
			name:        "deep checklist fully done uses deep magnitudes",
			task:        checklistTask(domain.ProfileDeep, 4, 4),
			expectedRaw: 120, // 4*20 + 40
		},
		{
			name:        "deep checklist untouched pays the deep penalty",
			task:        checklistTask(domain.ProfileDeep, 4, 0),
			expectedRaw: -50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Evaluate([]domain.Task{tt.task}, nil, Default())
			assert.InDelta(t, tt.expectedRaw, result.RawXP, 1e-9)
		})
	}
}

func TestEvaluate_PriorityMultiplierScope(t *testing.T) {
	tests := []struct {
		name        string
		task        domain.Task
		expectedRaw float64
	}{
		{
			name:        "done high-priority plain task is multiplied",
			task:        plainTask(domain.PriorityHigh, domain.StatusDone),
			expectedRaw: 60, // 50 * 1.2
		},
		{
			name:        "done low-priority plain task is discounted",
			task:        plainTask(domain.PriorityLow, domain.StatusDone),
			expectedRaw: 40, // 50 * 0.8
		},
		{
			name:        "partial high-priority plain task is not multiplied",
			task:        plainTask(domain.PriorityHigh, domain.StatusPartial),
			expectedRaw: 20,
		},
		{
			name:        "todo plain task contributes nothing",
			task:        plainTask(domain.PriorityHigh, domain.StatusTodo),
			expectedRaw: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Evaluate([]domain.Task{tt.task}, nil, Default())
			assert.InDelta(t, tt.expectedRaw, result.RawXP, 1e-9)
		})
	}
}

func TestEvaluate_FocusBonusGranularity(t *testing.T) {
	tests := []struct {
		name          string
		logs          []domain.TimeLog
		expectedBonus int
	}{
		{
			name:          "just under one block earns nothing",
			logs:          []domain.TimeLog{focusLog(1799)},
			expectedBonus: 0,
		},
		{
			name:          "one and a half blocks earn one block",
			logs:          []domain.TimeLog{focusLog(2700)},
			expectedBonus: 5,
		},
		{
			name:          "blocks accumulate across logs",
			logs:          []domain.TimeLog{focusLog(1700), focusLog(1700), focusLog(300)},
			expectedBonus: 10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Evaluate(nil, tt.logs, Default())
			assert.Equal(t, tt.expectedBonus, result.FocusBonus)
			assert.Equal(t, tt.expectedBonus, result.TotalXP)
		})
	}
}

func TestEvaluate_AdherenceThreshold(t *testing.T) {
	makeDay := func(done, total int) []domain.Task {
		tasks := make([]domain.Task, total)
		for i := range tasks {
			status := domain.StatusTodo
			if i < done {
				status = domain.StatusDone
			}
			tasks[i] = plainTask(domain.PriorityMedium, status)
		}
		return tasks
	}

	below := Evaluate(makeDay(3, 4), nil, Default())
	assert.Equal(t, 0.75, below.AdherenceRate)
	assert.Equal(t, 1.0, below.AdherenceMultiplier)

	at := Evaluate(makeDay(4, 5), nil, Default())
	assert.Equal(t, 0.8, at.AdherenceRate)
	assert.Equal(t, 1.1, at.AdherenceMultiplier)
}

func TestEvaluate_DerivedStatusOverridesStored(t *testing.T) {
	// A checklist task keeps whatever stored status it had; scoring and
	// adherence must follow the checklist instead.
	task := checklistTask(domain.ProfileStandard, 3, 3)
	task.Status = domain.StatusTodo

	result := Evaluate([]domain.Task{task}, nil, Default())

	assert.Equal(t, 1.0, result.AdherenceRate)
	assert.InDelta(t, 55.0, result.RawXP, 1e-9) // 3*10 + 25
}

func TestEvaluate_TotalNeverNegative(t *testing.T) {
	tasks := []domain.Task{
		stakeTask(500, domain.PriorityHigh, domain.StatusTodo),
		checklistTask(domain.ProfileDeep, 4, 0),
	}

	result := Evaluate(tasks, nil, Default())

	assert.Less(t, result.RawXP, 0.0)
	assert.Equal(t, 0, result.TotalXP)
}

func TestEvaluate_ReadIsIdempotent(t *testing.T) {
	tasks := []domain.Task{
		stakeTask(100, domain.PriorityHigh, domain.StatusDone),
		checklistTask(domain.ProfileStandard, 5, 2),
		plainTask(domain.PriorityLow, domain.StatusPartial),
	}
	logs := []domain.TimeLog{focusLog(3600), focusLog(900)}

	first := Evaluate(tasks, logs, Default())
	second := Evaluate(tasks, logs, Default())

	assert.Equal(t, first, second)
}

func TestEvaluate_RoundsHalfAwayFromZero(t *testing.T) {
	// One done medium stake of 15: raw 15, adherence 1.1 => 16.5,
	// which must round up to 17, never down to 16.
	result := Evaluate([]domain.Task{stakeTask(15, domain.PriorityMedium, domain.StatusDone)}, nil, Default())
	assert.Equal(t, 17, result.TotalXP)
}

func TestEvaluate_StarterDayScenario(t *testing.T) {
	// Morning Routine fully ticked plus the "1 Thing" stake won at high
	// priority: 75 + 100*1.2 = 195 raw, both tasks done so the 1.1x
	// adherence multiplier applies, 214.5 rounds to 215.
	morning := checklistTask(domain.ProfileStandard, 5, 5)
	morning.Title = "Morning Routine"
	oneThing := stakeTask(100, domain.PriorityHigh, domain.StatusDone)
	oneThing.Title = "1 Thing"

	result := Evaluate([]domain.Task{morning, oneThing}, nil, Default())

	require.InDelta(t, 195.0, result.RawXP, 1e-9)
	assert.Equal(t, 1.1, result.AdherenceMultiplier)
	assert.Equal(t, 215, result.TotalXP)
}

func TestBalance(t *testing.T) {
	result := Result{TotalXP: 120}

	assert.Equal(t, 120, Balance(result, 0))
	assert.Equal(t, 20, Balance(result, 100))
	assert.Equal(t, -30, Balance(result, 150))
}

func TestForMode(t *testing.T) {
	assert.Equal(t, Default(), ForMode(""))
	assert.Equal(t, Default(), ForMode("unknown"))
	assert.Equal(t, Hardcore(), ForMode("hardcore"))
	assert.Greater(t, Hardcore().NonStartPenalty, Default().NonStartPenalty)
}
