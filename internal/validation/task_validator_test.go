package validation

import (
	"strings"
	"testing"

	"blockday/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateTitle(t *testing.T) {
	tv := NewTaskValidator()

	tests := []struct {
		name    string
		title   string
		wantErr bool
	}{
		{name: "valid title", title: "Morning run", wantErr: false},
		{name: "empty title", title: "", wantErr: true},
		{name: "whitespace only", title: "   ", wantErr: true},
		{name: "max length", title: strings.Repeat("a", 255), wantErr: false},
		{name: "too long", title: strings.Repeat("a", 256), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tv.ValidateTitle(tt.title)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, IsValidationError(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateTaskForCreation(t *testing.T) {
	tv := NewTaskValidator()
	stake := 100
	hugeStake := 20000

	valid := domain.NewTask("Deep work")

	tests := []struct {
		name    string
		mutate  func(*domain.Task)
		wantErr bool
	}{
		{name: "valid plain task", mutate: func(t *domain.Task) {}, wantErr: false},
		{
			name:    "valid stake",
			mutate:  func(t *domain.Task) { t.XPStakes = &stake; t.Priority = domain.PriorityHigh },
			wantErr: false,
		},
		{
			name: "valid checklist with schedule",
			mutate: func(t *domain.Task) {
				t.Schedule = &domain.ScheduleBlock{StartHour: 6, DurationHours: 1}
				t.SubTasks = []domain.SubTask{{Title: "Hydrate", XP: 10}}
			},
			wantErr: false,
		},
		{name: "bad priority", mutate: func(t *domain.Task) { t.Priority = "urgent" }, wantErr: true},
		{name: "bad profile", mutate: func(t *domain.Task) { t.Profile = "shallow" }, wantErr: true},
		{
			name:    "schedule hour out of range",
			mutate:  func(t *domain.Task) { t.Schedule = &domain.ScheduleBlock{StartHour: 24, DurationHours: 1} },
			wantErr: true,
		},
		{
			name:    "zero duration",
			mutate:  func(t *domain.Task) { t.Schedule = &domain.ScheduleBlock{StartHour: 9} },
			wantErr: true,
		},
		{name: "oversized stake", mutate: func(t *domain.Task) { t.XPStakes = &hugeStake }, wantErr: true},
		{
			name: "stake with checklist",
			mutate: func(t *domain.Task) {
				t.XPStakes = &stake
				t.SubTasks = []domain.SubTask{{Title: "item", XP: 10}}
			},
			wantErr: true,
		},
		{
			name:    "untitled checklist item",
			mutate:  func(t *domain.Task) { t.SubTasks = []domain.SubTask{{XP: 10}} },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := valid
			tt.mutate(&task)
			err := tv.ValidateTaskForCreation(task)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, IsValidationError(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateTaskID(t *testing.T) {
	tv := NewTaskValidator()

	assert.NoError(t, tv.ValidateTaskID(1))
	assert.Error(t, tv.ValidateTaskID(0))
	assert.Error(t, tv.ValidateTaskID(-5))
}

func TestValidationErrorAggregatesFields(t *testing.T) {
	tv := NewTaskValidator()

	err := tv.ValidateTaskForCreation(domain.Task{Title: "", Priority: "urgent", Profile: "shallow"})

	require.Error(t, err)
	validationErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.GreaterOrEqual(t, len(validationErr.Errors), 3)
}
