package domain

import (
	"time"
)

// Priority represents how important a task is relative to the rest of the day.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// IsValid checks if the priority is one of the known levels.
func (p Priority) IsValid() bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

// Status represents the completion state of a task.
type Status string

const (
	StatusTodo    Status = "todo"
	StatusPartial Status = "partial"
	StatusDone    Status = "done"
)

// IsValid checks if the status is one of the known states.
func (s Status) IsValid() bool {
	return s == StatusTodo || s == StatusPartial || s == StatusDone
}

// Next returns the following state in the manual cycle todo -> partial -> done -> todo.
func (s Status) Next() Status {
	switch s {
	case StatusTodo:
		return StatusPartial
	case StatusPartial:
		return StatusDone
	default:
		return StatusTodo
	}
}

// Profile selects which scoring magnitudes a checklist task uses.
// Deep routines (evening wind-down and similar) earn and forfeit more
// per item than standard checklists.
type Profile string

const (
	ProfileStandard Profile = "standard"
	ProfileDeep     Profile = "deep"
)

// IsValid checks if the profile is one of the known scoring profiles.
func (p Profile) IsValid() bool {
	return p == ProfileStandard || p == ProfileDeep
}

// ScheduleBlock is a fixed daily slot a task occupies.
type ScheduleBlock struct {
	StartHour     int
	StartMinute   int
	DurationHours float64
}

// IsValid checks if the block describes a real time of day with a positive duration.
func (b ScheduleBlock) IsValid() bool {
	if b.StartHour < 0 || b.StartHour > 23 {
		return false
	}
	if b.StartMinute < 0 || b.StartMinute > 59 {
		return false
	}
	return b.DurationHours > 0
}

// StartMinutes returns the block start as minutes since midnight, for ordering.
func (b ScheduleBlock) StartMinutes() int {
	return b.StartHour*60 + b.StartMinute
}

// Task represents a daily task block in the domain model.
// This is a pure domain model without database-specific concerns.
//
// The stored Status field is authoritative only for tasks without
// sub-tasks; checklist tasks always derive their status from the
// sub-task completion ratio via EffectiveStatus.
type Task struct {
	ID             int64
	Title          string
	Priority       Priority
	Status         Status
	Profile        Profile
	CreatedAt      time.Time
	Schedule       *ScheduleBlock
	SubTasks       []SubTask
	PlanningTaskID *int64
	XPStakes       *int
}

// NewTask creates a new medium-priority task with the given title.
func NewTask(title string) Task {
	return Task{
		Title:     title,
		Priority:  PriorityMedium,
		Status:    StatusTodo,
		Profile:   ProfileStandard,
		CreatedAt: time.Now(),
	}
}

// HasSubTasks returns true if the task carries a checklist.
func (t Task) HasSubTasks() bool {
	return len(t.SubTasks) > 0
}

// IsStake returns true if the task wagers XP instead of carrying a checklist.
func (t Task) IsStake() bool {
	return t.XPStakes != nil && !t.HasSubTasks()
}

// CompletedSubTasks returns how many checklist items are ticked.
func (t Task) CompletedSubTasks() int {
	count := 0
	for _, st := range t.SubTasks {
		if st.Completed {
			count++
		}
	}
	return count
}

// EffectiveStatus returns the stored status for plain and stake tasks,
// and the status derived from the checklist for sub-tasked tasks.
func (t Task) EffectiveStatus() Status {
	if !t.HasSubTasks() {
		return t.Status
	}
	return DeriveStatus(t.SubTasks)
}

// DeriveStatus projects a checklist onto a task status: done when every
// item is ticked, todo when none are, partial otherwise.
func DeriveStatus(subTasks []SubTask) Status {
	if len(subTasks) == 0 {
		return StatusTodo
	}
	completed := 0
	for _, st := range subTasks {
		if st.Completed {
			completed++
		}
	}
	switch completed {
	case 0:
		return StatusTodo
	case len(subTasks):
		return StatusDone
	default:
		return StatusPartial
	}
}

// IsValid checks if the task has valid data.
func (t Task) IsValid() bool {
	if t.Title == "" {
		return false
	}
	if !t.Priority.IsValid() || !t.Status.IsValid() || !t.Profile.IsValid() {
		return false
	}
	if t.Schedule != nil && !t.Schedule.IsValid() {
		return false
	}
	return true
}

// String returns the task title for display purposes.
func (t Task) String() string {
	return t.Title
}
