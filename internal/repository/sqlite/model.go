package sqlite

import "time"

// Task is the database shape of a task block. Schedule columns are
// nullable; a task without a fixed block leaves all three NULL.
type Task struct {
	ID             int64
	Title          string
	Priority       string
	Status         string
	Profile        string
	CreatedAt      time.Time
	StartHour      *int
	StartMinute    *int
	DurationHours  *float64
	PlanningTaskID *int64
	XPStakes       *int
	SubTasks       []*SubTask
}

// SubTask is the database shape of a checklist item.
type SubTask struct {
	ID        int64
	TaskID    int64
	Title     string
	XP        int
	Completed bool
	Position  int
}

// PlanningTask is the database shape of a longer-horizon goal.
type PlanningTask struct {
	ID        int64
	Title     string
	Category  string
	Completed bool
	CreatedAt time.Time
}

// TimeLog is the database shape of a completed focus session.
type TimeLog struct {
	ID              int64
	TaskID          int64
	TaskTitle       string
	StartTime       time.Time
	EndTime         time.Time
	DurationSeconds int64
}

// Reward is the database shape of a redeemable reward.
type Reward struct {
	ID            int64
	Title         string
	Cost          int
	Icon          string
	RedeemedCount int
}

// Insight is the database shape of the single stored insight slot.
// Recommendations are kept JSON-encoded in one column.
type Insight struct {
	RequestID       string
	Score           float64
	Summary         string
	Recommendations string
	CreatedAt       time.Time
}
