package domain

import (
	"time"
)

// Category represents the horizon of a planning goal.
type Category string

const (
	CategoryMonthly Category = "monthly"
	CategoryWeekly  Category = "weekly"
)

// IsValid checks if the category is one of the known horizons.
func (c Category) IsValid() bool {
	return c == CategoryMonthly || c == CategoryWeekly
}

// PlanningTask represents a longer-horizon goal that daily task blocks
// can link back to. Completing a linked task marks the goal complete;
// the reverse transition never happens automatically.
type PlanningTask struct {
	ID        int64
	Title     string
	Category  Category
	Completed bool
	CreatedAt time.Time
}

// NewPlanningTask creates a new goal in the given category.
func NewPlanningTask(title string, category Category) PlanningTask {
	return PlanningTask{
		Title:     title,
		Category:  category,
		CreatedAt: time.Now(),
	}
}

// IsValid checks if the goal has valid data.
func (p PlanningTask) IsValid() bool {
	return p.Title != "" && p.Category.IsValid()
}
