package domain

// SubTask represents a single checklist item inside a task.
// Each item carries its own XP value awarded while it stays ticked.
type SubTask struct {
	ID        int64
	TaskID    int64
	Title     string
	XP        int
	Completed bool
	Position  int
}

// NewSubTask creates a checklist item with the given title and XP value.
func NewSubTask(title string, xp int) SubTask {
	return SubTask{
		Title: title,
		XP:    xp,
	}
}

// IsValid checks if the sub-task has valid data.
func (st SubTask) IsValid() bool {
	return st.Title != "" && st.XP >= 0
}
