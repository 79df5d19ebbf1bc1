package domain

import (
	"time"
)

// TimeLog represents one completed focus session logged against a task.
// TaskTitle is a snapshot taken when the session ends, so renaming a
// task later does not rewrite history. DurationSeconds is the elapsed
// counter measured at stop time, not a recomputation from the timestamps.
// Logs are append-only.
type TimeLog struct {
	ID              int64
	TaskID          int64
	TaskTitle       string
	StartTime       time.Time
	EndTime         time.Time
	DurationSeconds int64
}

// NewTimeLog creates a finished focus session record.
func NewTimeLog(taskID int64, taskTitle string, start, end time.Time, durationSeconds int64) TimeLog {
	return TimeLog{
		TaskID:          taskID,
		TaskTitle:       taskTitle,
		StartTime:       start,
		EndTime:         end,
		DurationSeconds: durationSeconds,
	}
}

// IsValid checks if the log has valid data.
func (l TimeLog) IsValid() bool {
	if l.TaskID <= 0 || l.TaskTitle == "" {
		return false
	}
	if l.StartTime.IsZero() || l.EndTime.Before(l.StartTime) {
		return false
	}
	return l.DurationSeconds > 0
}
