package insights

import (
	"time"

	"blockday/internal/domain"
)

// TaskDigest is one task's line in the summary payload.
type TaskDigest struct {
	Title         string `json:"title"`
	Status        string `json:"status"`
	Priority      string `json:"priority"`
	SubTasksDone  int    `json:"sub_tasks_done,omitempty"`
	SubTasksTotal int    `json:"sub_tasks_total,omitempty"`
	Staked        bool   `json:"staked,omitempty"`
}

// LogDigest is one focus session's line in the summary payload.
type LogDigest struct {
	TaskTitle       string    `json:"task_title"`
	EndedAt         time.Time `json:"ended_at"`
	DurationSeconds int64     `json:"duration_seconds"`
}

// Summary is the compact payload sent to the insights model. It is a
// data extraction only; the network call lives in Client.
type Summary struct {
	GeneratedAt       time.Time    `json:"generated_at"`
	TaskCount         int          `json:"task_count"`
	DoneCount         int          `json:"done_count"`
	TotalFocusSeconds int64        `json:"total_focus_seconds"`
	Tasks             []TaskDigest `json:"tasks"`
	RecentLogs        []LogDigest  `json:"recent_logs"`
}

// BuildSummary extracts the summary payload from the current stores.
// Only the most recent maxLogs sessions are carried in detail; the
// focus total still covers everything.
func BuildSummary(tasks []domain.Task, logs []domain.TimeLog, maxLogs int) Summary {
	summary := Summary{
		GeneratedAt: time.Now(),
		TaskCount:   len(tasks),
	}

	for _, task := range tasks {
		status := task.EffectiveStatus()
		if status == domain.StatusDone {
			summary.DoneCount++
		}
		digest := TaskDigest{
			Title:    task.Title,
			Status:   string(status),
			Priority: string(task.Priority),
			Staked:   task.IsStake(),
		}
		if task.HasSubTasks() {
			digest.SubTasksDone = task.CompletedSubTasks()
			digest.SubTasksTotal = len(task.SubTasks)
		}
		summary.Tasks = append(summary.Tasks, digest)
	}

	for _, log := range logs {
		summary.TotalFocusSeconds += log.DurationSeconds
	}

	start := 0
	if maxLogs > 0 && len(logs) > maxLogs {
		start = len(logs) - maxLogs
	}
	for _, log := range logs[start:] {
		summary.RecentLogs = append(summary.RecentLogs, LogDigest{
			TaskTitle:       log.TaskTitle,
			EndedAt:         log.EndTime,
			DurationSeconds: log.DurationSeconds,
		})
	}

	return summary
}
