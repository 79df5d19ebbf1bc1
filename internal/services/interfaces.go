package services

import (
	"context"
	"io"
	"time"

	"blockday/internal/config"
	"blockday/internal/domain"
	"blockday/internal/insights"
	"blockday/internal/repository/sqlite"
	"blockday/internal/scoring"
)

// Score bundles one evaluation of the XP engine with the ledger state.
type Score struct {
	Result  scoring.Result `json:"result"`
	SpentXP int            `json:"spent_xp"`
	Balance int            `json:"balance"`
}

// DayFocus is one day's focus total for the trailing-week chart.
type DayFocus struct {
	Date         time.Time `json:"date"`
	FocusSeconds int64     `json:"focus_seconds"`
}

// DashboardData is everything the dashboard view needs in one read.
type DashboardData struct {
	Score     *Score     `json:"score"`
	TaskCount int        `json:"task_count"`
	DoneCount int        `json:"done_count"`
	LogCount  int        `json:"log_count"`
	WeekFocus []DayFocus `json:"week_focus"`
}

// TaskService handles task lifecycle: creation, the status cycle and
// checklist toggles, including the planning-goal completion side effect.
type TaskService interface {
	CreateTask(ctx context.Context, task domain.Task) (*domain.Task, error)
	GetTask(ctx context.Context, id int64) (*domain.Task, error)
	ListTasks(ctx context.Context) ([]domain.Task, error)
	CycleTask(ctx context.Context, id int64) (*domain.Task, error)
	ToggleSubTask(ctx context.Context, taskID, subTaskID int64) (*domain.Task, error)
	DeleteTask(ctx context.Context, id int64) error
}

// PlanningService handles longer-horizon goals.
type PlanningService interface {
	CreateGoal(ctx context.Context, title string, category domain.Category) (*domain.PlanningTask, error)
	ListGoals(ctx context.Context) ([]domain.PlanningTask, error)
	DeleteGoal(ctx context.Context, id int64) error
}

// TimerService runs the idle -> running -> idle focus session machine.
// Stopping with zero elapsed seconds appends nothing.
type TimerService interface {
	Start(ctx context.Context, taskID int64) error
	Running() bool
	Elapsed() int64
	CurrentTask() (int64, string, bool)
	Stop(ctx context.Context) (*domain.TimeLog, error)
}

// RewardService handles the reward shop and the spend ledger.
type RewardService interface {
	CreateReward(ctx context.Context, title string, cost int, icon string) (*domain.Reward, error)
	ListRewards(ctx context.Context) ([]domain.Reward, error)
	Redeem(ctx context.Context, rewardID int64) (*domain.Reward, error)
}

// ScoringService recomputes the XP economy from the stores on every call.
type ScoringService interface {
	Evaluate(ctx context.Context) (*Score, error)
}

// ReportingService aggregates store data for the dashboard and export.
type ReportingService interface {
	Dashboard(ctx context.Context) (*DashboardData, error)
	ListLogs(ctx context.Context) ([]domain.TimeLog, error)
	ExportLogsCSV(ctx context.Context, w io.Writer) error
}

// InsightRequester is the outbound side of the insights feature; the
// HTTP client satisfies it and tests swap in a fake.
type InsightRequester interface {
	RequestInsight(ctx context.Context, summary insights.Summary) (*domain.Insight, error)
}

// InsightService extracts the summary payload, drives the model call
// and owns the stored result slot.
type InsightService interface {
	BuildSummary(ctx context.Context) (insights.Summary, error)
	Refresh(ctx context.Context) (*domain.Insight, error)
	Latest(ctx context.Context) (*domain.Insight, error)
}

// ServiceContainer manages all services and their dependencies
type ServiceContainer struct {
	Tasks     TaskService
	Planning  PlanningService
	Timer     TimerService
	Rewards   RewardService
	Scoring   ScoringService
	Reporting ReportingService
	Insights  InsightService
}

// NewServiceContainer wires every service over one repository.
func NewServiceContainer(repo sqlite.Repository, cfg *config.Config) *ServiceContainer {
	rules := scoring.ForMode(cfg.Scoring.Mode)
	scoringService := NewScoringService(repo, rules)
	requester := insights.NewClient(cfg.Insights.APIKey, cfg.Insights.BaseURL, cfg.Insights.Model, cfg.Insights.Timeout)

	return &ServiceContainer{
		Tasks:     NewTaskService(repo),
		Planning:  NewPlanningService(repo),
		Timer:     NewTimerService(repo),
		Rewards:   NewRewardService(repo, scoringService),
		Scoring:   scoringService,
		Reporting: NewReportingService(repo, scoringService),
		Insights:  NewInsightService(repo, requester, cfg.Insights.RecentLogs),
	}
}
