package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"blockday/internal/errors"
	"blockday/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// SearchOptions contains the supported time log search parameters
type SearchOptions struct {
	Since  *time.Time
	TaskID *int64
}

// Repository defines the interface for database operations
type Repository interface {
	// Task operations
	CreateTask(ctx context.Context, task *Task) error
	GetTask(ctx context.Context, id int64) (*Task, error)
	ListTasks(ctx context.Context) ([]*Task, error)
	UpdateTaskStatus(ctx context.Context, id int64, status string) error
	DeleteTask(ctx context.Context, id int64) error
	SetSubTaskCompleted(ctx context.Context, id int64, completed bool) error
	SetAllSubTasksCompleted(ctx context.Context, taskID int64, completed bool) error

	// Planning operations
	CreatePlanningTask(ctx context.Context, goal *PlanningTask) error
	GetPlanningTask(ctx context.Context, id int64) (*PlanningTask, error)
	ListPlanningTasks(ctx context.Context) ([]*PlanningTask, error)
	CompletePlanningTask(ctx context.Context, id int64) error
	DeletePlanningTask(ctx context.Context, id int64) error

	// Time log operations (append-only)
	CreateTimeLog(ctx context.Context, log *TimeLog) error
	ListTimeLogs(ctx context.Context) ([]*TimeLog, error)
	SearchTimeLogs(ctx context.Context, opts SearchOptions) ([]*TimeLog, error)

	// Reward and ledger operations
	CreateReward(ctx context.Context, reward *Reward) error
	GetReward(ctx context.Context, id int64) (*Reward, error)
	ListRewards(ctx context.Context) ([]*Reward, error)
	RedeemReward(ctx context.Context, rewardID int64, cost int) error
	GetSpentXP(ctx context.Context) (int, error)

	// Insight slot
	SaveInsight(ctx context.Context, insight *Insight) error
	LatestInsight(ctx context.Context) (*Insight, error)

	// Day rollover
	ResetDay(ctx context.Context) error

	// Utility
	Close() error
}

// SQLiteRepository implements the Repository interface
type SQLiteRepository struct {
	db *sql.DB
}

// New creates a new SQLite repository instance
func New(dbPath string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}

	// SQLite handles one writer at a time; a single pooled connection
	// also keeps the foreign_keys pragma applied everywhere.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("enable foreign keys", err)
	}

	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("run migrations", err)
	}

	return &SQLiteRepository{db: db}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

const taskColumns = `id, title, priority, status, profile, created_at,
	start_hour, start_minute, duration_hours, planning_task_id, xp_stakes`

// CreateTask inserts a task together with its checklist items
func (r *SQLiteRepository) CreateTask(ctx context.Context, task *Task) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return HandleDatabaseError("begin transaction", err)
	}
	defer tx.Rollback()

	query := `
	INSERT INTO tasks (title, priority, status, profile, created_at,
		start_hour, start_minute, duration_hours, planning_task_id, xp_stakes)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	result, err := tx.ExecContext(ctx, query,
		task.Title, task.Priority, task.Status, task.Profile, FormatTimeForDB(task.CreatedAt),
		task.StartHour, task.StartMinute, task.DurationHours, task.PlanningTaskID, task.XPStakes)
	if err != nil {
		return HandleDatabaseError("insert task", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return HandleDatabaseError("get last insert ID", err)
	}
	task.ID = id

	for i, subTask := range task.SubTasks {
		subTask.TaskID = id
		subTask.Position = i
		result, err := tx.ExecContext(ctx,
			`INSERT INTO sub_tasks (task_id, title, xp, completed, position) VALUES (?, ?, ?, ?, ?)`,
			subTask.TaskID, subTask.Title, subTask.XP, subTask.Completed, subTask.Position)
		if err != nil {
			return HandleDatabaseError("insert sub-task", err)
		}
		if subTask.ID, err = result.LastInsertId(); err != nil {
			return HandleDatabaseError("get last insert ID", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return HandleDatabaseError("commit task", err)
	}
	return nil
}

// GetTask retrieves a task and its checklist by ID
func (r *SQLiteRepository) GetTask(ctx context.Context, id int64) (*Task, error) {
	query := fmt.Sprintf(`SELECT %s FROM tasks WHERE id = ?`, taskColumns)

	task, err := QuerySingle(ctx, r.db, query, ScanTask, "task", fmt.Sprintf("%d", id), id)
	if err != nil {
		return nil, err
	}

	subTasks, err := QueryMultiple(ctx, r.db,
		`SELECT id, task_id, title, xp, completed, position FROM sub_tasks WHERE task_id = ? ORDER BY position ASC`,
		ScanSubTasks, "sub-tasks", id)
	if err != nil {
		return nil, err
	}
	task.SubTasks = subTasks
	return task, nil
}

// ListTasks retrieves all tasks with their checklists, scheduled blocks
// first in start order, unscheduled tasks after in creation order
func (r *SQLiteRepository) ListTasks(ctx context.Context) ([]*Task, error) {
	query := fmt.Sprintf(`
	SELECT %s FROM tasks
	ORDER BY CASE WHEN start_hour IS NULL THEN 1 ELSE 0 END,
		start_hour ASC, start_minute ASC, created_at ASC, id ASC`, taskColumns)

	tasks, err := QueryMultiple(ctx, r.db, query, ScanTasks, "tasks")
	if err != nil {
		return nil, err
	}

	subTasks, err := QueryMultiple(ctx, r.db,
		`SELECT id, task_id, title, xp, completed, position FROM sub_tasks ORDER BY task_id ASC, position ASC`,
		ScanSubTasks, "sub-tasks")
	if err != nil {
		return nil, err
	}

	byTask := make(map[int64][]*SubTask)
	for _, subTask := range subTasks {
		byTask[subTask.TaskID] = append(byTask[subTask.TaskID], subTask)
	}
	for _, task := range tasks {
		task.SubTasks = byTask[task.ID]
	}
	return tasks, nil
}

// UpdateTaskStatus sets the stored status of a task
func (r *SQLiteRepository) UpdateTaskStatus(ctx context.Context, id int64, status string) error {
	query := `UPDATE tasks SET status = ? WHERE id = ?`
	return ExecuteWithRowsAffected(ctx, r.db, query, "task", fmt.Sprintf("%d", id), status, id)
}

// DeleteTask deletes a task; its checklist goes with it via cascade
func (r *SQLiteRepository) DeleteTask(ctx context.Context, id int64) error {
	query := `DELETE FROM tasks WHERE id = ?`
	return ExecuteWithRowsAffected(ctx, r.db, query, "task", fmt.Sprintf("%d", id), id)
}

// SetSubTaskCompleted sets one checklist item's completed flag
func (r *SQLiteRepository) SetSubTaskCompleted(ctx context.Context, id int64, completed bool) error {
	query := `UPDATE sub_tasks SET completed = ? WHERE id = ?`
	return ExecuteWithRowsAffected(ctx, r.db, query, "sub-task", fmt.Sprintf("%d", id), completed, id)
}

// SetAllSubTasksCompleted force-sets every checklist item of a task
func (r *SQLiteRepository) SetAllSubTasksCompleted(ctx context.Context, taskID int64, completed bool) error {
	query := `UPDATE sub_tasks SET completed = ? WHERE task_id = ?`
	_, err := r.db.ExecContext(ctx, query, completed, taskID)
	if err != nil {
		return HandleDatabaseError("update sub-tasks", err)
	}
	return nil
}

// CreatePlanningTask creates a new planning goal
func (r *SQLiteRepository) CreatePlanningTask(ctx context.Context, goal *PlanningTask) error {
	query := `INSERT INTO planning_tasks (title, category, completed, created_at) VALUES (?, ?, ?, ?)`
	id, err := ExecuteWithLastInsertID(ctx, r.db, query,
		goal.Title, goal.Category, goal.Completed, FormatTimeForDB(goal.CreatedAt))
	if err != nil {
		return err
	}
	goal.ID = id
	return nil
}

// GetPlanningTask retrieves a planning goal by ID
func (r *SQLiteRepository) GetPlanningTask(ctx context.Context, id int64) (*PlanningTask, error) {
	query := `SELECT id, title, category, completed, created_at FROM planning_tasks WHERE id = ?`
	return QuerySingle(ctx, r.db, query, ScanPlanningTask, "planning goal", fmt.Sprintf("%d", id), id)
}

// ListPlanningTasks retrieves all planning goals
func (r *SQLiteRepository) ListPlanningTasks(ctx context.Context) ([]*PlanningTask, error) {
	query := `SELECT id, title, category, completed, created_at FROM planning_tasks ORDER BY created_at ASC, id ASC`
	return QueryMultiple(ctx, r.db, query, ScanPlanningTasks, "planning goals")
}

// CompletePlanningTask marks a planning goal completed
func (r *SQLiteRepository) CompletePlanningTask(ctx context.Context, id int64) error {
	query := `UPDATE planning_tasks SET completed = 1 WHERE id = ?`
	return ExecuteWithRowsAffected(ctx, r.db, query, "planning goal", fmt.Sprintf("%d", id), id)
}

// DeletePlanningTask deletes a planning goal and unlinks any tasks pointing at it
func (r *SQLiteRepository) DeletePlanningTask(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return HandleDatabaseError("begin transaction", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `UPDATE tasks SET planning_task_id = NULL WHERE planning_task_id = ?`, id); err != nil {
		return HandleDatabaseError("unlink tasks", err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM planning_tasks WHERE id = ?`, id)
	if err != nil {
		return HandleDatabaseError("delete planning goal", err)
	}
	if err := ValidateRowsAffected(result, "planning goal", fmt.Sprintf("%d", id)); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return HandleDatabaseError("commit delete", err)
	}
	return nil
}

// CreateTimeLog appends a completed focus session
func (r *SQLiteRepository) CreateTimeLog(ctx context.Context, log *TimeLog) error {
	query := `
	INSERT INTO time_logs (task_id, task_title, start_time, end_time, duration_seconds)
	VALUES (?, ?, ?, ?, ?)`

	id, err := ExecuteWithLastInsertID(ctx, r.db, query,
		log.TaskID, log.TaskTitle, FormatTimeForDB(log.StartTime), FormatTimeForDB(log.EndTime), log.DurationSeconds)
	if err != nil {
		return err
	}
	log.ID = id
	return nil
}

// ListTimeLogs retrieves all focus sessions in chronological order
func (r *SQLiteRepository) ListTimeLogs(ctx context.Context) ([]*TimeLog, error) {
	query := `
	SELECT id, task_id, task_title, start_time, end_time, duration_seconds
	FROM time_logs
	ORDER BY start_time ASC, id ASC`
	return QueryMultiple(ctx, r.db, query, ScanTimeLogs, "time logs")
}

// SearchTimeLogs retrieves focus sessions matching the provided options
func (r *SQLiteRepository) SearchTimeLogs(ctx context.Context, opts SearchOptions) ([]*TimeLog, error) {
	var conditions []string
	var args []interface{}

	if opts.Since != nil {
		conditions = append(conditions, "start_time >= ?")
		args = append(args, FormatTimeForDB(*opts.Since))
	}
	if opts.TaskID != nil {
		conditions = append(conditions, "task_id = ?")
		args = append(args, *opts.TaskID)
	}

	query := `
	SELECT id, task_id, task_title, start_time, end_time, duration_seconds
	FROM time_logs`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY start_time ASC, id ASC"

	return QueryMultiple(ctx, r.db, query, ScanTimeLogs, "time logs", args...)
}

// CreateReward creates a new reward
func (r *SQLiteRepository) CreateReward(ctx context.Context, reward *Reward) error {
	query := `INSERT INTO rewards (title, cost, icon, redeemed_count) VALUES (?, ?, ?, ?)`
	id, err := ExecuteWithLastInsertID(ctx, r.db, query, reward.Title, reward.Cost, reward.Icon, reward.RedeemedCount)
	if err != nil {
		return err
	}
	reward.ID = id
	return nil
}

// GetReward retrieves a reward by ID
func (r *SQLiteRepository) GetReward(ctx context.Context, id int64) (*Reward, error) {
	query := `SELECT id, title, cost, icon, redeemed_count FROM rewards WHERE id = ?`
	return QuerySingle(ctx, r.db, query, ScanReward, "reward", fmt.Sprintf("%d", id), id)
}

// ListRewards retrieves all rewards
func (r *SQLiteRepository) ListRewards(ctx context.Context) ([]*Reward, error) {
	query := `SELECT id, title, cost, icon, redeemed_count FROM rewards ORDER BY cost ASC, id ASC`
	return QueryMultiple(ctx, r.db, query, ScanRewards, "rewards")
}

// RedeemReward charges the ledger and bumps the redemption count as one
// transaction; the two fields never move independently.
func (r *SQLiteRepository) RedeemReward(ctx context.Context, rewardID int64, cost int) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return HandleDatabaseError("begin transaction", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, `UPDATE rewards SET redeemed_count = redeemed_count + 1 WHERE id = ?`, rewardID)
	if err != nil {
		return HandleDatabaseError("update reward", err)
	}
	if err := ValidateRowsAffected(result, "reward", fmt.Sprintf("%d", rewardID)); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `UPDATE ledger SET spent_xp = spent_xp + ? WHERE id = 1`, cost); err != nil {
		return HandleDatabaseError("update ledger", err)
	}

	if err := tx.Commit(); err != nil {
		return HandleDatabaseError("commit redemption", err)
	}
	return nil
}

// GetSpentXP reads the cumulative spend accumulator
func (r *SQLiteRepository) GetSpentXP(ctx context.Context) (int, error) {
	var spent int
	err := r.db.QueryRowContext(ctx, `SELECT spent_xp FROM ledger WHERE id = 1`).Scan(&spent)
	if err != nil {
		return 0, HandleDatabaseError("read ledger", err)
	}
	return spent, nil
}

// SaveInsight replaces the stored insight slot
func (r *SQLiteRepository) SaveInsight(ctx context.Context, insight *Insight) error {
	query := `
	INSERT INTO insights (id, request_id, score, summary, recommendations, created_at)
	VALUES (1, ?, ?, ?, ?, ?)
	ON CONFLICT (id) DO UPDATE SET
		request_id = excluded.request_id,
		score = excluded.score,
		summary = excluded.summary,
		recommendations = excluded.recommendations,
		created_at = excluded.created_at`

	_, err := r.db.ExecContext(ctx, query,
		insight.RequestID, insight.Score, insight.Summary, insight.Recommendations, FormatTimeForDB(insight.CreatedAt))
	if err != nil {
		return HandleDatabaseError("save insight", err)
	}
	return nil
}

// LatestInsight reads the stored insight slot
func (r *SQLiteRepository) LatestInsight(ctx context.Context) (*Insight, error) {
	query := `SELECT request_id, score, summary, recommendations, created_at FROM insights WHERE id = 1`
	return QuerySingle(ctx, r.db, query, ScanInsight, "insight", "latest")
}

// ResetDay clears task statuses and checklist marks for a fresh day.
// Time logs, rewards and the ledger are untouched.
func (r *SQLiteRepository) ResetDay(ctx context.Context) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return HandleDatabaseError("begin transaction", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `UPDATE tasks SET status = 'todo'`); err != nil {
		return HandleDatabaseError("reset task statuses", err)
	}
	if _, err := tx.ExecContext(ctx, `UPDATE sub_tasks SET completed = 0`); err != nil {
		return HandleDatabaseError("reset sub-tasks", err)
	}

	if err := tx.Commit(); err != nil {
		return HandleDatabaseError("commit day reset", err)
	}
	return nil
}
