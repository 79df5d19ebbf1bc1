package domain

import (
	"encoding/json"

	"blockday/internal/repository/sqlite"
)

// TaskMapper handles conversion between domain and database Task models.
type TaskMapper struct{}

// ToDatabase converts a domain Task to a database Task.
func (m *TaskMapper) ToDatabase(task Task) sqlite.Task {
	dbTask := sqlite.Task{
		ID:             task.ID,
		Title:          task.Title,
		Priority:       string(task.Priority),
		Status:         string(task.Status),
		Profile:        string(task.Profile),
		CreatedAt:      task.CreatedAt,
		PlanningTaskID: task.PlanningTaskID,
		XPStakes:       task.XPStakes,
	}
	if task.Schedule != nil {
		startHour := task.Schedule.StartHour
		startMinute := task.Schedule.StartMinute
		duration := task.Schedule.DurationHours
		dbTask.StartHour = &startHour
		dbTask.StartMinute = &startMinute
		dbTask.DurationHours = &duration
	}
	for _, subTask := range task.SubTasks {
		dbSubTask := m.subTaskToDatabase(subTask)
		dbTask.SubTasks = append(dbTask.SubTasks, &dbSubTask)
	}
	return dbTask
}

// FromDatabase converts a database Task to a domain Task.
func (m *TaskMapper) FromDatabase(dbTask sqlite.Task) Task {
	task := Task{
		ID:             dbTask.ID,
		Title:          dbTask.Title,
		Priority:       Priority(dbTask.Priority),
		Status:         Status(dbTask.Status),
		Profile:        Profile(dbTask.Profile),
		CreatedAt:      dbTask.CreatedAt,
		PlanningTaskID: dbTask.PlanningTaskID,
		XPStakes:       dbTask.XPStakes,
	}
	if dbTask.StartHour != nil && dbTask.StartMinute != nil && dbTask.DurationHours != nil {
		task.Schedule = &ScheduleBlock{
			StartHour:     *dbTask.StartHour,
			StartMinute:   *dbTask.StartMinute,
			DurationHours: *dbTask.DurationHours,
		}
	}
	for _, dbSubTask := range dbTask.SubTasks {
		task.SubTasks = append(task.SubTasks, m.subTaskFromDatabase(*dbSubTask))
	}
	return task
}

func (m *TaskMapper) subTaskToDatabase(subTask SubTask) sqlite.SubTask {
	return sqlite.SubTask{
		ID:        subTask.ID,
		TaskID:    subTask.TaskID,
		Title:     subTask.Title,
		XP:        subTask.XP,
		Completed: subTask.Completed,
		Position:  subTask.Position,
	}
}

func (m *TaskMapper) subTaskFromDatabase(dbSubTask sqlite.SubTask) SubTask {
	return SubTask{
		ID:        dbSubTask.ID,
		TaskID:    dbSubTask.TaskID,
		Title:     dbSubTask.Title,
		XP:        dbSubTask.XP,
		Completed: dbSubTask.Completed,
		Position:  dbSubTask.Position,
	}
}

// FromDatabaseSlice converts a slice of database Tasks to domain Tasks.
func (m *TaskMapper) FromDatabaseSlice(dbTasks []*sqlite.Task) []Task {
	tasks := make([]Task, len(dbTasks))
	for i, dbTask := range dbTasks {
		tasks[i] = m.FromDatabase(*dbTask)
	}
	return tasks
}

// PlanningMapper handles conversion between domain and database PlanningTask models.
type PlanningMapper struct{}

// ToDatabase converts a domain PlanningTask to a database PlanningTask.
func (m *PlanningMapper) ToDatabase(goal PlanningTask) sqlite.PlanningTask {
	return sqlite.PlanningTask{
		ID:        goal.ID,
		Title:     goal.Title,
		Category:  string(goal.Category),
		Completed: goal.Completed,
		CreatedAt: goal.CreatedAt,
	}
}

// FromDatabase converts a database PlanningTask to a domain PlanningTask.
func (m *PlanningMapper) FromDatabase(dbGoal sqlite.PlanningTask) PlanningTask {
	return PlanningTask{
		ID:        dbGoal.ID,
		Title:     dbGoal.Title,
		Category:  Category(dbGoal.Category),
		Completed: dbGoal.Completed,
		CreatedAt: dbGoal.CreatedAt,
	}
}

// FromDatabaseSlice converts a slice of database PlanningTasks to domain PlanningTasks.
func (m *PlanningMapper) FromDatabaseSlice(dbGoals []*sqlite.PlanningTask) []PlanningTask {
	goals := make([]PlanningTask, len(dbGoals))
	for i, dbGoal := range dbGoals {
		goals[i] = m.FromDatabase(*dbGoal)
	}
	return goals
}

// TimeLogMapper handles conversion between domain and database TimeLog models.
type TimeLogMapper struct{}

// ToDatabase converts a domain TimeLog to a database TimeLog.
func (m *TimeLogMapper) ToDatabase(log TimeLog) sqlite.TimeLog {
	return sqlite.TimeLog{
		ID:              log.ID,
		TaskID:          log.TaskID,
		TaskTitle:       log.TaskTitle,
		StartTime:       log.StartTime,
		EndTime:         log.EndTime,
		DurationSeconds: log.DurationSeconds,
	}
}

// FromDatabase converts a database TimeLog to a domain TimeLog.
func (m *TimeLogMapper) FromDatabase(dbLog sqlite.TimeLog) TimeLog {
	return TimeLog{
		ID:              dbLog.ID,
		TaskID:          dbLog.TaskID,
		TaskTitle:       dbLog.TaskTitle,
		StartTime:       dbLog.StartTime,
		EndTime:         dbLog.EndTime,
		DurationSeconds: dbLog.DurationSeconds,
	}
}

// FromDatabaseSlice converts a slice of database TimeLogs to domain TimeLogs.
func (m *TimeLogMapper) FromDatabaseSlice(dbLogs []*sqlite.TimeLog) []TimeLog {
	logs := make([]TimeLog, len(dbLogs))
	for i, dbLog := range dbLogs {
		logs[i] = m.FromDatabase(*dbLog)
	}
	return logs
}

// RewardMapper handles conversion between domain and database Reward models.
type RewardMapper struct{}

// ToDatabase converts a domain Reward to a database Reward.
func (m *RewardMapper) ToDatabase(reward Reward) sqlite.Reward {
	return sqlite.Reward{
		ID:            reward.ID,
		Title:         reward.Title,
		Cost:          reward.Cost,
		Icon:          reward.Icon,
		RedeemedCount: reward.RedeemedCount,
	}
}

// FromDatabase converts a database Reward to a domain Reward.
func (m *RewardMapper) FromDatabase(dbReward sqlite.Reward) Reward {
	return Reward{
		ID:            dbReward.ID,
		Title:         dbReward.Title,
		Cost:          dbReward.Cost,
		Icon:          dbReward.Icon,
		RedeemedCount: dbReward.RedeemedCount,
	}
}

// FromDatabaseSlice converts a slice of database Rewards to domain Rewards.
func (m *RewardMapper) FromDatabaseSlice(dbRewards []*sqlite.Reward) []Reward {
	rewards := make([]Reward, len(dbRewards))
	for i, dbReward := range dbRewards {
		rewards[i] = m.FromDatabase(*dbReward)
	}
	return rewards
}

// InsightMapper handles conversion between domain and database Insight models.
// Recommendations travel JSON-encoded in a single column.
type InsightMapper struct{}

// ToDatabase converts a domain Insight to a database Insight.
func (m *InsightMapper) ToDatabase(insight Insight) (sqlite.Insight, error) {
	recommendations, err := json.Marshal(insight.Recommendations)
	if err != nil {
		return sqlite.Insight{}, err
	}
	return sqlite.Insight{
		RequestID:       insight.RequestID,
		Score:           insight.Score,
		Summary:         insight.Summary,
		Recommendations: string(recommendations),
		CreatedAt:       insight.CreatedAt,
	}, nil
}

// FromDatabase converts a database Insight to a domain Insight.
func (m *InsightMapper) FromDatabase(dbInsight sqlite.Insight) (Insight, error) {
	var recommendations []string
	if dbInsight.Recommendations != "" {
		if err := json.Unmarshal([]byte(dbInsight.Recommendations), &recommendations); err != nil {
			return Insight{}, err
		}
	}
	return Insight{
		RequestID:       dbInsight.RequestID,
		Score:           dbInsight.Score,
		Summary:         dbInsight.Summary,
		Recommendations: recommendations,
		CreatedAt:       dbInsight.CreatedAt,
	}, nil
}

// Mapper provides a unified interface for all mapping operations.
type Mapper struct {
	Task     *TaskMapper
	Planning *PlanningMapper
	TimeLog  *TimeLogMapper
	Reward   *RewardMapper
	Insight  *InsightMapper
}

// NewMapper creates a new Mapper instance with all sub-mappers.
func NewMapper() *Mapper {
	return &Mapper{
		Task:     &TaskMapper{},
		Planning: &PlanningMapper{},
		TimeLog:  &TimeLogMapper{},
		Reward:   &RewardMapper{},
		Insight:  &InsightMapper{},
	}
}
