package sqlite

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// ScanTask scans a single task from a database row. Sub-tasks are
// loaded separately.
func ScanTask(scanner Scanner) (*Task, error) {
	task := &Task{}
	var createdAt string

	err := scanner.Scan(
		&task.ID,
		&task.Title,
		&task.Priority,
		&task.Status,
		&task.Profile,
		&createdAt,
		&task.StartHour,
		&task.StartMinute,
		&task.DurationHours,
		&task.PlanningTaskID,
		&task.XPStakes,
	)
	if err != nil {
		return nil, err
	}

	task.CreatedAt, err = ParseTimeFromDB(createdAt)
	if err != nil {
		return nil, err
	}
	return task, nil
}

// ScanTasks scans multiple tasks from database rows
func ScanTasks(rows Rows) ([]*Task, error) {
	var tasks []*Task
	for rows.Next() {
		task, err := ScanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}

// ScanSubTask scans a single checklist item from a database row
func ScanSubTask(scanner Scanner) (*SubTask, error) {
	subTask := &SubTask{}
	err := scanner.Scan(
		&subTask.ID,
		&subTask.TaskID,
		&subTask.Title,
		&subTask.XP,
		&subTask.Completed,
		&subTask.Position,
	)
	if err != nil {
		return nil, err
	}
	return subTask, nil
}

// ScanSubTasks scans multiple checklist items from database rows
func ScanSubTasks(rows Rows) ([]*SubTask, error) {
	var subTasks []*SubTask
	for rows.Next() {
		subTask, err := ScanSubTask(rows)
		if err != nil {
			return nil, err
		}
		subTasks = append(subTasks, subTask)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return subTasks, nil
}

// ScanPlanningTask scans a single planning goal from a database row
func ScanPlanningTask(scanner Scanner) (*PlanningTask, error) {
	goal := &PlanningTask{}
	var createdAt string

	err := scanner.Scan(
		&goal.ID,
		&goal.Title,
		&goal.Category,
		&goal.Completed,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	goal.CreatedAt, err = ParseTimeFromDB(createdAt)
	if err != nil {
		return nil, err
	}
	return goal, nil
}

// ScanPlanningTasks scans multiple planning goals from database rows
func ScanPlanningTasks(rows Rows) ([]*PlanningTask, error) {
	var goals []*PlanningTask
	for rows.Next() {
		goal, err := ScanPlanningTask(rows)
		if err != nil {
			return nil, err
		}
		goals = append(goals, goal)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return goals, nil
}

// ScanTimeLog scans a single focus session from a database row
func ScanTimeLog(scanner Scanner) (*TimeLog, error) {
	log := &TimeLog{}
	var startTime, endTime string

	err := scanner.Scan(
		&log.ID,
		&log.TaskID,
		&log.TaskTitle,
		&startTime,
		&endTime,
		&log.DurationSeconds,
	)
	if err != nil {
		return nil, err
	}

	if log.StartTime, err = ParseTimeFromDB(startTime); err != nil {
		return nil, err
	}
	if log.EndTime, err = ParseTimeFromDB(endTime); err != nil {
		return nil, err
	}
	return log, nil
}

// ScanTimeLogs scans multiple focus sessions from database rows
func ScanTimeLogs(rows Rows) ([]*TimeLog, error) {
	var logs []*TimeLog
	for rows.Next() {
		log, err := ScanTimeLog(rows)
		if err != nil {
			return nil, err
		}
		logs = append(logs, log)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return logs, nil
}

// ScanReward scans a single reward from a database row
func ScanReward(scanner Scanner) (*Reward, error) {
	reward := &Reward{}
	err := scanner.Scan(
		&reward.ID,
		&reward.Title,
		&reward.Cost,
		&reward.Icon,
		&reward.RedeemedCount,
	)
	if err != nil {
		return nil, err
	}
	return reward, nil
}

// ScanRewards scans multiple rewards from database rows
func ScanRewards(rows Rows) ([]*Reward, error) {
	var rewards []*Reward
	for rows.Next() {
		reward, err := ScanReward(rows)
		if err != nil {
			return nil, err
		}
		rewards = append(rewards, reward)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return rewards, nil
}

// ScanInsight scans the stored insight slot from a database row
func ScanInsight(scanner Scanner) (*Insight, error) {
	insight := &Insight{}
	var createdAt string

	err := scanner.Scan(
		&insight.RequestID,
		&insight.Score,
		&insight.Summary,
		&insight.Recommendations,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	insight.CreatedAt, err = ParseTimeFromDB(createdAt)
	if err != nil {
		return nil, err
	}
	return insight, nil
}
