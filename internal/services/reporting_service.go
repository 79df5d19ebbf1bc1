package services

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"blockday/internal/domain"
	"blockday/internal/repository/sqlite"
)

// reportingServiceImpl implements ReportingService
type reportingServiceImpl struct {
	repo    sqlite.Repository
	scoring ScoringService
	mapper  *domain.Mapper
	now     func() time.Time
}

// NewReportingService creates a new reporting service instance
func NewReportingService(repo sqlite.Repository, scoring ScoringService) ReportingService {
	return &reportingServiceImpl{
		repo:    repo,
		scoring: scoring,
		mapper:  domain.NewMapper(),
		now:     time.Now,
	}
}

// Dashboard assembles the score, task counts and the trailing seven-day
// focus totals in one read.
func (s *reportingServiceImpl) Dashboard(ctx context.Context) (*DashboardData, error) {
	score, err := s.scoring.Evaluate(ctx)
	if err != nil {
		return nil, err
	}

	dbTasks, err := s.repo.ListTasks(ctx)
	if err != nil {
		return nil, err
	}
	tasks := s.mapper.Task.FromDatabaseSlice(dbTasks)

	doneCount := 0
	for _, task := range tasks {
		if task.EffectiveStatus() == domain.StatusDone {
			doneCount++
		}
	}

	dbLogs, err := s.repo.ListTimeLogs(ctx)
	if err != nil {
		return nil, err
	}

	weekFocus, err := s.weekFocus(ctx)
	if err != nil {
		return nil, err
	}

	return &DashboardData{
		Score:     score,
		TaskCount: len(tasks),
		DoneCount: doneCount,
		LogCount:  len(dbLogs),
		WeekFocus: weekFocus,
	}, nil
}

// weekFocus buckets the last seven days of focus sessions by local
// calendar day, today last. Days without sessions stay at zero.
func (s *reportingServiceImpl) weekFocus(ctx context.Context) ([]DayFocus, error) {
	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	since := today.AddDate(0, 0, -6)

	dbLogs, err := s.repo.SearchTimeLogs(ctx, sqlite.SearchOptions{Since: &since})
	if err != nil {
		return nil, err
	}
	logs := s.mapper.TimeLog.FromDatabaseSlice(dbLogs)

	days := make([]DayFocus, 7)
	for i := range days {
		days[i].Date = since.AddDate(0, 0, i)
	}
	for _, log := range logs {
		start := log.StartTime.In(now.Location())
		day := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, now.Location())
		offset := int(day.Sub(since).Hours() / 24)
		if offset >= 0 && offset < 7 {
			days[offset].FocusSeconds += log.DurationSeconds
		}
	}
	return days, nil
}

// ListLogs retrieves all focus sessions in chronological order
func (s *reportingServiceImpl) ListLogs(ctx context.Context) ([]domain.TimeLog, error) {
	dbLogs, err := s.repo.ListTimeLogs(ctx)
	if err != nil {
		return nil, err
	}
	return s.mapper.TimeLog.FromDatabaseSlice(dbLogs), nil
}

// ExportLogsCSV writes every focus session as CSV with a header row
func (s *reportingServiceImpl) ExportLogsCSV(ctx context.Context, w io.Writer) error {
	logs, err := s.ListLogs(ctx)
	if err != nil {
		return err
	}

	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"id", "task_id", "task_title", "start_time", "end_time", "duration_seconds"}); err != nil {
		return fmt.Errorf("write CSV header: %w", err)
	}
	for _, log := range logs {
		record := []string{
			fmt.Sprintf("%d", log.ID),
			fmt.Sprintf("%d", log.TaskID),
			log.TaskTitle,
			log.StartTime.Format(time.RFC3339),
			log.EndTime.Format(time.RFC3339),
			fmt.Sprintf("%d", log.DurationSeconds),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write CSV record: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}
