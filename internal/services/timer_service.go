package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"blockday/internal/domain"
	"blockday/internal/errors"
	"blockday/internal/repository/sqlite"
	"blockday/internal/validation"
)

// timerServiceImpl implements TimerService. One session at a time; the
// ticker goroutine and the caller share state under the mutex.
type timerServiceImpl struct {
	repo      sqlite.Repository
	mapper    *domain.Mapper
	validator *validation.TaskValidator

	mu        sync.Mutex
	running   bool
	taskID    int64
	taskTitle string
	startedAt time.Time
	elapsed   int64
	stop      chan struct{}
}

// NewTimerService creates a new timer service instance
func NewTimerService(repo sqlite.Repository) TimerService {
	return &timerServiceImpl{
		repo:      repo,
		mapper:    domain.NewMapper(),
		validator: validation.NewTaskValidator(),
	}
}

// Start begins a focus session against an existing task. Starting while
// a session is already running is rejected; stop first.
func (s *timerServiceImpl) Start(ctx context.Context, taskID int64) error {
	if err := s.validator.ValidateTaskID(taskID); err != nil {
		return err
	}

	dbTask, err := s.repo.GetTask(ctx, taskID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return errors.NewInvalidInputError("timer", s.taskID, "a session is already running")
	}

	s.running = true
	s.taskID = dbTask.ID
	s.taskTitle = dbTask.Title
	s.startedAt = time.Now()
	s.elapsed = 0
	s.stop = make(chan struct{})

	go s.run(s.stop)
	return nil
}

// run drives the once-per-second tick until the session stops
func (s *timerServiceImpl) run(stop chan struct{}) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			s.tick()
		case <-stop:
			return
		}
	}
}

func (s *timerServiceImpl) tick() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		s.elapsed++
	}
}

// Running reports whether a session is in progress
func (s *timerServiceImpl) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Elapsed returns the current session's whole elapsed seconds
func (s *timerServiceImpl) Elapsed() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.elapsed
}

// CurrentTask returns the running session's task, if any
func (s *timerServiceImpl) CurrentTask() (int64, string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.taskID, s.taskTitle, s.running
}

// Stop ends the session and appends a time log carrying a snapshot of
// the task title. Stopping while idle is a no-op, and a session that
// never reached one whole second appends nothing. Both return (nil, nil).
func (s *timerServiceImpl) Stop(ctx context.Context) (*domain.TimeLog, error) {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return nil, nil
	}

	close(s.stop)
	log := domain.TimeLog{
		TaskID:          s.taskID,
		TaskTitle:       s.taskTitle,
		StartTime:       s.startedAt,
		EndTime:         time.Now(),
		DurationSeconds: s.elapsed,
	}
	s.running = false
	s.taskID = 0
	s.taskTitle = ""
	s.elapsed = 0
	s.stop = nil
	s.mu.Unlock()

	if log.DurationSeconds == 0 {
		return nil, nil
	}

	dbLog := s.mapper.TimeLog.ToDatabase(log)
	if err := s.repo.CreateTimeLog(ctx, &dbLog); err != nil {
		return nil, fmt.Errorf("record focus session: %w", err)
	}
	return &log, nil
}
