package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"blockday/internal/logging"
	"blockday/internal/repository/sqlite"
)

const resetTimeout = 30 * time.Second

// DayReset rolls the board over at local midnight: task statuses back
// to todo, checklist marks cleared. Time logs, rewards and the ledger
// survive the rollover. It only matters during a long-lived tracking
// session; one-shot commands never cross midnight.
type DayReset struct {
	repo sqlite.Repository
	cron *cron.Cron
}

// NewDayReset creates the midnight rollover job
func NewDayReset(repo sqlite.Repository) *DayReset {
	return &DayReset{
		repo: repo,
		cron: cron.New(),
	}
}

// Start schedules the rollover and begins the cron loop
func (d *DayReset) Start() error {
	if _, err := d.cron.AddFunc("0 0 * * *", d.run); err != nil {
		return err
	}
	d.cron.Start()
	return nil
}

// Stop halts the cron loop and waits for a running rollover to finish
func (d *DayReset) Stop() {
	ctx := d.cron.Stop()
	<-ctx.Done()
}

func (d *DayReset) run() {
	ctx, cancel := context.WithTimeout(context.Background(), resetTimeout)
	defer cancel()

	if err := d.repo.ResetDay(ctx); err != nil {
		logging.Debugf("day reset failed: %v\n", err)
		return
	}
	logging.Debugln("day reset complete")
}
