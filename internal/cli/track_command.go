package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"blockday/internal/repository/sqlite"
	"blockday/internal/scheduler"
)

// TrackCommand handles the track command: a long-lived interactive
// focus session. Because it can cross midnight, it also hosts the day
// rollover job for its lifetime.
type TrackCommand struct {
	app          *App
	repo         sqlite.Repository
	errorHandler *ErrorHandler
}

// NewTrackCommand creates a new track command handler
func NewTrackCommand(app *App, repo sqlite.Repository) *TrackCommand {
	return &TrackCommand{
		app:          app,
		repo:         repo,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the track command
func (c *TrackCommand) Execute(ctx context.Context, args []string) error {
	id, err := parseID(args[0], "task id")
	if err != nil {
		return err
	}

	timer := c.app.services.Timer
	if err := timer.Start(ctx, id); err != nil {
		return c.errorHandler.Handle("start focus session", err)
	}

	reset := scheduler.NewDayReset(c.repo)
	if err := reset.Start(); err != nil {
		timer.Stop(ctx)
		return c.errorHandler.Handle("start day rollover", err)
	}
	defer reset.Stop()

	_, title, _ := timer.CurrentTask()
	fmt.Fprintf(c.app.out, "Tracking %q. Press Enter or Ctrl+C to stop.\n", title)

	c.waitForStop()

	log, err := timer.Stop(ctx)
	if err != nil {
		return c.errorHandler.Handle("stop focus session", err)
	}
	if log == nil {
		fmt.Fprintln(c.app.out, "Nothing logged.")
		return nil
	}

	fmt.Fprintf(c.app.out, "Logged %s on %q\n", formatSeconds(log.DurationSeconds), log.TaskTitle)

	score, err := c.app.services.Scoring.Evaluate(ctx)
	if err != nil {
		return c.errorHandler.Handle("recompute score", err)
	}
	fmt.Fprintf(c.app.out, "Focus bonus now %d XP, balance %d XP\n", score.Result.FocusBonus, score.Balance)
	return nil
}

// waitForStop blocks until the user presses Enter or interrupts
func (c *TrackCommand) waitForStop() {
	enter := make(chan struct{})
	go func() {
		bufio.NewReader(os.Stdin).ReadString('\n')
		close(enter)
	}()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupt)

	select {
	case <-enter:
	case <-interrupt:
	}
}
