package cli

import (
	"context"
	"fmt"
	"strconv"

	"blockday/internal/errors"
)

// CycleCommand handles the cycle command
type CycleCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewCycleCommand creates a new cycle command handler
func NewCycleCommand(app *App) *CycleCommand {
	return &CycleCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the cycle command
func (c *CycleCommand) Execute(ctx context.Context, args []string) error {
	id, err := parseID(args[0], "task id")
	if err != nil {
		return err
	}

	task, err := c.app.services.Tasks.CycleTask(ctx, id)
	if err != nil {
		return c.errorHandler.Handle("cycle task", err)
	}

	fmt.Fprintf(c.app.out, "%s %s\n", statusGlyph(task.EffectiveStatus()), task.Title)
	return nil
}

// parseID parses a positional numeric ID argument
func parseID(arg, field string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.NewInvalidInputError(field, arg, "must be a positive number")
	}
	return id, nil
}
