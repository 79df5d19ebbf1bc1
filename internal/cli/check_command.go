package cli

import (
	"context"
	"fmt"
)

// CheckCommand handles the check command
type CheckCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewCheckCommand creates a new check command handler
func NewCheckCommand(app *App) *CheckCommand {
	return &CheckCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the check command
func (c *CheckCommand) Execute(ctx context.Context, args []string) error {
	taskID, err := parseID(args[0], "task id")
	if err != nil {
		return err
	}
	subTaskID, err := parseID(args[1], "item id")
	if err != nil {
		return err
	}

	task, err := c.app.services.Tasks.ToggleSubTask(ctx, taskID, subTaskID)
	if err != nil {
		return c.errorHandler.Handle("toggle checklist item", err)
	}

	fmt.Fprintf(c.app.out, "%s %s (%d/%d)\n",
		statusGlyph(task.EffectiveStatus()), task.Title, task.CompletedSubTasks(), len(task.SubTasks))
	return nil
}
