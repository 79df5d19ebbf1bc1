package cli

import (
	"context"
	"fmt"
)

// ListCommand handles the list command
type ListCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewListCommand creates a new list command handler
func NewListCommand(app *App) *ListCommand {
	return &ListCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the list command
func (c *ListCommand) Execute(ctx context.Context, args []string) error {
	tasks, err := c.app.services.Tasks.ListTasks(ctx)
	if err != nil {
		return c.errorHandler.Handle("list tasks", err)
	}

	if len(tasks) == 0 {
		fmt.Fprintln(c.app.out, "No tasks yet. Add one with: bd add \"Task title\"")
		return nil
	}

	for _, task := range tasks {
		line := fmt.Sprintf("%3d %s", task.ID, statusGlyph(task.EffectiveStatus()))
		if task.Schedule != nil {
			line += " " + formatBlock(*task.Schedule)
		} else {
			line += "            "
		}
		line += " " + task.Title

		if task.HasSubTasks() {
			line += fmt.Sprintf(" (%d/%d)", task.CompletedSubTasks(), len(task.SubTasks))
		}
		if task.IsStake() {
			line += fmt.Sprintf(" [stake %d]", *task.XPStakes)
		}
		if task.Priority != "medium" {
			line += fmt.Sprintf(" !%s", task.Priority)
		}
		fmt.Fprintln(c.app.out, line)

		for _, subTask := range task.SubTasks {
			mark := " "
			if subTask.Completed {
				mark = "x"
			}
			fmt.Fprintf(c.app.out, "      %3d [%s] %s\n", subTask.ID, mark, subTask.Title)
		}
	}
	return nil
}
