package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// LogsCommand handles the logs command
type LogsCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewLogsCommand creates a new logs command handler
func NewLogsCommand(app *App) *LogsCommand {
	return &LogsCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

func newLogsCommand(r *RootCommand, app func() *App) *cobra.Command {
	var asCSV bool

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "List focus sessions",
		Long: `List every logged focus session in chronological order.

With --csv the sessions are written as CSV, suitable for redirection:
  bd logs --csv > sessions.csv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.runWithTimeout(func(ctx context.Context) error {
				return NewLogsCommand(app()).Execute(ctx, asCSV)
			})
		},
	}
	cmd.Flags().BoolVar(&asCSV, "csv", false, "Write sessions as CSV")
	return cmd
}

// Execute runs the logs command
func (c *LogsCommand) Execute(ctx context.Context, asCSV bool) error {
	if asCSV {
		if err := c.app.services.Reporting.ExportLogsCSV(ctx, c.app.out); err != nil {
			return c.errorHandler.Handle("export logs", err)
		}
		return nil
	}

	logs, err := c.app.services.Reporting.ListLogs(ctx)
	if err != nil {
		return c.errorHandler.Handle("list logs", err)
	}

	if len(logs) == 0 {
		fmt.Fprintln(c.app.out, "No focus sessions logged yet.")
		return nil
	}

	for _, log := range logs {
		fmt.Fprintf(c.app.out, "%3d  %s  %-10s %s\n",
			log.ID,
			log.StartTime.Local().Format(time.DateTime),
			formatSeconds(log.DurationSeconds),
			log.TaskTitle)
	}
	return nil
}
