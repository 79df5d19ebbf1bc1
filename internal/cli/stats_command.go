package cli

import (
	"context"
	"fmt"
	"strings"
)

// StatsCommand handles the stats command
type StatsCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewStatsCommand creates a new stats command handler
func NewStatsCommand(app *App) *StatsCommand {
	return &StatsCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the stats command
func (c *StatsCommand) Execute(ctx context.Context, args []string) error {
	data, err := c.app.services.Reporting.Dashboard(ctx)
	if err != nil {
		return c.errorHandler.Handle("build dashboard", err)
	}

	result := data.Score.Result
	fmt.Fprintf(c.app.out, "Today: %d/%d tasks done, %d focus sessions\n", data.DoneCount, data.TaskCount, data.LogCount)
	fmt.Fprintf(c.app.out, "Raw XP:      %+.1f\n", result.RawXP)
	fmt.Fprintf(c.app.out, "Focus bonus: %+d\n", result.FocusBonus)
	fmt.Fprintf(c.app.out, "Adherence:   %.0f%% (x%.1f)\n", result.AdherenceRate*100, result.AdherenceMultiplier)
	fmt.Fprintf(c.app.out, "Total XP:    %d\n", result.TotalXP)
	fmt.Fprintf(c.app.out, "Spent:       %d\n", data.Score.SpentXP)
	fmt.Fprintf(c.app.out, "Balance:     %d XP\n", data.Score.Balance)

	fmt.Fprintln(c.app.out, "\nFocus, last 7 days:")
	var maxSeconds int64
	for _, day := range data.WeekFocus {
		if day.FocusSeconds > maxSeconds {
			maxSeconds = day.FocusSeconds
		}
	}
	for _, day := range data.WeekFocus {
		bar := ""
		if maxSeconds > 0 {
			width := int(day.FocusSeconds * 30 / maxSeconds)
			bar = strings.Repeat("#", width)
		}
		fmt.Fprintf(c.app.out, "  %s %-30s %s\n", day.Date.Format("Mon"), bar, formatSeconds(day.FocusSeconds))
	}
	return nil
}
