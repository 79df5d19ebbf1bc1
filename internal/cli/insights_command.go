package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// InsightsCommand handles the insights command
type InsightsCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewInsightsCommand creates a new insights command handler
func NewInsightsCommand(app *App) *InsightsCommand {
	return &InsightsCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

func newInsightsCommand(r *RootCommand, app func() *App) *cobra.Command {
	var refresh bool

	cmd := &cobra.Command{
		Use:   "insights",
		Short: "Show the model's review of your day",
		Long: `Show the stored insight: a 0-100 score, a short summary and
recommendations, generated by a language model from your tasks and
focus sessions.

With --refresh a new insight is requested first. Requires
BD_INSIGHTS_API_KEY; a failed request keeps the previous insight.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.runWithTimeout(func(ctx context.Context) error {
				return NewInsightsCommand(app()).Execute(ctx, refresh)
			})
		},
	}
	cmd.Flags().BoolVar(&refresh, "refresh", false, "Request a fresh insight before showing it")
	return cmd
}

// Execute runs the insights command
func (c *InsightsCommand) Execute(ctx context.Context, refresh bool) error {
	if refresh {
		if _, err := c.app.services.Insights.Refresh(ctx); err != nil {
			return c.errorHandler.Handle("refresh insights", err)
		}
	}

	insight, err := c.app.services.Insights.Latest(ctx)
	if err != nil {
		return c.errorHandler.Handle("load insights", err)
	}
	if insight == nil {
		fmt.Fprintln(c.app.out, "No insights yet. Generate one with: bd insights --refresh")
		return nil
	}

	fmt.Fprintf(c.app.out, "Score: %.0f/100  (generated %s)\n", insight.Score, insight.CreatedAt.Local().Format(time.DateTime))
	fmt.Fprintln(c.app.out, insight.Summary)
	for _, rec := range insight.Recommendations {
		fmt.Fprintf(c.app.out, "  - %s\n", rec)
	}
	return nil
}
