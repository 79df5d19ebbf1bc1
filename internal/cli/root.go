package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"blockday/internal/config"
	"blockday/internal/repository/sqlite"
	"blockday/internal/services"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd      *cobra.Command
	services *services.ServiceContainer
	repo     sqlite.Repository
	config   *config.Config
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(container *services.ServiceContainer, repo sqlite.Repository, cfg *config.Config) *RootCommand {
	root := &RootCommand{
		services: container,
		repo:     repo,
		config:   cfg,
	}

	root.cmd = &cobra.Command{
		Use:   "bd",
		Short: "A command-line day planner with an XP economy",
		Long: `blockday (bd) plans your day as time blocks and scores it as XP.

FEATURES:
  • Schedule tasks into time blocks, with checklists and priorities
  • Stake XP on the one task that matters most
  • Cycle statuses through todo / partial / done
  • Track focus sessions with a live timer
  • Spend earned XP on rewards in the shop
  • Monthly and weekly planning goals linked to daily tasks
  • Model-generated daily insights

EXAMPLES:
  bd add "Morning run" --at 7:00 --for 1        # Schedule a time block
  bd add "Ship the feature" --stake 150 --high  # Stake XP on today's one thing
  bd add "Evening review" --deep --sub "Journal" --sub "Plan tomorrow"
  bd list                                       # Show today's schedule
  bd cycle 2                                    # Advance a task's status
  bd check 1 3                                  # Toggle a checklist item
  bd track 2                                    # Run a focus session
  bd stats                                      # XP breakdown and balance
  bd shop buy 1                                 # Redeem a reward
  bd insights --refresh                         # Ask the model for a review

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment variables > defaults

  Database Configuration:
    BD_DB_DIR                                   Database directory (default: ~/.blockday)
    BD_DB_FILENAME                              Database filename (default: blockday.db)

  Scoring Configuration:
    BD_SCORING_MODE                             Rule set, default or hardcore (default: default)

  Insights Configuration:
    BD_INSIGHTS_API_KEY                         API key for the insights model
    BD_INSIGHTS_BASE_URL                        Chat completions endpoint
    BD_INSIGHTS_MODEL                           Model name (default: gpt-4o-mini)
    BD_INSIGHTS_TIMEOUT                         Request timeout (default: 30s)

  Application Configuration:
    BD_APP_TIMEOUT                              Command timeout (default: 60s)
    BD_APP_VERBOSE                              Enable verbose output (default: false)

GETTING HELP:
  bd [command] --help                           # Get help for any specific command`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return root.getConfigFromFlags()
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.String("db-dir", "", "Database directory (overrides BD_DB_DIR)")
	flags.String("db-filename", "", "Database filename (overrides BD_DB_FILENAME)")
	flags.String("mode", "", "Scoring rule set, default or hardcore (overrides BD_SCORING_MODE)")
	flags.Duration("app-timeout", 0, "Command timeout (overrides BD_APP_TIMEOUT)")
	flags.Bool("verbose", false, "Enable verbose output (overrides BD_APP_VERBOSE)")
}

// getConfigFromFlags updates the configuration with values from command-line flags
func (r *RootCommand) getConfigFromFlags() error {
	if r.config == nil {
		return fmt.Errorf("configuration not initialized")
	}

	flags := r.cmd.PersistentFlags()

	if dbDir, _ := flags.GetString("db-dir"); dbDir != "" {
		r.config.Database.Dir = dbDir
	}
	if dbFilename, _ := flags.GetString("db-filename"); dbFilename != "" {
		r.config.Database.Filename = dbFilename
	}
	if mode, _ := flags.GetString("mode"); mode != "" {
		r.config.Scoring.Mode = mode
	}
	if appTimeout, _ := flags.GetDuration("app-timeout"); appTimeout > 0 {
		r.config.Application.Timeout = appTimeout
	}
	if verbose, _ := flags.GetBool("verbose"); verbose {
		r.config.Application.Verbose = verbose
	}

	return r.config.Validate()
}

// getAppTimeout returns the configured application timeout
func (r *RootCommand) getAppTimeout() time.Duration {
	if r.config != nil {
		return r.config.Application.Timeout
	}
	return 60 * time.Second
}

// runWithTimeout wraps a handler call in the application timeout
func (r *RootCommand) runWithTimeout(fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
	defer cancel()
	return fn(ctx)
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	app := func() *App { return NewApp(r.services, r.config) }

	addCmd := newAddCommand(r, app)
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Show today's schedule",
		Long:  "Show every task: scheduled blocks first in start order, then unscheduled tasks.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.runWithTimeout(func(ctx context.Context) error {
				return NewListCommand(app()).Execute(ctx, args)
			})
		},
	}

	cycleCmd := &cobra.Command{
		Use:   "cycle [task id]",
		Short: "Advance a task's status",
		Long: `Advance a task one step: todo -> partial -> done -> todo.

Tasks with a checklist jump straight between todo and done; cycling to
done ticks every item, cycling away clears them.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.runWithTimeout(func(ctx context.Context) error {
				return NewCycleCommand(app()).Execute(ctx, args)
			})
		},
	}

	checkCmd := &cobra.Command{
		Use:   "check [task id] [item id]",
		Short: "Toggle a checklist item",
		Long:  "Toggle one checklist item. The task's status follows its items automatically.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.runWithTimeout(func(ctx context.Context) error {
				return NewCheckCommand(app()).Execute(ctx, args)
			})
		},
	}

	deleteCmd := &cobra.Command{
		Use:   "delete [task id]",
		Short: "Delete a task",
		Long:  "Delete a task and its checklist. Logged focus sessions keep the task's title.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.runWithTimeout(func(ctx context.Context) error {
				return NewDeleteCommand(app()).Execute(ctx, args)
			})
		},
	}

	trackCmd := &cobra.Command{
		Use:   "track [task id]",
		Short: "Run a focus session",
		Long: `Start a focus session against a task and keep it running until you
press Enter or interrupt. The session is logged on stop; a session that
never reaches one whole second logs nothing. While tracking, the board
rolls over automatically at midnight.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// The session runs until the user ends it; no timeout here
			handler := NewTrackCommand(app(), r.repo)
			return handler.Execute(context.Background(), args)
		},
	}

	logsCmd := newLogsCommand(r, app)
	planCmd := newPlanCommand(r, app)
	shopCmd := newShopCommand(r, app)

	statsCmd := &cobra.Command{
		Use:     "stats",
		Aliases: []string{"balance"},
		Short:   "Show the XP breakdown and balance",
		Long:  "Show total XP, the raw and bonus components, adherence and the spendable balance, with the trailing week of focus time.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.runWithTimeout(func(ctx context.Context) error {
				return NewStatsCommand(app()).Execute(ctx, args)
			})
		},
	}

	insightsCmd := newInsightsCommand(r, app)

	r.cmd.AddCommand(
		addCmd,
		listCmd,
		cycleCmd,
		checkCmd,
		deleteCmd,
		trackCmd,
		logsCmd,
		planCmd,
		shopCmd,
		statsCmd,
		insightsCmd,
	)
}
