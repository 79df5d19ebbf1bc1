package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"blockday/internal/domain"
	"blockday/internal/errors"
	"blockday/internal/scoring"
)

// addOptions carries the parsed add flags into the handler
type addOptions struct {
	priority string
	at       string
	duration float64
	subItems []string
	stake    int
	goalID   int64
	deep     bool
	high     bool
	low      bool
}

// AddCommand handles the add command
type AddCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewAddCommand creates a new add command handler
func NewAddCommand(app *App) *AddCommand {
	return &AddCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

func newAddCommand(r *RootCommand, app func() *App) *cobra.Command {
	opts := &addOptions{}

	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Add a task",
		Long: `Add a task to today's board.

A task can be a plain block, a checklist (repeat --sub), or a stake
(--stake wagers XP: win it on done, lose it if the task stays todo).
A stake cannot also carry a checklist.

Examples:
  bd add "Morning run" --at 7:00 --for 1
  bd add "Ship the feature" --stake 150 --high
  bd add "Evening review" --deep --sub "Journal" --sub "Plan tomorrow"
  bd add "Draft proposal" --goal 2`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.runWithTimeout(func(ctx context.Context) error {
				return NewAddCommand(app()).Execute(ctx, args, opts)
			})
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.priority, "priority", "", "Task priority: low, medium or high")
	flags.BoolVar(&opts.high, "high", false, "Shorthand for --priority high")
	flags.BoolVar(&opts.low, "low", false, "Shorthand for --priority low")
	flags.StringVar(&opts.at, "at", "", "Schedule start time, e.g. 7:00 or 21:30")
	flags.Float64Var(&opts.duration, "for", 0, "Schedule duration in hours, e.g. 1.5")
	flags.StringArrayVar(&opts.subItems, "sub", nil, "Checklist item (repeatable)")
	flags.IntVar(&opts.stake, "stake", 0, "XP to wager on this task")
	flags.Int64Var(&opts.goalID, "goal", 0, "Planning goal to link this task to")
	flags.BoolVar(&opts.deep, "deep", false, "Use the deep scoring profile for the checklist")

	return cmd
}

// Execute runs the add command
func (c *AddCommand) Execute(ctx context.Context, args []string, opts *addOptions) error {
	task := domain.Task{Title: strings.Join(args, " ")}

	priority, err := resolvePriority(opts)
	if err != nil {
		return err
	}
	task.Priority = priority

	if opts.deep {
		task.Profile = domain.ProfileDeep
	}

	if opts.at != "" || opts.duration > 0 {
		schedule, err := parseSchedule(opts.at, opts.duration)
		if err != nil {
			return err
		}
		task.Schedule = schedule
	}

	rules := scoring.ForMode(c.app.config.Scoring.Mode)
	perItem := rules.SubTaskXP
	if task.Profile == domain.ProfileDeep {
		perItem = rules.DeepSubTaskXP
	}
	for _, item := range opts.subItems {
		task.SubTasks = append(task.SubTasks, domain.SubTask{Title: item, XP: perItem})
	}

	if opts.stake > 0 {
		stake := opts.stake
		task.XPStakes = &stake
	}
	if opts.goalID > 0 {
		goalID := opts.goalID
		task.PlanningTaskID = &goalID
	}

	created, err := c.app.services.Tasks.CreateTask(ctx, task)
	if err != nil {
		return c.errorHandler.Handle("add task", err)
	}

	fmt.Fprintf(c.app.out, "Added task %d: %s\n", created.ID, created.Title)
	if created.Schedule != nil {
		fmt.Fprintf(c.app.out, "  scheduled %s for %s\n",
			formatStart(*created.Schedule), formatDuration(created.Schedule.DurationHours))
	}
	if len(created.SubTasks) > 0 {
		fmt.Fprintf(c.app.out, "  checklist with %d items\n", len(created.SubTasks))
	}
	if created.IsStake() {
		fmt.Fprintf(c.app.out, "  staked %d XP\n", *created.XPStakes)
	}
	return nil
}

func resolvePriority(opts *addOptions) (domain.Priority, error) {
	set := 0
	priority := domain.PriorityMedium
	if opts.priority != "" {
		set++
		priority = domain.Priority(opts.priority)
	}
	if opts.high {
		set++
		priority = domain.PriorityHigh
	}
	if opts.low {
		set++
		priority = domain.PriorityLow
	}
	if set > 1 {
		return "", errors.NewInvalidInputError("priority", opts.priority, "use only one of --priority, --high, --low")
	}
	if !priority.IsValid() {
		return "", errors.NewInvalidInputError("priority", opts.priority, "must be low, medium or high")
	}
	return priority, nil
}

// parseSchedule turns "--at 7:30 --for 1.5" into a schedule block.
// Both halves are required together.
func parseSchedule(at string, duration float64) (*domain.ScheduleBlock, error) {
	if at == "" || duration <= 0 {
		return nil, errors.NewInvalidInputError("schedule", at, "scheduling needs both --at and --for")
	}

	parts := strings.SplitN(at, ":", 2)
	if len(parts) != 2 {
		return nil, errors.NewInvalidInputError("at", at, "expected HH:MM, e.g. 7:00")
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return nil, errors.NewInvalidInputError("at", at, "expected HH:MM, e.g. 7:00")
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return nil, errors.NewInvalidInputError("at", at, "expected HH:MM, e.g. 7:00")
	}

	block := &domain.ScheduleBlock{StartHour: hour, StartMinute: minute, DurationHours: duration}
	if !block.IsValid() {
		return nil, errors.NewInvalidInputError("at", at, "start must be a real time of day")
	}
	return block, nil
}
