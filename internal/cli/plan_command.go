package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"blockday/internal/domain"
)

// PlanCommand handles the plan command group
type PlanCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewPlanCommand creates a new plan command handler
func NewPlanCommand(app *App) *PlanCommand {
	return &PlanCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

func newPlanCommand(r *RootCommand, app func() *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Manage planning goals",
		Long: `Manage monthly and weekly planning goals.

Goals complete automatically when a linked daily task reaches done;
there is no manual completion. Link a task at creation: bd add ... --goal 2`,
	}

	var weekly bool
	addCmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Add a planning goal",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.runWithTimeout(func(ctx context.Context) error {
				category := domain.CategoryMonthly
				if weekly {
					category = domain.CategoryWeekly
				}
				return NewPlanCommand(app()).ExecuteAdd(ctx, strings.Join(args, " "), category)
			})
		},
	}
	addCmd.Flags().BoolVar(&weekly, "weekly", false, "Create a weekly goal instead of a monthly one")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List planning goals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.runWithTimeout(func(ctx context.Context) error {
				return NewPlanCommand(app()).ExecuteList(ctx)
			})
		},
	}

	rmCmd := &cobra.Command{
		Use:   "rm [goal id]",
		Short: "Delete a planning goal",
		Long:  "Delete a planning goal. Daily tasks that pointed at it stay, with the link cleared.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.runWithTimeout(func(ctx context.Context) error {
				return NewPlanCommand(app()).ExecuteDelete(ctx, args[0])
			})
		},
	}

	cmd.AddCommand(addCmd, listCmd, rmCmd)
	return cmd
}

// ExecuteAdd creates a planning goal
func (c *PlanCommand) ExecuteAdd(ctx context.Context, title string, category domain.Category) error {
	goal, err := c.app.services.Planning.CreateGoal(ctx, title, category)
	if err != nil {
		return c.errorHandler.Handle("add goal", err)
	}
	fmt.Fprintf(c.app.out, "Added %s goal %d: %s\n", goal.Category, goal.ID, goal.Title)
	return nil
}

// ExecuteList lists all planning goals
func (c *PlanCommand) ExecuteList(ctx context.Context) error {
	goals, err := c.app.services.Planning.ListGoals(ctx)
	if err != nil {
		return c.errorHandler.Handle("list goals", err)
	}

	if len(goals) == 0 {
		fmt.Fprintln(c.app.out, "No planning goals yet. Add one with: bd plan add \"Goal title\"")
		return nil
	}

	for _, goal := range goals {
		mark := " "
		if goal.Completed {
			mark = "x"
		}
		fmt.Fprintf(c.app.out, "%3d [%s] %-7s %s\n", goal.ID, mark, goal.Category, goal.Title)
	}
	return nil
}

// ExecuteDelete deletes a planning goal
func (c *PlanCommand) ExecuteDelete(ctx context.Context, arg string) error {
	id, err := parseID(arg, "goal id")
	if err != nil {
		return err
	}
	if err := c.app.services.Planning.DeleteGoal(ctx, id); err != nil {
		return c.errorHandler.Handle("delete goal", err)
	}
	fmt.Fprintf(c.app.out, "Deleted goal %d\n", id)
	return nil
}
