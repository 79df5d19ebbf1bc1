package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"blockday/internal/errors"
)

// ShopCommand handles the shop command group
type ShopCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewShopCommand creates a new shop command handler
func NewShopCommand(app *App) *ShopCommand {
	return &ShopCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

func newShopCommand(r *RootCommand, app func() *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shop",
		Short: "Browse and redeem rewards",
		Long: `Manage the reward shop. Earned XP is the currency: redeeming a reward
charges its cost against your balance, and an unaffordable reward is
refused without touching anything.`,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List rewards",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.runWithTimeout(func(ctx context.Context) error {
				return NewShopCommand(app()).ExecuteList(ctx)
			})
		},
	}

	var icon string
	addCmd := &cobra.Command{
		Use:   "add [title] [cost]",
		Short: "Add a reward",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.runWithTimeout(func(ctx context.Context) error {
				title := strings.Join(args[:len(args)-1], " ")
				return NewShopCommand(app()).ExecuteAdd(ctx, title, args[len(args)-1], icon)
			})
		},
	}
	addCmd.Flags().StringVar(&icon, "icon", "", "Icon shown next to the reward")

	buyCmd := &cobra.Command{
		Use:   "buy [reward id]",
		Short: "Redeem a reward",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.runWithTimeout(func(ctx context.Context) error {
				return NewShopCommand(app()).ExecuteBuy(ctx, args[0])
			})
		},
	}

	cmd.AddCommand(listCmd, addCmd, buyCmd)
	return cmd
}

// ExecuteList lists the shop alongside the current balance
func (c *ShopCommand) ExecuteList(ctx context.Context) error {
	score, err := c.app.services.Scoring.Evaluate(ctx)
	if err != nil {
		return c.errorHandler.Handle("compute balance", err)
	}
	rewards, err := c.app.services.Rewards.ListRewards(ctx)
	if err != nil {
		return c.errorHandler.Handle("list rewards", err)
	}

	fmt.Fprintf(c.app.out, "Balance: %d XP\n", score.Balance)
	if len(rewards) == 0 {
		fmt.Fprintln(c.app.out, "The shop is empty. Stock it with: bd shop add \"Reward\" 100")
		return nil
	}

	for _, reward := range rewards {
		line := fmt.Sprintf("%3d  %4d XP  %s", reward.ID, reward.Cost, reward.Title)
		if reward.Icon != "" {
			line += " " + reward.Icon
		}
		if reward.RedeemedCount > 0 {
			line += fmt.Sprintf("  (redeemed %dx)", reward.RedeemedCount)
		}
		fmt.Fprintln(c.app.out, line)
	}
	return nil
}

// ExecuteAdd stocks the shop with a new reward
func (c *ShopCommand) ExecuteAdd(ctx context.Context, title, costArg, icon string) error {
	cost, err := strconv.Atoi(costArg)
	if err != nil {
		return errors.NewInvalidInputError("cost", costArg, "must be a number")
	}

	reward, err := c.app.services.Rewards.CreateReward(ctx, title, cost, icon)
	if err != nil {
		return c.errorHandler.Handle("add reward", err)
	}
	fmt.Fprintf(c.app.out, "Added reward %d: %s (%d XP)\n", reward.ID, reward.Title, reward.Cost)
	return nil
}

// ExecuteBuy redeems a reward against the balance
func (c *ShopCommand) ExecuteBuy(ctx context.Context, arg string) error {
	id, err := parseID(arg, "reward id")
	if err != nil {
		return err
	}

	reward, err := c.app.services.Rewards.Redeem(ctx, id)
	if err != nil {
		return c.errorHandler.Handle("redeem reward", err)
	}

	score, err := c.app.services.Scoring.Evaluate(ctx)
	if err != nil {
		return c.errorHandler.Handle("compute balance", err)
	}
	fmt.Fprintf(c.app.out, "Redeemed %s for %d XP. Balance: %d XP\n", reward.Title, reward.Cost, score.Balance)
	return nil
}
