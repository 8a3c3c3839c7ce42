package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"game-marketplace/internal/model"

	"github.com/spf13/cobra"
)

// Execute runs one command line against app. Output goes to out.
func Execute(ctx context.Context, app *App, args []string, out io.Writer) error {
	cmd := newRootCommand(app, out)
	cmd.SetArgs(args)
	return cmd.ExecuteContext(ctx)
}

func newRootCommand(app *App, out io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:   "gamestore",
		Short: "Game marketplace catalog and order store",
		Long: `gamestore keeps a seeded catalog of games, orders and users in memory
and tracks the session of the person using it: wallet, cart, wishlist and
order history. Run "gamestore shell" to keep one session across commands.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)
	root.SetErr(out)

	root.AddCommand(
		newGamesCommand(app),
		newOrdersCommand(app),
		newUsersCommand(app),
		newStatsCommand(app),
		newCartCommand(app),
		newWishlistCommand(app),
		newWalletCommand(app),
		newCheckoutCommand(app),
		newProfileCommand(app),
		newLoginCommand(app),
		newLogoutCommand(app),
		newShellCommand(app),
	)
	return root
}

// requireAdmin gates catalog mutations on the session role.
func requireAdmin(app *App) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if !app.Session.IsAdmin() {
			return fmt.Errorf("%s requires an admin session: %w", cmd.CommandPath(), model.ErrPermissionDenied)
		}
		return nil
	}
}

func parseGameID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("game id %q: %w", s, model.ErrValidation)
	}
	return id, nil
}
