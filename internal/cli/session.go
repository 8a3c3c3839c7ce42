package cli

import (
	"fmt"
	"strconv"

	"game-marketplace/internal/dto"
	"game-marketplace/internal/model"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func newCartCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Manage the shopping cart",
	}

	add := &cobra.Command{
		Use:   "add <game-id>",
		Short: "Put a game in the cart, or one more copy if it is already there",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseGameID(args[0])
			if err != nil {
				return err
			}
			game, err := app.Catalog.GetGame(cmd.Context(), id)
			if err != nil {
				return err
			}
			app.Session.AddToCart(*game)
			return nil
		},
	}

	remove := &cobra.Command{
		Use:   "remove <game-id>",
		Short: "Take a game out of the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseGameID(args[0])
			if err != nil {
				return err
			}
			app.Session.RemoveFromCart(id)
			return nil
		},
	}

	qty := &cobra.Command{
		Use:   "qty <game-id> <quantity>",
		Short: "Set the quantity of a cart line. Below 1 removes the line",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseGameID(args[0])
			if err != nil {
				return err
			}
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("quantity %q: %w", args[1], model.ErrValidation)
			}
			app.Session.UpdateQuantity(id, n)
			return nil
		},
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Show the cart and its totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if err := printCart(out, app.Session.Cart()); err != nil {
				return err
			}
			sum := app.Session.CartSummary()
			fmt.Fprintf(out, "\nitems: %d  subtotal: $%s  service fee: $%s  total: $%s\n",
				sum.Items, sum.Subtotal.StringFixed(2), sum.ServiceFee.StringFixed(2), sum.Total.StringFixed(2))
			return nil
		},
	}

	clearCart := &cobra.Command{
		Use:   "clear",
		Short: "Empty the cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app.Session.ClearCart()
			return nil
		},
	}

	cmd.AddCommand(add, remove, qty, show, clearCart)
	return cmd
}

func newWishlistCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wishlist",
		Short: "Manage the wishlist",
	}

	add := &cobra.Command{
		Use:   "add <game-id>",
		Short: "Save a game to the wishlist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseGameID(args[0])
			if err != nil {
				return err
			}
			game, err := app.Catalog.GetGame(cmd.Context(), id)
			if err != nil {
				return err
			}
			app.Session.AddToWishlist(cmd.Context(), *game)
			return nil
		},
	}

	remove := &cobra.Command{
		Use:   "remove <game-id>",
		Short: "Drop a game from the wishlist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseGameID(args[0])
			if err != nil {
				return err
			}
			app.Session.RemoveFromWishlist(cmd.Context(), id)
			return nil
		},
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "List wishlisted games",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printGames(cmd.OutOrStdout(), app.Session.Wishlist())
		},
	}

	cmd.AddCommand(add, remove, show)
	return cmd
}

func newWalletCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wallet",
		Short: "Show or change the wallet balance",
	}

	move := func(use, short string, apply func(*cobra.Command, decimal.Decimal) (model.User, error)) *cobra.Command {
		return &cobra.Command{
			Use:   use + " <amount>",
			Short: short,
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				amount, err := decimal.NewFromString(args[0])
				if err != nil {
					return fmt.Errorf("amount %q: %w", args[0], model.ErrValidation)
				}
				user, err := apply(cmd, amount)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "balance: $%s\n", user.WalletBalance.StringFixed(2))
				return nil
			},
		}
	}

	add := move("add", "Add funds", func(cmd *cobra.Command, amount decimal.Decimal) (model.User, error) {
		return app.Session.AddToWallet(cmd.Context(), amount)
	})
	deduct := move("deduct", "Take funds out", func(cmd *cobra.Command, amount decimal.Decimal) (model.User, error) {
		return app.Session.DeductFromWallet(cmd.Context(), amount)
	})

	show := &cobra.Command{
		Use:   "show",
		Short: "Show the balance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "balance: $%s\n", app.Session.User().WalletBalance.StringFixed(2))
			return nil
		},
	}

	cmd.AddCommand(add, deduct, show)
	return cmd
}

func newCheckoutCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "checkout",
		Short: "Pay for the cart from the wallet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			order, err := app.Session.Checkout(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), order)
		},
	}
}

func newProfileCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or edit the current user",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Show the current user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printJSON(cmd.OutOrStdout(), app.Session.User())
		},
	}

	var name, email, avatar, bio, location string
	update := &cobra.Command{
		Use:   "update",
		Short: "Edit profile fields",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fs := cmd.Flags()
			str := func(flag, v string) *string {
				if !fs.Changed(flag) {
					return nil
				}
				return &v
			}
			upd := dto.ProfileUpdate{
				DisplayName: str("name", name),
				Email:       str("email", email),
				AvatarURL:   str("avatar-url", avatar),
				Bio:         str("bio", bio),
				Location:    str("location", location),
			}
			if upd.Empty() {
				return fmt.Errorf("no profile fields given: %w", model.ErrValidation)
			}
			return printJSON(cmd.OutOrStdout(), app.Session.UpdateProfile(cmd.Context(), upd))
		},
	}
	update.Flags().StringVar(&name, "name", "", "Display name")
	update.Flags().StringVar(&email, "email", "", "Email")
	update.Flags().StringVar(&avatar, "avatar-url", "", "Avatar URL")
	update.Flags().StringVar(&bio, "bio", "", "Bio")
	update.Flags().StringVar(&location, "location", "", "Location")

	var asJSON bool
	orders := &cobra.Command{
		Use:   "orders [order-id]",
		Short: "Show the current user's order history, or one order from it",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				order, err := app.Session.GetOrder(args[0])
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), order)
			}
			if asJSON {
				return printJSON(cmd.OutOrStdout(), app.Session.Orders())
			}
			return printOrders(cmd.OutOrStdout(), app.Session.Orders())
		},
	}
	orders.Flags().BoolVar(&asJSON, "json", false, "Print JSON")

	cmd.AddCommand(show, update, orders)
	return cmd
}

func newLoginCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Switch the session to the admin or the regular demo user",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "admin",
			Short: "Log in as the administrator",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				app.Session.LoginAsAdmin(cmd.Context())
				return nil
			},
		},
		&cobra.Command{
			Use:   "user",
			Short: "Log in as the regular user",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				app.Session.LoginAsUser(cmd.Context())
				return nil
			},
		},
	)
	return cmd
}

func newLogoutCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Return to the default user and forget orders, wishlist and cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app.Session.Logout(cmd.Context())
			return nil
		},
	}
}
