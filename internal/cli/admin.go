package cli

import (
	"fmt"

	"game-marketplace/internal/model"
	"game-marketplace/internal/query"

	"github.com/spf13/cobra"
)

func newOrdersCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "Inspect and manage every order in the store (admin)",
	}
	cmd.PersistentPreRunE = requireAdmin(app)

	var (
		status string
		search string
		asJSON bool
	)
	list := &cobra.Command{
		Use:   "list",
		Short: "List orders, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			orders, err := app.Catalog.ListOrders(cmd.Context())
			if err != nil {
				return err
			}
			if status != "" {
				orders = query.FilterOrdersByStatus(orders, model.OrderStatus(status))
			}
			orders = query.SortOrdersByDate(query.SearchOrders(orders, search))
			if asJSON {
				return printJSON(cmd.OutOrStdout(), orders)
			}
			return printOrders(cmd.OutOrStdout(), orders)
		},
	}
	list.Flags().StringVar(&status, "status", "", "Only orders with this status (pending, completed, cancelled)")
	list.Flags().StringVarP(&search, "search", "s", "", "Match on order id or customer email")
	list.Flags().BoolVar(&asJSON, "json", false, "Print JSON")

	get := &cobra.Command{
		Use:   "get <order-id>",
		Short: "Show one order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			order, err := app.Catalog.GetOrder(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), order)
		},
	}

	setStatus := &cobra.Command{
		Use:   "status <order-id> <pending|completed|cancelled>",
		Short: "Change the status of an order",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			order, err := app.Catalog.UpdateOrderStatus(cmd.Context(), args[0], model.OrderStatus(args[1]))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "order %s is now %s\n", order.ID, order.Status)
			return nil
		},
	}

	cmd.AddCommand(list, get, setStatus)
	return cmd
}

func newUsersCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Inspect and manage user accounts (admin)",
	}
	cmd.PersistentPreRunE = requireAdmin(app)

	var (
		role   string
		search string
		asJSON bool
	)
	list := &cobra.Command{
		Use:   "list",
		Short: "List users",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			users, err := app.Catalog.ListUsers(cmd.Context())
			if err != nil {
				return err
			}
			if role != "" {
				users = query.FilterUsersByRole(users, model.Role(role))
			}
			users = query.SearchUsers(users, search)
			if asJSON {
				return printJSON(cmd.OutOrStdout(), users)
			}
			return printUsers(cmd.OutOrStdout(), users)
		},
	}
	list.Flags().StringVar(&role, "role", "", "Only users with this role (user, admin)")
	list.Flags().StringVarP(&search, "search", "s", "", "Match on name, email or id")
	list.Flags().BoolVar(&asJSON, "json", false, "Print JSON")

	get := &cobra.Command{
		Use:   "get <user-id>",
		Short: "Show one user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := app.Catalog.GetUser(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), user)
		},
	}

	setRole := &cobra.Command{
		Use:   "role <user-id> <user|admin>",
		Short: "Change the role of a user",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := app.Catalog.UpdateUserRole(cmd.Context(), args[0], model.Role(args[1]))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "user %s is now %s\n", user.ID, user.Role)
			return nil
		},
	}

	del := &cobra.Command{
		Use:   "delete <user-id>",
		Short: "Delete a user account. Admin accounts cannot be deleted",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := app.Catalog.DeleteUser(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted user %s (%s)\n", user.ID, user.Email)
			return nil
		},
	}

	cmd.AddCommand(list, get, setRole, del)
	return cmd
}

func newStatsCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "stats",
		Short:   "Show dashboard statistics (admin)",
		Args:    cobra.NoArgs,
		PreRunE: requireAdmin(app),
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := app.Catalog.DashboardStats(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), stats)
		},
	}
}
