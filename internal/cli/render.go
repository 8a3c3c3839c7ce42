package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"game-marketplace/internal/model"

	"github.com/goccy/go-json"
)

func printJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func printGames(w io.Writer, games []model.Game) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tCATEGORY\tPRICE\tRATING\tTAGS")
	for _, g := range games {
		price := "$" + g.Price.StringFixed(2)
		if g.IsFree {
			price = "free"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%.1f\t%s\n", g.ID, g.Title, g.Category, price, g.Rating, strings.Join(g.Tags, ", "))
	}
	return tw.Flush()
}

func printOrders(w io.Writer, orders []model.Order) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tDATE\tCUSTOMER\tITEMS\tTOTAL\tSTATUS")
	for _, o := range orders {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t$%s\t%s\n",
			o.ID, o.Date.Format("2006-01-02 15:04"), o.CustomerEmail, len(o.Items), o.Total.StringFixed(2), o.Status)
	}
	return tw.Flush()
}

func printUsers(w io.Writer, users []model.User) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tEMAIL\tROLE\tGAMES\tSPENT\tWALLET")
	for _, u := range users {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t$%s\t$%s\n",
			u.ID, u.DisplayName, u.Email, u.Role, u.TotalGamesOwned, u.TotalSpent.StringFixed(2), u.WalletBalance.StringFixed(2))
	}
	return tw.Flush()
}

func printCart(w io.Writer, items []model.LineItem) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tPRICE\tQTY\tSUBTOTAL")
	for _, it := range items {
		fmt.Fprintf(tw, "%d\t%s\t$%s\t%d\t$%s\n",
			it.ID, it.Title, it.EffectivePrice().StringFixed(2), it.Quantity, it.Subtotal().StringFixed(2))
	}
	return tw.Flush()
}
