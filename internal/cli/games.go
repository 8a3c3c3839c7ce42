package cli

import (
	"fmt"

	"game-marketplace/internal/dto"
	"game-marketplace/internal/model"
	"game-marketplace/internal/query"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func newGamesCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "games",
		Short: "Browse and manage the game catalog",
	}
	cmd.AddCommand(
		newGamesListCommand(app),
		newGamesGetCommand(app),
		newGamesAddCommand(app),
		newGamesUpdateCommand(app),
		newGamesDeleteCommand(app),
		newGamesCategoriesCommand(app),
	)
	return cmd
}

func newGamesListCommand(app *App) *cobra.Command {
	var (
		search    string
		category  string
		minPrice  string
		maxPrice  string
		minRating float64
		freeOnly  bool
		sortBy    string
		asJSON    bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List games, optionally filtered and sorted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			q := query.GameQuery{
				Search:    search,
				Category:  model.Category(category),
				MinRating: minRating,
				FreeOnly:  freeOnly,
			}
			if sortBy != "" {
				field, dir, err := query.ParseSort(sortBy)
				if err != nil {
					return err
				}
				q.SortField, q.SortDir = field, dir
			}
			var err error
			if q.MinPrice, err = optionalDecimal(minPrice); err != nil {
				return err
			}
			if q.MaxPrice, err = optionalDecimal(maxPrice); err != nil {
				return err
			}

			games, err := app.Catalog.ListGames(cmd.Context())
			if err != nil {
				return err
			}
			games, err = q.Apply(games)
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(cmd.OutOrStdout(), games)
			}
			return printGames(cmd.OutOrStdout(), games)
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "Case-insensitive match on title, description and tags")
	cmd.Flags().StringVarP(&category, "category", "c", "", "Exact category (action, rpg, racing, sports, strategy, shooting)")
	cmd.Flags().StringVar(&minPrice, "min-price", "", "Lowest effective price")
	cmd.Flags().StringVar(&maxPrice, "max-price", "", "Highest effective price")
	cmd.Flags().Float64Var(&minRating, "min-rating", 0, "Lowest rating")
	cmd.Flags().BoolVar(&freeOnly, "free", false, "Only free games")
	cmd.Flags().StringVar(&sortBy, "sort", "", "Sort key such as rating-desc, price-asc, title-asc, releaseDate-desc")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON")
	return cmd
}

func newGamesGetCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one game",
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
			return printJSON(cmd.OutOrStdout(), game)
		},
	}
}

// gameInputFlags binds the editable game fields. Only flags the caller set end
// up in the input, so update leaves the rest untouched.
type gameInputFlags struct {
	title, category, price, rating, imageURL, description string
	tags, developer, publisher, releaseDate               string
	isFree                                                bool
}

func (f *gameInputFlags) bind(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&f.title, "title", "", "Title")
	fs.StringVar(&f.category, "category", "", "Category")
	fs.StringVar(&f.price, "price", "", "Price, e.g. 29.99")
	fs.StringVar(&f.rating, "rating", "", "Rating from 0 to 5")
	fs.StringVar(&f.imageURL, "image-url", "", "Cover image URL")
	fs.StringVar(&f.description, "description", "", "Description")
	fs.StringVar(&f.tags, "tags", "", "Comma separated tags")
	fs.StringVar(&f.developer, "developer", "", "Developer")
	fs.StringVar(&f.publisher, "publisher", "", "Publisher")
	fs.StringVar(&f.releaseDate, "release-date", "", "Release date, YYYY-MM-DD")
	fs.BoolVar(&f.isFree, "free", false, "Free to play")
}

func (f *gameInputFlags) input(cmd *cobra.Command) dto.GameInput {
	fs := cmd.Flags()
	str := func(name string, v string) *string {
		if !fs.Changed(name) {
			return nil
		}
		return &v
	}

	in := dto.GameInput{
		Title:       str("title", f.title),
		Category:    str("category", f.category),
		Price:       str("price", f.price),
		Rating:      str("rating", f.rating),
		ImageURL:    str("image-url", f.imageURL),
		Description: str("description", f.description),
		Tags:        str("tags", f.tags),
		Developer:   str("developer", f.developer),
		Publisher:   str("publisher", f.publisher),
		ReleaseDate: str("release-date", f.releaseDate),
	}
	if fs.Changed("free") {
		free := f.isFree
		in.IsFree = &free
	}
	return in
}

func newGamesAddCommand(app *App) *cobra.Command {
	var flags gameInputFlags
	cmd := &cobra.Command{
		Use:     "add",
		Short:   "Add a game to the catalog (admin)",
		Args:    cobra.NoArgs,
		PreRunE: requireAdmin(app),
		RunE: func(cmd *cobra.Command, args []string) error {
			game, err := app.Catalog.AddGame(cmd.Context(), flags.input(cmd))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "added game %d: %s\n", game.ID, game.Title)
			return nil
		},
	}
	flags.bind(cmd)
	_ = cmd.MarkFlagRequired("title")
	return cmd
}

func newGamesUpdateCommand(app *App) *cobra.Command {
	var flags gameInputFlags
	cmd := &cobra.Command{
		Use:     "update <id>",
		Short:   "Change fields of a game (admin)",
		Args:    cobra.ExactArgs(1),
		PreRunE: requireAdmin(app),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseGameID(args[0])
			if err != nil {
				return err
			}
			game, err := app.Catalog.UpdateGame(cmd.Context(), id, flags.input(cmd))
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), game)
		},
	}
	flags.bind(cmd)
	return cmd
}

func newGamesDeleteCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Short:   "Remove a game from the catalog (admin)",
		Args:    cobra.ExactArgs(1),
		PreRunE: requireAdmin(app),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseGameID(args[0])
			if err != nil {
				return err
			}
			game, err := app.Catalog.DeleteGame(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted game %d: %s\n", game.ID, game.Title)
			return nil
		},
	}
}

func newGamesCategoriesCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the categories present in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			games, err := app.Catalog.ListGames(cmd.Context())
			if err != nil {
				return err
			}
			for _, c := range query.Categories(games) {
				fmt.Fprintln(cmd.OutOrStdout(), c)
			}
			return nil
		},
	}
}

func optionalDecimal(s string) (*decimal.Decimal, error) {
	if s == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, fmt.Errorf("amount %q: %w", s, model.ErrValidation)
	}
	return &d, nil
}
