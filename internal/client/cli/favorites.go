package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/iudanet/gophershop/internal/client/favorites"
	"github.com/iudanet/gophershop/internal/client/storage"
)

func (c *Cli) favoritesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "favorites",
		Short: "Manage locally saved favorite products",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List favorites, newest first",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				list, err := result(c.services.Favorites.Snapshot(cmd.Context()))
				if err != nil {
					return err
				}
				c.printFavorites(*list)
				return nil
			},
		},
		&cobra.Command{
			Use:   "add <productId>",
			Short: "Save a product to favorites",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx := cmd.Context()

				product, err := c.fetchProduct(ctx, args[0])
				if err != nil {
					return err
				}

				fav, err := result(c.services.Favorites.Add(ctx, product))
				if err != nil {
					return err
				}

				c.io.Printf("★ %s added to favorites\n", fav.Name)
				return nil
			},
		},
		&cobra.Command{
			Use:   "remove <productId>",
			Short: "Remove a product from favorites",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx := cmd.Context()

				id, err := parseID(args[0])
				if err != nil {
					return err
				}

				// Имя берем до удаления; отсутствующая строка - не ошибка
				fav, found := c.services.Favorites.Get(ctx, id).Value()

				if _, err := result(c.services.Favorites.Remove(ctx, id)); err != nil {
					return err
				}

				if found {
					c.io.Printf("☆ %s removed from favorites\n", fav.Name)
				} else {
					c.io.Println("Removed from favorites")
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "toggle <productId>",
			Short: "Add the product if absent, remove it otherwise",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx := cmd.Context()

				product, err := c.fetchProduct(ctx, args[0])
				if err != nil {
					return err
				}

				favorite, err := result(c.services.Favorites.Toggle(ctx, product))
				if err != nil {
					return err
				}

				if *favorite {
					c.io.Printf("★ %s added to favorites\n", product.Name)
				} else {
					c.io.Printf("☆ %s removed from favorites\n", product.Name)
				}
				return nil
			},
		},
		c.favoritesWatchCommand(),
	)

	return cmd
}

// favoritesWatchCommand печатает список при каждом изменении до Ctrl+C.
// Если задан metrics-addr, параллельно отдает /metrics.
func (c *Cli) favoritesWatchCommand() *cobra.Command {
	var duration time.Duration

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Print favorites on every change",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()
			if duration > 0 {
				ctx, cancel = context.WithTimeout(ctx, duration)
				defer cancel()
			}

			services := c.services
			services.Favorites.RefreshGauge(ctx)

			g, ctx := errgroup.WithContext(ctx)

			if addr := services.Config.MetricsAddr; addr != "" {
				g.Go(func() error {
					return services.Metrics.Serve(ctx, addr, services.Logger)
				})
			}

			g.Go(func() error {
				for list := range services.Favorites.List(ctx) {
					c.printFavorites(list)
				}
				return nil
			})

			return g.Wait()
		},
	}

	cmd.Flags().DurationVar(&duration, "for", 0, "Stop after this long (0 = until interrupted)")

	return cmd
}

func (c *Cli) fetchProduct(ctx context.Context, arg string) (favorites.Product, error) {
	id, err := parseID(arg)
	if err != nil {
		return favorites.Product{}, err
	}

	detail, err := c.product(ctx, id)
	if err != nil {
		return favorites.Product{}, err
	}

	return favorites.FromDetail(*detail), nil
}

func (c *Cli) printFavorites(list []storage.Favorite) {
	c.io.Println("=== Favorites ===")
	if len(list) == 0 {
		c.io.Println("No favorites yet.")
		return
	}
	for _, fav := range list {
		added := time.UnixMilli(fav.AddedAt).Format("2006-01-02 15:04")
		c.io.Printf("%-6d %-30s %10.2f  %s\n", fav.ID, fav.Name, fav.Price, added)
	}
}
