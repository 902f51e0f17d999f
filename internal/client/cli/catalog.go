package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/iudanet/gophershop/internal/client/resource"
	"github.com/iudanet/gophershop/pkg/api"
)

// favoriteLookupTimeout ограничивает ожидание отметки избранного
const favoriteLookupTimeout = 2 * time.Second

func (c *Cli) categoriesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List product categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			categories, err := await(cmd.Context(), c.services.Logger, "categories", c.services.Catalog.Categories)
			if err != nil {
				return err
			}

			c.io.Println("=== Categories ===")
			if len(*categories) == 0 {
				c.io.Println("No categories found.")
				return nil
			}
			for _, category := range *categories {
				c.io.Printf("%-6d %s\n", category.ID, category.Name)
			}
			return nil
		},
	}
}

func (c *Cli) productsCommand() *cobra.Command {
	var categoryID int64

	cmd := &cobra.Command{
		Use:   "products",
		Short: "List products",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			products, err := await(cmd.Context(), c.services.Logger, "products",
				func(ctx context.Context) resource.Resource[[]api.Product] {
					return c.services.Catalog.Products(ctx, categoryID)
				})
			if err != nil {
				return err
			}

			c.io.Println("=== Products ===")
			c.printProducts(*products)
			return nil
		},
	}

	cmd.Flags().Int64Var(&categoryID, "category", 0, "Only products of this category")

	return cmd
}

func (c *Cli) productCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "product <id>",
		Short: "Show product details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			product, err := c.product(ctx, id)
			if err != nil {
				return err
			}

			return c.render("product", productTemplate, struct {
				Product  *api.ProductDetail
				Favorite bool
			}{Product: product, Favorite: c.isFavorite(ctx, id)})
		},
	}
}

func (c *Cli) product(ctx context.Context, id int64) (*api.ProductDetail, error) {
	return await(ctx, c.services.Logger, "product",
		func(ctx context.Context) resource.Resource[api.ProductDetail] {
			return c.services.Catalog.Product(ctx, id)
		})
}

// isFavorite берет первое значение ленты Exists.
// Ошибка чтения избранного не мешает показать товар.
func (c *Cli) isFavorite(ctx context.Context, id int64) bool {
	ctx, cancel := context.WithTimeout(ctx, favoriteLookupTimeout)
	defer cancel()
	return <-c.services.Favorites.Exists(ctx, id)
}

func (c *Cli) searchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search products and categories",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")

			found, err := await(cmd.Context(), c.services.Logger, "search",
				func(ctx context.Context) resource.Resource[api.SearchResult] {
					return c.services.Catalog.Search(ctx, query)
				})
			if err != nil {
				return err
			}

			c.io.Printf("=== Search: %s ===\n", query)
			if len(found.Categories) > 0 {
				c.io.Println("Categories:")
				for _, category := range found.Categories {
					c.io.Printf("%-6d %s\n", category.ID, category.Name)
				}
				c.io.Println()
			}
			c.printProducts(found.Products)
			return nil
		},
	}
}

func (c *Cli) reviewsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reviews <productId>",
		Short: "Show product reviews",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			reviews, err := await(cmd.Context(), c.services.Logger, "reviews",
				func(ctx context.Context) resource.Resource[[]api.Review] {
					return c.services.Catalog.Reviews(ctx, id)
				})
			if err != nil {
				return err
			}

			c.io.Println("=== Reviews ===")
			if len(*reviews) == 0 {
				c.io.Println("No reviews yet.")
				return nil
			}
			for _, review := range *reviews {
				c.io.Printf("%s %s\n", strings.Repeat("★", review.Rating), review.UserName)
				if review.Comment != "" {
					c.io.Printf("  %s\n", review.Comment)
				}
			}
			return nil
		},
	}
}

func (c *Cli) printProducts(products []api.Product) {
	if len(products) == 0 {
		c.io.Println("No products found.")
		return
	}
	for _, p := range products {
		c.io.Printf("%-6d %-30s %10.2f\n", p.ID, p.Name, p.Price)
	}
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, invalid(fmt.Errorf("invalid id %q", s))
	}
	return id, nil
}

func parseQuantity(s string) (int, error) {
	qty, err := strconv.Atoi(s)
	if err != nil || qty <= 0 {
		return 0, invalid(fmt.Errorf("invalid quantity %q", s))
	}
	return qty, nil
}
