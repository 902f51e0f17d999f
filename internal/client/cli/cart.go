package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iudanet/gophershop/pkg/api"
)

func (c *Cli) cartCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Manage the shopping cart",
	}

	var quantity int
	add := &cobra.Command{
		Use:   "add <productId>",
		Short: "Add a product to the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			productID, err := parseID(args[0])
			if err != nil {
				return err
			}
			if quantity <= 0 {
				return invalid(fmt.Errorf("quantity must be positive"))
			}
			return c.changeCart(cmd.Context(), func(ctx context.Context, cartID int64) (*api.Cart, error) {
				return result(c.services.Cart.AddItem(ctx, cartID, productID, quantity))
			})
		},
	}
	add.Flags().IntVarP(&quantity, "quantity", "q", 1, "Quantity")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Show the cart of the signed-in user",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				cart, err := result(c.services.Cart.ForCurrentUser(cmd.Context()))
				if err != nil {
					return err
				}
				return c.render("cart", cartTemplate, cart)
			},
		},
		add,
		&cobra.Command{
			Use:   "update <itemId> <quantity>",
			Short: "Change the quantity of a cart item",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				itemID, err := parseID(args[0])
				if err != nil {
					return err
				}
				qty, err := parseQuantity(args[1])
				if err != nil {
					return err
				}
				return c.changeCart(cmd.Context(), func(ctx context.Context, cartID int64) (*api.Cart, error) {
					return result(c.services.Cart.UpdateItem(ctx, cartID, itemID, qty))
				})
			},
		},
		&cobra.Command{
			Use:   "remove <itemId>",
			Short: "Remove an item from the cart",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				itemID, err := parseID(args[0])
				if err != nil {
					return err
				}
				return c.changeCart(cmd.Context(), func(ctx context.Context, cartID int64) (*api.Cart, error) {
					return result(c.services.Cart.RemoveItem(ctx, cartID, itemID))
				})
			},
		},
		&cobra.Command{
			Use:   "clear",
			Short: "Remove every item from the cart",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return c.changeCart(cmd.Context(), func(ctx context.Context, cartID int64) (*api.Cart, error) {
					return result(c.services.Cart.Clear(ctx, cartID))
				})
			},
		},
	)

	return cmd
}

// changeCart находит корзину текущего пользователя, применяет изменение и печатает результат
func (c *Cli) changeCart(ctx context.Context, change func(ctx context.Context, cartID int64) (*api.Cart, error)) error {
	current, err := result(c.services.Cart.ForCurrentUser(ctx))
	if err != nil {
		return err
	}

	updated, err := change(ctx, current.ID)
	if err != nil {
		return err
	}

	return c.render("cart", cartTemplate, updated)
}
