package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/iudanet/gophershop/internal/client/resource"
	"github.com/iudanet/gophershop/internal/client/shop"
	"github.com/iudanet/gophershop/pkg/api"
)

// orderOp - операция над одним заказом, например (*shop.Orders).Cancel
type orderOp func(o *shop.Orders, ctx context.Context, id int64) resource.Resource[api.Order]

func (c *Cli) ordersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "Place and track orders",
	}

	var addressID int64
	create := &cobra.Command{
		Use:   "create",
		Short: "Place an order from the current cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			cart, err := result(c.services.Cart.ForCurrentUser(ctx))
			if err != nil {
				return err
			}

			order, err := result(c.services.Orders.Create(ctx, cart.ID, addressID))
			if err != nil {
				return err
			}

			c.io.Println("✓ Order placed")
			return c.render("order", orderTemplate, order)
		},
	}
	create.Flags().Int64Var(&addressID, "address", 0, "Delivery address id")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List orders of the signed-in user",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				orders, err := result(c.services.Orders.ListForCurrentUser(cmd.Context()))
				if err != nil {
					return err
				}

				c.io.Println("=== Orders ===")
				if len(*orders) == 0 {
					c.io.Println("No orders yet.")
					return nil
				}
				for _, order := range *orders {
					c.io.Printf("#%-6d %-10s %10.2f  %s\n", order.ID, order.Status, order.TotalPrice, order.CreatedAt.Format("2006-01-02"))
				}
				return nil
			},
		},
		c.orderCommand("show <id>", "Show order details", (*shop.Orders).Get),
		create,
		c.orderCommand("complete <id>", "Mark an order as completed", (*shop.Orders).Complete),
		c.orderCommand("cancel <id>", "Cancel a pending order", (*shop.Orders).Cancel),
	)

	return cmd
}

func (c *Cli) orderCommand(use, short string, op orderOp) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			order, err := result(op(c.services.Orders, cmd.Context(), id))
			if err != nil {
				return err
			}

			return c.render("order", orderTemplate, order)
		},
	}
}
