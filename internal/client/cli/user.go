package cli

import (
	"github.com/spf13/cobra"

	"github.com/iudanet/gophershop/internal/client/resource"
	"github.com/iudanet/gophershop/pkg/api"
)

func (c *Cli) userCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Show and edit the account profile",
	}

	var user api.User
	update := &cobra.Command{
		Use:   "update",
		Short: "Change first and last name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := result(c.services.Account.UpdateUser(cmd.Context(), user)); err != nil {
				return err
			}
			c.io.Println("✓ Profile updated")
			return nil
		},
	}
	update.Flags().StringVar(&user.FirstName, "first-name", "", "First name")
	update.Flags().StringVar(&user.LastName, "last-name", "", "Last name")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show [userId]",
			Short: "Show a profile (the signed-in user by default)",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				var res resource.Resource[api.User]
				if len(args) == 1 {
					res = c.services.Account.GetUser(cmd.Context(), args[0])
				} else {
					res = c.services.Account.CurrentUser(cmd.Context())
				}

				profile, err := result(res)
				if err != nil {
					return err
				}
				return c.render("user", userTemplate, profile)
			},
		},
		update,
	)

	return cmd
}
