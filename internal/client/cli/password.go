package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iudanet/gophershop/internal/validation"
)

func (c *Cli) passwordCommand() *cobra.Command {
	var (
		email     string
		code      string
		passwords Passwords
	)

	cmd := &cobra.Command{
		Use:   "password",
		Short: "Reset a forgotten password",
	}
	cmd.PersistentFlags().StringVar(&email, "email", "", "Account email")

	readEmail := func() error {
		var err error
		if email, err = c.readValue(email, "Email: "); err != nil {
			return err
		}
		if err := validation.ValidateEmail(email); err != nil {
			return invalid(err)
		}
		return nil
	}

	readCode := func() error {
		var err error
		if code, err = c.readValue(code, "Reset code: "); err != nil {
			return err
		}
		if err := validation.ValidateResetCode(code); err != nil {
			return invalid(err)
		}
		return nil
	}

	forgot := &cobra.Command{
		Use:   "forgot",
		Short: "Send a reset code to the account email",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := readEmail(); err != nil {
				return err
			}

			message, err := result(c.services.Account.ForgotPassword(cmd.Context(), email))
			if err != nil {
				return err
			}

			c.io.Println(*message)
			return nil
		},
	}

	verify := &cobra.Command{
		Use:   "verify",
		Short: "Check a reset code",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := readEmail(); err != nil {
				return err
			}
			if err := readCode(); err != nil {
				return err
			}

			valid, err := result(c.services.Account.ValidateResetCode(cmd.Context(), email, code))
			if err != nil {
				return err
			}

			if *valid {
				c.io.Println("✓ Reset code is valid")
			} else {
				c.io.Println("Reset code is not valid")
			}
			return nil
		},
	}
	verify.Flags().StringVar(&code, "code", "", "Reset code from the email")

	reset := &cobra.Command{
		Use:   "reset",
		Short: "Set a new password using a reset code",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := readEmail(); err != nil {
				return err
			}
			if err := readCode(); err != nil {
				return err
			}

			password, _, err := c.getPassword(passwords, fmt.Sprintf("New password (min %d chars): ", validation.MinPasswordLen))
			if err != nil {
				return err
			}
			if err := validation.ValidatePassword(password); err != nil {
				return invalid(err)
			}

			message, err := result(c.services.Account.ResetPassword(cmd.Context(), email, code, password))
			if err != nil {
				return err
			}

			c.io.Println(*message)
			return nil
		},
	}
	reset.Flags().StringVar(&code, "code", "", "Reset code from the email")
	bindPasswordFlags(reset, &passwords)

	cmd.AddCommand(forgot, verify, reset)

	return cmd
}
