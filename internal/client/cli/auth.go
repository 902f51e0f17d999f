package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/iudanet/gophershop/internal/client/auth"
	"github.com/iudanet/gophershop/internal/client/session"
	"github.com/iudanet/gophershop/internal/validation"
	"github.com/iudanet/gophershop/pkg/api"
)

const sessionReadTimeout = 2 * time.Second

func (c *Cli) registerCommand() *cobra.Command {
	var (
		req       api.RegisterRequest
		passwords Passwords
	)

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and sign in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c.io.Println("=== Registration ===")
			c.io.Println()

			var err error
			if req.FirstName, err = c.readValue(req.FirstName, "First name: "); err != nil {
				return err
			}
			if err := validation.ValidateName(req.FirstName); err != nil {
				return invalid(err)
			}
			if req.LastName, err = c.readValue(req.LastName, "Last name: "); err != nil {
				return err
			}
			if err := validation.ValidateName(req.LastName); err != nil {
				return invalid(err)
			}
			if req.Email, err = c.readValue(req.Email, "Email: "); err != nil {
				return err
			}
			if err := validation.ValidateEmail(req.Email); err != nil {
				return invalid(err)
			}

			password, prompted, err := c.getPassword(passwords, fmt.Sprintf("Password (min %d chars): ", validation.MinPasswordLen))
			if err != nil {
				return err
			}
			if err := validation.ValidatePassword(password); err != nil {
				return invalid(err)
			}
			// Подтверждение нужно только при ручном вводе
			if prompted {
				confirm, err := c.io.ReadPassword("Confirm password: ")
				if err != nil {
					return fmt.Errorf("failed to read confirmation: %w", err)
				}
				if confirm != password {
					return invalid(fmt.Errorf("passwords do not match"))
				}
			}
			req.Password = password

			c.io.Println("Registering...")
			resp, err := result(c.services.Auth.Register(cmd.Context(), req))
			if err != nil {
				return err
			}

			c.io.Println("✓ Registration successful!")
			c.printSignedIn(resp)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.FirstName, "first-name", "", "First name")
	cmd.Flags().StringVar(&req.LastName, "last-name", "", "Last name")
	cmd.Flags().StringVar(&req.Email, "email", "", "Email")
	bindPasswordFlags(cmd, &passwords)

	return cmd
}

func (c *Cli) loginCommand() *cobra.Command {
	var (
		email     string
		passwords Passwords
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in with email and password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c.io.Println("=== Login ===")
			c.io.Println()

			var err error
			if email, err = c.readValue(email, "Email: "); err != nil {
				return err
			}
			if err := validation.ValidateEmail(email); err != nil {
				return invalid(err)
			}

			password, _, err := c.getPassword(passwords, "Password: ")
			if err != nil {
				return err
			}

			c.io.Println("Authenticating...")
			resp, err := result(c.services.Auth.Login(cmd.Context(), email, password))
			if err != nil {
				return err
			}

			c.io.Println("✓ Login successful!")
			c.printSignedIn(resp)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Email")
	bindPasswordFlags(cmd, &passwords)

	return cmd
}

// printSignedIn печатает итог входа. Пустой ответ сервера сессию не меняет.
func (c *Cli) printSignedIn(resp *api.AuthResponse) {
	if resp == nil {
		c.io.Println("⚠️  The server accepted the request but returned no session.")
		return
	}
	c.io.Printf("Email: %s\n", resp.Email)
	if resp.Role != "" {
		c.io.Printf("Role: %s\n", resp.Role)
	}
	c.io.Println("Your session has been saved.")
}

func (c *Cli) logoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and forget the local session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c.io.Println("=== Logout ===")

			if _, err := result(c.services.Auth.Logout(cmd.Context())); err != nil {
				return err
			}

			c.io.Println("✓ Logout successful!")
			c.io.Println("Your local session has been deleted.")
			return nil
		},
	}
}

func (c *Cli) statusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show authentication status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			c.io.Println("=== Authentication Status ===")
			c.io.Println()

			status, err := c.services.Auth.Status(ctx)
			if err != nil {
				return fmt.Errorf("failed to check authentication: %w", err)
			}

			if status == auth.StatusUnauthenticated {
				c.io.Println("Status: Not authenticated")
				c.io.Println()
				c.io.Println("Run 'shop login' to authenticate.")
				return nil
			}

			store := c.services.Sessions
			c.io.Printf("Status: %s\n", status)
			c.io.Printf("Email: %s\n", sessionField(ctx, store, session.FieldEmail))
			c.io.Printf("User ID: %s\n", sessionField(ctx, store, session.FieldUserID))
			if role := sessionField(ctx, store, session.FieldRole); role != "" {
				c.io.Printf("Role: %s\n", role)
			}

			if expiration := sessionField(ctx, store, session.FieldTokenExpiration); expiration > 0 {
				expiresAt := time.UnixMilli(expiration)
				c.io.Printf("Token expires: %s\n", expiresAt.Format(time.RFC3339))
				if remaining := time.Until(expiresAt); remaining > 0 {
					c.io.Printf("Time remaining: %s\n", remaining.Round(time.Second))
				}
			}

			if status == auth.StatusExpired {
				c.io.Println("⚠️  Token has expired. Run 'shop refresh' or login again.")
			}

			return nil
		},
	}
}

// sessionField берет сохраненное значение из ленты session.Read.
// При ошибке чтения после таймаута возвращается нулевое значение.
func sessionField[T any](ctx context.Context, store *session.Store, field session.Field[T]) T {
	ctx, cancel := context.WithTimeout(ctx, sessionReadTimeout)
	defer cancel()
	return <-session.Read(ctx, store, field)
}

func (c *Cli) refreshCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Exchange the refresh token for a new session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := result(c.services.Auth.RefreshToken(cmd.Context()))
			if err != nil {
				return err
			}

			c.io.Println("✓ Session refreshed")
			if resp != nil && resp.ExpirationTime > 0 {
				c.io.Printf("Token expires: %s\n", time.UnixMilli(resp.ExpirationTime).Format(time.RFC3339))
			}
			return nil
		},
	}
}

func (c *Cli) validateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Ask the server whether the access token is valid",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			valid, err := result(c.services.Auth.ValidateToken(cmd.Context()))
			if err != nil {
				return err
			}

			if valid != nil && *valid {
				c.io.Println("✓ Token is valid")
			} else {
				c.io.Println("Token is not valid")
			}
			return nil
		},
	}
}
