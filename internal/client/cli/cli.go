// Package cli реализует командный клиент магазина поверх cobra.
// Каждая команда вызывает один сценарий сервисов и печатает результат через iocli.IO.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/iudanet/gophershop/internal/client/app"
	"github.com/iudanet/gophershop/internal/client/config"
	"github.com/iudanet/gophershop/internal/client/iocli"
	"github.com/iudanet/gophershop/internal/client/logging"
	"github.com/iudanet/gophershop/internal/client/resource"
)

// EnvPassword - переменная окружения с паролем для неинтерактивного запуска
const EnvPassword = "SHOP_PASSWORD"

const metricsPushTimeout = 5 * time.Second

// BuildInfo - данные сборки, задаются через ldflags
type BuildInfo struct {
	Version   string
	BuildDate string
	GitCommit string
}

// Passwords - источники пароля из флагов
type Passwords struct {
	FromFile string
	FromArgs string
}

// OpenFunc собирает сервисы клиента
type OpenFunc func(ctx context.Context, cfg config.Config, logger zerolog.Logger) (*app.Services, error)

type Cli struct {
	io        iocli.IO
	logOutput io.Writer
	open      OpenFunc
	services  *app.Services
	build     BuildInfo
	verbose   bool
}

// Option настраивает Cli
type Option func(*Cli)

// WithLogOutput задает поток для логов (по умолчанию stderr)
func WithLogOutput(w io.Writer) Option {
	return func(c *Cli) {
		c.logOutput = w
	}
}

// WithOpen подменяет сборку сервисов
func WithOpen(open OpenFunc) Option {
	return func(c *Cli) {
		c.open = open
	}
}

func New(stdio iocli.IO, build BuildInfo, opts ...Option) *Cli {
	c := &Cli{
		io:        stdio,
		logOutput: os.Stderr,
		open:      app.New,
		build:     build,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run executes one command line. Errors are printed before being returned.
func (c *Cli) Run(ctx context.Context, args []string) error {
	root := c.rootCommand()
	root.SetArgs(args)
	root.SetOut(c.io)
	root.SetErr(c.io)

	err := root.ExecuteContext(ctx)
	c.pushMetrics(ctx)
	if closeErr := c.close(); closeErr != nil && err == nil {
		err = closeErr
	}
	if err != nil {
		c.printError(err)
	}
	return err
}

func (c *Cli) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:               "shop",
		Short:             "Command-line client for the online shop",
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
	}

	config.BindFlags(root.PersistentFlags())
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "Print error details")

	root.AddCommand(
		c.registerCommand(),
		c.loginCommand(),
		c.logoutCommand(),
		c.statusCommand(),
		c.refreshCommand(),
		c.validateCommand(),
		c.categoriesCommand(),
		c.productsCommand(),
		c.productCommand(),
		c.searchCommand(),
		c.reviewsCommand(),
		c.cartCommand(),
		c.ordersCommand(),
		c.favoritesCommand(),
		c.passwordCommand(),
		c.userCommand(),
		c.versionCommand(),
	)

	return root
}

// setup загружает конфигурацию и открывает локальные хранилища
func (c *Cli) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(cmd.Root().PersistentFlags())
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat, c.logOutput)
	if err != nil {
		return err
	}

	services, err := c.open(cmd.Context(), cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize client: %w", err)
	}
	c.services = services

	return nil
}

// pushMetrics отправляет счетчики запусков в Pushgateway.
// Ошибка отправки не меняет результат команды.
func (c *Cli) pushMetrics(ctx context.Context) {
	if c.services == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), metricsPushTimeout)
	defer cancel()
	if err := c.services.PushMetrics(ctx); err != nil {
		c.services.Logger.Warn().Err(err).Msg("failed to push metrics")
	}
}

func (c *Cli) close() error {
	if c.services == nil {
		return nil
	}
	err := c.services.Close()
	c.services = nil
	return err
}

// printError печатает понятное пользователю сообщение; детали - в режиме --verbose
func (c *Cli) printError(err error) {
	var rerr *resource.Error
	if !errors.As(err, &rerr) {
		c.io.Printf("Error: %v\n", err)
		return
	}

	if rerr.Kind == resource.KindValidation {
		c.io.Printf("Error: %s\n", rerr.Message)
		return
	}

	c.io.Printf("Error: %s\n", resource.UserMessage(rerr.Kind))
	if c.verbose && rerr.Message != "" {
		c.io.Printf("Details: %s (%s)\n", rerr.Message, rerr.Kind)
	}
}

// result возвращает данные успешного Resource или его ошибку.
// Success без данных дает nil.
func result[T any](res resource.Resource[T]) (*T, error) {
	if res.IsError() {
		return nil, res.Err()
	}
	return res.Data, nil
}

// await запускает сетевой сценарий через resource.Run: Loading уходит
// в debug-лог, терминальный вариант разбирается как в result.
func await[T any](ctx context.Context, logger zerolog.Logger, op string, fn func(ctx context.Context) resource.Resource[T]) (*T, error) {
	ch := resource.Run(ctx, fn)
	if first := <-ch; first.IsLoading() {
		logger.Debug().Str("op", op).Msg("loading")
	}
	return result(resource.Await(ch))
}

func invalid(err error) error {
	return &resource.Error{Kind: resource.KindValidation, Message: err.Error()}
}

// getPassword retrieves a password from various sources with priority:
// 1. Environment variable SHOP_PASSWORD
// 2. File given by --password-file
// 3. Command-line parameter --password
// 4. Interactive prompt (fallback)
func (c *Cli) getPassword(passwords Passwords, prompt string) (string, bool, error) {
	// Priority 1: Environment variable
	if envPassword := os.Getenv(EnvPassword); envPassword != "" {
		return envPassword, false, nil
	}

	// Priority 2: File
	if passwords.FromFile != "" {
		content, err := os.ReadFile(passwords.FromFile)
		if err != nil {
			return "", false, fmt.Errorf("failed to read password file: %w", err)
		}
		// Убираем trailing newline/whitespace
		password := strings.TrimSpace(string(content))
		if password == "" {
			return "", false, fmt.Errorf("password file is empty")
		}
		return password, false, nil
	}

	// Priority 3: CLI parameter
	if passwords.FromArgs != "" {
		return passwords.FromArgs, false, nil
	}

	// Priority 4: Interactive prompt (fallback)
	password, err := c.io.ReadPassword(prompt)
	if err != nil {
		return "", false, fmt.Errorf("failed to read password: %w", err)
	}
	if password == "" {
		return "", false, fmt.Errorf("password cannot be empty")
	}

	return password, true, nil
}

func bindPasswordFlags(cmd *cobra.Command, passwords *Passwords) {
	cmd.Flags().StringVar(&passwords.FromFile, "password-file", "", "Path to file containing the password")
	cmd.Flags().StringVar(&passwords.FromArgs, "password", "", "Password (not recommended, use "+EnvPassword+" or a file)")
}

// readValue берет значение флага или спрашивает его интерактивно
func (c *Cli) readValue(value, prompt string) (string, error) {
	if value != "" {
		return value, nil
	}
	input, err := c.io.ReadInput(prompt)
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return input, nil
}
