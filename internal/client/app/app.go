// Package app собирает зависимости клиента из конфигурации: локальные
// хранилища, сессию, HTTP клиент, сервисы и репозитории магазина.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/iudanet/gophershop/internal/client/api"
	"github.com/iudanet/gophershop/internal/client/auth"
	"github.com/iudanet/gophershop/internal/client/config"
	"github.com/iudanet/gophershop/internal/client/favorites"
	"github.com/iudanet/gophershop/internal/client/observability"
	"github.com/iudanet/gophershop/internal/client/session"
	"github.com/iudanet/gophershop/internal/client/shop"
	"github.com/iudanet/gophershop/internal/client/storage/boltdb"
	"github.com/iudanet/gophershop/internal/client/storage/sqlite"
	"github.com/iudanet/gophershop/internal/crypto"
)

// tracerShutdownTimeout ограничивает выгрузку спанов при выходе
const tracerShutdownTimeout = 5 * time.Second

// Services - все, что нужно командам клиента.
// Создается один раз на процесс и закрывается через Close.
type Services struct {
	Logger    zerolog.Logger
	Metrics   *observability.Metrics
	Sessions  *session.Store
	Client    *api.Client
	Auth      *auth.Service
	Favorites *favorites.Service
	Catalog   *shop.Catalog
	Cart      *shop.Cart
	Orders    *shop.Orders
	Account   *shop.Account
	closers   []func() error
	Config    config.Config
}

// New opens the local databases and wires every service.
// On failure everything opened so far is closed.
func New(ctx context.Context, cfg config.Config, logger zerolog.Logger) (_ *Services, err error) {
	s := &Services{Config: cfg, Logger: logger}
	defer func() {
		if err != nil {
			_ = s.Close()
		}
	}()

	if err := cfg.EnsureDataDir(); err != nil {
		return nil, err
	}

	// Сессия: bbolt открывается при первом обращении, токены опционально
	// шифруются ключом установки
	boltStorage := boltdb.NewLazy(cfg.SessionDB)
	s.closers = append(s.closers, boltStorage.Close)

	sessionOpts := []session.Option{session.WithLogger(logger)}
	if cfg.EncryptTokens {
		sealer, err := crypto.NewSessionSealer(cfg.KeyFile)
		if err != nil {
			return nil, fmt.Errorf("failed to init token sealer: %w", err)
		}
		sessionOpts = append(sessionOpts, session.WithSealer(sealer))
	}
	s.Sessions = session.New(boltStorage, sessionOpts...)

	// Избранное: sqlite
	sqliteStorage, err := sqlite.New(ctx, cfg.FavoritesDB)
	if err != nil {
		return nil, fmt.Errorf("failed to open favorites storage: %w", err)
	}
	s.closers = append(s.closers, sqliteStorage.Close)

	s.Metrics, err = observability.NewMetrics()
	if err != nil {
		return nil, err
	}

	tracing, shutdown, err := observability.InitTracerProvider(ctx, observability.ServiceName, cfg.OtelEndpoint)
	if err != nil {
		return nil, err
	}
	s.closers = append(s.closers, func() error {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), tracerShutdownTimeout)
		defer cancel()
		return shutdown(shutdownCtx)
	})

	s.Client = api.NewClient(cfg.Server,
		api.WithTokenSource(s.Sessions),
		api.WithTimeout(cfg.Timeout),
		api.WithLogger(logger),
		api.WithRoundTripper(s.Metrics.RoundTripper),
		api.WithTracerProvider(tracing),
	)

	s.Auth = auth.NewService(s.Client, s.Sessions, logger)
	s.Favorites = favorites.NewService(sqliteStorage,
		favorites.WithLogger(logger),
		favorites.WithGauge(s.Metrics.FavoritesGauge()),
		favorites.WithPollInterval(cfg.FavoritesPoll),
	)
	s.Catalog = shop.NewCatalog(s.Client)
	s.Cart = shop.NewCart(s.Client, s.Sessions)
	s.Orders = shop.NewOrders(s.Client, s.Sessions)
	s.Account = shop.NewAccount(s.Client, s.Sessions)

	logger.Debug().
		Str("server", cfg.Server).
		Str("data_dir", cfg.DataDir).
		Bool("encrypt_tokens", cfg.EncryptTokens).
		Bool("tracing", cfg.OtelEndpoint != "").
		Msg("services initialized")

	return s, nil
}

// PushMetrics отправляет метрики в Pushgateway, если он задан в конфигурации
func (s *Services) PushMetrics(ctx context.Context) error {
	if s.Config.MetricsPush == "" || s.Metrics == nil {
		return nil
	}
	return s.Metrics.Push(ctx, s.Config.MetricsPush)
}

// Close закрывает локальные хранилища в обратном порядке
func (s *Services) Close() error {
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	s.closers = nil
	return errors.Join(errs...)
}
