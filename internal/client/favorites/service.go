// Package favorites is the local favorites cache: a single table keyed by
// product id with live list and existence feeds. It never talks to the network.
package favorites

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/iudanet/gophershop/internal/client/notify"
	"github.com/iudanet/gophershop/internal/client/resource"
	"github.com/iudanet/gophershop/internal/client/storage"
)

// Gauge receives the number of stored favorites after each write.
// prometheus.Gauge satisfies it.
type Gauge interface {
	Set(float64)
}

// Service предоставляет операции над локальным избранным
type Service struct {
	storage storage.FavoritesStorage
	changes *notify.Broadcaster
	gauge   Gauge
	now     func() time.Time
	logger  zerolog.Logger
	poll    time.Duration
}

// Option настраивает Service
type Option func(*Service)

// WithClock подменяет источник времени для addedAt
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// WithLogger задает логгер
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithGauge включает публикацию количества избранного
func WithGauge(g Gauge) Option {
	return func(s *Service) {
		s.gauge = g
	}
}

// WithPollInterval включает опрос хранилища с интервалом d, чтобы живые
// ленты видели записи других процессов клиента. 0 - только свои записи.
func WithPollInterval(d time.Duration) Option {
	return func(s *Service) {
		s.poll = d
	}
}

// NewService создает сервис избранного над хранилищем
func NewService(st storage.FavoritesStorage, opts ...Option) *Service {
	s := &Service{
		storage: st,
		changes: notify.New(),
		now:     time.Now,
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add upserts the product with addedAt set to now.
// Re-adding an existing id replaces the row.
func (s *Service) Add(ctx context.Context, p Product) resource.Resource[storage.Favorite] {
	fav := storage.Favorite{
		ID:       p.ID,
		Name:     p.Name,
		ImageURL: p.ImageURL,
		Price:    p.Price,
		AddedAt:  s.now().UnixMilli(),
	}

	if err := s.storage.UpsertFavorite(ctx, &fav); err != nil {
		s.logger.Error().Err(err).Int64("product_id", p.ID).Msg("failed to add favorite")
		return resource.FromError[storage.Favorite](resource.KindStorage, err)
	}

	s.logger.Debug().Int64("product_id", p.ID).Msg("favorite added")
	s.changed(ctx)

	return resource.Success(&fav)
}

// Remove deletes the favorite; an absent id is not an error
func (s *Service) Remove(ctx context.Context, id int64) resource.Resource[struct{}] {
	if err := s.storage.DeleteFavorite(ctx, id); err != nil {
		s.logger.Error().Err(err).Int64("product_id", id).Msg("failed to remove favorite")
		return resource.FromError[struct{}](resource.KindStorage, err)
	}

	s.logger.Debug().Int64("product_id", id).Msg("favorite removed")
	s.changed(ctx)

	return resource.Success(&struct{}{})
}

// Get возвращает одну запись избранного
func (s *Service) Get(ctx context.Context, id int64) resource.Resource[storage.Favorite] {
	fav, err := s.storage.GetFavorite(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrFavoriteNotFound) {
			return resource.Fail[storage.Favorite](resource.KindNotFound, "Favorite not found")
		}
		return resource.FromError[storage.Favorite](resource.KindStorage, err)
	}
	return resource.Success(fav)
}

// Toggle adds the product when absent and removes it when present.
// The result is true when the product is a favorite afterwards.
func (s *Service) Toggle(ctx context.Context, p Product) resource.Resource[bool] {
	exists, err := s.storage.FavoriteExists(ctx, p.ID)
	if err != nil {
		return resource.FromError[bool](resource.KindStorage, err)
	}

	if exists {
		if res := s.Remove(ctx, p.ID); res.IsError() {
			return resource.Fail[bool](res.Kind, res.Message)
		}
	} else {
		if res := s.Add(ctx, p); res.IsError() {
			return resource.Fail[bool](res.Kind, res.Message)
		}
	}

	favorite := !exists
	return resource.Success(&favorite)
}

// Snapshot reads the favorites once, newest first
func (s *Service) Snapshot(ctx context.Context) resource.Resource[[]storage.Favorite] {
	list, err := s.listFavorites(ctx)
	if err != nil {
		return resource.FromError[[]storage.Favorite](resource.KindStorage, err)
	}
	return resource.Success(&list)
}

// List returns a live feed of all favorites, newest first: the current
// rows, then a fresh list after every Add or Remove until ctx is done.
// With WithPollInterval writes made by other processes are picked up too.
func (s *Service) List(ctx context.Context) <-chan []storage.Favorite {
	return watch(ctx, s, s.listFavorites)
}

// Exists returns a live feed that is true while a row with id is present
func (s *Service) Exists(ctx context.Context, id int64) <-chan bool {
	return watch(ctx, s, func(ctx context.Context) (bool, error) {
		return s.storage.FavoriteExists(ctx, id)
	})
}

// changed будит подписчиков и обновляет gauge
func (s *Service) changed(ctx context.Context) {
	s.changes.Notify()
	s.RefreshGauge(ctx)
}

// RefreshGauge выставляет gauge в текущее число избранных товаров
func (s *Service) RefreshGauge(ctx context.Context) {
	if s.gauge == nil {
		return
	}
	count, err := s.storage.CountFavorites(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("failed to count favorites")
		return
	}
	s.gauge.Set(float64(count))
}

func (s *Service) listFavorites(ctx context.Context) ([]storage.Favorite, error) {
	rows, err := s.storage.ListFavorites(ctx)
	if err != nil {
		return nil, err
	}

	list := make([]storage.Favorite, 0, len(rows))
	for _, row := range rows {
		list = append(list, *row)
	}
	return list, nil
}

// watch выполняет read сразу и после каждого изменения.
// Подписка оформляется до первого чтения, чтобы не пропустить запись между ними.
func watch[T any](ctx context.Context, s *Service, read func(ctx context.Context) (T, error)) <-chan T {
	out := make(chan T)
	changes, unsubscribe := s.changes.Subscribe()

	go func() {
		defer close(out)
		defer unsubscribe()

		var tick <-chan time.Time
		if s.poll > 0 {
			ticker := time.NewTicker(s.poll)
			defer ticker.Stop()
			tick = ticker.C
		}

		for {
			// Версию фиксируем до чтения: запись между ними вызовет повторное чтение
			seen := s.dataVersion(ctx, tick)

			value, err := read(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				s.logger.Warn().Err(fmt.Errorf("favorites feed: %w", err)).Msg("read failed")
			} else {
				select {
				case out <- value:
				case <-ctx.Done():
					return
				}
			}

			if !s.waitChange(ctx, changes, tick, seen) {
				return
			}
		}
	}()

	return out
}

// dataVersion читает версию хранилища, только если опрос включен
func (s *Service) dataVersion(ctx context.Context, tick <-chan time.Time) int64 {
	if tick == nil {
		return 0
	}
	version, err := s.storage.DataVersion(ctx)
	if err != nil && ctx.Err() == nil {
		s.logger.Warn().Err(err).Msg("favorites feed: data version")
	}
	return version
}

// waitChange блокируется до своей записи (broadcaster), чужой записи
// (сменилась data_version) или отмены ctx. false - лента закрывается.
func (s *Service) waitChange(ctx context.Context, changes <-chan struct{}, tick <-chan time.Time, seen int64) bool {
	for {
		select {
		case <-changes:
			return true
		case <-tick:
			version, err := s.storage.DataVersion(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return false
				}
				s.logger.Warn().Err(err).Msg("favorites feed: data version")
				continue
			}
			if version != seen {
				return true
			}
		case <-ctx.Done():
			return false
		}
	}
}
