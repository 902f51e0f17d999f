package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/iudanet/gophershop/internal/client/storage"
)

// UpsertFavorite inserts a favorite or replaces the row with the same id
func (s *Storage) UpsertFavorite(ctx context.Context, fav *storage.Favorite) error {
	if fav == nil {
		return fmt.Errorf("favorite is nil")
	}

	query := `
		INSERT INTO favorites (id, name, image_url, price, added_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			image_url = excluded.image_url,
			price = excluded.price,
			added_at = excluded.added_at
	`

	_, err := s.db.ExecContext(ctx, query,
		fav.ID,
		fav.Name,
		fav.ImageURL,
		fav.Price,
		fav.AddedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert favorite: %w", err)
	}

	return nil
}

// DeleteFavorite removes a favorite by id; absent ids are ignored
func (s *Storage) DeleteFavorite(ctx context.Context, id int64) error {
	query := `DELETE FROM favorites WHERE id = ?`

	if _, err := s.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("failed to delete favorite: %w", err)
	}

	return nil
}

// GetFavorite retrieves a favorite by id
func (s *Storage) GetFavorite(ctx context.Context, id int64) (*storage.Favorite, error) {
	query := `
		SELECT id, name, image_url, price, added_at
		FROM favorites
		WHERE id = ?
	`

	fav := &storage.Favorite{}

	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&fav.ID,
		&fav.Name,
		&fav.ImageURL,
		&fav.Price,
		&fav.AddedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrFavoriteNotFound
		}
		return nil, fmt.Errorf("failed to get favorite: %w", err)
	}

	return fav, nil
}

// ListFavorites returns all favorites, newest first
func (s *Storage) ListFavorites(ctx context.Context) ([]*storage.Favorite, error) {
	query := `
		SELECT id, name, image_url, price, added_at
		FROM favorites
		ORDER BY added_at DESC, id DESC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query favorites: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	favorites := make([]*storage.Favorite, 0)

	for rows.Next() {
		fav := &storage.Favorite{}
		if err := rows.Scan(
			&fav.ID,
			&fav.Name,
			&fav.ImageURL,
			&fav.Price,
			&fav.AddedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan favorite: %w", err)
		}
		favorites = append(favorites, fav)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating favorites: %w", err)
	}

	return favorites, nil
}

// FavoriteExists reports whether a favorite with the id is stored
func (s *Storage) FavoriteExists(ctx context.Context, id int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM favorites WHERE id = ?)`

	var exists bool
	if err := s.db.QueryRowContext(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check favorite: %w", err)
	}

	return exists, nil
}

// CountFavorites returns the number of stored favorites
func (s *Storage) CountFavorites(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM favorites`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count favorites: %w", err)
	}

	return count, nil
}

// DataVersion returns PRAGMA data_version of the pooled connection.
// Пул ограничен одним соединением, поэтому значения сравнимы между вызовами.
func (s *Storage) DataVersion(ctx context.Context) (int64, error) {
	var version int64
	if err := s.db.QueryRowContext(ctx, `PRAGMA data_version`).Scan(&version); err != nil {
		return 0, fmt.Errorf("failed to read data version: %w", err)
	}

	return version, nil
}
