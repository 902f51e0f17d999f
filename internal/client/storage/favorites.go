package storage

import "context"

//go:generate moq -out favorites_mock.go . FavoritesStorage

// Favorite represents a locally cached favorite product.
// ID equals the remote product id, AddedAt is epoch milliseconds.
type Favorite struct {
	Name     string  `json:"name"`
	ImageURL string  `json:"image_url"`
	ID       int64   `json:"id"`
	Price    float64 `json:"price"`
	AddedAt  int64   `json:"added_at"`
}

// FavoritesStorage defines interface for the local favorites table
type FavoritesStorage interface {
	// UpsertFavorite inserts the favorite or replaces the row with the same ID
	UpsertFavorite(ctx context.Context, fav *Favorite) error

	// DeleteFavorite removes the favorite by ID.
	// Deleting an absent ID is not an error.
	DeleteFavorite(ctx context.Context, id int64) error

	// GetFavorite retrieves a favorite by ID
	// Returns ErrFavoriteNotFound if it doesn't exist
	GetFavorite(ctx context.Context, id int64) (*Favorite, error)

	// ListFavorites returns all favorites ordered by AddedAt descending
	ListFavorites(ctx context.Context) ([]*Favorite, error)

	// FavoriteExists checks whether a row with the ID is present
	FavoriteExists(ctx context.Context, id int64) (bool, error)

	// CountFavorites returns the number of stored favorites
	CountFavorites(ctx context.Context) (int, error)

	// DataVersion changes whenever another connection (another client
	// process) commits to the table. Own writes leave it unchanged.
	DataVersion(ctx context.Context) (int64, error)
}
