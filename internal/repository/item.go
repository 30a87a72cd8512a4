package repository

import (
	"context"

	"github.com/yjsong/item-simulator/internal/domain"
)

// Item defines the interface for catalog persistence (items and skins).
// The transactional core only reads from it; catalog CRUD writes are plain
// single-row operations with no cross-entity invariants.
type Item interface {
	// Item operations
	InsertItem(ctx context.Context, item *domain.Item) (int, error)
	GetItemByID(ctx context.Context, itemID int) (*domain.Item, error)
	GetItemByName(ctx context.Context, name string) (*domain.Item, error)
	// GetItemsByNamePrefix serves the starter-item grant on character creation.
	GetItemsByNamePrefix(ctx context.Context, prefix string) ([]domain.Item, error)
	ListItems(ctx context.Context) ([]domain.Item, error)
	UpdateItem(ctx context.Context, itemID int, item *domain.Item) error
	DeleteItem(ctx context.Context, itemID int) error

	// Skin operations
	InsertSkin(ctx context.Context, skin *domain.Skin) (int, error)
	GetSkinByID(ctx context.Context, skinID int) (*domain.Skin, error)
	ListSkins(ctx context.Context) ([]domain.Skin, error)
	UpdateSkin(ctx context.Context, skinID int, skin *domain.Skin) error
	DeleteSkin(ctx context.Context, skinID int) error
}
