// Package catalog manages the item and skin catalogs: CRUD with the creation
// business rules, a read cache on the item lookup path, and the startup seed
// loader.
package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/yjsong/item-simulator/internal/domain"
	"github.com/yjsong/item-simulator/internal/logger"
	"github.com/yjsong/item-simulator/internal/repository"
)

// ItemPatch is a partial catalog item update; nil fields are left untouched.
type ItemPatch struct {
	Name             *string                  `json:"name,omitempty"`
	Description      *string                  `json:"description,omitempty"`
	Price            *int                     `json:"price,omitempty"`
	Stats            *domain.StatBlock        `json:"stats,omitempty"`
	MountingLocation *domain.MountingLocation `json:"mountingLocation,omitempty"`
}

// SkinPatch is a partial skin update; nil fields are left untouched.
type SkinPatch struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	ImgURL      *string `json:"imgurl,omitempty"`
}

// Service defines the interface for catalog operations
type Service interface {
	CreateItem(ctx context.Context, item *domain.Item) (*domain.Item, error)
	GetItemByID(ctx context.Context, itemID int) (*domain.Item, error)
	GetItemsByNamePrefix(ctx context.Context, prefix string) ([]domain.Item, error)
	ListItems(ctx context.Context) ([]domain.Item, error)
	UpdateItem(ctx context.Context, itemID int, patch ItemPatch) (*domain.Item, error)
	DeleteItem(ctx context.Context, itemID int) error

	CreateSkin(ctx context.Context, skin *domain.Skin) (*domain.Skin, error)
	GetSkinByID(ctx context.Context, skinID int) (*domain.Skin, error)
	ListSkins(ctx context.Context) ([]domain.Skin, error)
	UpdateSkin(ctx context.Context, skinID int, patch SkinPatch) (*domain.Skin, error)
	DeleteSkin(ctx context.Context, skinID int) error
}

type service struct {
	repo  repository.Item
	cache *itemCache
}

// NewService creates a new catalog service
func NewService(repo repository.Item) Service {
	return &service{
		repo:  repo,
		cache: newItemCache(DefaultCacheSize, DefaultCacheTTL),
	}
}

// validateNewItem enforces the creation rules: name required, price at least
// the minimum, slot in the known set.
func validateNewItem(item *domain.Item) error {
	if strings.TrimSpace(item.Name) == "" {
		return fmt.Errorf("%w: item name is required", domain.ErrInvalidInput)
	}
	if item.Price < domain.MinItemPrice {
		return fmt.Errorf("%w: price must be at least %d, got %d", domain.ErrInvalidInput, domain.MinItemPrice, item.Price)
	}
	if !item.MountingLocation.Valid() {
		return fmt.Errorf("%w: unknown mounting location %q", domain.ErrInvalidInput, item.MountingLocation)
	}
	return nil
}

func (s *service) CreateItem(ctx context.Context, item *domain.Item) (*domain.Item, error) {
	log := logger.FromContext(ctx)

	if err := validateNewItem(item); err != nil {
		return nil, err
	}

	id, err := s.repo.InsertItem(ctx, item)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.GetItemByID(ctx, id)
	if err != nil {
		return nil, err
	}

	log.Info(LogMsgItemCreated, "itemID", created.ID, "name", created.Name, "price", created.Price)
	return created, nil
}

func (s *service) GetItemByID(ctx context.Context, itemID int) (*domain.Item, error) {
	if item, ok := s.cache.Get(itemID); ok {
		return item, nil
	}

	item, err := s.repo.GetItemByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	s.cache.Set(item)
	return item, nil
}

func (s *service) GetItemsByNamePrefix(ctx context.Context, prefix string) ([]domain.Item, error) {
	return s.repo.GetItemsByNamePrefix(ctx, prefix)
}

func (s *service) ListItems(ctx context.Context) ([]domain.Item, error) {
	return s.repo.ListItems(ctx)
}

func (s *service) UpdateItem(ctx context.Context, itemID int, patch ItemPatch) (*domain.Item, error) {
	log := logger.FromContext(ctx)

	item, err := s.repo.GetItemByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		if strings.TrimSpace(*patch.Name) == "" {
			return nil, fmt.Errorf("%w: item name is required", domain.ErrInvalidInput)
		}
		item.Name = *patch.Name
	}
	if patch.Description != nil {
		item.Description = *patch.Description
	}
	if patch.Price != nil {
		if *patch.Price < 0 {
			return nil, fmt.Errorf("%w: price cannot be negative", domain.ErrInvalidInput)
		}
		item.Price = *patch.Price
	}
	if patch.Stats != nil {
		item.Stats = *patch.Stats
	}
	if patch.MountingLocation != nil {
		if !patch.MountingLocation.Valid() {
			return nil, fmt.Errorf("%w: unknown mounting location %q", domain.ErrInvalidInput, *patch.MountingLocation)
		}
		item.MountingLocation = *patch.MountingLocation
	}

	if err := s.repo.UpdateItem(ctx, itemID, item); err != nil {
		return nil, err
	}
	s.cache.Invalidate(itemID)

	updated, err := s.repo.GetItemByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	log.Info(LogMsgItemUpdated, "itemID", itemID)
	return updated, nil
}

func (s *service) DeleteItem(ctx context.Context, itemID int) error {
	log := logger.FromContext(ctx)

	if err := s.repo.DeleteItem(ctx, itemID); err != nil {
		return err
	}
	s.cache.Invalidate(itemID)

	log.Info(LogMsgItemDeleted, "itemID", itemID)
	return nil
}

func (s *service) CreateSkin(ctx context.Context, skin *domain.Skin) (*domain.Skin, error) {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(skin.Name) == "" {
		return nil, fmt.Errorf("%w: skin name is required", domain.ErrInvalidInput)
	}

	id, err := s.repo.InsertSkin(ctx, skin)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.GetSkinByID(ctx, id)
	if err != nil {
		return nil, err
	}

	log.Info(LogMsgSkinCreated, "skinID", created.ID, "name", created.Name)
	return created, nil
}

func (s *service) GetSkinByID(ctx context.Context, skinID int) (*domain.Skin, error) {
	return s.repo.GetSkinByID(ctx, skinID)
}

func (s *service) ListSkins(ctx context.Context) ([]domain.Skin, error) {
	return s.repo.ListSkins(ctx)
}

func (s *service) UpdateSkin(ctx context.Context, skinID int, patch SkinPatch) (*domain.Skin, error) {
	skin, err := s.repo.GetSkinByID(ctx, skinID)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		if strings.TrimSpace(*patch.Name) == "" {
			return nil, fmt.Errorf("%w: skin name is required", domain.ErrInvalidInput)
		}
		skin.Name = *patch.Name
	}
	if patch.Description != nil {
		skin.Description = *patch.Description
	}
	if patch.ImgURL != nil {
		skin.ImgURL = *patch.ImgURL
	}

	if err := s.repo.UpdateSkin(ctx, skinID, skin); err != nil {
		return nil, err
	}
	return s.repo.GetSkinByID(ctx, skinID)
}

func (s *service) DeleteSkin(ctx context.Context, skinID int) error {
	if skinID == domain.DefaultSkinID {
		return fmt.Errorf("%w: default skin cannot be deleted", domain.ErrInvalidInput)
	}
	return s.repo.DeleteSkin(ctx, skinID)
}
