package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/yjsong/item-simulator/internal/domain"
)

func (s *Store) InsertItem(ctx context.Context, item *domain.Item) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.items {
		if existing.Name == item.Name {
			return 0, fmt.Errorf("%w: item %s", domain.ErrDuplicateName, item.Name)
		}
	}

	now := time.Now()
	stored := *item
	stored.ID = s.nextItemID
	stored.CreatedAt = now
	stored.UpdatedAt = now
	s.nextItemID++
	s.items[stored.ID] = stored
	return stored.ID, nil
}

func (s *Store) GetItemByID(ctx context.Context, itemID int) (*domain.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[itemID]
	if !ok {
		return nil, fmt.Errorf("%w: %d", domain.ErrItemNotFound, itemID)
	}
	return &item, nil
}

func (s *Store) GetItemByName(ctx context.Context, name string) (*domain.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range s.items {
		if item.Name == name {
			found := item
			return &found, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrItemNotFound, name)
}

func (s *Store) GetItemsByNamePrefix(ctx context.Context, prefix string) ([]domain.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var matched []domain.Item
	for _, item := range s.items {
		if strings.HasPrefix(item.Name, prefix) {
			matched = append(matched, item)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })
	return matched, nil
}

func (s *Store) ListItems(ctx context.Context) ([]domain.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]domain.Item, 0, len(s.items))
	for id := 1; id < s.nextItemID; id++ {
		if item, ok := s.items[id]; ok {
			items = append(items, item)
		}
	}
	return items, nil
}

func (s *Store) UpdateItem(ctx context.Context, itemID int, item *domain.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.items[itemID]
	if !ok {
		return fmt.Errorf("%w: %d", domain.ErrItemNotFound, itemID)
	}
	updated := *item
	updated.ID = itemID
	updated.CreatedAt = stored.CreatedAt
	updated.UpdatedAt = time.Now()
	s.items[itemID] = updated
	return nil
}

func (s *Store) DeleteItem(ctx context.Context, itemID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[itemID]; !ok {
		return fmt.Errorf("%w: %d", domain.ErrItemNotFound, itemID)
	}
	delete(s.items, itemID)
	return nil
}

func (s *Store) InsertSkin(ctx context.Context, skin *domain.Skin) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *skin
	stored.ID = s.nextSkinID
	stored.CreatedAt = time.Now()
	s.nextSkinID++
	s.skins[stored.ID] = stored
	return stored.ID, nil
}

func (s *Store) GetSkinByID(ctx context.Context, skinID int) (*domain.Skin, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	skin, ok := s.skins[skinID]
	if !ok {
		return nil, fmt.Errorf("%w: %d", domain.ErrSkinNotFound, skinID)
	}
	return &skin, nil
}

func (s *Store) ListSkins(ctx context.Context) ([]domain.Skin, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	skins := make([]domain.Skin, 0, len(s.skins))
	for id := 0; id < s.nextSkinID; id++ {
		if skin, ok := s.skins[id]; ok {
			skins = append(skins, skin)
		}
	}
	return skins, nil
}

func (s *Store) UpdateSkin(ctx context.Context, skinID int, skin *domain.Skin) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.skins[skinID]
	if !ok {
		return fmt.Errorf("%w: %d", domain.ErrSkinNotFound, skinID)
	}
	updated := *skin
	updated.ID = skinID
	updated.CreatedAt = stored.CreatedAt
	s.skins[skinID] = updated
	return nil
}

func (s *Store) DeleteSkin(ctx context.Context, skinID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if skinID == domain.DefaultSkinID {
		return fmt.Errorf("%w: default skin cannot be deleted", domain.ErrInvalidInput)
	}
	if _, ok := s.skins[skinID]; !ok {
		return fmt.Errorf("%w: %d", domain.ErrSkinNotFound, skinID)
	}
	delete(s.skins, skinID)
	return nil
}
