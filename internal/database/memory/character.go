package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/yjsong/item-simulator/internal/domain"
	"github.com/yjsong/item-simulator/internal/repository"
)

// CreateCharacter inserts the character and its starter inventory as one
// atomic unit.
func (s *Store) CreateCharacter(ctx context.Context, name string, skinID int, starterItems []domain.Item) (*domain.Character, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.characters {
		if c.Name == name {
			return nil, fmt.Errorf("%w: %s", domain.ErrDuplicateName, name)
		}
	}
	if _, ok := s.skins[skinID]; !ok {
		return nil, fmt.Errorf("%w: %d", domain.ErrSkinNotFound, skinID)
	}

	now := time.Now()
	character := domain.Character{
		ID:        s.nextCharacterID,
		Name:      name,
		SkinID:    skinID,
		Level:     DefaultLevel,
		Stats:     defaultStats,
		Gold:      DefaultGold,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.nextCharacterID++

	s.characters[character.ID] = character
	s.inventories[character.ID] = make(map[int]int)
	s.equipment[character.ID] = make(map[domain.MountingLocation]domain.EquippedItem)
	for _, item := range starterItems {
		s.inventories[character.ID][item.ID]++
	}

	return &character, nil
}

func (s *Store) GetCharacterByID(ctx context.Context, characterID int) (*domain.Character, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	character, ok := s.characters[characterID]
	if !ok {
		return nil, fmt.Errorf("%w: %d", domain.ErrCharacterNotFound, characterID)
	}
	return &character, nil
}

func (s *Store) GetCharacterByName(ctx context.Context, name string) (*domain.Character, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.characters {
		if c.Name == name {
			character := c
			return &character, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrCharacterNotFound, name)
}

func (s *Store) ListCharacters(ctx context.Context) ([]domain.Character, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	characters := make([]domain.Character, 0, len(s.characters))
	for id := 1; id < s.nextCharacterID; id++ {
		if c, ok := s.characters[id]; ok {
			characters = append(characters, c)
		}
	}
	return characters, nil
}

func (s *Store) UpdateCharacter(ctx context.Context, characterID int, name *string, skinID *int) (*domain.Character, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	character, ok := s.characters[characterID]
	if !ok {
		return nil, fmt.Errorf("%w: %d", domain.ErrCharacterNotFound, characterID)
	}
	if name != nil {
		for id, c := range s.characters {
			if id != characterID && c.Name == *name {
				return nil, fmt.Errorf("%w: %s", domain.ErrDuplicateName, *name)
			}
		}
		character.Name = *name
	}
	if skinID != nil {
		if _, ok := s.skins[*skinID]; !ok {
			return nil, fmt.Errorf("%w: %d", domain.ErrSkinNotFound, *skinID)
		}
		character.SkinID = *skinID
	}
	character.UpdatedAt = time.Now()
	s.characters[characterID] = character
	return &character, nil
}

// DeleteCharacter removes the character along with its inventory and
// equipment, mirroring the FK cascade in the Postgres schema.
func (s *Store) DeleteCharacter(ctx context.Context, characterID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.characters[characterID]; !ok {
		return fmt.Errorf("%w: %d", domain.ErrCharacterNotFound, characterID)
	}
	delete(s.characters, characterID)
	delete(s.inventories, characterID)
	delete(s.equipment, characterID)
	return nil
}

func (s *Store) GetInventory(ctx context.Context, characterID int) ([]domain.InventoryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.characters[characterID]; !ok {
		return nil, fmt.Errorf("%w: %d", domain.ErrCharacterNotFound, characterID)
	}
	return s.inventoryLocked(characterID), nil
}

func (s *Store) GetEquipment(ctx context.Context, characterID int) ([]domain.EquippedItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.characters[characterID]; !ok {
		return nil, fmt.Errorf("%w: %d", domain.ErrCharacterNotFound, characterID)
	}
	return s.equipmentLocked(characterID), nil
}

// BeginTx takes the store lock for the lifetime of the transaction, giving
// the same serialization the Postgres row lock provides, store-wide.
func (s *Store) BeginTx(ctx context.Context) (repository.GameTx, error) {
	s.mu.Lock()
	return &gameTx{store: s}, nil
}
