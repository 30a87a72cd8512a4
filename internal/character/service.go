// Package character manages character records: creation with the starter
// grant, the detail view, renames, and deletion.
package character

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/yjsong/item-simulator/internal/domain"
	"github.com/yjsong/item-simulator/internal/logger"
	"github.com/yjsong/item-simulator/internal/metrics"
	"github.com/yjsong/item-simulator/internal/repository"
)

// StarterItemSource lists the catalog items granted to new characters.
type StarterItemSource interface {
	GetItemsByNamePrefix(ctx context.Context, prefix string) ([]domain.Item, error)
	GetSkinByID(ctx context.Context, skinID int) (*domain.Skin, error)
}

// Service defines the interface for character operations
type Service interface {
	Create(ctx context.Context, name string, skinID *int) (*domain.Character, error)
	Get(ctx context.Context, characterID int) (*domain.CharacterDetail, error)
	List(ctx context.Context) ([]domain.Character, error)
	Update(ctx context.Context, characterID int, name *string, skinID *int) (*domain.Character, error)
	Delete(ctx context.Context, characterID int) error
}

type service struct {
	repo          repository.Character
	catalog       StarterItemSource
	starterPrefix string
}

// NewService creates a new character service. starterPrefix selects the
// catalog items granted on creation by name prefix.
func NewService(repo repository.Character, catalog StarterItemSource, starterPrefix string) Service {
	return &service{
		repo:          repo,
		catalog:       catalog,
		starterPrefix: starterPrefix,
	}
}

// validateName enforces the naming rule: required, trimmed, 1 to 50
// characters.
func validateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	length := utf8.RuneCountInString(name)
	if length < domain.CharacterNameMinLen {
		return "", fmt.Errorf("%w: character name is required", domain.ErrInvalidInput)
	}
	if length > domain.CharacterNameMaxLen {
		return "", fmt.Errorf("%w: character name must be at most %d characters", domain.ErrInvalidInput, domain.CharacterNameMaxLen)
	}
	return name, nil
}

func (s *service) Create(ctx context.Context, name string, skinID *int) (*domain.Character, error) {
	log := logger.FromContext(ctx)
	log.Info("Create character called", "name", name)

	name, err := validateName(name)
	if err != nil {
		return nil, err
	}

	if existing, err := s.repo.GetCharacterByName(ctx, name); err == nil && existing != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrDuplicateName, name)
	} else if err != nil && !errors.Is(err, domain.ErrCharacterNotFound) {
		return nil, err
	}

	skin := domain.DefaultSkinID
	if skinID != nil {
		if _, err := s.catalog.GetSkinByID(ctx, *skinID); err != nil {
			return nil, err
		}
		skin = *skinID
	}

	starterItems, err := s.catalog.GetItemsByNamePrefix(ctx, s.starterPrefix)
	if err != nil {
		return nil, fmt.Errorf("failed to load starter items: %w", err)
	}

	character, err := s.repo.CreateCharacter(ctx, name, skin, starterItems)
	if err != nil {
		return nil, err
	}

	metrics.CharactersCreated.Inc()
	log.Info("Character created", "characterID", character.ID, "name", character.Name, "starterItems", len(starterItems))
	return character, nil
}

func (s *service) Get(ctx context.Context, characterID int) (*domain.CharacterDetail, error) {
	character, err := s.repo.GetCharacterByID(ctx, characterID)
	if err != nil {
		return nil, err
	}
	equipment, err := s.repo.GetEquipment(ctx, characterID)
	if err != nil {
		return nil, err
	}
	inventory, err := s.repo.GetInventory(ctx, characterID)
	if err != nil {
		return nil, err
	}

	return &domain.CharacterDetail{
		Character: *character,
		Equipment: equipment,
		Inventory: inventory,
	}, nil
}

func (s *service) List(ctx context.Context) ([]domain.Character, error) {
	return s.repo.ListCharacters(ctx)
}

func (s *service) Update(ctx context.Context, characterID int, name *string, skinID *int) (*domain.Character, error) {
	log := logger.FromContext(ctx)
	log.Info("Update character called", "characterID", characterID)

	if name == nil && skinID == nil {
		return nil, fmt.Errorf("%w: nothing to update", domain.ErrInvalidInput)
	}

	if name != nil {
		validated, err := validateName(*name)
		if err != nil {
			return nil, err
		}
		name = &validated
	}
	if skinID != nil {
		if _, err := s.catalog.GetSkinByID(ctx, *skinID); err != nil {
			return nil, err
		}
	}

	return s.repo.UpdateCharacter(ctx, characterID, name, skinID)
}

func (s *service) Delete(ctx context.Context, characterID int) error {
	log := logger.FromContext(ctx)
	log.Info("Delete character called", "characterID", characterID)

	return s.repo.DeleteCharacter(ctx, characterID)
}
