package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/yjsong/item-simulator/internal/config"
	"github.com/yjsong/item-simulator/internal/domain"
	"github.com/yjsong/item-simulator/internal/logger"
	"github.com/yjsong/item-simulator/internal/repository"
	"github.com/yjsong/item-simulator/internal/validation"
)

// Sentinel errors for the seed loader
var (
	ErrDuplicateName = errors.New("duplicate item name")
	ErrInvalidConfig = errors.New("invalid configuration")
)

// ItemsConfig represents the JSON configuration for the item catalog
type ItemsConfig struct {
	Version     string    `json:"version"`
	Description string    `json:"description,omitempty"`
	Items       []ItemDef `json:"items"`
}

// ItemDef represents a single item definition in the JSON
type ItemDef struct {
	Name             string `json:"name"`
	Description      string `json:"description,omitempty"`
	Price            int    `json:"price"`
	HP               int    `json:"hp,omitempty"`
	Power            int    `json:"power,omitempty"`
	Defense          int    `json:"defense,omitempty"`
	Speed            int    `json:"speed,omitempty"`
	MountingLocation string `json:"mountingLocation"`
}

// SkinsConfig represents the JSON configuration for skins
type SkinsConfig struct {
	Version string    `json:"version"`
	Skins   []SkinDef `json:"skins"`
}

// SkinDef represents a single skin definition in the JSON
type SkinDef struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	ImgURL      string `json:"imgurl,omitempty"`
}

// SyncResult contains the result of syncing seed data to the store
type SyncResult struct {
	ItemsInserted int
	ItemsUpdated  int
	ItemsSkipped  int
	SkinsInserted int
	SkinsSkipped  int
}

// Loader handles loading, validating, and syncing the catalog seed files
type Loader interface {
	LoadItems(path string) (*ItemsConfig, error)
	LoadSkins(path string) (*SkinsConfig, error)
	Sync(ctx context.Context, repo repository.Item, items *ItemsConfig, skins *SkinsConfig) (*SyncResult, error)
}

type loader struct {
	schemaValidator validation.SchemaValidator
}

// NewLoader creates a new Loader instance
func NewLoader() Loader {
	return &loader{
		schemaValidator: validation.NewSchemaValidator(),
	}
}

// LoadItems reads, schema-validates, and parses an items seed file
func (l *loader) LoadItems(path string) (*ItemsConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read items config file: %w", err)
	}

	if err := l.schemaValidator.ValidateBytes(data, config.ConfigPathItemSchema); err != nil {
		return nil, fmt.Errorf("schema validation failed for %s: %w", path, err)
	}

	var cfg ItemsConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse items config: %w", err)
	}

	if err := validateItemsConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadSkins reads, schema-validates, and parses a skins seed file
func (l *loader) LoadSkins(path string) (*SkinsConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read skins config file: %w", err)
	}

	if err := l.schemaValidator.ValidateBytes(data, config.ConfigPathSkinSchema); err != nil {
		return nil, fmt.Errorf("schema validation failed for %s: %w", path, err)
	}

	var cfg SkinsConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse skins config: %w", err)
	}

	return &cfg, nil
}

// validateItemsConfig checks the seed data beyond what the schema expresses
func validateItemsConfig(cfg *ItemsConfig) error {
	if cfg == nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgConfigNil)
	}
	if len(cfg.Items) == 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgNoItemsDefined)
	}

	names := make(map[string]bool, len(cfg.Items))
	for i := range cfg.Items {
		def := &cfg.Items[i]
		if def.Name == "" {
			return fmt.Errorf("%w: item at index %d has empty name", ErrInvalidConfig, i)
		}
		if names[def.Name] {
			return fmt.Errorf("%w: '%s'", ErrDuplicateName, def.Name)
		}
		names[def.Name] = true

		if def.Price < 0 {
			return fmt.Errorf("%w: item '%s' has negative price", ErrInvalidConfig, def.Name)
		}
		if !domain.MountingLocation(def.MountingLocation).Valid() {
			return fmt.Errorf("%w: item '%s' has unknown mounting location %q", ErrInvalidConfig, def.Name, def.MountingLocation)
		}
	}
	return nil
}

func (d ItemDef) toDomain() *domain.Item {
	return &domain.Item{
		Name:        d.Name,
		Description: d.Description,
		Price:       d.Price,
		Stats: domain.StatBlock{
			HP:      d.HP,
			Power:   d.Power,
			Defense: d.Defense,
			Speed:   d.Speed,
		},
		MountingLocation: domain.MountingLocation(d.MountingLocation),
	}
}

// Sync applies the seed configs to the store idempotently: items are keyed by
// name, inserted when missing and updated when their definition drifted;
// skins are insert-only.
func (l *loader) Sync(ctx context.Context, repo repository.Item, items *ItemsConfig, skins *SkinsConfig) (*SyncResult, error) {
	log := logger.FromContext(ctx)
	result := &SyncResult{}

	if items != nil {
		existing, err := repo.ListItems(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list existing items: %w", err)
		}
		existingByName := make(map[string]*domain.Item, len(existing))
		for i := range existing {
			existingByName[existing[i].Name] = &existing[i]
		}

		for _, def := range items.Items {
			if err := syncOneItem(ctx, repo, def, existingByName, result); err != nil {
				return nil, err
			}
		}
	}

	if skins != nil {
		existing, err := repo.ListSkins(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list existing skins: %w", err)
		}
		existingNames := make(map[string]bool, len(existing))
		for _, skin := range existing {
			existingNames[skin.Name] = true
		}

		for _, def := range skins.Skins {
			if existingNames[def.Name] {
				result.SkinsSkipped++
				continue
			}
			if _, err := repo.InsertSkin(ctx, &domain.Skin{
				Name:        def.Name,
				Description: def.Description,
				ImgURL:      def.ImgURL,
			}); err != nil {
				return nil, fmt.Errorf("failed to insert skin '%s': %w", def.Name, err)
			}
			result.SkinsInserted++
		}
		log.Info(LogMsgSyncSkinsDone, "inserted", result.SkinsInserted, "skipped", result.SkinsSkipped)
	}

	log.Info(LogMsgSyncCompleted,
		"inserted", result.ItemsInserted,
		"updated", result.ItemsUpdated,
		"skipped", result.ItemsSkipped)
	return result, nil
}

func syncOneItem(ctx context.Context, repo repository.Item, def ItemDef, existingByName map[string]*domain.Item, result *SyncResult) error {
	log := logger.FromContext(ctx)
	want := def.toDomain()

	existing, ok := existingByName[def.Name]
	if !ok {
		if _, err := repo.InsertItem(ctx, want); err != nil {
			return fmt.Errorf("failed to insert item '%s': %w", def.Name, err)
		}
		result.ItemsInserted++
		log.Debug("Inserted seed item", "name", def.Name)
		return nil
	}

	needsUpdate := existing.Description != want.Description ||
		existing.Price != want.Price ||
		existing.Stats != want.Stats ||
		existing.MountingLocation != want.MountingLocation
	if !needsUpdate {
		result.ItemsSkipped++
		return nil
	}

	if err := repo.UpdateItem(ctx, existing.ID, want); err != nil {
		return fmt.Errorf("failed to update item '%s': %w", def.Name, err)
	}
	result.ItemsUpdated++
	log.Debug("Updated seed item", "name", def.Name)
	return nil
}
