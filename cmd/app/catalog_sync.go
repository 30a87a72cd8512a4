package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/yjsong/item-simulator/internal/catalog"
	"github.com/yjsong/item-simulator/internal/config"
	"github.com/yjsong/item-simulator/internal/repository"
)

// syncCatalog loads the item and skin seed files and reconciles the catalog
// tables with them. Existing rows keep their IDs; drifted definitions are
// updated in place.
func syncCatalog(ctx context.Context, repo repository.Item) error {
	loader := catalog.NewLoader()

	items, err := loader.LoadItems(config.ConfigPathItems)
	if err != nil {
		return fmt.Errorf("loading items seed: %w", err)
	}
	skins, err := loader.LoadSkins(config.ConfigPathSkins)
	if err != nil {
		return fmt.Errorf("loading skins seed: %w", err)
	}

	result, err := loader.Sync(ctx, repo, items, skins)
	if err != nil {
		return fmt.Errorf("syncing catalog: %w", err)
	}

	slog.Default().Info("Catalog seed synced",
		"items_inserted", result.ItemsInserted,
		"items_updated", result.ItemsUpdated,
		"items_skipped", result.ItemsSkipped,
		"skins_inserted", result.SkinsInserted,
		"skins_skipped", result.SkinsSkipped)
	return nil
}
