package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yjsong/item-simulator/internal/database/memory"
	"github.com/yjsong/item-simulator/internal/domain"
)

func TestLoadItems_RealSeedFile(t *testing.T) {
	loader := NewLoader()

	cfg, err := loader.LoadItems(filepath.Join("..", "..", "configs", "items.json"))

	require.NoError(t, err)
	assert.Equal(t, "1.0", cfg.Version)
	assert.NotEmpty(t, cfg.Items)

	// Every slot must be represented among the starter items
	starterSlots := make(map[string]bool)
	for _, def := range cfg.Items {
		if def.Price < 0 {
			t.Errorf("item %s has negative price", def.Name)
		}
		starterSlots[def.MountingLocation] = true
	}
	for _, loc := range domain.MountingLocations {
		assert.True(t, starterSlots[string(loc)], "no seed item for slot %s", loc)
	}
}

func TestLoadSkins_RealSeedFile(t *testing.T) {
	loader := NewLoader()

	cfg, err := loader.LoadSkins(filepath.Join("..", "..", "configs", "skins.json"))

	require.NoError(t, err)
	assert.NotEmpty(t, cfg.Skins)
}

func TestLoadItems_RejectsInvalidSeed(t *testing.T) {
	loader := NewLoader()
	tmpDir := t.TempDir()

	tests := []struct {
		name string
		data string
	}{
		{
			name: "missing version",
			data: `{"items": [{"name": "모자", "price": 100, "mountingLocation": "모자"}]}`,
		},
		{
			name: "unknown slot",
			data: `{"version": "1.0", "items": [{"name": "신발", "price": 100, "mountingLocation": "신발"}]}`,
		},
		{
			name: "negative price",
			data: `{"version": "1.0", "items": [{"name": "모자", "price": -1, "mountingLocation": "모자"}]}`,
		},
		{
			name: "unexpected field",
			data: `{"version": "1.0", "items": [{"name": "모자", "price": 100, "mountingLocation": "모자", "rarity": 3}]}`,
		},
		{
			name: "not json",
			data: `version: 1.0`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(tmpDir, "items.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.data), 0644))

			_, err := loader.LoadItems(path)
			assert.Error(t, err)
		})
	}
}

func TestLoadItems_RejectsDuplicateNames(t *testing.T) {
	loader := NewLoader()
	tmpDir := t.TempDir()

	data := `{"version": "1.0", "items": [
		{"name": "모자", "price": 100, "mountingLocation": "모자"},
		{"name": "모자", "price": 200, "mountingLocation": "모자"}
	]}`
	path := filepath.Join(tmpDir, "items.json")
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	_, err := loader.LoadItems(path)

	assert.ErrorIs(t, err, ErrDuplicateName)
}

func TestSync_InsertsAndIdempotent(t *testing.T) {
	loader := NewLoader()
	store := memory.NewStore()
	ctx := context.Background()

	items, err := loader.LoadItems(filepath.Join("..", "..", "configs", "items.json"))
	require.NoError(t, err)
	skins, err := loader.LoadSkins(filepath.Join("..", "..", "configs", "skins.json"))
	require.NoError(t, err)

	first, err := loader.Sync(ctx, store, items, skins)
	require.NoError(t, err)
	assert.Equal(t, len(items.Items), first.ItemsInserted)
	assert.Zero(t, first.ItemsUpdated)
	// The default skin is preloaded; only the others are inserted
	assert.Equal(t, len(skins.Skins)-1, first.SkinsInserted)
	assert.Equal(t, 1, first.SkinsSkipped)

	// A second sync changes nothing
	second, err := loader.Sync(ctx, store, items, skins)
	require.NoError(t, err)
	assert.Zero(t, second.ItemsInserted)
	assert.Zero(t, second.ItemsUpdated)
	assert.Equal(t, len(items.Items), second.ItemsSkipped)
	assert.Zero(t, second.SkinsInserted)
}

func TestSync_UpdatesDriftedItems(t *testing.T) {
	loader := NewLoader()
	store := memory.NewStore()
	ctx := context.Background()

	items := &ItemsConfig{
		Version: "1.0",
		Items: []ItemDef{
			{Name: "강철 투구", Price: 800, Defense: 15, MountingLocation: "모자"},
		},
	}

	_, err := loader.Sync(ctx, store, items, nil)
	require.NoError(t, err)

	// The seed definition changes price
	items.Items[0].Price = 900
	result, err := loader.Sync(ctx, store, items, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, result.ItemsUpdated)

	stored, err := store.GetItemByName(ctx, "강철 투구")
	require.NoError(t, err)
	assert.Equal(t, 900, stored.Price)
}
