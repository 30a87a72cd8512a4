package character

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yjsong/item-simulator/internal/database/memory"
	"github.com/yjsong/item-simulator/internal/domain"
)

const testStarterPrefix = "일반 가죽"

func newTestService(t *testing.T) (Service, *memory.Store) {
	t.Helper()

	store := memory.NewStore()
	return NewService(store, store, testStarterPrefix), store
}

func seedStarterItems(t *testing.T, store *memory.Store) []int {
	t.Helper()

	names := []string{"일반 가죽 모자", "일반 가죽 갑옷", "일반 가죽 바지"}
	slots := []domain.MountingLocation{domain.SlotHat, domain.SlotArmor, domain.SlotPants}

	ids := make([]int, len(names))
	for i, name := range names {
		id, err := store.InsertItem(context.Background(), &domain.Item{
			Name:             name,
			Price:            100,
			MountingLocation: slots[i],
		})
		require.NoError(t, err)
		ids[i] = id
	}
	return ids
}

func TestCreate_Success(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	starterIDs := seedStarterItems(t, store)
	// An item outside the starter prefix must not be granted
	_, err := store.InsertItem(ctx, &domain.Item{Name: "강철 투구", Price: 500, MountingLocation: domain.SlotHat})
	require.NoError(t, err)

	character, err := svc.Create(ctx, "용사", nil)

	require.NoError(t, err)
	assert.Equal(t, "용사", character.Name)
	assert.Equal(t, domain.DefaultSkinID, character.SkinID)
	assert.Equal(t, 1, character.Level)
	assert.Equal(t, memory.DefaultGold, character.Gold)

	inventory, err := store.GetInventory(ctx, character.ID)
	require.NoError(t, err)
	require.Len(t, inventory, len(starterIDs), "one of each starter item")
	for i, entry := range inventory {
		assert.Equal(t, starterIDs[i], entry.ItemID)
		assert.Equal(t, 1, entry.Count)
	}
}

func TestCreate_TrimsName(t *testing.T) {
	svc, _ := newTestService(t)

	character, err := svc.Create(context.Background(), "  용사  ", nil)

	require.NoError(t, err)
	assert.Equal(t, "용사", character.Name)
}

func TestCreate_NameValidation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	t.Run("empty name", func(t *testing.T) {
		_, err := svc.Create(ctx, "", nil)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("whitespace only", func(t *testing.T) {
		_, err := svc.Create(ctx, "   ", nil)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("name too long", func(t *testing.T) {
		_, err := svc.Create(ctx, strings.Repeat("가", domain.CharacterNameMaxLen+1), nil)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("name at max length", func(t *testing.T) {
		_, err := svc.Create(ctx, strings.Repeat("가", domain.CharacterNameMaxLen), nil)
		assert.NoError(t, err)
	})
}

func TestCreate_DuplicateName(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, "용사", nil)
	require.NoError(t, err)

	_, err = svc.Create(ctx, "용사", nil)
	assert.ErrorIs(t, err, domain.ErrDuplicateName)
}

func TestCreate_WithSkin(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	skinID, err := store.InsertSkin(ctx, &domain.Skin{Name: "황금 갑주"})
	require.NoError(t, err)

	character, err := svc.Create(ctx, "용사", &skinID)
	require.NoError(t, err)
	assert.Equal(t, skinID, character.SkinID)
}

func TestCreate_UnknownSkin(t *testing.T) {
	svc, _ := newTestService(t)

	missing := 9999
	_, err := svc.Create(context.Background(), "용사", &missing)

	assert.ErrorIs(t, err, domain.ErrSkinNotFound)
}

func TestGet_Detail(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	seedStarterItems(t, store)
	character, err := svc.Create(ctx, "용사", nil)
	require.NoError(t, err)

	detail, err := svc.Get(ctx, character.ID)

	require.NoError(t, err)
	assert.Equal(t, character.ID, detail.Character.ID)
	assert.Empty(t, detail.Equipment)
	assert.Len(t, detail.Inventory, 3)
}

func TestGet_UnknownCharacter(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Get(context.Background(), 9999)

	assert.ErrorIs(t, err, domain.ErrCharacterNotFound)
}

func TestList(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	names := []string{"용사", "마법사", "도적"}
	for _, name := range names {
		_, err := svc.Create(ctx, name, nil)
		require.NoError(t, err)
	}

	characters, err := svc.List(ctx)

	require.NoError(t, err)
	require.Len(t, characters, 3)
	for i, c := range characters {
		assert.Equal(t, names[i], c.Name)
	}
}

func TestUpdate_Rename(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	character, err := svc.Create(ctx, "용사", nil)
	require.NoError(t, err)

	newName := "전사"
	updated, err := svc.Update(ctx, character.ID, &newName, nil)

	require.NoError(t, err)
	assert.Equal(t, "전사", updated.Name)
	assert.Equal(t, character.SkinID, updated.SkinID)
}

func TestUpdate_NothingToUpdate(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	character, err := svc.Create(ctx, "용사", nil)
	require.NoError(t, err)

	_, err = svc.Update(ctx, character.ID, nil, nil)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdate_DuplicateName(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, "용사", nil)
	require.NoError(t, err)
	other, err := svc.Create(ctx, "마법사", nil)
	require.NoError(t, err)

	taken := "용사"
	_, err = svc.Update(ctx, other.ID, &taken, nil)

	assert.ErrorIs(t, err, domain.ErrDuplicateName)
}

func TestDelete_CascadesInventoryAndEquipment(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	seedStarterItems(t, store)
	character, err := svc.Create(ctx, "용사", nil)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, character.ID))

	_, err = store.GetCharacterByID(ctx, character.ID)
	assert.ErrorIs(t, err, domain.ErrCharacterNotFound)
	_, err = store.GetInventory(ctx, character.ID)
	assert.ErrorIs(t, err, domain.ErrCharacterNotFound)
	_, err = store.GetEquipment(ctx, character.ID)
	assert.ErrorIs(t, err, domain.ErrCharacterNotFound)
}

func TestDelete_UnknownCharacter(t *testing.T) {
	svc, _ := newTestService(t)

	err := svc.Delete(context.Background(), 9999)

	assert.ErrorIs(t, err, domain.ErrCharacterNotFound)
}
