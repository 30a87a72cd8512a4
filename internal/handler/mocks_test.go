package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/yjsong/item-simulator/internal/catalog"
	"github.com/yjsong/item-simulator/internal/domain"
	"github.com/yjsong/item-simulator/internal/equipment"
	"github.com/yjsong/item-simulator/internal/shop"
)

type MockCharacterService struct {
	mock.Mock
}

func (m *MockCharacterService) Create(ctx context.Context, name string, skinID *int) (*domain.Character, error) {
	args := m.Called(ctx, name, skinID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Character), args.Error(1)
}

func (m *MockCharacterService) Get(ctx context.Context, characterID int) (*domain.CharacterDetail, error) {
	args := m.Called(ctx, characterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CharacterDetail), args.Error(1)
}

func (m *MockCharacterService) List(ctx context.Context) ([]domain.Character, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Character), args.Error(1)
}

func (m *MockCharacterService) Update(ctx context.Context, characterID int, name *string, skinID *int) (*domain.Character, error) {
	args := m.Called(ctx, characterID, name, skinID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Character), args.Error(1)
}

func (m *MockCharacterService) Delete(ctx context.Context, characterID int) error {
	args := m.Called(ctx, characterID)
	return args.Error(0)
}

type MockEquipmentService struct {
	mock.Mock
}

func (m *MockEquipmentService) Equip(ctx context.Context, characterID, itemID int, location domain.MountingLocation) (*equipment.EquipResult, error) {
	args := m.Called(ctx, characterID, itemID, location)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*equipment.EquipResult), args.Error(1)
}

func (m *MockEquipmentService) Unequip(ctx context.Context, characterID, itemID int) (*equipment.UnequipResult, error) {
	args := m.Called(ctx, characterID, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*equipment.UnequipResult), args.Error(1)
}

type MockShopService struct {
	mock.Mock
}

func (m *MockShopService) Purchase(ctx context.Context, characterID, itemID, count int) (*shop.TradeResult, error) {
	args := m.Called(ctx, characterID, itemID, count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shop.TradeResult), args.Error(1)
}

func (m *MockShopService) Sell(ctx context.Context, characterID, itemID, count int) (*shop.TradeResult, error) {
	args := m.Called(ctx, characterID, itemID, count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shop.TradeResult), args.Error(1)
}

type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) CreateItem(ctx context.Context, item *domain.Item) (*domain.Item, error) {
	args := m.Called(ctx, item)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

func (m *MockCatalogService) GetItemByID(ctx context.Context, itemID int) (*domain.Item, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

func (m *MockCatalogService) GetItemsByNamePrefix(ctx context.Context, prefix string) ([]domain.Item, error) {
	args := m.Called(ctx, prefix)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Item), args.Error(1)
}

func (m *MockCatalogService) ListItems(ctx context.Context) ([]domain.Item, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Item), args.Error(1)
}

func (m *MockCatalogService) UpdateItem(ctx context.Context, itemID int, patch catalog.ItemPatch) (*domain.Item, error) {
	args := m.Called(ctx, itemID, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

func (m *MockCatalogService) DeleteItem(ctx context.Context, itemID int) error {
	args := m.Called(ctx, itemID)
	return args.Error(0)
}

func (m *MockCatalogService) CreateSkin(ctx context.Context, skin *domain.Skin) (*domain.Skin, error) {
	args := m.Called(ctx, skin)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Skin), args.Error(1)
}

func (m *MockCatalogService) GetSkinByID(ctx context.Context, skinID int) (*domain.Skin, error) {
	args := m.Called(ctx, skinID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Skin), args.Error(1)
}

func (m *MockCatalogService) ListSkins(ctx context.Context) ([]domain.Skin, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Skin), args.Error(1)
}

func (m *MockCatalogService) UpdateSkin(ctx context.Context, skinID int, patch catalog.SkinPatch) (*domain.Skin, error) {
	args := m.Called(ctx, skinID, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Skin), args.Error(1)
}

func (m *MockCatalogService) DeleteSkin(ctx context.Context, skinID int) error {
	args := m.Called(ctx, skinID)
	return args.Error(0)
}
