// Package shop exchanges gold for catalog items and back. Purchase and Sell
// each run the gold movement and the inventory movement in one transaction;
// neither touches equipped state.
package shop

import (
	"context"
	"fmt"

	"github.com/yjsong/item-simulator/internal/concurrency"
	"github.com/yjsong/item-simulator/internal/domain"
	"github.com/yjsong/item-simulator/internal/inventory"
	"github.com/yjsong/item-simulator/internal/logger"
	"github.com/yjsong/item-simulator/internal/metrics"
	"github.com/yjsong/item-simulator/internal/repository"
)

// ItemResolver is the slice of the catalog the shop reads.
type ItemResolver interface {
	GetItemByID(ctx context.Context, itemID int) (*domain.Item, error)
}

// TradeResult reports the outcome of a purchase or sale.
type TradeResult struct {
	CharacterID int    `json:"characterId"`
	ItemID      int    `json:"itemId"`
	ItemName    string `json:"itemName"`
	Count       int    `json:"count"`
	// GoldDelta is negative for purchases, positive for sales.
	GoldDelta int `json:"goldDelta"`
	// Gold is the character's balance after the trade.
	Gold int `json:"gold"`
}

// Service defines the interface for shop operations
type Service interface {
	Purchase(ctx context.Context, characterID, itemID, count int) (*TradeResult, error)
	Sell(ctx context.Context, characterID, itemID, count int) (*TradeResult, error)
}

type service struct {
	repo  repository.Character
	items ItemResolver
	locks *concurrency.LockManager
}

// NewService creates a new shop service
func NewService(repo repository.Character, items ItemResolver, locks *concurrency.LockManager) Service {
	return &service{
		repo:  repo,
		items: items,
		locks: locks,
	}
}

// SellProceeds computes the payout for selling count copies at the given
// catalog price. Integer math floors the result.
func SellProceeds(price, count int) int {
	return price * count * SellPricePercent / 100
}

func validateCount(count int) error {
	if count < 1 {
		return fmt.Errorf("%w: count must be at least 1, got %d", domain.ErrInvalidQuantity, count)
	}
	return nil
}

func (s *service) Purchase(ctx context.Context, characterID, itemID, count int) (*TradeResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgPurchaseCalled, "characterID", characterID, "itemID", itemID, "count", count)

	if err := validateCount(count); err != nil {
		return nil, err
	}

	item, err := s.items.GetItemByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	total := item.Price * count

	lock := s.locks.GetLock(concurrency.CharacterKey(characterID))
	lock.Lock()
	defer lock.Unlock()

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	character, err := tx.LockCharacter(ctx, characterID)
	if err != nil {
		return nil, err
	}
	if character.Gold < total {
		return nil, fmt.Errorf("%w: have %d, need %d", domain.ErrInsufficientFunds, character.Gold, total)
	}

	gold := character.Gold - total
	if err := tx.UpdateGold(ctx, characterID, gold); err != nil {
		return nil, err
	}
	if err := inventory.Credit(ctx, tx, characterID, itemID, count); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	metrics.ItemsPurchased.WithLabelValues(item.Name).Add(float64(count))
	metrics.GoldSpent.Add(float64(total))
	log.Info(LogMsgItemPurchased, "characterID", characterID, "item", item.Name, "count", count, "cost", total, "gold", gold)

	return &TradeResult{
		CharacterID: characterID,
		ItemID:      itemID,
		ItemName:    item.Name,
		Count:       count,
		GoldDelta:   -total,
		Gold:        gold,
	}, nil
}

func (s *service) Sell(ctx context.Context, characterID, itemID, count int) (*TradeResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgSellCalled, "characterID", characterID, "itemID", itemID, "count", count)

	if err := validateCount(count); err != nil {
		return nil, err
	}

	item, err := s.items.GetItemByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	proceeds := SellProceeds(item.Price, count)

	lock := s.locks.GetLock(concurrency.CharacterKey(characterID))
	lock.Lock()
	defer lock.Unlock()

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	character, err := tx.LockCharacter(ctx, characterID)
	if err != nil {
		return nil, err
	}

	// Only unequipped copies can be sold; the ledger never sees equipped rows.
	if err := inventory.Debit(ctx, tx, characterID, itemID, count); err != nil {
		return nil, err
	}

	gold := character.Gold + proceeds
	if err := tx.UpdateGold(ctx, characterID, gold); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	metrics.ItemsSold.WithLabelValues(item.Name).Add(float64(count))
	metrics.GoldEarned.Add(float64(proceeds))
	log.Info(LogMsgItemSold, "characterID", characterID, "item", item.Name, "count", count, "proceeds", proceeds, "gold", gold)

	return &TradeResult{
		CharacterID: characterID,
		ItemID:      itemID,
		ItemName:    item.Name,
		Count:       count,
		GoldDelta:   proceeds,
		Gold:        gold,
	}, nil
}
