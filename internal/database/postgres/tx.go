package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/yjsong/item-simulator/internal/domain"
)

// gameTx implements repository.GameTx on a pgx transaction. The character row
// lock taken by LockCharacter serializes conflicting transactions on the same
// character for the transaction's lifetime.
type gameTx struct {
	tx pgx.Tx
}

func (t *gameTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

func (t *gameTx) Rollback(ctx context.Context) error {
	if err := t.tx.Rollback(ctx); err != nil {
		if errors.Is(err, pgx.ErrTxClosed) {
			return errors.New(domain.ErrMsgTxClosed)
		}
		return err
	}
	return nil
}

// LockCharacter reads the character row FOR UPDATE, blocking until any
// concurrent transaction holding it finishes.
func (t *gameTx) LockCharacter(ctx context.Context, characterID int) (*domain.Character, error) {
	row := t.tx.QueryRow(ctx, `SELECT `+characterColumns+` FROM characters WHERE character_id = $1 FOR UPDATE`, characterID)
	character, err := scanCharacter(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %d", domain.ErrCharacterNotFound, characterID)
		}
		return nil, fmt.Errorf("failed to lock character: %w", err)
	}
	return character, nil
}

func (t *gameTx) UpdateStats(ctx context.Context, characterID int, stats domain.StatBlock) error {
	tag, err := t.tx.Exec(ctx, `
		UPDATE characters
		SET hp = $2, power = $3, defense = $4, speed = $5, updated_at = NOW()
		WHERE character_id = $1`,
		characterID, stats.HP, stats.Power, stats.Defense, stats.Speed)
	if err != nil {
		return fmt.Errorf("failed to update stats: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %d", domain.ErrCharacterNotFound, characterID)
	}
	return nil
}

func (t *gameTx) UpdateGold(ctx context.Context, characterID int, gold int) error {
	tag, err := t.tx.Exec(ctx, `
		UPDATE characters SET money = $2, updated_at = NOW() WHERE character_id = $1`,
		characterID, gold)
	if err != nil {
		return translateConstraintErr(err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %d", domain.ErrCharacterNotFound, characterID)
	}
	return nil
}

func (t *gameTx) GetEntryCount(ctx context.Context, characterID, itemID int) (int, error) {
	var count int
	err := t.tx.QueryRow(ctx, `
		SELECT item_count FROM character_inventory WHERE character_id = $1 AND item_id = $2`,
		characterID, itemID).Scan(&count)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get inventory entry: %w", err)
	}
	return count, nil
}

func (t *gameTx) SetEntryCount(ctx context.Context, characterID, itemID, count int) error {
	if count == 0 {
		_, err := t.tx.Exec(ctx, `
			DELETE FROM character_inventory WHERE character_id = $1 AND item_id = $2`,
			characterID, itemID)
		if err != nil {
			return fmt.Errorf("failed to delete inventory entry: %w", err)
		}
		return nil
	}

	_, err := t.tx.Exec(ctx, `
		INSERT INTO character_inventory (character_id, item_id, item_count)
		VALUES ($1, $2, $3)
		ON CONFLICT (character_id, item_id)
		DO UPDATE SET item_count = EXCLUDED.item_count`,
		characterID, itemID, count)
	if err != nil {
		return fmt.Errorf("failed to upsert inventory entry: %w", err)
	}
	return nil
}

func (t *gameTx) GetEquippedBySlot(ctx context.Context, characterID int, location domain.MountingLocation) (*domain.EquippedItem, error) {
	return t.getEquipped(ctx, `
		SELECT ce.item_id, i.item_name, ce.mounting_location, ce.i_hp, ce.i_power, ce.i_defense, ce.i_speed
		FROM character_items ce
		JOIN items i USING (item_id)
		WHERE ce.character_id = $1 AND ce.mounting_location = $2`,
		characterID, string(location))
}

func (t *gameTx) GetEquippedByItem(ctx context.Context, characterID, itemID int) (*domain.EquippedItem, error) {
	return t.getEquipped(ctx, `
		SELECT ce.item_id, i.item_name, ce.mounting_location, ce.i_hp, ce.i_power, ce.i_defense, ce.i_speed
		FROM character_items ce
		JOIN items i USING (item_id)
		WHERE ce.character_id = $1 AND ce.item_id = $2`,
		characterID, itemID)
}

func (t *gameTx) getEquipped(ctx context.Context, query string, args ...any) (*domain.EquippedItem, error) {
	var e domain.EquippedItem
	err := t.tx.QueryRow(ctx, query, args...).Scan(
		&e.ItemID, &e.ItemName, &e.MountingLocation,
		&e.Stats.HP, &e.Stats.Power, &e.Stats.Defense, &e.Stats.Speed,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get equipped item: %w", err)
	}
	return &e, nil
}

func (t *gameTx) InsertEquipped(ctx context.Context, characterID int, equipped domain.EquippedItem) error {
	_, err := t.tx.Exec(ctx, `
		INSERT INTO character_items (character_id, item_id, mounting_location, i_hp, i_power, i_defense, i_speed)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		characterID, equipped.ItemID, string(equipped.MountingLocation),
		equipped.Stats.HP, equipped.Stats.Power, equipped.Stats.Defense, equipped.Stats.Speed)
	if err != nil {
		return translateConstraintErr(err)
	}
	return nil
}

func (t *gameTx) DeleteEquipped(ctx context.Context, characterID int, location domain.MountingLocation) error {
	tag, err := t.tx.Exec(ctx, `
		DELETE FROM character_items WHERE character_id = $1 AND mounting_location = $2`,
		characterID, string(location))
	if err != nil {
		return fmt.Errorf("failed to delete equipped item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: slot %s", domain.ErrNotEquipped, location)
	}
	return nil
}
