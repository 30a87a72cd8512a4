package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yjsong/item-simulator/internal/domain"
	"github.com/yjsong/item-simulator/internal/repository"
)

// CharacterRepository implements repository.Character for PostgreSQL
type CharacterRepository struct {
	db *pgxpool.Pool
}

// NewCharacterRepository creates a new CharacterRepository
func NewCharacterRepository(db *pgxpool.Pool) *CharacterRepository {
	return &CharacterRepository{db: db}
}

type characterRow interface {
	Scan(dest ...any) error
}

func scanCharacter(row characterRow) (*domain.Character, error) {
	var c domain.Character
	err := row.Scan(
		&c.ID, &c.Name, &c.SkinID, &c.Level,
		&c.Stats.HP, &c.Stats.Power, &c.Stats.Defense, &c.Stats.Speed,
		&c.Gold, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// translateConstraintErr maps constraint violations onto domain errors.
func translateConstraintErr(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case pgErrUniqueViolation:
		return fmt.Errorf("%w (%s)", domain.ErrDuplicateName, pgErr.ConstraintName)
	case pgErrForeignKeyViolation:
		if strings.Contains(pgErr.ConstraintName, "skin") {
			return fmt.Errorf("%w (%s)", domain.ErrSkinNotFound, pgErr.ConstraintName)
		}
		return fmt.Errorf("%w: referenced by %s", domain.ErrInvalidInput, pgErr.ConstraintName)
	case pgErrCheckViolation:
		if strings.Contains(pgErr.ConstraintName, "money") {
			return fmt.Errorf("%w (%s)", domain.ErrInsufficientFunds, pgErr.ConstraintName)
		}
		return fmt.Errorf("%w: check constraint %s", domain.ErrInvalidInput, pgErr.ConstraintName)
	}
	return err
}

// CreateCharacter inserts the character and its starter inventory in one
// transaction.
func (r *CharacterRepository) CreateCharacter(ctx context.Context, name string, skinID int, starterItems []domain.Item) (*domain.Character, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer SafeRollback(ctx, tx)

	row := tx.QueryRow(ctx, `
		INSERT INTO characters (character_name, skin_id)
		VALUES ($1, $2)
		RETURNING `+characterColumns,
		name, skinID)
	character, err := scanCharacter(row)
	if err != nil {
		return nil, translateConstraintErr(err)
	}

	for _, item := range starterItems {
		_, err := tx.Exec(ctx, `
			INSERT INTO character_inventory (character_id, item_id, item_count)
			VALUES ($1, $2, 1)
			ON CONFLICT (character_id, item_id)
			DO UPDATE SET item_count = character_inventory.item_count + 1`,
			character.ID, item.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to grant starter item %d: %w", item.ID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return character, nil
}

func (r *CharacterRepository) GetCharacterByID(ctx context.Context, characterID int) (*domain.Character, error) {
	row := r.db.QueryRow(ctx, `SELECT `+characterColumns+` FROM characters WHERE character_id = $1`, characterID)
	character, err := scanCharacter(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %d", domain.ErrCharacterNotFound, characterID)
		}
		return nil, fmt.Errorf("failed to get character: %w", err)
	}
	return character, nil
}

func (r *CharacterRepository) GetCharacterByName(ctx context.Context, name string) (*domain.Character, error) {
	row := r.db.QueryRow(ctx, `SELECT `+characterColumns+` FROM characters WHERE character_name = $1`, name)
	character, err := scanCharacter(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrCharacterNotFound, name)
		}
		return nil, fmt.Errorf("failed to get character by name: %w", err)
	}
	return character, nil
}

func (r *CharacterRepository) ListCharacters(ctx context.Context) ([]domain.Character, error) {
	rows, err := r.db.Query(ctx, `SELECT `+characterColumns+` FROM characters ORDER BY character_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list characters: %w", err)
	}
	defer rows.Close()

	characters := []domain.Character{}
	for rows.Next() {
		character, err := scanCharacter(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan character: %w", err)
		}
		characters = append(characters, *character)
	}
	return characters, rows.Err()
}

func (r *CharacterRepository) UpdateCharacter(ctx context.Context, characterID int, name *string, skinID *int) (*domain.Character, error) {
	row := r.db.QueryRow(ctx, `
		UPDATE characters
		SET character_name = COALESCE($2, character_name),
		    skin_id = COALESCE($3, skin_id),
		    updated_at = NOW()
		WHERE character_id = $1
		RETURNING `+characterColumns,
		characterID, name, skinID)
	character, err := scanCharacter(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %d", domain.ErrCharacterNotFound, characterID)
		}
		return nil, translateConstraintErr(err)
	}
	return character, nil
}

// DeleteCharacter removes the character; inventory and equipment rows cascade.
func (r *CharacterRepository) DeleteCharacter(ctx context.Context, characterID int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM characters WHERE character_id = $1`, characterID)
	if err != nil {
		return fmt.Errorf("failed to delete character: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %d", domain.ErrCharacterNotFound, characterID)
	}
	return nil
}

func (r *CharacterRepository) GetInventory(ctx context.Context, characterID int) ([]domain.InventoryEntry, error) {
	if _, err := r.GetCharacterByID(ctx, characterID); err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, `
		SELECT ci.item_id, i.item_name, ci.item_count
		FROM character_inventory ci
		JOIN items i USING (item_id)
		WHERE ci.character_id = $1
		ORDER BY ci.item_id`,
		characterID)
	if err != nil {
		return nil, fmt.Errorf("failed to get inventory: %w", err)
	}
	defer rows.Close()

	entries := []domain.InventoryEntry{}
	for rows.Next() {
		var entry domain.InventoryEntry
		if err := rows.Scan(&entry.ItemID, &entry.ItemName, &entry.Count); err != nil {
			return nil, fmt.Errorf("failed to scan inventory entry: %w", err)
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func (r *CharacterRepository) GetEquipment(ctx context.Context, characterID int) ([]domain.EquippedItem, error) {
	if _, err := r.GetCharacterByID(ctx, characterID); err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, `
		SELECT ce.item_id, i.item_name, ce.mounting_location, ce.i_hp, ce.i_power, ce.i_defense, ce.i_speed
		FROM character_items ce
		JOIN items i USING (item_id)
		WHERE ce.character_id = $1
		ORDER BY ce.mounting_location`,
		characterID)
	if err != nil {
		return nil, fmt.Errorf("failed to get equipment: %w", err)
	}
	defer rows.Close()

	equipped := []domain.EquippedItem{}
	for rows.Next() {
		var e domain.EquippedItem
		if err := rows.Scan(&e.ItemID, &e.ItemName, &e.MountingLocation, &e.Stats.HP, &e.Stats.Power, &e.Stats.Defense, &e.Stats.Speed); err != nil {
			return nil, fmt.Errorf("failed to scan equipped item: %w", err)
		}
		equipped = append(equipped, e)
	}
	return equipped, rows.Err()
}

// BeginTx starts a game transaction. Serialization happens when the
// transaction locks its character row.
func (r *CharacterRepository) BeginTx(ctx context.Context) (repository.GameTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return &gameTx{tx: tx}, nil
}
