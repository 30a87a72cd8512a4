package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yjsong/item-simulator/internal/domain"
)

// itemColumns is the select list shared by every item query.
const itemColumns = `item_id, item_name, item_description, price, i_hp, i_power, i_defense, i_speed, mounting_location, created_at, updated_at`

const skinColumns = `skin_id, skin_name, skin_description, imgurl, created_at`

// ItemRepository implements repository.Item for PostgreSQL
type ItemRepository struct {
	db *pgxpool.Pool
}

// NewItemRepository creates a new ItemRepository
func NewItemRepository(db *pgxpool.Pool) *ItemRepository {
	return &ItemRepository{db: db}
}

func scanItem(row characterRow) (*domain.Item, error) {
	var item domain.Item
	err := row.Scan(
		&item.ID, &item.Name, &item.Description, &item.Price,
		&item.Stats.HP, &item.Stats.Power, &item.Stats.Defense, &item.Stats.Speed,
		&item.MountingLocation, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *ItemRepository) InsertItem(ctx context.Context, item *domain.Item) (int, error) {
	var id int
	err := r.db.QueryRow(ctx, `
		INSERT INTO items (item_name, item_description, price, i_hp, i_power, i_defense, i_speed, mounting_location)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING item_id`,
		item.Name, item.Description, item.Price,
		item.Stats.HP, item.Stats.Power, item.Stats.Defense, item.Stats.Speed,
		string(item.MountingLocation)).Scan(&id)
	if err != nil {
		return 0, translateConstraintErr(err)
	}
	return id, nil
}

func (r *ItemRepository) GetItemByID(ctx context.Context, itemID int) (*domain.Item, error) {
	row := r.db.QueryRow(ctx, `SELECT `+itemColumns+` FROM items WHERE item_id = $1`, itemID)
	item, err := scanItem(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %d", domain.ErrItemNotFound, itemID)
		}
		return nil, fmt.Errorf("failed to get item: %w", err)
	}
	return item, nil
}

func (r *ItemRepository) GetItemByName(ctx context.Context, name string) (*domain.Item, error) {
	row := r.db.QueryRow(ctx, `SELECT `+itemColumns+` FROM items WHERE item_name = $1`, name)
	item, err := scanItem(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrItemNotFound, name)
		}
		return nil, fmt.Errorf("failed to get item by name: %w", err)
	}
	return item, nil
}

// GetItemsByNamePrefix serves the starter-item grant on character creation.
func (r *ItemRepository) GetItemsByNamePrefix(ctx context.Context, prefix string) ([]domain.Item, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+itemColumns+` FROM items WHERE item_name LIKE $1 || '%' ORDER BY item_id`, prefix)
	if err != nil {
		return nil, fmt.Errorf("failed to get items by prefix: %w", err)
	}
	defer rows.Close()
	return collectItems(rows)
}

func (r *ItemRepository) ListItems(ctx context.Context) ([]domain.Item, error) {
	rows, err := r.db.Query(ctx, `SELECT `+itemColumns+` FROM items ORDER BY item_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	defer rows.Close()
	return collectItems(rows)
}

func collectItems(rows pgx.Rows) ([]domain.Item, error) {
	items := []domain.Item{}
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}

func (r *ItemRepository) UpdateItem(ctx context.Context, itemID int, item *domain.Item) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE items
		SET item_name = $2, item_description = $3, price = $4,
		    i_hp = $5, i_power = $6, i_defense = $7, i_speed = $8,
		    mounting_location = $9, updated_at = NOW()
		WHERE item_id = $1`,
		itemID, item.Name, item.Description, item.Price,
		item.Stats.HP, item.Stats.Power, item.Stats.Defense, item.Stats.Speed,
		string(item.MountingLocation))
	if err != nil {
		return translateConstraintErr(err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %d", domain.ErrItemNotFound, itemID)
	}
	return nil
}

func (r *ItemRepository) DeleteItem(ctx context.Context, itemID int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM items WHERE item_id = $1`, itemID)
	if err != nil {
		return translateConstraintErr(err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %d", domain.ErrItemNotFound, itemID)
	}
	return nil
}

func scanSkin(row characterRow) (*domain.Skin, error) {
	var skin domain.Skin
	if err := row.Scan(&skin.ID, &skin.Name, &skin.Description, &skin.ImgURL, &skin.CreatedAt); err != nil {
		return nil, err
	}
	return &skin, nil
}

func (r *ItemRepository) InsertSkin(ctx context.Context, skin *domain.Skin) (int, error) {
	var id int
	err := r.db.QueryRow(ctx, `
		INSERT INTO skins (skin_name, skin_description, imgurl)
		VALUES ($1, $2, $3)
		RETURNING skin_id`,
		skin.Name, skin.Description, skin.ImgURL).Scan(&id)
	if err != nil {
		return 0, translateConstraintErr(err)
	}
	return id, nil
}

func (r *ItemRepository) GetSkinByID(ctx context.Context, skinID int) (*domain.Skin, error) {
	row := r.db.QueryRow(ctx, `SELECT `+skinColumns+` FROM skins WHERE skin_id = $1`, skinID)
	skin, err := scanSkin(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %d", domain.ErrSkinNotFound, skinID)
		}
		return nil, fmt.Errorf("failed to get skin: %w", err)
	}
	return skin, nil
}

func (r *ItemRepository) ListSkins(ctx context.Context) ([]domain.Skin, error) {
	rows, err := r.db.Query(ctx, `SELECT `+skinColumns+` FROM skins ORDER BY skin_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list skins: %w", err)
	}
	defer rows.Close()

	skins := []domain.Skin{}
	for rows.Next() {
		skin, err := scanSkin(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan skin: %w", err)
		}
		skins = append(skins, *skin)
	}
	return skins, rows.Err()
}

func (r *ItemRepository) UpdateSkin(ctx context.Context, skinID int, skin *domain.Skin) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE skins SET skin_name = $2, skin_description = $3, imgurl = $4 WHERE skin_id = $1`,
		skinID, skin.Name, skin.Description, skin.ImgURL)
	if err != nil {
		return translateConstraintErr(err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %d", domain.ErrSkinNotFound, skinID)
	}
	return nil
}

func (r *ItemRepository) DeleteSkin(ctx context.Context, skinID int) error {
	if skinID == domain.DefaultSkinID {
		return fmt.Errorf("%w: default skin cannot be deleted", domain.ErrInvalidInput)
	}
	tag, err := r.db.Exec(ctx, `DELETE FROM skins WHERE skin_id = $1`, skinID)
	if err != nil {
		return translateConstraintErr(err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %d", domain.ErrSkinNotFound, skinID)
	}
	return nil
}
