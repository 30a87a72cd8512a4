package schema

// SchemaSQL contains the full database schema initialization script
const SchemaSQL = `
-- Skins Table
CREATE TABLE IF NOT EXISTS skins (
    skin_id SERIAL PRIMARY KEY,
    skin_name VARCHAR(100) UNIQUE NOT NULL,
    skin_description TEXT NOT NULL DEFAULT '',
    imgurl TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

-- Seed the default skin at id 0; characters created without a skin use it.
INSERT INTO skins (skin_id, skin_name, skin_description)
VALUES (0, '기본', '기본 외형')
ON CONFLICT DO NOTHING;

-- Items Table
CREATE TABLE IF NOT EXISTS items (
    item_id SERIAL PRIMARY KEY,
    item_name VARCHAR(100) UNIQUE NOT NULL,
    item_description TEXT NOT NULL DEFAULT '',
    price INTEGER NOT NULL DEFAULT 0 CHECK (price >= 0),
    i_hp INTEGER NOT NULL DEFAULT 0,
    i_power INTEGER NOT NULL DEFAULT 0,
    i_defense INTEGER NOT NULL DEFAULT 0,
    i_speed INTEGER NOT NULL DEFAULT 0,
    mounting_location VARCHAR(20) NOT NULL CHECK (mounting_location IN ('모자', '갑옷', '바지', '로브')),
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

-- Characters Table
CREATE TABLE IF NOT EXISTS characters (
    character_id SERIAL PRIMARY KEY,
    character_name VARCHAR(50) UNIQUE NOT NULL,
    skin_id INTEGER NOT NULL DEFAULT 0 REFERENCES skins(skin_id) ON DELETE SET DEFAULT,
    level INTEGER NOT NULL DEFAULT 1,
    hp INTEGER NOT NULL DEFAULT 500,
    power INTEGER NOT NULL DEFAULT 100,
    defense INTEGER NOT NULL DEFAULT 50,
    speed INTEGER NOT NULL DEFAULT 30,
    money INTEGER NOT NULL DEFAULT 10000 CHECK (money >= 0),
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

-- Character Inventory Table: count of unequipped copies per item.
-- Rows are deleted when the count reaches zero.
CREATE TABLE IF NOT EXISTS character_inventory (
    character_inventory_id SERIAL PRIMARY KEY,
    character_id INTEGER NOT NULL REFERENCES characters(character_id) ON DELETE CASCADE,
    item_id INTEGER NOT NULL REFERENCES items(item_id) ON DELETE CASCADE,
    item_count INTEGER NOT NULL CHECK (item_count > 0),
    UNIQUE (character_id, item_id)
);

-- Character Items Table: one row per occupied equipment slot, with the stat
-- deltas snapshotted at equip time.
CREATE TABLE IF NOT EXISTS character_items (
    character_item_id SERIAL PRIMARY KEY,
    character_id INTEGER NOT NULL REFERENCES characters(character_id) ON DELETE CASCADE,
    item_id INTEGER NOT NULL REFERENCES items(item_id) ON DELETE RESTRICT,
    mounting_location VARCHAR(20) NOT NULL,
    i_hp INTEGER NOT NULL DEFAULT 0,
    i_power INTEGER NOT NULL DEFAULT 0,
    i_defense INTEGER NOT NULL DEFAULT 0,
    i_speed INTEGER NOT NULL DEFAULT 0,
    UNIQUE (character_id, mounting_location)
);

CREATE INDEX IF NOT EXISTS idx_character_inventory_character ON character_inventory(character_id);
CREATE INDEX IF NOT EXISTS idx_character_items_character ON character_items(character_id);
CREATE INDEX IF NOT EXISTS idx_items_name ON items(item_name);
`
