package postgres

// PostgreSQL error codes we translate into domain errors
const (
	pgErrUniqueViolation     = "23505"
	pgErrForeignKeyViolation = "23503"
	pgErrCheckViolation      = "23514"
)

// characterColumns is the select list shared by every character query.
const characterColumns = `character_id, character_name, skin_id, level, hp, power, defense, speed, money, created_at, updated_at`
