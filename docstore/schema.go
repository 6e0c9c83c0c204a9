// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package docstore

import (
	"context"
	"database/sql"
	"fmt"
)

// CreateSchema creates the collection table for the given dialect.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(ctx context.Context, db *sql.DB, dialect, collection string) error {
	if err := ValidateCollection(collection); err != nil {
		return err
	}

	var schema string
	switch dialect {
	case TypePostgres:
		schema = postgresSchema
	case TypeSQLite:
		schema = sqliteSchema
	default:
		return fmt.Errorf("unsupported SQL dialect %q", dialect)
	}

	_, err := db.ExecContext(ctx, fmt.Sprintf(schema, collection))
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const postgresSchema = `
CREATE TABLE IF NOT EXISTS %[1]s (
    id TEXT PRIMARY KEY,
    rev TEXT NOT NULL,
    body JSONB NOT NULL
);
`

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS %[1]s (
    id TEXT PRIMARY KEY,
    rev TEXT NOT NULL,
    body TEXT NOT NULL
);
`
