// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package docstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// SQLStore keeps one collection in a single (id, rev, body) table
type SQLStore struct {
	db         *sql.DB
	dialect    string
	collection string
}

// OpenSQL connects to Postgres or SQLite and makes sure the collection table exists
func OpenSQL(ctx context.Context, dialect, dsn, collection string) (*SQLStore, error) {
	if err := ValidateCollection(collection); err != nil {
		return nil, err
	}

	var driver string
	switch dialect {
	case TypePostgres:
		driver = "postgres"
	case TypeSQLite:
		driver = "sqlite"
	default:
		return nil, fmt.Errorf("unsupported SQL dialect %q", dialect)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite allows a single writer; one connection keeps conditional writes serialized
	if dialect == TypeSQLite {
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	if err := CreateSchema(ctx, db, dialect, collection); err != nil {
		db.Close()
		return nil, err
	}

	slog.Info("document store ready", "type", dialect, "collection", collection)

	return &SQLStore{db: db, dialect: dialect, collection: collection}, nil
}

// Create implements Store
func (s *SQLStore) Create(ctx context.Context, body []byte) (string, string, error) {
	id := newID()
	rev := NextRevision("", body)

	_, err := s.db.ExecContext(ctx, s.query(`
		INSERT INTO %s (id, rev, body)
		VALUES (?, ?, ?)
	`), id, rev, string(body))
	if err != nil {
		return "", "", fmt.Errorf("failed to insert document: %w", err)
	}

	return id, rev, nil
}

// Retrieve implements Store
func (s *SQLStore) Retrieve(ctx context.Context, id string) (*Document, error) {
	doc := Document{ID: id}
	var body []byte

	err := s.db.QueryRowContext(ctx, s.query(`
		SELECT rev, body FROM %s WHERE id = ?
	`), id).Scan(&doc.Rev, &body)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query document: %w", err)
	}

	doc.Body = body
	return &doc, nil
}

// Update implements Store
func (s *SQLStore) Update(ctx context.Context, id, rev string, body []byte) (string, error) {
	newRev := NextRevision(rev, body)

	res, err := s.db.ExecContext(ctx, s.query(`
		UPDATE %s
		SET rev = ?, body = ?
		WHERE id = ? AND rev = ?
	`), newRev, string(body), id, rev)
	if err != nil {
		return "", fmt.Errorf("failed to update document: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return "", fmt.Errorf("failed to update document: %w", err)
	}
	if n == 0 {
		return "", s.missingOrConflict(ctx, id)
	}

	return newRev, nil
}

// Delete implements Store
func (s *SQLStore) Delete(ctx context.Context, id, rev string) error {
	res, err := s.db.ExecContext(ctx, s.query(`
		DELETE FROM %s WHERE id = ? AND rev = ?
	`), id, rev)
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	if n == 0 {
		return s.missingOrConflict(ctx, id)
	}

	return nil
}

// List implements Store
func (s *SQLStore) List(ctx context.Context) ([]Document, error) {
	rows, err := s.db.QueryContext(ctx, s.query(`
		SELECT id, rev, body FROM %s ORDER BY id
	`))
	if err != nil {
		return nil, fmt.Errorf("failed to query documents: %w", err)
	}
	defer rows.Close()

	docs := []Document{}
	for rows.Next() {
		var doc Document
		var body []byte
		if err := rows.Scan(&doc.ID, &doc.Rev, &body); err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		doc.Body = body
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read documents: %w", err)
	}

	return docs, nil
}

// Close implements Store
func (s *SQLStore) Close() error {
	return s.db.Close()
}

// DB exposes the underlying connection pool
func (s *SQLStore) DB() *sql.DB {
	return s.db
}

// missingOrConflict explains why a conditional write matched no rows
func (s *SQLStore) missingOrConflict(ctx context.Context, id string) error {
	var rev string
	err := s.db.QueryRowContext(ctx, s.query(`
		SELECT rev FROM %s WHERE id = ?
	`), id).Scan(&rev)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to query document: %w", err)
	}
	return ErrConflict
}

// query fills in the table name and rewrites ? placeholders to $N for Postgres
func (s *SQLStore) query(q string) string {
	q = fmt.Sprintf(q, s.collection)
	if s.dialect != TypePostgres {
		return q
	}

	var b strings.Builder
	n := 0
	for _, c := range q {
		if c == '?' {
			n++
			b.WriteString("$" + strconv.Itoa(n))
			continue
		}
		b.WriteRune(c)
	}
	return b.String()
}
