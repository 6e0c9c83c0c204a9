// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package docstore

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrNotFound = errors.New("document not found")
	ErrConflict = errors.New("document update conflict")
)

// Backend names accepted by Open
const (
	TypeSQLite    = "sqlite"
	TypePostgres  = "postgres"
	TypeTarantool = "tarantool"
)

var collectionPattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// Document is one stored version of a JSON body.
// The (ID, Rev) pair identifies exactly one version.
type Document struct {
	ID   string
	Rev  string
	Body json.RawMessage
}

// Store is a revisioned document collection.
type Store interface {
	// Create inserts a new document and returns its id and first revision
	Create(ctx context.Context, body []byte) (id, rev string, err error)
	// Retrieve returns the current version of a document
	Retrieve(ctx context.Context, id string) (*Document, error)
	// Update replaces the body only if rev is still current, returning the new revision
	Update(ctx context.Context, id, rev string, body []byte) (string, error)
	// Delete removes the document only if rev is still current
	Delete(ctx context.Context, id, rev string) error
	// List returns every document ordered by id
	List(ctx context.Context) ([]Document, error)
	Close() error
}

// ValidateCollection rejects names that are not safe table/space identifiers
func ValidateCollection(name string) error {
	if !collectionPattern.MatchString(name) {
		return fmt.Errorf("invalid collection name %q", name)
	}
	return nil
}

// NextRevision derives the revision that follows prev for the given body.
// An empty prev yields a generation 1 revision.
func NextRevision(prev string, body []byte) string {
	gen := 0
	if prev != "" {
		gen = RevisionGeneration(prev)
	}

	h := md5.New()
	h.Write([]byte(prev))
	h.Write(body)

	return strconv.Itoa(gen+1) + "-" + hex.EncodeToString(h.Sum(nil))
}

// RevisionGeneration returns the numeric prefix of a revision, or 0 if malformed
func RevisionGeneration(rev string) int {
	prefix, _, ok := strings.Cut(rev, "-")
	if !ok {
		return 0
	}
	gen, err := strconv.Atoi(prefix)
	if err != nil {
		return 0
	}
	return gen
}

// newID returns a 32 character lowercase hex document id
func newID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
