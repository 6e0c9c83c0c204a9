// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/quickpoll/docstore"
	"github.com/danielhkuo/quickpoll/models"
)

// TestCollection is the collection name used by every test store
const TestCollection = "polls"

// SetupTestStore opens a fresh SQLite-backed store in a temporary directory
func SetupTestStore(t *testing.T) *docstore.SQLStore {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "polls.db")
	store, err := docstore.OpenSQL(context.Background(), docstore.TypeSQLite, dsn, TestCollection)
	require.NoError(t, err, "Failed to open test store")

	t.Cleanup(func() { store.Close() })
	return store
}

// CreateTestPoll stores a poll document with the given counters and returns its id
func CreateTestPoll(t *testing.T, store docstore.Store, title string, votes1, votes2 int) string {
	t.Helper()

	body, err := json.Marshal(models.PollDocument{
		Title:   title,
		Option1: "Option A",
		Option2: "Option B",
		Votes1:  votes1,
		Votes2:  votes2,
	})
	require.NoError(t, err)

	id, _, err := store.Create(context.Background(), body)
	require.NoError(t, err, "Failed to create test poll")

	return id
}

// GetTestPoll reads a poll document back from the store
func GetTestPoll(t *testing.T, store docstore.Store, id string) (models.PollDocument, string) {
	t.Helper()

	doc, err := store.Retrieve(context.Background(), id)
	require.NoError(t, err, "Failed to retrieve test poll")

	var poll models.PollDocument
	require.NoError(t, json.Unmarshal(doc.Body, &poll))

	return poll, doc.Rev
}

// MakeFormRequest creates a form-encoded HTTP test request
func MakeFormRequest(method, path string, form url.Values) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
