// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package docstore

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/tarantool/go-tarantool"
)

// Conditional writes run as one Lua chunk so the revision check and the
// write happen in the same transaction on the server.
const (
	luaEnsureSpace = `
local name = ...
if box.space[name] == nil then
    local s = box.schema.space.create(name, {if_not_exists = true})
    s:create_index('primary', {parts = {1, 'string'}, if_not_exists = true})
end
return box.space[name]:len()
`

	luaUpdate = `
local name, id, rev, newrev, body = ...
local t = box.space[name]:get(id)
if t == nil then return 'not_found' end
if t[2] ~= rev then return 'conflict' end
box.space[name]:replace({id, newrev, body})
return 'ok'
`

	luaDelete = `
local name, id, rev = ...
local t = box.space[name]:get(id)
if t == nil then return 'not_found' end
if t[2] ~= rev then return 'conflict' end
box.space[name]:delete(id)
return 'ok'
`
)

// TarantoolStore keeps one collection in a Tarantool space of {id, rev, body} tuples
type TarantoolStore struct {
	conn  *tarantool.Connection
	space string
}

// OpenTarantool connects and creates the space when it does not exist yet
func OpenTarantool(addr, collection string, opts tarantool.Opts) (*TarantoolStore, error) {
	if err := ValidateCollection(collection); err != nil {
		return nil, err
	}

	slog.Info("Connecting to Tarantool", "addr", addr)

	conn, err := tarantool.Connect(addr, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to tarantool: %w", err)
	}

	if _, err := conn.Eval(luaEnsureSpace, []interface{}{collection}); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to prepare %s space: %w", collection, err)
	}

	slog.Info("document store ready", "type", TypeTarantool, "collection", collection)

	return &TarantoolStore{conn: conn, space: collection}, nil
}

// Create implements Store
func (s *TarantoolStore) Create(ctx context.Context, body []byte) (string, string, error) {
	id := newID()
	rev := NextRevision("", body)

	_, err := s.conn.Insert(s.space, []interface{}{id, rev, string(body)})
	if err != nil {
		return "", "", fmt.Errorf("failed to insert document: %w", err)
	}

	return id, rev, nil
}

// Retrieve implements Store
func (s *TarantoolStore) Retrieve(ctx context.Context, id string) (*Document, error) {
	resp, err := s.conn.Select(s.space, "primary", 0, 1, tarantool.IterEq, []interface{}{id})
	if err != nil {
		return nil, fmt.Errorf("tarantool select error: %w", err)
	}

	if len(resp.Data) == 0 {
		return nil, ErrNotFound
	}

	return decodeTuple(resp.Data[0])
}

// Update implements Store
func (s *TarantoolStore) Update(ctx context.Context, id, rev string, body []byte) (string, error) {
	newRev := NextRevision(rev, body)

	resp, err := s.conn.Eval(luaUpdate, []interface{}{s.space, id, rev, newRev, string(body)})
	if err != nil {
		return "", fmt.Errorf("failed to update document: %w", err)
	}

	if err := evalOutcome(resp); err != nil {
		return "", err
	}
	return newRev, nil
}

// Delete implements Store
func (s *TarantoolStore) Delete(ctx context.Context, id, rev string) error {
	resp, err := s.conn.Eval(luaDelete, []interface{}{s.space, id, rev})
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}

	return evalOutcome(resp)
}

// List implements Store
func (s *TarantoolStore) List(ctx context.Context) ([]Document, error) {
	resp, err := s.conn.Select(s.space, "primary", 0, math.MaxUint32, tarantool.IterAll, []interface{}{})
	if err != nil {
		return nil, fmt.Errorf("tarantool select error: %w", err)
	}

	docs := make([]Document, 0, len(resp.Data))
	for _, tuple := range resp.Data {
		doc, err := decodeTuple(tuple)
		if err != nil {
			slog.Warn("Invalid tuple format in Tarantool response", "data", tuple)
			return nil, err
		}
		docs = append(docs, *doc)
	}

	return docs, nil
}

// Close implements Store
func (s *TarantoolStore) Close() error {
	slog.Info("Closing Tarantool connection")
	return s.conn.Close()
}

func decodeTuple(tuple interface{}) (*Document, error) {
	fields, ok := tuple.([]interface{})
	if !ok || len(fields) < 3 {
		return nil, fmt.Errorf("invalid Tarantool tuple")
	}

	id, ok1 := fields[0].(string)
	rev, ok2 := fields[1].(string)
	body, ok3 := fields[2].(string)
	if !ok1 || !ok2 || !ok3 {
		return nil, fmt.Errorf("invalid Tarantool tuple")
	}

	return &Document{ID: id, Rev: rev, Body: []byte(body)}, nil
}

func evalOutcome(resp *tarantool.Response) error {
	if len(resp.Data) == 0 {
		return fmt.Errorf("empty Tarantool response")
	}

	outcome, _ := resp.Data[0].(string)
	switch outcome {
	case "ok":
		return nil
	case "not_found":
		return ErrNotFound
	case "conflict":
		return ErrConflict
	default:
		return fmt.Errorf("unexpected Tarantool response %v", resp.Data[0])
	}
}
