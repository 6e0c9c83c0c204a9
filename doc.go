// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the quickpoll API server.

quickpoll is a two-option polling backend. Polls are stored as JSON
documents with a revision token; votes are counted with optimistic
concurrency, so two votes racing on the same revision yield one success
and one 409 the client can retry.

# Starting the Server

	DATABASE_URL=polls.db go run .

Or with flags:

	go run . -p 8090 -t postgres -d "postgres://..."
	go run . -t tarantool -d localhost:3301

Settings may also live in a .env file in the working directory.

# Configuration

Required settings:

  - DATABASE_URL (-d): SQLite path, PostgreSQL connection string, or Tarantool host:port

Optional settings:

  - PORT (-p): Server port (default: 8090)
  - DATABASE_TYPE (-t): sqlite, postgres or tarantool (default: sqlite)
  - POLLS_COLLECTION (-c): table or space holding polls (default: polls)
  - TARANTOOL_USER, TARANTOOL_PASS: Tarantool credentials

# Architecture

The server wires its pieces explicitly, each handed to the next:

  - docstore: revisioned document store (SQLite, PostgreSQL, Tarantool)
  - polls: poll repository on top of a docstore.Store
  - handlers: HTTP handlers on top of the repository
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON envelope helpers
  - models: Domain and response types
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
