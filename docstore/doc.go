// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package docstore is a small revisioned document store.

# Documents

Every document is an opaque JSON body with a store-assigned id and a
revision token:

	id, rev, err := store.Create(ctx, body)
	doc, err := store.Retrieve(ctx, id)
	rev, err = store.Update(ctx, doc.ID, doc.Rev, newBody)
	err = store.Delete(ctx, doc.ID, rev)
	docs, err := store.List(ctx)

Ids are 32 lowercase hex characters. Revisions look like "3-<md5>": the
number is the generation and grows by one on every update.

# Optimistic Concurrency

Update and Delete only succeed when the supplied revision is still the
current one. Otherwise they return:

  - ErrNotFound: the document does not exist
  - ErrConflict: the document exists but has moved to another revision

Nothing is retried; the caller re-reads and tries again if it wants to.

# Backends

Open picks a backend from cliparse.Config.DatabaseType:

  - sqlite: modernc.org/sqlite, DATABASE_URL is a file path or DSN
  - postgres: lib/pq, DATABASE_URL is a connection string
  - tarantool: go-tarantool, DATABASE_URL is host:port

SQL backends keep a collection in one table:

	CREATE TABLE IF NOT EXISTS polls (
	    id TEXT PRIMARY KEY,
	    rev TEXT NOT NULL,
	    body JSONB NOT NULL -- TEXT on sqlite
	);

Tarantool keeps {id, rev, body} tuples in a space of the same name and
checks revisions inside a Lua chunk.
*/
package docstore
