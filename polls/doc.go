// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package polls stores polls as documents in a docstore.Store.

	repo := polls.NewRepository(store)
	id, err := repo.CreatePoll(ctx, "Lunch?", "Pizza", "Sushi")
	err = repo.CastVote(ctx, id, "1")

CastVote reads the poll, bumps one counter and writes it back against the
revision it read. It never retries: a concurrent vote shows up as
ErrConflict. Errors are wrapped with github.com/pkg/errors and still match
ErrNotFound and ErrConflict through errors.Is.
*/
package polls
