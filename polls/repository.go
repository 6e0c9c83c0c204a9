// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package polls

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/pkg/errors"

	"github.com/danielhkuo/quickpoll/docstore"
	"github.com/danielhkuo/quickpoll/models"
)

var (
	ErrNotFound = docstore.ErrNotFound
	ErrConflict = docstore.ErrConflict
)

// ValidationError reports a required field that was empty after trimming
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return e.Field + " is required"
}

// Steps of a poll operation that can fail
const (
	StepRead  = "read"
	StepWrite = "write"
)

// StepError records which step of CastVote or RemovePoll failed.
// Read covers fetching and decoding the poll, write covers the conditional
// update or delete.
type StepError struct {
	Step string
	Err  error
}

func (e *StepError) Error() string {
	return e.Err.Error()
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// FailedStep returns the step recorded in err, or "" if err carries none
func FailedStep(err error) string {
	var serr *StepError
	if errors.As(err, &serr) {
		return serr.Step
	}
	return ""
}

// Repository stores polls as documents in a docstore.Store
type Repository struct {
	store docstore.Store
}

func NewRepository(store docstore.Store) *Repository {
	return &Repository{store: store}
}

// CreatePoll inserts a new poll with both counters at zero and returns its id
func (r *Repository) CreatePoll(ctx context.Context, title, option1, option2 string) (string, error) {
	doc := models.PollDocument{
		Title:   strings.TrimSpace(title),
		Option1: strings.TrimSpace(option1),
		Option2: strings.TrimSpace(option2),
	}

	for _, f := range []struct{ name, value string }{
		{models.FieldTitle, doc.Title},
		{models.FieldOption1, doc.Option1},
		{models.FieldOption2, doc.Option2},
	} {
		if f.value == "" {
			return "", &ValidationError{Field: f.name}
		}
	}

	body, err := json.Marshal(doc)
	if err != nil {
		return "", errors.Wrap(err, "failed to encode poll")
	}

	id, rev, err := r.store.Create(ctx, body)
	if err != nil {
		return "", errors.Wrap(err, "failed to create poll")
	}

	slog.Info("poll created", "poll_id", id, "rev", rev)
	return id, nil
}

// CastVote adds one vote to option "1" or "2" of a poll.
// Any other option rewrites the poll unchanged. The write is conditioned on
// the revision just read and is attempted once; a concurrent change yields
// ErrConflict and the caller decides whether to retry.
func (r *Repository) CastVote(ctx context.Context, pollID, option string) error {
	current, err := r.store.Retrieve(ctx, pollID)
	if err != nil {
		return &StepError{Step: StepRead, Err: errors.Wrapf(err, "failed to retrieve poll %s", pollID)}
	}

	var doc models.PollDocument
	if err := json.Unmarshal(current.Body, &doc); err != nil {
		return &StepError{Step: StepRead, Err: errors.Wrapf(err, "failed to decode poll %s", pollID)}
	}

	switch option {
	case models.Option1:
		doc.Votes1++
	case models.Option2:
		doc.Votes2++
	}

	body, err := json.Marshal(doc)
	if err != nil {
		return &StepError{Step: StepWrite, Err: errors.Wrap(err, "failed to encode poll")}
	}

	rev, err := r.store.Update(ctx, current.ID, current.Rev, body)
	if err != nil {
		return &StepError{Step: StepWrite, Err: errors.Wrapf(err, "failed to update poll %s", pollID)}
	}

	slog.Info("vote cast", "poll_id", pollID, "option", option, "rev", rev)
	return nil
}

// RemovePoll deletes the current revision of a poll
func (r *Repository) RemovePoll(ctx context.Context, pollID string) error {
	current, err := r.store.Retrieve(ctx, pollID)
	if err != nil {
		return &StepError{Step: StepRead, Err: errors.Wrapf(err, "failed to retrieve poll %s", pollID)}
	}

	if err := r.store.Delete(ctx, current.ID, current.Rev); err != nil {
		return &StepError{Step: StepWrite, Err: errors.Wrapf(err, "failed to delete poll %s", pollID)}
	}

	slog.Info("poll deleted", "poll_id", pollID)
	return nil
}

// ListPolls returns every poll ordered by id
func (r *Repository) ListPolls(ctx context.Context) ([]models.Poll, error) {
	docs, err := r.store.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list polls")
	}

	polls := make([]models.Poll, 0, len(docs))
	for _, d := range docs {
		var doc models.PollDocument
		if err := json.Unmarshal(d.Body, &doc); err != nil {
			return nil, errors.Wrapf(err, "failed to decode poll %s", d.ID)
		}
		polls = append(polls, models.Poll{
			ID:      d.ID,
			Title:   doc.Title,
			Option1: doc.Option1,
			Option2: doc.Option2,
			Votes1:  doc.Votes1,
			Votes2:  doc.Votes2,
		})
	}

	return polls, nil
}
