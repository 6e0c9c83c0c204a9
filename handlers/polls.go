// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/quickpoll/middleware"
	"github.com/danielhkuo/quickpoll/models"
	"github.com/danielhkuo/quickpoll/polls"
)

// PollService is the poll repository as seen by the HTTP layer
type PollService interface {
	CreatePoll(ctx context.Context, title, option1, option2 string) (string, error)
	CastVote(ctx context.Context, pollID, option string) error
	RemovePoll(ctx context.Context, pollID string) error
	ListPolls(ctx context.Context) ([]models.Poll, error)
}

type PollHandler struct {
	polls PollService
}

func NewPollHandler(polls PollService) *PollHandler {
	return &PollHandler{polls: polls}
}

// ListPolls handles GET /polls/list
// Store failures are reported in the body with status 200.
func (h *PollHandler) ListPolls(w http.ResponseWriter, r *http.Request) {
	list, err := h.polls.ListPolls(r.Context())
	if err != nil {
		slog.Error("failed to list polls", "error", err)
		middleware.ErrorResponse(w, http.StatusOK, err.Error())
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ListPollsResponse{
		Result: models.Result{Status: models.StatusOK},
		Polls:  list,
	})
}

// CreatePoll handles POST /polls/create
func (h *PollHandler) CreatePoll(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid form body")
		return
	}

	id, err := h.polls.CreatePoll(r.Context(),
		r.PostForm.Get(models.FieldTitle),
		r.PostForm.Get(models.FieldOption1),
		r.PostForm.Get(models.FieldOption2),
	)

	var verr *polls.ValidationError
	if errors.As(err, &verr) {
		middleware.ErrorResponse(w, http.StatusBadRequest, verr.Error())
		return
	}
	if err != nil {
		slog.Error("failed to create poll", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ResultResponse{
		Result: models.Result{Status: models.StatusOK, ID: id},
	})
}

// CastVote handles POST /polls/vote/{pollid}/{option}
// A poll that cannot be read answers 404; a failed write answers 409 with no
// message, most often because another vote landed first.
func (h *PollHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("pollid")
	option := r.PathValue("option")

	err := h.polls.CastVote(r.Context(), pollID, option)
	switch {
	case err == nil:
		middleware.OKResponse(w)
	case polls.FailedStep(err) == polls.StepRead:
		slog.Info("vote on unreadable poll", "poll_id", pollID, "error", err)
		middleware.ErrorResponse(w, http.StatusNotFound, err.Error())
	default:
		if errors.Is(err, polls.ErrConflict) {
			slog.Info("vote conflict", "poll_id", pollID)
		} else {
			slog.Error("failed to cast vote", "poll_id", pollID, "error", err)
		}
		middleware.JSONResponse(w, http.StatusConflict, models.ResultResponse{
			Result: models.Result{Status: models.StatusError},
		})
	}
}

// DeletePoll handles DELETE /polls/vote/{pollid}
// A poll that cannot be read answers 404; a failed delete answers 400.
func (h *PollHandler) DeletePoll(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("pollid")

	err := h.polls.RemovePoll(r.Context(), pollID)
	switch {
	case err == nil:
		middleware.OKResponse(w)
	case polls.FailedStep(err) == polls.StepRead:
		middleware.ErrorResponse(w, http.StatusNotFound, err.Error())
	default:
		slog.Error("failed to delete poll", "poll_id", pollID, "error", err)
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
	}
}
