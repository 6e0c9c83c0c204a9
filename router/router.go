// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/quickpoll/handlers"
	"github.com/danielhkuo/quickpoll/middleware"
)

func NewRouter(polls handlers.PollService) *http.ServeMux {
	mux := http.NewServeMux()

	pollHandler := handlers.NewPollHandler(polls)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Polls
	mux.HandleFunc("GET /polls/list", middleware.WithLogging(pollHandler.ListPolls))
	mux.HandleFunc("POST /polls/create", middleware.WithLogging(pollHandler.CreatePoll))
	mux.HandleFunc("POST /polls/vote/{pollid}/{option}", middleware.WithLogging(pollHandler.CastVote))
	mux.HandleFunc("DELETE /polls/vote/{pollid}", middleware.WithLogging(pollHandler.DeletePoll))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("quickpoll API v1"))
	})

	return mux
}
