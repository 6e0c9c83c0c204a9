// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the quickpoll API.

# Handler Types

PollHandler serves every poll endpoint. It depends on a PollService,
normally a *polls.Repository:

	pollHandler := handlers.NewPollHandler(polls.NewRepository(store))

# Endpoints

	GET    /polls/list                   → ListPolls
	POST   /polls/create                 → CreatePoll (form: title, option1, option2)
	POST   /polls/vote/{pollid}/{option} → CastVote
	DELETE /polls/vote/{pollid}          → DeletePoll

# Status Codes

	ListPolls   200 always; store errors go in the result message
	CreatePoll  400 empty field, 500 store failure
	CastVote    404 poll could not be read, 409 write failed (no message)
	DeletePoll  404 poll could not be read, 400 delete failed

The read/write split comes from polls.FailedStep. A 409 from CastVote
usually means another vote landed first; the client should vote again.
*/
package handlers
