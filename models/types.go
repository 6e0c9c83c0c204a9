// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// Result status constants
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// Vote option constants
const (
	Option1 = "1"
	Option2 = "2"
)

// Form field names accepted by POST /polls/create
const (
	FieldTitle   = "title"
	FieldOption1 = "option1"
	FieldOption2 = "option2"
)

// Domain types

type Poll struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Option1 string `json:"option1"`
	Option2 string `json:"option2"`
	Votes1  int    `json:"votes1"`
	Votes2  int    `json:"votes2"`
}

// PollDocument is the stored body of a poll; id and revision live outside it
type PollDocument struct {
	Title   string `json:"title"`
	Option1 string `json:"option1"`
	Option2 string `json:"option2"`
	Votes1  int    `json:"votes1"`
	Votes2  int    `json:"votes2"`
}

// Response types

type Result struct {
	Status  string `json:"status"`
	ID      string `json:"id,omitempty"`
	Message string `json:"message,omitempty"`
}

// ResultResponse is the envelope every endpoint answers with
type ResultResponse struct {
	Result Result `json:"result"`
}

type ListPollsResponse struct {
	Result Result `json:"result"`
	Polls  []Poll `json:"polls"`
}
