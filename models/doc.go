// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines domain, document, and response types for the API.

# Domain Types

  - Poll: id, title, option1, option2, votes1, votes2
  - PollDocument: the JSON body stored for a poll (no id or revision)

# Response Types

Every response carries a result envelope:

	{"result": {"status": "ok", "id": "..."}}
	{"result": {"status": "error", "message": "..."}}

  - ResultResponse: result only
  - ListPollsResponse: result plus polls

# Constants

Result status values:

	StatusOK    = "ok"
	StatusError = "error"

Vote options:

	Option1 = "1"
	Option2 = "2"
*/
package models
