// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the quickpoll API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(polls.NewRepository(store))

# Endpoints

Health:

	GET /health

Polls:

	GET    /polls/list                    - List polls with vote counts
	POST   /polls/create                  - Create poll (form: title, option1, option2)
	POST   /polls/vote/{pollid}/{option}  - Vote for option 1 or 2
	DELETE /polls/vote/{pollid}           - Delete poll

Any path not listed answers 404, any other method on a listed path 405.
*/
package router
