// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /polls/list", middleware.WithLogging(handler))

Logs request start (method, path, remote) and completion (status,
human-readable response size, duration_ms).

# CORS Middleware

Enable cross-origin requests for frontend access. An empty origin list
allows any origin without credentials:

	server := http.Server{
		Handler: middleware.CORS(cfg.AllowedOrigins)(mux),
	}

# JSON Helpers

Every response uses the result envelope:

	middleware.OKResponse(w)                                   // {"result":{"status":"ok"}}
	middleware.ErrorResponse(w, http.StatusNotFound, "message") // {"result":{"status":"error","message":"message"}}
	middleware.JSONResponse(w, http.StatusOK, data)

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)
*/
package middleware
