// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

A .env file in the working directory is loaded first, if present.

# Config Fields

  - Port: Server listen port (default: 8090)
  - DatabaseURL: SQLite path, PostgreSQL DSN or Tarantool address (required)
  - DatabaseType: sqlite, postgres or tarantool (default: sqlite)
  - Collection: table or space name for polls (default: polls)
  - TarantoolUser, TarantoolPass: Tarantool credentials (env only)
  - AllowedOrigins: CORS origins (default: any origin, no credentials)

# CLI Flags

	-p  Server port
	-d  Database URL
	-t  Database type
	-c  Collection
	-o  Comma-separated CORS origins

# Environment Variables

Flags fall back to environment variables:

	PORT             → -p
	DATABASE_URL     → -d
	DATABASE_TYPE    → -t
	POLLS_COLLECTION → -c
	CORS_ORIGINS     → -o

CLI flags take precedence over environment variables.
*/
package cliparse
