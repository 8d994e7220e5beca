// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the polls API server.

Questions carry a pub_date. They stay hidden from every public route until
that instant has passed, and count as recently published for the 24 hours
that follow.

# Starting the Server

	ADMIN_KEY_SALT=secret go run .

Or with flags:

	go run . -p 8000 -t postgres -d "postgres://..." --admin-salt secret --seed seed.yaml

A .env file in the working directory is read first.

# Configuration

Required settings:

  - ADMIN_KEY_SALT (--admin-salt): Secret for admin key HMAC

Optional settings:

  - PORT (-p): Server port (default: 8000)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DATABASE_URL (-d): Connection string (default: file:polls.db)
  - SEED_FILE (--seed): YAML questions to load at startup
  - LOG_LEVEL (--log-level): debug, info, warn or error

# Architecture

  - policy: publication visibility and recency rules
  - handlers: HTTP request handlers (questions, voting)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Domain, request and response types
  - auth: Admin keys and IP hashing
  - db: Connections, schema, Store and fixtures
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
