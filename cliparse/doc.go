// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 8000)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - DatabaseURL: connection string (default for sqlite: file:polls.db)
  - AdminKeySalt: Secret for admin key HMAC (required)
  - SeedFile: YAML fixtures loaded at startup (optional)
  - LogLevel: slog level (default: info)

# CLI Flags

	-p            Server port
	-d            Database URL
	-t            Database type
	--admin-salt  Admin key salt
	--seed        Fixture file
	--log-level   debug, info, warn or error

# Environment Variables

Flags fall back to environment variables:

	PORT           → -p
	DATABASE_URL   → -d
	DATABASE_TYPE  → -t
	ADMIN_KEY_SALT → --admin-salt
	SEED_FILE      → --seed
	LOG_LEVEL      → --log-level

CLI flags take precedence over environment variables. LoadDotEnv reads a
.env file into the environment first; variables already set win.

# Validation

ParseFlags returns an error if:

  - ADMIN_KEY_SALT is missing
  - DATABASE_TYPE is not sqlite or postgres
  - DATABASE_URL is missing for postgres
  - PORT or LOG_LEVEL cannot be parsed
*/
package cliparse
