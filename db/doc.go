// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles connections, schema creation, and question storage.

# Connections

Open supports two database types:

	conn, err := db.Open(db.TypeSQLite, "file:polls.db")
	conn, err := db.Open(db.TypePostgres, "postgres://...")

SQLite uses modernc.org/sqlite (pure Go) and is limited to one open
connection. PostgreSQL uses github.com/lib/pq.

# Schema Creation

CreateSchema initializes all required tables for the given database type:

	if err := db.CreateSchema(conn, cfg.DatabaseType); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - question: question_text and pub_date
  - choice: choice_text and vote count per question

	question 1──* choice

The foreign key uses ON DELETE CASCADE.

# Store

Store wraps *sql.DB with the queries the handlers need:

	store := db.NewStore(conn)
	q, err := store.QuestionByID(ctx, id) // policy.ErrNotFound if absent

Store never filters by publication date. Visibility is decided by package
policy so the rule lives in one place.

# Fixtures

LoadFixtures seeds questions and choices from a YAML file. See Fixtures for
the format.
*/
package db
