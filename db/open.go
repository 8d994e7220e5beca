// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Supported database types
const (
	TypeSQLite   = "sqlite"
	TypePostgres = "postgres"
)

// Open connects to the database and verifies the connection.
func Open(dbType, url string) (*sql.DB, error) {
	if dbType != TypeSQLite && dbType != TypePostgres {
		return nil, fmt.Errorf("unsupported database type %q", dbType)
	}

	if dbType == TypeSQLite {
		url = sqliteDSN(url)
	}

	conn, err := sql.Open(dbType, url)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", dbType, err)
	}

	if dbType == TypeSQLite {
		// One connection serializes writers and keeps :memory: databases alive.
		conn.SetMaxOpenConns(1)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("ping %s: %w", dbType, err)
	}

	return conn, nil
}

// sqliteDSN adds the foreign_keys pragma to the connection string so the
// driver applies it to every connection it opens.
func sqliteDSN(url string) string {
	const pragma = "_pragma=foreign_keys(1)"
	if strings.Contains(url, pragma) {
		return url
	}
	if strings.Contains(url, "?") {
		return url + "&" + pragma
	}
	return url + "?" + pragma
}
