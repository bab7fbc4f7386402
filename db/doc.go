// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the saved-view database and creates its schema.

Both sqlite (modernc.org/sqlite, no cgo) and postgres (lib/pq) are
supported. Queries are written with ? placeholders and passed through
Rebind, which rewrites them for postgres.

	conn, err := db.Open(db.TypeSQLite, "file:views.db")
	err = db.CreateSchema(conn)

CreateSchema is safe to call multiple times.
*/
package db
