// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import "testing"

func TestOpenSQLiteAndCreateSchema(t *testing.T) {
	conn, err := Open(TypeSQLite, ":memory:")
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer conn.Close()

	// twice, to check it is idempotent
	for i := 0; i < 2; i++ {
		if err := CreateSchema(conn); err != nil {
			t.Fatalf("CreateSchema() error = %v", err)
		}
	}

	_, err = conn.Exec(Rebind(TypeSQLite, `INSERT INTO saved_view (id, slug, fragment, created_at) VALUES (?, ?, ?, ?)`),
		"id-1", "abc", "#?status=rejected", int64(1700000000))
	if err != nil {
		t.Fatalf("insert error = %v", err)
	}

	var hits int64
	if err := conn.QueryRow(`SELECT hits FROM saved_view WHERE slug = ?`, "abc").Scan(&hits); err != nil {
		t.Fatalf("select error = %v", err)
	}
	if hits != 0 {
		t.Errorf("expected default hits 0, got %d", hits)
	}

	_, err = conn.Exec(`INSERT INTO saved_view (id, slug, fragment, created_at) VALUES (?, ?, ?, ?)`,
		"id-2", "abc", "#?status=deferred", int64(1700000001))
	if err == nil {
		t.Error("expected unique violation on duplicate slug")
	}
}

func TestOpenUnsupported(t *testing.T) {
	if _, err := Open("mysql", "whatever"); err == nil {
		t.Error("expected error for unsupported database type")
	}
}

func TestRebind(t *testing.T) {
	q := `UPDATE saved_view SET hits = hits + 1 WHERE slug = ? AND id = ?`

	if got := Rebind(TypeSQLite, q); got != q {
		t.Errorf("sqlite query should be unchanged, got %q", got)
	}

	want := `UPDATE saved_view SET hits = hits + 1 WHERE slug = $1 AND id = $2`
	if got := Rebind(TypePostgres, q); got != want {
		t.Errorf("Rebind() = %q, want %q", got, want)
	}
}
