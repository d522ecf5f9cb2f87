package sql

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/lguimbarda/min-linq/linq/aggregate"
	"github.com/lguimbarda/min-linq/linq/core"
)

func setupTestDB(t *testing.T) *sql.DB {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	// a single connection keeps the in-memory database alive across queries
	db.SetMaxOpenConns(1)
	_, err = db.Exec(`
		CREATE TABLE users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			age INTEGER NOT NULL
		)
	`)
	if err != nil {
		t.Fatalf("failed to create table: %v", err)
	}
	_, err = db.Exec(`INSERT INTO users (name, age) VALUES ('Alice', 30), ('Bob', 25), ('Charlie', 35), ('Dana', 41)`)
	if err != nil {
		t.Fatalf("failed to insert data: %v", err)
	}
	return db
}

type User struct {
	ID   int
	Name string
	Age  int
}

func scanUser(rows *sql.Rows) (User, error) {
	var u User
	err := rows.Scan(&u.ID, &u.Name, &u.Age)
	return u, err
}

func names(users []User) []string {
	out := make([]string, len(users))
	for i, u := range users {
		out[i] = u.Name
	}
	return out
}

func sameStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestQuery(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	p := Query(context.Background(), db, "SELECT id, name, age FROM users ORDER BY id", scanUser)
	users, err := p.ToList()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []string{"Alice", "Bob", "Charlie", "Dana"}; !sameStrings(names(users), want) {
		t.Errorf("got %v, want %v", names(users), want)
	}

	again, err := p.ToList()
	if err != nil || len(again) != len(users) {
		t.Errorf("second pass = (%d users, %v), want repeatable query", len(again), err)
	}
}

func TestQueryWithArgsAndStages(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	p := Query(context.Background(), db, "SELECT id, name, age FROM users WHERE age > ? ORDER BY id", scanUser, 26).
		Filter(func(u User) bool { return u.Name != "Charlie" }).
		Take(1)

	users, err := p.ToList()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []string{"Alice"}; !sameStrings(names(users), want) {
		t.Errorf("got %v, want %v", names(users), want)
	}
}

func TestQueryStopReleasesConnection(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	ctx := context.Background()
	first, ok, err := aggregate.First(Query(ctx, db, "SELECT id, name, age FROM users ORDER BY age", scanUser))
	if err != nil || !ok || first.Name != "Bob" {
		t.Fatalf("First = (%v, %v, %v)", first, ok, err)
	}

	// with one connection, this would block if the rows above were left open
	n, err := aggregate.Count(Query(ctx, db, "SELECT id, name, age FROM users", scanUser))
	if err != nil || n != 4 {
		t.Errorf("Count = (%d, %v), want 4", n, err)
	}
}

func TestQueryErrors(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	ctx := context.Background()

	if _, err := Query(ctx, db, "SELECT * FROM missing", scanUser).ToList(); err == nil {
		t.Errorf("expected error for unknown table")
	}

	badScan := func(rows *sql.Rows) (User, error) {
		var u User
		err := rows.Scan(&u.ID)
		return u, err
	}
	if _, err := Query(ctx, db, "SELECT id, name, age FROM users", badScan).ToList(); err == nil {
		t.Errorf("expected scan error")
	}
}

func TestFromRowsIsSingleUse(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	rows, err := db.Query("SELECT id, name, age FROM users ORDER BY id")
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	p := FromRows(rows, scanUser).Skip(1)

	users, err := p.ToList()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []string{"Bob", "Charlie", "Dana"}; !sameStrings(names(users), want) {
		t.Errorf("got %v, want %v", names(users), want)
	}

	if _, err := p.ToList(); !errors.Is(err, core.ErrCursorRewind) {
		t.Errorf("second pass error = %v, want ErrCursorRewind", err)
	}
}

func TestQueryStrings(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	rows, err := QueryStrings(context.Background(), db, "SELECT name, age FROM users WHERE id = ?", 2).ToList()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 || !sameStrings(rows[0], []string{"Bob", "25"}) {
		t.Errorf("got %v, want [[Bob 25]]", rows)
	}
}

func TestQueryMaps(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	rows, err := QueryMaps(context.Background(), db, "SELECT name, age FROM users ORDER BY id LIMIT 1").ToList()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	name := rows[0]["name"]
	if b, ok := name.([]byte); ok {
		name = string(b)
	}
	if name != "Alice" || rows[0]["age"] != int64(30) {
		t.Errorf("got %v", rows[0])
	}
}
