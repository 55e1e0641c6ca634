package datasource

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"slides/internal/domain"
)

func TestIsReadQuery(t *testing.T) {
	reads := []string{
		"SELECT * FROM sales",
		"  select count(*) from events",
		"WITH t AS (SELECT 1) SELECT * FROM t",
		"EXPLAIN SELECT 1",
		"PRAGMA table_info(sales)",
	}
	for _, q := range reads {
		if !isReadQuery(q) {
			t.Errorf("expected read query: %q", q)
		}
	}
	writes := []string{
		"INSERT INTO sales VALUES (1)",
		"UPDATE sales SET amount = 0",
		"DELETE FROM sales",
		"DROP TABLE sales",
	}
	for _, q := range writes {
		if isReadQuery(q) {
			t.Errorf("expected write query: %q", q)
		}
	}
}

func TestBuildPostgresDSN(t *testing.T) {
	ds := &domain.DataSource{
		Driver:   domain.DataSourcePostgres,
		Host:     "db.local",
		Username: "reporter",
		Database: "metrics",
	}
	dsn := buildPostgresDSN(ds, "s3cret")
	want := "host=db.local port=5432 user=reporter password=s3cret dbname=metrics sslmode=disable"
	if dsn != want {
		t.Errorf("dsn = %q, want %q", dsn, want)
	}
}

func TestBuildMySQLDSN(t *testing.T) {
	ds := &domain.DataSource{
		Driver:   domain.DataSourceMySQL,
		Host:     "db.local",
		Port:     3307,
		Username: "reporter",
		Database: "metrics",
		SSLMode:  "require",
	}
	dsn := buildMySQLDSN(ds, "s3cret")
	want := "reporter:s3cret@tcp(db.local:3307)/metrics?parseTime=true&charset=utf8mb4&tls=true"
	if dsn != want {
		t.Errorf("dsn = %q, want %q", dsn, want)
	}
}

func TestDBNameFromURI(t *testing.T) {
	cases := map[string]string{
		"mongodb+srv://u:p@cluster0.mongodb.net/sales?retryWrites=true": "sales",
		"mongodb://localhost:27017/analytics":                           "analytics",
		"mongodb://localhost:27017":                                     "",
	}
	for uri, want := range cases {
		if got := dbNameFromURI(uri); got != want {
			t.Errorf("dbNameFromURI(%q) = %q, want %q", uri, got, want)
		}
	}
}

func TestSQLiteConnectorReadOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feed.db")
	seedSQLite(t, path)

	conn, err := newSQLiteConnector(&domain.DataSource{Driver: domain.DataSourceSQLite, Host: path})
	if err != nil {
		t.Fatalf("open connector: %v", err)
	}
	defer conn.Close()

	ctx := context.Background()
	if err := conn.TestConnection(ctx); err != nil {
		t.Fatalf("test connection: %v", err)
	}

	if _, err := conn.Execute(ctx, "DELETE FROM sales", 10); err == nil {
		t.Fatal("expected write query to be rejected")
	}

	page, err := conn.Execute(ctx, "SELECT label, amount FROM sales ORDER BY label", 2)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if len(page.Columns) != 2 || page.Columns[0] != "label" {
		t.Fatalf("unexpected columns: %v", page.Columns)
	}
	if len(page.Rows) != 2 || !page.HasMore {
		t.Fatalf("first batch: rows=%d hasMore=%v", len(page.Rows), page.HasMore)
	}

	page, err = conn.FetchMore(ctx, 2)
	if err != nil {
		t.Fatalf("fetch more: %v", err)
	}
	if len(page.Rows) != 1 || page.HasMore || page.TotalFetched != 3 {
		t.Fatalf("second batch: rows=%d hasMore=%v total=%d", len(page.Rows), page.HasMore, page.TotalFetched)
	}
	if page.Rows[0][0] != "west" {
		t.Errorf("last row label = %v, want west", page.Rows[0][0])
	}
}

func TestSQLiteConnectorCursorOutlivesExecuteContext(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feed.db")
	seedSQLite(t, path)

	conn, err := newSQLiteConnector(&domain.DataSource{Driver: domain.DataSourceSQLite, Host: path})
	if err != nil {
		t.Fatalf("open connector: %v", err)
	}
	defer conn.Close()

	execCtx, cancelExec := context.WithCancel(context.Background())
	page, err := conn.Execute(execCtx, "SELECT label, amount FROM sales ORDER BY label", 2)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !page.HasMore {
		t.Fatal("expected an open cursor after the first batch")
	}

	// The caller's context ending must not tear down the retained cursor.
	cancelExec()
	time.Sleep(250 * time.Millisecond)

	page, err = conn.FetchMore(context.Background(), 2)
	if err != nil {
		t.Fatalf("fetch more after execute context ended: %v", err)
	}
	if len(page.Rows) != 1 || page.HasMore || page.TotalFetched != 3 {
		t.Fatalf("second batch: rows=%d hasMore=%v total=%d", len(page.Rows), page.HasMore, page.TotalFetched)
	}
}

func seedSQLite(t *testing.T, path string) {
	t.Helper()
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer db.Close()
	stmts := []string{
		`CREATE TABLE sales (label TEXT, amount REAL)`,
		`INSERT INTO sales VALUES ('east', 120), ('north', 80), ('west', 210)`,
	}
	for _, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
}
