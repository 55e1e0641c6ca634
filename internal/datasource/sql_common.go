package datasource

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"
	"time"
)

const (
	defaultFetchSize = 50
	pingTimeout      = 10 * time.Second
	queryTimeout     = 30 * time.Second // bounds single-shot queries, not open cursors
)

// readPrefixes are the statement kinds a data source accepts. Sources
// only feed charts and tables, so anything else is rejected up front.
var readPrefixes = []string{"SELECT", "WITH", "SHOW", "DESCRIBE", "EXPLAIN", "PRAGMA"}

// isReadQuery reports whether the statement starts with a read keyword.
func isReadQuery(query string) bool {
	q := strings.ToUpper(strings.TrimSpace(query))
	for _, prefix := range readPrefixes {
		if strings.HasPrefix(q, prefix) {
			return true
		}
	}
	return false
}

// sqlFeed is the Connector shared by the MySQL, Postgres, and SQLite
// drivers. It holds at most one open cursor; a new Execute replaces it.
type sqlFeed struct {
	db *sql.DB

	mu     sync.Mutex
	cursor *sql.Rows
	cancel context.CancelFunc // releases the cursor's context
	cols   []string
	served int // rows handed out since the cursor opened
}

func newSQLConnector(driverName, dsn string) (*sqlFeed, error) {
	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driverName, err)
	}
	// A slide deck pulls small result sets; keep the pool tiny.
	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(10 * time.Minute)
	return &sqlFeed{db: db}, nil
}

func (f *sqlFeed) TestConnection(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	return f.db.PingContext(ctx)
}

func (f *sqlFeed) Execute(ctx context.Context, query string, fetchSize int) (*QueryPage, error) {
	if !isReadQuery(query) {
		return nil, fmt.Errorf("only read queries are allowed on a data source")
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.discardCursorLocked()

	// The cursor outlives this call so FetchMore can keep paging. Ending
	// its context here would let database/sql close the rows behind our
	// back, so detach from the caller and cancel only when the cursor is
	// discarded.
	qctx, cancel := context.WithCancel(context.WithoutCancel(ctx))

	rows, err := f.db.QueryContext(qctx, query)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("query: %w", err)
	}
	cols, err := rows.Columns()
	if err != nil {
		rows.Close()
		cancel()
		return nil, fmt.Errorf("columns: %w", err)
	}

	f.cursor = rows
	f.cancel = cancel
	f.cols = cols
	f.served = 0
	return f.pageLocked(normalizeFetchSize(fetchSize))
}

func (f *sqlFeed) FetchMore(ctx context.Context, fetchSize int) (*QueryPage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.cursor == nil {
		return nil, fmt.Errorf("no active cursor — execute a query first")
	}
	return f.pageLocked(normalizeFetchSize(fetchSize))
}

// pageLocked drains up to limit rows from the open cursor into a page.
// The cursor closes itself once it runs dry.
func (f *sqlFeed) pageLocked(limit int) (*QueryPage, error) {
	width := len(f.cols)
	var out [][]any

	for len(out) < limit && f.cursor.Next() {
		cells := make([]any, width)
		targets := make([]any, width)
		for i := range cells {
			targets[i] = &cells[i]
		}
		if err := f.cursor.Scan(targets...); err != nil {
			f.discardCursorLocked()
			return nil, fmt.Errorf("scan: %w", err)
		}
		for i, v := range cells {
			cells[i] = normalizeCell(v)
		}
		out = append(out, cells)
	}
	if err := f.cursor.Err(); err != nil {
		f.discardCursorLocked()
		return nil, fmt.Errorf("iterate: %w", err)
	}

	f.served += len(out)
	exhausted := len(out) < limit
	if exhausted {
		f.discardCursorLocked()
	}

	return &QueryPage{
		Columns:      f.cols,
		Rows:         out,
		TotalFetched: f.served,
		HasMore:      !exhausted,
	}, nil
}

func (f *sqlFeed) discardCursorLocked() {
	if f.cursor != nil {
		f.cursor.Close()
		f.cursor = nil
	}
	if f.cancel != nil {
		f.cancel()
		f.cancel = nil
	}
}

func (f *sqlFeed) Close() error {
	f.mu.Lock()
	f.discardCursorLocked()
	f.mu.Unlock()
	return f.db.Close()
}

func normalizeFetchSize(n int) int {
	if n <= 0 {
		return defaultFetchSize
	}
	return n
}

// normalizeCell makes driver values JSON-friendly: byte slices become
// strings, timestamps become RFC 3339.
func normalizeCell(v any) any {
	switch val := v.(type) {
	case []byte:
		return string(val)
	case time.Time:
		return val.Format(time.RFC3339)
	default:
		return v
	}
}
