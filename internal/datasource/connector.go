package datasource

import (
	"context"
	"fmt"

	"slides/internal/domain"
)

// QueryPage is a batch of rows fetched from a query cursor.
type QueryPage struct {
	Columns      []string `json:"columns"`
	Rows         [][]any  `json:"rows"`
	TotalFetched int      `json:"totalFetched"` // total rows fetched so far
	HasMore      bool     `json:"hasMore"`      // cursor has more rows
}

// Connector abstracts a read-only connection to an external database.
// Sources only feed charts and tables, so writes are rejected.
type Connector interface {
	// TestConnection verifies connectivity.
	TestConnection(ctx context.Context) error

	// Execute runs a read query, opens a cursor, and fetches fetchSize rows.
	Execute(ctx context.Context, query string, fetchSize int) (*QueryPage, error)

	// FetchMore continues reading from the open cursor.
	FetchMore(ctx context.Context, fetchSize int) (*QueryPage, error)

	// Close closes the connection and any open cursors.
	Close() error
}

// NewConnector creates a Connector for the given data source.
// The password is provided per-call by the frontend and never stored.
func NewConnector(ds *domain.DataSource, password string) (Connector, error) {
	switch ds.Driver {
	case domain.DataSourceSQLite:
		return newSQLiteConnector(ds)
	case domain.DataSourceMySQL:
		return newMySQLConnector(ds, password)
	case domain.DataSourcePostgres:
		return newPostgresConnector(ds, password)
	case domain.DataSourceMongoDB:
		return newMongoConnector(ds, password)
	default:
		return nil, fmt.Errorf("unsupported driver: %s", ds.Driver)
	}
}
