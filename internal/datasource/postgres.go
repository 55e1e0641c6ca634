package datasource

import (
	"fmt"

	"slides/internal/domain"

	_ "github.com/lib/pq"
)

func newPostgresConnector(ds *domain.DataSource, password string) (*sqlFeed, error) {
	return newSQLConnector("postgres", buildPostgresDSN(ds, password))
}

// buildPostgresDSN constructs a Postgres connection string from a DataSource.
func buildPostgresDSN(ds *domain.DataSource, password string) string {
	port := ds.Port
	if port == 0 {
		port = 5432
	}
	sslMode := ds.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		ds.Host, port, ds.Username, password, ds.Database, sslMode,
	)
}
