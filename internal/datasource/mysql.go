package datasource

import (
	"fmt"

	"slides/internal/domain"

	_ "github.com/go-sql-driver/mysql"
)

func newMySQLConnector(ds *domain.DataSource, password string) (*sqlFeed, error) {
	return newSQLConnector("mysql", buildMySQLDSN(ds, password))
}

// buildMySQLDSN constructs a MySQL DSN from a DataSource.
func buildMySQLDSN(ds *domain.DataSource, password string) string {
	port := ds.Port
	if port == 0 {
		port = 3306
	}
	// Format: user:password@tcp(host:port)/dbname?parseTime=true
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&charset=utf8mb4",
		ds.Username, password, ds.Host, port, ds.Database,
	)
	if ds.SSLMode == "require" {
		dsn += "&tls=true"
	}
	return dsn
}
