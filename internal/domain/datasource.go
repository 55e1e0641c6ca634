package domain

import "time"

// DataSourceDriver represents the type of external database engine that
// can feed chart and table elements.
type DataSourceDriver string

const (
	DataSourceMySQL    DataSourceDriver = "mysql"
	DataSourcePostgres DataSourceDriver = "postgres"
	DataSourceMongoDB  DataSourceDriver = "mongodb"
	DataSourceSQLite   DataSourceDriver = "sqlite"
)

// DataSource holds the metadata for connecting to an external database.
// Passwords are supplied per-call by the frontend and never stored.
type DataSource struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Driver    DataSourceDriver `json:"driver"`
	Host      string           `json:"host"`     // hostname or file path (sqlite)
	Port      int              `json:"port"`     // 0 for sqlite
	Database  string           `json:"database"` // db name or empty for sqlite
	Username  string           `json:"username"`
	SSLMode   string           `json:"sslMode"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
}

// DataSourceStore manages CRUD operations for data source metadata.
type DataSourceStore interface {
	CreateDataSource(ds *DataSource) error
	GetDataSource(id string) (*DataSource, error)
	ListDataSources() ([]DataSource, error)
	UpdateDataSource(ds *DataSource) error
	DeleteDataSource(id string) error
}
