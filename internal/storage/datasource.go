package storage

import (
	"fmt"
	"time"

	"slides/internal/domain"
)

// DataSourceStore implements domain.DataSourceStore using SQLite.
type DataSourceStore struct {
	db *DB
}

func NewDataSourceStore(db *DB) *DataSourceStore {
	return &DataSourceStore{db: db}
}

func (s *DataSourceStore) CreateDataSource(ds *domain.DataSource) error {
	now := time.Now()
	ds.CreatedAt = now
	ds.UpdatedAt = now
	_, err := s.db.conn.Exec(
		`INSERT INTO data_sources (id, name, driver, host, port, database_name, username, ssl_mode, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		ds.ID, ds.Name, ds.Driver, ds.Host, ds.Port, ds.Database, ds.Username, ds.SSLMode, ds.CreatedAt, ds.UpdatedAt,
	)
	return err
}

func (s *DataSourceStore) GetDataSource(id string) (*domain.DataSource, error) {
	ds := &domain.DataSource{}
	err := s.db.conn.QueryRow(
		`SELECT id, name, driver, host, port, database_name, username, ssl_mode, created_at, updated_at FROM data_sources WHERE id = ?`, id,
	).Scan(&ds.ID, &ds.Name, &ds.Driver, &ds.Host, &ds.Port, &ds.Database, &ds.Username, &ds.SSLMode, &ds.CreatedAt, &ds.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("get data source: %w", err)
	}
	return ds, nil
}

func (s *DataSourceStore) ListDataSources() ([]domain.DataSource, error) {
	rows, err := s.db.conn.Query(`SELECT id, name, driver, host, port, database_name, username, ssl_mode, created_at, updated_at FROM data_sources ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sources []domain.DataSource
	for rows.Next() {
		var ds domain.DataSource
		if err := rows.Scan(&ds.ID, &ds.Name, &ds.Driver, &ds.Host, &ds.Port, &ds.Database, &ds.Username, &ds.SSLMode, &ds.CreatedAt, &ds.UpdatedAt); err != nil {
			return nil, err
		}
		sources = append(sources, ds)
	}
	return sources, rows.Err()
}

func (s *DataSourceStore) UpdateDataSource(ds *domain.DataSource) error {
	ds.UpdatedAt = time.Now()
	_, err := s.db.conn.Exec(
		`UPDATE data_sources SET name = ?, driver = ?, host = ?, port = ?, database_name = ?, username = ?, ssl_mode = ?, updated_at = ? WHERE id = ?`,
		ds.Name, ds.Driver, ds.Host, ds.Port, ds.Database, ds.Username, ds.SSLMode, ds.UpdatedAt, ds.ID,
	)
	return err
}

func (s *DataSourceStore) DeleteDataSource(id string) error {
	_, err := s.db.conn.Exec(`DELETE FROM data_sources WHERE id = ?`, id)
	return err
}
