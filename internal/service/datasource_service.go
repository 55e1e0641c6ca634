package service

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"slides/internal/datasource"
	"slides/internal/domain"
	"slides/internal/store"
)

// ─────────────────────────────────────────────────────────────
// Data Source Service — external feeds for charts and tables
// ─────────────────────────────────────────────────────────────

// DataSourceService manages data source metadata and live connectors.
// Connectors are opened lazily per source and cached until Close or
// DeleteDataSource. Query results can be pushed straight into chart and
// table elements of the open deck.
type DataSourceService struct {
	meta    domain.DataSourceStore
	decks   *DeckService
	emitter EventEmitter

	mu         sync.Mutex
	connectors map[string]datasource.Connector
}

// NewDataSourceService creates a DataSourceService.
func NewDataSourceService(meta domain.DataSourceStore, decks *DeckService, emitter EventEmitter) *DataSourceService {
	return &DataSourceService{
		meta:       meta,
		decks:      decks,
		emitter:    emitter,
		connectors: make(map[string]datasource.Connector),
	}
}

// ── Metadata CRUD ──────────────────────────────────────────

func (s *DataSourceService) ListDataSources() ([]domain.DataSource, error) {
	return s.meta.ListDataSources()
}

func (s *DataSourceService) CreateDataSource(ds domain.DataSource) (*domain.DataSource, error) {
	ds.ID = uuid.New().String()
	ds.CreatedAt = time.Now()
	ds.UpdatedAt = ds.CreatedAt
	if err := s.meta.CreateDataSource(&ds); err != nil {
		return nil, fmt.Errorf("create data source: %w", err)
	}
	return &ds, nil
}

func (s *DataSourceService) UpdateDataSource(ds domain.DataSource) error {
	ds.UpdatedAt = time.Now()
	if err := s.meta.UpdateDataSource(&ds); err != nil {
		return fmt.Errorf("update data source: %w", err)
	}
	s.dropConnector(ds.ID)
	return nil
}

func (s *DataSourceService) DeleteDataSource(id string) error {
	s.dropConnector(id)
	return s.meta.DeleteDataSource(id)
}

// ── Queries ────────────────────────────────────────────────

// TestDataSource opens a throwaway connection and pings it.
func (s *DataSourceService) TestDataSource(ctx context.Context, ds domain.DataSource, password string) error {
	conn, err := datasource.NewConnector(&ds, password)
	if err != nil {
		return err
	}
	defer conn.Close()
	return conn.TestConnection(ctx)
}

// Query runs a read query against a stored data source. The password is
// supplied per-call and never persisted.
func (s *DataSourceService) Query(ctx context.Context, sourceID, password, query string, fetchSize int) (*datasource.QueryPage, error) {
	conn, err := s.connector(sourceID, password)
	if err != nil {
		return nil, err
	}
	return conn.Execute(ctx, query, fetchSize)
}

// FetchMore continues the open cursor of a previous Query.
func (s *DataSourceService) FetchMore(ctx context.Context, sourceID string, fetchSize int) (*datasource.QueryPage, error) {
	s.mu.Lock()
	conn, ok := s.connectors[sourceID]
	s.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("no open connection for source %s", sourceID)
	}
	return conn.FetchMore(ctx, fetchSize)
}

// ── Element feeds ──────────────────────────────────────────

// FeedChart runs the query and writes the first two columns into the
// chart element as labels and values. Non-numeric value cells become 0.
func (s *DataSourceService) FeedChart(ctx context.Context, elementID, sourceID, password, query string) error {
	page, err := s.Query(ctx, sourceID, password, query, 100)
	if err != nil {
		return err
	}
	if len(page.Columns) < 2 {
		return fmt.Errorf("chart feed needs at least 2 columns, got %d", len(page.Columns))
	}

	labels := make([]string, 0, len(page.Rows))
	values := make([]float64, 0, len(page.Rows))
	for _, row := range page.Rows {
		labels = append(labels, fmt.Sprintf("%v", row[0]))
		values = append(values, toFloat(row[1]))
	}

	ok := s.decks.UpdateElement(ctx, elementID, store.ElementPatch{
		Chart: &domain.ChartPayload{ChartType: "bar", Labels: labels, Values: values},
	})
	if !ok {
		return fmt.Errorf("element not found: %s", elementID)
	}
	return nil
}

// FeedTable runs the query and writes columns and stringified rows into
// the table element.
func (s *DataSourceService) FeedTable(ctx context.Context, elementID, sourceID, password, query string) error {
	page, err := s.Query(ctx, sourceID, password, query, 100)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(page.Rows))
	for _, row := range page.Rows {
		cells := make([]string, len(row))
		for i, v := range row {
			if v == nil {
				cells[i] = ""
				continue
			}
			cells[i] = fmt.Sprintf("%v", v)
		}
		rows = append(rows, cells)
	}

	ok := s.decks.UpdateElement(ctx, elementID, store.ElementPatch{
		Table: &domain.TablePayload{Columns: page.Columns, Rows: rows},
	})
	if !ok {
		return fmt.Errorf("element not found: %s", elementID)
	}
	return nil
}

// Close releases every cached connector.
func (s *DataSourceService) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, conn := range s.connectors {
		if err := conn.Close(); err != nil {
			log.Printf("datasource: close %s: %v", id, err)
		}
		delete(s.connectors, id)
	}
}

func (s *DataSourceService) connector(sourceID, password string) (datasource.Connector, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if conn, ok := s.connectors[sourceID]; ok {
		return conn, nil
	}
	ds, err := s.meta.GetDataSource(sourceID)
	if err != nil {
		return nil, fmt.Errorf("unknown data source: %w", err)
	}
	conn, err := datasource.NewConnector(ds, password)
	if err != nil {
		return nil, err
	}
	s.connectors[sourceID] = conn
	return conn, nil
}

func (s *DataSourceService) dropConnector(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if conn, ok := s.connectors[id]; ok {
		conn.Close()
		delete(s.connectors, id)
	}
}

func toFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int64:
		return float64(n)
	case int32:
		return float64(n)
	case int:
		return float64(n)
	case string:
		var f float64
		fmt.Sscanf(n, "%g", &f)
		return f
	default:
		return 0
	}
}
