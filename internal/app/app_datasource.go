package app

import (
	"slides/internal/datasource"
	"slides/internal/domain"
)

// ============================================================
// Data Sources
// ============================================================
//
// Sources feed chart and table elements from external databases.
// Passwords travel from the frontend per call and are never stored.

func (a *App) ListDataSources() ([]domain.DataSource, error) {
	return a.datasources.ListDataSources()
}

func (a *App) CreateDataSource(ds domain.DataSource) (*domain.DataSource, error) {
	return a.datasources.CreateDataSource(ds)
}

func (a *App) UpdateDataSource(ds domain.DataSource) error {
	return a.datasources.UpdateDataSource(ds)
}

func (a *App) DeleteDataSource(id string) error {
	return a.datasources.DeleteDataSource(id)
}

func (a *App) TestDataSource(ds domain.DataSource, password string) error {
	return a.datasources.TestDataSource(a.ctx, ds, password)
}

func (a *App) QueryDataSource(sourceID, password, query string, fetchSize int) (*datasource.QueryPage, error) {
	return a.datasources.Query(a.ctx, sourceID, password, query, fetchSize)
}

func (a *App) FetchMoreRows(sourceID string, fetchSize int) (*datasource.QueryPage, error) {
	return a.datasources.FetchMore(a.ctx, sourceID, fetchSize)
}

// FeedChartElement runs a query and pushes labels/values into a chart element.
func (a *App) FeedChartElement(elementID, sourceID, password, query string) error {
	return a.datasources.FeedChart(a.ctx, elementID, sourceID, password, query)
}

// FeedTableElement runs a query and pushes columns/rows into a table element.
func (a *App) FeedTableElement(elementID, sourceID, password, query string) error {
	return a.datasources.FeedTable(a.ctx, elementID, sourceID, password, query)
}
