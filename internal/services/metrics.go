package services

import (
	"context"
	"log/slog"
	"sync"

	"artist-dashboard/internal/errors"
	"artist-dashboard/internal/models"
)

// Metrics serves the catalog to handlers and the CLI. The catalog is built
// once, on Load or on the first read, and reused for the process lifetime.
type Metrics struct {
	mu        sync.RWMutex
	generator *Generator
	catalog   *Catalog
	logger    *slog.Logger
}

// NewMetrics panics on a nil generator.
func NewMetrics(generator *Generator) *Metrics {
	if generator == nil {
		panic("services: NewMetrics called with a nil generator")
	}
	return &Metrics{
		generator: generator,
		logger:    slog.Default(),
	}
}

// NewMetricsFromCatalog wraps an already built catalog.
func NewMetricsFromCatalog(catalog *Catalog) *Metrics {
	if catalog == nil {
		panic("services: NewMetricsFromCatalog called with a nil catalog")
	}
	return &Metrics{
		catalog: catalog,
		logger:  slog.Default(),
	}
}

// Load generates the catalog unless it already exists. Concurrent callers
// block on the write lock, so sampling happens exactly once.
func (m *Metrics) Load(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.catalog != nil {
		return nil
	}
	if m.generator == nil {
		return errors.Internal("metrics has no generator")
	}

	catalog, err := m.generator.Generate(ctx)
	if err != nil {
		return errors.InternalWrap(err, "catalog generation failed")
	}
	m.catalog = catalog
	return nil
}

// current returns the catalog, building it on first use. A failed build is
// reported as an INTERNAL error, never as a missing artist.
func (m *Metrics) current() (*Catalog, error) {
	m.mu.RLock()
	catalog := m.catalog
	m.mu.RUnlock()
	if catalog != nil {
		return catalog, nil
	}

	if err := m.Load(context.Background()); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.catalog, nil
}

// mustCurrent serves the accessors without an error return. Only a zero
// Metrics value can fail here, which is a programming error.
func (m *Metrics) mustCurrent() *Catalog {
	catalog, err := m.current()
	if err != nil {
		panic(err)
	}
	return catalog
}

func (m *Metrics) Catalog() *Catalog {
	return m.mustCurrent()
}

// GetCatalog returns the scored artists in catalog order.
func (m *Metrics) GetCatalog() []models.Artist {
	return m.mustCurrent().Artists()
}

func (m *Metrics) GetArtist(name string) (models.Artist, error) {
	catalog, err := m.current()
	if err != nil {
		return models.Artist{}, err
	}
	return catalog.Artist(name)
}

func (m *Metrics) GetMonthlySeries(name string) ([]models.MonthlyRecord, error) {
	catalog, err := m.current()
	if err != nil {
		return nil, err
	}
	return catalog.MonthlySeries(name)
}

func (m *Metrics) GetCountryRevenue(name string) ([]models.CountryRevenueRecord, error) {
	catalog, err := m.current()
	if err != nil {
		return nil, err
	}
	return catalog.CountryRevenue(name)
}

func (m *Metrics) GetCountryShares(name string) ([]models.CountryShare, error) {
	records, err := m.GetCountryRevenue(name)
	if err != nil {
		return nil, err
	}
	return CountryShares(records), nil
}

func (m *Metrics) GetMonthlyTotals(name string) ([]models.MonthlyTotals, error) {
	records, err := m.GetMonthlySeries(name)
	if err != nil {
		return nil, err
	}
	return MonthlyTotals(records), nil
}

func (m *Metrics) Rankings() []models.ScoreRanking {
	return Rankings(m.mustCurrent().artists)
}

func (m *Metrics) Averages() models.CatalogAverages {
	return Averages(m.mustCurrent().artists)
}

func (m *Metrics) Insight(name string) (models.ArtistInsight, error) {
	catalog, err := m.current()
	if err != nil {
		return models.ArtistInsight{}, err
	}
	return Insight(catalog.artists, name)
}

// Stats is exposed on the admin endpoint.
func (m *Metrics) Stats() map[string]any {
	catalog := m.mustCurrent()
	return map[string]any{
		"seed":         catalog.Seed,
		"generated_at": catalog.GeneratedAt,
		"artists":      catalog.Len(),
		"months":       len(Months),
		"countries":    len(Countries),
	}
}
