package services

import (
	"slices"
	"time"

	"artist-dashboard/internal/errors"
	"artist-dashboard/internal/models"
)

// Catalog is an immutable snapshot of the generated data. Accessors hand out
// copies so callers cannot alter the cached values.
type Catalog struct {
	Seed        uint64
	GeneratedAt time.Time

	artists   []models.Artist
	index     map[string]int
	monthly   map[string][]models.MonthlyRecord
	countries map[string][]models.CountryRevenueRecord
}

func (c *Catalog) Artists() []models.Artist {
	return slices.Clone(c.artists)
}

func (c *Catalog) Names() []string {
	names := make([]string, len(c.artists))
	for i, a := range c.artists {
		names[i] = a.Name
	}
	return names
}

func (c *Catalog) Len() int {
	return len(c.artists)
}

func (c *Catalog) Artist(name string) (models.Artist, error) {
	i, ok := c.index[name]
	if !ok {
		return models.Artist{}, errors.ArtistNotFound(name)
	}
	return c.artists[i], nil
}

func (c *Catalog) MonthlySeries(name string) ([]models.MonthlyRecord, error) {
	series, ok := c.monthly[name]
	if !ok {
		return nil, errors.ArtistNotFound(name)
	}
	return slices.Clone(series), nil
}

func (c *Catalog) CountryRevenue(name string) ([]models.CountryRevenueRecord, error) {
	records, ok := c.countries[name]
	if !ok {
		return nil, errors.ArtistNotFound(name)
	}
	return slices.Clone(records), nil
}
