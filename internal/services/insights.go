package services

import (
	"cmp"
	"slices"

	"artist-dashboard/internal/errors"
	"artist-dashboard/internal/models"
)

// TopPlatform returns the platform with the most lifetime streams. Ties go to
// the platform listed first in models.Platforms.
func TopPlatform(a models.Artist) models.Platform {
	top := models.Platforms[0]
	for _, p := range models.Platforms[1:] {
		if a.Streams.Get(p) > a.Streams.Get(top) {
			top = p
		}
	}
	return top
}

func Averages(artists []models.Artist) models.CatalogAverages {
	if len(artists) == 0 {
		return models.CatalogAverages{}
	}
	var avg models.CatalogAverages
	for _, a := range artists {
		avg.VinylSales += float64(a.VinylSales)
		avg.EngagementRate += a.EngagementRate
		avg.PerformanceScore += a.PerformanceScore
	}
	n := float64(len(artists))
	avg.VinylSales /= n
	avg.EngagementRate /= n
	avg.PerformanceScore /= n
	return avg
}

// Rankings orders artists by performance score, highest first. Equal scores
// keep catalog order.
func Rankings(artists []models.Artist) []models.ScoreRanking {
	sorted := slices.Clone(artists)
	slices.SortStableFunc(sorted, func(a, b models.Artist) int {
		return cmp.Compare(b.PerformanceScore, a.PerformanceScore)
	})

	rankings := make([]models.ScoreRanking, len(sorted))
	for i, a := range sorted {
		rankings[i] = models.ScoreRanking{
			Rank:  i + 1,
			Name:  a.Name,
			Score: a.PerformanceScore,
		}
	}
	return rankings
}

// Insight compares one artist against the catalog averages.
func Insight(artists []models.Artist, name string) (models.ArtistInsight, error) {
	i := slices.IndexFunc(artists, func(a models.Artist) bool { return a.Name == name })
	if i < 0 {
		return models.ArtistInsight{}, errors.ArtistNotFound(name)
	}
	artist := artists[i]
	avg := Averages(artists)

	var totalVinyl int64
	for _, a := range artists {
		totalVinyl += a.VinylSales
	}

	insight := models.ArtistInsight{
		Name:                artist.Name,
		TopPlatform:         TopPlatform(artist),
		VinylAboveMean:      float64(artist.VinylSales) > avg.VinylSales,
		EngagementAboveMean: artist.EngagementRate > avg.EngagementRate,
		ScoreAboveMean:      artist.PerformanceScore > avg.PerformanceScore,
		Score:               artist.PerformanceScore,
	}
	if totalVinyl > 0 {
		insight.VinylShare = float64(artist.VinylSales) / float64(totalVinyl)
	}
	for _, r := range Rankings(artists) {
		if r.Name == name {
			insight.Rank = r.Rank
			break
		}
	}
	return insight, nil
}

// CountryShares expresses each country's revenue as a fraction of the total.
// A non-positive total yields zero shares.
func CountryShares(records []models.CountryRevenueRecord) []models.CountryShare {
	var total int64
	for _, r := range records {
		total += r.Revenue
	}

	shares := make([]models.CountryShare, len(records))
	for i, r := range records {
		shares[i] = models.CountryShare{Country: r.Country, Revenue: r.Revenue}
		if total > 0 {
			shares[i].Share = float64(r.Revenue) / float64(total)
		}
	}
	return shares
}

func MonthlyTotals(records []models.MonthlyRecord) []models.MonthlyTotals {
	totals := make([]models.MonthlyTotals, len(records))
	for i, r := range records {
		totals[i] = models.MonthlyTotals{
			Month:   r.Month,
			Streams: r.TotalStreams,
			Revenue: r.TotalRevenue,
		}
	}
	return totals
}
