package services

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"golang.org/x/sync/errgroup"

	"artist-dashboard/internal/errors"
	"artist-dashboard/internal/models"
	"artist-dashboard/internal/observability"
)

const (
	maxWorkers = 4

	// PerStreamRate is the payout per stream in EUR.
	PerStreamRate = 0.004

	countryRevenueMean   = 1_000_000
	countryRevenueStdDev = 200_000
)

// seriesParams describes how one platform's monthly streams are sampled.
// Spotify divides by 12 while the others divide by 8; the figures are kept as
// they appear in the reference dashboard.
type seriesParams struct {
	platform models.Platform
	divisor  float64
	stdDev   float64
}

var monthlyParams = []seriesParams{
	{models.PlatformSpotify, 12, 1e7},
	{models.PlatformAppleMusic, 8, 5e6},
	{models.PlatformYouTube, 8, 8e6},
	{models.PlatformAmazonMusic, 8, 3e6},
}

type Generator struct {
	seed   uint64
	logger *slog.Logger
}

type GeneratorOption func(*Generator)

func WithLogger(logger *slog.Logger) GeneratorOption {
	return func(g *Generator) {
		g.logger = logger
	}
}

// NewGenerator returns a generator for the given seed. A zero seed is
// replaced by one derived from the clock, so separate runs differ.
func NewGenerator(seed uint64, opts ...GeneratorOption) *Generator {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	g := &Generator{
		seed:   seed,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Generator) Seed() uint64 {
	return g.seed
}

// Generate builds the reference catalog.
func (g *Generator) Generate(ctx context.Context) (*Catalog, error) {
	return g.Build(ctx, ReferenceArtists())
}

// Build scores the given artists and samples their monthly series and country
// revenue. Each artist draws from its own PCG stream keyed by the seed and the
// artist's position, so the result only depends on the seed and the input order.
func (g *Generator) Build(ctx context.Context, artists []models.Artist) (*Catalog, error) {
	ctx, span := observability.StartSpan(ctx, "catalog.build")
	defer func() {
		span.Finish()
		g.logger.Debug("span finished", "span", span)
	}()
	span.SetTag("seed", fmt.Sprint(g.seed))

	start := time.Now()

	index := make(map[string]int, len(artists))
	for i, a := range artists {
		if _, dup := index[a.Name]; dup {
			err := errors.Validation("duplicate artist name")
			err.Details = a.Name
			span.SetError(err)
			return nil, err
		}
		index[a.Name] = i
	}

	scored := make([]models.Artist, len(artists))
	for i, a := range artists {
		a.PerformanceScore = PerformanceScore(a)
		scored[i] = a
	}

	monthly := make([][]models.MonthlyRecord, len(scored))
	countries := make([][]models.CountryRevenueRecord, len(scored))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(maxWorkers)
	for i, a := range scored {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			monthly[i] = MonthlySeries(g.stream(i, 0), a)
			countries[i] = CountryRevenue(g.stream(i, 1), Countries)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		span.SetError(err)
		return nil, fmt.Errorf("generate series: %w", err)
	}

	catalog := &Catalog{
		Seed:        g.seed,
		GeneratedAt: time.Now(),
		artists:     scored,
		index:       index,
		monthly:     make(map[string][]models.MonthlyRecord, len(scored)),
		countries:   make(map[string][]models.CountryRevenueRecord, len(scored)),
	}
	for i, a := range scored {
		catalog.monthly[a.Name] = monthly[i]
		catalog.countries[a.Name] = countries[i]
	}

	g.logger.Info("catalog generated",
		"seed", g.seed,
		"artists", len(scored),
		"duration", time.Since(start),
		"trace_id", span.TraceID,
	)
	return catalog, nil
}

func (g *Generator) stream(artistIndex, kind int) *rand.Rand {
	return rand.New(rand.NewPCG(g.seed, uint64(artistIndex)<<1|uint64(kind)))
}

// MonthlySeries samples one record per month for the artist. The returned
// slice is complete; derived fields come only from the sampled streams.
func MonthlySeries(rng *rand.Rand, a models.Artist) []models.MonthlyRecord {
	samples := make(map[models.Platform][]int64, len(monthlyParams))
	for _, p := range monthlyParams {
		mean := float64(a.Streams.Get(p.platform)) / p.divisor
		values := make([]int64, len(Months))
		for m := range values {
			values[m] = sampleNormal(rng, mean, p.stdDev)
		}
		samples[p.platform] = values
	}

	records := make([]models.MonthlyRecord, len(Months))
	for m, month := range Months {
		streams := models.PlatformStreams{
			Spotify:     samples[models.PlatformSpotify][m],
			AppleMusic:  samples[models.PlatformAppleMusic][m],
			YouTube:     samples[models.PlatformYouTube][m],
			AmazonMusic: samples[models.PlatformAmazonMusic][m],
		}
		records[m] = NewMonthlyRecord(month, streams)
	}
	return records
}

// NewMonthlyRecord derives totals and revenue from the platform streams.
func NewMonthlyRecord(month string, streams models.PlatformStreams) models.MonthlyRecord {
	revenue := models.PlatformRevenue{
		Spotify:     float64(streams.Spotify) * PerStreamRate,
		AppleMusic:  float64(streams.AppleMusic) * PerStreamRate,
		YouTube:     float64(streams.YouTube) * PerStreamRate,
		AmazonMusic: float64(streams.AmazonMusic) * PerStreamRate,
	}
	return models.MonthlyRecord{
		Month:        month,
		Streams:      streams,
		TotalStreams: streams.Total(),
		Revenue:      revenue,
		TotalRevenue: revenue.Total(),
	}
}

// CountryRevenue samples one revenue figure per country. Values are not
// clamped; a draw five deviations below the mean would be negative.
func CountryRevenue(rng *rand.Rand, countries []string) []models.CountryRevenueRecord {
	records := make([]models.CountryRevenueRecord, len(countries))
	for i, country := range countries {
		records[i] = models.CountryRevenueRecord{
			Country: country,
			Revenue: sampleNormal(rng, countryRevenueMean, countryRevenueStdDev),
		}
	}
	return records
}

// sampleNormal draws from N(mean, stdDev) and truncates toward zero.
func sampleNormal(rng *rand.Rand, mean, stdDev float64) int64 {
	return int64(mean + stdDev*rng.NormFloat64())
}
