package services

import (
	"bytes"
	"context"
	"log/slog"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"artist-dashboard/internal/errors"
	"artist-dashboard/internal/models"
)

func generateCatalog(t *testing.T, seed uint64) *Catalog {
	t.Helper()
	catalog, err := NewGenerator(seed).Generate(context.Background())
	require.NoError(t, err)
	return catalog
}

func TestNewGenerator_ZeroSeed(t *testing.T) {
	g := NewGenerator(0)
	assert.NotZero(t, g.Seed())

	assert.Equal(t, uint64(42), NewGenerator(42).Seed())
}

func TestGenerate_Shape(t *testing.T) {
	catalog := generateCatalog(t, 42)

	artists := catalog.Artists()
	require.Len(t, artists, 5)

	seen := make(map[string]bool)
	for _, a := range artists {
		assert.False(t, seen[a.Name], "duplicate artist %q", a.Name)
		seen[a.Name] = true

		series, err := catalog.MonthlySeries(a.Name)
		require.NoError(t, err)
		require.Len(t, series, 8)
		for i, r := range series {
			assert.Equal(t, Months[i], r.Month)
		}

		countries, err := catalog.CountryRevenue(a.Name)
		require.NoError(t, err)
		require.Len(t, countries, 5)
		for i, r := range countries {
			assert.Equal(t, Countries[i], r.Country)
		}

		assert.InDelta(t, PerformanceScore(a), a.PerformanceScore, 1e-12)
	}
}

func TestGenerate_MonthlyInvariants(t *testing.T) {
	catalog := generateCatalog(t, 7)

	for _, name := range catalog.Names() {
		series, err := catalog.MonthlySeries(name)
		require.NoError(t, err)

		for _, r := range series {
			s := r.Streams
			assert.Equal(t, s.Spotify+s.AppleMusic+s.YouTube+s.AmazonMusic, r.TotalStreams)

			rv := r.Revenue
			assert.Equal(t, rv.Spotify+rv.AppleMusic+rv.YouTube+rv.AmazonMusic, r.TotalRevenue)

			assert.InDelta(t, float64(s.Spotify)*0.004, rv.Spotify, 1e-9)
			assert.InDelta(t, float64(s.AppleMusic)*0.004, rv.AppleMusic, 1e-9)
			assert.InDelta(t, float64(s.YouTube)*0.004, rv.YouTube, 1e-9)
			assert.InDelta(t, float64(s.AmazonMusic)*0.004, rv.AmazonMusic, 1e-9)
		}
	}
}

func TestGenerate_MonthlyMeans(t *testing.T) {
	catalog := generateCatalog(t, 99)
	jarre, err := catalog.Artist("Jean Michel Jarre")
	require.NoError(t, err)

	series, err := catalog.MonthlySeries(jarre.Name)
	require.NoError(t, err)

	// Every sample lies within six deviations of its platform mean.
	for _, r := range series {
		assert.InDelta(t, float64(jarre.Streams.Spotify)/12, float64(r.Streams.Spotify), 6e7)
		assert.InDelta(t, float64(jarre.Streams.AppleMusic)/8, float64(r.Streams.AppleMusic), 3e7)
		assert.InDelta(t, float64(jarre.Streams.YouTube)/8, float64(r.Streams.YouTube), 4.8e7)
		assert.InDelta(t, float64(jarre.Streams.AmazonMusic)/8, float64(r.Streams.AmazonMusic), 1.8e7)
	}
}

func TestGenerate_CountryRevenueRange(t *testing.T) {
	catalog := generateCatalog(t, 3)

	for _, name := range catalog.Names() {
		records, err := catalog.CountryRevenue(name)
		require.NoError(t, err)
		for _, r := range records {
			assert.InDelta(t, 1_000_000, float64(r.Revenue), 1_200_000)
		}
	}
}

func TestGenerate_SameSeedSameData(t *testing.T) {
	a := generateCatalog(t, 1234)
	b := generateCatalog(t, 1234)

	for _, name := range a.Names() {
		sa, _ := a.MonthlySeries(name)
		sb, _ := b.MonthlySeries(name)
		assert.Equal(t, sa, sb)

		ca, _ := a.CountryRevenue(name)
		cb, _ := b.CountryRevenue(name)
		assert.Equal(t, ca, cb)
	}
}

func TestGenerate_DifferentSeedDifferentData(t *testing.T) {
	a := generateCatalog(t, 1)
	b := generateCatalog(t, 2)

	sa, _ := a.MonthlySeries("Avaion")
	sb, _ := b.MonthlySeries("Avaion")
	assert.NotEqual(t, sa, sb)
}

func TestBuild_DuplicateNames(t *testing.T) {
	artists := ReferenceArtists()
	artists = append(artists, artists[0])

	_, err := NewGenerator(1).Build(context.Background(), artists)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.CodeValidation))
}

func TestBuild_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewGenerator(1).Generate(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestBuild_LogsFinishedSpan(t *testing.T) {
	tests := []struct {
		name    string
		artists func() []models.Artist
		status  string
	}{
		{"ok", ReferenceArtists, "status=OK"},
		{"duplicate", func() []models.Artist {
			artists := ReferenceArtists()
			return append(artists, artists[0])
		}, "status=ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

			_, _ = NewGenerator(7, WithLogger(logger)).Build(context.Background(), tt.artists())

			out := buf.String()
			assert.Contains(t, out, "span finished")
			assert.Contains(t, out, "span.operation=catalog.build")
			assert.Contains(t, out, "span.seed=7")
			assert.Contains(t, out, "span."+tt.status)
		})
	}
}

func TestBuild_DoesNotMutateInput(t *testing.T) {
	artists := ReferenceArtists()

	_, err := NewGenerator(1).Build(context.Background(), artists)
	require.NoError(t, err)

	for _, a := range artists {
		assert.Zero(t, a.PerformanceScore)
	}
}

func TestNewMonthlyRecord_Negative(t *testing.T) {
	r := NewMonthlyRecord("Jan 2024", models.PlatformStreams{
		Spotify:     -1000,
		AppleMusic:  2000,
		YouTube:     0,
		AmazonMusic: 250,
	})

	assert.Equal(t, int64(1250), r.TotalStreams)
	assert.InDelta(t, -4.0, r.Revenue.Spotify, 1e-9)
	assert.InDelta(t, 5.0, r.TotalRevenue, 1e-9)
}

func TestSampleNormal_TruncatesTowardZero(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for range 1000 {
		v := sampleNormal(rng, -0.5, 0.05)
		assert.Equal(t, int64(0), v)
	}

	for range 1000 {
		v := sampleNormal(rng, 10.5, 0.05)
		assert.Equal(t, int64(10), v)
	}
}

func TestReferenceArtists_FreshCopies(t *testing.T) {
	first := ReferenceArtists()
	first[0].Name = "changed"

	assert.Equal(t, "Anfisa Letyago", ReferenceArtists()[0].Name)
}
