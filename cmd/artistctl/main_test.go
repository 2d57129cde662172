package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"artist-dashboard/internal/errors"
	"artist-dashboard/internal/models"
	"artist-dashboard/internal/report"
)

// execute runs artistctl with fresh global flags and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	verbose, quiet, noColor = false, false, false
	seed, outputFormat = 0, report.FormatTable
	color.NoColor = true

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(append([]string{"--quiet"}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRootHelp(t *testing.T) {
	out, err := execute(t, "--help")
	require.NoError(t, err)

	for _, sub := range []string{"artists", "monthly", "countries", "rankings", "insight", "version"} {
		assert.Contains(t, out, sub)
	}
}

func TestGlobalFlags(t *testing.T) {
	for _, name := range []string{"verbose", "quiet", "no-color", "seed", "output"} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(name), name)
	}
	assert.Equal(t, "verbose", rootCmd.PersistentFlags().ShorthandLookup("v").Name)
	assert.Equal(t, "quiet", rootCmd.PersistentFlags().ShorthandLookup("q").Name)
	assert.Equal(t, "output", rootCmd.PersistentFlags().ShorthandLookup("o").Name)
}

func TestArtists_Table(t *testing.T) {
	out, err := execute(t, "artists", "--seed", "42")
	require.NoError(t, err)

	assert.Contains(t, out, "Künstler")
	assert.Contains(t, out, "Purple Disco Machine")
	assert.Contains(t, out, "2.5Mrd")
	assert.Contains(t, out, "2.70")
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 7)
}

func TestRankings_JSON(t *testing.T) {
	out, err := execute(t, "rankings", "-o", "json")
	require.NoError(t, err)

	var rankings []models.ScoreRanking
	require.NoError(t, json.Unmarshal([]byte(out), &rankings))
	require.Len(t, rankings, 5)

	names := make([]string, len(rankings))
	for i, r := range rankings {
		names[i] = r.Name
	}
	assert.Equal(t, []string{
		"Jean Michel Jarre",
		"Purple Disco Machine",
		"Fritz Kalkbrenner",
		"Avaion",
		"Anfisa Letyago",
	}, names)
	assert.Equal(t, 1, rankings[0].Rank)
}

func TestMonthly_ReproducibleWithSeed(t *testing.T) {
	first, err := execute(t, "monthly", "Avaion", "--seed", "7", "--output", "yaml")
	require.NoError(t, err)
	second, err := execute(t, "monthly", "Avaion", "--seed", "7", "--output", "yaml")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	var records []models.MonthlyRecord
	require.NoError(t, yaml.Unmarshal([]byte(first), &records))
	require.Len(t, records, 8)
	assert.Equal(t, "Mai 2024", records[4].Month)
	for _, r := range records {
		assert.Equal(t, r.Streams.Total(), r.TotalStreams)
	}
}

func TestMonthly_Table(t *testing.T) {
	out, err := execute(t, "monthly", "Avaion", "--seed", "7")
	require.NoError(t, err)

	assert.Contains(t, out, "Gesamt Umsatz")
	assert.Contains(t, out, "Jan 2024")
	assert.Contains(t, out, "Aug 2024")
	assert.Contains(t, out, " €")
}

func TestCountries_Table(t *testing.T) {
	out, err := execute(t, "countries", "Fritz Kalkbrenner", "--seed", "3")
	require.NoError(t, err)

	for _, country := range []string{"Deutschland", "Frankreich", "Grossbritannien", "Italien", "Spanien"} {
		assert.Contains(t, out, country)
	}
	assert.Contains(t, out, "%")
}

func TestInsight_YAML(t *testing.T) {
	out, err := execute(t, "insight", "Jean Michel Jarre", "-o", "yaml")
	require.NoError(t, err)

	var insight models.ArtistInsight
	require.NoError(t, yaml.Unmarshal([]byte(out), &insight))
	assert.Equal(t, "Jean Michel Jarre", insight.Name)
	assert.Equal(t, 1, insight.Rank)
	assert.True(t, insight.ScoreAboveMean)
}

func TestInsight_Table(t *testing.T) {
	out, err := execute(t, "insight", "Anfisa Letyago")
	require.NoError(t, err)

	assert.Contains(t, out, "Top-Plattform")
	assert.Contains(t, out, "nein")
}

func TestUnknownArtist(t *testing.T) {
	for _, sub := range []string{"monthly", "countries", "insight"} {
		t.Run(sub, func(t *testing.T) {
			_, err := execute(t, sub, "Nobody")
			require.Error(t, err)
			assert.True(t, errors.IsNotFound(err))
		})
	}
}

func TestInvalidOutputFormat(t *testing.T) {
	_, err := execute(t, "artists", "--output", "csv")
	assert.ErrorContains(t, err, "unknown output format")
}

func TestMissingName(t *testing.T) {
	_, err := execute(t, "monthly")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "artistctl "))
}
