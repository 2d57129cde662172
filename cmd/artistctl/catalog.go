package main

import (
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"artist-dashboard/internal/format"
	"artist-dashboard/internal/report"
)

var artistsCmd = &cobra.Command{
	Use:   "artists",
	Short: "List the catalog with lifetime metrics and performance scores",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		metrics, err := loadMetrics(cmd.Context())
		if err != nil {
			return err
		}
		artists := metrics.GetCatalog()
		mean := metrics.Averages().PerformanceScore

		return emit(cmd, artists, func() *report.Table {
			tbl := report.NewTable(
				report.Column{Header: "Künstler"},
				report.Column{Header: "Spotify", Align: report.AlignRight},
				report.Column{Header: "Apple Music", Align: report.AlignRight},
				report.Column{Header: "YouTube", Align: report.AlignRight},
				report.Column{Header: "Amazon Music", Align: report.AlignRight},
				report.Column{Header: "Instagram", Align: report.AlignRight},
				report.Column{Header: "TikTok", Align: report.AlignRight},
				report.Column{Header: "Vinyl", Align: report.AlignRight},
				report.Column{Header: "Engagement", Align: report.AlignRight},
				report.Column{Header: "Ticket", Align: report.AlignRight},
				report.Column{Header: "Score", Align: report.AlignRight, Color: aboveMean(mean)},
			)
			for _, a := range artists {
				tbl.AddRow(
					a.Name,
					format.Compact(float64(a.Streams.Spotify)),
					format.Compact(float64(a.Streams.AppleMusic)),
					format.Compact(float64(a.Streams.YouTube)),
					format.Compact(float64(a.Streams.AmazonMusic)),
					format.Compact(float64(a.InstagramFollows)),
					format.Compact(float64(a.TikTokFollows)),
					format.Compact(float64(a.VinylSales)),
					format.Percent(a.EngagementRate),
					format.Currency(a.AvgTicketPrice),
					format.Score(a.PerformanceScore),
				)
			}
			return tbl
		})
	},
}

var rankingsCmd = &cobra.Command{
	Use:   "rankings",
	Short: "Rank artists by performance score",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		metrics, err := loadMetrics(cmd.Context())
		if err != nil {
			return err
		}
		rankings := metrics.Rankings()

		return emit(cmd, rankings, func() *report.Table {
			tbl := report.NewTable(
				report.Column{Header: "Rang", Align: report.AlignRight},
				report.Column{Header: "Künstler"},
				report.Column{Header: "Score", Align: report.AlignRight, Color: aboveMean(metrics.Averages().PerformanceScore)},
			)
			for _, r := range rankings {
				tbl.AddRow(strconv.Itoa(r.Rank), r.Name, format.Score(r.Score))
			}
			return tbl
		})
	},
}

// aboveMean colours scores at or above the catalog mean green.
func aboveMean(mean float64) report.ColorFunc {
	return report.Highlight(func(v string) bool {
		score, err := strconv.ParseFloat(v, 64)
		return err == nil && score >= mean
	}, color.FgGreen)
}
