package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"artist-dashboard/internal/format"
	"artist-dashboard/internal/report"
)

var monthlyCmd = &cobra.Command{
	Use:   "monthly NAME",
	Short: "Show the sampled 2024 monthly streams and revenue of an artist",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		metrics, err := loadMetrics(cmd.Context())
		if err != nil {
			return err
		}
		records, err := metrics.GetMonthlySeries(args[0])
		if err != nil {
			return err
		}

		return emit(cmd, records, func() *report.Table {
			tbl := report.NewTable(
				report.Column{Header: "Monat"},
				report.Column{Header: "Spotify", Align: report.AlignRight},
				report.Column{Header: "Apple Music", Align: report.AlignRight},
				report.Column{Header: "YouTube", Align: report.AlignRight},
				report.Column{Header: "Amazon Music", Align: report.AlignRight},
				report.Column{Header: "Gesamt Streams", Align: report.AlignRight},
				report.Column{Header: "Gesamt Umsatz", Align: report.AlignRight},
			)
			for _, r := range records {
				tbl.AddRow(
					r.Month,
					format.Grouped(r.Streams.Spotify),
					format.Grouped(r.Streams.AppleMusic),
					format.Grouped(r.Streams.YouTube),
					format.Grouped(r.Streams.AmazonMusic),
					format.Grouped(r.TotalStreams),
					format.Euro(r.TotalRevenue),
				)
			}
			return tbl
		})
	},
}

var countriesCmd = &cobra.Command{
	Use:   "countries NAME",
	Short: "Show the sampled EU5 revenue split of an artist",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		metrics, err := loadMetrics(cmd.Context())
		if err != nil {
			return err
		}
		shares, err := metrics.GetCountryShares(args[0])
		if err != nil {
			return err
		}

		return emit(cmd, shares, func() *report.Table {
			tbl := report.NewTable(
				report.Column{Header: "Land"},
				report.Column{Header: "Umsatz", Align: report.AlignRight},
				report.Column{Header: "Anteil", Align: report.AlignRight},
			)
			for _, s := range shares {
				tbl.AddRow(s.Country, format.Euro(float64(s.Revenue)), format.Percent(s.Share))
			}
			return tbl
		})
	},
}

var insightCmd = &cobra.Command{
	Use:   "insight NAME",
	Short: "Compare an artist against the catalog averages",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		metrics, err := loadMetrics(cmd.Context())
		if err != nil {
			return err
		}
		insight, err := metrics.Insight(args[0])
		if err != nil {
			return err
		}

		return emit(cmd, insight, func() *report.Table {
			tbl := report.NewTable(
				report.Column{Header: "Kennzahl"},
				report.Column{Header: "Wert", Align: report.AlignRight},
			)
			tbl.AddRow("Künstler", insight.Name)
			tbl.AddRow("Top-Plattform", string(insight.TopPlatform))
			tbl.AddRow("Score", format.Score(insight.Score))
			tbl.AddRow("Rang", strconv.Itoa(insight.Rank))
			tbl.AddRow("Vinyl-Anteil", format.Percent(insight.VinylShare))
			tbl.AddRow("Vinyl über Schnitt", yesNo(insight.VinylAboveMean))
			tbl.AddRow("Engagement über Schnitt", yesNo(insight.EngagementAboveMean))
			tbl.AddRow("Score über Schnitt", yesNo(insight.ScoreAboveMean))
			return tbl
		})
	},
}

func yesNo(b bool) string {
	if b {
		return "ja"
	}
	return "nein"
}
