package services

import "artist-dashboard/internal/models"

// Months labels the eight sampled months of the series.
var Months = []string{
	"Jan 2024",
	"Feb 2024",
	"Mar 2024",
	"Apr 2024",
	"Mai 2024",
	"Jun 2024",
	"Jul 2024",
	"Aug 2024",
}

// Countries is the EU5 list used for the revenue split.
var Countries = []string{
	"Deutschland",
	"Frankreich",
	"Grossbritannien",
	"Italien",
	"Spanien",
}

// ReferenceArtists returns the fixed catalog with its lifetime figures.
// Every call returns a fresh slice holding the same values.
func ReferenceArtists() []models.Artist {
	return []models.Artist{
		{
			Name: "Anfisa Letyago",
			Streams: models.PlatformStreams{
				Spotify:     2_500_000_000,
				AppleMusic:  800_000_000,
				YouTube:     1_500_000_000,
				AmazonMusic: 300_000_000,
			},
			InstagramFollows: 4_000_000,
			TikTokFollows:    6_000_000,
			VinylSales:       50_000,
			EngagementRate:   0.05,
			AvgTicketPrice:   45,
		},
		{
			Name: "Avaion",
			Streams: models.PlatformStreams{
				Spotify:     3_000_000_000,
				AppleMusic:  1_000_000_000,
				YouTube:     2_500_000_000,
				AmazonMusic: 400_000_000,
			},
			InstagramFollows: 12_000_000,
			TikTokFollows:    30_000_000,
			VinylSales:       75_000,
			EngagementRate:   0.08,
			AvgTicketPrice:   60,
		},
		{
			Name: "Fritz Kalkbrenner",
			Streams: models.PlatformStreams{
				Spotify:     4_500_000_000,
				AppleMusic:  1_500_000_000,
				YouTube:     3_500_000_000,
				AmazonMusic: 600_000_000,
			},
			InstagramFollows: 24_000_000,
			TikTokFollows:    25_000_000,
			VinylSales:       100_000,
			EngagementRate:   0.06,
			AvgTicketPrice:   55,
		},
		{
			Name: "Jean Michel Jarre",
			Streams: models.PlatformStreams{
				Spotify:     5_500_000_000,
				AppleMusic:  2_000_000_000,
				YouTube:     2_000_000_000,
				AmazonMusic: 800_000_000,
			},
			InstagramFollows: 47_000_000,
			TikTokFollows:    15_000_000,
			VinylSales:       300_000,
			EngagementRate:   0.04,
			AvgTicketPrice:   80,
		},
		{
			Name: "Purple Disco Machine",
			Streams: models.PlatformStreams{
				Spotify:     6_000_000_000,
				AppleMusic:  2_500_000_000,
				YouTube:     3_000_000_000,
				AmazonMusic: 1_000_000_000,
			},
			InstagramFollows: 51_000_000,
			TikTokFollows:    2_000_000,
			VinylSales:       500_000,
			EngagementRate:   0.03,
			AvgTicketPrice:   120,
		},
	}
}
