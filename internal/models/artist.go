package models

type Platform string

const (
	PlatformSpotify     Platform = "Spotify"
	PlatformAppleMusic  Platform = "Apple Music"
	PlatformYouTube     Platform = "YouTube"
	PlatformAmazonMusic Platform = "Amazon Music"
)

// Platforms lists the streaming platforms in display order.
var Platforms = []Platform{
	PlatformSpotify,
	PlatformAppleMusic,
	PlatformYouTube,
	PlatformAmazonMusic,
}

// PlatformStreams holds one stream count per platform.
type PlatformStreams struct {
	Spotify     int64 `json:"spotify" yaml:"spotify"`
	AppleMusic  int64 `json:"apple_music" yaml:"apple_music"`
	YouTube     int64 `json:"youtube" yaml:"youtube"`
	AmazonMusic int64 `json:"amazon_music" yaml:"amazon_music"`
}

func (p PlatformStreams) Get(platform Platform) int64 {
	switch platform {
	case PlatformSpotify:
		return p.Spotify
	case PlatformAppleMusic:
		return p.AppleMusic
	case PlatformYouTube:
		return p.YouTube
	case PlatformAmazonMusic:
		return p.AmazonMusic
	default:
		return 0
	}
}

func (p PlatformStreams) Total() int64 {
	return p.Spotify + p.AppleMusic + p.YouTube + p.AmazonMusic
}

// PlatformRevenue holds one revenue amount (EUR) per platform.
type PlatformRevenue struct {
	Spotify     float64 `json:"spotify" yaml:"spotify"`
	AppleMusic  float64 `json:"apple_music" yaml:"apple_music"`
	YouTube     float64 `json:"youtube" yaml:"youtube"`
	AmazonMusic float64 `json:"amazon_music" yaml:"amazon_music"`
}

func (p PlatformRevenue) Total() float64 {
	return p.Spotify + p.AppleMusic + p.YouTube + p.AmazonMusic
}

type Artist struct {
	Name             string          `json:"name" yaml:"name"`
	Streams          PlatformStreams `json:"streams" yaml:"streams"`
	InstagramFollows int64           `json:"instagram_followers" yaml:"instagram_followers"`
	TikTokFollows    int64           `json:"tiktok_followers" yaml:"tiktok_followers"`
	VinylSales       int64           `json:"vinyl_sales" yaml:"vinyl_sales"`
	EngagementRate   float64         `json:"engagement_rate" yaml:"engagement_rate"`
	AvgTicketPrice   float64         `json:"avg_ticket_price" yaml:"avg_ticket_price"`
	PerformanceScore float64         `json:"performance_score" yaml:"performance_score"`
}

type MonthlyRecord struct {
	Month        string          `json:"month" yaml:"month"`
	Streams      PlatformStreams `json:"streams" yaml:"streams"`
	TotalStreams int64           `json:"total_streams" yaml:"total_streams"`
	Revenue      PlatformRevenue `json:"revenue" yaml:"revenue"`
	TotalRevenue float64         `json:"total_revenue" yaml:"total_revenue"`
}

type CountryRevenueRecord struct {
	Country string `json:"country" yaml:"country"`
	Revenue int64  `json:"revenue" yaml:"revenue"`
}

// CountryShare is a country's slice of an artist's EU5 revenue.
type CountryShare struct {
	Country string  `json:"country" yaml:"country"`
	Revenue int64   `json:"revenue" yaml:"revenue"`
	Share   float64 `json:"share" yaml:"share"`
}

type ScoreRanking struct {
	Rank  int     `json:"rank" yaml:"rank"`
	Name  string  `json:"name" yaml:"name"`
	Score float64 `json:"score" yaml:"score"`
}

type CatalogAverages struct {
	VinylSales       float64 `json:"vinyl_sales" yaml:"vinyl_sales"`
	EngagementRate   float64 `json:"engagement_rate" yaml:"engagement_rate"`
	PerformanceScore float64 `json:"performance_score" yaml:"performance_score"`
}

type ArtistInsight struct {
	Name                string   `json:"name" yaml:"name"`
	TopPlatform         Platform `json:"top_platform" yaml:"top_platform"`
	VinylAboveMean      bool     `json:"vinyl_above_mean" yaml:"vinyl_above_mean"`
	EngagementAboveMean bool     `json:"engagement_above_mean" yaml:"engagement_above_mean"`
	ScoreAboveMean      bool     `json:"score_above_mean" yaml:"score_above_mean"`
	VinylShare          float64  `json:"vinyl_share" yaml:"vinyl_share"`
	Score               float64  `json:"score" yaml:"score"`
	Rank                int      `json:"rank" yaml:"rank"`
}

// MonthlyTotals is the chart-ready projection of a monthly series.
type MonthlyTotals struct {
	Month   string  `json:"month" yaml:"month"`
	Streams int64   `json:"streams" yaml:"streams"`
	Revenue float64 `json:"revenue" yaml:"revenue"`
}
