package services

import "artist-dashboard/internal/models"

// ScoreWeight is one term of the performance score: Weight * Value(a) / Scale.
type ScoreWeight struct {
	Metric string
	Weight float64
	Scale  float64
	Value  func(a models.Artist) float64
}

// ScoreWeights are applied in order; the weights sum to 1.
var ScoreWeights = []ScoreWeight{
	{"spotify_streams", 0.25, 1e9, func(a models.Artist) float64 { return float64(a.Streams.Spotify) }},
	{"apple_music_streams", 0.15, 1e9, func(a models.Artist) float64 { return float64(a.Streams.AppleMusic) }},
	{"youtube_streams", 0.10, 1e9, func(a models.Artist) float64 { return float64(a.Streams.YouTube) }},
	{"amazon_music_streams", 0.10, 1e9, func(a models.Artist) float64 { return float64(a.Streams.AmazonMusic) }},
	{"instagram_followers", 0.15, 1e6, func(a models.Artist) float64 { return float64(a.InstagramFollows) }},
	{"tiktok_followers", 0.15, 1e6, func(a models.Artist) float64 { return float64(a.TikTokFollows) }},
	{"vinyl_sales", 0.05, 1e5, func(a models.Artist) float64 { return float64(a.VinylSales) }},
	{"engagement_rate", 0.05, 1, func(a models.Artist) float64 { return a.EngagementRate * 100 }},
}

// PerformanceScore blends an artist's lifetime metrics into one scalar.
// It reads only the lifetime attributes, never a previously attached score.
func PerformanceScore(a models.Artist) float64 {
	var score float64
	for _, w := range ScoreWeights {
		score += w.Weight * (w.Value(a) / w.Scale)
	}
	return score
}
