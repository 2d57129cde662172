// Package templates renders the dashboard shell. Data arrives afterwards
// through datastar SSE patches.
//
// dashboard_templ.go is generated from dashboard.templ with `templ generate`.
package templates

import "encoding/json"

const (
	title    = "Artist Analytics Dashboard"
	subtitle = "Streaming- und Social-Media-Kennzahlen ausgewählter Künstler (fiktive Zahlen)"
)

// pageSignals is the initial datastar client state. The chart series are
// filled by /sse/artist and /sse/catalog.
type pageSignals struct {
	Artist       string `json:"artist"`
	PlatformData []any  `json:"platformData"`
	MonthlyData  []any  `json:"monthlyData"`
	CountryData  []any  `json:"countryData"`
	ScoreData    []any  `json:"scoreData"`
	SocialData   []any  `json:"socialData"`
	TicketData   []any  `json:"ticketData"`
	VinylData    []any  `json:"vinylData"`
}

// selectedArtist is the preselected entry of the picker: the first artist.
func selectedArtist(artists []string) string {
	if len(artists) == 0 {
		return ""
	}
	return artists[0]
}

func initialSignals(artist string) string {
	b, err := json.Marshal(pageSignals{
		Artist:       artist,
		PlatformData: []any{},
		MonthlyData:  []any{},
		CountryData:  []any{},
		ScoreData:    []any{},
		SocialData:   []any{},
		TicketData:   []any{},
		VinylData:    []any{},
	})
	if err != nil {
		return "{}"
	}
	return string(b)
}
