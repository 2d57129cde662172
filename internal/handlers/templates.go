package handlers

import (
	"html/template"
	"strings"

	"artist-dashboard/internal/format"
)

var funcs = template.FuncMap{
	"compact":  func(v int64) string { return format.Compact(float64(v)) },
	"percent":  format.Percent,
	"currency": format.Currency,
	"grouped":  format.Grouped,
	"euro":     format.Euro,
	"euroInt":  func(v int64) string { return format.Euro(float64(v)) },
	"score":    format.Score,
}

var overviewTemplate = template.Must(template.New("overview").Funcs(funcs).Parse(`
<div id="artist-overview">
<h2>{{.Artist.Name}}</h2>
<div class="metric-grid">
<div class="metric"><span class="metric-label">Streams - Spotify</span><span class="metric-value">{{compact .Artist.Streams.Spotify}}</span></div>
<div class="metric"><span class="metric-label">Follower - Instagram</span><span class="metric-value">{{compact .Artist.InstagramFollows}}</span></div>
<div class="metric"><span class="metric-label">Follower - TikTok</span><span class="metric-value">{{compact .Artist.TikTokFollows}}</span></div>
<div class="metric"><span class="metric-label">Performance-Score</span><span class="metric-value">{{score .Artist.PerformanceScore}}</span></div>
</div>
<p>{{if eq .Insight.TopPlatform "Spotify"}}Spotify{{else}}Eine andere Plattform als Spotify{{end}} generiert die meisten Streams für {{.Artist.Name}}.</p>
<p>{{.Artist.Name}} hat {{compact .Artist.InstagramFollows}} Instagram-Follower und {{compact .Artist.TikTokFollows}} TikTok-Follower mit einer Engagement-Rate von {{percent .Artist.EngagementRate}}.</p>
<p>{{.Artist.Name}} hat {{compact .Artist.VinylSales}} Vinyl-Verkäufe ({{percent .Insight.VinylShare}} des Katalogs). {{if .Insight.VinylAboveMean}}Dies deutet auf ein starkes Interesse der Fans an physischen Medien hin.{{else}}Hier könnte Potenzial für spezielle Vinyl-Editionen liegen.{{end}}</p>
<p>Performance-Score {{score .Insight.Score}} (Rang {{.Insight.Rank}}). {{if .Insight.ScoreAboveMean}}Dies deutet auf eine starke Gesamtperformance hin.{{else}}Hier könnte es Raum für Verbesserungen geben.{{end}}</p>
<p>Durchschnittlicher Ticketpreis {{currency .Artist.AvgTicketPrice}}, Engagement-Rate {{percent .Artist.EngagementRate}}. {{if .Insight.EngagementAboveMean}}Gute Balance zwischen Ticketpreis und Fan-Engagement.{{else}}Potenzial, das Fan-Engagement zu steigern.{{end}}</p>
</div>`))

var monthlyTableTemplate = template.Must(template.New("monthlyTable").Funcs(funcs).Parse(`
<div id="monthly-content">
<table class="modern-table">
<thead><tr><th>Monat</th><th>Spotify</th><th>Apple Music</th><th>YouTube</th><th>Amazon Music</th><th>Gesamtstreams</th><th>Gesamtumsatz</th></tr></thead>
<tbody>
{{range .}}<tr>
<td>{{.Month}}</td>
<td>{{grouped .Streams.Spotify}}</td>
<td>{{grouped .Streams.AppleMusic}}</td>
<td>{{grouped .Streams.YouTube}}</td>
<td>{{grouped .Streams.AmazonMusic}}</td>
<td><strong>{{grouped .TotalStreams}}</strong></td>
<td><strong>{{euro .TotalRevenue}}</strong></td>
</tr>{{end}}
</tbody>
</table>
</div>`))

var countryTableTemplate = template.Must(template.New("countryTable").Funcs(funcs).Parse(`
<div id="country-content">
<table class="modern-table">
<thead><tr><th>Land</th><th>Umsatz</th><th>Anteil</th></tr></thead>
<tbody>
{{range .}}<tr>
<td>{{.Country}}</td>
<td>{{euroInt .Revenue}}</td>
<td>{{percent .Share}}</td>
</tr>{{end}}
</tbody>
</table>
</div>`))

var rankingTableTemplate = template.Must(template.New("rankingTable").Funcs(funcs).Parse(`
<div id="ranking-content">
<table class="modern-table">
<thead><tr><th>#</th><th>Künstler</th><th>Performance-Score</th></tr></thead>
<tbody>
{{range .}}<tr>
<td>{{.Rank}}</td>
<td>{{.Name}}</td>
<td><strong>{{score .Score}}</strong></td>
</tr>{{end}}
</tbody>
</table>
</div>`))

func render(tmpl *template.Template, data any) (string, error) {
	var buf strings.Builder
	err := tmpl.Execute(&buf, data)
	return buf.String(), err
}
