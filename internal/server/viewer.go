package server

import (
	"html/template"
	"io"

	"github.com/mhofbauer/venue-calendar/internal/calendar"
)

var viewerTemplate = template.Must(template.New("viewer").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Venue Calendar {{.StartDate}} &ndash; {{.EndDate}}</title>
<style>
body { font-family: sans-serif; margin: 1.5rem; }
table { border-collapse: collapse; }
th, td { border: 1px solid #ccc; padding: 4px 8px; vertical-align: top; }
th { background: #f0f0f0; }
.venue { white-space: nowrap; }
.available { color: #1a7f37; }
.error { color: #b02a37; }
</style>
</head>
<body>
<h1>Venue availability {{.StartDate}} &ndash; {{.EndDate}}</h1>
<p>{{.TotalDays}} days, {{len .SortedTimes}} distinct start times.
Raw data: <a href="/api/calendar">/api/calendar</a></p>
<table>
<tr>
<th>Time</th>
{{range .SortedDates}}{{with index $.CalendarGrid .}}<th>{{.DayName}}</th>{{else}}<th class="error">{{.}} (failed)</th>{{end}}{{end}}
</tr>
{{range $time := .SortedTimes}}
<tr>
<th>{{$time}}</th>
{{range $date := $.SortedDates}}
<td>
{{with index $.CalendarGrid $date}}
{{range index .SlotsByTime $time}}
<div class="venue{{if .IsAvailable}} available{{end}}">{{.VenueName}} {{.TimeRange}}{{if .Price}} ({{.Price}}){{end}}</div>
{{end}}
{{end}}
</td>
{{end}}
</tr>
{{end}}
</table>
</body>
</html>
`))

// renderViewer writes the HTML grid for one week.
func renderViewer(w io.Writer, week *calendar.Week) error {
	return viewerTemplate.Execute(w, week)
}
