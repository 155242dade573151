package chart

import (
	"fmt"

	"github.com/openepi/covid-dashboard/schema"
)

const (
	// largest bubble diameter on the case map, in pixels
	maxBubbleSize = 40

	axisDateLayout = "2006-01-02"
)

// CaseBubbleMap draws one marker per country with known coordinates, area
// and color both scaled by total cases on a sequential Reds scale. Rows
// without coordinates are skipped, not an error.
func CaseBubbleMap(snapshots []schema.CountrySnapshot) Figure {
	var (
		lats  []float64
		lons  []float64
		texts []string
		cases []int64
	)

	var maxCases int64
	for _, s := range snapshots {
		if s.Lat == nil || s.Long == nil {
			continue
		}
		lats = append(lats, *s.Lat)
		lons = append(lons, *s.Long)
		texts = append(texts, s.Country)
		cases = append(cases, s.Cases)
		if s.Cases > maxCases {
			maxCases = s.Cases
		}
	}

	// plotly area sizing: sizeref = 2 * max(size) / maxBubbleSize^2
	sizeRef := 2 * float64(maxCases) / float64(maxBubbleSize*maxBubbleSize)
	if sizeRef <= 0 {
		sizeRef = 1
	}

	return Figure{
		Data: []Trace{{
			Type:      "scattergeo",
			Mode:      "markers",
			Lat:       lats,
			Lon:       lons,
			Text:      texts,
			HoverInfo: "text",
			Marker: &Marker{
				Size:       cases,
				SizeMode:   "area",
				SizeRef:    sizeRef,
				SizeMin:    2,
				Color:      cases,
				ColorScale: "Reds",
				ShowScale:  true,
			},
		}},
		Layout: Layout{
			Title: "Total COVID-19 Cases by Country",
			Geo: &Geo{
				ShowFrame:      false,
				ShowCoastlines: true,
				Projection:     Projection{Type: "equirectangular"},
			},
		},
	}
}

// TrendLines draws one cumulative line per available metric of a
// year-filtered history table. The recovered line exists only when the table
// carries a recovered column.
func TrendLines(table *schema.HistoryTable, label string, year int) Figure {
	dates := make([]string, 0, len(table.Rows))
	confirmed := make([]int64, 0, len(table.Rows))
	deaths := make([]int64, 0, len(table.Rows))
	recovered := make([]int64, 0, len(table.Rows))

	for _, row := range table.Rows {
		dates = append(dates, row.Date.Format(axisDateLayout))
		confirmed = append(confirmed, row.Confirmed)
		deaths = append(deaths, row.Deaths)
		if row.Recovered != nil {
			recovered = append(recovered, *row.Recovered)
		}
	}

	traces := []Trace{
		{Type: "scatter", Mode: "lines", Name: "confirmed", X: dates, Y: confirmed},
		{Type: "scatter", Mode: "lines", Name: "deaths", X: dates, Y: deaths},
	}
	if table.HasRecovered {
		traces = append(traces, Trace{Type: "scatter", Mode: "lines", Name: "recovered", X: dates, Y: recovered})
	}

	return Figure{
		Data: traces,
		Layout: Layout{
			Title: fmt.Sprintf("Cumulative COVID-19 Trends: %s (%d)", label, year),
			XAxis: &Axis{Title: "Date"},
			YAxis: &Axis{Title: "Count"},
		},
	}
}

// VaccinationLine draws the cumulative doses-administered line of one
// country over the whole reporting window.
func VaccinationLine(table *schema.VaccinationTable, country string) Figure {
	dates := make([]string, 0, len(table.Rows))
	totals := make([]int64, 0, len(table.Rows))
	for _, row := range table.Rows {
		dates = append(dates, row.Date.Format(axisDateLayout))
		totals = append(totals, row.Total)
	}

	return Figure{
		Data: []Trace{{
			Type: "scatter",
			Mode: "lines",
			Name: "total",
			X:    dates,
			Y:    totals,
		}},
		Layout: Layout{
			Title: fmt.Sprintf("Daily Cumulative Vaccinations: %s (%d-%d)", country, schema.FirstYear, schema.LastYear),
			XAxis: &Axis{Title: "Date"},
			YAxis: &Axis{Title: "Doses Administered"},
		},
	}
}
