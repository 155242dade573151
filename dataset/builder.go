package dataset

import (
	"fmt"
	"sort"
	"time"

	"github.com/openepi/covid-dashboard/external/diseasesh"
	"github.com/openepi/covid-dashboard/schema"
)

// disease.sh historical dates come as month/day/two-digit-year, e.g. 1/22/20
const dateLayout = "1/2/06"

var (
	ErrMissingSeries    = fmt.Errorf("history payload has no cases or deaths series")
	ErrMisalignedSeries = fmt.Errorf("history series do not share the same dates")
)

// BuildHistoryTable joins the per-metric date maps of one history payload
// into a table sorted by date ascending and bounded to the reporting years.
// The join is on the date key: a date present in the cases series but absent
// from deaths (or from recovered when that series exists) is an error rather
// than a silently zero-filled row. A payload without a recovered series
// yields a table without a recovered column.
func BuildHistoryTable(timeline *diseasesh.HistoricalTimeline) (*schema.HistoryTable, error) {
	if timeline == nil || timeline.Cases == nil || timeline.Deaths == nil {
		return nil, ErrMissingSeries
	}

	hasRecovered := timeline.Recovered != nil

	type dated struct {
		key  string
		date time.Time
	}

	dates := make([]dated, 0, len(timeline.Cases))
	for key := range timeline.Cases {
		date, err := time.Parse(dateLayout, key)
		if err != nil {
			return nil, fmt.Errorf("unparseable history date %q: %s", key, err)
		}
		dates = append(dates, dated{key: key, date: date})
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].date.Before(dates[j].date) })

	rows := make([]schema.TimeSeriesRow, 0, len(dates))
	for _, d := range dates {
		if !schema.WithinYears(d.date) {
			continue
		}

		deaths, ok := timeline.Deaths[d.key]
		if !ok {
			return nil, ErrMisalignedSeries
		}

		row := schema.TimeSeriesRow{
			Date:      d.date,
			Year:      d.date.Year(),
			Confirmed: timeline.Cases[d.key],
			Deaths:    deaths,
		}

		if hasRecovered {
			recovered, ok := timeline.Recovered[d.key]
			if !ok {
				return nil, ErrMisalignedSeries
			}
			row.Recovered = &recovered
		}

		rows = append(rows, row)
	}

	return &schema.HistoryTable{
		Rows:         rows,
		HasRecovered: hasRecovered,
	}, nil
}

// BuildVaccinationTable coerces the already-tabular vaccine records, keeping
// only dates inside the reporting years. No entries is an empty table, not
// an error.
func BuildVaccinationTable(records []diseasesh.VaccineRecord) (*schema.VaccinationTable, error) {
	rows := make([]schema.VaccinationRow, 0, len(records))
	for _, record := range records {
		date, err := time.Parse(dateLayout, record.Date)
		if err != nil {
			return nil, fmt.Errorf("unparseable vaccination date %q: %s", record.Date, err)
		}
		if !schema.WithinYears(date) {
			continue
		}
		rows = append(rows, schema.VaccinationRow{
			Date:  date,
			Year:  date.Year(),
			Total: record.Total,
		})
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].Date.Before(rows[j].Date) })

	return &schema.VaccinationTable{Rows: rows}, nil
}

// BuildSnapshotTable keeps the six dashboard fields of each country row,
// hoisting the nested geographic coordinates to the top level. Rows whose
// country info lacks coordinates are kept with nil lat/long.
func BuildSnapshotTable(countries []diseasesh.Country) []schema.CountrySnapshot {
	snapshots := make([]schema.CountrySnapshot, 0, len(countries))
	for _, c := range countries {
		snapshots = append(snapshots, schema.CountrySnapshot{
			Country:   c.Country,
			Cases:     c.Cases,
			Deaths:    c.Deaths,
			Recovered: c.Recovered,
			Lat:       c.CountryInfo.Lat,
			Long:      c.CountryInfo.Long,
		})
	}
	return snapshots
}

// FilterYear derives a new table holding only the rows of one calendar year.
// The source table is never altered.
func FilterYear(table *schema.HistoryTable, year int) *schema.HistoryTable {
	rows := make([]schema.TimeSeriesRow, 0, len(table.Rows))
	for _, row := range table.Rows {
		if row.Year == year {
			rows = append(rows, row)
		}
	}
	return &schema.HistoryTable{
		Rows:         rows,
		HasRecovered: table.HasRecovered,
	}
}

// Years lists the distinct calendar years present in a table, ascending.
// The year dropdown is populated from this.
func Years(table *schema.HistoryTable) []int {
	seen := make(map[int]bool)
	years := make([]int, 0, schema.LastYear-schema.FirstYear+1)
	for _, row := range table.Rows {
		if !seen[row.Year] {
			seen[row.Year] = true
			years = append(years, row.Year)
		}
	}
	sort.Ints(years)
	return years
}
