package schema

import "time"

const (
	// FirstYear and LastYear bound every table to the pandemic reporting
	// window; rows outside the closed range are discarded at build time.
	FirstYear = 2020
	LastYear  = 2023
)

// TimeSeriesRow is one date of a cumulative history table. Recovered is nil
// when the upstream source does not publish a recovered series at all.
type TimeSeriesRow struct {
	Date      time.Time `json:"date"`
	Year      int       `json:"year"`
	Confirmed int64     `json:"confirmed"`
	Deaths    int64     `json:"deaths"`
	Recovered *int64    `json:"recovered"`
}

// HistoryTable holds a cumulative case history sorted by date ascending with
// unique dates. HasRecovered reports whether the recovered column exists;
// when false every row's Recovered is nil.
type HistoryTable struct {
	Rows         []TimeSeriesRow `json:"rows"`
	HasRecovered bool            `json:"has_recovered"`
}

// VaccinationRow is one date of a cumulative doses-administered series.
type VaccinationRow struct {
	Date  time.Time `json:"date"`
	Year  int       `json:"year"`
	Total int64     `json:"total"`
}

// VaccinationTable may be empty when a country reports no vaccination
// timeline; an empty table is not an error.
type VaccinationTable struct {
	Rows []VaccinationRow `json:"rows"`
}

// WithinYears reports whether a parsed date falls inside the reporting
// window.
func WithinYears(t time.Time) bool {
	y := t.Year()
	return y >= FirstYear && y <= LastYear
}
