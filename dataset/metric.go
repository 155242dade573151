package dataset

import "github.com/openepi/covid-dashboard/schema"

// Summary carries the metric-card values for one filtered year: the maximum
// of each cumulative column, which for an intact cumulative series equals
// its final value. Recovered is nil when the table has no recovered column.
type Summary struct {
	Confirmed int64  `json:"confirmed"`
	Deaths    int64  `json:"deaths"`
	Recovered *int64 `json:"recovered"`
}

// Summarize computes the per-column maxima of a (typically year-filtered)
// history table. Values are trusted as supplied; monotonicity of the
// cumulative series is not verified.
func Summarize(table *schema.HistoryTable) Summary {
	var summary Summary
	var recovered int64

	for _, row := range table.Rows {
		if row.Confirmed > summary.Confirmed {
			summary.Confirmed = row.Confirmed
		}
		if row.Deaths > summary.Deaths {
			summary.Deaths = row.Deaths
		}
		if row.Recovered != nil && *row.Recovered > recovered {
			recovered = *row.Recovered
		}
	}

	if table.HasRecovered {
		summary.Recovered = &recovered
	}

	return summary
}

// VaccinationTotal is the maximum cumulative dose count of a vaccination
// table; zero for an empty table.
func VaccinationTotal(table *schema.VaccinationTable) int64 {
	var total int64
	for _, row := range table.Rows {
		if row.Total > total {
			total = row.Total
		}
	}
	return total
}
