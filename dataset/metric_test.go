package dataset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/openepi/covid-dashboard/dataset"
	"github.com/openepi/covid-dashboard/schema"
)

func int64p(v int64) *int64 { return &v }

func TestSummarize(t *testing.T) {
	table := &schema.HistoryTable{
		HasRecovered: true,
		Rows: []schema.TimeSeriesRow{
			{Confirmed: 10, Deaths: 1, Recovered: int64p(5)},
			{Confirmed: 30, Deaths: 3, Recovered: int64p(20)},
			{Confirmed: 20, Deaths: 2, Recovered: int64p(10)},
		},
	}

	summary := dataset.Summarize(table)
	assert.Equal(t, int64(30), summary.Confirmed, "wrong confirmed")
	assert.Equal(t, int64(3), summary.Deaths, "wrong deaths")
	assert.NotNil(t, summary.Recovered, "recovered should be set")
	assert.Equal(t, int64(20), *summary.Recovered, "wrong recovered")
}

func TestSummarizeWithoutRecovered(t *testing.T) {
	table := &schema.HistoryTable{
		Rows: []schema.TimeSeriesRow{
			{Confirmed: 10, Deaths: 1},
		},
	}

	summary := dataset.Summarize(table)
	assert.Nil(t, summary.Recovered, "recovered should be nil")
}

func TestVaccinationTotal(t *testing.T) {
	table := &schema.VaccinationTable{
		Rows: []schema.VaccinationRow{
			{Total: 100},
			{Total: 300},
			{Total: 200},
		},
	}
	assert.Equal(t, int64(300), dataset.VaccinationTotal(table), "wrong total")

	assert.Equal(t, int64(0), dataset.VaccinationTotal(&schema.VaccinationTable{}), "empty table should total zero")
}
