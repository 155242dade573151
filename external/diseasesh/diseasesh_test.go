package diseasesh_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/openepi/covid-dashboard/external/diseasesh"
)

func TestGlobalHistory(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v3/covid-19/historical/all", r.URL.Path, "wrong path")
		assert.Equal(t, "all", r.URL.Query().Get("lastdays"), "wrong lastdays")
		_, _ = w.Write([]byte(`{"cases":{"1/22/20":1,"1/23/20":2},"deaths":{"1/22/20":0,"1/23/20":0}}`))
	}))
	defer ts.Close()

	source := diseasesh.New(ts.Client(), ts.URL)
	timeline, err := source.GlobalHistory()
	assert.Nil(t, err, "wrong GlobalHistory")
	assert.Equal(t, int64(2), timeline.Cases["1/23/20"], "wrong cases")
	assert.Equal(t, int64(0), timeline.Deaths["1/22/20"], "wrong deaths")
	assert.Nil(t, timeline.Recovered, "recovered should be absent")
}

func TestCountryHistory(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v3/covid-19/historical/India", r.URL.Path, "wrong path")
		_, _ = w.Write([]byte(`{"country":"India","timeline":{"cases":{"1/22/20":0},"deaths":{"1/22/20":0},"recovered":{"1/22/20":0}}}`))
	}))
	defer ts.Close()

	source := diseasesh.New(ts.Client(), ts.URL)
	timeline, err := source.CountryHistory("India")
	assert.Nil(t, err, "wrong CountryHistory")
	assert.NotNil(t, timeline.Recovered, "recovered should be present")
	assert.Equal(t, int64(0), timeline.Cases["1/22/20"], "wrong cases")
}

func TestVaccineCoverage(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v3/covid-19/vaccine/coverage/countries/Japan", r.URL.Path, "wrong path")
		assert.Equal(t, "true", r.URL.Query().Get("fullData"), "wrong fullData")
		_, _ = w.Write([]byte(`{"country":"Japan","timeline":[{"total":100,"daily":100,"totalPerHundred":0,"dailyPerMillion":1,"date":"2/17/21"}]}`))
	}))
	defer ts.Close()

	source := diseasesh.New(ts.Client(), ts.URL)
	records, err := source.VaccineCoverage("Japan")
	assert.Nil(t, err, "wrong VaccineCoverage")
	assert.Len(t, records, 1, "wrong record count")
	assert.Equal(t, int64(100), records[0].Total, "wrong total")
	assert.Equal(t, "2/17/21", records[0].Date, "wrong date")
}

func TestCountries(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v3/covid-19/countries", r.URL.Path, "wrong path")
		_, _ = w.Write([]byte(`[{"country":"France","countryInfo":{"iso2":"FR","iso3":"FRA","lat":46,"long":2},"cases":38997490,"deaths":167985,"recovered":0},{"country":"MS Zaandam","countryInfo":{"iso2":"","iso3":""},"cases":9,"deaths":2,"recovered":7}]`))
	}))
	defer ts.Close()

	source := diseasesh.New(ts.Client(), ts.URL)
	countries, err := source.Countries()
	assert.Nil(t, err, "wrong Countries")
	assert.Len(t, countries, 2, "wrong country count")
	assert.Equal(t, "France", countries[0].Country, "wrong country")
	assert.NotNil(t, countries[0].CountryInfo.Lat, "lat should be present")
	assert.Equal(t, float64(46), *countries[0].CountryInfo.Lat, "wrong lat")
	assert.Nil(t, countries[1].CountryInfo.Lat, "lat should be absent")
}

func TestErrorStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"message":"Country not found or doesn't have any historical data"}`, http.StatusNotFound)
	}))
	defer ts.Close()

	source := diseasesh.New(ts.Client(), ts.URL)
	_, err := source.CountryHistory("Atlantis")
	assert.NotNil(t, err, "status error should propagate")
}
