package diseasesh

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"

	log "github.com/sirupsen/logrus"
)

const (
	defaultEndpoint = "https://disease.sh"
	userAgent       = "covid-dashboard"

	logPrefix = "diseasesh"
)

// HistoricalTimeline is the raw shape of a cumulative history: one
// date-string to running-count map per metric. Recovered is nil when the
// source stopped publishing that series.
type HistoricalTimeline struct {
	Cases     map[string]int64 `json:"cases"`
	Deaths    map[string]int64 `json:"deaths"`
	Recovered map[string]int64 `json:"recovered"`
}

type countryHistoryResponse struct {
	Country  string             `json:"country"`
	Timeline HistoricalTimeline `json:"timeline"`
}

// VaccineRecord is one entry of the fullData vaccine coverage timeline.
type VaccineRecord struct {
	Total           int64  `json:"total"`
	Daily           int64  `json:"daily"`
	TotalPerHundred int64  `json:"totalPerHundred"`
	DailyPerMillion int64  `json:"dailyPerMillion"`
	Date            string `json:"date"`
}

type vaccineCoverageResponse struct {
	Country  string          `json:"country"`
	Timeline []VaccineRecord `json:"timeline"`
}

// CountryInfo carries the nested geographic block of a country snapshot.
// Coordinates are pointers since the source omits them for some territories.
type CountryInfo struct {
	ISO2 string   `json:"iso2"`
	ISO3 string   `json:"iso3"`
	Lat  *float64 `json:"lat"`
	Long *float64 `json:"long"`
	Flag string   `json:"flag"`
}

// Country is one row of the current snapshot list.
type Country struct {
	Updated     int64       `json:"updated"`
	Country     string      `json:"country"`
	CountryInfo CountryInfo `json:"countryInfo"`
	Cases       int64       `json:"cases"`
	TodayCases  int64       `json:"todayCases"`
	Deaths      int64       `json:"deaths"`
	TodayDeaths int64       `json:"todayDeaths"`
	Recovered   int64       `json:"recovered"`
	Active      int64       `json:"active"`
	Critical    int64       `json:"critical"`
	Population  int64       `json:"population"`
	Continent   string      `json:"continent"`
}

// DataSource - interface to the disease.sh open data API
type DataSource interface {
	GlobalHistory() (*HistoricalTimeline, error)
	CountryHistory(country string) (*HistoricalTimeline, error)
	VaccineCoverage(country string) ([]VaccineRecord, error)
	Countries() ([]Country, error)
}

type client struct {
	httpClient *http.Client
	endpoint   string
}

// New - a disease.sh client over the given http client; endpoint overrides
// the production API host when non-empty.
func New(httpClient *http.Client, endpoint string) DataSource {
	e := defaultEndpoint
	if endpoint != "" {
		e = endpoint
	}

	return &client{
		httpClient: httpClient,
		endpoint:   e,
	}
}

func (c *client) GlobalHistory() (*HistoricalTimeline, error) {
	var timeline HistoricalTimeline
	if err := c.getJSON("/v3/covid-19/historical/all?lastdays=all", &timeline); err != nil {
		return nil, err
	}
	return &timeline, nil
}

func (c *client) CountryHistory(country string) (*HistoricalTimeline, error) {
	var resp countryHistoryResponse
	query := fmt.Sprintf("/v3/covid-19/historical/%s?lastdays=all", url.PathEscape(country))
	if err := c.getJSON(query, &resp); err != nil {
		return nil, err
	}
	return &resp.Timeline, nil
}

func (c *client) VaccineCoverage(country string) ([]VaccineRecord, error) {
	var resp vaccineCoverageResponse
	query := fmt.Sprintf("/v3/covid-19/vaccine/coverage/countries/%s?lastdays=all&fullData=true", url.PathEscape(country))
	if err := c.getJSON(query, &resp); err != nil {
		return nil, err
	}
	return resp.Timeline, nil
}

func (c *client) Countries() ([]Country, error) {
	var countries []Country
	if err := c.getJSON("/v3/covid-19/countries", &countries); err != nil {
		return nil, err
	}
	return countries, nil
}

// getJSON performs one GET against the API and decodes the body. Any
// transport failure or non-2xx status aborts the request; there is no retry.
func (c *client) getJSON(path string, out interface{}) error {
	query := c.endpoint + path

	req, err := http.NewRequest("GET", query, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if nil != err {
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"url":    query,
			"error":  err,
		}).Error("get disease.sh json")
		return err
	}
	defer resp.Body.Close()

	data, err := ioutil.ReadAll(resp.Body)
	if nil != err {
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"url":    query,
			"error":  err,
		}).Error("read disease.sh response")
		return err
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"url":    query,
			"status": resp.StatusCode,
		}).Error("disease.sh response status")
		return fmt.Errorf("unexpected response status %d from %s", resp.StatusCode, path)
	}

	if err := json.Unmarshal(data, out); nil != err {
		log.WithFields(log.Fields{
			"prefix":   logPrefix,
			"error":    err,
			"raw json": string(data),
		}).Error("decode json")
		return err
	}

	return nil
}
