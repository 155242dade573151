package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"

	"github.com/openepi/covid-dashboard/chart"
	"github.com/openepi/covid-dashboard/consts"
	"github.com/openepi/covid-dashboard/dataset"
)

type historicalQueryParams struct {
	Country string `form:"country"`
	Year    int    `form:"year"`
}

// dashboardPage serves the browser page; the page drives the JSON endpoints
// below on every control change.
func (s *Server) dashboardPage(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"countries": consts.SelectableCountries,
		"version":   viper.GetString("server.version"),
	})
}

// getSnapshot returns the current per-country table with its bubble-map
// figure.
func (s *Server) getSnapshot(c *gin.Context) {
	snapshots, err := s.pipeline.Snapshot()
	if err != nil {
		abortWithDataError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"countries": snapshots,
		"figure":    chart.CaseBubbleMap(snapshots),
	})
}

// getHistorical returns one year of the cumulative history for the selected
// country (Global or empty selects the worldwide series), plus the years
// available for the year dropdown, the metric-card summary and the trend
// figure.
func (s *Server) getHistorical(c *gin.Context) {
	var params historicalQueryParams
	if err := c.Bind(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	if params.Year < 0 {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, fmt.Errorf("negative year"))
		return
	}

	filter := consts.CountryFilter(params.Country)
	label := params.Country
	if filter == "" {
		label = consts.GlobalSelection
	}

	table, err := s.pipeline.History(filter)
	if err != nil {
		abortWithDataError(c, err)
		return
	}

	years := dataset.Years(table)
	year := params.Year
	if year == 0 && len(years) > 0 {
		year = years[len(years)-1]
	}

	filtered := dataset.FilterYear(table, year)
	summary := dataset.Summarize(filtered)

	cards := gin.H{
		"confirmed": formatCount(summary.Confirmed),
		"deaths":    formatCount(summary.Deaths),
		// null when the source has no recovered series; the page shows N/A
		"recovered": nil,
	}
	if summary.Recovered != nil {
		cards["recovered"] = formatCount(*summary.Recovered)
	}

	c.JSON(http.StatusOK, gin.H{
		"country": label,
		"year":    year,
		"years":   years,
		"rows":    filtered.Rows,
		"summary": cards,
		"figure":  chart.TrendLines(filtered, label, year),
	})
}

// getVaccinations returns the vaccination series of one specific country. A
// country without published data yields an empty table and a warning
// message, the single handled empty case.
func (s *Server) getVaccinations(c *gin.Context) {
	country := c.Param("country")
	if consts.CountryFilter(country) == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters,
			fmt.Errorf("vaccination data requires a specific country"))
		return
	}

	table, err := s.pipeline.Vaccinations(country)
	if err != nil {
		abortWithDataError(c, err)
		return
	}

	if len(table.Rows) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"country": country,
			"rows":    table.Rows,
			"message": fmt.Sprintf("No vaccination data available for %s.", country),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"country": country,
		"rows":    table.Rows,
		"total":   formatCount(dataset.VaccinationTotal(table)),
		"figure":  chart.VaccinationLine(table, country),
	})
}

// abortWithDataError maps pipeline failures onto the error taxonomy: shape
// errors are server-side faults, everything else is the upstream source.
func abortWithDataError(c *gin.Context, err error) {
	log.Error(err)

	switch err {
	case dataset.ErrMissingSeries:
		abortWithEncoding(c, http.StatusInternalServerError, errorMissingSeries, err)
	case dataset.ErrMisalignedSeries:
		abortWithEncoding(c, http.StatusInternalServerError, errorMisalignedSeries, err)
	default:
		abortWithEncoding(c, http.StatusBadGateway, errorUpstreamSource, err)
	}
}
