package consts_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/openepi/covid-dashboard/consts"
)

func TestCountryFilter(t *testing.T) {
	mapping := map[string]string{
		"Global":  "",
		"global":  "",
		"":        "",
		"USA":     "USA",
		"India":   "India",
		"Brazil":  "Brazil",
		"Germany": "Germany",
		"France":  "France",
		"UK":      "UK",
		"China":   "China",
		"Japan":   "Japan",
	}

	for selection, value := range mapping {
		assert.Equal(t, value, consts.CountryFilter(selection), "wrong filter")
	}
}

func TestSelectableCountriesStartsWithGlobal(t *testing.T) {
	assert.Equal(t, consts.GlobalSelection, consts.SelectableCountries[0], "wrong first choice")
	assert.Len(t, consts.SelectableCountries, 9, "wrong number of choices")
}
