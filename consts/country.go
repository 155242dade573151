package consts

import "strings"

// GlobalSelection is the sidebar choice that maps to the worldwide history
// endpoint instead of a per-country one.
const GlobalSelection = "Global"

// SelectableCountries is the closed set of sidebar choices. The identifiers
// are passed to the upstream service as-is; it accepts names, ISO codes and
// common abbreviations like "UK".
var SelectableCountries = []string{
	GlobalSelection,
	"USA",
	"India",
	"Brazil",
	"Germany",
	"France",
	"UK",
	"China",
	"Japan",
}

// CountryFilter maps a sidebar selection to the country identifier sent
// upstream. The Global selection (and an empty value) maps to no filter,
// returned as an empty string.
func CountryFilter(selection string) string {
	if selection == "" || strings.EqualFold(selection, GlobalSelection) {
		return ""
	}
	return selection
}
