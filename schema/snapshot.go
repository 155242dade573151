package schema

// CountrySnapshot is the current-state record of one country, as of request
// time. Lat and Long are nil when the upstream country info omits
// coordinates; such rows are kept in the table and skipped by the map.
type CountrySnapshot struct {
	Country   string   `json:"country"`
	Cases     int64    `json:"cases"`
	Deaths    int64    `json:"deaths"`
	Recovered int64    `json:"recovered"`
	Lat       *float64 `json:"lat"`
	Long      *float64 `json:"long"`
}
