// Package chart builds plotly figure specifications from dashboard tables.
// The builders are pure; the browser renders the emitted JSON with plotly.js.
package chart

// Figure is a plotly figure: traces plus layout.
type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

// Trace covers the two trace kinds the dashboard draws, scatter lines and
// scattergeo bubbles. Unused fields stay empty per trace kind.
type Trace struct {
	Type      string    `json:"type"`
	Mode      string    `json:"mode,omitempty"`
	Name      string    `json:"name,omitempty"`
	X         []string  `json:"x,omitempty"`
	Y         []int64   `json:"y,omitempty"`
	Lat       []float64 `json:"lat,omitempty"`
	Lon       []float64 `json:"lon,omitempty"`
	Text      []string  `json:"text,omitempty"`
	HoverInfo string    `json:"hoverinfo,omitempty"`
	Marker    *Marker   `json:"marker,omitempty"`
}

// Marker styles bubble markers; sizes follow plotly's area sizing.
type Marker struct {
	Size       []int64 `json:"size,omitempty"`
	SizeMode   string  `json:"sizemode,omitempty"`
	SizeRef    float64 `json:"sizeref,omitempty"`
	SizeMin    float64 `json:"sizemin,omitempty"`
	Color      []int64 `json:"color,omitempty"`
	ColorScale string  `json:"colorscale,omitempty"`
	ShowScale  bool    `json:"showscale,omitempty"`
}

type Layout struct {
	Title string `json:"title,omitempty"`
	Geo   *Geo   `json:"geo,omitempty"`
	XAxis *Axis  `json:"xaxis,omitempty"`
	YAxis *Axis  `json:"yaxis,omitempty"`
}

type Geo struct {
	ShowFrame      bool       `json:"showframe"`
	ShowCoastlines bool       `json:"showcoastlines"`
	Projection     Projection `json:"projection"`
}

type Projection struct {
	Type string `json:"type"`
}

type Axis struct {
	Title string `json:"title,omitempty"`
}
