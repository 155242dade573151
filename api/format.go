package api

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var countPrinter = message.NewPrinter(language.English)

// formatCount renders a metric-card value with thousands separators.
func formatCount(v int64) string {
	return countPrinter.Sprintf("%d", v)
}
