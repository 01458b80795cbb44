package core

import (
	"time"

	"github.com/mattmahin/authortrend/schema"
)

// PeriodsThrough returns every calendar month from January of startYear
// through the month of now, ascending. Generated once at startup; the rest
// of the pipeline treats the sequence as immutable.
func PeriodsThrough(startYear int, now time.Time) []schema.Period {
	var periods []schema.Period
	for year := startYear; year <= now.Year(); year++ {
		for month := time.January; month <= time.December; month++ {
			if year == now.Year() && month > now.Month() {
				break
			}
			periods = append(periods, schema.Period{Year: year, Month: month})
		}
	}
	return periods
}
