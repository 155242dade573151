package dataset

import (
	"github.com/openepi/covid-dashboard/external/diseasesh"
	"github.com/openepi/covid-dashboard/schema"
	"github.com/openepi/covid-dashboard/store"
)

// Pipeline is the fetch→build unit every interaction re-runs. It owns no
// state besides the table cache; calling the same operation with the same
// arguments inside the cache TTL returns the previously built table without
// a network call.
type Pipeline struct {
	source diseasesh.DataSource
	cache  store.TableCache
}

// NewPipeline - pipeline over a data source and a table cache
func NewPipeline(source diseasesh.DataSource, cache store.TableCache) *Pipeline {
	return &Pipeline{
		source: source,
		cache:  cache,
	}
}

// History returns the cumulative history table for a country identifier; an
// empty identifier selects the worldwide series. The global and per-country
// payloads decode from different keys upstream but build identically shaped
// tables.
func (p *Pipeline) History(country string) (*schema.HistoryTable, error) {
	key := store.Key("history", country)
	if cached, ok := p.cache.Get(key); ok {
		return cached.(*schema.HistoryTable), nil
	}

	var timeline *diseasesh.HistoricalTimeline
	var err error
	if country == "" {
		timeline, err = p.source.GlobalHistory()
	} else {
		timeline, err = p.source.CountryHistory(country)
	}
	if err != nil {
		return nil, err
	}

	table, err := BuildHistoryTable(timeline)
	if err != nil {
		return nil, err
	}

	p.cache.Set(key, table)
	return table, nil
}

// Vaccinations returns the cumulative dose table for one country; a country
// without a published timeline yields an empty table.
func (p *Pipeline) Vaccinations(country string) (*schema.VaccinationTable, error) {
	key := store.Key("vaccinations", country)
	if cached, ok := p.cache.Get(key); ok {
		return cached.(*schema.VaccinationTable), nil
	}

	records, err := p.source.VaccineCoverage(country)
	if err != nil {
		return nil, err
	}

	table, err := BuildVaccinationTable(records)
	if err != nil {
		return nil, err
	}

	p.cache.Set(key, table)
	return table, nil
}

// Snapshot returns the current per-country snapshot list.
func (p *Pipeline) Snapshot() ([]schema.CountrySnapshot, error) {
	key := store.Key("snapshot")
	if cached, ok := p.cache.Get(key); ok {
		return cached.([]schema.CountrySnapshot), nil
	}

	countries, err := p.source.Countries()
	if err != nil {
		return nil, err
	}

	table := BuildSnapshotTable(countries)
	p.cache.Set(key, table)
	return table, nil
}
