package observability

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
	dto "github.com/prometheus/client_model/go"
)

// SeedTotals sums the seed counters of g: places by result, and translations.
func SeedTotals(g prometheus.Gatherer) (map[string]float64, float64, error) {
	mfs, err := g.Gather()
	if err != nil {
		return nil, 0, err
	}
	places := map[string]float64{}
	var translations float64
	for _, mf := range mfs {
		switch mf.GetName() {
		case "geo_seed_places_total":
			for _, m := range mf.GetMetric() {
				places[labelValue(m, "result")] += m.GetCounter().GetValue()
			}
		case "geo_seed_translations_total":
			for _, m := range mf.GetMetric() {
				translations += m.GetCounter().GetValue()
			}
		}
	}
	return places, translations, nil
}

func labelValue(m *dto.Metric, name string) string {
	for _, lp := range m.GetLabel() {
		if lp.GetName() == name {
			return lp.GetValue()
		}
	}
	return ""
}

// PushSeed sends the seed counters to a Pushgateway under job. The seeder
// exits when done, so a scrape would usually miss it.
func PushSeed(ctx context.Context, url, job string) error {
	return push.New(url, job).
		Collector(SeedPlaces).
		Collector(SeedTranslations).
		PushContext(ctx)
}
