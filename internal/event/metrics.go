package event

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "food_catalog"

type metrics struct {
	foodViews     prometheus.Counter
	searches      *prometheus.CounterVec
	searchResults prometheus.Histogram
}

func newMetrics(reg prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		foodViews: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "activity",
			Name:      "food_views_total",
			Help:      "Number of successful food detail lookups.",
		}),
		searches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "activity",
			Name:      "searches_total",
			Help:      "Number of successful searches, by whether anything matched.",
		}, []string{"outcome"}),
		searchResults: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "activity",
			Name:      "search_results",
			Help:      "Number of rows returned per search.",
			Buckets:   []float64{0, 1, 5, 10, 20, 50, 100, 500},
		}),
	}

	for _, c := range []prometheus.Collector{m.foodViews, m.searches, m.searchResults} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("register collector: %w", err)
		}
	}

	return m, nil
}
