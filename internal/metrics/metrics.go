package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"shareofmodel/internal/dataset"
)

var (
	keywordsDesc = prometheus.NewDesc(
		"shareofmodel_keywords_total",
		"Loaded keyword count by category",
		[]string{"category"},
		nil,
	)
	survivalRateDesc = prometheus.NewDesc(
		"shareofmodel_survival_rate_percent",
		"Survival rate percentage by category",
		[]string{"category"},
		nil,
	)
	loadedAtDesc = prometheus.NewDesc(
		"shareofmodel_dataset_loaded_timestamp_seconds",
		"Unix time of the last successful dataset load",
		nil,
		nil,
	)

	datasetLoads = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shareofmodel_dataset_loads_total",
			Help: "Total dataset load attempts by outcome",
		},
		[]string{"outcome"},
	)
)

// DatasetCollector is a custom Prometheus collector that aggregates the
// in-memory dataset on each scrape.
type DatasetCollector struct {
	data *dataset.Store
}

// Describe sends the metric descriptors to the channel.
func (c *DatasetCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- keywordsDesc
	ch <- survivalRateDesc
	ch <- loadedAtDesc
}

// Collect aggregates the loaded records and emits per-category gauges.
func (c *DatasetCollector) Collect(ch chan<- prometheus.Metric) {
	for _, rate := range dataset.CategoryBreakdown(c.data.Records()) {
		ch <- prometheus.MustNewConstMetric(
			keywordsDesc,
			prometheus.GaugeValue,
			float64(rate.RecordCount),
			string(rate.Category),
		)
		ch <- prometheus.MustNewConstMetric(
			survivalRateDesc,
			prometheus.GaugeValue,
			rate.SurvivalRate,
			string(rate.Category),
		)
	}

	if loadedAt := c.data.LoadedAt(); !loadedAt.IsZero() {
		ch <- prometheus.MustNewConstMetric(
			loadedAtDesc,
			prometheus.GaugeValue,
			float64(loadedAt.Unix()),
		)
	}
}

var initOnce sync.Once

// Init registers the dataset collector and load counters.
// Must be called once at startup.
func Init(data *dataset.Store) {
	initOnce.Do(func() {
		prometheus.MustRegister(&DatasetCollector{data: data})
		prometheus.MustRegister(datasetLoads)
	})
}

// RecordDatasetLoad counts a dataset load attempt by outcome
// ("success" or "error").
func RecordDatasetLoad(outcome string) {
	datasetLoads.WithLabelValues(outcome).Inc()
}
