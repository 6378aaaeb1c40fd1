package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "showdown"

// 一次运行的统计，写成node exporter的textfile格式
type Recorder struct {
	registry *prometheus.Registry

	handsClassified *prometheus.CounterVec
	parseFailures   prometheus.Counter
	winners         prometheus.Gauge
	matches         prometheus.Counter
	mismatches      prometheus.Counter
}

func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		handsClassified: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "hands_classified_total",
			Help:      "Hands classified, by category.",
		}, []string{"category"}),
		parseFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "parse_failures_total",
			Help:      "Input lines rejected by the parser.",
		}),
		winners: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "winners",
			Help:      "Players tied for best hand in the last run.",
		}),
		matches: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "verify_matches_total",
			Help:      "Matches compared by verify.",
		}),
		mismatches: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "verify_mismatches_total",
			Help:      "Matches whose result differed from the expected one.",
		}),
	}
	r.registry.MustRegister(r.handsClassified, r.parseFailures, r.winners, r.matches, r.mismatches)
	return r
}

func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

func (r *Recorder) ObserveHand(category string) {
	r.handsClassified.WithLabelValues(category).Inc()
}

func (r *Recorder) ObserveParseFailure() {
	r.parseFailures.Inc()
}

func (r *Recorder) ObserveWinners(n int) {
	r.winners.Set(float64(n))
}

func (r *Recorder) ObserveMatches(total, mismatched int) {
	r.matches.Add(float64(total))
	r.mismatches.Add(float64(mismatched))
}

// WriteToTextfile is a no-op for an empty path.
func (r *Recorder) WriteToTextfile(path string) error {
	if path == "" {
		return nil
	}
	return prometheus.WriteToTextfile(path, r.registry)
}
