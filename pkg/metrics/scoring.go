package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Latency of the AI scoring HTTP handlers by operation
	ScoringLatency = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "scoring_request_latency_seconds",
		Help:    "Latency of scoring engine handlers",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})

	// Total scoring requests served, by operation and outcome
	ScoringRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "scoring_requests_total",
		Help: "Total number of scoring engine requests",
	}, []string{"operation", "status"})

	// Sentiment labels produced by the classifier
	SentimentLabelsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "sentiment_labels_total",
		Help: "Sentiment classifications by resulting label",
	}, []string{"label"})
)

func Init() {
	prometheus.MustRegister(
		ScoringLatency,
		ScoringRequestsTotal,
		SentimentLabelsTotal,
	)
}
