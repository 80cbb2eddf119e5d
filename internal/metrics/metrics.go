package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ChatRepliesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chatbot_replies_total",
			Help: "Total number of chat replies by selector branch",
		},
		[]string{"source", "rule"},
	)

	ChatReplyDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "chatbot_reply_duration_seconds",
			Help:    "Duration of reply selection, QA inference included",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"source"},
	)

	QAConfidence = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "chatbot_qa_confidence",
			Help:    "Confidence scores reported by the QA model",
			Buckets: prometheus.LinearBuckets(0, 0.1, 11),
		},
	)
)
