// Package metrics defines the Prometheus collectors of the recommender.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RecommendationsTotal counts engine calls by use category and whether the relaxed filter ran
	RecommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "laptopfinder_recommendations_total",
			Help: "Recommendation requests by use category and relaxation",
		},
		[]string{"use_category", "relaxed"},
	)

	// RecommendationResults observes how many products each call returned
	RecommendationResults = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "laptopfinder_recommendation_results",
			Help:    "Number of products returned per recommendation",
			Buckets: []float64{0, 1, 2, 3, 5, 10, 20},
		},
	)

	// ChatRepliesTotal counts chat replies by kind
	ChatRepliesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "laptopfinder_chat_replies_total",
			Help: "Chat replies by reply kind",
		},
		[]string{"reply_kind"},
	)

	// ExtractedFieldsTotal counts preference fields extracted from utterances
	ExtractedFieldsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "laptopfinder_extracted_fields_total",
			Help: "Preference fields extracted from user utterances",
		},
		[]string{"field"},
	)

	// CatalogSize is the number of products loaded
	CatalogSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "laptopfinder_catalog_products",
			Help: "Products currently loaded in the catalog",
		},
	)
)

// RecordRecommendation records one engine call.
func RecordRecommendation(useCategory string, relaxed bool, results int) {
	RecommendationsTotal.WithLabelValues(useCategory, strconv.FormatBool(relaxed)).Inc()
	RecommendationResults.Observe(float64(results))
}

// RecordChatReply records one chat reply.
func RecordChatReply(kind string) {
	ChatRepliesTotal.WithLabelValues(kind).Inc()
}

// RecordExtraction records the fields set by one extraction.
func RecordExtraction(fields []string) {
	for _, f := range fields {
		ExtractedFieldsTotal.WithLabelValues(f).Inc()
	}
}
