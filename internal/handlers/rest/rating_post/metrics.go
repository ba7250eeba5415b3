package rating_post

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RatingSubmittedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rating_submitted_total",
			Help: "Total number of accepted courier ratings, by sentiment",
		},
		[]string{"sentiment"},
	)
)
