package authn

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	AuthFailureTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_auth_failures_total",
			Help: "Total number of rejected requests, by reason",
		},
		[]string{"reason"},
	)
)
