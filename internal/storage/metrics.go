// Package storage содержит метрики двухуровневого хранилища: удаленная
// база предпочтительна для чтения, локальное зеркало страхует ее сбои.
package storage

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	MirrorFallbackTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storage_mirror_fallback_total",
			Help: "Reads served by the local mirror after a remote failure",
		},
		[]string{"collection", "op"},
	)

	RemoteWriteFailureTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storage_remote_write_failure_total",
			Help: "Asynchronous remote writes that did not reach the database",
		},
		[]string{"collection", "op"},
	)
)
