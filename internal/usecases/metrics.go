package usecases

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	verifyAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "verifyme",
		Name:      "verify_attempts_total",
		Help:      "Public verification queries by outcome.",
	}, []string{"outcome"})

	bulkRecords = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "verifyme",
		Name:      "bulk_records_total",
		Help:      "Bulk pipeline records by stage outcome.",
	}, []string{"stage", "outcome"})
)
