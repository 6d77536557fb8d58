package store

import (
	"github.com/charmbracelet/log"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	kindTasksList = "tasks_list"
	kindTaskItem  = "task_item"
)

var quarantinedCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
	Namespace: "activitylist",
	Subsystem: "store",
	Name:      "quarantined_records_total",
	Help:      "Number of persisted records dropped from read results because they failed validation.",
}, []string{"kind"})

func init() {
	prometheus.MustRegister(quarantinedCounter)
}

// quarantine records that a malformed record was excluded from a read.
func quarantine(logger *log.Logger, kind string, pk int64, rawID string) {
	quarantinedCounter.WithLabelValues(kind).Inc()
	logger.Warn("dropping malformed record", "kind", kind, "pk", pk, "id", rawID)
}
