package navigation

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	keyLabel       = "key"
	directionLabel = "direction"
)

var (
	keyPressesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "goendo_key_presses_total",
		Help: "The total number of handled key presses by intent.",
	}, []string{keyLabel})

	collisionBlocksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "goendo_collision_blocks_total",
		Help: "The total number of translations reverted by a collision.",
	}, []string{directionLabel})

	patchCells = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "goendo_patch_cells",
		Help:    "The number of cells in the local patch extracted for a probe.",
		Buckets: prometheus.ExponentialBuckets(1, 4, 8),
	})
)

func instrumentKeyPress(intent Intent) {
	keyPressesTotal.
		With(prometheus.Labels{keyLabel: intent.String()}).
		Inc()
}

func instrumentBlock(intent Intent) {
	collisionBlocksTotal.
		With(prometheus.Labels{directionLabel: intent.String()}).
		Inc()
}

func instrumentPatch(cells int) {
	patchCells.Observe(float64(cells))
}
