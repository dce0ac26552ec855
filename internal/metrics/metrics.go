package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// SyncEventsTotal counts the sync engine events processed, by type.
	SyncEventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "walletd",
		Name:      "sync_events_total",
		Help:      "Number of sync engine events processed, partitioned by event type.",
	}, []string{"type"})

	// UnknownAddressTotal counts activity events reported for addresses this
	// daemon never asked to watch.
	UnknownAddressTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "walletd",
		Name:      "unknown_address_events_total",
		Help:      "Number of activity events received for addresses not being watched.",
	})

	// UnknownWalletTotal counts progress events reported for wallets not
	// stored on this device.
	UnknownWalletTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "walletd",
		Name:      "unknown_wallet_events_total",
		Help:      "Number of sync progress events received for unknown wallets.",
	})

	// AddressesDerivedTotal counts the addresses derived by the allocator.
	AddressesDerivedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "walletd",
		Name:      "addresses_derived_total",
		Help:      "Number of addresses derived to preserve the gap-limit invariant.",
	})

	// WatchFailuresTotal counts failed watch requests toward the sync engine.
	WatchFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "walletd",
		Name:      "watch_failures_total",
		Help:      "Number of watch-address requests the sync engine did not accept.",
	})
)

// Handler returns the HTTP handler serving the prometheus metrics.
func Handler() http.Handler {
	return promhttp.Handler()
}
