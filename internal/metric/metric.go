package metric

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/uptrace/bun"

	"meetapp/internal/models"
)

var httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "meetapp_http_requests_total",
	Help: "The total number of handled HTTP requests",
}, []string{"method", "path", "status"})

// ObserveRequest counts one handled HTTP request.
func ObserveRequest(method, path string, status int) {
	if path == "" {
		path = "unmatched"
	}
	httpRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
}

func databaseEmptyRead(ctx context.Context, db *bun.DB) (time.Duration, error) {
	start := time.Now()
	if _, err := db.NewSelect().
		Model((*models.Meetup)(nil)).
		Where("title = ?", "").
		Exists(ctx); err != nil {
		return 0, err
	}
	return time.Since(start), nil
}

// Init registers the database latency gauge and keeps it updated on a
// ticker until shutdownCh closes.
func Init(db *bun.DB, interval time.Duration, shutdownCh <-chan struct{}) {
	gauge := promauto.NewGauge(prometheus.GaugeOpts{
		Name: "meetapp_database_empty_read_microsec",
		Help: "The latency of an empty database read in microseconds",
	})
	gauge.Set(0)

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-shutdownCh:
				if !prometheus.Unregister(gauge) {
					slog.Warn("meetapp_database_empty_read_microsec metric not registered")
				}
				return
			case <-ticker.C:
				latency, err := databaseEmptyRead(context.Background(), db)
				if err != nil {
					slog.Error("can't get database latency", "error", err)
					continue
				}
				gauge.Set(float64(latency.Microseconds()))
			}
		}
	}()
}
