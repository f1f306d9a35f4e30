package worker

import (
	"context"
	"time"

	"github.com/altiguard/altiguard/internal/metrics"
	"github.com/altiguard/altiguard/internal/service"
	log "github.com/sirupsen/logrus"
)

// Worker drives the drift cycle on a fixed interval. A cycle's failure
// is logged and never affects the next cycle; the interval is a floor,
// not a deadline, since cycles never overlap.
type Worker struct {
	drift    service.Drift
	counters *metrics.Counters
	interval time.Duration
}

func New(drift service.Drift, cnt *metrics.Counters, interval time.Duration) *Worker {
	return &Worker{
		drift:    drift,
		counters: cnt,
		interval: interval,
	}
}

// Run executes the first cycle immediately and then one cycle per tick
// until ctx is cancelled.
func (w *Worker) Run(ctx context.Context) {
	log.Infof("Drift worker started, interval %s", w.interval)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		if err := w.drift.RunCycle(ctx); err != nil {
			w.counters.WorkerCycles.Inc("failed")
			log.Errorf("Worker cycle failed: %v", err)
		} else {
			w.counters.WorkerCycles.Inc("ok")
		}

		select {
		case <-ctx.Done():
			log.Info("Drift worker stopped")
			return
		case <-ticker.C:
		}
	}
}
