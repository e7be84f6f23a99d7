package service

import (
	"context"
	"sync"
	"time"

	"github.com/tysonmwilliams-source/lineageweaverty-sub001/internal/adapter"
	"github.com/tysonmwilliams-source/lineageweaverty-sub001/internal/logger"
)

type connectivityProbeJob struct {
	prober  adapter.Prober
	monitor ConnectivityMonitor

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewConnectivityProbeJob creates a job that calls prober.Probe on a ticker
// and reports the outcome to monitor. The job is idle until Start is called.
func NewConnectivityProbeJob(prober adapter.Prober, monitor ConnectivityMonitor, logger *logger.Logger) ConnectivityProbeJob {
	return &connectivityProbeJob{prober: prober, monitor: monitor, logger: logger}
}

// Start implements ConnectivityProbeJob. The first probe runs before Start
// returns so the monitor is seeded for the bootstrap pass. If interval is
// zero or negative it defaults to 15 seconds.
func (j *connectivityProbeJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 15 * time.Second
	}

	j.Stop()
	j.probe(ctx)

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.probe(jobCtx)
			}
		}
	}()
}

// Stop implements ConnectivityProbeJob. Safe to call when the job is not
// running.
func (j *connectivityProbeJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

func (j *connectivityProbeJob) probe(ctx context.Context) {
	err := j.prober.Probe(ctx)
	if err != nil && ctx.Err() != nil {
		return
	}

	online := err == nil
	if online != j.monitor.IsOnline() {
		j.logger.Info().
			Err(err).
			Str("func", "connectivityProbeJob.probe").
			Bool("online", online).
			Msg("connectivity changed")
	}
	j.monitor.SetOnline(online)
}
