package workers

import (
	"context"
	"time"

	"github.com/tysonmwilliams-source/lineageweaverty-sub001/internal/service"
)

type Workers struct {
	workers []Worker
}

func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Run(ctx)
	}
}

// Stop stops the workers in reverse start order.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}

type probeWorker struct {
	job      service.ConnectivityProbeJob
	interval time.Duration
}

// NewProbeWorker runs job at interval.
func NewProbeWorker(job service.ConnectivityProbeJob, interval time.Duration) Worker {
	return &probeWorker{job: job, interval: interval}
}

func (p *probeWorker) Run(ctx context.Context) {
	p.job.Start(ctx, p.interval)
}

func (p *probeWorker) Stop() {
	p.job.Stop()
}
