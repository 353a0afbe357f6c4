package queue

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/notably/notes-api/internal/api/metrics"
	"github.com/notably/notes-api/internal/core/domain"
	"github.com/notably/notes-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 128
)

// Dispatcher fans activity entries out to a fixed set of workers using
// consistent hashing on the username, guaranteeing per-user ordering of the
// activity log. Implements ports.ActivitySink.
type Dispatcher struct {
	workers []chan domain.ActivityEntry
	service ports.ActivityService
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.ActivityService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan domain.ActivityEntry, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.ActivityEntry, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Submit sends an entry to the worker responsible for its username.
// Non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Submit(entry domain.ActivityEntry) {
	idx := d.shardIndex(entry.Username)
	d.workers[idx] <- entry
	metrics.ActivityQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
}

// shardIndex maps a username deterministically to a worker index.
func (d *Dispatcher) shardIndex(username string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(username))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.ActivityEntry) {
	worker := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case entry, ok := <-ch:
			if !ok {
				return
			}
			if err := d.service.Record(ctx, entry); err != nil {
				metrics.ActivityErrorsTotal.WithLabelValues("record_failed").Inc()
				d.log.Error().Err(err).
					Str("username", entry.Username).
					Str("action", entry.Action).
					Int("worker_id", id).
					Msg("activity recording failed")
			}
			metrics.ActivityQueueDepth.WithLabelValues(worker).Set(float64(len(ch)))
		}
	}
}
