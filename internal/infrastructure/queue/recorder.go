package queue

import (
	"context"
	"hash/fnv"
	"strconv"
	"sync"

	"github.com/rs/zerolog"

	"github.com/nomadplanner/planner-api/internal/api/metrics"
	"github.com/nomadplanner/planner-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Recorder routes AI exchanges to a fixed set of workers using consistent
// hashing on user and module, so the history of one conversation is written
// in the order it happened.
type Recorder struct {
	mu      sync.RWMutex
	closed  bool
	wg      sync.WaitGroup
	workers []chan ports.Exchange
	service ports.ConversationService
	log     zerolog.Logger
}

// NewRecorder creates a Recorder with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewRecorder(numWorkers int, service ports.ConversationService, log zerolog.Logger) *Recorder {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	r := &Recorder{
		workers: make([]chan ports.Exchange, numWorkers),
		service: service,
		log:     log,
	}
	for i := range r.workers {
		r.workers[i] = make(chan ports.Exchange, channelBuffer)
	}
	return r
}

// Start launches all worker goroutines. Writes run with ctx's values but
// outlive its cancellation so Close can drain the queues.
func (r *Recorder) Start(ctx context.Context) {
	writeCtx := context.WithoutCancel(ctx)
	for i, ch := range r.workers {
		r.wg.Add(1)
		go r.runWorker(writeCtx, i, ch)
	}
}

// Enqueue hands ex to the worker responsible for its conversation. It never
// blocks: when that worker's queue is full, or the recorder is closed, the
// exchange is dropped and false is returned.
func (r *Recorder) Enqueue(ex ports.Exchange) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.closed {
		return false
	}

	idx := r.shardIndex(ex.UserID, ex.Module)
	ch := r.workers[idx]
	select {
	case ch <- ex:
		metrics.ConversationQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(ch)))
		return true
	default:
		metrics.ConversationDroppedTotal.Inc()
		r.log.Warn().
			Int64("user_id", ex.UserID).
			Str("module", ex.Module).
			Int("worker_id", idx).
			Msg("conversation queue full, exchange dropped")
		return false
	}
}

// Close stops accepting exchanges and waits until queued ones are written.
func (r *Recorder) Close() {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.closed = true
	for _, ch := range r.workers {
		close(ch)
	}
	r.mu.Unlock()
	r.wg.Wait()
}

// shardIndex maps a (user, module) pair deterministically to a worker index.
func (r *Recorder) shardIndex(userID int64, module string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(strconv.FormatInt(userID, 10) + ":" + module))
	return int(h.Sum32() % uint32(len(r.workers)))
}

func (r *Recorder) runWorker(ctx context.Context, id int, ch <-chan ports.Exchange) {
	defer r.wg.Done()
	depth := metrics.ConversationQueueDepth.WithLabelValues(strconv.Itoa(id))
	for ex := range ch {
		depth.Set(float64(len(ch)))
		if err := r.service.Record(ctx, ex); err != nil {
			metrics.ConversationErrorsTotal.Inc()
			r.log.Error().Err(err).
				Int64("user_id", ex.UserID).
				Str("module", ex.Module).
				Int("worker_id", id).
				Msg("conversation recording failed")
		}
	}
}
