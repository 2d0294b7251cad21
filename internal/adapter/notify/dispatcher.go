package notify

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MikeRez0/ypmarket/internal/adapter/config"
	"github.com/MikeRez0/ypmarket/internal/core/port"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Dispatcher delivers stored notifications through a publisher, retrying
// failed deliveries with exponential backoff.
type Dispatcher struct {
	repo        port.Repository
	publisher   port.NotificationPublisher
	logger      *zap.Logger
	queue       chan string
	workers     int
	maxAttempts int
	baseDelay   time.Duration
	maxDelay    time.Duration
	recallEvery time.Duration
	limiter     *rate.Limiter
	wg          sync.WaitGroup

	// ids queued, being dispatched or waiting for a retry
	mu       sync.Mutex
	inflight map[string]struct{}
}

func NewDispatcher(cfg *config.Dispatcher, repo port.Repository,
	publisher port.NotificationPublisher, log *zap.Logger) (*Dispatcher, error) {
	if cfg.Workers <= 0 {
		return nil, errors.New("dispatcher needs at least one worker")
	}
	var limiter *rate.Limiter
	if cfg.Rate > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.Rate), max(1, int(cfg.Rate)))
	}
	return &Dispatcher{
		limiter:     limiter,
		repo:        repo,
		publisher:   publisher,
		logger:      log,
		queue:       make(chan string, cfg.QueueSize),
		workers:     cfg.Workers,
		inflight:    make(map[string]struct{}),
		maxAttempts: cfg.MaxAttempts,
		baseDelay:   cfg.BaseDelay,
		maxDelay:    cfg.MaxDelay,
		recallEvery: cfg.RecallInterval,
	}, nil
}

// Schedule never blocks. A notification dropped on a full queue stays
// undispatched in the store and is picked up by the next recall. A
// notification that is already in flight is not scheduled twice.
func (d *Dispatcher) Schedule(notificationID string) {
	d.mu.Lock()
	if _, ok := d.inflight[notificationID]; ok {
		d.mu.Unlock()
		return
	}
	d.inflight[notificationID] = struct{}{}
	d.mu.Unlock()

	if !d.enqueue(notificationID) {
		d.finish(notificationID)
	}
}

func (d *Dispatcher) enqueue(id string) bool {
	select {
	case d.queue <- id:
		d.logger.Debug("notification queued", zap.String("notification", id))
		return true
	default:
		d.logger.Warn("notification queue is full, left for recall",
			zap.String("notification", id))
		return false
	}
}

func (d *Dispatcher) finish(id string) {
	d.mu.Lock()
	delete(d.inflight, id)
	d.mu.Unlock()
}

// Start runs the workers and, when configured, the periodic recall until
// ctx is done.
func (d *Dispatcher) Start(ctx context.Context) {
	for range d.workers {
		d.wg.Add(1)
		go func() {
			defer d.wg.Done()
			for {
				select {
				case id := <-d.queue:
					d.dispatch(ctx, id)
				case <-ctx.Done():
					d.logger.Debug("Finished worker")
					return
				}
			}
		}()
	}

	if d.recallEvery <= 0 {
		return
	}
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		t := time.NewTicker(d.recallEvery)
		defer t.Stop()
		for {
			select {
			case <-t.C:
				if err := d.Recall(ctx); err != nil {
					d.logger.Error("periodic recall", zap.Error(err))
				}
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Wait blocks until every goroutine started by Start has returned.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

func (d *Dispatcher) dispatch(ctx context.Context, id string) {
	retrying := false
	defer func() {
		if !retrying {
			d.finish(id)
		}
	}()

	n, err := d.repo.ReadNotification(ctx, id)
	if err != nil {
		d.logger.Error("read notification", zap.String("notification", id), zap.Error(err))
		return
	}
	if n.DispatchedAt != nil {
		return
	}
	if d.maxAttempts > 0 && n.Attempts >= d.maxAttempts {
		d.logger.Debug("notification attempts used up", zap.String("notification", id))
		return
	}

	if d.limiter != nil {
		if err := d.limiter.Wait(ctx); err != nil {
			// shutting down, the recall after restart picks it up
			return
		}
	}

	err = d.publisher.Publish(ctx, n)
	if err == nil {
		if err := d.repo.MarkNotificationDispatched(ctx, id, time.Now()); err != nil {
			d.logger.Error("mark notification dispatched", zap.String("notification", id), zap.Error(err))
		}
		d.logger.Debug("notification dispatched", zap.String("notification", id))
		return
	}

	attempt := n.Attempts + 1
	if recErr := d.repo.RecordNotificationAttempt(ctx, id, err.Error()); recErr != nil {
		d.logger.Error("record notification attempt", zap.String("notification", id), zap.Error(recErr))
	}
	if attempt >= d.maxAttempts {
		d.logger.Error("notification delivery gave up",
			zap.String("notification", id),
			zap.Int("attempts", attempt),
			zap.Error(err))
		return
	}

	wait := d.backoff(attempt)
	d.logger.Warn("notification delivery failed, retrying",
		zap.String("notification", id),
		zap.Int("attempt", attempt),
		zap.Duration("retry_after", wait),
		zap.Error(err))

	retrying = true
	d.wg.Add(1)
	go d.retry(ctx, id, wait)
}

func (d *Dispatcher) retry(ctx context.Context, id string, wait time.Duration) {
	defer d.wg.Done()

	r := time.NewTimer(wait)
	defer r.Stop()
	select {
	case <-r.C:
		if !d.enqueue(id) {
			d.finish(id)
		}
	case <-ctx.Done():
		d.finish(id)
	}
}

// backoff doubles the base delay for every failed attempt, up to maxDelay.
func (d *Dispatcher) backoff(attempt int) time.Duration {
	wait := d.baseDelay
	for i := 1; i < attempt; i++ {
		wait *= 2
		if d.maxDelay > 0 && wait >= d.maxDelay {
			return d.maxDelay
		}
	}
	return wait
}
