package tasks

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/desertthunder/infosys/internal/metrics"
	"github.com/desertthunder/infosys/internal/shared"
)

// ErrPoolClosed is returned by [Pool.Submit] after [Pool.Close].
var ErrPoolClosed = errors.New("worker pool closed")

// Priority selects the lane a task is queued on.
type Priority int

const (
	PriorityLow Priority = iota
	PriorityHigh
)

func (p Priority) String() string {
	if p == PriorityHigh {
		return "high"
	}
	return "low"
}

// Task is a unit of background work.
type Task func(ctx context.Context)

// PoolOpts contains configuration for a [Pool].
type PoolOpts struct {
	Workers   int // Concurrent workers (default: 4)
	QueueSize int // Buffered tasks per lane (default: 64)
	Logger    *log.Logger
}

// Pool runs tasks on a fixed set of workers. Each worker always takes from the
// high lane before the low lane.
type Pool struct {
	ctx    context.Context
	cancel context.CancelFunc
	high   chan Task
	low    chan Task
	wg     sync.WaitGroup
	mu     sync.RWMutex
	closed bool
	logger *log.Logger
}

// NewPool starts a pool whose tasks run under ctx.
func NewPool(ctx context.Context, opts PoolOpts) *Pool {
	if opts.Workers <= 0 {
		opts.Workers = 4
	}
	if opts.Workers > 64 {
		opts.Workers = 64
	}
	if opts.QueueSize <= 0 {
		opts.QueueSize = 64
	}
	if opts.Logger == nil {
		opts.Logger = shared.DiscardLogger()
	}

	ctx, cancel := context.WithCancel(ctx)
	p := &Pool{
		ctx:    ctx,
		cancel: cancel,
		high:   make(chan Task, opts.QueueSize),
		low:    make(chan Task, opts.QueueSize),
		logger: shared.WithLogger(opts.Logger, "component", "pool"),
	}

	for i := 0; i < opts.Workers; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}
	return p
}

// Submit queues t on the lane for priority and returns without waiting for it to run.
// It blocks only while the lane is full.
func (p *Pool) Submit(priority Priority, t Task) error {
	if t == nil {
		return fmt.Errorf("%w: nil task", shared.ErrInvalidArgument)
	}

	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return ErrPoolClosed
	}

	lane := p.lane(priority)
	select {
	case lane <- t:
		metrics.QueueDepth.WithLabelValues(priority.String()).Set(float64(len(lane)))
		return nil
	case <-p.ctx.Done():
		return fmt.Errorf("%w: %v", ErrPoolClosed, p.ctx.Err())
	}
}

// Close stops intake and waits for queued and running tasks to finish.
func (p *Pool) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	close(p.high)
	close(p.low)
	p.mu.Unlock()

	p.wg.Wait()
	p.cancel()
}

// Shutdown cancels running tasks and abandons queued ones.
func (p *Pool) Shutdown() {
	p.cancel()
	p.Close()
}

func (p *Pool) lane(priority Priority) chan Task {
	if priority == PriorityHigh {
		return p.high
	}
	return p.low
}

func (p *Pool) worker(n int) {
	defer p.wg.Done()

	high, low := p.high, p.low
	for high != nil || low != nil {
		if p.ctx.Err() != nil {
			return
		}

		// Drain the high lane before looking at the low one.
		if high != nil {
			select {
			case t, ok := <-high:
				if !ok {
					high = nil
					continue
				}
				p.run(n, PriorityHigh, t)
				continue
			default:
			}
		}

		select {
		case t, ok := <-high:
			if !ok {
				high = nil
				continue
			}
			p.run(n, PriorityHigh, t)
		case t, ok := <-low:
			if !ok {
				low = nil
				continue
			}
			p.run(n, PriorityLow, t)
		case <-p.ctx.Done():
			return
		}
	}
}

func (p *Pool) run(worker int, priority Priority, t Task) {
	metrics.QueueDepth.WithLabelValues(priority.String()).Set(float64(len(p.lane(priority))))
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("task panicked", "worker", worker, "lane", priority, "panic", r)
		}
	}()
	t(p.ctx)
}
