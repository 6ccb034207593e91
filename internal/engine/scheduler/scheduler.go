// Package scheduler implements the resolution scheduler, the concurrency
// core of the engine. It deduplicates concurrent requests per key, runs
// resolver calls off the interactive path, applies the retry policy, and
// publishes state transitions to the event sink.
package scheduler

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.trai.ch/park/internal/core/domain"
	"go.trai.ch/park/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/semaphore"
)

// Options tune one scheduler instance.
type Options struct {
	// Timeout is the wall-clock budget per resolution attempt. Zero means
	// no budget.
	Timeout time.Duration

	// Retries bounds automatic retries for transient failures
	// (BackendUnavailable, Timeout). Conflict, NotFound and Cancelled are
	// never retried.
	Retries int

	// Backoff is the delay between retries.
	Backoff time.Duration

	// Parallelism bounds concurrent resolver calls across distinct keys.
	Parallelism int
}

// Scheduler coordinates resolution attempts. At most one resolver call is
// in flight per key; results are applied to the cache only when their
// generation is still current.
type Scheduler struct {
	gateway ports.ResolverGateway
	cache   ports.ResolutionCache
	sink    ports.EventSink
	logger  ports.Logger
	opts    Options

	sem *semaphore.Weighted
	wg  sync.WaitGroup

	mu       sync.Mutex
	inflight map[string]*attempt
}

// attempt is one in-flight resolution: a generation, a cancel handle, and
// the subscribers waiting on it.
type attempt struct {
	key        domain.RequestKey
	generation uint64
	cancel     context.CancelFunc
	subs       []*Subscription
}

// New creates a Scheduler.
func New(
	gateway ports.ResolverGateway,
	cache ports.ResolutionCache,
	sink ports.EventSink,
	logger ports.Logger,
	opts Options,
) *Scheduler {
	if opts.Parallelism <= 0 {
		opts.Parallelism = 1
	}
	return &Scheduler{
		gateway:  gateway,
		cache:    cache,
		sink:     sink,
		logger:   logger,
		opts:     opts,
		sem:      semaphore.NewWeighted(int64(opts.Parallelism)),
		inflight: make(map[string]*attempt),
	}
}

// Request registers interest in the outcome for key and returns a one-shot
// subscription. A fresh Ready or Failed entry is delivered without a new
// resolver call; an in-flight attempt gains the caller as a subscriber;
// otherwise a new attempt is dispatched. Request never blocks on resolver
// work.
func (s *Scheduler) Request(ctx context.Context, key domain.RequestKey) *Subscription {
	sub := newSubscription(key)
	digest := key.Digest()

	s.mu.Lock()
	entry, cached := s.cache.Get(key)
	if att, ok := s.inflight[digest]; ok {
		if cached && entry.Generation == att.generation {
			att.subs = append(att.subs, sub)
			s.mu.Unlock()
			return sub
		}
		// The attempt was invalidated mid-flight; its outcome will be
		// discarded on arrival. Cancel it to free its resolver slot and
		// dispatch fresh.
		delete(s.inflight, digest)
		att.cancel()
	}

	if cached && entry.State != domain.StatePending {
		s.mu.Unlock()
		sub.deliver(entry.Outcome())
		return sub
	}

	generation := s.cache.Begin(key)

	// The attempt outlives the interactive caller; detach its lifetime
	// from the request context while keeping the caller's values.
	actx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	att := &attempt{
		key:        key,
		generation: generation,
		cancel:     cancel,
		subs:       []*Subscription{sub},
	}
	s.inflight[digest] = att
	s.mu.Unlock()

	s.sink.ResolutionChanged(domain.ResolutionEvent{
		Key:        key,
		State:      domain.StatePending,
		Generation: generation,
		At:         time.Now(),
	})

	s.wg.Add(1)
	go s.run(actx, att)

	return sub
}

// Invalidate bumps the generation for key and marks it for re-resolution on
// the next request. In-flight work is not cancelled; its result is
// discarded on arrival by the generation check.
func (s *Scheduler) Invalidate(key domain.RequestKey) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache.Invalidate(key)
}

// Cancel best-effort stops in-flight work for key and records
// Failed{Cancelled}. The resolver call itself may not support cancellation;
// a late return is discarded by the generation check, and subscribers are
// released immediately.
func (s *Scheduler) Cancel(key domain.RequestKey) {
	digest := key.Digest()

	s.mu.Lock()
	att, ok := s.inflight[digest]
	if !ok {
		s.mu.Unlock()
		return
	}
	delete(s.inflight, digest)
	subs := att.subs
	att.subs = nil

	generation := s.cache.Invalidate(key)
	failure := domain.NewFailure(key, zerr.With(domain.ErrResolveCancelled, "key", key.String()))
	outcome := domain.Outcome{Failure: failure}
	applied := s.cache.Put(key, outcome, generation)
	s.mu.Unlock()

	att.cancel()

	if applied {
		// Publish under the cancelled attempt's generation so that
		// generation's event stream stays Pending then Failed; the bumped
		// generation only fences out the late resolver return.
		s.publish(key, att.generation, outcome)
	}
	for _, sub := range subs {
		sub.deliver(outcome)
	}
}

// Reset drops every cached outcome, forcing re-resolution of all keys.
// Used when the catalog changes.
func (s *Scheduler) Reset() {
	s.cache.Clear()
}

// Wait blocks until all in-flight attempts have completed. Intended for
// shutdown and tests.
func (s *Scheduler) Wait() {
	s.wg.Wait()
}

// run executes one resolution attempt off the interactive path.
func (s *Scheduler) run(ctx context.Context, att *attempt) {
	defer s.wg.Done()
	defer att.cancel()

	if err := s.sem.Acquire(ctx, 1); err != nil {
		s.complete(att, domain.Outcome{Failure: domain.NewFailure(att.key, err)})
		return
	}
	defer s.sem.Release(1)

	s.complete(att, s.resolveWithRetry(ctx, att))
}

func (s *Scheduler) resolveWithRetry(ctx context.Context, att *attempt) domain.Outcome {
	var lastErr error
	for try := 0; try <= s.opts.Retries; try++ {
		if try > 0 {
			if s.superseded(att) {
				break
			}
			select {
			case <-time.After(s.opts.Backoff):
			case <-ctx.Done():
				return domain.Outcome{Failure: domain.NewFailure(att.key, ctx.Err())}
			}
		}

		env, err := s.resolveOnce(ctx, att.key)
		if err == nil {
			return domain.Outcome{Environment: env}
		}
		lastErr = err

		if !domain.FailureKindOf(err).Transient() {
			break
		}
		s.logger.Warn("resolution attempt failed, retrying: " + err.Error())
	}
	return domain.Outcome{Failure: domain.NewFailure(att.key, lastErr)}
}

func (s *Scheduler) resolveOnce(ctx context.Context, key domain.RequestKey) (*domain.ResolvedEnvironment, error) {
	rctx := ctx
	if s.opts.Timeout > 0 {
		var cancel context.CancelFunc
		rctx, cancel = context.WithTimeout(ctx, s.opts.Timeout)
		defer cancel()
	}

	env, err := s.gateway.Resolve(rctx, key)
	if err != nil {
		// The budget is enforced here regardless of how the gateway
		// classified the error; a late return becomes stale anyway.
		if errors.Is(rctx.Err(), context.DeadlineExceeded) && ctx.Err() == nil {
			return nil, zerr.With(domain.ErrResolveTimeout, "key", key.String())
		}
		return nil, err
	}
	return env, nil
}

// superseded reports whether the attempt's generation is no longer current.
func (s *Scheduler) superseded(att *attempt) bool {
	entry, ok := s.cache.Get(att.key)
	return !ok || entry.Generation != att.generation
}

// complete applies the outcome, publishes the transition, and releases the
// attempt's subscribers. A stale outcome is not stored and not published;
// its subscribers receive a Cancelled failure so they can re-request.
func (s *Scheduler) complete(att *attempt, outcome domain.Outcome) {
	digest := att.key.Digest()

	s.mu.Lock()
	if s.inflight[digest] == att {
		delete(s.inflight, digest)
	}
	subs := att.subs
	att.subs = nil
	applied := s.cache.Put(att.key, outcome, att.generation)
	s.mu.Unlock()

	if !applied {
		superseded := domain.Outcome{
			Failure: domain.NewFailure(att.key,
				zerr.With(domain.ErrResolveCancelled, "reason", "superseded")),
		}
		for _, sub := range subs {
			sub.deliver(superseded)
		}
		return
	}

	s.publish(att.key, att.generation, outcome)
	for _, sub := range subs {
		sub.deliver(outcome)
	}
}

func (s *Scheduler) publish(key domain.RequestKey, generation uint64, outcome domain.Outcome) {
	s.sink.ResolutionChanged(domain.ResolutionEvent{
		Key:         key,
		State:       outcome.State(),
		Generation:  generation,
		Environment: outcome.Environment,
		Failure:     outcome.Failure,
		At:          time.Now(),
	})
}
