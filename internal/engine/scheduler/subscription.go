package scheduler

import "go.trai.ch/park/internal/core/domain"

// Subscription is a one-shot registration of interest in the outcome for a
// RequestKey. Exactly one outcome is delivered per subscription; callers
// wanting to observe a later resolution attempt subscribe again.
type Subscription struct {
	key domain.RequestKey
	ch  chan domain.Outcome
}

func newSubscription(key domain.RequestKey) *Subscription {
	// Capacity 1 so delivery never blocks the scheduler.
	return &Subscription{key: key, ch: make(chan domain.Outcome, 1)}
}

// Key returns the request this subscription is for.
func (s *Subscription) Key() domain.RequestKey { return s.key }

// Outcome returns the channel on which the single outcome arrives.
func (s *Subscription) Outcome() <-chan domain.Outcome { return s.ch }

func (s *Subscription) deliver(o domain.Outcome) {
	select {
	case s.ch <- o:
	default:
		// Already delivered; one-shot.
	}
}
