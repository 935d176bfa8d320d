package rendezvous

import (
	"context"
	"errors"
	"sync"

	"github.com/SHEBN-DEV/Demoshebn/internal/core/domain"
)

var (
	ErrAlreadyWaiting = errors.New("rendezvous: key already awaited")
	ErrDuplicate      = errors.New("rendezvous: result already delivered")
)

type slot struct {
	ch      chan domain.VerificationResult
	waiting bool
	// result parked before anyone awaited it
	parked bool
}

// Rendezvous pairs a verification result with the flow waiting on it.
// A key is opened with Expect, resolved once by Deliver and consumed by
// Await. Deliver may come before Await.
type Rendezvous struct {
	mu    sync.Mutex
	slots map[string]*slot
}

func New() *Rendezvous {
	return &Rendezvous{slots: make(map[string]*slot)}
}

// Expect opens key so a later Deliver is accepted.
func (r *Rendezvous) Expect(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.slots[key]; !ok {
		r.slots[key] = &slot{ch: make(chan domain.VerificationResult, 1)}
	}
}

// Deliver resolves key. Unknown keys return domain.ErrUnknownVerification.
func (r *Rendezvous) Deliver(key string, res domain.VerificationResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.slots[key]
	if !ok {
		return domain.ErrUnknownVerification
	}
	if s.parked {
		return ErrDuplicate
	}
	s.parked = true
	s.ch <- res
	return nil
}

// Await blocks until key is delivered, cancelled, or ctx ends. The key is
// closed on return whatever the outcome.
func (r *Rendezvous) Await(ctx context.Context, key string) (domain.VerificationResult, error) {
	r.mu.Lock()
	s, ok := r.slots[key]
	if !ok {
		r.mu.Unlock()
		return domain.VerificationResult{}, domain.ErrUnknownVerification
	}
	if s.waiting {
		r.mu.Unlock()
		return domain.VerificationResult{}, ErrAlreadyWaiting
	}
	s.waiting = true
	r.mu.Unlock()

	defer r.drop(key)
	select {
	case res, ok := <-s.ch:
		if !ok {
			return domain.VerificationResult{}, domain.ErrVerificationAborted
		}
		return res, nil
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return domain.VerificationResult{}, domain.ErrVerificationTimeout
		}
		return domain.VerificationResult{}, domain.ErrVerificationAborted
	}
}

// Cancel wakes the waiter on key with domain.ErrVerificationAborted. A
// result delivered before Cancel still reaches the waiter.
func (r *Rendezvous) Cancel(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.slots[key]
	if !ok {
		return
	}
	delete(r.slots, key)
	if !s.parked {
		close(s.ch)
	}
}

// Pending returns the number of open keys.
func (r *Rendezvous) Pending() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.slots)
}

func (r *Rendezvous) drop(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.slots, key)
}
