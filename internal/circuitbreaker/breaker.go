// Package circuitbreaker stops calling a provider after repeated failures.
package circuitbreaker

import (
	"errors"
	"sync"
	"time"
)

// ErrOpen is returned by Allow while the breaker rejects calls.
var ErrOpen = errors.New("circuit breaker is open")

// State of a breaker.
type State int

const (
	StateClosed State = iota
	StateOpen
	StateHalfOpen
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}

// Config configures a breaker. Zero values take the defaults 5, 2 and 30s.
type Config struct {
	FailureThreshold int
	SuccessThreshold int
	OpenTimeout      time.Duration
	OnStateChange    func(name string, from, to State)
}

// Breaker is safe for concurrent use. While half-open it lets a single probe through at a time.
type Breaker struct {
	name string
	cfg  Config
	now  func() time.Time

	mu            sync.Mutex
	state         State
	failures      int
	successes     int
	probing       bool
	lastFailureAt time.Time
}

// New returns a closed breaker identified by name in state change callbacks.
func New(name string, cfg Config) *Breaker {
	if cfg.FailureThreshold <= 0 {
		cfg.FailureThreshold = 5
	}
	if cfg.SuccessThreshold <= 0 {
		cfg.SuccessThreshold = 2
	}
	if cfg.OpenTimeout <= 0 {
		cfg.OpenTimeout = 30 * time.Second
	}
	return &Breaker{name: name, cfg: cfg, now: time.Now}
}

// Name returns the breaker name.
func (b *Breaker) Name() string {
	return b.name
}

// Allow reports whether a call may proceed. A nil result obliges the caller
// to report the outcome with RecordSuccess or RecordFailure.
func (b *Breaker) Allow() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.expireOpen()
	switch b.state {
	case StateOpen:
		return ErrOpen
	case StateHalfOpen:
		if b.probing {
			return ErrOpen
		}
		b.probing = true
	}
	return nil
}

// RecordSuccess records a successful call.
func (b *Breaker) RecordSuccess() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.failures = 0
	if b.state != StateHalfOpen {
		return
	}
	b.probing = false
	b.successes++
	if b.successes >= b.cfg.SuccessThreshold {
		b.setState(StateClosed)
	}
}

// RecordFailure records a failed call.
func (b *Breaker) RecordFailure() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.failures++
	b.successes = 0
	b.probing = false
	b.lastFailureAt = b.now()
	switch {
	case b.state == StateHalfOpen:
		b.setState(StateOpen)
	case b.state == StateClosed && b.failures >= b.cfg.FailureThreshold:
		b.setState(StateOpen)
	}
}

// State returns the current state, moving an expired open breaker to half-open.
func (b *Breaker) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.expireOpen()
	return b.state
}

func (b *Breaker) expireOpen() {
	if b.state == StateOpen && b.now().Sub(b.lastFailureAt) >= b.cfg.OpenTimeout {
		b.setState(StateHalfOpen)
	}
}

func (b *Breaker) setState(to State) {
	from := b.state
	if from == to {
		return
	}
	b.state = to
	b.successes = 0
	b.probing = false
	if to == StateClosed {
		b.failures = 0
	}
	if b.cfg.OnStateChange != nil {
		b.cfg.OnStateChange(b.name, from, to)
	}
}
