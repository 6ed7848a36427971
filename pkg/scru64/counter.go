package scru64

import "math/rand/v2"

// RenewContext carries the generator state visible to a CounterMode when the
// counter is reinitialized.
type RenewContext struct {
	// Timestamp is the new timestamp in 256 ms units.
	Timestamp uint64

	// NodeID is the generator's fixed node ID.
	NodeID uint32
}

// CounterMode decides the initial counter value whenever a generator moves to
// a new timestamp.
//
// Renew must return a value in [0, 2^counterSize). A value outside that range
// is a contract violation and makes the generator panic; it is never masked
// or retried.
type CounterMode interface {
	Renew(counterSize int, ctx RenewContext) uint32
}

// DefaultCounterMode initializes the counter with a uniformly random value,
// forcing a fixed number of leading overflow-guard bits to zero. The guard
// bits lower the chance that a large initial counter overflows within a
// single tick and pushes the timestamp ahead of the wall clock.
type DefaultCounterMode struct {
	overflowGuardSize int
}

// NewDefaultCounterMode creates a DefaultCounterMode with the given number of
// overflow-guard bits.
func NewDefaultCounterMode(overflowGuardSize int) *DefaultCounterMode {
	if overflowGuardSize < 0 {
		overflowGuardSize = 0
	}
	return &DefaultCounterMode{overflowGuardSize: overflowGuardSize}
}

// Renew returns a random counter value across counterSize minus the guard
// bits, or zero when the guard consumes the whole counter.
func (m *DefaultCounterMode) Renew(counterSize int, _ RenewContext) uint32 {
	k := counterSize - m.overflowGuardSize
	if k <= 0 {
		return 0
	}
	return rand.Uint32N(1 << k)
}

// defaultCounterModeFor picks the package default mode for a counter width:
// one guard bit for small counters, none otherwise.
func defaultCounterModeFor(counterSize int) CounterMode {
	if counterSize <= 4 {
		return NewDefaultCounterMode(1)
	}
	return NewDefaultCounterMode(0)
}
