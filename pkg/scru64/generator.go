package scru64

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

const (
	// DefaultRollbackAllowance is the backward clock jump, in milliseconds,
	// tolerated by the wall-clock generate operations before they treat the
	// jump as a significant rollback.
	DefaultRollbackAllowance uint64 = 10_000

	// retryInterval is the delay between attempts while waiting out a
	// significant rollback in GenerateOrSleep and Generate.
	retryInterval = 64 * time.Millisecond

	// maxAllowanceTicks bounds the rollback allowance once converted to
	// 256 ms units.
	maxAllowanceTicks uint64 = 0xFF_FFFF_FFFF
)

// nowMs returns the wall clock in milliseconds since the Unix epoch.
// Overridable in tests.
var nowMs = func() uint64 { return uint64(time.Now().UnixMilli()) }

// Generator produces monotonically increasing SCRU64 IDs for one node.
//
// A Generator is safe for concurrent use; every generate operation runs under
// an internal mutex. The monotonic order is guaranteed per generator, not
// across generators sharing a node ID.
type Generator struct {
	mu          sync.Mutex
	timestamp   uint64 // last minted timestamp, 256 ms units; 0 = never minted
	nodeCtr     uint32 // last emitted nodeCtr field value
	counterSize uint8  // fixed at construction: 24 - nodeIDSize
	counterMode CounterMode
	fromPrev    bool // constructed from a nodePrev spec
}

// NewGenerator creates a Generator with the node identity described by spec
// and the default counter initialization policy.
func NewGenerator(spec NodeSpec) *Generator {
	return NewGeneratorWithCounterMode(spec, defaultCounterModeFor(24-spec.NodeIDSize()))
}

// NewGeneratorWithCounterMode creates a Generator with a caller-supplied
// counter initialization policy.
func NewGeneratorWithCounterMode(spec NodeSpec, mode CounterMode) *Generator {
	g := &Generator{
		counterSize: uint8(24 - spec.NodeIDSize()),
		counterMode: mode,
	}
	if prev, ok := spec.NodePrev(); ok {
		g.timestamp = prev.Timestamp()
		g.nodeCtr = prev.NodeCtr()
		g.fromPrev = true
	} else {
		g.nodeCtr = spec.NodeID() << g.counterSize
	}
	return g
}

// NodeID returns the generator's fixed node ID.
func (g *Generator) NodeID() uint32 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.nodeCtr >> g.counterSize
}

// NodeIDSize returns the bit width allocated to the node ID.
func (g *Generator) NodeIDSize() int { return 24 - int(g.counterSize) }

// NodeSpec returns the canonical node spec describing the generator. A
// generator constructed from a nodePrev spec renders the most recently
// generated ID; one constructed from an explicit node ID renders the decimal
// form.
func (g *Generator) NodeSpec() NodeSpec {
	g.mu.Lock()
	defer g.mu.Unlock()
	size := 24 - int(g.counterSize)
	if g.fromPrev {
		if prev, err := FromParts(g.timestamp, g.nodeCtr); err == nil {
			spec, _ := NewNodeSpecWithNodePrev(prev, size)
			return spec
		}
	}
	spec, _ := NewNodeSpec(g.nodeCtr>>g.counterSize, size)
	return spec
}

// GenerateOrAbort generates an ID from the current wall clock, or reports
// false on a clock rollback beyond DefaultRollbackAllowance, leaving the
// generator state untouched.
func (g *Generator) GenerateOrAbort() (ID, bool) {
	id, err := g.GenerateOrAbortCore(nowMs(), DefaultRollbackAllowance)
	if err != nil {
		return ID{}, false
	}
	return id, true
}

// GenerateOrReset generates an ID from the current wall clock. On a clock
// rollback beyond DefaultRollbackAllowance it resets the generator to the
// rolled-back clock and returns an ID that compares less than the previous
// one, deliberately breaking the monotonic order.
func (g *Generator) GenerateOrReset() ID {
	id, err := g.GenerateOrResetCore(nowMs(), DefaultRollbackAllowance)
	if err != nil {
		// Unreachable with a sane wall clock: the current time is well past
		// zero and well below the 40-bit timestamp ceiling.
		panic("scru64: " + err.Error())
	}
	return id
}

// GenerateOrSleep generates an ID from the current wall clock, sleeping in
// fixed 64 ms steps through any significant rollback until the clock catches
// up. It blocks the calling goroutine with no upper bound; prefer Generate
// when cancellation is needed.
func (g *Generator) GenerateOrSleep() ID {
	for {
		if id, ok := g.GenerateOrAbort(); ok {
			return id
		}
		time.Sleep(retryInterval)
	}
}

// Generate generates an ID from the current wall clock, waiting through any
// significant rollback until the clock catches up or ctx is cancelled. The
// wait suspends between fixed 64 ms attempts and has no internal timeout;
// ctx is the only way to abandon it.
func (g *Generator) Generate(ctx context.Context) (ID, error) {
	for {
		if id, ok := g.GenerateOrAbort(); ok {
			return id, nil
		}
		select {
		case <-ctx.Done():
			return ID{}, ctx.Err()
		case <-time.After(retryInterval):
		}
	}
}

// GenerateOrAbortCore generates an ID from the given Unix timestamp in
// milliseconds, tolerating a backward jump of up to rollbackAllowanceMs. On a
// jump beyond the allowance it returns ErrClockRollback and leaves the
// generator state untouched.
func (g *Generator) GenerateOrAbortCore(unixTsMs, rollbackAllowanceMs uint64) (ID, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.generateOrAbortLocked(unixTsMs, rollbackAllowanceMs)
}

// GenerateOrResetCore is like GenerateOrAbortCore, but on a jump beyond the
// allowance it resets the generator to the rolled-back timestamp and mints a
// fresh ID from there, deliberately breaking the monotonic order.
func (g *Generator) GenerateOrResetCore(unixTsMs, rollbackAllowanceMs uint64) (ID, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	id, err := g.generateOrAbortLocked(unixTsMs, rollbackAllowanceMs)
	if errors.Is(err, ErrClockRollback) {
		g.timestamp = unixTsMs / 256
		g.renewNodeCtr()
		return FromParts(g.timestamp, g.nodeCtr)
	}
	return id, err
}

// generateOrAbortLocked runs the per-call state transition. Timestamps and
// the allowance are converted to 256 ms units by truncating division; the
// allowance boundary is inclusive, so ts + allowance == previous stays on the
// counter-increment path.
func (g *Generator) generateOrAbortLocked(unixTsMs, rollbackAllowanceMs uint64) (ID, error) {
	ts := unixTsMs / 256
	allowance := rollbackAllowanceMs / 256
	if ts == 0 {
		return ID{}, fmt.Errorf("scru64: timestamp %d ms out of range: %w", unixTsMs, ErrRange)
	}
	if allowance > maxAllowanceTicks {
		return ID{}, fmt.Errorf("scru64: rollback allowance %d ms out of range: %w", rollbackAllowanceMs, ErrRange)
	}

	switch {
	case ts > g.timestamp:
		// Clock advanced: adopt the new tick and renew the counter.
		g.timestamp = ts
		g.renewNodeCtr()
	case ts+allowance >= g.timestamp:
		// Clock steady or mildly behind: stay on the stored tick.
		counterMask := uint32(1)<<g.counterSize - 1
		if g.nodeCtr&counterMask < counterMask {
			g.nodeCtr++
		} else {
			// Counter exhausted within the tick: borrow the next tick so the
			// output stays monotonic even when called faster than the clock.
			g.timestamp++
			g.renewNodeCtr()
		}
	default:
		return ID{}, fmt.Errorf("scru64: timestamp %d ms behind generator state: %w", unixTsMs, ErrClockRollback)
	}
	return FromParts(g.timestamp, g.nodeCtr)
}

// renewNodeCtr recombines the fixed node ID with a counter drawn from the
// configured CounterMode. A mode returning a value outside its promised bit
// width is a broken extension; that is fatal, not retried.
func (g *Generator) renewNodeCtr() {
	nodeID := g.nodeCtr >> g.counterSize
	counter := g.counterMode.Renew(int(g.counterSize), RenewContext{Timestamp: g.timestamp, NodeID: nodeID})
	if counter >= uint32(1)<<g.counterSize {
		panic(fmt.Sprintf("scru64: counter mode returned %d, outside %d-bit range", counter, g.counterSize))
	}
	g.nodeCtr = nodeID<<g.counterSize | counter
}
