package scru64

import (
	"context"
	"fmt"
	"os"
	"sync"
)

// NodeSpecEnv is the environment variable the process-default generator is
// lazily configured from.
const NodeSpecEnv = "SCRU64_NODE_SPEC"

// The process-default generator is an explicit initialize-once cell: it is
// built at most once, either by ConfigureDefaultGenerator or lazily from
// NodeSpecEnv on first use. A failed lazy initialization (unset or invalid
// environment) does not latch; the next use retries.
var (
	defaultMu  sync.Mutex
	defaultGen *Generator
)

// ConfigureDefaultGenerator installs the process-default generator before its
// first use. It fails once the default generator has been initialized, by a
// prior call or by lazy construction from the environment.
func ConfigureDefaultGenerator(spec NodeSpec) error {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultGen != nil {
		return fmt.Errorf("scru64: default generator already configured as %q", defaultGen.NodeSpec())
	}
	defaultGen = NewGenerator(spec)
	return nil
}

// DefaultGenerator returns the process-default generator, constructing it
// from NodeSpecEnv on first use. It returns an error wrapping
// ErrNotConfigured when the variable is unset and no generator was installed.
func DefaultGenerator() (*Generator, error) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultGen != nil {
		return defaultGen, nil
	}
	s := os.Getenv(NodeSpecEnv)
	if s == "" {
		return nil, fmt.Errorf("scru64: %s is not set: %w", NodeSpecEnv, ErrNotConfigured)
	}
	spec, err := ParseNodeSpec(s)
	if err != nil {
		return nil, err
	}
	defaultGen = NewGenerator(spec)
	return defaultGen, nil
}

// New generates an ID with the process-default generator, waiting through any
// significant clock rollback until ctx is cancelled.
func New(ctx context.Context) (ID, error) {
	g, err := DefaultGenerator()
	if err != nil {
		return ID{}, err
	}
	return g.Generate(ctx)
}

// NewString is like New but returns the 12-character text form.
func NewString(ctx context.Context) (string, error) {
	id, err := New(ctx)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}
