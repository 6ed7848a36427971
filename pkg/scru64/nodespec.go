package scru64

import (
	"fmt"
	"strconv"
	"strings"
)

// NodeSpec describes a generator's node identity: a node ID and the bit width
// allocated to it within the 24-bit nodeCtr field. It is constructed either
// from an explicit node ID ("42/8", "0x2a/8") or from a previously generated
// ID whose nodeCtr carries both the node ID and the counter to resume from
// ("0u2r85hm2pt3/16").
type NodeSpec struct {
	nodePrev   ID
	prevSet    bool
	nodeID     uint32
	nodeIDSize uint8
}

// NewNodeSpec creates a NodeSpec from an explicit node ID and size.
func NewNodeSpec(nodeID uint32, nodeIDSize int) (NodeSpec, error) {
	if err := checkNodeIDSize(nodeIDSize); err != nil {
		return NodeSpec{}, err
	}
	if nodeID >= uint32(1)<<nodeIDSize {
		return NodeSpec{}, fmt.Errorf("scru64: node ID %d does not fit in %d bits: %w", nodeID, nodeIDSize, ErrRange)
	}
	return NodeSpec{nodeID: nodeID, nodeIDSize: uint8(nodeIDSize)}, nil
}

// NewNodeSpecWithNodePrev creates a NodeSpec from a prior ID. The top
// nodeIDSize bits of its nodeCtr field supply the node ID; the rest supply
// the initial counter, and its timestamp seeds the generator state. Any valid
// ID already satisfies the field bounds, so only the size is checked.
func NewNodeSpecWithNodePrev(nodePrev ID, nodeIDSize int) (NodeSpec, error) {
	if err := checkNodeIDSize(nodeIDSize); err != nil {
		return NodeSpec{}, err
	}
	return NodeSpec{nodePrev: nodePrev, prevSet: true, nodeIDSize: uint8(nodeIDSize)}, nil
}

// ParseNodeSpec parses the textual node spec grammar:
//
//	nodeSpec := (decimalNodeId | "0x" hexNodeId | nodePrevString) "/" nodeIdSizeDecimal
//
// with 1-8 decimal digits, 1-6 hex digits, or exactly 12 Base36 characters
// before the slash, and a 1-3 digit size valued 1..23 after it. No
// surrounding whitespace or extra characters are accepted.
func ParseNodeSpec(s string) (NodeSpec, error) {
	value, sizeStr, ok := strings.Cut(s, "/")
	if !ok {
		return NodeSpec{}, fmt.Errorf("scru64: parse node spec %q: missing \"/\": %w", s, ErrSyntax)
	}
	if len(sizeStr) < 1 || len(sizeStr) > 3 || !isDecimal(sizeStr) {
		return NodeSpec{}, fmt.Errorf("scru64: parse node spec %q: malformed node ID size: %w", s, ErrSyntax)
	}
	size, err := strconv.ParseUint(sizeStr, 10, 16)
	if err != nil {
		return NodeSpec{}, fmt.Errorf("scru64: parse node spec %q: malformed node ID size: %w", s, ErrSyntax)
	}
	if err := checkNodeIDSize(int(size)); err != nil {
		return NodeSpec{}, err
	}

	// A 12-character value is always the nodePrev form: the decimal and hex
	// forms are at most 8 characters.
	if len(value) == 12 {
		prev, err := Parse(value)
		if err != nil {
			return NodeSpec{}, err
		}
		return NewNodeSpecWithNodePrev(prev, int(size))
	}

	var nodeID uint64
	if strings.HasPrefix(value, "0x") || strings.HasPrefix(value, "0X") {
		digits := value[2:]
		if len(digits) < 1 || len(digits) > 6 {
			return NodeSpec{}, fmt.Errorf("scru64: parse node spec %q: malformed hex node ID: %w", s, ErrSyntax)
		}
		nodeID, err = strconv.ParseUint(digits, 16, 32)
		if err != nil {
			return NodeSpec{}, fmt.Errorf("scru64: parse node spec %q: malformed hex node ID: %w", s, ErrSyntax)
		}
	} else {
		if len(value) < 1 || len(value) > 8 || !isDecimal(value) {
			return NodeSpec{}, fmt.Errorf("scru64: parse node spec %q: malformed node ID: %w", s, ErrSyntax)
		}
		nodeID, err = strconv.ParseUint(value, 10, 32)
		if err != nil {
			return NodeSpec{}, fmt.Errorf("scru64: parse node spec %q: malformed node ID: %w", s, ErrSyntax)
		}
	}
	return NewNodeSpec(uint32(nodeID), int(size))
}

// NodeID returns the node ID. For the nodePrev form it is the top NodeIDSize
// bits of the prior ID's nodeCtr field.
func (n NodeSpec) NodeID() uint32 {
	if n.prevSet {
		return n.nodePrev.NodeCtr() >> (24 - n.nodeIDSize)
	}
	return n.nodeID
}

// NodeIDSize returns the bit width allocated to the node ID.
func (n NodeSpec) NodeIDSize() int { return int(n.nodeIDSize) }

// NodePrev returns the prior ID the spec was built from, if any.
func (n NodeSpec) NodePrev() (ID, bool) { return n.nodePrev, n.prevSet }

// String returns the canonical text form: the 12-character ID for the
// nodePrev form, the decimal node ID otherwise.
func (n NodeSpec) String() string {
	if n.prevSet {
		return n.nodePrev.String() + "/" + strconv.Itoa(int(n.nodeIDSize))
	}
	return strconv.FormatUint(uint64(n.nodeID), 10) + "/" + strconv.Itoa(int(n.nodeIDSize))
}

func checkNodeIDSize(size int) error {
	if size < 1 || size > 23 {
		return fmt.Errorf("scru64: node ID size %d not in 1..23: %w", size, ErrRange)
	}
	return nil
}

func isDecimal(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
