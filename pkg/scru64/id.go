package scru64

import (
	"encoding/binary"
	"fmt"
	"log/slog"
	"strconv"
)

// ID is a SCRU64 identifier encoded as 8 bytes big-endian:
// [40 bits timestamp in 256 ms units][24 bits nodeCtr].
type ID [8]byte

// Field bounds of the SCRU64 format.
const (
	// maxID is 36^12 - 1 (0x41C21CB8E0FFFFFF), the largest value that 12
	// Base36 digits can represent. The top of the 64-bit space is unused.
	maxID uint64 = 4738381338321616895

	// MaxTimestamp is the largest timestamp field value, (36^12 - 1) >> 24.
	MaxTimestamp uint64 = 282429536480

	// MaxNodeCtr is the largest nodeCtr field value, 2^24 - 1.
	MaxNodeCtr uint32 = 16777215
)

// FromBytes creates an ID from an 8-byte big-endian buffer. The buffer is
// copied; the caller keeps ownership of b.
func FromBytes(b []byte) (ID, error) {
	if len(b) != 8 {
		return ID{}, fmt.Errorf("scru64: byte slice of length %d, want 8: %w", len(b), ErrSyntax)
	}
	return FromUint64(binary.BigEndian.Uint64(b))
}

// FromUint64 creates an ID from its 64-bit integer value.
func FromUint64(n uint64) (ID, error) {
	if n > maxID {
		return ID{}, fmt.Errorf("scru64: value %d exceeds 36^12 - 1: %w", n, ErrRange)
	}
	var id ID
	binary.BigEndian.PutUint64(id[:], n)
	return id, nil
}

// FromParts creates an ID from a timestamp (256 ms units since Unix epoch)
// and a combined nodeCtr field value.
func FromParts(timestamp uint64, nodeCtr uint32) (ID, error) {
	if timestamp > MaxTimestamp {
		return ID{}, fmt.Errorf("scru64: timestamp %d exceeds %d: %w", timestamp, MaxTimestamp, ErrRange)
	}
	if nodeCtr > MaxNodeCtr {
		return ID{}, fmt.Errorf("scru64: nodeCtr %d exceeds %d: %w", nodeCtr, MaxNodeCtr, ErrRange)
	}
	var id ID
	binary.BigEndian.PutUint64(id[:], timestamp<<24|uint64(nodeCtr))
	return id, nil
}

// Parse creates an ID from its 12-character Base36 text form. Input is
// case-insensitive; any other character, including signs, spaces, and
// underscores, is rejected.
func Parse(s string) (ID, error) {
	if len(s) != 12 {
		return ID{}, fmt.Errorf("scru64: parse %q: string of length %d, want 12: %w", s, len(s), ErrSyntax)
	}
	// 12 Base36 digits always fit in uint64 (36^12 - 1 < 2^64), so ParseUint
	// can only fail on an invalid digit.
	n, err := strconv.ParseUint(s, 36, 64)
	if err != nil {
		return ID{}, fmt.Errorf("scru64: parse %q: %w", s, ErrSyntax)
	}
	var id ID
	binary.BigEndian.PutUint64(id[:], n)
	return id, nil
}

// MustParse is like Parse but panics on error. Intended for constants and
// tests.
func MustParse(s string) ID {
	id, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return id
}

// Uint64 returns the 64-bit integer value.
func (i ID) Uint64() uint64 { return binary.BigEndian.Uint64(i[:]) }

// Bytes returns a copy of the raw 8-byte big-endian representation.
func (i ID) Bytes() []byte { b := make([]byte, 8); copy(b, i[:]); return b }

// Timestamp returns the timestamp field: the top 5 bytes as an unsigned
// big-endian integer, counting 256 ms units since the Unix epoch.
func (i ID) Timestamp() uint64 { return i.Uint64() >> 24 }

// NodeCtr returns the combined node ID and counter field: the bottom 3 bytes
// as an unsigned big-endian integer.
func (i ID) NodeCtr() uint32 {
	return uint32(i[5])<<16 | uint32(i[6])<<8 | uint32(i[7])
}

// String returns the 12-character, zero-padded, lowercase Base36 text form.
// Lexical order of this form matches numeric order of the IDs.
func (i ID) String() string {
	const digits = "0123456789abcdefghijklmnopqrstuvwxyz"
	n := i.Uint64()
	var buf [12]byte
	for pos := 11; pos >= 0; pos-- {
		buf[pos] = digits[n%36]
		n /= 36
	}
	return string(buf[:])
}

// Hex returns "0x" followed by 16 lowercase hex digits.
func (i ID) Hex() string {
	const hexdigits = "0123456789abcdef"
	out := make([]byte, 2+16)
	out[0], out[1] = '0', 'x'
	for idx, v := range i {
		out[2+idx*2] = hexdigits[v>>4]
		out[3+idx*2] = hexdigits[v&0x0f]
	}
	return string(out)
}

// Compare returns -1, 0, 1 based on byte-wise big-endian comparison, which
// coincides with numeric comparison of the 64-bit values.
func (i ID) Compare(other ID) int {
	for idx := 0; idx < 8; idx++ {
		if i[idx] < other[idx] {
			return -1
		}
		if i[idx] > other[idx] {
			return 1
		}
	}
	return 0
}

// MarshalText implements encoding.TextMarshaler using the canonical Base36
// form. This is also the JSON representation.
func (i ID) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (i *ID) UnmarshalText(text []byte) error {
	id, err := Parse(string(text))
	if err != nil {
		return err
	}
	*i = id
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler using the 8-byte
// big-endian form.
func (i ID) MarshalBinary() ([]byte, error) { return i.Bytes(), nil }

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (i *ID) UnmarshalBinary(data []byte) error {
	id, err := FromBytes(data)
	if err != nil {
		return err
	}
	*i = id
	return nil
}

// LogValue implements slog.LogValuer; IDs log as their Base36 text form.
func (i ID) LogValue() slog.Value { return slog.StringValue(i.String()) }
