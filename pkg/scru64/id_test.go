package scru64

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestFromPartsKnownVectors(t *testing.T) {
	tests := []struct {
		timestamp uint64
		nodeCtr   uint32
		str       string
		hex       string
	}{
		{0, 0, "000000000000", "0x0000000000000000"},
		{6557084606, 2777946, "0u375nxqh5cq", "0x0186d52bbe2a635a"},
		{282429536480, 16777215, "zzzzzzzzzzzz", "0x41c21cb8e0ffffff"},
	}
	for _, tt := range tests {
		id, err := FromParts(tt.timestamp, tt.nodeCtr)
		if err != nil {
			t.Fatalf("FromParts(%d, %d): %v", tt.timestamp, tt.nodeCtr, err)
		}
		if got := id.String(); got != tt.str {
			t.Fatalf("String() = %q, want %q", got, tt.str)
		}
		if got := id.Hex(); got != tt.hex {
			t.Fatalf("Hex() = %q, want %q", got, tt.hex)
		}
		if id.Timestamp() != tt.timestamp {
			t.Fatalf("Timestamp() = %d, want %d", id.Timestamp(), tt.timestamp)
		}
		if id.NodeCtr() != tt.nodeCtr {
			t.Fatalf("NodeCtr() = %d, want %d", id.NodeCtr(), tt.nodeCtr)
		}
	}
}

func TestBytesRoundTrip(t *testing.T) {
	bufs := [][]byte{
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0x01, 0x86, 0xd5, 0x2b, 0xbe, 0x2a, 0x63, 0x5a},
		{0x41, 0xc2, 0x1c, 0xb8, 0xe0, 0xff, 0xff, 0xff},
	}
	for _, b := range bufs {
		id, err := FromBytes(b)
		if err != nil {
			t.Fatalf("FromBytes(%x): %v", b, err)
		}
		if !bytes.Equal(id.Bytes(), b) {
			t.Fatalf("Bytes() = %x, want %x", id.Bytes(), b)
		}
	}
}

func TestBytesCopied(t *testing.T) {
	b := []byte{0x01, 0x86, 0xd5, 0x2b, 0xbe, 0x2a, 0x63, 0x5a}
	id, err := FromBytes(b)
	if err != nil {
		t.Fatalf("FromBytes: %v", err)
	}
	b[0] = 0xff
	if id.Uint64() != 0x0186d52bbe2a635a {
		t.Fatalf("ID aliased the caller's buffer")
	}
	out := id.Bytes()
	out[0] = 0xff
	if id.Uint64() != 0x0186d52bbe2a635a {
		t.Fatalf("Bytes() aliased the internal representation")
	}
}

func TestParseCaseInsensitive(t *testing.T) {
	for _, s := range []string{"0u375nxqh5cq", "0U375NXQH5CQ", "0u375NXQh5cq"} {
		id, err := Parse(s)
		if err != nil {
			t.Fatalf("Parse(%q): %v", s, err)
		}
		if got := id.String(); got != strings.ToLower(s) {
			t.Fatalf("Parse(%q).String() = %q", s, got)
		}
	}
}

func TestParseRejects(t *testing.T) {
	cases := []string{
		"",
		"0u375nxqh5c",   // 11 chars
		"0u375nxqh5cq0", // 13 chars
		"0u375nxqh5c+",
		"-u375nxqh5cq",
		"0u375nxqh5c ",
		" u375nxqh5cq",
		"0u375_xqh5cq",
		"0u375nxqh5cé",
	}
	for _, s := range cases {
		if _, err := Parse(s); !errors.Is(err, ErrSyntax) {
			t.Fatalf("Parse(%q) err = %v, want ErrSyntax", s, err)
		}
	}
}

func TestFromBytesRejects(t *testing.T) {
	if _, err := FromBytes(make([]byte, 7)); !errors.Is(err, ErrSyntax) {
		t.Fatalf("7-byte buffer err = %v, want ErrSyntax", err)
	}
	if _, err := FromBytes(make([]byte, 9)); !errors.Is(err, ErrSyntax) {
		t.Fatalf("9-byte buffer err = %v, want ErrSyntax", err)
	}
	all := bytes.Repeat([]byte{0xff}, 8)
	if _, err := FromBytes(all); !errors.Is(err, ErrRange) {
		t.Fatalf("all-0xff buffer err = %v, want ErrRange", err)
	}
	// One above the ceiling.
	over := []byte{0x41, 0xc2, 0x1c, 0xb8, 0xe1, 0x00, 0x00, 0x00}
	if _, err := FromBytes(over); !errors.Is(err, ErrRange) {
		t.Fatalf("over-ceiling buffer err = %v, want ErrRange", err)
	}
}

func TestFromUint64Bounds(t *testing.T) {
	if _, err := FromUint64(maxID); err != nil {
		t.Fatalf("FromUint64(maxID): %v", err)
	}
	if _, err := FromUint64(maxID + 1); !errors.Is(err, ErrRange) {
		t.Fatalf("FromUint64(maxID+1) err = %v, want ErrRange", err)
	}
}

func TestFromPartsBounds(t *testing.T) {
	if _, err := FromParts(MaxTimestamp+1, 0); !errors.Is(err, ErrRange) {
		t.Fatalf("timestamp over max err = %v, want ErrRange", err)
	}
	if _, err := FromParts(0, MaxNodeCtr+1); !errors.Is(err, ErrRange) {
		t.Fatalf("nodeCtr over max err = %v, want ErrRange", err)
	}
}

func TestOrderingMatchesText(t *testing.T) {
	parts := []struct {
		timestamp uint64
		nodeCtr   uint32
	}{
		{0, 0},
		{0, 1},
		{0, MaxNodeCtr},
		{1, 0},
		{6557084606, 2777945},
		{6557084606, 2777946},
		{6557084607, 0},
		{MaxTimestamp, MaxNodeCtr},
	}
	var prev ID
	for i, p := range parts {
		id, err := FromParts(p.timestamp, p.nodeCtr)
		if err != nil {
			t.Fatalf("FromParts(%d, %d): %v", p.timestamp, p.nodeCtr, err)
		}
		if i > 0 {
			if prev.Compare(id) >= 0 {
				t.Fatalf("Compare(%v, %v) = %d, want < 0", prev, id, prev.Compare(id))
			}
			if id.Compare(prev) <= 0 {
				t.Fatalf("Compare(%v, %v) = %d, want > 0", id, prev, id.Compare(prev))
			}
			if prev.String() >= id.String() {
				t.Fatalf("text order broken: %q >= %q", prev.String(), id.String())
			}
		}
		if id.Compare(id) != 0 {
			t.Fatalf("Compare(x, x) != 0")
		}
		prev = id
	}
}

func TestStringRoundTrip(t *testing.T) {
	for _, s := range []string{"000000000000", "0u375nxqh5cq", "zzzzzzzzzzzz"} {
		id, err := Parse(s)
		if err != nil {
			t.Fatalf("Parse(%q): %v", s, err)
		}
		if id.String() != s {
			t.Fatalf("round trip %q -> %q", s, id.String())
		}
	}
}

func TestTextAndBinaryMarshaling(t *testing.T) {
	id := MustParse("0u375nxqh5cq")

	txt, err := id.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText: %v", err)
	}
	var fromText ID
	if err := fromText.UnmarshalText(txt); err != nil {
		t.Fatalf("UnmarshalText: %v", err)
	}
	if fromText != id {
		t.Fatalf("text round trip mismatch")
	}

	bin, err := id.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary: %v", err)
	}
	var fromBin ID
	if err := fromBin.UnmarshalBinary(bin); err != nil {
		t.Fatalf("UnmarshalBinary: %v", err)
	}
	if fromBin != id {
		t.Fatalf("binary round trip mismatch")
	}
}

func TestJSONUsesTextForm(t *testing.T) {
	id := MustParse("0u375nxqh5cq")
	b, err := json.Marshal(id)
	if err != nil {
		t.Fatalf("json.Marshal: %v", err)
	}
	if string(b) != `"0u375nxqh5cq"` {
		t.Fatalf("json form = %s", b)
	}
	var back ID
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("json.Unmarshal: %v", err)
	}
	if back != id {
		t.Fatalf("json round trip mismatch")
	}
}
