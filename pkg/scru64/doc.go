// Package scru64 implements the SCRU64 identifier: a 64-bit, sortable,
// time-ordered unique ID, and a stateful generator that mints monotonically
// increasing IDs under a configured node identity.
//
// # Format
//
// An ID is 8 bytes big-endian, valued in [0, 36^12 - 1]: [40-bit timestamp in
// 256 ms units since Unix epoch][24-bit nodeCtr]. The nodeCtr field combines
// a fixed node ID (high bits) with a per-tick counter (low bits); the split
// is configured per generator via a node spec such as "42/8". Byte-wise
// comparison, numeric comparison, and lexical comparison of the 12-character
// Base36 text form all agree.
//
// # Monotonicity
//
// A Generator advances the timestamp or increments the counter on every call,
// so successive IDs compare strictly greater — unless the wall clock jumps
// backwards by more than the rollback allowance (10 s by default). On such a
// significant rollback the caller picks the policy: abort (no ID, state kept),
// reset (restart from the smaller timestamp, breaking monotonicity), or wait
// for the clock to catch up.
//
// Usage
//
//	spec, err := scru64.ParseNodeSpec("42/8")
//	g := scru64.NewGenerator(spec)
//	id, err := g.Generate(ctx)
//	s := id.String() // "0u375nxqh5cq"
//	b := id.Bytes()  // 8-byte big-endian representation
package scru64
