// Package generate implements the `scru64 generate` command: it builds a
// generator from the configured node spec and writes one identifier per line
// to standard output.
package generate
