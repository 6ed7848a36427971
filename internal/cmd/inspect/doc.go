// Package inspect implements the `scru64 inspect` command: it decodes
// identifiers given as arguments and prints their fields as one JSON object
// per line.
package inspect
