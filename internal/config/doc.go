// Package config loads the scru64 CLI runtime configuration from SCRU64_*
// environment variables into a typed struct. Parsing is handled by
// caarlos0/env; flags may still override individual values at the command
// layer.
package config
