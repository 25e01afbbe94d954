package singleinstance

import (
	"os"
	"strconv"
)

const defaultLockPort = 49531

// lockPort returns the configured lock port. Environment variable:
// SINGLEINSTANCE_PORT (integer). Falls back to the default when
// unset/invalid, and clamps to [1024, 65535].
func lockPort() int {
	port := defaultLockPort
	if v := os.Getenv("SINGLEINSTANCE_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			port = n
		}
	}
	if port < 1024 {
		port = 1024
	}
	if port > 65535 {
		port = 65535
	}
	return port
}

// LockPortForDebug exposes the effective port for logging/debugging.
func LockPortForDebug() int { return lockPort() }
