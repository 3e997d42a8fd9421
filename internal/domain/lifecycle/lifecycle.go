// Package lifecycle holds shared lifecycle constants for startup and
// shutdown coordination.
package lifecycle

import "time"

// DefaultTimeout bounds graceful startup checks and shutdown of managed
// resources (HTTP server, database connections).
const DefaultTimeout = 10 * time.Second
