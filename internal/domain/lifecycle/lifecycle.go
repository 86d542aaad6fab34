// Package lifecycle holds shared constants for fx lifecycle hooks.
package lifecycle

import "time"

// DefaultTimeout bounds startup and shutdown work such as the initial
// database ping and graceful HTTP server shutdown.
const DefaultTimeout = 10 * time.Second
