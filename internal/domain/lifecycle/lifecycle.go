// Package lifecycle holds shared bounds for start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds a single start or stop hook, such as the DB ping or an HTTP shutdown.
const DefaultTimeout = 10 * time.Second
