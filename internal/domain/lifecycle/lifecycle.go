// Package lifecycle holds shared settings for fx start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds each start or stop hook (DB ping, HTTP shutdown, publisher close).
const DefaultTimeout = 10 * time.Second
