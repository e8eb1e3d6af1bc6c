// Package lifecycle holds shared start/stop settings for fx hooks.
package lifecycle

import "time"

// DefaultTimeout bounds OnStart/OnStop work such as pings and graceful shutdown.
const DefaultTimeout = 10 * time.Second
