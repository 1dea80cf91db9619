// Package lifecycle holds shared start/stop bounds for fx hooks.
package lifecycle

import "time"

// DefaultTimeout bounds every OnStart/OnStop hook (ping, shutdown, flush).
const DefaultTimeout = 10 * time.Second
