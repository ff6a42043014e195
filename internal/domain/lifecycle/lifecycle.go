// Package lifecycle holds shared start/stop timing constants for
// application components managed by fx.
package lifecycle

import "time"

// DefaultTimeout bounds graceful startup and shutdown of a component.
const DefaultTimeout = 10 * time.Second
