// Package lifecycle holds shared constants for application start/stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds how long a lifecycle hook may take to start or
// shut down a component.
const DefaultTimeout = 10 * time.Second
