// Package platform turns logical gateway operations into concrete process
// invocations for the host operating system.
package platform

import (
	"errors"
	"runtime"
)

// Platform is the execution environment the gateway targets. It is detected
// once at startup and fixed for the process lifetime.
type Platform int

const (
	// Other covers every non-Windows host. Native Windows tooling is
	// unavailable there; a best-effort substitute is used where one exists.
	Other Platform = iota
	Windows
)

func (p Platform) String() string {
	if p == Windows {
		return "windows"
	}
	return "other"
}

// Detect reports the platform of the current process.
func Detect() Platform {
	if runtime.GOOS == "windows" {
		return Windows
	}
	return Other
}

// Invocation is a concrete command ready to be spawned, tagged with the
// platform it was rendered for.
type Invocation struct {
	Platform Platform
	Name     string
	Args     []string
}

// ErrUnsupported reports an operation that cannot be rendered on the
// current platform.
var ErrUnsupported = errors.New("not supported on this platform")
