// Package os reports coarse facts about the host operating system.
package os

import (
	"os"
	"runtime"
	"strings"
)

// DescribeHost returns a short human-readable name for the host system,
// such as "windows", "macos" or a linux distro id.
func DescribeHost() string {
	switch runtime.GOOS {
	case "linux":
		data, err := os.ReadFile("/etc/os-release")
		if err != nil {
			return "linux"
		}
		for _, line := range strings.Split(string(data), "\n") {
			if after, ok := strings.CutPrefix(line, "ID="); ok {
				return strings.Trim(after, `"`)
			}
		}
		return "linux"
	case "darwin":
		return "macos"
	default:
		return runtime.GOOS
	}
}
