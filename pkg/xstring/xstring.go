package xstring

import (
	"strings"
	"unsafe"
)

func ToBytes(s string) []byte {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

// FromBytes converts without copying. The input must not be mutated after.
func FromBytes(s []byte) string {
	return unsafe.String(unsafe.SliceData(s), len(s))
}

// FilterLines keeps only the lines of s containing substr, case-insensitively.
func FilterLines(s, substr string) string {
	needle := strings.ToLower(substr)
	lines := strings.Split(s, "\n")

	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.Contains(strings.ToLower(line), needle) {
			kept = append(kept, line)
		}
	}

	return strings.Join(kept, "\n")
}
