package tool

import "fmt"

// ErrorTag classifies a failed invocation. Every error that crosses the
// protocol boundary carries exactly one of these tags, so the caller can
// classify the failure without parsing prose.
type ErrorTag string

const (
	TagSchemaValidation    ErrorTag = "<schema_validation>"
	TagPolicyRejected      ErrorTag = "<policy_rejected>"
	TagPlatformUnsupported ErrorTag = "<platform_unsupported>"
	TagSpawnFailure        ErrorTag = "<spawn_failure>"
	TagTimeout             ErrorTag = "<timeout>"
)

// TagError wraps err between a pair of tag markers.
func TagError(tag ErrorTag, err error) error {
	return fmt.Errorf("%s%w%s", tag, err, tag)
}
