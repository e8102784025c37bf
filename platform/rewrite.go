package platform

import (
	"strings"

	"github.com/ryanreadbooks/cmdgate/pkg/bash"
)

// Rewrite strips a leading Windows interpreter wrapper from a command line
// so the inner command can run under a POSIX shell. "cmd /c dir" becomes
// "dir"; `powershell -NoProfile -Command "Get-Date` loses the interpreter,
// its flags and the opening quote. A line with no recognized wrapper passes
// through unchanged. This is a textual heuristic, not a parser: a wrapped
// command it cannot save simply fails downstream and is reported as
// unsupported on this platform.
func Rewrite(raw string) string {
	trimmed := strings.TrimSpace(raw)
	tokens := bash.Fields(trimmed)
	if len(tokens) == 0 {
		return raw
	}

	switch strings.ToLower(tokens[0]) {
	case "cmd", "cmd.exe":
		if len(tokens) >= 2 && strings.EqualFold(tokens[1], "/c") {
			lowered := strings.ToLower(trimmed)
			if i := strings.Index(lowered, "/c"); i >= 0 {
				return strings.TrimLeft(trimmed[i+len("/c"):], " \t")
			}
		}
		return raw

	case "powershell", "powershell.exe", "pwsh", "pwsh.exe":
		rest := strings.TrimLeft(trimmed[len(tokens[0]):], " \t")
		return stripScriptFlags(rest)

	default:
		return raw
	}
}

// stripScriptFlags drops leading interpreter flags, stopping after a
// -Command/-c flag, then removes one opening quote if present. The closing
// quote, if any, is deliberately left in place.
func stripScriptFlags(rest string) string {
	s := rest
	for strings.HasPrefix(s, "-") {
		flag := s
		if i := strings.IndexAny(s, " \t"); i >= 0 {
			flag, s = s[:i], strings.TrimLeft(s[i:], " \t")
		} else {
			s = ""
		}

		if strings.EqualFold(flag, "-command") || strings.EqualFold(flag, "-c") {
			break
		}
	}

	if len(s) > 0 && (s[0] == '"' || s[0] == '\'') {
		s = s[1:]
	}

	return s
}
