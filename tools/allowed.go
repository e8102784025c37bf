package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/ryanreadbooks/cmdgate/component/tool"
)

type ListAllowedCommandsInput struct{}

// ListAllowedCommands describes the execution policy. The text is purely
// informational and gates nothing: free-form execution is screened against
// the denylist tables rendered below, not restricted to an allowlist.
func ListAllowedCommands(env *Env) tool.Invoker {
	return tool.NewInvoker(tool.Info{
		Name:        "list_allowed_commands",
		Description: "Describe which commands this gateway will and will not run.",
	}, func(ctx context.Context, _ *ListAllowedCommandsInput) (string, error) {
		var b strings.Builder

		b.WriteString("This gateway executes free-form commands (execute_command) and PowerShell scripts (execute_powershell) ")
		b.WriteString("after screening them against denylists of destructive operations.\n")
		b.WriteString("Any input that does not contain a denied pattern will be attempted.\n")

		b.WriteString("\nDenied command patterns:\n")
		for _, p := range env.CommandRules.Patterns() {
			fmt.Fprintf(&b, "  - %s\n", p)
		}

		b.WriteString("\nDenied script patterns:\n")
		for _, p := range env.ScriptRules.Patterns() {
			fmt.Fprintf(&b, "  - %s\n", p)
		}

		b.WriteString("\nRead-only queries: list_running_processes, get_system_info, get_network_info, get_scheduled_tasks, get_service_info.\n")

		return b.String(), nil
	})
}
