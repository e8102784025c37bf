package tools

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ryanreadbooks/cmdgate/component/tool"
	hostos "github.com/ryanreadbooks/cmdgate/pkg/os"
	"github.com/ryanreadbooks/cmdgate/platform"
	"github.com/ryanreadbooks/cmdgate/policy"
)

type ExecuteCommandInput struct {
	Command    string `json:"command"              jsonschema:"description=The command to execute along with its arguments"`
	WorkingDir string `json:"workingDir,omitempty" jsonschema:"description=The working directory to execute the command in"`
	Timeout    int    `json:"timeout,omitempty"    jsonschema:"description=Timeout in milliseconds before the command is terminated,default=30000"`
}

func (in *ExecuteCommandInput) Validate() error {
	if strings.TrimSpace(in.Command) == "" {
		return errors.New("command must not be empty")
	}
	if in.Timeout < 0 {
		return errors.New("timeout must be greater than zero")
	}
	return nil
}

// ExecuteCommand is the free-form command execution tool. The command is
// screened against the command denylist before anything is rendered or
// spawned; a rejection never reaches the adapter or the gateway.
func ExecuteCommand(env *Env) tool.Invoker {
	return tool.NewInvoker(tool.Info{
		Name: "execute_command",
		Description: fmt.Sprintf(
			"Execute a command line on this %s host under the optional given working directory and return its combined output. Destructive commands are blocked.",
			hostos.DescribeHost(),
		),
	}, func(ctx context.Context, input *ExecuteCommandInput) (string, error) {
		if d := policy.Classify(input.Command, env.CommandRules); !d.Allowed {
			return "", tool.TagError(tool.TagPolicyRejected,
				fmt.Errorf("command blocked: matches denied pattern %q", d.MatchedPattern))
		}

		timeout := env.timeout(input.Timeout)
		inv := env.Adapter.Command(input.Command)
		res := env.Gateway.Run(ctx, inv, input.WorkingDir, timeout)

		// A windows-flavored command the rewrite could not save is
		// information, not a fault.
		if res.SpawnErr != nil && inv.Platform != platform.Windows {
			return fmt.Sprintf("command is not supported on this platform (%s): %v",
				hostos.DescribeHost(), res.SpawnErr), nil
		}

		return formatResult(res, timeout)
	})
}

type ExecutePowershellInput struct {
	Script     string `json:"script"               jsonschema:"description=The PowerShell script to execute as an inline instruction block"`
	WorkingDir string `json:"workingDir,omitempty" jsonschema:"description=The working directory to execute the script in"`
	Timeout    int    `json:"timeout,omitempty"    jsonschema:"description=Timeout in milliseconds before the script is terminated,default=30000"`
}

func (in *ExecutePowershellInput) Validate() error {
	if strings.TrimSpace(in.Script) == "" {
		return errors.New("script must not be empty")
	}
	if in.Timeout < 0 {
		return errors.New("timeout must be greater than zero")
	}
	return nil
}

// ExecutePowershell executes a PowerShell script body. Screening runs
// before the platform check, so a denied script is rejected as such even on
// hosts that could never run it.
func ExecutePowershell(env *Env) tool.Invoker {
	return tool.NewInvoker(tool.Info{
		Name:        "execute_powershell",
		Description: "Execute a PowerShell script on this host and return its combined output. Windows only; destructive scripts are blocked.",
	}, func(ctx context.Context, input *ExecutePowershellInput) (string, error) {
		if d := policy.Classify(input.Script, env.ScriptRules); !d.Allowed {
			return "", tool.TagError(tool.TagPolicyRejected,
				fmt.Errorf("script blocked: matches denied pattern %q", d.MatchedPattern))
		}

		inv, err := env.Adapter.Script(input.Script)
		if err != nil {
			return "", tool.TagError(tool.TagPlatformUnsupported,
				fmt.Errorf("powershell execution is %w", err))
		}

		timeout := env.timeout(input.Timeout)
		return formatResult(env.Gateway.Run(ctx, inv, input.WorkingDir, timeout), timeout)
	})
}
