// Package tools holds the operation catalog the gateway exposes: the two
// free-form execution tools, the read-only host queries and the policy
// description tool.
package tools

import (
	"context"
	"fmt"
	"time"

	"github.com/ryanreadbooks/cmdgate/component/tool"
	"github.com/ryanreadbooks/cmdgate/gateway"
	"github.com/ryanreadbooks/cmdgate/platform"
	"github.com/ryanreadbooks/cmdgate/policy"
)

// Env bundles the process-wide collaborators every tool shares: the loaded
// rule tables, the platform adapter and the execution gateway. It is built
// once at startup and read-only afterwards; all per-request state lives in
// the handlers.
type Env struct {
	CommandRules   policy.RuleSet
	ScriptRules    policy.RuleSet
	Adapter        *platform.Adapter
	Gateway        *gateway.Gateway
	DefaultTimeout time.Duration
}

// All returns the full operation catalog.
func All(env *Env) []tool.Invoker {
	return []tool.Invoker{
		ExecuteCommand(env),
		ExecutePowershell(env),
		ListRunningProcesses(env),
		GetSystemInfo(env),
		GetNetworkInfo(env),
		GetScheduledTasks(env),
		GetServiceInfo(env),
		ListAllowedCommands(env),
	}
}

func (e *Env) timeout(ms int) time.Duration {
	if ms <= 0 {
		return e.DefaultTimeout
	}
	return time.Duration(ms) * time.Millisecond
}

// formatResult maps a gateway outcome to the outward response: timeouts and
// spawn failures become tagged errors, a non-zero exit is data, success is
// the combined output as-is.
func formatResult(res gateway.Result, timeout time.Duration) (string, error) {
	switch {
	case res.TimedOut:
		return "", tool.TagError(tool.TagTimeout,
			fmt.Errorf("terminated after exceeding the %v timeout", timeout))
	case res.SpawnErr != nil:
		return "", tool.TagError(tool.TagSpawnFailure,
			fmt.Errorf("process could not be started: %w", res.SpawnErr))
	case res.ExitCode != 0:
		return fmt.Sprintf("exit code %d\n%s", res.ExitCode, res.Output), nil
	default:
		return res.Output, nil
	}
}

// runQuery executes an informational query under the default timeout.
func runQuery(ctx context.Context, env *Env, inv platform.Invocation) (string, error) {
	res := env.Gateway.Run(ctx, inv, "", env.DefaultTimeout)
	return formatResult(res, env.DefaultTimeout)
}
