package serve

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ryanreadbooks/cmdgate/config"
	"github.com/ryanreadbooks/cmdgate/gateway"
	"github.com/ryanreadbooks/cmdgate/mcpserver"
	"github.com/ryanreadbooks/cmdgate/platform"
	"github.com/ryanreadbooks/cmdgate/policy"
	"github.com/ryanreadbooks/cmdgate/tools"
)

var ServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the command gateway over stdio.",
	Long:  "Serve the command gateway over stdio.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func buildEnv(conf config.Config) (*tools.Env, error) {
	commandRules, err := policy.NewRuleSet(conf.Rules.CommandPatterns)
	if err != nil {
		return nil, fmt.Errorf("invalid command rule table: %w", err)
	}

	scriptRules, err := policy.NewRuleSet(conf.Rules.ScriptPatterns)
	if err != nil {
		return nil, fmt.Errorf("invalid script rule table: %w", err)
	}

	gw, err := gateway.New(conf.Execution.MaxConcurrent, conf.Execution.MaxOutputChars)
	if err != nil {
		return nil, err
	}

	host := platform.Detect()
	env := &tools.Env{
		CommandRules:   commandRules,
		ScriptRules:    scriptRules,
		Adapter:        platform.NewAdapter(host),
		Gateway:        gw,
		DefaultTimeout: time.Duration(conf.Execution.DefaultTimeoutMs) * time.Millisecond,
	}

	slog.Info("gateway ready",
		"platform", host.String(),
		"command_patterns", commandRules.Len(),
		"script_patterns", scriptRules.Len(),
	)

	return env, nil
}

func runServe(ctx context.Context) error {
	env, err := buildEnv(config.GetConfig())
	if err != nil {
		return fmt.Errorf("failed to build gateway: %w", err)
	}
	defer env.Gateway.Close()

	srv := mcpserver.New(tools.All(env)...)

	if err := srv.Serve(ctx, os.Stdin, os.Stdout); err != nil && ctx.Err() == nil {
		return fmt.Errorf("stdio server stopped: %w", err)
	}

	slog.Info("gateway stopped")

	return nil
}
