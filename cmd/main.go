package main

import (
	"github.com/ryanreadbooks/cmdgate/cmd/onboard"
	"github.com/ryanreadbooks/cmdgate/cmd/serve"
	"github.com/ryanreadbooks/cmdgate/config"
	"github.com/ryanreadbooks/cmdgate/pkg/process"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use: "cmdgate",
}

func init() {
	config.Init()

	rootCmd.AddCommand(serve.ServeCmd)
	rootCmd.AddCommand(onboard.OnboardCmd)
}

func main() {
	ctx, cancel, wait := process.GetRootContext()
	rootCmd.ExecuteContext(ctx)
	cancel()

	wait()
}
