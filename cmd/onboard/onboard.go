package onboard

import (
	"fmt"
	"os"

	"github.com/ryanreadbooks/cmdgate/config"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var OnboardCmd = &cobra.Command{
	Use:   "onboard",
	Short: "Initialize cmdgate configuration.",
	Long:  "Initialize cmdgate configuration.",
	RunE: func(cmd *cobra.Command, args []string) error {
		err := runOnboard()
		if err != nil {
			return fmt.Errorf("failed to run onboard: %w", err)
		}

		return nil
	},
}

func runOnboard() error {
	configPath, err := config.GetWorkspaceConfigPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(config.GetWorkspaceDir(), 0755); err != nil {
		return fmt.Errorf("failed to create workspace directory: %w", err)
	}

	// check file exists, ask user if they want to overwrite
	if _, err := os.Stat(configPath); !os.IsNotExist(err) {
		fmt.Printf("Config file already exists at %s, do you want to overwrite it? (y/n): ", configPath)
		var overwrite string
		fmt.Scanln(&overwrite)
		if overwrite != "y" && overwrite != "Y" {
			return nil
		}
	}

	output, err := yaml.Marshal(config.BootstrapConfig())
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	err = os.WriteFile(configPath, output, 0644)
	if err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	fmt.Printf("Configuration written to %s\n", configPath)

	return nil
}
