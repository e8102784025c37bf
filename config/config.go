package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// RulesConfig holds the two denylist tables. Free-form commands and script
// bodies are screened against distinct tables.
type RulesConfig struct {
	CommandPatterns []string `yaml:"command_patterns"`
	ScriptPatterns  []string `yaml:"script_patterns"`
}

// ExecutionConfig bounds what a single request may consume.
type ExecutionConfig struct {
	DefaultTimeoutMs int `yaml:"default_timeout_ms"`
	MaxOutputChars   int `yaml:"max_output_chars"`
	MaxConcurrent    int `yaml:"max_concurrent"`
}

// The configuration for cmdgate.
type Config struct {
	Rules     RulesConfig     `yaml:"rules"`
	Execution ExecutionConfig `yaml:"execution"`
}

func BootstrapConfig() Config {
	return Config{
		Rules: RulesConfig{
			CommandPatterns: []string{
				"format",
				"shutdown",
				"restart",
				"diskpart",
				"bootrec",
				"fixmbr",
				"fixboot",
				"del /f",
				"del /s",
				"rd /s",
				"reg delete",
				"net user",
				"cipher /w",
			},
			ScriptPatterns: []string{
				"invoke-expression",
				"iex ",
				"iex(",
				"remove-item -recurse",
				"format-volume",
				"clear-disk",
				"stop-computer",
				"restart-computer",
				"set-executionpolicy",
				"remove-partition",
				"initialize-disk",
			},
		},
		Execution: ExecutionConfig{
			DefaultTimeoutMs: 30000,
			MaxOutputChars:   30000,
			MaxConcurrent:    32,
		},
	}
}

// LoadConfig reads the workspace config file over the bootstrap defaults.
// A missing file is not an error: the defaults apply until `cmdgate
// onboard` writes one.
func LoadConfig() (c Config, err error) {
	c = BootstrapConfig()

	configPath, err := GetWorkspaceConfigPath()
	if err != nil {
		err = fmt.Errorf("failed to get config path: %w", err)
		return
	}

	content, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			err = nil
			return
		}
		err = fmt.Errorf("failed to read config file: %w", err)
		return
	}

	err = yaml.Unmarshal(content, &c)
	if err != nil {
		err = fmt.Errorf("failed to unmarshal config file: %w", err)
		return
	}

	c.Execution = c.Execution.withDefaults()

	return
}

// withDefaults fills execution limits a partial config file left at zero.
func (e ExecutionConfig) withDefaults() ExecutionConfig {
	defaults := BootstrapConfig().Execution
	if e.DefaultTimeoutMs <= 0 {
		e.DefaultTimeoutMs = defaults.DefaultTimeoutMs
	}
	if e.MaxOutputChars <= 0 {
		e.MaxOutputChars = defaults.MaxOutputChars
	}
	if e.MaxConcurrent <= 0 {
		e.MaxConcurrent = defaults.MaxConcurrent
	}
	return e
}
