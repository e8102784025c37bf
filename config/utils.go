package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

const configFileName = "config.yaml"

var (
	conf Config

	workspaceDir     string
	workspaceDirOnce sync.Once
)

func Init() {
	GetWorkspaceDir()
	var err error
	conf, err = LoadConfig()
	if err != nil {
		panic(err)
	}
}

func GetConfig() Config {
	return conf
}

func GetWorkspaceDir() string {
	workspaceDirOnce.Do(func() {
		home, err := os.UserHomeDir()
		if err != nil {
			panic(err)
		}
		workspaceDir = filepath.Join(home, ".cmdgate")
	})

	return workspaceDir
}

func GetWorkspaceConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(home, ".cmdgate", configFileName), nil
}
