package config

import (
	"os"
	"path/filepath"
)

func resolveRuntimePath(path string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path)
}
