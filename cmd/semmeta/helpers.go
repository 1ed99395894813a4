package main

import (
	"fmt"
	"os"

	"github.com/semtools/semmeta/internal/config"
)

func expandDir(dir string) (string, error) {
	expanded, err := config.ExpandPath(dir)
	if err != nil {
		return "", fmt.Errorf("resolve %q: %w", dir, err)
	}
	if err := os.MkdirAll(expanded, 0o755); err != nil {
		return "", fmt.Errorf("create directory %q: %w", expanded, err)
	}
	return expanded, nil
}
