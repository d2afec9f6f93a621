package initcmd

import (
	"fmt"
	"os"
)

// BackupConfig copies an existing config to <path>.bak, replacing any older
// backup. It returns an empty path when there was nothing to back up.
func BackupConfig(configPath string) (string, error) {
	info, err := os.Stat(configPath)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("stat config: %w", err)
	}

	content, err := os.ReadFile(configPath)
	if err != nil {
		return "", fmt.Errorf("read existing config: %w", err)
	}

	backupPath := configPath + ".bak"
	if err := os.WriteFile(backupPath, content, info.Mode().Perm()); err != nil {
		return "", fmt.Errorf("write backup: %w", err)
	}

	return backupPath, nil
}

// ConfigExists reports whether a file exists at configPath.
func ConfigExists(configPath string) bool {
	_, err := os.Stat(configPath)
	return err == nil
}
