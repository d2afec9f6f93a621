package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/hay-kot/criterio"
)

// ValidateDeep performs comprehensive validation of the configuration,
// including file accessibility and key conflicts. The configPath argument
// specifies the config file location to validate (empty string skips the
// config file check). It calls Validate() first for structural checks.
func (c *Config) ValidateDeep(configPath string) error {
	if err := c.Validate(); err != nil {
		return err
	}

	return criterio.ValidateStruct(
		c.validateFileAccess(configPath),
		c.validateKeys(),
	)
}

// validateFileAccess checks the config file and the output directory.
func (c *Config) validateFileAccess(configPath string) error {
	return criterio.ValidateStruct(
		validateConfigFile(configPath),
		criterio.Run("files.output_dir", c.Files.OutputDir, isDirectoryOrNotExist),
		criterio.Run("files.filename", c.Files.Filename, isPlainFilename),
	)
}

func validateConfigFile(configPath string) error {
	if configPath == "" {
		return nil
	}

	info, err := os.Stat(configPath)
	if os.IsNotExist(err) {
		return nil // not found is fine, using defaults
	}
	if err != nil {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("cannot access: %w", err))
	}
	if info.IsDir() {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("%s is a directory, not a file", configPath))
	}
	return nil
}

// isDirectoryOrNotExist validates that a path is a directory or doesn't exist.
func isDirectoryOrNotExist(path string) error {
	if path == "" {
		return nil
	}
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil // will be created
	}
	if err != nil {
		return fmt.Errorf("cannot access: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("exists but is not a directory")
	}
	return nil
}

func isPlainFilename(name string) error {
	if strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("must be a file name, not a path")
	}
	return nil
}

// validateKeys rejects keys bound to more than one action.
func (c *Config) validateKeys() error {
	bindings := []struct {
		field string
		keys  []string
	}{
		{"keys.add", c.Keys.Add},
		{"keys.delete", c.Keys.Delete},
		{"keys.edit", c.Keys.Edit},
		{"keys.save", c.Keys.Save},
		{"keys.open", c.Keys.Open},
		{"keys.help", c.Keys.Help},
		{"keys.quit", c.Keys.Quit},
	}

	var errs criterio.FieldErrorsBuilder
	owner := make(map[string]string)

	for _, b := range bindings {
		for _, k := range b.keys {
			if strings.TrimSpace(k) == "" {
				errs = errs.Append(b.field, fmt.Errorf("empty key"))
				continue
			}
			if prev, ok := owner[k]; ok && prev != b.field {
				errs = errs.Append(b.field, fmt.Errorf("key %q already bound by %s", k, prev))
				continue
			}
			owner[k] = b.field
		}
	}

	return errs.ToError()
}
