package main

import (
	"embed"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

//go:embed templates/devicemodels.yaml
var configTemplate embed.FS

// templatePath is the location of the config template inside configTemplate.
const templatePath = "templates/devicemodels.yaml"

// writeConfigTemplate writes the annotated configuration template to path.
// An existing file is only replaced when force is set.
func writeConfigTemplate(out io.Writer, path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", path)
		}
	}

	content, err := configTemplate.ReadFile(templatePath)
	if err != nil {
		return fmt.Errorf("failed to read config template: %w", err)
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	if err := os.WriteFile(path, content, 0600); err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}

	fmt.Fprintf(out, "Created configuration file: %s\n", path)
	return nil
}
