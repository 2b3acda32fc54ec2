package cmd

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/gravitrone/hflist/internal/config"
)

// ConfigFlag is the persistent flag naming an alternate config file.
const ConfigFlag = "config"

// LoadConfig reads the config at path, or at config.Path when path is empty.
// A missing default config yields config.Default; a missing explicit path
// is an error.
func LoadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	cfg, err := config.Load()
	if errors.Is(err, os.ErrNotExist) {
		return config.Default(), nil
	}
	return cfg, err
}

func configPath(cmd *cobra.Command) string {
	path, _ := cmd.Flags().GetString(ConfigFlag)
	return path
}
