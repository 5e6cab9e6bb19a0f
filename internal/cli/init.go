package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/abbr/internal/paths"
)

func newInitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the configuration file and data directory",
		Long: `Init writes a default config.yaml into the configuration directory
(unless one exists) and creates the data directory. Running it again is
harmless.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Only an explicit --data-dir is pinned in the new config file.
			var dataDir string
			if a.flags.dataDir != "" {
				dataDir = a.cfg.DataDir
			}
			configPath := filepath.Join(a.configDir, configFileExt)
			created, err := writeConfigIfMissing(configPath, dataDir)
			if err != nil {
				return sysError(fmt.Errorf("write config: %w", err))
			}
			if err := paths.EnsureDir(a.cfg.DataDir); err != nil {
				return sysError(fmt.Errorf("create data directory: %w", err))
			}

			out := cmd.OutOrStdout()
			if a.flags.jsonMode {
				return outputJSON(out, struct {
					Status     string `json:"status"`
					ConfigPath string `json:"config_path"`
					Storage    string `json:"storage"`
				}{"initialized", configPath, a.cfg.StoragePath()})
			}
			if created {
				fmt.Fprintf(out, "Wrote %s\n", configPath)
			}
			fmt.Fprintf(out, "Storage: %s\n", a.cfg.StoragePath())
			return nil
		},
	}
}

// ensureParent creates the directory that will hold path.
func ensureParent(path string) error {
	dir := filepath.Dir(path)
	if _, err := os.Stat(dir); err == nil {
		return nil
	}
	return paths.EnsureDir(dir)
}
