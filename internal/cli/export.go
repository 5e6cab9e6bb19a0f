package cli

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/abbr/internal/sqlite"
	"github.com/mesh-intelligence/abbr/internal/storage"
	"github.com/mesh-intelligence/abbr/pkg/types"
)

const defaultExportFile = "abbr.db"

func newExportCmd(a *app) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the dictionary to a SQLite database",
		Long: `Export writes every abbreviation and meaning into a new SQLite database
with an entries and an items table. Any existing file at the target is
replaced. The JSON storage file is not changed.`,
		Example: `  abbr export
  abbr export --out ~/abbr.db`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := a.load()
			if errors.Is(err, types.ErrNoSuchFile) {
				st, err = storage.New(), nil
			}
			if err != nil {
				return err
			}

			target := out
			if target == "" {
				target = filepath.Join(a.cfg.DataDir, defaultExportFile)
			}
			if err := ensureParent(target); err != nil {
				return sysError(err)
			}

			stats, err := sqlite.Export(cmd.Context(), st, target)
			if err != nil {
				return sysError(err)
			}

			w := cmd.OutOrStdout()
			if a.flags.jsonMode {
				return outputJSON(w, struct {
					Status  string `json:"status"`
					Path    string `json:"path"`
					Entries int    `json:"entries"`
					Items   int    `json:"items"`
				}{"exported", target, stats.Entries, stats.Items})
			}
			fmt.Fprintf(w, "Exported %d abbreviations (%d meanings) to %s\n", stats.Entries, stats.Items, target)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "database file (default: <data dir>/abbr.db)")
	return cmd
}
