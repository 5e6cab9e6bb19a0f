package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/abbr/pkg/types"
)

const nothingStored = "Nothing stored yet, add an abbreviation with 'abbr put'"

func newGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <abbreviation>",
		Short: "Look up the meanings of an abbreviation",
		Example: `  abbr get CPU
  abbr get cpu --json`,
		Args: abbreviationArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			st, err := a.load()
			if errors.Is(err, types.ErrNoSuchFile) {
				if a.flags.jsonMode {
					return outputJSON(out, toEntryJSON(types.Entry{Acronym: types.NormalizeAbbreviation(args[0])}))
				}
				fmt.Fprintln(out, nothingStored)
				return nil
			}
			if err != nil {
				return err
			}

			entry := st.Get(args[0])
			if a.flags.jsonMode {
				return outputJSON(out, toEntryJSON(entry))
			}
			fmt.Fprintln(out, entry.String())
			return nil
		},
	}
}
