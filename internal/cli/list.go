package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/abbr/pkg/types"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all stored abbreviations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			st, err := a.load()
			if errors.Is(err, types.ErrNoSuchFile) {
				if a.flags.jsonMode {
					return outputJSON(out, []entryJSON{})
				}
				fmt.Fprintln(out, nothingStored)
				return nil
			}
			if err != nil {
				return err
			}

			entries := st.Entries()
			if a.flags.jsonMode {
				list := make([]entryJSON, len(entries))
				for i, e := range entries {
					list[i] = toEntryJSON(e)
				}
				return outputJSON(out, list)
			}
			if len(entries) == 0 {
				fmt.Fprintln(out, nothingStored)
				return nil
			}
			for _, e := range entries {
				if e.Len() == 1 {
					fmt.Fprintf(out, "%s\t%s\n", e.Acronym, e.Items[0].Name)
					continue
				}
				fmt.Fprintf(out, "%s\t%d meanings\n", e.Acronym, e.Len())
			}
			return nil
		},
	}
}
