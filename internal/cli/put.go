package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newPutCmd(a *app) *cobra.Command {
	var description string

	cmd := &cobra.Command{
		Use:   "put <abbreviation> <meaning>",
		Short: "Add a meaning for an abbreviation",
		Example: `  abbr put CPU "Central Processing Unit"
  abbr put CPU "Critical Path Update" -d "project planning"`,
		Args: abbreviationArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := a.loadOrNew()
			if err != nil {
				return err
			}
			if err := st.Put(args[0], args[1], description); err != nil {
				return err
			}
			if err := a.save(st); err != nil {
				return err
			}

			entry := st.Get(args[0])
			a.log.Info("stored meaning",
				zap.String("abbreviation", entry.Acronym),
				zap.Int("id", entry.Len()),
			)

			out := cmd.OutOrStdout()
			if a.flags.jsonMode {
				ej := toEntryJSON(entry)
				return outputJSON(out, statusJSON{Status: "stored", Acronym: entry.Acronym, Entry: &ej})
			}
			fmt.Fprintf(out, "Stored %s (id %d): %s\n", entry.Acronym, entry.Len(), entry.Items[entry.Len()-1].Name)
			return nil
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "optional description of the meaning")
	return cmd
}
