package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/abbr/pkg/types"
)

func newDeleteCmd(a *app) *cobra.Command {
	var id int

	cmd := &cobra.Command{
		Use:   "delete <abbreviation>",
		Short: "Remove a stored meaning",
		Long: `Delete removes one stored meaning. When it was the last one the
abbreviation is removed as well.`,
		Example: `  abbr delete CPU
  abbr delete CPU --id 2`,
		Args: abbreviationArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, ok, err := userIndex(cmd, id)
			if err != nil {
				return err
			}

			st, err := a.load()
			if err != nil {
				return noSuchItemIfMissing(err, args[0])
			}
			if ok {
				err = st.DeleteAt(args[0], idx)
			} else {
				err = st.Delete(args[0])
			}
			if err != nil {
				return err
			}
			if err := a.save(st); err != nil {
				return err
			}

			acronym := types.NormalizeAbbreviation(args[0])
			remaining := st.Get(acronym).Len()
			a.log.Info("deleted meaning",
				zap.String("abbreviation", acronym),
				zap.Int("remaining", remaining),
			)

			out := cmd.OutOrStdout()
			if a.flags.jsonMode {
				return outputJSON(out, statusJSON{Status: "deleted", Acronym: acronym})
			}
			if !st.Has(acronym) {
				fmt.Fprintf(out, "Deleted %s\n", acronym)
				return nil
			}
			fmt.Fprintf(out, "Deleted a meaning of %s, %d left\n", acronym, remaining)
			return nil
		},
	}

	idFlag(cmd.Flags(), &id)
	return cmd
}

// noSuchItemIfMissing turns a missing storage file into ErrNoSuchItem for
// commands that need an existing abbreviation.
func noSuchItemIfMissing(err error, abbr string) error {
	if errors.Is(err, types.ErrNoSuchFile) {
		return fmt.Errorf("%s: %w", types.NormalizeAbbreviation(abbr), types.ErrNoSuchItem)
	}
	return err
}
