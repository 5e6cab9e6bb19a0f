package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/abbr/pkg/types"
)

func newModifyCmd(a *app) *cobra.Command {
	var (
		id               int
		meaning          string
		description      string
		clearDescription bool
	)

	cmd := &cobra.Command{
		Use:   "modify <abbreviation>",
		Short: "Change the meaning or description of a stored meaning",
		Long: `Modify changes one stored meaning. Only the given fields change.

When the abbreviation has more than one meaning, --id selects which one;
ids are the numbers shown by 'abbr get'.`,
		Example: `  abbr modify CPU --meaning "Central Processor"
  abbr modify CPU --id 2 --description "scheduling"
  abbr modify CPU --id 2 --clear-description`,
		Args: abbreviationArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mod := types.NewModification(args[0])

			idx, ok, err := userIndex(cmd, id)
			if err != nil {
				return err
			}
			if ok {
				mod.WithIndex(idx)
			}
			if cmd.Flags().Changed("meaning") {
				mod.WithName(meaning)
			}
			if cmd.Flags().Changed("description") {
				mod.WithDescription(description)
			}
			if clearDescription {
				mod.ClearDescription()
			}

			st, err := a.load()
			if err != nil {
				return noSuchItemIfMissing(err, args[0])
			}
			if err := st.Modify(mod); err != nil {
				return err
			}
			if err := a.save(st); err != nil {
				return err
			}

			entry := st.Get(args[0])
			a.log.Info("modified meaning", zap.String("abbreviation", entry.Acronym))

			out := cmd.OutOrStdout()
			if a.flags.jsonMode {
				ej := toEntryJSON(entry)
				return outputJSON(out, statusJSON{Status: "modified", Acronym: entry.Acronym, Entry: &ej})
			}
			fmt.Fprintln(out, entry.String())
			return nil
		},
	}

	idFlag(cmd.Flags(), &id)
	cmd.Flags().StringVar(&meaning, "meaning", "", "new meaning")
	cmd.Flags().StringVar(&description, "description", "", "new description")
	cmd.Flags().BoolVar(&clearDescription, "clear-description", false, "remove the description")
	cmd.MarkFlagsMutuallyExclusive("description", "clear-description")
	cmd.MarkFlagsOneRequired("meaning", "description", "clear-description")
	return cmd
}
