package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/abbr/pkg/types"
)

// abbreviationArgs requires exactly n arguments, the first of which must be
// a non-blank abbreviation.
func abbreviationArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return err
		}
		if types.NormalizeAbbreviation(args[0]) == "" {
			return types.ErrEmptyAbbreviation
		}
		return nil
	}
}

// userIndex converts a 1-based --id into a zero-based position. ok is false
// when --id was not given.
func userIndex(cmd *cobra.Command, id int) (idx int, ok bool, err error) {
	if !cmd.Flags().Changed("id") {
		return 0, false, nil
	}
	if id < 1 {
		return 0, false, fmt.Errorf("--id %d: %w", id, types.ErrInvalidID)
	}
	return id - 1, true, nil
}
