package cli

import (
	"github.com/spf13/cobra"
)

func quoteCmd() *cobra.Command {
	var f boxFlags

	c := &cobra.Command{
		Use:   "quote",
		Short: "Price a box for a set of selections (no HTTP)",
		Example: `  byobox quote --box "Snack Box" --select chips/sea-salt=2 --select drink/cola
  byobox quote -c boxes -b "Snack Box" -s chips/bbq --format json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, _, s, err := f.openSession()
			if err != nil {
				return err
			}
			return printQuote(cmd.OutOrStdout(), s, f.format)
		},
	}

	f.register(c)
	return c
}
