package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/hgb-basel/lineage/internal/address"
)

// NewParseCommand creates the parse command, a debugging aid that runs a
// single title through the address grammar.
func NewParseCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <title>",
		Short: "Parse one dossier title through the address grammar",
		Long: `Parse a raw dossier title and print the extracted street, house
numbers and unparsed leftover.

Example:
  hgb-lineage parse "Eisengasse 21"
  hgb-lineage parse --format json "Petersgraben Th. v. 20 neben 18"`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			res := address.Parse(args[0])
			return writeResult(cmd.OutOrStdout(), rootOpts.Format, res, func(w io.Writer) error {
				if _, err := fmt.Fprintf(w, "street:   %s\n", res.Street); err != nil {
					return err
				}
				if _, err := fmt.Fprintf(w, "numbers:  %v\n", res.Numbers); err != nil {
					return err
				}
				_, err := fmt.Fprintf(w, "leftover: %s\n", res.Leftover)
				return err
			})
		},
	}
}
