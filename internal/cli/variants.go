package cli

import (
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/wesleyorama2/benchloop/internal/config"
)

func newVariantsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "variants",
		Short: "List the built-in benchmark presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.Header("Variant", "Alias", "Path", "Args", "Output")

			for _, name := range config.VariantNames() {
				v, err := config.Variant(name)
				if err != nil {
					return err
				}
				if err := table.Append([]string{
					name,
					config.AliasFor(name),
					v.Command.Path,
					v.Command.ArgString,
					v.Command.Output,
				}); err != nil {
					return fmt.Errorf("failed to list variant %s: %w", name, err)
				}
			}
			return table.Render()
		},
	}
}
