package cli

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/matzehuels/parceltrack/pkg/tracking"
)

// carriersCommand lists every carrier id and whether an adapter backs it.
func (c *CLI) carriersCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "carriers",
		Short: "List supported carrier ids",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := c.openConfig()
			if err != nil {
				return err
			}
			return c.listCarriers(c.newDispatcher(store, true).Carriers(), asJSON)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the list as JSON")
	return cmd
}

func (c *CLI) listCarriers(infos []tracking.CarrierInfo, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(c.Out)
		enc.SetIndent("", "  ")
		return enc.Encode(infos)
	}
	renderCarriers(c.Out, infos)
	return nil
}
