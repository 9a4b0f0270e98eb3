package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/gonewx/jannah/pkg/app"
	"github.com/gonewx/jannah/pkg/game"
)

// NewCatalogCommand 列出道具目录
func NewCatalogCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List the purchasable items",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig(rootOpts.ConfigPath)
			if err != nil {
				return err
			}
			catalog, err := game.NewCatalog(cfg.Catalog)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tSIZE\tCOST")
			for _, item := range catalog.ListItems() {
				size := string(item.Size)
				if item.IsExpansion() {
					size = fmt.Sprintf("+%d", item.ExpandBy)
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n", item.ID, item.Name, item.Category, size, item.Cost)
			}
			return w.Flush()
		},
	}
}
