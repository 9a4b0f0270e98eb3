package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gonewx/jannah/pkg/app"
)

func newPlayCommand(rootOpts *RootOptions) *cobra.Command {
	cfg := app.Config{}

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Open the paradise window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			defer rootOpts.Sync()

			cfg.ConfigPath = rootOpts.ConfigPath
			gameApp, err := app.NewApp(cfg, rootOpts.Logger())
			if err != nil {
				return fmt.Errorf("游戏初始化失败: %w", err)
			}
			return gameApp.Run()
		},
	}

	cmd.Flags().StringVar(&cfg.Slot, "slot", "default", "save slot name")
	cmd.Flags().BoolVar(&cfg.Fresh, "fresh", false, "ignore the existing save and start with an empty grid")

	return cmd
}
