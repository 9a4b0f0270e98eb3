// Package cli 实现 jannah 命令行入口
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gonewx/jannah/pkg/utils"
)

// RootOptions 全局参数
type RootOptions struct {
	Verbose    bool
	ConfigPath string

	logger *zap.Logger
}

// Logger 返回根命令初始化的日志记录器，未初始化时返回 Nop
func (o *RootOptions) Logger() *zap.Logger {
	if o.logger == nil {
		return zap.NewNop()
	}
	return o.logger
}

// Sync 刷新日志缓冲
func (o *RootOptions) Sync() {
	if o.logger != nil {
		_ = o.logger.Sync()
	}
}

// NewRootCommand 创建 jannah 根命令
//
// 不带子命令时启动图形界面
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "jannah",
		Short: "Jannah - paradise builder",
		Long:  "Build a paradise on a square grid: pick an item, place it on free cells, pay for it with coins.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := utils.NewLogger(opts.Verbose)
			if err != nil {
				return fmt.Errorf("logger: %w", err)
			}
			opts.logger = logger
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "paradise config file (default: built-in)")

	play := newPlayCommand(opts)
	cmd.Flags().AddFlagSet(play.Flags())
	cmd.RunE = play.RunE

	cmd.AddCommand(play)
	cmd.AddCommand(NewCatalogCommand(opts))
	cmd.AddCommand(NewPlaceCommand(opts))

	return cmd
}
