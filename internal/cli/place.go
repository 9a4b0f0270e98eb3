package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gonewx/jannah/pkg/app"
	"github.com/gonewx/jannah/pkg/systems"
)

// PlaceOptions place 子命令参数
type PlaceOptions struct {
	Side    int
	Balance int

	// 只有显式传入的参数才覆盖配置
	sideSet    bool
	balanceSet bool
}

// NewPlaceCommand 在内存中的网格上依次执行放置，打印结果和最终网格
func NewPlaceCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &PlaceOptions{}

	cmd := &cobra.Command{
		Use:   "place <item@x,y>...",
		Short: "Run placements headlessly and print the resulting grid",
		Long: `Run a sequence of placements against an empty grid without opening a window.

Each argument is an item id followed by the origin cell, e.g. "garden@2,3".
Expansion items take no coordinates, e.g. "land_expansion".`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			defer rootOpts.Sync()
			opts.sideSet = cmd.Flags().Changed("side")
			opts.balanceSet = cmd.Flags().Changed("balance")
			return runPlace(rootOpts, opts, args, cmd.OutOrStdout())
		},
	}

	cmd.Flags().IntVar(&opts.Side, "side", 0, "grid side length (default: from config)")
	cmd.Flags().IntVar(&opts.Balance, "balance", 0, "starting balance (default: from config)")

	return cmd
}

// placementArg 一个 "item@x,y" 参数
type placementArg struct {
	ItemID string
	X, Y   int
}

// parsePlacementArg 解析 "item@x,y"；省略坐标时为 (0,0)
func parsePlacementArg(s string) (placementArg, error) {
	id, coords, hasCoords := strings.Cut(s, "@")
	if id == "" {
		return placementArg{}, fmt.Errorf("invalid placement %q: missing item id", s)
	}
	arg := placementArg{ItemID: id}
	if !hasCoords {
		return arg, nil
	}

	xs, ys, ok := strings.Cut(coords, ",")
	if !ok {
		return placementArg{}, fmt.Errorf("invalid placement %q: want item@x,y", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return placementArg{}, fmt.Errorf("invalid placement %q: bad x: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return placementArg{}, fmt.Errorf("invalid placement %q: bad y: %w", s, err)
	}
	arg.X, arg.Y = x, y
	return arg, nil
}

func runPlace(rootOpts *RootOptions, opts *PlaceOptions, args []string, out io.Writer) error {
	placements := make([]placementArg, 0, len(args))
	for _, a := range args {
		p, err := parsePlacementArg(a)
		if err != nil {
			return err
		}
		placements = append(placements, p)
	}

	cfg, err := app.LoadConfig(rootOpts.ConfigPath)
	if err != nil {
		return err
	}
	if opts.sideSet {
		cfg.Grid.Side = opts.Side
	}
	if opts.balanceSet {
		cfg.Wallet.StartingBalance = opts.Balance
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	session, err := app.NewSession(cfg, nil, nil, rootOpts.Logger())
	if err != nil {
		return err
	}

	for _, p := range placements {
		item, err := session.Catalog.Lookup(p.ItemID)
		if err != nil {
			return err
		}
		session.Controller.SelectItem(item)
		result := session.Controller.AttemptPlacement(p.X, p.Y)
		if result.Committed() && result.Expansion {
			if err := session.Grid.Expand(session.Controller.Grid(), item.ExpandBy); err != nil {
				return err
			}
		}
		fmt.Fprintln(out, formatResult(result, session.Wallet.Balance()))
		// 保留选择策略下，下一个参数会重新选择，这里先清空
		session.Controller.ClearSelection()
	}

	state := session.Controller.Grid()
	fmt.Fprintln(out)
	fmt.Fprint(out, systems.RenderGridText(session.Grid, state))

	summary := systems.Summarize(state)
	fmt.Fprintf(out, "\nitems: %d  value: %d  balance: %d\n", summary.Count, summary.Value, session.Wallet.Balance())
	for _, c := range summary.ByCategory {
		fmt.Fprintf(out, "  %s: %d\n", c.Category, c.Count)
	}
	return nil
}

func formatResult(result systems.PlacementResult, balance int) string {
	id := ""
	if result.Item != nil {
		id = result.Item.ID
	}
	switch {
	case result.Committed() && result.Expansion:
		return fmt.Sprintf("ok       %s  balance=%d", id, balance)
	case result.Committed():
		return fmt.Sprintf("ok       %s@%d,%d  balance=%d", id, result.X, result.Y, balance)
	default:
		return fmt.Sprintf("rejected %s@%d,%d  %s", id, result.X, result.Y, result.Reason)
	}
}
