package app

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/gonewx/jannah/pkg/components"
	"github.com/gonewx/jannah/pkg/config"
	"github.com/gonewx/jannah/pkg/embedded"
	"github.com/gonewx/jannah/pkg/game"
	"github.com/gonewx/jannah/pkg/systems"
)

// Session 一局乐园建造所需的全部对象
//
// 桌面端和命令行 place 子命令共用同一套装配逻辑
type Session struct {
	Config     *config.ParadiseConfig
	Catalog    *game.Catalog
	Wallet     *game.Wallet
	Grid       *systems.GridSystem
	Controller *systems.PlacementController
}

// LoadConfig 加载乐园配置
// path 为空时使用内置的 data/paradise.yaml
func LoadConfig(path string) (*config.ParadiseConfig, error) {
	if path != "" {
		return config.LoadParadiseConfig(path)
	}
	data, err := embedded.ReadFile(embedded.DefaultConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read built-in config: %w", err)
	}
	return config.ParseParadiseConfig(data)
}

// NewSession 根据配置装配目录、钱包、网格和控制器
//
// snap 不为 nil 时从存档恢复网格和余额；恢复失败的记录会被丢弃
func NewSession(cfg *config.ParadiseConfig, snap *game.GridSnapshot, saveManager *game.SaveManager, logger *zap.Logger) (*Session, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	catalog, err := game.NewCatalog(cfg.Catalog)
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}

	grid := systems.NewGridSystem(systems.WithGridLogger(logger))

	balance := cfg.Wallet.StartingBalance
	var state *components.GridState
	if snap != nil && saveManager != nil {
		restored, dropped, err := saveManager.Restore(snap, catalog, grid, cfg.Grid.MaxSide)
		if err != nil {
			logger.Warn("ignoring unusable snapshot", zap.Error(err))
		} else {
			state = restored
			balance = snap.Balance
			if len(dropped) > 0 {
				logger.Warn("snapshot entries dropped", zap.Strings("ids", dropped))
			}
		}
	}
	if state == nil {
		state, err = systems.NewGridState(cfg.Grid.Side)
		if err != nil {
			return nil, fmt.Errorf("grid: %w", err)
		}
	}

	wallet := game.NewWallet(balance, cfg.Wallet.Cap, logger)

	policy := systems.ClearSelectionOnReject
	if !cfg.Placement.ShouldClearOnReject() {
		policy = systems.KeepSelectionOnReject
	}
	controller := systems.NewPlacementController(grid, state, wallet,
		systems.WithControllerLogger(logger),
		systems.WithRejectPolicy(policy),
		systems.WithMaxSide(cfg.Grid.MaxSide),
	)

	logger.Info("session ready",
		zap.Int("side", state.Spec.Side),
		zap.Int("placements", len(state.Placements)),
		zap.Int("balance", wallet.Balance()),
		zap.Int("catalog", catalog.Len()))

	return &Session{
		Config:     cfg,
		Catalog:    catalog,
		Wallet:     wallet,
		Grid:       grid,
		Controller: controller,
	}, nil
}
