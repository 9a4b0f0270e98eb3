package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gonewx/jannah/pkg/types"
)

// ParadiseConfig 乐园配置（网格、钱包、放置策略、道具目录）
type ParadiseConfig struct {
	Grid      GridConfig      `yaml:"grid"`
	Wallet    WalletConfig    `yaml:"wallet"`
	Placement PlacementConfig `yaml:"placement"`
	Catalog   []ItemConfig    `yaml:"catalog"`
}

// GridConfig 网格配置
type GridConfig struct {
	Side    int `yaml:"side"`    // 初始边长
	MaxSide int `yaml:"maxSide"` // 扩地上限，0 表示不限制
}

// WalletConfig 金币配置
type WalletConfig struct {
	StartingBalance int `yaml:"startingBalance"` // 初始金币
	Cap             int `yaml:"cap"`             // 金币上限，0 表示不限制
}

// PlacementConfig 放置流程配置
type PlacementConfig struct {
	// ClearSelectionOnReject 放置失败后是否清空选择（默认 true）
	ClearSelectionOnReject *bool `yaml:"clearSelectionOnReject"`
}

// ShouldClearOnReject 返回放置失败后是否清空选择，未配置时为 true
func (p PlacementConfig) ShouldClearOnReject() bool {
	return p.ClearSelectionOnReject == nil || *p.ClearSelectionOnReject
}

// ItemConfig 目录中的一个道具
type ItemConfig struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Icon     string `yaml:"icon"`
	Category string `yaml:"category"`
	Cost     int    `yaml:"cost"`
	Size     string `yaml:"size"`     // "1x1" ~ "4x4"，扩地道具可省略
	Kind     string `yaml:"kind"`     // "building"（默认）或 "expansion"
	ExpandBy int    `yaml:"expandBy"` // 扩地道具每次增加的边长，省略时为 1
}

// LoadParadiseConfig 从 YAML 文件加载乐园配置
func LoadParadiseConfig(filePath string) (*ParadiseConfig, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read paradise config file: %w", err)
	}
	return ParseParadiseConfig(data)
}

// ParseParadiseConfig 解析并校验 YAML 配置内容
func ParseParadiseConfig(data []byte) (*ParadiseConfig, error) {
	var cfg ParadiseConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse paradise config YAML: %w", err)
	}

	applyDefaults(&cfg)

	if err := validateParadiseConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid paradise config: %w", err)
	}
	return &cfg, nil
}

// Validate 重新校验配置，用于命令行参数覆盖配置之后
func (c *ParadiseConfig) Validate() error {
	if err := validateParadiseConfig(c); err != nil {
		return fmt.Errorf("invalid paradise config: %w", err)
	}
	return nil
}

func applyDefaults(cfg *ParadiseConfig) {
	for i := range cfg.Catalog {
		item := &cfg.Catalog[i]
		if item.Kind == "expansion" && item.ExpandBy == 0 {
			item.ExpandBy = 1
		}
		if item.Name == "" {
			item.Name = item.ID
		}
	}
}

// validateParadiseConfig 验证配置的有效性
func validateParadiseConfig(cfg *ParadiseConfig) error {
	if cfg.Grid.Side <= 0 {
		return fmt.Errorf("grid.side must be > 0, got %d", cfg.Grid.Side)
	}
	if cfg.Grid.MaxSide != 0 && cfg.Grid.MaxSide < cfg.Grid.Side {
		return fmt.Errorf("grid.maxSide (%d) must be >= grid.side (%d)", cfg.Grid.MaxSide, cfg.Grid.Side)
	}
	if cfg.Wallet.StartingBalance < 0 {
		return fmt.Errorf("wallet.startingBalance must be >= 0, got %d", cfg.Wallet.StartingBalance)
	}
	if cfg.Wallet.Cap < 0 {
		return fmt.Errorf("wallet.cap must be >= 0, got %d", cfg.Wallet.Cap)
	}
	if len(cfg.Catalog) == 0 {
		return fmt.Errorf("catalog cannot be empty")
	}

	seen := make(map[string]bool, len(cfg.Catalog))
	for i, item := range cfg.Catalog {
		if item.ID == "" {
			return fmt.Errorf("catalog[%d]: id cannot be empty", i)
		}
		if seen[item.ID] {
			return fmt.Errorf("catalog[%d]: duplicate id %q", i, item.ID)
		}
		seen[item.ID] = true

		if item.Cost < 0 {
			return fmt.Errorf("item %s: cost must be >= 0, got %d", item.ID, item.Cost)
		}

		kind, err := types.ParseItemKind(item.Kind)
		if err != nil {
			return fmt.Errorf("item %s: %w", item.ID, err)
		}

		switch kind {
		case types.ItemKindExpansion:
			if item.ExpandBy < 1 {
				return fmt.Errorf("item %s: expandBy must be >= 1, got %d", item.ID, item.ExpandBy)
			}
		default:
			if _, err := types.ItemSize(item.Size).Cells(); err != nil {
				return fmt.Errorf("item %s: %w", item.ID, err)
			}
			if item.Category == "" {
				return fmt.Errorf("item %s: category cannot be empty", item.ID)
			}
		}
	}
	return nil
}
