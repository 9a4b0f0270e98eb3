package game

import (
	"fmt"
	"time"

	"github.com/quasilyte/gdata/v2"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/gonewx/jannah/pkg/components"
	"github.com/gonewx/jannah/pkg/systems"
)

// 存储路径常量
const (
	paradiseObject = "paradise"
)

// GridSnapshot 乐园存档
//
// 只保存道具ID和坐标，恢复时通过目录重新解析道具定义
type GridSnapshot struct {
	Side       int               `yaml:"side"`
	Balance    int               `yaml:"balance"`
	Placements []PlacementRecord `yaml:"placements"`
	SavedAt    time.Time         `yaml:"savedAt"`
}

// PlacementRecord 存档中的一个放置实例
type PlacementRecord struct {
	ID     string `yaml:"id"`
	ItemID string `yaml:"itemId"`
	X      int    `yaml:"x"`
	Y      int    `yaml:"y"`
}

// SaveManager 乐园存档管理器
//
// 职责：
//   - 把网格状态和金币余额序列化为 YAML
//   - 通过 gdata 跨平台存储持久化
//   - 恢复时重新校验每个放置实例
//
// gdataManager 为 nil 时进入降级模式：Save 不报错，Load 返回空存档
type SaveManager struct {
	gdataManager *gdata.Manager
	slot         string
	logger       *zap.Logger
}

// NewSaveManager 创建存档管理器
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式）
//   - slot: 存档槽名称（如用户名），为空时使用 "default"
//   - logger: 日志记录器，可为 nil
func NewSaveManager(gdataManager *gdata.Manager, slot string, logger *zap.Logger) *SaveManager {
	if slot == "" {
		slot = "default"
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SaveManager{
		gdataManager: gdataManager,
		slot:         slot,
		logger:       logger.Named("save"),
	}
}

// NewSnapshot 根据当前网格状态和余额生成存档
func NewSnapshot(state *components.GridState, balance int) *GridSnapshot {
	snap := &GridSnapshot{
		Side:       state.Spec.Side,
		Balance:    balance,
		Placements: make([]PlacementRecord, 0, len(state.Placements)),
		SavedAt:    time.Now().UTC(),
	}
	for _, p := range state.Placements {
		snap.Placements = append(snap.Placements, PlacementRecord{
			ID:     p.ID,
			ItemID: p.Item.ID,
			X:      p.OriginX,
			Y:      p.OriginY,
		})
	}
	return snap
}

// HasSave 检查存档是否存在
func (sm *SaveManager) HasSave() bool {
	if sm.gdataManager == nil {
		return false
	}
	return sm.gdataManager.ObjectPropExists(paradiseObject, sm.slot)
}

// Save 保存网格状态和金币余额
func (sm *SaveManager) Save(state *components.GridState, balance int) error {
	// 降级模式：无法持久化，但不报错
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(NewSnapshot(state, balance))
	if err != nil {
		return fmt.Errorf("failed to marshal paradise snapshot: %w", err)
	}

	if err := sm.gdataManager.SaveObjectProp(paradiseObject, sm.slot, data); err != nil {
		return fmt.Errorf("failed to save paradise snapshot: %w", err)
	}

	sm.logger.Info("snapshot saved",
		zap.String("slot", sm.slot),
		zap.Int("placements", len(state.Placements)),
		zap.Int("balance", balance))
	return nil
}

// Load 读取存档，不存在时返回 (nil, nil)
func (sm *SaveManager) Load() (*GridSnapshot, error) {
	if !sm.HasSave() {
		return nil, nil
	}

	data, err := sm.gdataManager.LoadObjectProp(paradiseObject, sm.slot)
	if err != nil {
		return nil, fmt.Errorf("failed to load paradise snapshot: %w", err)
	}

	var snap GridSnapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to unmarshal paradise snapshot: %w", err)
	}
	return &snap, nil
}

// Restore 用目录和网格系统把存档还原为网格状态
//
// 目录中已不存在的道具、或者已无法合法放置的记录会被丢弃并记录日志
// maxSide > 0 时，超过上限的存档边长被收缩到 maxSide，放不下的记录同样丢弃
// 返回被丢弃记录的ID列表
func (sm *SaveManager) Restore(snap *GridSnapshot, catalog *Catalog, grid *systems.GridSystem, maxSide int) (*components.GridState, []string, error) {
	side := snap.Side
	if maxSide > 0 && side > maxSide {
		sm.logger.Warn("snapshot side exceeds max side, clamping",
			zap.Int("side", side), zap.Int("maxSide", maxSide))
		side = maxSide
	}

	state, err := systems.NewGridState(side)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid snapshot: %w", err)
	}

	var dropped []string
	for _, rec := range snap.Placements {
		item, err := catalog.Lookup(rec.ItemID)
		if err != nil || item.IsExpansion() {
			sm.logger.Warn("dropping snapshot entry: unknown item",
				zap.String("id", rec.ID), zap.String("item", rec.ItemID))
			dropped = append(dropped, rec.ID)
			continue
		}
		if err := grid.Validate(state, item, rec.X, rec.Y); err != nil {
			sm.logger.Warn("dropping snapshot entry",
				zap.String("id", rec.ID), zap.String("item", rec.ItemID), zap.Error(err))
			dropped = append(dropped, rec.ID)
			continue
		}
		grid.CommitPlacementWithID(state, item, rec.X, rec.Y, rec.ID)
	}

	sm.logger.Info("snapshot restored",
		zap.Int("side", state.Spec.Side),
		zap.Int("placements", len(state.Placements)),
		zap.Int("dropped", len(dropped)))
	return state, dropped, nil
}
