package scenes

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/gonewx/jannah/pkg/components"
	"github.com/gonewx/jannah/pkg/config"
	"github.com/gonewx/jannah/pkg/ecs"
	"github.com/gonewx/jannah/pkg/entities"
	"github.com/gonewx/jannah/pkg/game"
	"github.com/gonewx/jannah/pkg/systems"
	"github.com/gonewx/jannah/pkg/utils"
)

// selectKeys 目录快捷键，按目录顺序对应前 9 个道具
var selectKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3,
	ebiten.KeyDigit4, ebiten.KeyDigit5, ebiten.KeyDigit6,
	ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
}

// ParadiseScene 乐园建造场景
// 负责把鼠标 / 键盘输入转换为控制器操作，并渲染网格状态
type ParadiseScene struct {
	logger         *zap.Logger
	entityManager  *ecs.EntityManager
	gridSystem     *systems.GridSystem
	lifetimeSystem *systems.LifetimeSystem
	previewSystem  *systems.PlacementPreviewSystem
	controller     *systems.PlacementController
	wallet         *game.Wallet
	saveManager    *game.SaveManager
	items          []*components.ItemDefinition

	message string // 最近一次操作的提示
}

// ParadiseSceneDeps 场景依赖
type ParadiseSceneDeps struct {
	Logger      *zap.Logger
	Grid        *systems.GridSystem
	Controller  *systems.PlacementController
	Wallet      *game.Wallet
	Catalog     *game.Catalog
	SaveManager *game.SaveManager
}

// NewParadiseScene 创建乐园场景
func NewParadiseScene(deps ParadiseSceneDeps) *ParadiseScene {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	em := ecs.NewEntityManager()
	return &ParadiseScene{
		logger:         logger.Named("scene"),
		entityManager:  em,
		gridSystem:     deps.Grid,
		lifetimeSystem: systems.NewLifetimeSystem(em),
		previewSystem:  systems.NewPlacementPreviewSystem(em, deps.Grid, deps.Controller, deps.Wallet),
		controller:     deps.Controller,
		wallet:         deps.Wallet,
		saveManager:    deps.SaveManager,
		items:          deps.Catalog.ListItems(),
	}
}

// Update 处理输入并更新高亮动画
func (s *ParadiseScene) Update(deltaTime float64) {
	for i, key := range selectKeys {
		if i < len(s.items) && inpututil.IsKeyJustPressed(key) {
			s.selectItem(s.items[i])
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if s.controller.ClearSelection() {
			s.message = "Selection cleared"
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		if s.SaveOnExit() {
			s.message = "Saved"
		} else {
			s.message = "Save failed"
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		s.HandleCellClick(mx, my)
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		mx, my := ebiten.CursorPosition()
		s.HandleRemoveClick(mx, my)
	}

	mx, my := ebiten.CursorPosition()
	side := s.controller.Grid().Spec.Side
	s.previewSystem.Update(mx, my, config.BoardStartX, config.BoardStartY, config.CellPixelSize(side))

	s.lifetimeSystem.Update(deltaTime)
}

// Draw 渲染网格和面板
func (s *ParadiseScene) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	drawBoard(screen, s.entityManager, s.gridSystem, s.controller.Grid())
	drawPreview(screen, s.previewSystem.Preview(), config.CellPixelSize(s.controller.Grid().Spec.Side))
	drawPanel(screen, s)
}

func (s *ParadiseScene) selectItem(item *components.ItemDefinition) {
	if !s.controller.SelectItem(item) {
		s.message = "Busy"
		return
	}
	s.message = fmt.Sprintf("Selected %s (%d coins)", item.Name, item.Cost)
}

// HandleCellClick 处理网格点击：转换为格子坐标后发起放置尝试
// 返回 false 表示点击不在网格内
func (s *ParadiseScene) HandleCellClick(mouseX, mouseY int) bool {
	state := s.controller.Grid()
	x, y, ok := utils.MouseToCell(mouseX, mouseY,
		config.BoardStartX, config.BoardStartY,
		state.Spec.Side, config.CellPixelSize(state.Spec.Side))
	if !ok {
		return false
	}

	result := s.controller.AttemptPlacement(x, y)
	s.applyResult(result)
	return true
}

// applyResult 根据放置结果更新提示和高亮，并应用扩地效果
func (s *ParadiseScene) applyResult(result systems.PlacementResult) {
	size := 1
	if result.Item != nil && !result.Item.IsExpansion() {
		size = systems.FootprintSize(result.Item)
	}

	switch {
	case result.Committed() && result.Expansion:
		if err := s.gridSystem.Expand(s.controller.Grid(), result.Item.ExpandBy); err != nil {
			s.logger.Error("failed to apply expansion", zap.Error(err))
			s.message = "Expansion failed"
			return
		}
		side := s.controller.Grid().Spec.Side
		s.message = fmt.Sprintf("Paradise expanded to %dx%d", side, side)
	case result.Committed():
		entities.NewCellHighlight(s.entityManager, result.X, result.Y, size, components.HighlightAccepted, config.HighlightDuration)
		s.message = fmt.Sprintf("Built %s", result.Item.Name)
	case result.Item != nil && result.Item.IsExpansion():
		// 扩地不针对某个格子，不闪烁高亮
		if result.Reason == systems.ReasonInsufficientFunds {
			s.message = "Can't afford this, no charge"
		} else {
			s.message = "Paradise is at maximum size"
		}
	case result.Reason == systems.ReasonOutOfBounds || result.Reason == systems.ReasonOverlap:
		entities.NewCellHighlight(s.entityManager, result.X, result.Y, size, components.HighlightInvalidCell, config.HighlightDuration)
		s.message = "Invalid cell, no charge"
	case result.Reason == systems.ReasonInsufficientFunds:
		entities.NewCellHighlight(s.entityManager, result.X, result.Y, size, components.HighlightUnaffordable, config.HighlightDuration)
		s.message = "Can't afford this, no charge"
	case result.Reason == systems.ReasonNoSelection:
		s.message = "Select an item first (1-9)"
	case result.Reason == systems.ReasonBusy:
		s.message = "Busy"
	}
}

// HandleRemoveClick 铲除点击位置的建筑（不退款）
func (s *ParadiseScene) HandleRemoveClick(mouseX, mouseY int) bool {
	state := s.controller.Grid()
	x, y, ok := utils.MouseToCell(mouseX, mouseY,
		config.BoardStartX, config.BoardStartY,
		state.Spec.Side, config.CellPixelSize(state.Spec.Side))
	if !ok {
		return false
	}

	placed, _ := s.controller.ItemAt(x, y)
	if placed == nil {
		return false
	}
	removed, err := s.controller.Remove(placed.ID)
	if err != nil {
		s.message = "Busy"
		return false
	}
	if removed {
		s.message = fmt.Sprintf("Removed %s", placed.Item.Name)
	}
	return removed
}

// SaveOnExit 实现 game.Saveable，保存网格和余额
func (s *ParadiseScene) SaveOnExit() bool {
	if s.saveManager == nil {
		return true
	}
	if err := s.saveManager.Save(s.controller.Grid(), s.wallet.Balance()); err != nil {
		s.logger.Error("failed to save paradise", zap.Error(err))
		return false
	}
	return true
}
