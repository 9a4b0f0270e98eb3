// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，main.go 只负责解析命令行参数。
package app

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
	"go.uber.org/zap"

	"github.com/gonewx/jannah/pkg/config"
	"github.com/gonewx/jannah/pkg/game"
	"github.com/gonewx/jannah/pkg/scenes"
)

// Config 定义应用启动配置
type Config struct {
	// ConfigPath 乐园配置文件路径，为空时使用内置配置
	ConfigPath string
	// Slot 存档槽名称
	Slot string
	// Fresh 忽略已有存档，从空白网格开始
	Fresh bool
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	logger                   *zap.Logger
	sceneManager             *game.SceneManager
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config, logger *zap.Logger) (*App, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	paradiseConfig, err := LoadConfig(cfg.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("乐园配置加载失败: %w", err)
	}

	// gdata 打开失败时进入降级模式：可以游玩，但不保存
	gdataManager, err := gdata.Open(gdata.Config{AppName: "jannah"})
	if err != nil {
		logger.Warn("save storage unavailable, running without saves", zap.Error(err))
		gdataManager = nil
	}
	saveManager := game.NewSaveManager(gdataManager, cfg.Slot, logger)

	var snap *game.GridSnapshot
	if !cfg.Fresh {
		snap, err = saveManager.Load()
		if err != nil {
			logger.Warn("failed to load save, starting fresh", zap.Error(err))
			snap = nil
		}
	}

	session, err := NewSession(paradiseConfig, snap, saveManager, logger)
	if err != nil {
		return nil, err
	}

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(scenes.NewParadiseScene(scenes.ParadiseSceneDeps{
		Logger:      logger,
		Grid:        session.Grid,
		Controller:  session.Controller,
		Wallet:      session.Wallet,
		Catalog:     session.Catalog,
		SaveManager: saveManager,
	}))

	return &App{
		logger:       logger.Named("app"),
		sceneManager: sceneManager,
	}, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 关闭窗口前先保存当前场景
	if ebiten.IsWindowBeingClosed() {
		if !a.sceneManager.SaveCurrentScene() {
			a.logger.Warn("save on exit failed")
		}
		return ebiten.Termination
	}

	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制游戏画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// Run 设置窗口并启动游戏循环，直到窗口关闭
func (a *App) Run() error {
	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle("Jannah - Paradise Builder")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(a); err != nil && err != ebiten.Termination {
		return err
	}
	return nil
}
