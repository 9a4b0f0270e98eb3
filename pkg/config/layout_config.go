package config

// 窗口与网格布局配置
const (
	// GameWindowWidth 逻辑屏幕宽度
	GameWindowWidth = 960
	// GameWindowHeight 逻辑屏幕高度
	GameWindowHeight = 720

	// BoardStartX 网格左上角屏幕X坐标
	BoardStartX = 24.0
	// BoardStartY 网格左上角屏幕Y坐标
	BoardStartY = 24.0
	// BoardPixelSize 网格绘制区域的边长（像素），格子大小随网格边长缩放
	BoardPixelSize = 672.0

	// PanelStartX 右侧目录 / 统计面板的X坐标
	PanelStartX = 712

	// HighlightDuration 放置结果高亮的持续时间（秒）
	HighlightDuration = 0.6
)

// CellPixelSize 返回指定网格边长下每个格子的像素边长
func CellPixelSize(side int) float64 {
	if side <= 0 {
		return BoardPixelSize
	}
	return BoardPixelSize / float64(side)
}
