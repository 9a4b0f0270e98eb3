package components

// HighlightKind 格子高亮类型
type HighlightKind int

const (
	// HighlightAccepted 放置成功（绿色）
	HighlightAccepted HighlightKind = iota
	// HighlightInvalidCell 位置非法：越界或重叠（红色，不扣费）
	HighlightInvalidCell
	// HighlightUnaffordable 金币不足（黄色，不扣费）
	HighlightUnaffordable
)

// CellHighlightComponent 放置尝试后的短暂格子高亮
// 与 LifetimeComponent 搭配使用，过期后由 LifetimeSystem 清理
type CellHighlightComponent struct {
	X, Y int           // 左上角格子
	Size int           // 高亮区域边长（格子数）
	Kind HighlightKind // 高亮类型
}
