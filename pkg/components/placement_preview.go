package components

// PlacementPreviewComponent 标记实体为放置预览（跟随鼠标的半透明占地区域）
// 选择建筑后，在鼠标所在格子显示即将占用的区域，并标出能否放置
type PlacementPreviewComponent struct {
	// Item 预览的道具，nil 表示当前没有可预览的选择
	Item *ItemDefinition

	// X, Y 预览区域左上角格子（即鼠标所在格子）
	X, Y int
	// Size 占地边长
	Size int

	// Visible 鼠标在网格内且选择了建筑
	Visible bool
	// Placeable 区域在网格内且没有重叠
	Placeable bool
	// Affordable 当前余额足够支付
	Affordable bool
}
