package components

// GridSpec 定义正方形网格的规格
// 坐标范围 0 <= x, y < Side
type GridSpec struct {
	Side int
}

// PlacedItem 表示一次成功放置的建筑实例
// 创建后不会被原地修改
type PlacedItem struct {
	ID      string          // 放置实例ID（UUID）
	Item    *ItemDefinition // 引用的道具定义（共享，不拥有）
	OriginX int             // 占地区域左上角格子 X
	OriginY int             // 占地区域左上角格子 Y
}

// GridState 网格占用状态，由 GridSystem 维护
//
// Placements 是唯一的事实来源，按放置顺序排列
// 格子索引是 Placements 的缓存，[y][x] = Placements 下标 + 1，0 表示空格子
// 索引记录了构建它时的 Placements 和边长；两者在 GridSystem 之外被改动后，
// Occupancy 返回 nil，GridSystem 会在下一次查询前重建
//
// GridState 以指针方式原地修改，调用方不应假设得到的是副本
type GridState struct {
	Spec       GridSpec
	Placements []*PlacedItem

	occupancy [][]int
	indexed   []*PlacedItem
	indexSide int
}

// Occupancy 返回与当前 Placements 一致的格子索引，索引过期或缺失时返回 nil
func (g *GridState) Occupancy() [][]int {
	if g.occupancy == nil || g.indexSide != g.Spec.Side || len(g.indexed) != len(g.Placements) {
		return nil
	}
	for i, p := range g.Placements {
		if g.indexed[i] != p {
			return nil
		}
	}
	return g.occupancy
}

// SetOccupancy 记录根据当前 Placements 和边长构建的格子索引
func (g *GridState) SetOccupancy(occupancy [][]int) {
	g.occupancy = occupancy
	g.indexed = make([]*PlacedItem, len(g.Placements))
	copy(g.indexed, g.Placements)
	g.indexSide = g.Spec.Side
}
