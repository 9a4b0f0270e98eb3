package components

import "github.com/gonewx/jannah/pkg/types"

// ItemDefinition 描述目录中的一种可购买道具
// 由目录服务提供，核心逻辑只读取，不修改
// 多个 PlacedItem 可以引用同一个定义
type ItemDefinition struct {
	ID       string         // 唯一标识
	Name     string         // 显示名称
	Icon     string         // 图标资源引用
	Category string         // 分类（统计用）
	Cost     int            // 价格（金币），>= 0
	Size     types.ItemSize // 占地规格，仅对建筑有意义
	Kind     types.ItemKind // 建筑 / 扩地道具

	// ExpandBy 扩地道具每次购买增加的网格边长
	ExpandBy int
}

// IsExpansion 是否为扩地道具
func (d ItemDefinition) IsExpansion() bool {
	return d.Kind == types.ItemKindExpansion
}
