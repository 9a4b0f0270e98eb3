package systems

import (
	"sort"

	"github.com/gonewx/jannah/pkg/components"
)

// 统计函数都直接从 Placements 计算，不做缓存

// TotalCount 返回已放置建筑数量
func TotalCount(state *components.GridState) int {
	return len(state.Placements)
}

// CountByCategory 返回指定分类的建筑数量
func CountByCategory(state *components.GridState, category string) int {
	n := 0
	for _, p := range state.Placements {
		if p.Item.Category == category {
			n++
		}
	}
	return n
}

// TotalValue 返回所有已放置建筑的价格总和
func TotalValue(state *components.GridState) int {
	total := 0
	for _, p := range state.Placements {
		total += p.Item.Cost
	}
	return total
}

// CategoryCounts 返回每个分类的建筑数量
func CategoryCounts(state *components.GridState) map[string]int {
	counts := make(map[string]int)
	for _, p := range state.Placements {
		counts[p.Item.Category]++
	}
	return counts
}

// CategoryCount 单个分类的统计
type CategoryCount struct {
	Category string
	Count    int
}

// Summary 面板展示用的统计汇总
type Summary struct {
	Count      int
	Value      int
	ByCategory []CategoryCount // 按分类名排序
}

// Summarize 计算统计汇总
func Summarize(state *components.GridState) Summary {
	counts := CategoryCounts(state)
	byCategory := make([]CategoryCount, 0, len(counts))
	for category, n := range counts {
		byCategory = append(byCategory, CategoryCount{Category: category, Count: n})
	}
	sort.Slice(byCategory, func(i, j int) bool {
		return byCategory[i].Category < byCategory[j].Category
	})

	return Summary{
		Count:      TotalCount(state),
		Value:      TotalValue(state),
		ByCategory: byCategory,
	}
}
