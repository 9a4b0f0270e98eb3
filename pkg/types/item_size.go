// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
package types

import "fmt"

// ItemSize 定义建筑的占地规格（目录中声明的尺寸类别）
// 取值形如 "2x2"，表示建筑占据 2×2 的正方形格子区域
type ItemSize string

const (
	// Size1x1 占据 1×1 格子
	Size1x1 ItemSize = "1x1"
	// Size2x2 占据 2×2 格子
	Size2x2 ItemSize = "2x2"
	// Size3x3 占据 3×3 格子
	Size3x3 ItemSize = "3x3"
	// Size4x4 占据 4×4 格子
	Size4x4 ItemSize = "4x4"
)

// Cells 返回尺寸类别对应的边长（格子数）
// 未知的尺寸类别返回错误，不会回退到任何默认值
func (s ItemSize) Cells() (int, error) {
	switch s {
	case Size1x1:
		return 1, nil
	case Size2x2:
		return 2, nil
	case Size3x3:
		return 3, nil
	case Size4x4:
		return 4, nil
	default:
		return 0, fmt.Errorf("unknown item size category %q", string(s))
	}
}

// IsValid 检查尺寸类别是否可识别
func (s ItemSize) IsValid() bool {
	_, err := s.Cells()
	return err == nil
}

// ItemKind 区分可放置建筑和扩地道具
type ItemKind int

const (
	// ItemKindBuilding 占据网格的普通建筑
	ItemKindBuilding ItemKind = iota
	// ItemKindExpansion 扩大网格边长的扩地道具，不占据格子
	ItemKindExpansion
)

// String 返回道具类型的字符串表示
func (k ItemKind) String() string {
	switch k {
	case ItemKindBuilding:
		return "building"
	case ItemKindExpansion:
		return "expansion"
	default:
		return "unknown"
	}
}

// ParseItemKind 解析配置文件中的道具类型
// 空字符串视为普通建筑
func ParseItemKind(s string) (ItemKind, error) {
	switch s {
	case "", "building":
		return ItemKindBuilding, nil
	case "expansion":
		return ItemKindExpansion, nil
	default:
		return ItemKindBuilding, fmt.Errorf("unknown item kind %q", s)
	}
}
