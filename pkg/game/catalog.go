package game

import (
	"errors"
	"fmt"

	"github.com/gonewx/jannah/pkg/components"
	"github.com/gonewx/jannah/pkg/config"
	"github.com/gonewx/jannah/pkg/types"
)

// ErrUnknownItem 目录中不存在指定ID的道具
var ErrUnknownItem = errors.New("unknown catalog item")

// Catalog 道具目录服务
// 目录中的定义在创建后不可变，ListItems 返回的指针在多个放置实例之间共享
type Catalog struct {
	items []*components.ItemDefinition
	byID  map[string]*components.ItemDefinition
}

// NewCatalog 从配置构建道具目录
// 尺寸类别和道具类型在这里一次性确定，之后不再根据ID推断
func NewCatalog(items []config.ItemConfig) (*Catalog, error) {
	c := &Catalog{
		items: make([]*components.ItemDefinition, 0, len(items)),
		byID:  make(map[string]*components.ItemDefinition, len(items)),
	}

	for _, ic := range items {
		if _, dup := c.byID[ic.ID]; dup {
			return nil, fmt.Errorf("duplicate catalog item %q", ic.ID)
		}

		kind, err := types.ParseItemKind(ic.Kind)
		if err != nil {
			return nil, fmt.Errorf("catalog item %s: %w", ic.ID, err)
		}

		def := &components.ItemDefinition{
			ID:       ic.ID,
			Name:     ic.Name,
			Icon:     ic.Icon,
			Category: ic.Category,
			Cost:     ic.Cost,
			Size:     types.ItemSize(ic.Size),
			Kind:     kind,
			ExpandBy: ic.ExpandBy,
		}
		if kind == types.ItemKindBuilding && !def.Size.IsValid() {
			return nil, fmt.Errorf("catalog item %s: unknown item size category %q", ic.ID, ic.Size)
		}
		if kind == types.ItemKindExpansion && def.ExpandBy < 1 {
			return nil, fmt.Errorf("catalog item %s: expandBy must be >= 1, got %d", ic.ID, def.ExpandBy)
		}

		c.items = append(c.items, def)
		c.byID[def.ID] = def
	}
	return c, nil
}

// ListItems 返回目录中的所有道具，顺序与配置一致
func (c *Catalog) ListItems() []*components.ItemDefinition {
	out := make([]*components.ItemDefinition, len(c.items))
	copy(out, c.items)
	return out
}

// Lookup 按ID查找道具
func (c *Catalog) Lookup(id string) (*components.ItemDefinition, error) {
	def, ok := c.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownItem, id)
	}
	return def, nil
}

// Len 目录中的道具数量
func (c *Catalog) Len() int {
	return len(c.items)
}
