package systems

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/gonewx/jannah/pkg/components"
)

var (
	// ErrOutOfBounds 占地区域超出网格范围
	ErrOutOfBounds = errors.New("placement out of bounds")
	// ErrOverlap 占地区域与已放置的建筑重叠
	ErrOverlap = errors.New("placement overlaps an existing item")
)

// Cell 网格中的一个格子坐标
type Cell struct {
	X, Y int
}

// GridSystem 管理网格的占用状态
// 负责回答占用查询并执行已校验过的修改，不感知金币和购买流程
//
// 所有修改都原地作用于传入的 *components.GridState
type GridSystem struct {
	logger *zap.Logger
	newID  func() string
}

// GridOption 配置 GridSystem
type GridOption func(*GridSystem)

// WithGridLogger 设置日志记录器
func WithGridLogger(logger *zap.Logger) GridOption {
	return func(s *GridSystem) {
		if logger != nil {
			s.logger = logger.Named("grid")
		}
	}
}

// WithIDGenerator 替换放置实例ID生成函数（测试中用于得到确定的ID）
func WithIDGenerator(newID func() string) GridOption {
	return func(s *GridSystem) {
		if newID != nil {
			s.newID = newID
		}
	}
}

// NewGridSystem 创建网格系统
func NewGridSystem(opts ...GridOption) *GridSystem {
	s := &GridSystem{
		logger: zap.NewNop(),
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewGridState 创建一个空的正方形网格状态
// 参数:
//   - side: 网格边长，必须大于 0
//
// 返回:
//   - *components.GridState: 空网格
//   - error: 边长非法时返回错误
func NewGridState(side int) (*components.GridState, error) {
	if side <= 0 {
		return nil, fmt.Errorf("grid side must be > 0, got %d", side)
	}
	state := &components.GridState{Spec: components.GridSpec{Side: side}}
	rebuildOccupancy(state)
	return state, nil
}

// FootprintSize 返回道具占地区域的边长（格子数）
// 未识别的尺寸类别属于编程错误，直接 panic，不回退到默认值
func FootprintSize(item *components.ItemDefinition) int {
	if item == nil {
		panic("grid: nil item definition")
	}
	size, err := item.Size.Cells()
	if err != nil {
		panic(fmt.Sprintf("grid: item %q: %v", item.ID, err))
	}
	return size
}

// Cells 返回放置实例占据的所有格子，按行优先顺序
func Cells(placed *components.PlacedItem) []Cell {
	size := FootprintSize(placed.Item)
	cells := make([]Cell, 0, size*size)
	for dy := 0; dy < size; dy++ {
		for dx := 0; dx < size; dx++ {
			cells = append(cells, Cell{X: placed.OriginX + dx, Y: placed.OriginY + dy})
		}
	}
	return cells
}

// Validate 检查道具能否以 (x, y) 为左上角放置
// 返回:
//   - nil: 可以放置
//   - ErrOutOfBounds: 占地区域超出网格
//   - ErrOverlap: 与已有建筑的占地区域相交
func (s *GridSystem) Validate(state *components.GridState, item *components.ItemDefinition, x, y int) error {
	size := FootprintSize(item)
	side := state.Spec.Side

	// 边界检查
	if x < 0 || y < 0 || x+size > side || y+size > side {
		return ErrOutOfBounds
	}

	// 与每个已放置建筑做矩形相交检测
	for _, p := range state.Placements {
		psize := FootprintSize(p.Item)
		if x < p.OriginX+psize && p.OriginX < x+size &&
			y < p.OriginY+psize && p.OriginY < y+size {
			return ErrOverlap
		}
	}
	return nil
}

// CanPlace 检查道具能否以 (x, y) 为左上角放置
func (s *GridSystem) CanPlace(state *components.GridState, item *components.ItemDefinition, x, y int) bool {
	return s.Validate(state, item, x, y) == nil
}

// CommitPlacement 将道具放置到 (x, y)，追加到 Placements 末尾
//
// 前置条件: CanPlace(state, item, x, y) == true，由调用方保证
// 此函数不做完整校验；如果在写入占用索引时发现越界或冲突，说明调用方违反了前置条件，直接 panic
//
// 返回:
//   - *components.PlacedItem: 新的放置实例（state 已被原地修改）
func (s *GridSystem) CommitPlacement(state *components.GridState, item *components.ItemDefinition, x, y int) *components.PlacedItem {
	return s.CommitPlacementWithID(state, item, x, y, s.newID())
}

// CommitPlacementWithID 与 CommitPlacement 相同，但使用给定的实例ID（从存档恢复时保留原ID）
func (s *GridSystem) CommitPlacementWithID(state *components.GridState, item *components.ItemDefinition, x, y int, id string) *components.PlacedItem {
	occupancy := s.ensureOccupancy(state)

	placed := &components.PlacedItem{
		ID:      id,
		Item:    item,
		OriginX: x,
		OriginY: y,
	}

	cells := Cells(placed)
	side := state.Spec.Side
	for _, c := range cells {
		if c.X < 0 || c.Y < 0 || c.X >= side || c.Y >= side {
			panic(fmt.Sprintf("grid: commit precondition violated: item %q at (%d,%d) leaves a %dx%d grid", item.ID, x, y, side, side))
		}
		if occupancy[c.Y][c.X] != 0 {
			panic(fmt.Sprintf("grid: commit precondition violated: item %q at (%d,%d) overlaps cell (%d,%d)", item.ID, x, y, c.X, c.Y))
		}
	}

	state.Placements = append(state.Placements, placed)
	index := len(state.Placements)
	for _, c := range cells {
		occupancy[c.Y][c.X] = index
	}
	state.SetOccupancy(occupancy)

	s.logger.Debug("placement committed",
		zap.String("id", placed.ID),
		zap.String("item", item.ID),
		zap.Int("x", x),
		zap.Int("y", y))
	return placed
}

// ItemAt 返回覆盖 (x, y) 的放置实例
// 返回:
//   - placed: 覆盖该格子的建筑，空格子或越界返回 nil
//   - isOrigin: (x, y) 是否为该建筑的左上角格子（渲染层用来锚定图像）
func (s *GridSystem) ItemAt(state *components.GridState, x, y int) (placed *components.PlacedItem, isOrigin bool) {
	side := state.Spec.Side
	if x < 0 || y < 0 || x >= side || y >= side {
		return nil, false
	}
	index := s.ensureOccupancy(state)[y][x]
	if index == 0 {
		return nil, false
	}
	placed = state.Placements[index-1]
	return placed, placed.OriginX == x && placed.OriginY == y
}

// RemovePlacement 按ID移除一个放置实例（铲除），不退还金币
// 返回 false 表示ID不存在
func (s *GridSystem) RemovePlacement(state *components.GridState, id string) bool {
	for i, p := range state.Placements {
		if p.ID != id {
			continue
		}
		state.Placements = append(state.Placements[:i], state.Placements[i+1:]...)
		rebuildOccupancy(state)
		s.logger.Debug("placement removed", zap.String("id", id), zap.String("item", p.Item.ID))
		return true
	}
	return false
}

// Reset 清空所有放置实例（批量重置），网格规格不变
func (s *GridSystem) Reset(state *components.GridState) {
	state.Placements = nil
	rebuildOccupancy(state)
	s.logger.Debug("grid reset", zap.Int("side", state.Spec.Side))
}

// Expand 扩大网格边长（应用扩地道具的效果）
// 已有建筑保持原坐标不变，网格只会变大
func (s *GridSystem) Expand(state *components.GridState, by int) error {
	if by < 1 {
		return fmt.Errorf("grid expansion must be >= 1, got %d", by)
	}
	state.Spec.Side += by
	rebuildOccupancy(state)
	s.logger.Info("grid expanded", zap.Int("side", state.Spec.Side))
	return nil
}

// CheckInvariants 校验网格状态的全部不变量
//   - 每个建筑的占地区域都在网格范围内
//   - 任意两个建筑的占地区域不相交
//   - 占用索引与 Placements 一致
func (s *GridSystem) CheckInvariants(state *components.GridState) error {
	side := state.Spec.Side
	if side <= 0 {
		return fmt.Errorf("grid side must be > 0, got %d", side)
	}

	owner := make(map[Cell]int)
	for i, p := range state.Placements {
		for _, c := range Cells(p) {
			if c.X < 0 || c.Y < 0 || c.X >= side || c.Y >= side {
				return fmt.Errorf("placement %s (%s) cell (%d,%d) outside %dx%d grid", p.ID, p.Item.ID, c.X, c.Y, side, side)
			}
			if prev, taken := owner[c]; taken {
				return fmt.Errorf("placements %s and %s overlap at (%d,%d)", state.Placements[prev].ID, p.ID, c.X, c.Y)
			}
			owner[c] = i
		}
	}

	occupancy := s.ensureOccupancy(state)
	if len(occupancy) != side {
		return fmt.Errorf("occupancy has %d rows, want %d", len(occupancy), side)
	}
	for y := 0; y < side; y++ {
		if len(occupancy[y]) != side {
			return fmt.Errorf("occupancy row %d has %d cells, want %d", y, len(occupancy[y]), side)
		}
		for x := 0; x < side; x++ {
			want := 0
			if i, ok := owner[Cell{X: x, Y: y}]; ok {
				want = i + 1
			}
			if occupancy[y][x] != want {
				return fmt.Errorf("occupancy (%d,%d) = %d, want %d", x, y, occupancy[y][x], want)
			}
		}
	}
	return nil
}

// ensureOccupancy 返回与 Placements 一致的格子索引
// 索引缺失、或 Placements / 边长在 GridSystem 之外被改动过时重建
func (s *GridSystem) ensureOccupancy(state *components.GridState) [][]int {
	if occupancy := state.Occupancy(); occupancy != nil {
		return occupancy
	}
	s.logger.Debug("rebuilding stale occupancy index", zap.Int("placements", len(state.Placements)))
	rebuildOccupancy(state)
	return state.Occupancy()
}

// rebuildOccupancy 从 Placements 重建占用索引
// 越界的格子被跳过，重叠时后放置的覆盖先放置的；这两种情况由 CheckInvariants 报告
func rebuildOccupancy(state *components.GridState) {
	side := state.Spec.Side
	occupancy := make([][]int, side)
	for y := range occupancy {
		occupancy[y] = make([]int, side)
	}
	for i, p := range state.Placements {
		for _, c := range Cells(p) {
			if c.X < 0 || c.Y < 0 || c.X >= side || c.Y >= side {
				continue
			}
			occupancy[c.Y][c.X] = i + 1
		}
	}
	state.SetOccupancy(occupancy)
}
