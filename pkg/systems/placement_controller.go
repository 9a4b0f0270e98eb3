package systems

import (
	"errors"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"

	"github.com/gonewx/jannah/pkg/components"
)

var (
	// ErrInsufficientFunds 位置合法但账户拒绝扣款
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrNoSelection 未选择任何道具时尝试放置
	ErrNoSelection = errors.New("no item selected")
	// ErrBusy 已有一次放置尝试正在处理中
	ErrBusy = errors.New("another placement attempt is pending")
)

// Ledger 金币账户，由外部提供
// TryDebit 必须是原子的：要么完整扣款并返回 true，要么余额不变并返回 false
type Ledger interface {
	Balance() int
	TryDebit(amount int) bool
}

// ControllerState 放置控制器的状态
type ControllerState int

const (
	// StateIdle 未选择道具
	StateIdle ControllerState = iota
	// StateSelected 已选择道具，等待目标格子
	StateSelected
	// StatePending 正在校验 / 扣款 / 提交
	StatePending
)

// String 返回状态名
func (s ControllerState) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateSelected:
		return "Selected"
	case StatePending:
		return "Pending"
	default:
		return "Unknown"
	}
}

// PlacementStatus 一次放置尝试的最终结果
type PlacementStatus int

const (
	// StatusRejected 放置被拒绝，网格与余额都未改变
	StatusRejected PlacementStatus = iota
	// StatusCommitted 已扣款并提交
	StatusCommitted
)

// String 返回结果名
func (s PlacementStatus) String() string {
	if s == StatusCommitted {
		return "Committed"
	}
	return "Rejected"
}

// RejectReason 放置被拒绝的原因
type RejectReason int

const (
	// ReasonNone 未被拒绝
	ReasonNone RejectReason = iota
	// ReasonNoSelection 未选择道具
	ReasonNoSelection
	// ReasonOutOfBounds 占地区域越界
	ReasonOutOfBounds
	// ReasonOverlap 与已有建筑重叠
	ReasonOverlap
	// ReasonInsufficientFunds 金币不足
	ReasonInsufficientFunds
	// ReasonBusy 另一次尝试正在处理中
	ReasonBusy
)

// String 返回原因名
func (r RejectReason) String() string {
	switch r {
	case ReasonNone:
		return "None"
	case ReasonNoSelection:
		return "NoSelection"
	case ReasonOutOfBounds:
		return "OutOfBounds"
	case ReasonOverlap:
		return "Overlap"
	case ReasonInsufficientFunds:
		return "InsufficientFunds"
	case ReasonBusy:
		return "Busy"
	default:
		return "Unknown"
	}
}

// Err 将拒绝原因映射为可用 errors.Is 判断的哨兵错误
func (r RejectReason) Err() error {
	switch r {
	case ReasonNoSelection:
		return ErrNoSelection
	case ReasonOutOfBounds:
		return ErrOutOfBounds
	case ReasonOverlap:
		return ErrOverlap
	case ReasonInsufficientFunds:
		return ErrInsufficientFunds
	case ReasonBusy:
		return ErrBusy
	default:
		return nil
	}
}

// PlacementResult AttemptPlacement 的返回值
// 所有拒绝都是预期内的结果，通过返回值表达，不会 panic
type PlacementResult struct {
	Status    PlacementStatus
	Reason    RejectReason
	X, Y      int
	Item      *components.ItemDefinition // 本次尝试使用的道具，NoSelection / Busy 时为 nil
	Placement *components.PlacedItem     // 提交的放置实例，扩地道具为 nil
	Expansion bool                       // 扩地道具：只扣款，由调用方调用 GridSystem.Expand
}

// Committed 是否已提交
func (r PlacementResult) Committed() bool {
	return r.Status == StatusCommitted
}

// Err 返回拒绝原因对应的错误，成功时返回 nil
func (r PlacementResult) Err() error {
	return r.Reason.Err()
}

// RejectPolicy 放置被拒绝后如何处理当前选择
type RejectPolicy int

const (
	// ClearSelectionOnReject 拒绝后清空选择，回到 Idle
	ClearSelectionOnReject RejectPolicy = iota
	// KeepSelectionOnReject 拒绝后保留选择，允许直接换个格子重试
	KeepSelectionOnReject
)

// PlacementController 驱动 "校验 -> 扣款 -> 提交" 的放置流程
//
// 状态机: Idle -> Selected -> Pending -> Committed | Rejected -> Idle
// 同一时刻只允许一次尝试处于 Pending；并发到达的第二次尝试直接以 Busy 拒绝，不排队
type PlacementController struct {
	grid    *GridSystem
	state   *components.GridState
	ledger  Ledger
	logger  *zap.Logger
	policy  RejectPolicy
	maxSide int

	// pending 是唯一的 Pending 槽位
	pending *semaphore.Weighted

	mu       sync.Mutex
	phase    ControllerState
	selected *components.ItemDefinition
}

// ControllerOption 配置 PlacementController
type ControllerOption func(*PlacementController)

// WithControllerLogger 设置日志记录器
func WithControllerLogger(logger *zap.Logger) ControllerOption {
	return func(c *PlacementController) {
		if logger != nil {
			c.logger = logger.Named("placement")
		}
	}
}

// WithRejectPolicy 设置拒绝后的选择处理策略
func WithRejectPolicy(policy RejectPolicy) ControllerOption {
	return func(c *PlacementController) {
		c.policy = policy
	}
}

// WithMaxSide 限制扩地道具能达到的最大网格边长，0 表示不限制
// 超出上限的扩地购买在扣款前以 OutOfBounds 拒绝
func WithMaxSide(maxSide int) ControllerOption {
	return func(c *PlacementController) {
		c.maxSide = maxSide
	}
}

// NewPlacementController 创建放置控制器
// 参数:
//   - grid: 网格系统
//   - state: 控制器操作的网格状态（原地修改）
//   - ledger: 金币账户
func NewPlacementController(grid *GridSystem, state *components.GridState, ledger Ledger, opts ...ControllerOption) *PlacementController {
	c := &PlacementController{
		grid:    grid,
		state:   state,
		ledger:  ledger,
		logger:  zap.NewNop(),
		policy:  ClearSelectionOnReject,
		pending: semaphore.NewWeighted(1),
		phase:   StateIdle,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SelectItem 选择一个道具，覆盖之前未完成的选择
// Pending 期间拒绝切换选择，返回 false
func (c *PlacementController) SelectItem(item *components.ItemDefinition) bool {
	if item == nil {
		return c.ClearSelection()
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.phase == StatePending {
		return false
	}
	c.selected = item
	c.phase = StateSelected
	c.logger.Debug("item selected", zap.String("item", item.ID))
	return true
}

// ClearSelection 清空当前选择，回到 Idle
// Pending 期间返回 false
func (c *PlacementController) ClearSelection() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.phase == StatePending {
		return false
	}
	c.selected = nil
	c.phase = StateIdle
	return true
}

// Phase 返回当前状态
func (c *PlacementController) Phase() ControllerState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

// Selected 返回当前选择的道具
func (c *PlacementController) Selected() (*components.ItemDefinition, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selected, c.selected != nil
}

// Grid 返回控制器操作的网格状态（只读视图，调用方不要直接修改）
func (c *PlacementController) Grid() *components.GridState {
	return c.state
}

// AttemptPlacement 尝试将当前选择的道具放到 (x, y)
//
// 流程（顺序是硬性约束）:
//  1. 校验位置合法性，非法则拒绝，不联系账户
//  2. 请求账户扣款，失败则拒绝，网格不变
//  3. 提交放置
//
// 未选择道具时返回 Rejected(NoSelection)，不改变任何状态
func (c *PlacementController) AttemptPlacement(x, y int) PlacementResult {
	if !c.pending.TryAcquire(1) {
		c.logger.Debug("placement attempt rejected: busy", zap.Int("x", x), zap.Int("y", y))
		return PlacementResult{Status: StatusRejected, Reason: ReasonBusy, X: x, Y: y}
	}
	defer c.pending.Release(1)

	c.mu.Lock()
	item := c.selected
	if item == nil {
		c.mu.Unlock()
		return PlacementResult{Status: StatusRejected, Reason: ReasonNoSelection, X: x, Y: y}
	}
	c.phase = StatePending
	c.mu.Unlock()

	result := c.resolve(item, x, y)

	c.mu.Lock()
	if result.Committed() || c.policy == ClearSelectionOnReject {
		c.selected = nil
		c.phase = StateIdle
	} else {
		c.phase = StateSelected
	}
	c.mu.Unlock()

	if result.Committed() {
		c.logger.Info("placement committed",
			zap.String("item", item.ID),
			zap.Int("x", x),
			zap.Int("y", y),
			zap.Bool("expansion", result.Expansion),
			zap.Int("balance", c.ledger.Balance()))
	} else {
		c.logger.Info("placement rejected",
			zap.String("item", item.ID),
			zap.Int("x", x),
			zap.Int("y", y),
			zap.Stringer("reason", result.Reason))
	}
	return result
}

// resolve 在持有 Pending 槽位时执行校验、扣款和提交
func (c *PlacementController) resolve(item *components.ItemDefinition, x, y int) PlacementResult {
	result := PlacementResult{Status: StatusRejected, X: x, Y: y, Item: item}

	// 扩地道具不经过 CanPlace / CommitPlacement，扣款成功即视为完成
	// 无法让网格变大的扩地（ExpandBy < 1 或超过上限）在扣款前拒绝
	if item.IsExpansion() {
		if item.ExpandBy < 1 || (c.maxSide > 0 && c.state.Spec.Side+item.ExpandBy > c.maxSide) {
			result.Reason = ReasonOutOfBounds
			return result
		}
		if !c.ledger.TryDebit(item.Cost) {
			result.Reason = ReasonInsufficientFunds
			return result
		}
		result.Status = StatusCommitted
		result.Expansion = true
		return result
	}

	if err := c.grid.Validate(c.state, item, x, y); err != nil {
		if errors.Is(err, ErrOverlap) {
			result.Reason = ReasonOverlap
		} else {
			result.Reason = ReasonOutOfBounds
		}
		return result
	}

	if !c.ledger.TryDebit(item.Cost) {
		result.Reason = ReasonInsufficientFunds
		return result
	}

	result.Placement = c.grid.CommitPlacement(c.state, item, x, y)
	result.Status = StatusCommitted
	return result
}

// Remove 铲除一个已放置的建筑（不退款）
// 与放置尝试共用同一个 Pending 槽位
func (c *PlacementController) Remove(id string) (bool, error) {
	if !c.pending.TryAcquire(1) {
		return false, ErrBusy
	}
	defer c.pending.Release(1)

	removed := c.grid.RemovePlacement(c.state, id)
	if removed {
		c.logger.Info("placement removed", zap.String("id", id))
	}
	return removed, nil
}

// Reset 清空网格上的所有建筑
func (c *PlacementController) Reset() error {
	if !c.pending.TryAcquire(1) {
		return ErrBusy
	}
	defer c.pending.Release(1)

	c.grid.Reset(c.state)
	c.logger.Info("grid reset")
	return nil
}

// ItemAt 返回覆盖 (x, y) 的建筑以及该格子是否为其左上角
func (c *PlacementController) ItemAt(x, y int) (*components.PlacedItem, bool) {
	return c.grid.ItemAt(c.state, x, y)
}

// TotalCount 已放置建筑数量
func (c *PlacementController) TotalCount() int {
	return TotalCount(c.state)
}

// CountByCategory 指定分类的建筑数量
func (c *PlacementController) CountByCategory(category string) int {
	return CountByCategory(c.state, category)
}

// TotalValue 已放置建筑的总价值
func (c *PlacementController) TotalValue() int {
	return TotalValue(c.state)
}

// Summary 统计汇总
func (c *PlacementController) Summary() Summary {
	return Summarize(c.state)
}
