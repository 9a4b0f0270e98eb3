package game

import (
	"sync"

	"go.uber.org/zap"
)

// Wallet 玩家的金币账户
// 实现 systems.Ledger：TryDebit 是原子的，要么完整扣款，要么余额不变
type Wallet struct {
	mu      sync.Mutex
	balance int
	cap     int // 金币上限，0 表示不限制
	logger  *zap.Logger
}

// NewWallet 创建金币账户
// 参数:
//   - balance: 初始金币
//   - cap: 金币上限，0 表示不限制
//   - logger: 日志记录器，可为 nil
func NewWallet(balance, cap int, logger *zap.Logger) *Wallet {
	if logger == nil {
		logger = zap.NewNop()
	}
	w := &Wallet{cap: cap, logger: logger.Named("wallet")}
	w.balance = w.clamp(balance)
	return w
}

// Balance 返回当前金币
func (w *Wallet) Balance() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.balance
}

// TryDebit 扣除金币，如果金币不足返回 false
// 只有当金币充足时才会扣除，负数金额视为非法请求
func (w *Wallet) TryDebit(amount int) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if amount < 0 || w.balance < amount {
		w.logger.Debug("debit declined", zap.Int("amount", amount), zap.Int("balance", w.balance))
		return false
	}
	w.balance -= amount
	w.logger.Debug("debit", zap.Int("amount", amount), zap.Int("balance", w.balance))
	return true
}

// Credit 增加金币，带上限检查
// 返回实际增加的数量
func (w *Wallet) Credit(amount int) int {
	if amount <= 0 {
		return 0
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	before := w.balance
	w.balance = w.clamp(w.balance + amount)
	return w.balance - before
}

func (w *Wallet) clamp(v int) int {
	if v < 0 {
		return 0
	}
	if w.cap > 0 && v > w.cap {
		return w.cap
	}
	return v
}
