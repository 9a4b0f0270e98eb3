package systems

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gonewx/jannah/pkg/components"
	"github.com/gonewx/jannah/pkg/types"
)

// testItem 构造测试用建筑定义
func testItem(id, category string, size types.ItemSize, cost int) *components.ItemDefinition {
	return &components.ItemDefinition{
		ID:       id,
		Name:     id,
		Category: category,
		Cost:     cost,
		Size:     size,
		Kind:     types.ItemKindBuilding,
	}
}

// testExpansion 构造测试用扩地道具
func testExpansion(cost, by int) *components.ItemDefinition {
	return &components.ItemDefinition{
		ID:       "land_expansion",
		Category: "expansion",
		Cost:     cost,
		Kind:     types.ItemKindExpansion,
		ExpandBy: by,
	}
}

// sequentialIDs 返回确定的放置实例ID生成器
func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("p%d", n)
	}
}

func newTestState(t *testing.T, side int) *components.GridState {
	t.Helper()
	state, err := NewGridState(side)
	require.NoError(t, err)
	return state
}

// fakeLedger 记录调用次数的测试账户
type fakeLedger struct {
	mu       sync.Mutex
	balance  int
	debits   int
	declined int
}

func (l *fakeLedger) Balance() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.balance
}

func (l *fakeLedger) TryDebit(amount int) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.balance < amount {
		l.declined++
		return false
	}
	l.balance -= amount
	l.debits++
	return true
}

func (l *fakeLedger) calls() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.debits + l.declined
}

// blockingLedger 在 TryDebit 中阻塞，直到 release 被关闭，用于模拟异步扣款
type blockingLedger struct {
	fakeLedger
	entered chan struct{}
	release chan struct{}
}

func newBlockingLedger(balance int) *blockingLedger {
	return &blockingLedger{
		fakeLedger: fakeLedger{balance: balance},
		entered:    make(chan struct{}),
		release:    make(chan struct{}),
	}
}

func (l *blockingLedger) TryDebit(amount int) bool {
	close(l.entered)
	<-l.release
	return l.fakeLedger.TryDebit(amount)
}
