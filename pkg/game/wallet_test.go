package game

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gonewx/jannah/pkg/systems"
)

var _ systems.Ledger = (*Wallet)(nil)

func TestWalletTryDebit(t *testing.T) {
	w := NewWallet(100, 0, nil)

	assert.True(t, w.TryDebit(60))
	assert.Equal(t, 40, w.Balance())

	// 金币不足：余额不变
	assert.False(t, w.TryDebit(50))
	assert.Equal(t, 40, w.Balance())

	// 免费道具
	assert.True(t, w.TryDebit(0))
	assert.Equal(t, 40, w.Balance())

	// 负数金额非法
	assert.False(t, w.TryDebit(-10))
	assert.Equal(t, 40, w.Balance())
}

func TestWalletCreditCap(t *testing.T) {
	w := NewWallet(9980, 9990, nil)

	assert.Equal(t, 10, w.Credit(50))
	assert.Equal(t, 9990, w.Balance())
	assert.Zero(t, w.Credit(-5))

	// 初始余额同样受上限约束
	assert.Equal(t, 9990, NewWallet(20000, 9990, nil).Balance())
	assert.Equal(t, 0, NewWallet(-5, 0, nil).Balance())
}

// TestWalletConcurrentDebit 并发扣款不会超支
func TestWalletConcurrentDebit(t *testing.T) {
	w := NewWallet(1000, 0, nil)

	var wg sync.WaitGroup
	var mu sync.Mutex
	succeeded := 0
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if w.TryDebit(30) {
				mu.Lock()
				succeeded++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 33, succeeded)
	assert.Equal(t, 1000-33*30, w.Balance())
}
