package components

// LifetimeComponent 管理实体的生命周期
// 用于自动清理存在时间超过上限的实体(如格子高亮提示)
type LifetimeComponent struct {
	MaxLifetime     float64 // 最大生命周期(秒)
	CurrentLifetime float64 // 当前已存在时间(秒)
	IsExpired       bool    // 是否已过期
}

// Remaining 返回剩余生命周期比例 (0.0 - 1.0)，用于淡出效果
func (c *LifetimeComponent) Remaining() float64 {
	if c.MaxLifetime <= 0 {
		return 0
	}
	r := 1 - c.CurrentLifetime/c.MaxLifetime
	if r < 0 {
		return 0
	}
	return r
}
