package utils

// MouseToCell 将鼠标屏幕坐标转换为网格坐标
// 参数:
//   - mouseX, mouseY: 鼠标的屏幕坐标
//   - startX, startY: 网格左上角的屏幕坐标
//   - side: 网格边长（格子数）
//   - cellSize: 每格像素边长
//
// 返回:
//   - x, y: 格子坐标 (0 ~ side-1)
//   - isValid: 是否在网格范围内
func MouseToCell(mouseX, mouseY int, startX, startY float64, side int, cellSize float64) (x, y int, isValid bool) {
	if side <= 0 || cellSize <= 0 {
		return 0, 0, false
	}

	fx := float64(mouseX)
	fy := float64(mouseY)
	end := float64(side) * cellSize

	if fx < startX || fx >= startX+end || fy < startY || fy >= startY+end {
		return 0, 0, false
	}

	x = int((fx - startX) / cellSize)
	y = int((fy - startY) / cellSize)

	// 边界检查（防止浮点数计算误差导致的越界）
	x = clamp(x, 0, side-1)
	y = clamp(y, 0, side-1)
	return x, y, true
}

// CellToScreen 将格子坐标转换为该格子左上角的屏幕坐标
func CellToScreen(x, y int, startX, startY, cellSize float64) (screenX, screenY float64) {
	return startX + float64(x)*cellSize, startY + float64(y)*cellSize
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
