// internal/utils/math.go
package utils

import "math"

// CalcOrientation возвращает единичный вектор от центра org к центру dst.
// При совпадающих центрах направление не определено, возвращается (0, 0).
func CalcOrientation(org, dst Rect) (float64, float64) {
	ox, oy := org.Center()
	dx, dy := dst.Center()
	xDiff, yDiff := dx-ox, dy-oy
	norm := math.Hypot(xDiff, yDiff)
	if norm == 0 {
		return 0, 0
	}
	return xDiff / norm, yDiff / norm
}

// MinInt возвращает меньшее из двух чисел.
func MinInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
