// internal/utils/bounds.go
package utils

import "go-kokaton-musou/internal/config"

// Rect — осевой прямоугольник в экранных координатах (X, Y — левый верхний угол).
type Rect struct {
	X, Y, W, H float64
}

// RectFromCenter строит прямоугольник заданного размера с центром в (cx, cy).
func RectFromCenter(cx, cy, w, h float64) Rect {
	return Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Center возвращает центр прямоугольника.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Move возвращает прямоугольник, сдвинутый на (dx, dy).
func (r Rect) Move(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// SetCenter переносит прямоугольник так, чтобы его центр оказался в (cx, cy).
func (r *Rect) SetCenter(cx, cy float64) {
	r.X = cx - r.W/2
	r.Y = cy - r.H/2
}

// Overlaps — строгое пересечение: соприкосновение краями не считается.
// Вырожденные прямоугольники ни с чем не пересекаются.
func (r Rect) Overlaps(o Rect) bool {
	if r.W <= 0 || r.H <= 0 || o.W <= 0 || o.H <= 0 {
		return false
	}
	return r.Left() < o.Right() && o.Left() < r.Right() &&
		r.Top() < o.Bottom() && o.Top() < r.Bottom()
}

// CheckBound сообщает, лежит ли прямоугольник целиком в пределах экрана
// по горизонтали и по вертикали соответственно.
func CheckBound(r Rect) (inX, inY bool) {
	inX, inY = true, true
	if r.Left() < 0 || config.ScreenWidth < r.Right() {
		inX = false
	}
	if r.Top() < 0 || config.ScreenHeight < r.Bottom() {
		inY = false
	}
	return inX, inY
}

// OnScreen — прямоугольник полностью на экране.
func OnScreen(r Rect) bool {
	inX, inY := CheckBound(r)
	return inX && inY
}

// OffScreen — прямоугольник полностью за пределами экрана (ни одного общего пикселя).
func OffScreen(r Rect) bool {
	return r.Right() <= 0 || r.Left() >= config.ScreenWidth ||
		r.Bottom() <= 0 || r.Top() >= config.ScreenHeight
}
