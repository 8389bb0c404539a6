// component/movement.go
package component

import "go-kokaton-musou/internal/utils"

// Body — положение и габариты сущности на экране
type Body struct {
	Rect utils.Rect
}

// Velocity — смещение за один кадр
type Velocity struct {
	X, Y float64
}
