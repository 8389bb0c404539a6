// component/render.go
package component

import (
	"image/color"

	"go-kokaton-musou/internal/defs"
)

// Слои отрисовки, по возрастанию.
const (
	LayerEnemy = iota
	LayerBoss
	LayerProjectile
	LayerItem
	LayerPlayer
	LayerExplosion
)

// Renderable — компонент для отрисовки
type Renderable struct {
	Sprite defs.SpriteID
	Color  color.RGBA // для бомб, которые рисуются кругом
	Radius float32    // 0 — рисуется спрайт
	FlipX  bool
	FlipY  bool
	Layer  int
}
