package render

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-kokaton-musou/internal/config"
	"go-kokaton-musou/internal/defs"
	"go-kokaton-musou/internal/entity"
	"go-kokaton-musou/internal/utils"
)

// SpriteSource отдаёт спрайт по имени.
type SpriteSource interface {
	Get(id defs.SpriteID) *ebiten.Image
}

// Renderer рисует фон и все сущности мира.
type Renderer struct {
	sprites SpriteSource
}

func NewRenderer(sprites SpriteSource) *Renderer {
	return &Renderer{sprites: sprites}
}

// DrawBackground рисует прокручиваемый фон: плитка, её зеркальная копия
// и снова плитка, с периодом BackgroundPeriod.
func (r *Renderer) DrawBackground(screen *ebiten.Image, scroll int) {
	screen.Fill(config.BackgroundColor)
	bg := r.sprites.Get(defs.SpriteBackground)
	if bg == nil {
		return
	}
	x := -float64(scroll % config.BackgroundPeriod)
	for i := 0; i < 4; i++ {
		offset := x + float64(i*config.BackgroundTileWidth)
		rect := utils.Rect{X: offset, Y: 0, W: config.BackgroundTileWidth, H: config.ScreenHeight}
		r.DrawSprite(screen, bg, rect, i%2 == 1, false)
	}
}

// DrawWorld рисует сущности по слоям, внутри слоя — в порядке появления.
func (r *Renderer) DrawWorld(screen *ebiten.Image, ecs *entity.ECS) {
	ids := ecs.RenderableIDs()
	sort.SliceStable(ids, func(i, j int) bool {
		return ecs.Renderables[ids[i]].Layer < ecs.Renderables[ids[j]].Layer
	})

	for _, id := range ids {
		body, ok := ecs.Bodies[id]
		if !ok {
			continue
		}
		rend := ecs.Renderables[id]
		if rend.Radius > 0 {
			cx, cy := body.Rect.Center()
			vector.DrawFilledCircle(screen, float32(cx), float32(cy), rend.Radius, rend.Color, true)
			continue
		}
		if img := r.sprites.Get(rend.Sprite); img != nil {
			r.DrawSprite(screen, img, body.Rect, rend.FlipX, rend.FlipY)
		}
	}

	r.drawChargeRings(screen, ecs)
}

func (r *Renderer) drawChargeRings(screen *ebiten.Image, ecs *entity.ECS) {
	for _, id := range ecs.PlayerIDs() {
		radius := ecs.Players[id].ChargeRadius()
		if radius <= 0 {
			continue
		}
		cx, cy := ecs.Bodies[id].Rect.Center()
		vector.StrokeCircle(screen, float32(cx), float32(cy), float32(radius), config.ChargeRingWidth, config.ChargeColor, true)
	}
}

// DrawSprite растягивает img на прямоугольник rect, при необходимости отражая.
func (r *Renderer) DrawSprite(screen, img *ebiten.Image, rect utils.Rect, flipX, flipY bool) {
	b := img.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())
	if w == 0 || h == 0 {
		return
	}
	sx, sy := rect.W/w, rect.H/h
	if flipX {
		sx = -sx
	}
	if flipY {
		sy = -sy
	}
	cx, cy := rect.Center()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-w/2, -h/2)
	op.GeoM.Scale(sx, sy)
	op.GeoM.Translate(cx, cy)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, op)
}

// SpriteAt рисует спрайт id с центром в (cx, cy) в масштабе scale.
func (r *Renderer) SpriteAt(screen *ebiten.Image, id defs.SpriteID, cx, cy, scale float64) {
	img := r.sprites.Get(id)
	if img == nil {
		return
	}
	b := img.Bounds()
	w, h := float64(b.Dx())*scale, float64(b.Dy())*scale
	r.DrawSprite(screen, img, utils.RectFromCenter(cx, cy, w, h), false, false)
}
