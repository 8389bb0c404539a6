package assets

import (
	"fmt"
	"image/color"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-kokaton-musou/internal/config"
	"go-kokaton-musou/internal/defs"
	"go-kokaton-musou/internal/utils"
	"go-kokaton-musou/pkg/render"
)

// SpriteManager управляет загрузкой и кэшированием спрайтов.
type SpriteManager struct {
	sprites map[defs.SpriteID]*ebiten.Image
}

// NewSpriteManager создает пустой менеджер.
func NewSpriteManager() *SpriteManager {
	return &SpriteManager{sprites: make(map[defs.SpriteID]*ebiten.Image)}
}

// Get возвращает спрайт или nil, если он не загружен.
func (m *SpriteManager) Get(id defs.SpriteID) *ebiten.Image {
	return m.sprites[id]
}

// LoadDir загружает все спрайты из каталога dir (<имя>.png).
// Отсутствие любого файла — ошибка запуска.
func (m *SpriteManager) LoadDir(dir string) error {
	for _, id := range defs.AllSprites {
		path := filepath.Join(dir, string(id)+".png")
		img, _, err := ebitenutil.NewImageFromFile(path)
		if err != nil {
			return fmt.Errorf("assets: sprite %s: %w", id, err)
		}
		m.sprites[id] = img
	}
	return nil
}

// LoadProcedural рисует все спрайты примитивами.
func (m *SpriteManager) LoadProcedural() {
	m.sprites[defs.SpritePlayer1] = drawKokaton(color.RGBA{255, 200, 40, 255}, false)
	m.sprites[defs.SpritePlayer2] = drawKokaton(color.RGBA{120, 200, 255, 255}, false)
	m.sprites[defs.SpritePlayerSad] = drawKokaton(render.DarkenColor(color.RGBA{255, 200, 40, 255}), true)

	m.sprites[defs.SpriteAlien1] = drawAlien(color.RGBA{90, 220, 90, 255})
	m.sprites[defs.SpriteAlien2] = drawAlien(color.RGBA{200, 90, 230, 255})
	m.sprites[defs.SpriteAlien3] = drawAlien(color.RGBA{240, 90, 90, 255})
	m.sprites[defs.SpriteHorse] = drawHorse()
	m.sprites[defs.SpriteBoss] = drawBoss()

	m.sprites[defs.SpriteBeam] = drawBar(config.BeamWidth, config.BeamHeight, color.RGBA{80, 240, 255, 255})
	m.sprites[defs.SpriteBossBeam] = drawBar(config.BossBeamWidth, config.BossBeamHeight, color.RGBA{255, 60, 60, 255})
	m.sprites[defs.SpriteExplosion] = drawExplosion()
	m.sprites[defs.SpriteItem] = drawItem()
	m.sprites[defs.SpriteBackground] = drawBackground()
}

// こうかとん смотрит вправо.
func drawKokaton(body color.RGBA, sad bool) *ebiten.Image {
	const w, h = config.PlayerWidth, config.PlayerHeight
	img := ebiten.NewImage(w, h)
	vector.DrawFilledCircle(img, w/2, h/2+4, h/2-6, body, true)
	// крыло
	vector.DrawFilledCircle(img, w/2-14, h/2+10, 14, render.DarkenColor(body), true)
	// клюв
	vector.DrawFilledRect(img, w-22, h/2-4, 18, 10, color.RGBA{255, 120, 0, 255}, true)
	// глаз
	vector.DrawFilledCircle(img, w/2+16, h/2-8, 8, color.White, true)
	vector.DrawFilledCircle(img, w/2+18, h/2-8, 4, color.Black, true)
	if sad {
		vector.StrokeLine(img, w/2+6, h/2-20, w/2+26, h/2-14, 3, color.Black, true)
		vector.DrawFilledCircle(img, w/2+18, h/2+4, 4, color.RGBA{90, 160, 255, 255}, true)
	}
	return img
}

func drawAlien(body color.RGBA) *ebiten.Image {
	const w, h = config.EnemyWidth, config.EnemyHeight
	img := ebiten.NewImage(w, h)
	vector.DrawFilledRect(img, 6, h/2-6, w-12, h/2, render.DarkenColor(body), true)
	vector.DrawFilledCircle(img, w/2, h/2-4, h/3, body, true)
	vector.DrawFilledCircle(img, w/2-9, h/2-8, 5, color.Black, true)
	vector.DrawFilledCircle(img, w/2+9, h/2-8, 5, color.Black, true)
	return img
}

func drawHorse() *ebiten.Image {
	const s = config.EliteSize
	brown := color.RGBA{150, 95, 45, 255}
	img := ebiten.NewImage(s, s)
	vector.DrawFilledRect(img, s*0.3, s*0.4, s*0.6, s*0.3, brown, true)
	vector.DrawFilledRect(img, s*0.1, s*0.15, s*0.25, s*0.35, brown, true)
	for _, x := range []float32{0.35, 0.5, 0.7, 0.82} {
		vector.DrawFilledRect(img, s*x, s*0.68, s*0.06, s*0.28, render.DarkenColor(brown), true)
	}
	vector.DrawFilledCircle(img, s*0.17, s*0.24, 6, color.Black, true)
	return img
}

func drawBoss() *ebiten.Image {
	const w, h = config.BossWidth, config.BossHeight
	img := ebiten.NewImage(w, h)
	hull := color.RGBA{120, 30, 60, 255}
	vector.DrawFilledRect(img, 20, h*0.25, w-40, h*0.5, hull, true)
	vector.DrawFilledCircle(img, w/2, h/2, h*0.35, render.DarkenColor(hull), true)
	vector.DrawFilledCircle(img, w*0.3, h/2, 16, color.RGBA{255, 220, 0, 255}, true)
	vector.StrokeCircle(img, w/2, h/2, h*0.35, 4, color.RGBA{255, 80, 80, 255}, true)
	return img
}

func drawBar(w, h int, c color.RGBA) *ebiten.Image {
	img := ebiten.NewImage(w, h)
	vector.DrawFilledRect(img, 0, 0, float32(w), float32(h), render.DarkenColor(c), true)
	vector.DrawFilledRect(img, 0, float32(h)/4, float32(w), float32(h)/2, c, true)
	return img
}

func drawExplosion() *ebiten.Image {
	const s = config.ExplosionSize
	img := ebiten.NewImage(s, s)
	vector.DrawFilledCircle(img, s/2, s/2, s/2, color.RGBA{255, 80, 0, 220}, true)
	vector.DrawFilledCircle(img, s*0.4, s*0.45, s/3, color.RGBA{255, 200, 0, 240}, true)
	vector.DrawFilledCircle(img, s*0.35, s*0.4, s/8, color.White, true)
	return img
}

func drawItem() *ebiten.Image {
	const s = config.ItemSize
	img := ebiten.NewImage(s, s)
	vector.DrawFilledCircle(img, s/2, s/2, s/2, color.RGBA{40, 200, 80, 255}, true)
	vector.DrawFilledRect(img, s*0.3, s*0.45, s*0.4, s*0.1, color.White, true)
	vector.DrawFilledRect(img, s*0.45, s*0.3, s*0.1, s*0.4, color.White, true)
	return img
}

// Фон — одна плитка шириной BackgroundTileWidth со звёздами.
func drawBackground() *ebiten.Image {
	img := ebiten.NewImage(config.BackgroundTileWidth, config.ScreenHeight)
	img.Fill(config.BackgroundColor)
	// Фиксированный сид: фон одинаков в каждой партии.
	rng := utils.NewPRNGService(1)
	for i := 0; i < 240; i++ {
		x := float32(rng.Intn(config.BackgroundTileWidth))
		y := float32(rng.Intn(config.ScreenHeight))
		r := float32(1 + rng.Intn(2))
		vector.DrawFilledCircle(img, x, y, r, config.TextLightColor, false)
	}
	return img
}
