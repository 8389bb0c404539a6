// internal/ui/font.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
)

// Fonts — начертания для HUD и финальных экранов.
type Fonts struct {
	Score  font.Face
	Banner font.Face
	Hint   font.Face
}

// LoadFonts разбирает встроенный Go Bold и создает начертания нужных размеров.
func LoadFonts(scoreSize, bannerSize, hintSize float64) (*Fonts, error) {
	tt, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("ui: parse font: %w", err)
	}
	newFace := func(size float64) (font.Face, error) {
		face, err := opentype.NewFace(tt, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			return nil, fmt.Errorf("ui: font face %.0fpt: %w", size, err)
		}
		return face, nil
	}

	f := &Fonts{}
	if f.Score, err = newFace(scoreSize); err != nil {
		return nil, err
	}
	if f.Banner, err = newFace(bannerSize); err != nil {
		return nil, err
	}
	if f.Hint, err = newFace(hintSize); err != nil {
		return nil, err
	}
	return f, nil
}

// DrawCentered рисует строку так, что центр её габаритов совпадает с (cx, cy).
func DrawCentered(screen *ebiten.Image, s string, face font.Face, cx, cy int, clr color.Color) {
	b := text.BoundString(face, s)
	x := cx - b.Dx()/2 - b.Min.X
	y := cy - b.Dy()/2 - b.Min.Y
	text.Draw(screen, s, face, x, y, clr)
}
