// internal/defs/loot_tables.go
package defs

import "go-kokaton-musou/internal/config"

// ItemDrop — правило выпадения усиления.
type ItemDrop struct {
	EveryKills int     // предмет выпадает на каждом N-м учтённом убийстве
	Lifetime   int     // кадров до исчезновения
	SpeedBonus float64 // прибавка к скорости подобравшего игрока
	Width      float64
	Height     float64
	Sprite     SpriteID
}

// SpeedItem — единственный предмет в игре.
var SpeedItem = ItemDrop{
	EveryKills: config.ItemDropEvery,
	Lifetime:   config.ItemLifetimeTicks,
	SpeedBonus: config.ItemSpeedBonus,
	Width:      config.ItemSize,
	Height:     config.ItemSize,
	Sprite:     SpriteItem,
}

// DropsOn сообщает, выпадает ли предмет при значении счётчика убийств kills.
func (d ItemDrop) DropsOn(kills int) bool {
	return d.EveryKills > 0 && kills > 0 && kills%d.EveryKills == 0
}
