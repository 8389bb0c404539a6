// internal/defs/players.go
package defs

// PlayerDefinition — стартовые параметры игрока и правила его столкновений.
type PlayerDefinition struct {
	Index          int
	SpawnX, SpawnY float64
	Sprite         SpriteID
	CollectsItems  bool
	Hazards        []Hazard
}

// Hits сообщает, заканчивает ли опасность h партию для этого игрока.
func (d PlayerDefinition) Hits(h Hazard) bool {
	for _, x := range d.Hazards {
		if x == h {
			return true
		}
	}
	return false
}

// Players — оба игрока. Первый подбирает предметы и погибает от любого врага
// и луча босса (бомбы ему не опасны), второй — только от рядовых врагов.
var Players = []PlayerDefinition{
	{
		Index:         0,
		SpawnX:        300,
		SpawnY:        200,
		Sprite:        SpritePlayer1,
		CollectsItems: true,
		Hazards:       []Hazard{HazardStandard, HazardElite, HazardBomber, HazardBossBeam},
	},
	{
		Index:   1,
		SpawnX:  300,
		SpawnY:  400,
		Sprite:  SpritePlayer2,
		Hazards: []Hazard{HazardStandard},
	},
}
