// internal/defs/types.go
package defs

// EnemyKind — разновидность рядового врага.
type EnemyKind int

const (
	EnemyStandard EnemyKind = iota // летит влево с постоянной скоростью
	EnemyBomber                    // висит у правого края и бросает бомбы
	EnemyElite                     // выжидает, потом резко летит влево
)

func (k EnemyKind) String() string {
	switch k {
	case EnemyStandard:
		return "standard"
	case EnemyBomber:
		return "bomber"
	case EnemyElite:
		return "elite"
	default:
		return "unknown"
	}
}

// Hazard — то, что может закончить партию при касании игрока.
type Hazard int

const (
	HazardStandard Hazard = iota
	HazardBomber
	HazardElite
	HazardBossBeam
)

// HazardOf сопоставляет вид врага с опасностью.
func HazardOf(k EnemyKind) Hazard {
	switch k {
	case EnemyBomber:
		return HazardBomber
	case EnemyElite:
		return HazardElite
	default:
		return HazardStandard
	}
}

// SpriteID — имя спрайта. Совпадает с именем PNG-файла в каталоге --sprites.
type SpriteID string

const (
	SpritePlayer1    SpriteID = "kokaton_p1"
	SpritePlayer2    SpriteID = "kokaton_p2"
	SpritePlayerSad  SpriteID = "kokaton_sad"
	SpriteAlien1     SpriteID = "alien1"
	SpriteAlien2     SpriteID = "alien2"
	SpriteAlien3     SpriteID = "alien3"
	SpriteHorse      SpriteID = "horse"
	SpriteBoss       SpriteID = "boss"
	SpriteBeam       SpriteID = "beam"
	SpriteBossBeam   SpriteID = "boss_beam"
	SpriteExplosion  SpriteID = "explosion"
	SpriteItem       SpriteID = "item"
	SpriteBackground SpriteID = "background"
)

// AllSprites — полный список спрайтов, которые должны быть загружены до старта.
var AllSprites = []SpriteID{
	SpritePlayer1, SpritePlayer2, SpritePlayerSad,
	SpriteAlien1, SpriteAlien2, SpriteAlien3,
	SpriteHorse, SpriteBoss,
	SpriteBeam, SpriteBossBeam,
	SpriteExplosion, SpriteItem, SpriteBackground,
}
