// internal/event/types.go
package event

import "go-kokaton-musou/internal/types"

const (
	SessionStarted  EventType = "SessionStarted"
	EnemyKilled     EventType = "EnemyKilled"   // Рядовой враг уничтожен
	EnemyDamaged    EventType = "EnemyDamaged"  // Элитный враг ранен, но жив
	BombDestroyed   EventType = "BombDestroyed" // Бомба сбита лучом
	BossArrived     EventType = "BossArrived"
	BossDamaged     EventType = "BossDamaged"
	BossDefeated    EventType = "BossDefeated"
	ItemSpawned     EventType = "ItemSpawned"
	ItemCollected   EventType = "ItemCollected"
	ItemExpired     EventType = "ItemExpired"
	BeamFired       EventType = "BeamFired"
	ChargeShotFired EventType = "ChargeShotFired"
	BombDropped     EventType = "BombDropped"
	BossBeamFired   EventType = "BossBeamFired"
	SessionEnded    EventType = "SessionEnded" // Партия перешла в конечное состояние
)

// KillData — данные событий EnemyKilled, BombDestroyed и BossDefeated.
type KillData struct {
	ID      types.EntityID
	Kind    string
	Points  int
	X, Y    float64 // центр уничтоженной сущности
	Counted bool    // учитывается в счётчике убийств для выпадения предметов
	Tick    int
}

// DamageData — данные событий EnemyDamaged и BossDamaged.
type DamageData struct {
	ID       types.EntityID
	Remained int
}

// ItemData — данные событий о предметах.
type ItemData struct {
	ID     types.EntityID
	Player int // -1, если предмет никто не подобрал
}

// ShotData — данные событий о выстрелах.
type ShotData struct {
	ID    types.EntityID
	Owner int
}

// SessionData — данные SessionStarted и SessionEnded.
type SessionData struct {
	Outcome string
	Reason  string
	Tick    int
	Score   int
}
