package component

import "go-kokaton-musou/internal/defs"

// EnemyState — фаза движения врага.
type EnemyState int

const (
	EnemyDescending EnemyState = iota
	EnemyStopped
)

// Enemy представляет рядового врага любого вида.
type Enemy struct {
	Kind    defs.EnemyKind
	State   EnemyState
	HP      int
	Counter int // кадров с момента появления
	Dead    bool

	// Случайные параметры рядового врага. На поведение не влияют.
	Bound    int
	Interval int
}

// NewEnemy создает врага по определению из defs.EnemyLibrary.
func NewEnemy(def defs.EnemyDefinition) *Enemy {
	return &Enemy{Kind: def.Kind, State: EnemyDescending, HP: def.HP}
}

// Active — враг отсидел задержку и движется.
func (e *Enemy) Active(def defs.EnemyDefinition) bool {
	return e.Counter >= def.ActivationDelay
}

// Damage снимает одну единицу здоровья и возвращает true, если враг погиб.
func (e *Enemy) Damage() bool {
	if e.Dead {
		return true
	}
	e.HP--
	if e.HP <= 0 {
		e.Dead = true
	}
	return e.Dead
}

// BossPhase — состояние босса. Из Stopped назад не возвращается.
type BossPhase int

const (
	BossMoving BossPhase = iota
	BossStopped
)

// Boss — единственный босс партии.
type Boss struct {
	Phase        BossPhase
	Health       int
	Bound        float64 // x центра, на котором босс останавливается
	BeamInterval int
	LastShotTick int
}

// Damage снимает единицу здоровья; true — босс повержен.
func (b *Boss) Damage() bool {
	b.Health--
	return b.Health <= 0
}
