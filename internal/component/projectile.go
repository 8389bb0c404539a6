// internal/component/projectile.go
package component

// ProjectileKind — чей это снаряд.
type ProjectileKind int

const (
	ProjectileBeam     ProjectileKind = iota // луч игрока
	ProjectileBomb                           // бомба бомбардировщика
	ProjectileBossBeam                       // луч босса
)

// Projectile представляет летящий снаряд. Скорость хранится в Velocity.
type Projectile struct {
	Kind    ProjectileKind
	Owner   int // индекс игрока для лучей
	Damage  int
	Charged bool
}
