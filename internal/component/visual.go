// internal/component/visual.go
package component

// Explosion — вспышка на месте уничтоженной сущности.
type Explosion struct {
	Life  int // оставшихся кадров, сущность удаляется при Life < 0
	Frame int // 0 или 1
}

// Item — подбираемое усиление.
type Item struct {
	SpawnTick  int
	Lifetime   int
	SpeedBonus float64
}

// Expired — предмет пролежал дольше своего срока.
func (i *Item) Expired(tick int) bool {
	return tick-i.SpawnTick > i.Lifetime
}
