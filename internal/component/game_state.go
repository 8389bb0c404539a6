package component

// Phase — состояние партии. Все состояния, кроме Playing, поглощающие.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseGameOver
	PhaseBossDefeat // игрока сбил луч босса
	PhaseGameClear
)

// Terminal — партия закончена.
func (p Phase) Terminal() bool {
	return p != PhasePlaying
}

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	case PhaseBossDefeat:
		return "boss_defeat"
	case PhaseGameClear:
		return "game_clear"
	default:
		return "unknown"
	}
}
