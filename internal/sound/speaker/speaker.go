// Package speaker выводит тоны через ebiten/audio.
package speaker

import (
	"github.com/hajimehoshi/ebiten/v2/audio"

	"go-kokaton-musou/internal/sound"
)

var sharedContext *audio.Context

// Speaker кэширует по одному audio.Player на тон.
type Speaker struct {
	ctx     *audio.Context
	players map[sound.Tone]*audio.Player
}

// New создаёт динамик. Аудиоконтекст в процессе может быть только один,
// поэтому он создаётся при первом вызове и переиспользуется.
func New() *Speaker {
	if sharedContext == nil {
		sharedContext = audio.NewContext(sound.SampleRate)
	}
	return &Speaker{ctx: sharedContext, players: make(map[sound.Tone]*audio.Player)}
}

// Play перематывает и запускает тон.
func (s *Speaker) Play(t sound.Tone) {
	p, ok := s.players[t]
	if !ok {
		p = s.ctx.NewPlayerFromBytes(sound.BeepPCM(t))
		s.players[t] = p
	}
	p.Rewind()
	p.Play()
}
