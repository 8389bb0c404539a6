// internal/sound/sound.go
package sound

import (
	"math"

	"go-kokaton-musou/internal/component"
	"go-kokaton-musou/internal/event"
)

// SampleRate — частота дискретизации PCM.
const SampleRate = 44100

// Tone — короткий синтезированный сигнал.
type Tone struct {
	Freq     float64
	Duration float64 // секунды
}

var (
	ToneKill      = Tone{Freq: 880, Duration: 0.08}
	ToneBomb      = Tone{Freq: 660, Duration: 0.05}
	ToneItem      = Tone{Freq: 1320, Duration: 0.15}
	ToneBossHit   = Tone{Freq: 330, Duration: 0.06}
	ToneBossDown  = Tone{Freq: 1100, Duration: 0.4}
	ToneGameOver  = Tone{Freq: 220, Duration: 0.5}
	ToneChargeHit = Tone{Freq: 1560, Duration: 0.12}
)

// BeepPCM синтезирует синус с экспоненциальным затуханием:
// 16 бит, стерео, little-endian.
func BeepPCM(t Tone) []byte {
	n := int(float64(SampleRate) * t.Duration)
	buf := make([]byte, n*4)
	for i := 0; i < n; i++ {
		sec := float64(i) / SampleRate
		envelope := math.Pow(math.E, -3*sec)
		v := int16(math.Sin(2*math.Pi*t.Freq*sec) * 6000 * envelope)
		for ch := 0; ch < 2; ch++ {
			idx := i*4 + ch*2
			buf[idx] = byte(v)
			buf[idx+1] = byte(v >> 8)
		}
	}
	return buf
}

// ToneFor сопоставляет событию звук. ok == false — событие беззвучно.
func ToneFor(e event.Event) (Tone, bool) {
	switch e.Type {
	case event.EnemyKilled:
		return ToneKill, true
	case event.BombDestroyed:
		return ToneBomb, true
	case event.ItemCollected:
		return ToneItem, true
	case event.BossDamaged:
		return ToneBossHit, true
	case event.BossDefeated:
		return ToneBossDown, true
	case event.ChargeShotFired:
		return ToneChargeHit, true
	case event.SessionEnded:
		if data, ok := e.Data.(event.SessionData); ok && data.Outcome == component.PhaseGameClear.String() {
			return Tone{}, false
		}
		return ToneGameOver, true
	}
	return Tone{}, false
}

// Events — события, на которые подписываются Cues.
var Events = []event.EventType{
	event.EnemyKilled,
	event.BombDestroyed,
	event.ItemCollected,
	event.BossDamaged,
	event.BossDefeated,
	event.ChargeShotFired,
	event.SessionEnded,
}

// Output воспроизводит тон.
type Output interface {
	Play(t Tone)
}

// Cues превращает события партии в звуки.
type Cues struct {
	out   Output
	muted bool
}

// NewCues создаёт озвучку поверх out. При muted == true out не вызывается.
func NewCues(out Output, muted bool) *Cues {
	return &Cues{out: out, muted: muted}
}

// OnEvent реализует интерфейс event.Listener.
func (c *Cues) OnEvent(e event.Event) {
	if c.muted || c.out == nil {
		return
	}
	if tone, ok := ToneFor(e); ok {
		c.out.Play(tone)
	}
}

// Attach подписывает озвучку на события диспетчера.
func (c *Cues) Attach(d *event.Dispatcher) {
	d.SubscribeAll(c, Events...)
}
