package component

import (
	"testing"

	"go-kokaton-musou/internal/config"
	"go-kokaton-musou/internal/defs"
)

func TestPlayerCharging(t *testing.T) {
	tests := []struct {
		name        string
		ticks       int
		wantCharged bool
	}{
		{"tap", 0, false},
		{"at threshold", config.ChargeThreshold, false},
		{"over threshold", config.ChargeThreshold + 1, true},
		{"long hold", 500, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPlayer(0)
			p.ChargeTicks = 99
			p.StartCharging()
			if !p.Charging || p.ChargeTicks != 0 {
				t.Fatalf("StartCharging() left Charging=%v ChargeTicks=%d", p.Charging, p.ChargeTicks)
			}
			p.ChargeTicks = tc.ticks
			if got := p.StopCharging(); got != tc.wantCharged {
				t.Errorf("StopCharging() after %d ticks = %v, expected %v", tc.ticks, got, tc.wantCharged)
			}
			if p.Charging {
				t.Error("player still charging after StopCharging()")
			}
		})
	}
}

func TestChargeRadiusCapped(t *testing.T) {
	p := NewPlayer(1)
	if r := p.ChargeRadius(); r != 0 {
		t.Errorf("idle ChargeRadius() = %d, expected 0", r)
	}
	p.StartCharging()
	p.ChargeTicks = 20
	if r := p.ChargeRadius(); r != 20 {
		t.Errorf("ChargeRadius() = %d, expected 20", r)
	}
	p.ChargeTicks = 400
	if r := p.ChargeRadius(); r != config.ChargeRadiusMax {
		t.Errorf("ChargeRadius() = %d, expected cap %d", r, config.ChargeRadiusMax)
	}
}

func TestEliteDamage(t *testing.T) {
	e := NewEnemy(defs.EnemyDef(defs.EnemyElite))
	if e.HP != config.EliteHP {
		t.Fatalf("elite HP = %d, expected %d", e.HP, config.EliteHP)
	}
	prev := e.HP
	for i := 1; i <= config.EliteHP; i++ {
		dead := e.Damage()
		if e.HP > prev {
			t.Fatalf("HP increased: %d -> %d", prev, e.HP)
		}
		prev = e.HP
		if wantDead := i == config.EliteHP; dead != wantDead {
			t.Fatalf("hit %d: Damage() = %v, expected %v (HP %d)", i, dead, wantDead, e.HP)
		}
	}
}

func TestItemExpiry(t *testing.T) {
	it := &Item{SpawnTick: 100, Lifetime: config.ItemLifetimeTicks}
	if it.Expired(100 + config.ItemLifetimeTicks) {
		t.Error("item expired exactly at its lifetime; it must outlive it strictly")
	}
	if !it.Expired(101 + config.ItemLifetimeTicks) {
		t.Error("item not expired after its lifetime")
	}
}

func TestPhaseTerminal(t *testing.T) {
	if PhasePlaying.Terminal() {
		t.Error("playing must not be terminal")
	}
	for _, p := range []Phase{PhaseGameOver, PhaseBossDefeat, PhaseGameClear} {
		if !p.Terminal() {
			t.Errorf("%s must be terminal", p)
		}
	}
}
