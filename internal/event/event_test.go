package event

import "testing"

type recorder struct {
	got []EventType
}

func (r *recorder) OnEvent(e Event) { r.got = append(r.got, e.Type) }

func TestDispatcher(t *testing.T) {
	d := NewDispatcher()
	a, b := &recorder{}, &recorder{}
	d.SubscribeAll(a, EnemyKilled, BossDefeated)
	d.Subscribe(EnemyKilled, b)

	d.Dispatch(Event{Type: EnemyKilled, Data: KillData{Points: 10}})
	d.Dispatch(Event{Type: BossDefeated})
	d.Dispatch(Event{Type: ItemExpired})

	if len(a.got) != 2 || a.got[0] != EnemyKilled || a.got[1] != BossDefeated {
		t.Errorf("listener a got %v", a.got)
	}
	if len(b.got) != 1 {
		t.Errorf("listener b got %v", b.got)
	}

	d.Unsubscribe(EnemyKilled, b)
	d.Dispatch(Event{Type: EnemyKilled})
	if len(b.got) != 1 {
		t.Errorf("unsubscribed listener still receives events: %v", b.got)
	}
	if len(a.got) != 3 {
		t.Errorf("listener a lost its subscription: %v", a.got)
	}
}
