package event

import "testing"

type recorder struct {
	got []EventType
}

func (r *recorder) OnEvent(e Event) {
	r.got = append(r.got, e.Type)
}

func TestDispatchReachesSubscribers(t *testing.T) {
	d := NewDispatcher()
	kills := &recorder{}
	all := &recorder{}
	d.Subscribe(EnemyKilled, kills)
	d.SubscribeAll(all)

	d.Dispatch(Event{Type: EnemyKilled})
	d.Dispatch(Event{Type: WaveCleared})

	if len(kills.got) != 1 || kills.got[0] != EnemyKilled {
		t.Fatalf("typed listener got %v", kills.got)
	}
	if len(all.got) != 2 {
		t.Fatalf("catch-all listener got %v", all.got)
	}
}

func TestUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	a, b := &recorder{}, &recorder{}
	d.Subscribe(EnemyBreached, a)
	d.Subscribe(EnemyBreached, b)
	d.Unsubscribe(EnemyBreached, a)

	d.Dispatch(Event{Type: EnemyBreached})
	if len(a.got) != 0 {
		t.Fatalf("unsubscribed listener still notified")
	}
	if len(b.got) != 1 {
		t.Fatalf("remaining listener not notified")
	}
}
