package event

import "testing"

type recorder struct {
	got []Event
}

func (r *recorder) OnEvent(e Event) { r.got = append(r.got, e) }

func TestDispatchOrderAndFiltering(t *testing.T) {
	d := NewDispatcher()
	escaped := &recorder{}
	all := &recorder{}
	var order []string

	d.Subscribe(MonsterEscaped, escaped)
	d.Subscribe(MonsterEscaped, ListenerFunc(func(Event) { order = append(order, "first") }))
	d.Subscribe(MonsterEscaped, ListenerFunc(func(Event) { order = append(order, "second") }))
	d.SubscribeAll(all)

	d.DispatchAll([]Event{
		{Type: MonsterEscaped, Data: MonsterData{MonsterName: "Goblin"}},
		{Type: MonsterDefeated, Data: MonsterData{MonsterName: "Ogre", Gold: 10}},
	})

	if len(escaped.got) != 1 {
		t.Errorf("Escaped listener got %d events, want 1", len(escaped.got))
	}
	if len(all.got) != 2 {
		t.Errorf("Catch-all listener got %d events, want 2", len(all.got))
	}
	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Errorf("Listeners ran in order %v", order)
	}
}

func TestMessage(t *testing.T) {
	tests := []struct {
		e    Event
		want string
	}{
		{Event{Type: TowerAttacked, Data: AttackData{TowerName: "Arrow Tower", MonsterName: "Goblin", Damage: 10}}, "Arrow Tower hits Goblin for 10 damage"},
		{Event{Type: MonsterEscaped, Data: MonsterData{MonsterName: "Ogre"}}, "Ogre escaped! Lives -1"},
		{Event{Type: MonsterDefeated, Data: MonsterData{MonsterName: "Goblin", Gold: 10}}, "Goblin defeated! +10 gold"},
		{Event{Type: WaveSpawned, Data: WaveData{Wave: 3}}, "WAVE 3 INCOMING"},
		{Event{Type: GameLost, Data: WaveData{Wave: 2}}, "GAME OVER. The monsters broke through."},
		{Event{Type: TowerPlaced, Data: TowerData{TowerName: "Cannon Tower"}}, "Cannon Tower placed."},
		{Event{Type: "Custom"}, "Custom"},
	}
	for _, tc := range tests {
		if got := Message(tc.e); got != tc.want {
			t.Errorf("Message(%s) = %q, want %q", tc.e.Type, got, tc.want)
		}
	}
}
