package console

import (
	"strings"
	"testing"

	"go-lane-defense/internal/app"
	"go-lane-defense/internal/defs"
	"go-lane-defense/internal/event"
	"go-lane-defense/internal/utils"

	"github.com/gdamore/tcell/v2"
)

func newConsole(t *testing.T) (*Console, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(100, 30)

	factory := app.NewFactory(app.WithRandom(utils.NewSequenceSource(0)))
	return New(screen, factory, nil, nil), screen
}

// rowText reads back one screen row.
func rowText(screen tcell.SimulationScreen, y, width int) string {
	var sb strings.Builder
	for x := 0; x < width; x++ {
		r, _, _, _ := screen.GetContent(x, y)
		if r == 0 {
			r = ' '
		}
		sb.WriteRune(r)
	}
	return strings.TrimRight(sb.String(), " ")
}

func press(c *Console, keys string) {
	for _, r := range keys {
		c.HandleKey(tcell.KeyRune, r)
	}
}

func TestStartsFirstWave(t *testing.T) {
	c, screen := newConsole(t)
	c.Draw()

	if got := rowText(screen, 1, 100); !strings.HasPrefix(got, "TURN 1 | Wave 1/5 | Gold: 150 | Lives: 10") {
		t.Errorf("Got status row %q", got)
	}
	if got := rowText(screen, boardTop, 100); got != "Lane 1 | G > > > > > |" {
		t.Errorf("Got lane row %q", got)
	}
	if len(c.messages) == 0 || c.messages[0] != "WAVE 1 INCOMING" {
		t.Errorf("Event log = %v", c.messages)
	}
}

func TestCursorPlacement(t *testing.T) {
	c, screen := newConsole(t)

	press(c, "ll") // column 2
	c.HandleKey(tcell.KeyEnter, 0)
	if c.game.Gold() != 100 {
		t.Fatalf("Got gold %d after Arrow Tower", c.game.Gold())
	}

	press(c, "2 ")
	if c.status != "Tower already there." {
		t.Errorf("Got status %q on occupied cell", c.status)
	}

	c.HandleKey(tcell.KeyDown, 0)
	press(c, " ")
	if c.game.Gold() != 20 {
		t.Errorf("Got gold %d after Cannon Tower", c.game.Gold())
	}
	press(c, "j ")
	if c.status != "Not enough gold." {
		t.Errorf("Got status %q with 20 gold", c.status)
	}

	c.Draw()
	if got := rowText(screen, boardTop+1, 100); got != "Lane 2 | G > C > > > |" {
		t.Errorf("Got lane row %q", got)
	}
}

func TestCursorClamps(t *testing.T) {
	c, _ := newConsole(t)
	press(c, "hhhkkk")
	if c.cursorLane != 0 || c.cursorCol != 0 {
		t.Errorf("Cursor at %d,%d, want 0,0", c.cursorLane, c.cursorCol)
	}
	press(c, "llllllllljjjjj")
	if c.cursorLane != 2 || c.cursorCol != 5 {
		t.Errorf("Cursor at %d,%d, want 2,5", c.cursorLane, c.cursorCol)
	}
}

func TestEndTurnAndEventLog(t *testing.T) {
	c, _ := newConsole(t)
	press(c, "ll ")
	press(c, "e")

	if c.game.Turn() != 2 {
		t.Errorf("Got turn %d after e", c.game.Turn())
	}
	found := false
	for _, m := range c.messages {
		if m == "Arrow Tower hits Goblin for 10 damage" {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected attack in event log, got %v", c.messages)
	}
}

func TestForfeitRestartQuit(t *testing.T) {
	c, screen := newConsole(t)
	first := c.game.ID()

	press(c, "r")
	if c.game.ID() != first {
		t.Error("r should not restart a running game")
	}

	c.HandleKey(tcell.KeyEscape, 0)
	if !c.game.Lost() || c.Quit() {
		t.Fatal("Esc should forfeit before quitting")
	}
	c.Draw()
	found := false
	for y := 0; y < 30; y++ {
		if rowText(screen, y, 100) == "GAME OVER. The monsters broke through." {
			found = true
		}
	}
	if !found {
		t.Error("Expected game over banner")
	}

	press(c, "r")
	if c.game.ID() == first || c.game.IsGameOver() || c.game.Wave() != 1 {
		t.Error("r should start a fresh game after game over")
	}

	c.HandleKey(tcell.KeyEscape, 0)
	press(c, "q")
	if !c.Quit() {
		t.Error("q after game over should quit")
	}
}

func TestSelectTowerByNumber(t *testing.T) {
	c, _ := newConsole(t)
	press(c, "2")
	if c.selected != defs.TowerCannon {
		t.Errorf("Selected %v after 2", c.selected)
	}
	press(c, "x")
	if c.selected != defs.TowerCannon {
		t.Error("Unknown key changed the selection")
	}
}

func TestEventLogIsBounded(t *testing.T) {
	c, _ := newConsole(t)
	for i := 0; i < 20; i++ {
		c.OnEvent(event.Event{Type: event.WaveSpawned, Data: event.WaveData{Wave: i}})
	}
	if len(c.messages) != 8 || c.messages[7] != "WAVE 19 INCOMING" {
		t.Errorf("Got log %v", c.messages)
	}
}

func TestToneFor(t *testing.T) {
	if _, ok := toneFor(event.TowerAttacked); ok {
		t.Error("Attacks should be silent")
	}
	escaped, ok := toneFor(event.MonsterEscaped)
	if !ok {
		t.Fatal("Expected a tone for escapes")
	}
	defeated, _ := toneFor(event.MonsterDefeated)
	if escaped.freq >= defeated.freq {
		t.Error("Escape cue should be lower than the defeat cue")
	}
	var s *Sound
	s.OnEvent(event.Event{Type: event.GameWon}) // nil sound is silent
	s.Close()
}
