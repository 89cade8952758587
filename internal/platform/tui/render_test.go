package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/herring/internal/core"
	"github.com/vovakirdan/herring/internal/games/herring"
)

// testScene lays out one of everything on the default 400x600 field.
// On an 80x25 screen one cell is 5 units wide and 25 units tall.
func testScene() herring.Scene {
	return herring.Scene{
		FieldW:    400,
		FieldH:    600,
		PipeWidth: 50,
		GapHeight: 150,
		Player: herring.PlayerView{
			X: 100, Y: 300, Width: 40, Height: 30,
		},
		Obstacles: []herring.Obstacle{{X: 200, GapY: 300}},
		Hazards:   []herring.Hazard{{X: 300, Y: 100, Size: 30}},
		Powerups:  []herring.Powerup{{X: 340, Y: 500, Size: 30}},
		Score:     3,
		State:     herring.StatePlaying,
	}
}

func drawTestScene(scene herring.Scene, paused bool) *core.Screen {
	screen := core.NewScreen(80, 25)
	NewRenderer(screen).Draw(scene, paused)
	return screen
}

func TestRendererHUD(t *testing.T) {
	screen := drawTestScene(testScene(), false)

	if row := screen.Row(0); !strings.Contains(row, "Score: 3") {
		t.Errorf("HUD row = %q, expected the score", row)
	}
}

func TestRendererPipe(t *testing.T) {
	screen := drawTestScene(testScene(), false)

	tests := []struct {
		name  string
		y     int
		glyph rune
		color core.Color
	}{
		{"top body", 1, glyphPipe, core.ColorGreen},
		{"top cap", 9, glyphPipeCapTop, core.ColorBrightGreen},
		{"gap", 12, ' ', core.ColorDefault},
		{"bottom cap", 16, glyphPipeCapBot, core.ColorBrightGreen},
		{"bottom body", 24, glyphPipe, core.ColorGreen},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, x := range []int{40, 49} {
				cell := screen.GetCell(x, tt.y)
				if cell.Rune != tt.glyph || cell.Color != tt.color {
					t.Errorf("cell (%d,%d) = %q/%v, expected %q/%v",
						x, tt.y, cell.Rune, cell.Color, tt.glyph, tt.color)
				}
			}
		})
	}

	if got := screen.Get(50, 1); got == glyphPipe {
		t.Error("Pipe should end at column 49")
	}
}

func TestRendererEntities(t *testing.T) {
	screen := drawTestScene(testScene(), false)

	if cell := screen.GetCell(60, 5); cell.Rune != glyphHazard || cell.Color != core.ColorOrange {
		t.Errorf("hazard cell = %q/%v", cell.Rune, cell.Color)
	}
	if cell := screen.GetCell(70, 22); cell.Rune != glyphPowerup || cell.Color != core.ColorBrightYellow {
		t.Errorf("powerup cell = %q/%v", cell.Rune, cell.Color)
	}
	if got := screen.Get(20, 13); got != glyphPlayerTail {
		t.Errorf("player tail = %q, expected %q", got, glyphPlayerTail)
	}
	if got := screen.Get(27, 13); got != glyphPlayerLevel {
		t.Errorf("player head = %q, expected %q", got, glyphPlayerLevel)
	}
	if got := screen.GetCell(24, 14).Color; got != core.ColorCyan {
		t.Errorf("player color = %v, expected cyan", got)
	}
}

func TestRendererSkipsCollectedPowerup(t *testing.T) {
	scene := testScene()
	scene.Powerups[0].Collected = true
	screen := drawTestScene(scene, false)

	if got := screen.Get(70, 22); got == glyphPowerup {
		t.Error("Collected powerup should not be drawn")
	}
}

func TestRendererPlayerTilt(t *testing.T) {
	tests := []struct {
		rotation float64
		head     rune
	}{
		{-25, glyphPlayerUp},
		{0, glyphPlayerLevel},
		{5, glyphPlayerLevel},
		{25, glyphPlayerDown},
	}

	for _, tt := range tests {
		scene := testScene()
		scene.Player.Rotation = tt.rotation
		screen := drawTestScene(scene, false)

		if got := screen.Get(27, 13); got != tt.head {
			t.Errorf("rotation %v: head = %q, expected %q", tt.rotation, got, tt.head)
		}
	}
}

func TestRendererInvincibility(t *testing.T) {
	scene := testScene()
	scene.Player.Invincible = true
	scene.InvincibleLeftMs = 3000
	screen := drawTestScene(scene, false)

	if got := screen.GetCell(24, 13).Color; got != core.ColorBrightYellow {
		t.Errorf("invincible player color = %v, expected bright yellow", got)
	}
	if row := screen.Row(0); !strings.Contains(row, "3.0s") {
		t.Errorf("HUD row = %q, expected the invincibility countdown", row)
	}
}

func TestRendererOverlays(t *testing.T) {
	tests := []struct {
		name   string
		state  herring.State
		paused bool
		want   []string
	}{
		{"not started", herring.StateNotStarted, false, []string{"Press SPACE or Click to Start"}},
		{"game over", herring.StateGameOver, false, []string{"Game Over!", "Score: 3", "Click or press SPACE to restart"}},
		{"paused", herring.StatePlaying, true, []string{"PAUSED"}},
		{"playing", herring.StatePlaying, false, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scene := testScene()
			scene.State = tt.state
			out := drawTestScene(scene, tt.paused).String()

			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("screen should contain %q", w)
				}
			}
			if tt.want == nil && strings.Contains(out, "┌") {
				t.Error("No overlay expected while playing")
			}
		})
	}
}

func TestRendererTinyScreens(t *testing.T) {
	for _, size := range [][2]int{{0, 0}, {1, 1}, {3, 2}, {80, 1}} {
		screen := core.NewScreen(size[0], size[1])
		NewRenderer(screen).Draw(testScene(), true)
	}
}

func TestRenderScreen(t *testing.T) {
	screen := drawTestScene(testScene(), false)
	out := RenderScreen(screen)

	if lines := strings.Count(out, "\n") + 1; lines != screen.Height() {
		t.Errorf("RenderScreen produced %d lines, expected %d", lines, screen.Height())
	}
	if !strings.Contains(out, "Score: 3") {
		t.Error("RenderScreen output should contain the HUD text")
	}
}
