package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/herring/internal/core"
	"github.com/vovakirdan/herring/internal/games/herring"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorRed:          lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:        lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:         lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorCyan:         lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:        lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightGreen:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightCyan:   lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorBrightWhite:  lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	core.ColorOrange:       lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// Glyphs used by the renderer.
const (
	glyphPipe        = '█'
	glyphPipeCapTop  = '▄'
	glyphPipeCapBot  = '▀'
	glyphHazard      = '●'
	glyphPowerup     = '★'
	glyphPlayerBody  = '='
	glyphPlayerTail  = '<'
	glyphPlayerLevel = '>'
	glyphPlayerUp    = '/'
	glyphPlayerDown  = '\\'
)

// Rotation beyond which the player is drawn climbing or diving.
const tiltThreshold = 8.0

// hudRows is the number of rows above the playfield.
const hudRows = 1

// projEpsilon absorbs float error when field units land exactly on a cell edge.
const projEpsilon = 1e-9

// Renderer projects a herring.Scene onto a core.Screen.
// Row 0 is the HUD and the remaining rows show the field scaled to fit.
type Renderer struct {
	screen *core.Screen
	scaleX float64
	scaleY float64
}

// NewRenderer creates a renderer drawing into screen.
func NewRenderer(screen *core.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Draw clears the screen and draws scene. When paused is set the pause
// overlay is drawn on top of the frozen frame.
func (r *Renderer) Draw(scene herring.Scene, paused bool) {
	s := r.screen
	s.Clear()
	if s.Width() == 0 || s.Height() <= hudRows {
		return
	}
	r.fit(scene)

	for _, p := range scene.Obstacles {
		r.drawPipe(p, scene)
	}
	for _, p := range scene.Powerups {
		if p.Collected {
			continue
		}
		r.fillBox(p.Box(), glyphPowerup, core.ColorBrightYellow)
	}
	for _, h := range scene.Hazards {
		r.fillBox(h.Box(), glyphHazard, core.ColorOrange)
	}
	r.drawPlayer(scene)
	r.drawHUD(scene)

	switch {
	case paused:
		r.drawMessage([]string{"PAUSED", "", "Press P to resume"}, core.ColorBrightCyan)
	case scene.State == herring.StateNotStarted:
		r.drawMessage([]string{"HERRING", "", "Press SPACE or Click to Start"}, core.ColorBrightWhite)
	case scene.State == herring.StateGameOver:
		r.drawMessage([]string{
			"Game Over!",
			fmt.Sprintf("Score: %d", scene.Score),
			"",
			"Click or press SPACE to restart",
		}, core.ColorRed)
	}
}

func (r *Renderer) fit(scene herring.Scene) {
	r.scaleX, r.scaleY = 0, 0
	if scene.FieldW > 0 {
		r.scaleX = float64(r.screen.Width()) / scene.FieldW
	}
	if scene.FieldH > 0 {
		r.scaleY = float64(r.screen.Height()-hudRows) / scene.FieldH
	}
}

// cols returns the half-open column span covered by [x, x+w).
func (r *Renderer) cols(x, w float64) (int, int) {
	c0 := int(math.Floor(x*r.scaleX + projEpsilon))
	c1 := int(math.Ceil((x+w)*r.scaleX - projEpsilon))
	if c1 <= c0 {
		c1 = c0 + 1
	}
	return c0, c1
}

// rows returns the half-open screen row span covered by [y, y+h).
func (r *Renderer) rows(y, h float64) (int, int) {
	r0 := int(math.Floor(y*r.scaleY+projEpsilon)) + hudRows
	r1 := int(math.Ceil((y+h)*r.scaleY-projEpsilon)) + hudRows
	if r1 <= r0 {
		r1 = r0 + 1
	}
	return r0, r1
}

// row maps a field Y coordinate to a screen row.
func (r *Renderer) row(y float64) int {
	return int(math.Round(y*r.scaleY)) + hudRows
}

func (r *Renderer) fillBox(b core.Box, glyph rune, c core.Color) {
	c0, c1 := r.cols(b.X, b.W)
	r0, r1 := r.rows(b.Y, b.H)
	r0 = max(r0, hudRows)
	for y := r0; y < r1; y++ {
		for x := c0; x < c1; x++ {
			r.screen.SetColored(x, y, glyph, c)
		}
	}
}

func (r *Renderer) drawPipe(p herring.Obstacle, scene herring.Scene) {
	c0, c1 := r.cols(p.X, scene.PipeWidth)
	gapTop := r.row(p.GapY - scene.GapHeight/2)
	gapBot := r.row(p.GapY + scene.GapHeight/2)
	bottom := r.screen.Height()

	for x := c0; x < c1; x++ {
		for y := hudRows; y < gapTop; y++ {
			r.screen.SetColored(x, y, glyphPipe, core.ColorGreen)
		}
		for y := max(gapBot, hudRows); y < bottom; y++ {
			r.screen.SetColored(x, y, glyphPipe, core.ColorGreen)
		}
		if gapTop-1 >= hudRows {
			r.screen.SetColored(x, gapTop-1, glyphPipeCapTop, core.ColorBrightGreen)
		}
		if gapBot >= hudRows && gapBot < bottom {
			r.screen.SetColored(x, gapBot, glyphPipeCapBot, core.ColorBrightGreen)
		}
	}
}

func (r *Renderer) drawPlayer(scene herring.Scene) {
	p := scene.Player
	c0, c1 := r.cols(p.X, p.Width)
	r0, r1 := r.rows(p.Y, p.Height)

	color := core.ColorCyan
	if p.Invincible {
		color = core.ColorBrightYellow
		// Flicker during the last second so the expiry is visible.
		if scene.InvincibleLeftMs < 1000 && (scene.Ticks/6)%2 == 1 {
			color = core.ColorYellow
		}
	}

	head := glyphPlayerLevel
	switch {
	case p.Rotation < -tiltThreshold:
		head = glyphPlayerUp
	case p.Rotation > tiltThreshold:
		head = glyphPlayerDown
	}

	for y := max(r0, hudRows); y < r1; y++ {
		for x := c0; x < c1; x++ {
			g := glyphPlayerBody
			switch x {
			case c1 - 1:
				g = head
			case c0:
				g = glyphPlayerTail
			}
			r.screen.SetColored(x, y, g, color)
		}
	}
}

func (r *Renderer) drawHUD(scene herring.Scene) {
	s := r.screen
	s.DrawHLine(0, 0, s.Width(), ' ', core.ColorDefault)
	s.DrawTextColored(1, 0, fmt.Sprintf("Score: %d", scene.Score), core.ColorBrightWhite)

	if scene.Player.Invincible && scene.InvincibleLeftMs > 0 {
		text := fmt.Sprintf("%c %.1fs", glyphPowerup, float64(scene.InvincibleLeftMs)/1000)
		x := s.Width() - len([]rune(text)) - 1
		s.DrawTextColored(max(x, 0), 0, text, core.ColorBrightYellow)
	}
}

// drawMessage draws a framed box of centered lines in the middle of the playfield.
func (r *Renderer) drawMessage(lines []string, c core.Color) {
	s := r.screen
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	boxW := min(width+4, s.Width())
	boxH := min(len(lines)+2, s.Height()-hudRows)
	x := (s.Width() - boxW) / 2
	y := hudRows + (s.Height()-hudRows-boxH)/2

	box := core.NewRect(x, y, boxW, boxH)
	s.DrawRect(box, ' ', core.ColorDefault)
	s.DrawBox(box, core.ColorWhite)
	for i, l := range lines {
		s.DrawTextCentered(y+1+i, l, c)
	}
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same color share one style run.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[start]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
