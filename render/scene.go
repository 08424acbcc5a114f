package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/yoke-trace/engine"
	"github.com/lixenwraith/yoke-trace/mechanism"
	"github.com/lixenwraith/yoke-trace/parameter"
)

var (
	railStyle    = tcell.StyleDefault.Foreground(tcell.NewRGBColor(70, 70, 80))
	linkXStyle   = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	linkYStyle   = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	sliderStyle  = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	traceStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	hudStyle     = tcell.StyleDefault.Foreground(tcell.NewRGBColor(100, 100, 110))
	hudWarnStyle = tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 200, 50))
)

// Scene maps mechanism space onto a terminal cell grid and draws frames.
// The view is recomputed on resize to keep the crank envelope plus margin
// on screen with the terminal cell 1:2 aspect corrected.
type Scene struct {
	width, height int
	scale         float64 // rows per world unit
	originX       float64 // screen column of world (0,0)
	originY       float64 // screen row of world (0,0)
	worldW        float64 // world half-width including margin
	worldH        float64 // world half-height including margin
}

// NewScene builds a scene for the given mechanism extents and screen size
func NewScene(params mechanism.Params, width, height int) *Scene {
	s := &Scene{
		worldW: math.Max(params.Rx, params.Ry) + parameter.ViewMargin,
		worldH: math.Max(params.Rx, params.Ry) + parameter.ViewMargin,
	}
	s.Resize(width, height)
	return s
}

// Resize refits the view to a new screen size
func (s *Scene) Resize(width, height int) {
	s.width = width
	s.height = height

	viewH := float64(height - parameter.HUDRows)
	viewW := float64(width)

	// rows per world unit, limited by whichever axis is tighter
	sy := viewH / (2 * s.worldH)
	sx := viewW / (2 * s.worldW * parameter.CellAspect)
	s.scale = math.Min(sx, sy)

	s.originX = viewW / 2
	s.originY = viewH / 2
}

// project maps a world point to a screen cell. Y grows downward on screen.
func (s *Scene) project(p mechanism.Point) (int, int) {
	x := s.originX + p.X*s.scale*parameter.CellAspect
	y := s.originY - p.Y*s.scale
	return int(math.Round(x)), int(math.Round(y))
}

func (s *Scene) set(screen tcell.Screen, x, y int, r rune, style tcell.Style) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height-parameter.HUDRows {
		return
	}
	screen.SetContent(x, y, r, nil, style)
}

// line walks cells from (x0,y0) to (x1,y1) stepping the dominant axis once
// per cell, so segments stay gap-free at any angle
func (s *Scene) line(screen tcell.Screen, x0, y0, x1, y1 int, r rune, style tcell.Style) {
	dx, dy := x1-x0, y1-y0
	steps := max(abs(dx), abs(dy))
	if steps == 0 {
		s.set(screen, x0, y0, r, style)
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := x0 + int(math.Round(float64(dx)*t))
		y := y0 + int(math.Round(float64(dy)*t))
		s.set(screen, x, y, r, style)
	}
}

// Draw renders one frame: slider rails, crank links, slider blocks, trail,
// trace point, HUD
func (s *Scene) Draw(screen tcell.Screen, f engine.Frame, paused bool) {
	screen.Clear()

	s.drawRails(screen)
	s.drawTrail(screen, f.Trail)

	ox, oy := s.project(mechanism.Point{})

	px, py := s.project(f.PinX)
	s.line(screen, ox, oy, px, py, '·', linkXStyle)
	s.set(screen, px, py, 'o', linkXStyle)

	px, py = s.project(f.PinY)
	s.line(screen, ox, oy, px, py, '·', linkYStyle)
	s.set(screen, px, py, 'o', linkYStyle)

	sx, sy := s.project(f.SliderX)
	s.set(screen, sx, sy, '▣', sliderStyle)
	sx, sy = s.project(f.SliderY)
	s.set(screen, sx, sy, '▣', sliderStyle)

	tx, ty := s.project(f.Trace)
	s.set(screen, tx, ty, '●', traceStyle)

	s.drawHUD(screen, f, paused)
	screen.Show()
}

func (s *Scene) drawRails(screen tcell.Screen) {
	ox, oy := s.project(mechanism.Point{})
	for x := 0; x < s.width; x++ {
		s.set(screen, x, oy, '─', railStyle)
	}
	for y := 0; y < s.height-parameter.HUDRows; y++ {
		s.set(screen, ox, y, '│', railStyle)
	}
	s.set(screen, ox, oy, '┼', railStyle)
}

func (s *Scene) drawTrail(screen tcell.Screen, points []mechanism.Point) {
	n := len(points)
	for i, p := range points {
		// oldest point dimmest, newest brightest
		age := 1.0
		if n > 1 {
			age = float64(i) / float64(n-1)
		}
		intensity := parameter.TrailFadeFloor + (1-parameter.TrailFadeFloor)*age
		v := int32(intensity * 255)
		style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(v/2, v, v/2))
		x, y := s.project(p)
		s.set(screen, x, y, '░', style)
	}
}

func (s *Scene) drawHUD(screen tcell.Screen, f engine.Frame, paused bool) {
	y := s.height - 1
	hud := fmt.Sprintf(" t=%6.2f  frame %4d  trail %d  space:pause  r:reset  q:quit", f.T, f.Index, len(f.Trail))
	writeString(screen, 0, y, hud, hudStyle)
	if paused {
		writeString(screen, s.width-9, y, "[PAUSED]", hudWarnStyle)
	}
}

func writeString(screen tcell.Screen, x, y int, str string, style tcell.Style) {
	for _, r := range str {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
