package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Renderer names.
const (
	RendererRich  = "rich"
	RendererPlain = "plain"
)

// Region is the area shown by the map page.
type Region struct {
	Name       string
	Lat, Lon   float64
	SpanMeters float64
}

// ApplePark is the region the Devices map opens on.
var ApplePark = Region{Name: "Apple Park", Lat: 37.3346, Lon: -122.0090, SpanMeters: 1000}

// Renderer is a drawing strategy. One is selected at startup and kept for
// the lifetime of the program.
type Renderer interface {
	Name() string
	Unicode() bool
	Theme() Theme
	Map(r Region, width, height int) string
}

// SelectRenderer picks a strategy. mode "rich" or "plain" forces one; any
// other value picks plain only for terminals without colour support.
func SelectRenderer(mode string, profile termenv.Profile) Renderer {
	switch strings.ToLower(mode) {
	case RendererRich:
		return richRenderer{theme: richTheme()}
	case RendererPlain:
		return plainRenderer{theme: plainTheme()}
	}
	if profile == termenv.Ascii {
		return plainRenderer{theme: plainTheme()}
	}
	return richRenderer{theme: richTheme()}
}

// DetectRenderer runs SelectRenderer against the terminal on stdout.
func DetectRenderer(mode string) Renderer {
	return SelectRenderer(mode, lipgloss.ColorProfile())
}

type richRenderer struct{ theme Theme }

func (richRenderer) Name() string   { return RendererRich }
func (richRenderer) Unicode() bool  { return true }
func (r richRenderer) Theme() Theme { return r.theme }
func (r richRenderer) Map(reg Region, w, h int) string {
	return drawMap(reg, w, h, r.theme, mapGlyphs{
		land: '░', building: '█', water: '≈', pin: '●',
		roadH: '─', roadV: '│', roadX: '┼', blank: ' ',
	})
}

type plainRenderer struct{ theme Theme }

func (plainRenderer) Name() string   { return RendererPlain }
func (plainRenderer) Unicode() bool  { return false }
func (r plainRenderer) Theme() Theme { return r.theme }
func (r plainRenderer) Map(reg Region, w, h int) string {
	return drawMap(reg, w, h, r.theme, mapGlyphs{
		land: '.', building: '#', water: '~', pin: '@',
		roadH: '-', roadV: '|', roadX: '+', blank: ' ',
	})
}

type mapCell int

const (
	cellBlank mapCell = iota
	cellLand
	cellBuilding
	cellWater
	cellRoadH
	cellRoadV
	cellRoadX
	cellPin
)

type mapGlyphs struct {
	land, building, water, pin rune
	roadH, roadV, roadX, blank rune
}

func (g mapGlyphs) rune(c mapCell) rune {
	switch c {
	case cellLand:
		return g.land
	case cellBuilding:
		return g.building
	case cellWater:
		return g.water
	case cellRoadH:
		return g.roadH
	case cellRoadV:
		return g.roadV
	case cellRoadX:
		return g.roadX
	case cellPin:
		return g.pin
	}
	return g.blank
}

func (t Theme) mapStyle(c mapCell) lipgloss.Style {
	switch c {
	case cellLand:
		return t.MapLand
	case cellWater:
		return t.MapWater
	case cellBuilding, cellRoadH, cellRoadV, cellRoadX:
		return t.MapRoad
	case cellPin:
		return t.MapPin
	}
	return lipgloss.NewStyle()
}

// classify places the ring-shaped campus in the middle, a pond in the lower
// left corner and a street grid around them.
func classify(x, y, w, h int) mapCell {
	cx, cy := w/2, h/2
	if x == cx && y == cy {
		return cellPin
	}
	dx := float64(x-cx) / math.Max(float64(w)/2, 1)
	dy := float64(y-cy) / math.Max(float64(h)/2, 1)
	d := math.Hypot(dx, dy)
	switch {
	case math.Abs(d-0.55) < 0.09:
		return cellBuilding
	case d < 0.46:
		return cellLand
	case dx < -0.7 && dy > 0.5:
		return cellWater
	}
	onV := x%12 == 0
	onH := y%6 == 0
	switch {
	case onV && onH:
		return cellRoadX
	case onV:
		return cellRoadV
	case onH:
		return cellRoadH
	}
	return cellBlank
}

func drawMap(reg Region, w, h int, t Theme, g mapGlyphs) string {
	if w <= 0 || h <= 0 {
		return ""
	}
	caption := fmt.Sprintf(" %s  %.4f, %.4f ", reg.Name, reg.Lat, reg.Lon)
	lines := make([]string, h)
	for y := 0; y < h; y++ {
		var b strings.Builder
		run := []rune{}
		kind := mapCell(-1)
		flush := func() {
			if len(run) > 0 {
				b.WriteString(t.mapStyle(kind).Render(string(run)))
			}
			run = run[:0]
		}
		for x := 0; x < w; x++ {
			c := classify(x, y, w, h)
			if c != kind {
				flush()
				kind = c
			}
			run = append(run, g.rune(c))
		}
		flush()
		lines[y] = b.String()
	}
	if h > 1 && w > len(caption) {
		lines[0] = t.Muted.Render(caption) + strings.Repeat(" ", w-len(caption))
	}
	return strings.Join(lines, "\n")
}
