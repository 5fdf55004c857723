// Package cellscreen draws the scene onto a tcell screen.
//
// World units are projected so the whole viewport fits the terminal, with discs
// rasterized as solid blocks, rings as dotted circles and points as single glyphs.
package cellscreen

import (
	"math"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/solar-sim/constants"
	"github.com/lixenwraith/solar-sim/scene"
)

// ColorMode selects the terminal color depth
type ColorMode uint8

const (
	ColorModeAuto      ColorMode = iota // tcell terminfo detection
	ColorModeTrueColor                  // 24-bit RGB
	ColorMode256                        // xterm-256 palette
)

// Glyphs
const (
	discRune     = '█'
	ringRune     = '·'
	starRune     = '.'
	asteroidRune = '•'
)

var (
	colorBackground = tcell.ColorBlack
	colorLabel      = colorful.Color{R: 1, G: 1, B: 1}
	colorRing       = colorful.Color{R: constants.OrbitRingGray, G: constants.OrbitRingGray, B: constants.OrbitRingGray}
)

// Open creates and initializes a terminal screen in the given color mode
func Open(mode ColorMode) (tcell.Screen, error) {
	switch mode {
	case ColorMode256:
		os.Setenv("TCELL_TRUECOLOR", "disable")
	case ColorModeTrueColor:
		os.Setenv("COLORTERM", "truecolor")
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.SetStyle(tcell.StyleDefault.Background(colorBackground))
	screen.HideCursor()
	return screen, nil
}

// Screen adapts a tcell.Screen to render.Renderer
type Screen struct {
	screen         tcell.Screen
	worldW, worldH float64
	aspect         float64
	proj           Projection
}

// New wraps an initialized tcell screen; worldW x worldH is the viewport to fit
func New(screen tcell.Screen, worldW, worldH float64) *Screen {
	s := &Screen{
		screen: screen,
		worldW: worldW,
		worldH: worldH,
		aspect: constants.CellAspectRatio,
	}
	s.refreshProjection()
	return s
}

// Projection returns the mapping used by the current frame
func (s *Screen) Projection() Projection {
	return s.proj
}

// refreshProjection follows terminal resizes, called once per frame
func (s *Screen) refreshProjection() {
	cols, rows := s.screen.Size()
	if cols != s.proj.Cols || rows != s.proj.Rows {
		s.proj = NewProjection(cols, rows, s.worldW, s.worldH, s.aspect)
	}
}

func (s *Screen) Clear() {
	s.refreshProjection()
	s.screen.Clear()
}

func (s *Screen) DrawDisc(x, y, radius float64, c scene.Color) {
	style := styleFor(colorful.Color{R: c.R, G: c.G, B: c.B})

	c0, r0 := s.proj.ToCell(x-radius, y+radius)
	c1, r1 := s.proj.ToCell(x+radius, y-radius)
	r2 := radius * radius
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			if !s.proj.InBounds(col, row) {
				continue
			}
			wx, wy := s.proj.CellCenter(col, row)
			dx, dy := wx-x, wy-y
			if dx*dx+dy*dy <= r2 {
				s.screen.SetContent(col, row, discRune, nil, style)
			}
		}
	}

	// Bodies smaller than a cell still occupy their center cell
	s.set(x, y, discRune, style)
}

func (s *Screen) DrawOrbitRing(radius float64) {
	style := styleFor(colorRing)
	steps := int(2 * math.Pi * radius / s.proj.CellW * 2)
	if steps < 64 {
		steps = 64
	}
	for i := 0; i < steps; i++ {
		a := 2 * math.Pi * float64(i) / float64(steps)
		s.set(radius*math.Cos(a), radius*math.Sin(a), ringRune, style)
	}
}

func (s *Screen) DrawLabel(x, y float64, text string) {
	style := styleFor(colorLabel)
	col, row := s.proj.ToCell(x, y)
	if row < 0 || row >= s.proj.Rows {
		return
	}
	for _, r := range text {
		if col >= s.proj.Cols {
			return
		}
		if col >= 0 {
			s.screen.SetContent(col, row, r, nil, style)
		}
		col++
	}
}

func (s *Screen) DrawPoint(x, y, size, brightness float64) {
	glyph := starRune
	if size >= constants.AsteroidPointSize {
		glyph = asteroidRune
	}
	s.set(x, y, glyph, styleFor(colorful.Color{R: brightness, G: brightness, B: brightness}))
}

func (s *Screen) Present() {
	s.screen.Show()
}

func (s *Screen) set(x, y float64, r rune, style tcell.Style) {
	col, row := s.proj.ToCell(x, y)
	if s.proj.InBounds(col, row) {
		s.screen.SetContent(col, row, r, nil, style)
	}
}

// ToTcell converts a float color to a clamped 24-bit tcell color
func ToTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func styleFor(c colorful.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(ToTcell(c)).Background(colorBackground)
}
