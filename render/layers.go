package render

import (
	"github.com/lixenwraith/solar-sim/constants"
	"github.com/lixenwraith/solar-sim/scene"
)

// StarfieldLayer draws every star at its twinkled brightness
type StarfieldLayer struct{}

func (StarfieldLayer) Render(ctx RenderContext, r Renderer) {
	for _, s := range ctx.Scene.Stars {
		r.DrawPoint(s.X, s.Y, constants.StarPointSize, s.Brightness(ctx.Elapsed))
	}
}

// OrbitLayer draws one ring per planet orbit
type OrbitLayer struct {
	Visible bool
}

func (l *OrbitLayer) IsVisible() bool { return l.Visible }

// Toggle flips visibility and returns the new state
func (l *OrbitLayer) Toggle() bool {
	l.Visible = !l.Visible
	return l.Visible
}

func (l *OrbitLayer) Render(ctx RenderContext, r Renderer) {
	for _, p := range ctx.Scene.Planets {
		r.DrawOrbitRing(p.OrbitRadius)
	}
}

// AsteroidLayer draws asteroids as full brightness points
type AsteroidLayer struct{}

func (AsteroidLayer) Render(ctx RenderContext, r Renderer) {
	for _, group := range ctx.Scene.Asteroids {
		for _, a := range group {
			r.DrawPoint(a.X, a.Y, constants.AsteroidPointSize, 1.0)
		}
	}
}

// SunLayer draws the pulsing sun disc at the origin
type SunLayer struct{}

func (SunLayer) Render(ctx RenderContext, r Renderer) {
	sun := ctx.Scene.Sun
	r.DrawDisc(0, 0, sun.Radius, sun.Color(ctx.Elapsed))
}

// PlanetLayer draws planet discs
type PlanetLayer struct{}

func (PlanetLayer) Render(ctx RenderContext, r Renderer) {
	for _, p := range ctx.Scene.Planets {
		x, y := p.Position()
		r.DrawDisc(x, y, p.Radius, p.Color)
	}
}

// LabelLayer writes planet names beside their discs
type LabelLayer struct {
	Visible bool
}

func (l *LabelLayer) IsVisible() bool { return l.Visible }

// Toggle flips visibility and returns the new state
func (l *LabelLayer) Toggle() bool {
	l.Visible = !l.Visible
	return l.Visible
}

func (l *LabelLayer) Render(ctx RenderContext, r Renderer) {
	for _, p := range ctx.Scene.Planets {
		x, y := p.Position()
		r.DrawLabel(x+constants.LabelOffset, y+constants.LabelOffset, p.Name)
	}
}

// TitleLayer centers the title near the top edge
type TitleLayer struct{}

func (TitleLayer) Render(ctx RenderContext, r Renderer) {
	x, y := TitlePosition(ctx.Scene)
	r.DrawLabel(x, y, constants.Title)
}

// TitlePosition returns the title anchor for the scene viewport
func TitlePosition(s *scene.Scene) (x, y float64) {
	width := float64(len(constants.Title)) * constants.TitleGlyphWidth
	return -width / 2, s.Height/2 - constants.TitleTopMargin
}

// PauseLayer marks a paused frame below the title
type PauseLayer struct{}

// PausedText is drawn while the clock is paused
const PausedText = "PAUSED"

func (PauseLayer) Render(ctx RenderContext, r Renderer) {
	if !ctx.Paused {
		return
	}
	_, ty := TitlePosition(ctx.Scene)
	width := float64(len(PausedText)) * constants.TitleGlyphWidth
	r.DrawLabel(-width/2, ty-constants.TitleTopMargin, PausedText)
}
