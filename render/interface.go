package render

import "github.com/lixenwraith/solar-sim/scene"

// Renderer is the drawing surface, world coordinates with origin at the sun and y up
// Implementations own projection, rasterization and output
type Renderer interface {
	Clear()
	DrawDisc(x, y, radius float64, c scene.Color)
	DrawOrbitRing(radius float64)
	DrawLabel(x, y float64, text string)
	DrawPoint(x, y, size, brightness float64)
	Present()
}

// Layer is one pass of the scene pipeline
type Layer interface {
	Render(ctx RenderContext, r Renderer)
}

// VisibilityToggle is optionally implemented for runtime enable/disable
type VisibilityToggle interface {
	IsVisible() bool
}
