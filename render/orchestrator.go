package render

type layerEntry struct {
	layer    Layer
	priority RenderPriority
	index    int // registration order for stable sort
}

// RenderOrchestrator coordinates the render pipeline
type RenderOrchestrator struct {
	renderer Renderer
	layers   []layerEntry
	regCount int
}

// NewRenderOrchestrator creates an empty pipeline drawing into r
func NewRenderOrchestrator(r Renderer) *RenderOrchestrator {
	return &RenderOrchestrator{
		renderer: r,
		layers:   make([]layerEntry, 0, 8),
	}
}

// NewSceneOrchestrator creates the standard solar system pipeline
// Order: stars, orbit rings, asteroids, sun, planets, labels, title, pause banner
func NewSceneOrchestrator(r Renderer) *RenderOrchestrator {
	o := NewRenderOrchestrator(r)
	o.Register(StarfieldLayer{}, PriorityBackground)
	o.Register(&OrbitLayer{Visible: true}, PriorityOrbits)
	o.Register(AsteroidLayer{}, PriorityAsteroids)
	o.Register(SunLayer{}, PrioritySun)
	o.Register(PlanetLayer{}, PriorityPlanets)
	o.Register(&LabelLayer{Visible: true}, PriorityLabels)
	o.Register(TitleLayer{}, PriorityUI)
	o.Register(PauseLayer{}, PriorityOverlay)
	return o
}

// Register adds a layer at the specified priority. Maintains sorted order via insertion sort
func (o *RenderOrchestrator) Register(l Layer, priority RenderPriority) {
	entry := layerEntry{
		layer:    l,
		priority: priority,
		index:    o.regCount,
	}
	o.regCount++

	pos := len(o.layers)
	for i, e := range o.layers {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	o.layers = append(o.layers, layerEntry{})
	copy(o.layers[pos+1:], o.layers[pos:])
	o.layers[pos] = entry
}

// Layer returns the first registered layer at priority, nil if none
func (o *RenderOrchestrator) Layer(priority RenderPriority) Layer {
	for _, e := range o.layers {
		if e.priority == priority {
			return e.layer
		}
	}
	return nil
}

// RenderFrame executes the render pipeline: clear, render all, present
func (o *RenderOrchestrator) RenderFrame(ctx RenderContext) {
	o.renderer.Clear()

	for _, entry := range o.layers {
		if vt, ok := entry.layer.(VisibilityToggle); ok && !vt.IsVisible() {
			continue
		}
		entry.layer.Render(ctx, o.renderer)
	}

	o.renderer.Present()
}
