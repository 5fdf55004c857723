package render

import "github.com/lixenwraith/solar-sim/scene"

// OpKind identifies a recorded draw call
type OpKind uint8

const (
	OpClear OpKind = iota
	OpDisc
	OpOrbitRing
	OpLabel
	OpPoint
	OpPresent
)

// Op is one recorded draw call, unused fields are zero
type Op struct {
	Kind       OpKind
	X, Y       float64
	Radius     float64 // disc and ring radius, point size
	Color      scene.Color
	Brightness float64
	Text       string
}

// Recorder is a Renderer that keeps the draw calls of the current frame
// Clear resets the list; used for headless runs and tests
type Recorder struct {
	Ops    []Op
	Frames int
}

func (r *Recorder) Clear() {
	r.Ops = r.Ops[:0]
	r.Ops = append(r.Ops, Op{Kind: OpClear})
}

func (r *Recorder) DrawDisc(x, y, radius float64, c scene.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpDisc, X: x, Y: y, Radius: radius, Color: c})
}

func (r *Recorder) DrawOrbitRing(radius float64) {
	r.Ops = append(r.Ops, Op{Kind: OpOrbitRing, Radius: radius})
}

func (r *Recorder) DrawLabel(x, y float64, text string) {
	r.Ops = append(r.Ops, Op{Kind: OpLabel, X: x, Y: y, Text: text})
}

func (r *Recorder) DrawPoint(x, y, size, brightness float64) {
	r.Ops = append(r.Ops, Op{Kind: OpPoint, X: x, Y: y, Radius: size, Brightness: brightness})
}

func (r *Recorder) Present() {
	r.Ops = append(r.Ops, Op{Kind: OpPresent})
	r.Frames++
}

// Count returns the number of recorded ops of kind k
func (r *Recorder) Count(k OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == k {
			n++
		}
	}
	return n
}
