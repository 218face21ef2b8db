package core

import "fmt"

// DrawOp is one call recorded by a Recorder.
type DrawOp struct {
	Kind   string // "fill_circle", "stroke_circle", "fill_rect", "text"
	Circle Circle
	Rect   RectF
	Text   string
	Color  Color
}

// String formats the op for logs and test failures.
func (op DrawOp) String() string {
	switch op.Kind {
	case "fill_circle", "stroke_circle":
		return fmt.Sprintf("%s(%.1f,%.1f r=%.1f %s)", op.Kind, op.Circle.X, op.Circle.Y, op.Circle.R, op.Color)
	case "fill_rect":
		return fmt.Sprintf("fill_rect(%.1f,%.1f %.1fx%.1f %s)", op.Rect.X, op.Rect.Y, op.Rect.W, op.Rect.H, op.Color)
	default:
		return fmt.Sprintf("text(%q %s)", op.Text, op.Color)
	}
}

// Recorder is a Canvas that keeps the calls made on it in order.
// Headless runs use it to count what a frame would draw.
type Recorder struct {
	W, H float64
	Ops  []DrawOp
}

// NewRecorder creates a recorder reporting the given surface size.
func NewRecorder(w, h float64) *Recorder {
	return &Recorder{W: w, H: h}
}

// Reset drops all recorded ops.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}

// Count returns how many ops of a kind were recorded.
func (r *Recorder) Count(kind string) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

func (r *Recorder) Size() (float64, float64) { return r.W, r.H }

func (r *Recorder) FillCircle(c Circle, col Color) {
	r.Ops = append(r.Ops, DrawOp{Kind: "fill_circle", Circle: c, Color: col})
}

func (r *Recorder) StrokeCircle(c Circle, _ float64, col Color) {
	r.Ops = append(r.Ops, DrawOp{Kind: "stroke_circle", Circle: c, Color: col})
}

func (r *Recorder) FillRect(rect RectF, col Color) {
	r.Ops = append(r.Ops, DrawOp{Kind: "fill_rect", Rect: rect, Color: col})
}

func (r *Recorder) DrawText(_, _ float64, text string, col Color) {
	r.Ops = append(r.Ops, DrawOp{Kind: "text", Text: text, Color: col})
}

func (r *Recorder) DrawTextCentered(_ float64, text string, col Color) {
	r.Ops = append(r.Ops, DrawOp{Kind: "text", Text: text, Color: col})
}
