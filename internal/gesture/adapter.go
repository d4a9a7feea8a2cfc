package gesture

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// MouseAdapter translates Bubble Tea mouse messages into canonical events.
// Terminal cells are coarse compared to the pixel-denominated thresholds
// the engines are tuned for, so coordinates are multiplied by CellSize
// (units per cell) on the way in.
type MouseAdapter struct {
	cellSize float64
	pressed  bool
	now      func() time.Time
}

// NewMouseAdapter creates an adapter scaling cell coordinates by cellSize.
func NewMouseAdapter(cellSize float64) *MouseAdapter {
	if cellSize <= 0 {
		cellSize = 1
	}
	return &MouseAdapter{cellSize: cellSize, now: time.Now}
}

// Translate converts a mouse message to a canonical event. Only
// left-button press/drag/release sequences produce events; wheel and other
// buttons are reported as not handled.
func (a *MouseAdapter) Translate(msg tea.MouseMsg) (Event, bool) {
	p := Point{X: float64(msg.X) * a.cellSize, Y: float64(msg.Y) * a.cellSize}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return Event{}, false
		}
		a.pressed = true
		return Event{Kind: KindDown, Point: p, Time: a.now(), Pointer: PointerMouse}, true

	case tea.MouseActionMotion:
		if !a.pressed {
			return Event{}, false
		}
		return Event{Kind: KindMove, Point: p, Time: a.now(), Pointer: PointerMouse}, true

	case tea.MouseActionRelease:
		if !a.pressed {
			return Event{}, false
		}
		a.pressed = false
		return Event{Kind: KindUp, Point: p, Time: a.now(), Pointer: PointerMouse}, true
	}

	return Event{}, false
}

// Cancel synthesizes a cancel event for the in-flight press, if any. Used
// when the surface loses the pointer (terminal focus lost, panel closed).
func (a *MouseAdapter) Cancel() (Event, bool) {
	if !a.pressed {
		return Event{}, false
	}
	a.pressed = false
	return Event{Kind: KindCancel, Time: a.now(), Pointer: PointerMouse}, true
}

// TouchPhase is the wire phase name of a touch sample from an embedding
// surface with a touch screen.
type TouchPhase string

const (
	TouchStart  TouchPhase = "start"
	TouchMove   TouchPhase = "move"
	TouchEnd    TouchPhase = "end"
	TouchCancel TouchPhase = "cancel"
)

// TranslateTouch converts a single-contact touch sample to a canonical
// event. Unknown phases are reported as not handled.
func TranslateTouch(phase TouchPhase, x, y float64, at time.Time) (Event, bool) {
	var kind Kind
	switch phase {
	case TouchStart:
		kind = KindDown
	case TouchMove:
		kind = KindMove
	case TouchEnd:
		kind = KindUp
	case TouchCancel:
		kind = KindCancel
	default:
		return Event{}, false
	}
	return Event{Kind: kind, Point: Point{X: x, Y: y}, Time: at, Pointer: PointerTouch}, true
}
