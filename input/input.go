// Package input turns raw button and switch levels into discrete events.
// The caller samples the hardware once per loop iteration and hands the
// levels to Poll; held buttons stay quiet until they are released and
// pressed again.
package input

// Events is what one poll produced. SwitchRight is the live switch level
// every poll; SwitchMoved is additionally set on the iteration where it
// changed, so the caller can redraw without running the press logic.
type Events struct {
	LeftPress   bool
	RightPress  bool
	SwitchMoved bool
	SwitchRight bool
}

// Reader tracks the previous levels needed for edge detection.
type Reader struct {
	leftDown  bool
	rightDown bool
	swRight   bool
}

// NewReader seeds the switch baseline so the first poll does not report a
// phantom move.
func NewReader(switchRight bool) *Reader {
	return &Reader{swRight: switchRight}
}

// Poll takes the current levels (true = pressed / switch in the right
// position) and returns the edges since the previous poll.
func (r *Reader) Poll(left, right, switchRight bool) Events {
	var ev Events

	if left && !r.leftDown {
		ev.LeftPress = true
	}
	r.leftDown = left

	if right && !r.rightDown {
		ev.RightPress = true
	}
	r.rightDown = right

	if switchRight != r.swRight {
		ev.SwitchMoved = true
	}
	r.swRight = switchRight
	ev.SwitchRight = switchRight

	return ev
}
