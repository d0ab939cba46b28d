package core

// Action is what a key or button means to the game.
type Action uint8

// ActionCapture starts a capture line and ActionRotate switches the line
// between horizontal and vertical for the next attempt. ActionConfirm is
// only used by menus.
const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionCapture
	ActionRotate
	ActionConfirm
	ActionBack
	ActionRestart
	ActionQuit
	ActionPause
	numActions
)

var actionNames = [numActions]string{
	"None", "Up", "Down", "Left", "Right", "Capture", "Rotate",
	"Confirm", "Back", "Restart", "Quit", "Pause",
}

func (a Action) String() string {
	if a >= numActions {
		return "Unknown"
	}
	return actionNames[a]
}

// InputFrame collects the input for one tick. Front-ends clear it after
// every Step so an action is seen once.
type InputFrame struct {
	actions uint32

	// Pointer is the last pointer cell seen this tick. It is only
	// meaningful when PointerSet is true.
	Pointer    Point
	PointerSet bool

	// PressAt is where a pointer press happened, kept apart from Pointer
	// so later motion in the same tick does not move the capture start.
	PressAt  Point
	PressSet bool
}

// NewInputFrame returns an empty frame. The zero value is usable too.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

func (f *InputFrame) Set(a Action) {
	f.actions |= 1 << a
}

func (f InputFrame) Has(a Action) bool {
	return a != ActionNone && f.actions&(1<<a) != 0
}

// SetPointer records where the pointer is this tick.
func (f *InputFrame) SetPointer(x, y int) {
	f.Pointer = Point{X: x, Y: y}
	f.PointerSet = true
}

// SetPress records a primary pointer press at (x, y): the pointer moves
// there and a capture starts there.
func (f *InputFrame) SetPress(x, y int) {
	f.SetPointer(x, y)
	f.PressAt = Point{X: x, Y: y}
	f.PressSet = true
	f.Set(ActionCapture)
}

// Empty reports whether the frame carries no action and no pointer.
func (f InputFrame) Empty() bool {
	return f.actions&^1 == 0 && !f.PointerSet && !f.PressSet
}

func (f *InputFrame) Clear() {
	*f = InputFrame{}
}

// Clone returns a copy. Frames are plain values, so this is an assignment.
func (f InputFrame) Clone() InputFrame {
	return f
}
