package components

import (
	cfg "github.com/automoto/portfolio/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputPointer InputMethod = iota
	InputKeyboard
	InputGamepad
	InputTouch
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame (wasn't pressed last frame)
	JustReleased bool // Released this frame (was pressed last frame)
}

// InputData stores the current and previous frame's pressed state for all actions.
type InputData struct {
	Current         [cfg.ActionCount]bool // Current frame's Pressed state
	Previous        [cfg.ActionCount]bool // Previous frame's Pressed state
	LastInputMethod InputMethod

	CursorX, CursorY float64
	CursorInside     bool

	Dragging  bool    // A touch is scrolling the page
	TouchID   ebiten.TouchID
	DragLastY float64 // Previous touch position while dragging
	DragMoved float64 // Distance dragged since touch start
}

var Input = donburi.NewComponentType[InputData]()
