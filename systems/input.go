package systems

import (
	"math"

	"github.com/automoto/portfolio/components"
	cfg "github.com/automoto/portfolio/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slices for device IDs to avoid allocations
var (
	gamepadIDs []ebiten.GamepadID
	touchIDs   []ebiten.TouchID
)

// tapSlop is how far a touch may travel and still count as a tap
const tapSlop = 8

// NewUpdateInput polls raw input and drives the page controller.
// Must run BEFORE the controller's Update in the system order.
func NewUpdateInput(c *Controller) func(*ecs.ECS) {
	return func(e *ecs.ECS) {
		input := getOrCreateInput(e)
		pollActions(input)

		if !c.Mounted() {
			return
		}
		applyActions(c, input)

		if _, wy := ebiten.Wheel(); wy != 0 {
			c.ScrollBy(-wy * cfg.Scroll.WheelStep)
			input.LastInputMethod = components.InputPointer
		}

		if updateTouch(c, input) {
			return
		}

		cx, cy := ebiten.CursorPosition()
		x, y := float64(cx), float64(cy)
		page := c.Page()
		inside := ebiten.IsFocused() && x >= 0 && y >= 0 && x < page.Width && y < page.Height
		if x != input.CursorX || y != input.CursorY {
			input.LastInputMethod = components.InputPointer
		}
		input.CursorX, input.CursorY, input.CursorInside = x, y, inside
		c.PointerAt(x, y, inside)

		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			c.Click()
		}
	}
}

// pollActions swaps buffers and reads every binding plus the left stick.
func pollActions(input *components.InputData) {
	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	var keyboardUsed, gamepadUsed bool
	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
				keyboardUsed = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
					gamepadUsed = true
				}
			}
		}
	}

	// Gamepad takes priority if both used
	if gamepadUsed {
		input.LastInputMethod = components.InputGamepad
	} else if keyboardUsed {
		input.LastInputMethod = components.InputKeyboard
	}
}

func applyActions(c *Controller, input *components.InputData) {
	page := c.Page()
	top := page.Scroll.Y
	pageStep := page.Height * cfg.Scroll.PageFraction

	if GetAction(input, cfg.ActionScrollUp).Pressed {
		c.ScrollBy(-cfg.Scroll.KeyStep)
	}
	if GetAction(input, cfg.ActionScrollDown).Pressed {
		c.ScrollBy(cfg.Scroll.KeyStep)
	}
	if GetAction(input, cfg.ActionPageUp).JustPressed {
		c.ScrollTo(top-pageStep, true)
	}
	if GetAction(input, cfg.ActionPageDown).JustPressed {
		c.ScrollTo(top+pageStep, true)
	}
	if GetAction(input, cfg.ActionTop).JustPressed {
		c.ScrollTo(0, true)
	}
	if GetAction(input, cfg.ActionBottom).JustPressed {
		c.ScrollTo(page.DocHeight, true)
	}
	if GetAction(input, cfg.ActionNextSection).JustPressed {
		c.NavigateRelative(1)
	}
	if GetAction(input, cfg.ActionPrevSection).JustPressed {
		c.NavigateRelative(-1)
	}

	if v := getAnalogScroll(gamepadIDs); v != 0 {
		c.ScrollBy(v * cfg.Scroll.GamepadSpeed)
		input.LastInputMethod = components.InputGamepad
	}
}

// getAnalogScroll reads the left stick's vertical axis past the deadzone,
// rescaled to [-1, 1].
func getAnalogScroll(gamepads []ebiten.GamepadID) float64 {
	deadzone := cfg.Scroll.AnalogDeadzone
	var best float64
	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		v := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)
		if math.Abs(v) > math.Abs(best) {
			best = v
		}
	}
	if math.Abs(best) <= deadzone {
		return 0
	}
	return math.Copysign((math.Abs(best)-deadzone)/(1-deadzone), best)
}

// updateTouch drags the page with one finger and treats a short touch as a
// tap. It returns true while a touch owns the pointer.
func updateTouch(c *Controller, input *components.InputData) bool {
	touchIDs = inpututil.AppendJustPressedTouchIDs(touchIDs[:0])
	if !input.Dragging && len(touchIDs) > 0 {
		id := touchIDs[0]
		x, y := ebiten.TouchPosition(id)
		input.Dragging = true
		input.TouchID = id
		input.DragLastY = float64(y)
		input.DragMoved = 0
		input.LastInputMethod = components.InputTouch
		c.PointerAt(float64(x), float64(y), true)
		return true
	}
	if !input.Dragging {
		return false
	}

	if inpututil.IsTouchJustReleased(input.TouchID) {
		x, y := inpututil.TouchPositionInPreviousTick(input.TouchID)
		input.Dragging = false
		if input.DragMoved < tapSlop {
			c.PointerAt(float64(x), float64(y), true)
			c.Click()
		}
		c.PointerAt(float64(x), float64(y), false)
		return true
	}

	x, y := ebiten.TouchPosition(input.TouchID)
	dy := input.DragLastY - float64(y)
	input.DragLastY = float64(y)
	input.DragMoved += math.Abs(dy)
	c.ScrollBy(dy * cfg.Scroll.TouchMultiplier)
	c.PointerAt(float64(x), float64(y), true)
	return true
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
