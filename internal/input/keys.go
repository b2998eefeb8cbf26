package input

import "github.com/gdamore/tcell/v2"

type UiAction rune

const (
	Unknown   UiAction = iota
	Quit      UiAction = 81 // 'Q'
	Reset     UiAction = 82 // 'R'
	Up        UiAction = 87 // 'W'
	Down      UiAction = 83 // 'S'
	UpArrow   UiAction = -1
	DownArrow UiAction = -2
)

// ProcessInput maps a typed rune to an action, ignoring case.
func ProcessInput(rawInput rune) (action UiAction) {
	inputVal := int(rawInput)
	// Convert to UpperCase
	if inputVal >= 97 && inputVal <= 122 {
		inputVal = inputVal - 32
	}
	switch UiAction(inputVal) {
	case Quit, Reset, Up, Down:
		return UiAction(inputVal)
	}
	return Unknown
}

// KeyAction maps a tcell key event to an action.
func KeyAction(ev *tcell.EventKey) UiAction {
	switch ev.Key() {
	case tcell.KeyUp:
		return UpArrow
	case tcell.KeyDown:
		return DownArrow
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return Quit
	case tcell.KeyRune:
		if ev.Modifiers()&tcell.ModCtrl != 0 && ProcessInput(ev.Rune()) != Quit {
			return Unknown
		}
		return ProcessInput(ev.Rune())
	}
	return Unknown
}
