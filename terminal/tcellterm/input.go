package tcellterm

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/scrollkit/terminal"
)

// keyMap maps tcell keys to terminal keys, unlisted keys are dropped
var keyMap = map[tcell.Key]terminal.Key{
	tcell.KeyEscape:     terminal.KeyEscape,
	tcell.KeyEnter:      terminal.KeyEnter,
	tcell.KeyTab:        terminal.KeyTab,
	tcell.KeyBacktab:    terminal.KeyBacktab,
	tcell.KeyBackspace:  terminal.KeyBackspace,
	tcell.KeyBackspace2: terminal.KeyBackspace,
	tcell.KeyDelete:     terminal.KeyDelete,
	tcell.KeyUp:         terminal.KeyUp,
	tcell.KeyDown:       terminal.KeyDown,
	tcell.KeyLeft:       terminal.KeyLeft,
	tcell.KeyRight:      terminal.KeyRight,
	tcell.KeyHome:       terminal.KeyHome,
	tcell.KeyEnd:        terminal.KeyEnd,
	tcell.KeyPgUp:       terminal.KeyPageUp,
	tcell.KeyPgDn:       terminal.KeyPageDown,
	tcell.KeyInsert:     terminal.KeyInsert,
	tcell.KeyCtrlC:      terminal.KeyCtrlC,
	tcell.KeyCtrlQ:      terminal.KeyCtrlQ,
}

func modifiers(m tcell.ModMask) terminal.Modifier {
	var mod terminal.Modifier
	if m&tcell.ModShift != 0 {
		mod |= terminal.ModShift
	}
	if m&(tcell.ModAlt|tcell.ModMeta) != 0 {
		mod |= terminal.ModAlt
	}
	if m&tcell.ModCtrl != 0 {
		mod |= terminal.ModCtrl
	}
	return mod
}

// mouseTracker turns tcell's button-state reports into press/drag/release/move events
// tcell reports only which buttons are held; the transition is derived from the previous report
type mouseTracker struct {
	held tcell.ButtonMask
}

func (t *mouseTracker) translate(ev *tcell.EventMouse) terminal.Event {
	x, y := ev.Position()
	mod := modifiers(ev.Modifiers())
	btns := ev.Buttons()

	switch {
	case btns&tcell.WheelUp != 0:
		return terminal.Wheel(terminal.MouseBtnWheelUp, x, y, mod)
	case btns&tcell.WheelDown != 0:
		return terminal.Wheel(terminal.MouseBtnWheelDown, x, y, mod)
	case btns&tcell.WheelLeft != 0:
		return terminal.Wheel(terminal.MouseBtnWheelLeft, x, y, mod)
	case btns&tcell.WheelRight != 0:
		return terminal.Wheel(terminal.MouseBtnWheelRight, x, y, mod)
	}

	pressed := btns & (tcell.Button1 | tcell.Button2 | tcell.Button3)
	prev := t.held
	t.held = pressed

	if pressed == 0 {
		if prev != 0 {
			return terminal.MouseEvent(terminal.MouseActionRelease, button(prev), x, y, mod)
		}
		return terminal.MouseEvent(terminal.MouseActionMove, terminal.MouseBtnNone, x, y, mod)
	}
	if prev&pressed != 0 {
		return terminal.MouseEvent(terminal.MouseActionDrag, button(pressed), x, y, mod)
	}
	return terminal.MouseEvent(terminal.MouseActionPress, button(pressed), x, y, mod)
}

// button picks the primary button of a held mask
func button(m tcell.ButtonMask) terminal.MouseButton {
	switch {
	case m&tcell.Button1 != 0:
		return terminal.MouseBtnLeft
	case m&tcell.Button3 != 0:
		return terminal.MouseBtnMiddle
	case m&tcell.Button2 != 0:
		return terminal.MouseBtnRight
	}
	return terminal.MouseBtnNone
}
