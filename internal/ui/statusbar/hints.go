package statusbar

import "github.com/riordanpawley/taskmaster/internal/types"

// GetHints returns the keybinding hints for the given mode
func GetHints(mode types.Mode) string {
	switch mode {
	case types.ModeNormal:
		return "h/l: groups  j/k: tasks  n: new  e: edit  m: move  c: done  d: delete  u: undo  /: find  ?: help  q: quit"
	case types.ModeMove:
		return "h/l: group  j/k: position  Enter/m: drop  Esc: cancel"
	default:
		return ""
	}
}
