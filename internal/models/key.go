package models

// Key is a terminal-independent key event. The TUI translates its own key
// messages into Keys before handing them to the handlers, which keeps the
// handlers testable without a terminal.
type Key struct {
	Code KeyCode
	Rune rune // set when Code is KeyRune
}

// KeyCode enumerates the keys the handlers react to.
type KeyCode int

const (
	KeyUnknown KeyCode = iota
	KeyRune
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyEnter
	KeyEsc
	KeyBackspace
	KeyTab
	KeyBackTab
)

// RuneKey returns the Key for a printable character.
func RuneKey(r rune) Key {
	return Key{Code: KeyRune, Rune: r}
}

// Is reports whether k is the printable character r.
func (k Key) Is(r rune) bool {
	return k.Code == KeyRune && k.Rune == r
}
