package modes

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/planet-offline/engine"
)

// ActionType classifies what a key event does before it reaches the game
type ActionType uint8

const (
	ActionNone ActionType = iota
	ActionKey             // Forward as a game key
	ActionQuit            // Leave the program
)

// Binding maps a terminal key to its action and normalized game key
type Binding struct {
	Action ActionType
	Key    engine.Key
}

// BindingTable resolves tcell key events
type BindingTable struct {
	special map[tcell.Key]Binding
	runes   map[rune]Binding
}

// DefaultBindings returns the default binding table
func DefaultBindings() *BindingTable {
	return &BindingTable{
		special: map[tcell.Key]Binding{
			tcell.KeyLeft:   {ActionKey, engine.KeyLeft},
			tcell.KeyRight:  {ActionKey, engine.KeyRight},
			tcell.KeyUp:     {ActionKey, engine.KeyUp},
			tcell.KeyDown:   {ActionKey, engine.KeyDown},
			tcell.KeyEscape: {ActionKey, engine.KeyPause},
			tcell.KeyEnter:  {ActionKey, "enter"},
			tcell.KeyCtrlC:  {ActionQuit, ""},
			tcell.KeyCtrlQ:  {ActionQuit, ""},
		},
		runes: map[rune]Binding{
			'p': {ActionKey, engine.KeyPause},
			'q': {ActionQuit, ""},
		},
	}
}

// Resolve maps an event to a binding; unbound runes pass through lowercased
func (b *BindingTable) Resolve(ev *tcell.EventKey) Binding {
	if ev.Key() != tcell.KeyRune {
		if bind, ok := b.special[ev.Key()]; ok {
			return bind
		}
		return Binding{}
	}

	r := unicode.ToLower(ev.Rune())
	if bind, ok := b.runes[r]; ok {
		return bind
	}
	if r == ' ' {
		return Binding{ActionKey, "space"}
	}
	return Binding{ActionKey, engine.Key(string(r))}
}
