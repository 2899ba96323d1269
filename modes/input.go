package modes

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/planet-offline/engine"
)

// KeyReceiver takes key down edges
// While AcceptsInput is false presses are dropped before they reach the key state
type KeyReceiver interface {
	KeyDown(k engine.Key)
	AcceptsInput() bool
}

// InputHandler turns tcell events into held keys and down edges
type InputHandler struct {
	keys     *KeyState
	bindings *BindingTable
	receiver KeyReceiver
}

// NewInputHandler creates a new input handler
func NewInputHandler(keys *KeyState, receiver KeyReceiver) *InputHandler {
	return &InputHandler{
		keys:     keys,
		bindings: DefaultBindings(),
		receiver: receiver,
	}
}

// HandleEvent processes a tcell event and returns false if the game should exit
func (h *InputHandler) HandleEvent(ev tcell.Event) bool {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return true
	}

	bind := h.bindings.Resolve(key)
	switch bind.Action {
	case ActionQuit:
		return false
	case ActionKey:
		if !h.receiver.AcceptsInput() {
			return true
		}
		if h.keys.Press(bind.Key) {
			h.receiver.KeyDown(bind.Key)
		}
	}
	return true
}
