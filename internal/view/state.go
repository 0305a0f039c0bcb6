// Package view decides what the client shows for a session and lays it out
// as plain frames. Nothing here draws; the tui package and the status
// command render frames.
package view

import "github.com/KirkDiggler/metaverse-slayer/internal/entities"

// State is one of the mutually exclusive screens
type State int

const (
	// StateLoading is shown until the first wallet check resolves
	StateLoading State = iota
	// StateDisconnected offers to connect a wallet
	StateDisconnected
	// StateNeedsCharacter hands over to character selection
	StateNeedsCharacter
	// StateReady hands over to the arena
	StateReady
)

// String returns the state name
func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateDisconnected:
		return "disconnected"
	case StateNeedsCharacter:
		return "needs_character"
	case StateReady:
		return "ready"
	default:
		return "unknown"
	}
}

// Select derives the screen from a session. Loading wins over everything,
// then a missing account, then a missing character.
func Select(s entities.Session) State {
	switch {
	case s.Loading:
		return StateLoading
	case !s.Connected():
		return StateDisconnected
	case !s.HasCharacter():
		return StateNeedsCharacter
	default:
		return StateReady
	}
}
