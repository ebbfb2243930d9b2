// Package game provides the main game loop and state management.
package game

// State represents the current game state.
type State int

const (
	// StateAwaitingInput is the idle state between turns: the dungeon
	// waits for the player's next command.
	StateAwaitingInput State = iota
	// StateResolvingTurn covers the enemy phase that follows a player
	// action.
	StateResolvingTurn
	// StateGameOver is reached when the slayer falls. Only a new run or
	// quitting leaves it.
	StateGameOver
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateAwaitingInput:
		return "awaiting_input"
	case StateResolvingTurn:
		return "resolving_turn"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}
