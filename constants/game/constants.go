package game_constants

import "time"

// Rooms are a fixed set the frontend knows about (1..TOTAL_ROOMS)
const TOTAL_ROOMS = 6
const MIN_ROOM_ID = 1

// Draw engine tuning
const (
	// When this few numbers remain undrawn, enumerate them instead of
	// rejection-sampling (sampling gets pathological near exhaustion)
	LOW_REMAINING_THRESHOLD = 10
	// Bound on rejection-sampling retries before falling back to a linear scan
	MAX_DRAW_ATTEMPTS = 100
)

// Grace period after the first bingo during which near-simultaneous
// winners on other connections still share the pool
const WINNER_CONSOLIDATION_WINDOW = 500 * time.Millisecond

// Delay between the payout broadcast and the room-closing modal
const ROOM_CLOSING_DELAY = 20 * time.Second
const ROOM_CLOSING_COUNTDOWN = 5
