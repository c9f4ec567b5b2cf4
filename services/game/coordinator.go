package game

import (
	"math/rand"
	"sync"
	"time"

	"github.com/edevAr/Bingo-backend/config"
	game_models "github.com/edevAr/Bingo-backend/models/game"

	"github.com/coder/quartz"
)

// Transport is the connection-oriented, room-addressable pub/sub layer the
// coordinator broadcasts through. The socket.io server implements it; tests
// plug in a recorder.
type Transport interface {
	JoinRoom(clientID string, roomID int)
	LeaveRoom(clientID string, roomID int)
	EmitToRoom(roomID int, event string, data interface{})
	EmitToAll(event string, data interface{})
	EmitToClient(clientID string, event string, data interface{}) bool
	TotalClients() int
}

// roomState is everything a single room owns: the session state machine,
// the drawn-number history, the winner list and the pool. It is only ever
// touched while holding the coordinator mutex.
type roomState struct {
	id       int
	running  bool
	ended    bool
	drawn    map[int]struct{}
	sequence []int
	winners  []game_models.Winner
	pool     game_models.Pool
	members  []string

	// cancels the recurring draw ticker; nil when no ticker is active
	stopDraw func()
	// one consolidation window per game: armed on the first accepted win,
	// payoutDone once it has fired and the prize split was broadcast
	windowArmed bool
	payoutDone  bool
}

// Coordinator routes player commands to the per-room session state machines
// and fans out the resulting broadcasts. All room, membership and pool
// tables live behind one mutex so every room is mutated by exactly one
// execution context at a time.
type Coordinator struct {
	cfg       *config.Game
	transport Transport
	clock     quartz.Clock

	mu          sync.Mutex
	rng         *rand.Rand
	rooms       map[int]*roomState
	playerRooms map[string]int
	playerNames map[string]string
}

func NewCoordinator(cfg *config.Game, transport Transport, clock quartz.Clock) *Coordinator {
	return &Coordinator{
		cfg:         cfg,
		transport:   transport,
		clock:       clock,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
		rooms:       make(map[int]*roomState),
		playerRooms: make(map[string]int),
		playerNames: make(map[string]string),
	}
}

// room returns the state for roomID, lazily creating it on first reference.
func (c *Coordinator) room(roomID int) *roomState {
	st, ok := c.rooms[roomID]
	if !ok {
		st = &roomState{
			id:    roomID,
			drawn: make(map[int]struct{}),
		}
		c.rooms[roomID] = st
	}
	return st
}

// displayName resolves a player's name: explicit payload name first, then
// the registered identity, then a short fallback derived from the client id.
func (c *Coordinator) displayName(clientID, explicit string) string {
	if explicit != "" {
		return explicit
	}
	if name, ok := c.playerNames[clientID]; ok && name != "" {
		return name
	}
	return "Jugador " + shortID(clientID)
}

func shortID(clientID string) string {
	if len(clientID) > 8 {
		return clientID[:8]
	}
	return clientID
}
