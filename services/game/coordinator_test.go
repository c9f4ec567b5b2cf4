package game

import (
	"sync"
	"testing"
	"time"

	"github.com/edevAr/Bingo-backend/config"
	game_models "github.com/edevAr/Bingo-backend/models/game"

	"github.com/coder/quartz"
	"github.com/gin-gonic/gin"
)

// emission records one outbound event sent through the fake transport.
type emission struct {
	scope  string // "room", "all" or "client"
	room   int
	client string
	event  string
	data   interface{}
}

// fakeTransport records everything the coordinator broadcasts. Ticker and
// timer callbacks emit from their own goroutines, hence the mutex.
type fakeTransport struct {
	mu        sync.Mutex
	emissions []emission
	joined    map[string]map[int]bool
	total     int
}

func newFakeTransport() *fakeTransport {
	return &fakeTransport{joined: make(map[string]map[int]bool)}
}

func (f *fakeTransport) JoinRoom(clientID string, roomID int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.joined[clientID] == nil {
		f.joined[clientID] = make(map[int]bool)
	}
	f.joined[clientID][roomID] = true
}

func (f *fakeTransport) LeaveRoom(clientID string, roomID int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.joined[clientID] != nil {
		delete(f.joined[clientID], roomID)
	}
}

func (f *fakeTransport) EmitToRoom(roomID int, event string, data interface{}) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.emissions = append(f.emissions, emission{scope: "room", room: roomID, event: event, data: data})
}

func (f *fakeTransport) EmitToAll(event string, data interface{}) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.emissions = append(f.emissions, emission{scope: "all", event: event, data: data})
}

func (f *fakeTransport) EmitToClient(clientID string, event string, data interface{}) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.emissions = append(f.emissions, emission{scope: "client", client: clientID, event: event, data: data})
	return true
}

func (f *fakeTransport) TotalClients() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.total
}

// events returns all recorded emissions with the given event name.
func (f *fakeTransport) events(event string) []emission {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []emission
	for _, e := range f.emissions {
		if e.event == event {
			out = append(out, e)
		}
	}
	return out
}

// last returns the most recent emission with the given event name, or nil.
func (f *fakeTransport) last(event string) *emission {
	all := f.events(event)
	if len(all) == 0 {
		return nil
	}
	return &all[len(all)-1]
}

func (f *fakeTransport) count(event string) int {
	return len(f.events(event))
}

func newTestCoordinator(t *testing.T) (*Coordinator, *fakeTransport, *quartz.Mock) {
	t.Helper()
	cfg := &config.Game{
		DrawInterval:    3 * time.Second,
		MinNumber:       1,
		MaxNumber:       75,
		HousePercentage: 0.10,
		Port:            "8080",
	}
	transport := newFakeTransport()
	clock := quartz.NewMock(t)
	return NewCoordinator(cfg, transport, clock), transport, clock
}

// joinRoom buys cards for clientID in roomID, which registers it as a
// member and funds the pool.
func joinRoom(c *Coordinator, clientID string, roomID int, price float64) {
	c.PurchaseCards(clientID, game_models.PurchaseRequest{
		RoomID:       roomID,
		RoomName:     "Sala Test",
		PlayerName:   "Jugador " + clientID,
		CardQuantity: 1,
		TotalPrice:   price,
	})
}

func payload(t *testing.T, e *emission) gin.H {
	t.Helper()
	if e == nil {
		t.Fatal("expected an emission, got none")
	}
	data, ok := e.data.(gin.H)
	if !ok {
		t.Fatalf("emission data is %T, not gin.H", e.data)
	}
	return data
}
