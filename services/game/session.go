package game

import (
	"context"
	"errors"
	"log"
	"strconv"

	game_models "github.com/edevAr/Bingo-backend/models/game"

	"github.com/gin-gonic/gin"
)

// Sentinel returned by the draw tick to stop the recurring ticker once the
// session is no longer running.
var errDrawStopped = errors.New("draw loop stopped")

// StartGame starts the recurring number draw for the caller's room. Warns
// and leaves the session untouched if a game is already running there.
func (c *Coordinator) StartGame(clientID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	roomID, ok := c.playerRooms[clientID]
	if !ok {
		log.Printf("[GAME-WARN] Cliente %s intentó iniciar juego sin estar en una sala", clientID)
		c.transport.EmitToClient(clientID, "error", gin.H{"message": "Debes estar en una sala para iniciar el juego"})
		return
	}

	st := c.room(roomID)
	if st.running {
		log.Printf("[GAME-WARN] El juego ya está en ejecución en la sala %d", roomID)
	} else {
		st.ended = false
		st.winners = nil
		st.windowArmed = false
		st.payoutDone = false
		st.running = true

		log.Printf("[GAME] Iniciando juego en sala %d con delay de %v", roomID, c.cfg.DrawInterval)
		c.emitRoomStatusChangedLocked(roomID)
		c.startDrawLoopLocked(st)
	}

	c.transport.EmitToRoom(roomID, "gameStarted", gin.H{})
}

// StopGame pauses the caller's room: cancels the ticker and flips running
// off, leaving the drawn history in place.
func (c *Coordinator) StopGame(clientID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	roomID, ok := c.playerRooms[clientID]
	if !ok {
		log.Printf("[GAME-WARN] Cliente %s intentó detener juego sin estar en una sala", clientID)
		return
	}

	st := c.room(roomID)
	if st.running {
		c.stopDrawLocked(st)
		st.running = false
		log.Printf("[GAME] Juego detenido en sala %d", roomID)
		c.emitRoomStatusChangedLocked(roomID)
	}

	c.transport.EmitToRoom(roomID, "gameStopped", gin.H{})
}

// ResetGame implies stop and clears the drawn history and winners. The pool
// is untouched: it belongs to the room's earning cycle, not to one game.
func (c *Coordinator) ResetGame(clientID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	roomID, ok := c.playerRooms[clientID]
	if !ok {
		log.Printf("[GAME-WARN] Cliente %s intentó reiniciar juego sin estar en una sala", clientID)
		return
	}

	st := c.room(roomID)
	c.stopDrawLocked(st)
	st.running = false
	st.drawn = make(map[int]struct{})
	st.sequence = nil
	st.winners = nil
	st.ended = false
	st.windowArmed = false
	st.payoutDone = false

	log.Printf("[GAME] Juego reiniciado en sala %d - números limpiados", roomID)

	c.transport.EmitToRoom(roomID, "gameReset", gin.H{})
	c.emitRoomStatusChangedLocked(roomID)
}

// startDrawLoopLocked arms the recurring draw ticker for st.
func (c *Coordinator) startDrawLoopLocked(st *roomState) {
	ctx, cancel := context.WithCancel(context.Background())
	st.stopDraw = cancel
	roomID := st.id
	c.clock.TickerFunc(ctx, c.cfg.DrawInterval, func() error {
		return c.drawTick(roomID)
	}, "draw", strconv.Itoa(roomID))
}

// drawTick runs once per draw interval. The session state is re-checked
// here, at fire time: a win or stop landing between two ticks must prevent
// the pending tick from emitting another number.
func (c *Coordinator) drawTick(roomID int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	st := c.room(roomID)
	if st.ended || !st.running {
		st.stopDraw = nil
		log.Printf("[DRAW] Deteniendo generación de números en sala %d (juego terminado o detenido)", roomID)
		return errDrawStopped
	}

	number := c.drawNumber(st)
	log.Printf("[DRAW] Número generado en sala %d: %d", roomID, number)

	c.transport.EmitToRoom(roomID, "newNumber", gin.H{
		"number":         number,
		"timestamp":      c.clock.Now(),
		"totalGenerated": len(st.drawn),
		"roomId":         roomID,
	})
	return nil
}

func (c *Coordinator) stopDrawLocked(st *roomState) {
	if st.stopDraw != nil {
		st.stopDraw()
		st.stopDraw = nil
	}
}

// GetStatus answers the caller with its room's session state, or a clean
// zero status when it has no room yet.
func (c *Coordinator) GetStatus(clientID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	payload := gin.H{
		"isGameRunning":    false,
		"totalClients":     c.transport.TotalClients(),
		"roomClients":      0,
		"generatedNumbers": []int{},
		"gameEnded":        false,
		"winner":           nil,
		"winners":          []game_models.Winner{},
		"config":           c.configPayload(),
	}

	if roomID, ok := c.playerRooms[clientID]; ok {
		st := c.room(roomID)
		payload["isGameRunning"] = st.running
		payload["roomClients"] = len(st.members)
		payload["generatedNumbers"] = append([]int{}, st.sequence...)
		payload["gameEnded"] = st.ended
		payload["winners"] = append([]game_models.Winner{}, st.winners...)
		if len(st.winners) > 0 {
			payload["winner"] = st.winners[0]
		}
	}

	c.transport.EmitToClient(clientID, "status", payload)
}

// GetRoomsStatus answers the caller with the aggregate snapshot of every
// room.
func (c *Coordinator) GetRoomsStatus(clientID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.transport.EmitToClient(clientID, "roomsStatus", c.roomsStatusLocked())
}

// Connect greets a fresh connection with an empty game state and the game
// configuration.
func (c *Coordinator) Connect(clientID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	log.Printf("[CONNECT] Cliente conectado: %s", clientID)

	c.transport.EmitToClient(clientID, "connected", gin.H{
		"clientId":         clientID,
		"isGameRunning":    false,
		"totalClients":     c.transport.TotalClients(),
		"roomClients":      0,
		"generatedNumbers": []int{},
		"gameEnded":        false,
		"winner":           nil,
		"winners":          []game_models.Winner{},
		"config":           c.configPayload(),
	})
}

func (c *Coordinator) configPayload() gin.H {
	return gin.H{
		"delay":     c.cfg.DrawInterval.Milliseconds(),
		"minNumber": c.cfg.MinNumber,
		"maxNumber": c.cfg.MaxNumber,
	}
}
