package game

import (
	"log"

	game_constants "github.com/edevAr/Bingo-backend/constants/game"
	game_models "github.com/edevAr/Bingo-backend/models/game"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PurchaseCards credits a card purchase to a room's pool and joins the
// buyer to the room. Joining is rejected while the room has an active game:
// either one running, or one ended whose players have not vacated yet. A
// buyer still registered in another room is transparently moved out of it
// first.
func (c *Coordinator) PurchaseCards(clientID string, req game_models.PurchaseRequest) {
	c.mu.Lock()
	defer c.mu.Unlock()

	log.Printf("[JOIN] Compra de %s: sala %s (ID %d), %d cartones, %.2f Bs",
		req.PlayerName, req.RoomName, req.RoomID, req.CardQuantity, req.TotalPrice)

	st := c.room(req.RoomID)
	playerCount := len(st.members)

	if st.running || (st.ended && playerCount > 0) {
		reason := "gameInProgress"
		message := "No puedes unirte a esta sala porque hay un juego en curso"
		if !st.running {
			reason = "gameEndedWithPlayers"
			message = "No puedes unirte a esta sala porque el juego terminó pero aún hay jugadores"
		}
		log.Printf("[JOIN-WARN] Intento de unirse a sala %d - RECHAZADO: %s", req.RoomID, reason)
		c.transport.EmitToClient(clientID, "roomJoinRejected", gin.H{
			"roomId":  req.RoomID,
			"reason":  reason,
			"message": message,
		})
		return
	}

	// A player belongs to at most one room: moving rooms first leaves the
	// previous one, with its membership broadcasts.
	if prev, ok := c.playerRooms[clientID]; ok && prev != req.RoomID {
		c.removeMemberLocked(clientID, prev)
	}

	c.transport.JoinRoom(clientID, req.RoomID)
	c.playerRooms[clientID] = req.RoomID
	st.addMember(clientID)

	st.pool.Total += req.TotalPrice
	st.pool.Purchases = append(st.pool.Purchases, game_models.Purchase{
		ClientID:     clientID,
		PlayerName:   req.PlayerName,
		CardQuantity: req.CardQuantity,
		TotalPrice:   req.TotalPrice,
		Timestamp:    c.clock.Now(),
	})
	log.Printf("[JOIN] Pozo acumulado de la sala %d: %.2f Bs (%d jugadores)",
		req.RoomID, st.pool.Total, len(st.members))

	players := c.playersOfLocked(req.RoomID)

	c.transport.EmitToRoom(req.RoomID, "clientConnected", gin.H{
		"clientId":     clientID,
		"playerName":   req.PlayerName,
		"roomClients":  len(st.members),
		"totalClients": c.transport.TotalClients(),
		"players":      players,
	})
	c.transport.EmitToRoom(req.RoomID, "playerJoinedRoom", gin.H{
		"clientId":    clientID,
		"playerName":  req.PlayerName,
		"roomId":      req.RoomID,
		"roomName":    req.RoomName,
		"roomClients": len(st.members),
		"players":     players,
	})

	// A joiner only sees the live game state when a game is actually
	// running; otherwise it starts from a clean slate.
	gameState := gin.H{
		"isGameRunning":    false,
		"gameEnded":        false,
		"generatedNumbers": []int{},
		"winners":          []game_models.Winner{},
	}
	if st.running {
		gameState = gin.H{
			"isGameRunning":    st.running,
			"gameEnded":        st.ended,
			"generatedNumbers": append([]int{}, st.sequence...),
			"winners":          append([]game_models.Winner{}, st.winners...),
		}
	}

	c.transport.EmitToClient(clientID, "roomJoined", gin.H{
		"roomId":      req.RoomID,
		"roomName":    req.RoomName,
		"roomClients": len(st.members),
		"players":     players,
		"gameState":   gameState,
	})
}

// LeaveRoom removes the caller from its current room and reclaims the room
// when it empties after a finished game.
func (c *Coordinator) LeaveRoom(clientID string, roomID int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	current, ok := c.playerRooms[clientID]
	if !ok {
		log.Printf("[LEAVE-WARN] Cliente %s intentó salir de sala sin estar en una", clientID)
		return
	}

	log.Printf("[LEAVE] Cliente %s saliendo de sala %d", clientID, current)
	c.removeMemberLocked(clientID, current)
	delete(c.playerRooms, clientID)

	c.reclaimIfVacatedLocked(current)

	c.transport.EmitToClient(clientID, "roomLeft", gin.H{
		"success": true,
		"message": "Has salido de la sala exitosamente",
	})
}

// Disconnect drops a connection entirely: membership, then identity.
func (c *Coordinator) Disconnect(clientID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	log.Printf("[DISCONNECT] Cliente desconectado: %s (quedan %d)", clientID, c.transport.TotalClients())

	if roomID, ok := c.playerRooms[clientID]; ok {
		c.removeMemberLocked(clientID, roomID)
		delete(c.playerRooms, clientID)
		c.reclaimIfVacatedLocked(roomID)
	}

	delete(c.playerNames, clientID)
}

// SetPlayerName registers a display name for a connection. Identity is
// independent of room membership and survives room moves.
func (c *Coordinator) SetPlayerName(clientID, playerName string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.playerNames[clientID] = playerName
	log.Printf("[NAME] Nombre del jugador %s: %s", clientID, playerName)
}

// ChatMessage relays a chat line to the sender's room.
func (c *Coordinator) ChatMessage(clientID, playerName, message string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	roomID, ok := c.playerRooms[clientID]
	if !ok {
		log.Printf("[CHAT-WARN] Cliente %s intentó enviar mensaje sin estar en una sala", clientID)
		return
	}

	name := c.displayName(clientID, playerName)
	log.Printf("[CHAT] Mensaje de %s en sala %d: %s", name, roomID, message)

	c.transport.EmitToRoom(roomID, "chatMessage", gin.H{
		"id":         uuid.NewString(),
		"playerName": name,
		"message":    message,
		"timestamp":  c.clock.Now(),
		"roomId":     roomID,
	})
}

// removeMemberLocked takes clientID out of roomID's member list and
// notifies the remaining members with the refreshed player list.
func (c *Coordinator) removeMemberLocked(clientID string, roomID int) {
	st := c.room(roomID)
	st.removeMember(clientID)
	c.transport.LeaveRoom(clientID, roomID)

	players := c.playersOfLocked(roomID)
	c.transport.EmitToRoom(roomID, "clientDisconnected", gin.H{
		"clientId":     clientID,
		"roomClients":  len(st.members),
		"totalClients": c.transport.TotalClients(),
		"players":      players,
	})
	c.transport.EmitToRoom(roomID, "playerLeftRoom", gin.H{
		"clientId":    clientID,
		"roomClients": len(st.members),
		"players":     players,
	})
}

// reclaimIfVacatedLocked resets a room that emptied out after its game
// ended, making it available again, and tells every client.
func (c *Coordinator) reclaimIfVacatedLocked(roomID int) {
	st := c.room(roomID)
	if len(st.members) != 0 || !st.ended {
		return
	}
	log.Printf("[CLEANUP] Sala %d quedó vacía después de que terminó el juego. Limpiando estado.", roomID)
	c.cleanupRoomLocked(st)
	c.emitRoomStatusChangedLocked(roomID)
}

// cleanupRoomLocked clears a room back to idle, pool included: the earning
// cycle ends when the room fully empties.
func (c *Coordinator) cleanupRoomLocked(st *roomState) {
	c.stopDrawLocked(st)
	st.running = false
	st.ended = false
	st.drawn = make(map[int]struct{})
	st.sequence = nil
	st.winners = nil
	st.windowArmed = false
	st.payoutDone = false
	st.pool = game_models.Pool{}
}

// roomsStatusLocked derives the aggregate snapshot for rooms 1..N. Empty
// rooms whose game ended are reclaimed here as a side effect, so a stale
// ended flag never blocks joins indefinitely.
func (c *Coordinator) roomsStatusLocked() map[int]game_models.RoomStatus {
	statuses := make(map[int]game_models.RoomStatus, game_constants.TOTAL_ROOMS)

	for roomID := game_constants.MIN_ROOM_ID; roomID <= game_constants.TOTAL_ROOMS; roomID++ {
		st := c.room(roomID)
		if len(st.members) == 0 && st.ended {
			log.Printf("[CLEANUP] Limpiando estado de sala %d vacía con juego terminado", roomID)
			c.cleanupRoomLocked(st)
		}
		playerCount := len(st.members)
		statuses[roomID] = game_models.RoomStatus{
			RoomID:        roomID,
			IsGameRunning: st.running,
			GameEnded:     st.ended,
			PlayerCount:   playerCount,
			HasActiveGame: st.running || (st.ended && playerCount > 0),
		}
	}

	return statuses
}

func (c *Coordinator) emitRoomStatusChangedLocked(roomID int) {
	statuses := c.roomsStatusLocked()
	c.transport.EmitToAll("roomStatusChanged", gin.H{
		"roomId":         roomID,
		"status":         statuses[roomID],
		"allRoomsStatus": statuses,
	})
}

// playersOfLocked returns the room's members in join order.
func (c *Coordinator) playersOfLocked(roomID int) []game_models.PlayerInfo {
	st := c.room(roomID)
	players := make([]game_models.PlayerInfo, 0, len(st.members))
	for _, id := range st.members {
		players = append(players, game_models.PlayerInfo{
			ClientID:   id,
			PlayerName: c.displayName(id, ""),
		})
	}
	return players
}

func (st *roomState) addMember(clientID string) {
	for _, id := range st.members {
		if id == clientID {
			return
		}
	}
	st.members = append(st.members, clientID)
}

func (st *roomState) removeMember(clientID string) {
	for i, id := range st.members {
		if id == clientID {
			st.members = append(st.members[:i], st.members[i+1:]...)
			return
		}
	}
}
