package game

import (
	"fmt"
	"log"

	game_constants "github.com/edevAr/Bingo-backend/constants/game"
	game_models "github.com/edevAr/Bingo-backend/models/game"

	"github.com/gin-gonic/gin"
)

// ReportWin handles a bingo claim. The first accepted win freezes the
// session (no further numbers are drawn) and arms a single consolidation
// window per game; claims inside the window share the pool, repeat claims
// from the same player are ignored, claims after the payout broadcast are
// dropped.
func (c *Coordinator) ReportWin(clientID string, claim game_models.WinClaim) {
	c.mu.Lock()
	defer c.mu.Unlock()

	roomID := claim.RoomID
	if roomID == 0 {
		roomID = c.playerRooms[clientID]
	}
	playerName := c.displayName(clientID, claim.PlayerName)
	if roomID == 0 {
		log.Printf("[WIN-WARN] No se puede procesar victoria sin sala para %s", playerName)
		return
	}

	st := c.room(roomID)
	if st.payoutDone {
		log.Printf("[WIN-WARN] Victoria de %s en sala %d llegó después del pago, ignorada", playerName, roomID)
		return
	}
	for _, w := range st.winners {
		if w.ClientID == clientID {
			log.Printf("[WIN-WARN] El jugador %s ya está en la lista de ganadores de la sala %d", playerName, roomID)
			return
		}
	}

	card := claim.Card
	if card == nil {
		card = claim.CardMatrix
	}
	cardMatrix := claim.CardMatrix
	if cardMatrix == nil {
		cardMatrix = claim.Card
	}

	st.winners = append(st.winners, game_models.Winner{
		ClientID:    clientID,
		PlayerName:  playerName,
		Card:        card,
		CardMatrix:  cardMatrix,
		VictoryType: claim.VictoryType,
		Timestamp:   c.clock.Now(),
		RoomID:      roomID,
	})

	log.Printf("[WIN] ¡BINGO! Cliente %s (%s) ganó el juego en sala %d", clientID, playerName, roomID)

	// First accepted win: stop drawing immediately and end the session.
	if len(st.winners) == 1 {
		c.stopDrawLocked(st)
		st.running = false
		st.ended = true
		log.Printf("[WIN] Juego detenido en sala %d - primer ganador detectado", roomID)
	}

	// One window per game. Later wins inside the window join the same
	// payout; they never re-arm it.
	if !st.windowArmed {
		st.windowArmed = true
		c.clock.AfterFunc(game_constants.WINNER_CONSOLIDATION_WINDOW, func() {
			c.consolidateWinners(roomID)
		})
	}
}

// consolidateWinners fires when the consolidation window closes: the winner
// set is frozen, prizes are computed and broadcast, and the room-closing
// notification is armed.
func (c *Coordinator) consolidateWinners(roomID int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	st := c.room(roomID)
	if st.payoutDone || len(st.winners) == 0 {
		return
	}
	st.payoutDone = true

	log.Printf("[WIN] Procesando %d ganador(es) en sala %d", len(st.winners), roomID)

	prizeInfo := CalculatePrizes(st.pool.Total, len(st.winners), c.cfg.HousePercentage)

	decorated := make([]gin.H, len(st.winners))
	for i, w := range st.winners {
		decorated[i] = winnerPayload(w, prizeInfo)
	}

	message := fmt.Sprintf("¡%s ganó el juego!", st.winners[0].PlayerName)
	if len(st.winners) > 1 {
		message = fmt.Sprintf("¡%d jugadores ganaron simultáneamente!", len(st.winners))
	}

	c.transport.EmitToRoom(roomID, "gameEnded", gin.H{
		"winners":   decorated,
		"winner":    decorated[0],
		"message":   message,
		"prizeInfo": prizeInfo,
	})

	first := st.winners[0]
	c.transport.EmitToRoom(roomID, "playerWon", gin.H{
		"winners":     decorated,
		"winner":      decorated[0],
		"clientId":    first.ClientID,
		"playerName":  first.PlayerName,
		"victoryType": first.VictoryType,
		"card":        first.Card,
		"cardMatrix":  first.CardMatrix,
		"timestamp":   first.Timestamp,
		"prizeInfo":   prizeInfo,
	})

	for _, payload := range decorated {
		clientID := payload["clientId"].(string)
		if !c.transport.EmitToClient(clientID, "victoryConfirmed", payload) {
			log.Printf("[WIN-WARN] Ganador %s ya no está conectado, no se envió victoryConfirmed", clientID)
		}
	}

	log.Printf("[WIN] Pozo total: %.2f | Corte de la casa: %.2f | Premio por ganador: %.2f",
		prizeInfo.TotalPool, prizeInfo.HouseCut, prizeInfo.PrizePerWinner)

	// The closing notification always fires once armed, even if everyone
	// leaves normally in the meantime.
	c.clock.AfterFunc(game_constants.ROOM_CLOSING_DELAY, func() {
		log.Printf("[WIN] Enviando notificación de cierre de sala %d", roomID)
		c.transport.EmitToRoom(roomID, "showRoomClosingModal", gin.H{
			"roomId":    roomID,
			"countdown": game_constants.ROOM_CLOSING_COUNTDOWN,
		})
	})
}

func winnerPayload(w game_models.Winner, prizeInfo game_models.PrizeInfo) gin.H {
	return gin.H{
		"clientId":    w.ClientID,
		"playerName":  w.PlayerName,
		"card":        w.Card,
		"cardMatrix":  w.CardMatrix,
		"victoryType": w.VictoryType,
		"timestamp":   w.Timestamp,
		"roomId":      w.RoomID,
		"prize":       prizeInfo.PrizePerWinner,
		"totalPrize":  prizeInfo.TotalPrize,
		"houseCut":    prizeInfo.HouseCut,
		"totalPool":   prizeInfo.TotalPool,
	}
}
