package handlers

import (
	"log"

	game_models "github.com/edevAr/Bingo-backend/models/game"
	"github.com/edevAr/Bingo-backend/services/game"
	socketio_utils "github.com/edevAr/Bingo-backend/services/socket_io/utils"
)

// A bingo claim. Registered for both the legacy "bingo" event and the
// newer "playerWon" event; payloads differ only in which card field they
// fill in.
func HandlePlayerWon(coordinator *game.Coordinator, clientID string) func(args ...interface{}) {
	return func(args ...interface{}) {
		payload := socketio_utils.PayloadMap(args)
		if payload == nil {
			log.Printf("[WIN-ERROR] Victoria sin datos del ganador (cliente %s)", clientID)
			return
		}

		coordinator.ReportWin(clientID, game_models.WinClaim{
			RoomID:      socketio_utils.GetInt(payload, "roomId"),
			PlayerName:  socketio_utils.GetString(payload, "playerName"),
			Card:        payload["card"],
			CardMatrix:  payload["cardMatrix"],
			VictoryType: socketio_utils.GetString(payload, "victoryType"),
		})
	}
}
