package handlers

import (
	"github.com/edevAr/Bingo-backend/services/game"
	socketio_utils "github.com/edevAr/Bingo-backend/services/socket_io/utils"
)

// Relay a chat message to the caller's room.
func HandleChatMessage(coordinator *game.Coordinator, clientID string) func(args ...interface{}) {
	return func(args ...interface{}) {
		payload := socketio_utils.PayloadMap(args)
		if payload == nil {
			return
		}
		coordinator.ChatMessage(clientID,
			socketio_utils.GetString(payload, "playerName"),
			socketio_utils.GetString(payload, "message"))
	}
}
