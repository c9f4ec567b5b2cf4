package handlers

import (
	"log"

	game_models "github.com/edevAr/Bingo-backend/models/game"
	"github.com/edevAr/Bingo-backend/services/game"
	socketio_utils "github.com/edevAr/Bingo-backend/services/socket_io/utils"
)

// Buying cards is how a player joins a room: the purchase is credited to
// the room's pool and the buyer joins its broadcast group.
func HandlePurchaseCards(coordinator *game.Coordinator, clientID string) func(args ...interface{}) {
	return func(args ...interface{}) {
		payload := socketio_utils.PayloadMap(args)
		if payload == nil {
			log.Printf("[JOIN-ERROR] purchaseCards sin datos de compra (cliente %s)", clientID)
			return
		}

		coordinator.PurchaseCards(clientID, game_models.PurchaseRequest{
			RoomID:       socketio_utils.GetInt(payload, "roomId"),
			RoomName:     socketio_utils.GetString(payload, "roomName"),
			PlayerName:   socketio_utils.GetString(payload, "playerName"),
			CardQuantity: socketio_utils.GetInt(payload, "cardQuantity"),
			TotalPrice:   socketio_utils.GetFloat(payload, "totalPrice"),
		})
	}
}

// Register the caller's display name. Older clients address the name by
// clientId in the payload; the socket id is the fallback.
func HandleSetPlayerName(coordinator *game.Coordinator, clientID string) func(args ...interface{}) {
	return func(args ...interface{}) {
		payload := socketio_utils.PayloadMap(args)
		if payload == nil {
			return
		}
		target := socketio_utils.GetString(payload, "clientId")
		if target == "" {
			target = clientID
		}
		coordinator.SetPlayerName(target, socketio_utils.GetString(payload, "playerName"))
	}
}

// Leave the current room voluntarily.
func HandleLeaveRoom(coordinator *game.Coordinator, clientID string) func(args ...interface{}) {
	return func(args ...interface{}) {
		payload := socketio_utils.PayloadMap(args)
		coordinator.LeaveRoom(clientID, socketio_utils.GetInt(payload, "roomId"))
	}
}
