package handlers

import (
	"log"

	"github.com/edevAr/Bingo-backend/services/game"
)

// Start the number draw in the caller's room.
func HandleStartGame(coordinator *game.Coordinator, clientID string) func(args ...interface{}) {
	return func(args ...interface{}) {
		log.Printf("[GAME] Cliente %s solicitó iniciar el juego", clientID)
		coordinator.StartGame(clientID)
	}
}

// Pause the number draw in the caller's room.
func HandleStopGame(coordinator *game.Coordinator, clientID string) func(args ...interface{}) {
	return func(args ...interface{}) {
		log.Printf("[GAME] Cliente %s solicitó detener el juego", clientID)
		coordinator.StopGame(clientID)
	}
}

// Reset the caller's room: stop, clear history and winners.
func HandleResetGame(coordinator *game.Coordinator, clientID string) func(args ...interface{}) {
	return func(args ...interface{}) {
		log.Printf("[GAME] Cliente %s solicitó reiniciar el juego", clientID)
		coordinator.ResetGame(clientID)
	}
}

// Answer the caller with its room's session state.
func HandleGetStatus(coordinator *game.Coordinator, clientID string) func(args ...interface{}) {
	return func(args ...interface{}) {
		coordinator.GetStatus(clientID)
	}
}

// Answer the caller with the aggregate status of every room.
func HandleGetRoomsStatus(coordinator *game.Coordinator, clientID string) func(args ...interface{}) {
	return func(args ...interface{}) {
		coordinator.GetRoomsStatus(clientID)
	}
}
