package handlers

import (
	"github.com/edevAr/Bingo-backend/services/game"
	socketio_types "github.com/edevAr/Bingo-backend/services/socket_io/types"
)

// Function to handle socket.io client disconnections. The connection is
// dropped from the map first so player counts in the membership broadcasts
// reflect the remaining clients.
func HandleDisconnect(coordinator *game.Coordinator, sio *socketio_types.SocketServer, clientID string) func(args ...interface{}) {
	return func(args ...interface{}) {
		sio.RemoveConnection(clientID)
		coordinator.Disconnect(clientID)
	}
}
