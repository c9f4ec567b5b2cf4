package socketio_utils

/**
 * Utility functions to format socket.io room names. Avoids calling
 * "fmt.Sprintf(...)" with the same format spec everywhere, potentially
 * confusing the room name format.
 */

import "fmt"

// RoomKey builds the socket.io broadcast group name for a game room.
// The "room_" prefix keeps game rooms apart from the per-socket rooms
// socket.io creates for every connection id.
func RoomKey(roomID int) string {
	return fmt.Sprintf("room_%d", roomID)
}
