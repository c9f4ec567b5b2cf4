package socketio_types

import (
	"sync"

	socketio_utils "github.com/edevAr/Bingo-backend/services/socket_io/utils"

	"github.com/zishang520/socket.io/v2/socket"
)

// SocketServer wraps the socket.io server and a map of live connections.
// It is the transport the game coordinator broadcasts through.
type SocketServer struct {
	Sio_server *socket.Server
	// Map to track clientID -> socket connections
	UserConnections map[string]*socket.Socket
	mutex           sync.RWMutex
}

func NewSocketServer() *SocketServer {
	return &SocketServer{
		UserConnections: make(map[string]*socket.Socket),
	}
}

func (s *SocketServer) AddConnection(clientID string, client *socket.Socket) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.UserConnections[clientID] = client
}

func (s *SocketServer) RemoveConnection(clientID string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	delete(s.UserConnections, clientID)
}

func (s *SocketServer) GetConnection(clientID string) (*socket.Socket, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	client, exists := s.UserConnections[clientID]
	return client, exists
}

// TotalClients reports the number of live connections.
func (s *SocketServer) TotalClients() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.UserConnections)
}

// JoinRoom subscribes a connection to a room's broadcast group.
func (s *SocketServer) JoinRoom(clientID string, roomID int) {
	if client, exists := s.GetConnection(clientID); exists {
		client.Join(socket.Room(socketio_utils.RoomKey(roomID)))
	}
}

// LeaveRoom unsubscribes a connection from a room's broadcast group.
func (s *SocketServer) LeaveRoom(clientID string, roomID int) {
	if client, exists := s.GetConnection(clientID); exists {
		client.Leave(socket.Room(socketio_utils.RoomKey(roomID)))
	}
}

// EmitToRoom broadcasts an event to every member of a room.
func (s *SocketServer) EmitToRoom(roomID int, event string, data interface{}) {
	s.Sio_server.To(socket.Room(socketio_utils.RoomKey(roomID))).Emit(event, data)
}

// EmitToAll broadcasts an event to every connected client.
func (s *SocketServer) EmitToAll(event string, data interface{}) {
	s.Sio_server.Emit(event, data)
}

// EmitToClient sends an event to a single connection. Reports whether the
// connection was still known.
func (s *SocketServer) EmitToClient(clientID string, event string, data interface{}) bool {
	client, exists := s.GetConnection(clientID)
	if !exists {
		return false
	}
	client.Emit(event, data)
	return true
}
