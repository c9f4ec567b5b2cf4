package socket_io

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/edevAr/Bingo-backend/services/game"
	"github.com/edevAr/Bingo-backend/services/socket_io/handlers"
	socketio_types "github.com/edevAr/Bingo-backend/services/socket_io/types"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io/v2/socket"
)

type MySocketServer socketio_types.SocketServer

// Start mounts the socket.io server on the gin router and registers every
// inbound event against the game coordinator.
func (sio *MySocketServer) Start(router *gin.Engine, coordinator *game.Coordinator) {
	c := socket.DefaultServerOptions()
	c.SetServeClient(true)
	c.SetAllowEIO3(true)
	// NOTE: high ping interval and timeout to 1) reduce network load and
	// 2) survive clients on slow connections
	c.SetPingInterval(25 * time.Second)
	c.SetPingTimeout(60 * time.Second)
	c.SetMaxHttpBufferSize(1000000)
	c.SetConnectTimeout(45 * time.Second)
	c.SetTransports(types.NewSet("polling", "websocket"))
	c.SetCors(&types.Cors{
		Origin:      "*",
		Credentials: true,
	})

	// KEY: inicializar el map, sino panikea
	sio.UserConnections = make(map[string]*socket.Socket)

	sio.Sio_server = socket.NewServer(nil, nil)
	sio.Sio_server.On("connection", func(clients ...interface{}) {
		client := clients[0].(*socket.Socket)
		clientID := string(client.Id())

		// Add connection to map
		(*socketio_types.SocketServer)(sio).AddConnection(clientID, client)

		// Greet with the empty game state and config
		coordinator.Connect(clientID)

		on := func(event string, handler func(args ...interface{})) {
			client.On(event, handlers.Guard(event, clientID, handler))
		}

		// Game lifecycle commands (only affect the caller's room)
		on("startGame", handlers.HandleStartGame(coordinator, clientID))
		on("stopGame", handlers.HandleStopGame(coordinator, clientID))
		on("resetGame", handlers.HandleResetGame(coordinator, clientID))

		// Session and room status queries
		on("getStatus", handlers.HandleGetStatus(coordinator, clientID))
		on("getRoomsStatus", handlers.HandleGetRoomsStatus(coordinator, clientID))

		// Buying cards joins the room and funds its pool
		on("purchaseCards", handlers.HandlePurchaseCards(coordinator, clientID))

		on("setPlayerName", handlers.HandleSetPlayerName(coordinator, clientID))

		on("leaveRoom", handlers.HandleLeaveRoom(coordinator, clientID))

		// Bingo claims: legacy event name and the newer one
		on("bingo", handlers.HandlePlayerWon(coordinator, clientID))
		on("playerWon", handlers.HandlePlayerWon(coordinator, clientID))

		on("chatMessage", handlers.HandleChatMessage(coordinator, clientID))

		// NOTE: will remove sio connection from map
		on("disconnect", handlers.HandleDisconnect(coordinator, (*socketio_types.SocketServer)(sio), clientID))
	})

	router.POST("/socket.io/*f", gin.WrapH(sio.Sio_server.ServeHandler(c)))
	router.GET("/socket.io/*f", gin.WrapH(sio.Sio_server.ServeHandler(c)))

	SignalC := make(chan os.Signal, 1)

	signal.Notify(SignalC, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	go func() {
		for s := range SignalC {
			switch s {
			case syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT:
				sio.Sio_server.Close(nil)
				os.Exit(0)
			}
		}
	}()

	fmt.Println("Socket server started")
}
