package routes

import (
	"time"

	"github.com/edevAr/Bingo-backend/config"
	"github.com/edevAr/Bingo-backend/controllers"
	socketio_types "github.com/edevAr/Bingo-backend/services/socket_io/types"

	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, cfg *config.Game, sio *socketio_types.SocketServer) {
	statusController := &controllers.StatusController{
		Cfg:       cfg,
		Sio:       sio,
		StartedAt: time.Now(),
	}

	router.GET("/", statusController.GetServerStatus)
}
