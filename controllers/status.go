package controllers

import (
	"net/http"
	"time"

	"github.com/edevAr/Bingo-backend/config"
	socketio_types "github.com/edevAr/Bingo-backend/services/socket_io/types"

	"github.com/gin-gonic/gin"
)

// StatusController serves the plain HTTP status view of the server.
type StatusController struct {
	Cfg       *config.Game
	Sio       *socketio_types.SocketServer
	StartedAt time.Time
}

// GetServerStatus reports the server as online together with the live
// connection count and the game configuration.
func (s *StatusController) GetServerStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "online",
		"uptime": time.Since(s.StartedAt).String(),
		"game": gin.H{
			"totalClients": s.Sio.TotalClients(),
			"config": gin.H{
				"delay":     s.Cfg.DrawInterval.Milliseconds(),
				"minNumber": s.Cfg.MinNumber,
				"maxNumber": s.Cfg.MaxNumber,
			},
		},
	})
}
