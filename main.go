package main

import (
	"log"
	"os"

	"github.com/edevAr/Bingo-backend/config"
	"github.com/edevAr/Bingo-backend/middleware"
	"github.com/edevAr/Bingo-backend/routes"
	"github.com/edevAr/Bingo-backend/services/game"
	"github.com/edevAr/Bingo-backend/services/socket_io"
	socketio_types "github.com/edevAr/Bingo-backend/services/socket_io/types"

	"github.com/coder/quartz"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	godotenv.Load()
	log.Println("Setting up server...")

	if os.Getenv("PROD") == "true" {
		gin.SetMode(gin.ReleaseMode)
	}

	cfg := config.LoadGame()
	log.Printf("Delay configurado: %v | Rango de números: %d-%d",
		cfg.DrawInterval, cfg.MinNumber, cfg.MaxNumber)

	r := gin.Default()

	middleware.SetUpMiddleware(r)

	sio := socketio_types.NewSocketServer()
	coordinator := game.NewCoordinator(cfg, sio, quartz.NewReal())

	(*socket_io.MySocketServer)(sio).Start(r, coordinator)

	routes.SetupRoutes(r, cfg, sio)

	log.Printf("Servidor de Bingo iniciado en puerto %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}
