package main

import (
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/ALEJO200244346760/KBNAdmin/config"
	"github.com/ALEJO200244346760/KBNAdmin/internal/handlers"
	"github.com/ALEJO200244346760/KBNAdmin/internal/routes"
)

func main() {
	config.LoadConfig()
	config.ConnectDB()
	config.MigrateDB()
	config.ConnectRedis()
	config.SeedAdmin()

	go handlers.HubAgenda.Run()

	r := gin.Default()
	routes.SetupRoutes(r)

	addr := config.ServerAddr()
	slog.Info("KBN Admin escuchando", "addr", addr)
	if err := r.Run(addr); err != nil {
		slog.Error("El servidor terminó con error", "error", err)
		os.Exit(1)
	}
}
