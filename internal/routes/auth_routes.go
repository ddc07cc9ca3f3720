package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/ALEJO200244346760/KBNAdmin/internal/handlers"
)

// RegisterAuthRoutes registra las rutas que no requieren token.
func RegisterAuthRoutes(r *gin.Engine) {
	// La raíz redirige según el rol del token, si lo hay.
	r.GET("/", handlers.HomeRedirectHandler)

	r.POST("/login", handlers.LoginHandler)
	r.POST("/register", handlers.RegisterHandler)
}
