package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/ALEJO200244346760/KBNAdmin/internal/middleware"
)

// SetupRoutes inicializa todas las rutas de la aplicación.
func SetupRoutes(r *gin.Engine) {
	// Rutas públicas: login, registro y la redirección de la raíz.
	RegisterAuthRoutes(r)

	// Todo lo demás exige un token válido.
	authRequired := r.Group("/")
	authRequired.Use(middleware.AuthMiddleware())
	{
		RegisterAPIRoutes(authRequired)
	}
}
