package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/ALEJO200244346760/KBNAdmin/internal/handlers"
	"github.com/ALEJO200244346760/KBNAdmin/internal/middleware"
	"github.com/ALEJO200244346760/KBNAdmin/models"
)

// RegisterAPIRoutes registra las rutas autenticadas.
func RegisterAPIRoutes(g *gin.RouterGroup) {
	// Lista de usuarios: la usan el selector de instructores de los
	// formularios y la resolución de id por email de la sesión.
	g.GET("/usuario", handlers.ListarUsuariosHandler)

	soloAdmin := middleware.RequireRoles(models.RolAdministrador)
	personal := middleware.RequireRoles(models.RolAdministrador, models.RolSecretaria)

	api := g.Group("/api")
	{
		clases := api.Group("/clases")
		{
			clases.POST("/guardar", handlers.GuardarClaseHandler)
			clases.GET("/listar", soloAdmin, handlers.ListarClasesHandler)
			clases.PUT("/asignar/:id", soloAdmin, handlers.AsignarIngresoHandler)
			clases.GET("/reporte", soloAdmin, handlers.ReporteHandler)
			clases.GET("/reporte/export", soloAdmin, handlers.ExportarReporteHandler)
			clases.GET("/estadisticas", handlers.EstadisticasHandler)
		}

		agenda := api.Group("/agenda")
		{
			agenda.POST("/crear", personal, handlers.CrearAgendaHandler)
			agenda.GET("/listar", personal, handlers.ListarAgendaHandler)
			agenda.GET("/instructor/:id", handlers.ListarPorInstructorHandler)
			agenda.PUT("/:id/estado",
				middleware.RequireRoles(models.RolAdministrador, models.RolInstructor),
				handlers.CambiarEstadoHandler)
			agenda.POST("/:id/reasignar", personal, handlers.ReasignarAgendaHandler)
			agenda.GET("/ws", personal, handlers.AgendaWSHandler)
		}
	}

	admin := g.Group("/administracion")
	admin.Use(soloAdmin)
	{
		admin.GET("/roles", handlers.ListarRolesHandler)
		admin.POST("/roles", handlers.CrearRolHandler)
		admin.PUT("/users/:id", handlers.ActualizarUsuarioHandler)
		admin.DELETE("/users/:id", handlers.EliminarUsuarioHandler)
		admin.PUT("/users/:id/roles", handlers.AsignarRolHandler)
	}
}
