package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ALEJO200244346760/KBNAdmin/config"
	"github.com/ALEJO200244346760/KBNAdmin/internal/middleware"
	"github.com/ALEJO200244346760/KBNAdmin/models"
)

// UsuarioResponse es la vista pública de un usuario. Evita filtrar el hash
// de la contraseña en las respuestas.
type UsuarioResponse struct {
	ID       uint   `json:"id"`
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
	Email    string `json:"email"`
	Rol      string `json:"rol"`
}

func aUsuarioResponse(u models.Usuario) UsuarioResponse {
	return UsuarioResponse{
		ID:       u.ID,
		Nombre:   u.Nombre,
		Apellido: u.Apellido,
		Email:    u.Email,
		Rol:      u.NombreRol(),
	}
}

// ListarUsuariosHandler responde GET /usuario con la lista completa. La
// usan el selector de instructores y la resolución de id por email.
func ListarUsuariosHandler(c *gin.Context) {
	var usuarios []models.Usuario
	if err := config.DB.Preload("Rol").Order("id asc").Find(&usuarios).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudieron obtener los usuarios"})
		return
	}

	respuesta := make([]UsuarioResponse, 0, len(usuarios))
	for _, u := range usuarios {
		respuesta = append(respuesta, aUsuarioResponse(u))
	}
	c.JSON(http.StatusOK, respuesta)
}

// ListarRolesHandler devuelve todos los roles ordenados por nombre.
func ListarRolesHandler(c *gin.Context) {
	var roles []models.Rol
	if err := config.DB.Order("nombre").Find(&roles).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudieron obtener los roles"})
		return
	}
	if roles == nil {
		roles = make([]models.Rol, 0)
	}
	c.JSON(http.StatusOK, roles)
}

// CrearRolHandler da de alta un rol nuevo.
func CrearRolHandler(c *gin.Context) {
	var input struct {
		Nombre string `json:"nombre" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rol := models.Rol{Nombre: input.Nombre}
	if err := config.DB.Create(&rol).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo crear el rol: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, rol)
}

// AsignarRolHandler cambia el rol de un usuario (PUT
// /administracion/users/:id/roles, body {"rol": "INSTRUCTOR"}).
func AsignarRolHandler(c *gin.Context) {
	id := c.Param("id")

	var input struct {
		Rol string `json:"rol" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var usuario models.Usuario
	if err := config.DB.First(&usuario, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Usuario no encontrado"})
		return
	}

	var rol models.Rol
	if err := config.DB.Where("nombre = ?", input.Rol).First(&rol).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Rol no encontrado: " + input.Rol})
		return
	}

	usuario.RolID = &rol.ID
	if err := config.DB.Save(&usuario).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo asignar el rol"})
		return
	}

	invalidarCacheUsuario(usuario.ID)
	c.JSON(http.StatusOK, gin.H{"message": "Rol asignado exitosamente"})
}

// ActualizarUsuarioHandler edita los datos básicos. La contraseña nunca se
// toca por acá.
func ActualizarUsuarioHandler(c *gin.Context) {
	id := c.Param("id")

	var usuario models.Usuario
	if err := config.DB.First(&usuario, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Usuario no encontrado"})
		return
	}

	var input struct {
		Nombre   string `json:"nombre" binding:"required"`
		Apellido string `json:"apellido"`
		Email    string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	usuario.Nombre = input.Nombre
	usuario.Apellido = input.Apellido
	usuario.Email = input.Email
	if err := config.DB.Save(&usuario).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo actualizar el usuario"})
		return
	}

	invalidarCacheUsuario(usuario.ID)
	c.JSON(http.StatusOK, gin.H{"message": "Usuario actualizado correctamente"})
}

// EliminarUsuarioHandler borra la cuenta. La confirmación previa es
// responsabilidad del cliente; acá la llamada ya es definitiva.
func EliminarUsuarioHandler(c *gin.Context) {
	id := c.Param("id")

	var usuario models.Usuario
	if err := config.DB.First(&usuario, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Usuario no encontrado"})
		return
	}

	if err := config.DB.Delete(&usuario).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo eliminar el usuario"})
		return
	}

	invalidarCacheUsuario(usuario.ID)
	c.Status(http.StatusOK)
}

// invalidarCacheUsuario tira la identidad cacheada para que el próximo
// request vea el rol nuevo.
func invalidarCacheUsuario(userID uint) {
	if config.RDB == nil {
		return
	}
	clave := middleware.CacheKeyUsuario(userID)
	if err := config.RDB.Del(config.Ctx, clave).Err(); err != nil {
		slog.Warn("No se pudo invalidar el caché del usuario", "error", err, "user_id", userID)
	}
}
