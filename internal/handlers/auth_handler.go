package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/ALEJO200244346760/KBNAdmin/config"
	"github.com/ALEJO200244346760/KBNAdmin/models"
)

// LoginInput son las credenciales del formulario de entrada.
type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterInput es el alta de autoservicio. El rol no se elige acá: todo
// registro nuevo arranca como ALUMNO y un admin lo sube después.
type RegisterInput struct {
	Nombre   string `json:"nombre" binding:"required"`
	Apellido string `json:"apellido"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginHandler verifica credenciales y emite el JWT de sesión. Los claims
// llevan el prefijo ROLE_ que los front ends ya saben limpiar.
func LoginHandler(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var usuario models.Usuario
	if err := config.DB.Preload("Rol").Where("email = ?", input.Email).First(&usuario).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Credenciales inválidas"})
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usuario.Password), []byte(input.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Credenciales inválidas"})
		return
	}

	roles := []string{}
	if rol := usuario.NombreRol(); rol != "" {
		roles = append(roles, "ROLE_"+rol)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":       usuario.ID,
		"nombre":   usuario.Nombre,
		"apellido": usuario.Apellido,
		"sub":      usuario.Email,
		"roles":    roles,
		"exp":      time.Now().Add(24 * time.Hour).Unix(),
	})
	tokenString, err := token.SignedString(config.JwtKey)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo generar el token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": tokenString})
}

// RegisterHandler crea un usuario nuevo con el rol base.
func RegisterHandler(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var existente models.Usuario
	if err := config.DB.Where("email = ?", input.Email).First(&existente).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Ya existe un usuario con ese email"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo procesar la contraseña"})
		return
	}

	var rolBase models.Rol
	if err := config.DB.Where("nombre = ?", models.RolAlumno).First(&rolBase).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Rol base no disponible"})
		return
	}

	usuario := models.Usuario{
		Nombre:   input.Nombre,
		Apellido: input.Apellido,
		Email:    input.Email,
		Password: string(hash),
		RolID:    &rolBase.ID,
	}
	if err := config.DB.Create(&usuario).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo crear el usuario"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Usuario registrado", "id": usuario.ID})
}
