package middleware

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"

	"github.com/ALEJO200244346760/KBNAdmin/config"
	"github.com/ALEJO200244346760/KBNAdmin/internal/gate"
	"github.com/ALEJO200244346760/KBNAdmin/models"
)

// DatosUsuario es lo que el middleware cachea por usuario autenticado.
type DatosUsuario struct {
	UserID   uint   `json:"user_id"`
	Email    string `json:"email"`
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
	Rol      string `json:"rol"`
}

const cacheTTL = 10 * time.Minute

// CacheKeyUsuario is the redis key holding a user's cached identity.
func CacheKeyUsuario(userID uint) string {
	return fmt.Sprintf("usuario:%d:datos", userID)
}

// AuthMiddleware valida el JWT (cookie auth_token o header Authorization)
// y deja la identidad en el contexto. El rol sale de un caché en Redis y
// recién ante un miss se consulta la base.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, err := c.Cookie("auth_token")
		if err != nil || tokenStr == "" {
			authHeader := c.GetHeader("Authorization")
			if authHeader == "" {
				handleAuthError(c, "Token de autorización no provisto")
				return
			}
			partes := strings.Split(authHeader, " ")
			if len(partes) != 2 || strings.ToLower(partes[0]) != "bearer" {
				handleAuthError(c, "Formato del header Authorization inválido")
				return
			}
			tokenStr = partes[1]
		}

		token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("método de firma inesperado: %v", token.Header["alg"])
			}
			return config.JwtKey, nil
		})
		if err != nil || !token.Valid {
			c.SetCookie("auth_token", "", -1, "/", "", false, true)
			handleAuthError(c, "Token inválido o expirado")
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			handleAuthError(c, "Claims del token inválidos")
			return
		}
		userIDFloat, ok := claims["id"].(float64)
		if !ok {
			handleAuthError(c, "ID de usuario ausente en el token")
			return
		}
		userID := uint(userIDFloat)

		cacheKey := CacheKeyUsuario(userID)
		if config.RDB != nil {
			cached, err := config.RDB.Get(config.Ctx, cacheKey).Result()
			if err == nil {
				var datos DatosUsuario
				if json.Unmarshal([]byte(cached), &datos) == nil {
					setContextAndProceed(c, &datos)
					return
				}
				slog.Warn("Caché de usuario corrupto, se ignora", "user_id", userID)
			} else if err != redis.Nil {
				slog.Error("Fallo el GET contra Redis", "error", err, "user_id", userID)
			}
		}

		var usuario models.Usuario
		if err := config.DB.Preload("Rol").First(&usuario, userID).Error; err != nil {
			c.SetCookie("auth_token", "", -1, "/", "", false, true)
			handleAuthError(c, "El usuario del token no existe")
			return
		}

		datos := DatosUsuario{
			UserID:   usuario.ID,
			Email:    usuario.Email,
			Nombre:   usuario.Nombre,
			Apellido: usuario.Apellido,
			Rol:      usuario.NombreRol(),
		}

		if config.RDB != nil {
			if jsonDatos, err := json.Marshal(datos); err == nil {
				if err := config.RDB.Set(config.Ctx, cacheKey, jsonDatos, cacheTTL).Err(); err != nil {
					slog.Error("No se pudo cachear la identidad", "error", err, "user_id", userID)
				}
			}
		}

		setContextAndProceed(c, &datos)
	}
}

func setContextAndProceed(c *gin.Context, datos *DatosUsuario) {
	c.Set("user_id", datos.UserID)
	c.Set("email", datos.Email)
	c.Set("nombre", datos.Nombre)
	c.Set("apellido", datos.Apellido)
	c.Set("rol", datos.Rol)
	c.Next()
}

// RequireRoles corta el paso a quien no tenga uno de los roles dados.
// Los clientes HTML vuelven a su home canónico; los de API reciben 403.
func RequireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		rol := c.GetString("rol")
		for _, permitido := range roles {
			if rol == permitido {
				c.Next()
				return
			}
		}
		if strings.Contains(c.GetHeader("Accept"), "text/html") {
			c.Redirect(http.StatusFound, string(gate.HomePara(rol)))
		} else {
			c.JSON(http.StatusForbidden, gin.H{"error": "Permiso denegado"})
		}
		c.Abort()
	}
}

func handleAuthError(c *gin.Context, mensaje string) {
	if strings.Contains(c.GetHeader("Accept"), "text/html") {
		c.Redirect(http.StatusFound, string(gate.PantallaLogin))
	} else {
		c.JSON(http.StatusUnauthorized, gin.H{"error": mensaje})
	}
	c.Abort()
}
