package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ALEJO200244346760/KBNAdmin/internal/gate"
	"github.com/ALEJO200244346760/KBNAdmin/internal/session"
)

// HomeRedirectHandler resuelve la raíz: cada rol va a su home canónico y
// quien no tenga sesión, al login. Acá alcanza con decodificar el token
// (sin verificar firma) porque solo se decide una redirección; las rutas
// protegidas verifican en serio.
func HomeRedirectHandler(c *gin.Context) {
	token, err := c.Cookie("auth_token")
	if err != nil || token == "" {
		if auth := c.GetHeader("Authorization"); strings.HasPrefix(strings.ToLower(auth), "bearer ") {
			token = auth[7:]
		}
	}

	estado := gate.Estado{}
	if token != "" {
		if id, err := session.Decode(token); err == nil {
			estado.Rol = id.Rol
		}
	}

	decision := gate.Decidir(estado, gate.PantallaRaiz)
	c.Redirect(http.StatusFound, string(decision.RedirigirA))
}
