// Package gate decide qué pantalla puede ver cada rol. Es la única copia
// de la tabla de redirecciones que históricamente vivía repetida en cada
// revisión del router.
package gate

import "github.com/ALEJO200244346760/KBNAdmin/models"

// Pantalla es una pantalla navegable del back-office.
type Pantalla string

const (
	PantallaRaiz       Pantalla = "/"
	PantallaLogin      Pantalla = "/login"
	PantallaRegister   Pantalla = "/register"
	PantallaAdmin      Pantalla = "/admin"
	PantallaSecretaria Pantalla = "/secretaria"
	PantallaInstructor Pantalla = "/instructor"
	PantallaReportes   Pantalla = "/reportes"
	PantallaUsuarios   Pantalla = "/usuarios"
)

// rolesPermitidos: qué roles pueden entrar a cada pantalla protegida.
var rolesPermitidos = map[Pantalla][]string{
	PantallaAdmin:      {models.RolAdministrador},
	PantallaSecretaria: {models.RolSecretaria},
	PantallaInstructor: {models.RolInstructor, models.RolAlumno},
	PantallaReportes:   {models.RolAdministrador},
	PantallaUsuarios:   {models.RolAdministrador},
}

// RolesPermitidos returns the roles allowed into a screen, nil for public
// screens.
func RolesPermitidos(p Pantalla) []string {
	return rolesPermitidos[p]
}

// HomePara returns the canonical home screen for a role. Un rol no
// reconocido (o vacío) vuelve al login.
func HomePara(rol string) Pantalla {
	switch rol {
	case models.RolAdministrador:
		return PantallaAdmin
	case models.RolSecretaria:
		return PantallaSecretaria
	case models.RolInstructor, models.RolAlumno:
		return PantallaInstructor
	}
	return PantallaLogin
}

// Estado es lo que el gate necesita saber de la sesión.
type Estado struct {
	Cargando bool
	Rol      string // vacío = no autenticado
}

// Decision resuelve un intento de navegación.
type Decision struct {
	// Esperar: la sesión todavía se está resolviendo; no renderizar nada.
	Esperar bool
	// Permitido: la pantalla pedida se muestra.
	Permitido bool
	// RedirigirA: destino cuando no está permitido.
	RedirigirA Pantalla
}

// Decidir maps (estado de sesión, pantalla pedida) onto exactly one
// outcome. La raíz siempre se resuelve por la misma tabla de prioridad de
// roles; no hay una lógica de "home" aparte.
func Decidir(e Estado, destino Pantalla) Decision {
	if e.Cargando {
		return Decision{Esperar: true}
	}

	if destino == PantallaLogin || destino == PantallaRegister {
		return Decision{Permitido: true}
	}

	if e.Rol == "" {
		return Decision{RedirigirA: PantallaLogin}
	}

	if destino == PantallaRaiz {
		return Decision{RedirigirA: HomePara(e.Rol)}
	}

	permitidos, conocida := rolesPermitidos[destino]
	if !conocida {
		return Decision{RedirigirA: HomePara(e.Rol)}
	}
	for _, rol := range permitidos {
		if rol == e.Rol {
			return Decision{Permitido: true}
		}
	}
	return Decision{RedirigirA: HomePara(e.Rol)}
}
