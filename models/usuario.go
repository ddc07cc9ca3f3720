package models

import "time"

// Roles conocidos por el sistema. Los valores que lleguen de la base con
// otro nombre se conservan tal cual; el gate los trata como no reconocidos.
const (
	RolAdministrador = "ADMINISTRADOR"
	RolSecretaria    = "SECRETARIA"
	RolInstructor    = "INSTRUCTOR"
	RolAlumno        = "ALUMNO"
)

// Rol agrupa usuarios bajo un nivel de acceso.
type Rol struct {
	ID     uint   `json:"id" gorm:"primaryKey"`
	Nombre string `json:"nombre" gorm:"uniqueIndex;not null"`
}

// Usuario es una cuenta del back-office: personal de la escuela o alumno.
type Usuario struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Nombre    string    `json:"nombre" gorm:"not null"`
	Apellido  string    `json:"apellido"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"not null"`
	RolID     *uint     `json:"-" gorm:"index"`
	Rol       *Rol      `json:"rol,omitempty" gorm:"foreignKey:RolID"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NombreCompleto is the display name stamped onto bookings and ledger rows.
func (u *Usuario) NombreCompleto() string {
	if u.Apellido == "" {
		return u.Nombre
	}
	return u.Nombre + " " + u.Apellido
}

// NombreRol returns the role name or the empty string for users that have
// none assigned yet.
func (u *Usuario) NombreRol() string {
	if u.Rol == nil {
		return ""
	}
	return u.Rol.Nombre
}
