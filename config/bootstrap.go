package config

import (
	"log/slog"
	"os"

	"golang.org/x/crypto/bcrypt"

	"github.com/ALEJO200244346760/KBNAdmin/models"
)

// SeedAdmin guarantees the base roles exist and that there is always at
// least one ADMINISTRADOR to log in with. Idempotente: no toca nada si
// el admin ya existe.
func SeedAdmin() {
	for _, nombre := range []string{
		models.RolAdministrador,
		models.RolSecretaria,
		models.RolInstructor,
		models.RolAlumno,
	} {
		rol := models.Rol{Nombre: nombre}
		if err := DB.Where("nombre = ?", nombre).FirstOrCreate(&rol).Error; err != nil {
			slog.Error("No se pudo asegurar el rol", "rol", nombre, "error", err)
			os.Exit(1)
		}
	}

	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@example.com"
	}

	var existente models.Usuario
	if err := DB.Where("email = ?", email).First(&existente).Error; err == nil {
		return
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		slog.Error("No se pudo generar el hash del admin", "error", err)
		os.Exit(1)
	}

	var rolAdmin models.Rol
	if err := DB.Where("nombre = ?", models.RolAdministrador).First(&rolAdmin).Error; err != nil {
		slog.Error("Rol ADMINISTRADOR no encontrado tras el seed", "error", err)
		os.Exit(1)
	}

	admin := models.Usuario{
		Nombre:   "admin",
		Apellido: "admin",
		Email:    email,
		Password: string(hash),
		RolID:    &rolAdmin.ID,
	}
	if err := DB.Create(&admin).Error; err != nil {
		slog.Error("No se pudo crear el usuario administrador", "error", err)
		os.Exit(1)
	}
	slog.Info("Usuario ADMINISTRADOR creado", "email", email)
}
