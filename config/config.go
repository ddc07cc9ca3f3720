package config

import (
	"log/slog"
	"os"
)

// JwtKey firma y valida los tokens de sesión.
var JwtKey []byte

// LoadConfig reads the environment the service needs to boot. Missing
// secrets are fatal; everything else has a sane default.
func LoadConfig() {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		slog.Error("Error crítico: la variable de entorno JWT_SECRET no está definida.")
		os.Exit(1)
	}
	JwtKey = []byte(secret)
}

// ServerAddr returns the listen address, honoring the PORT variable set
// by the hosting platform.
func ServerAddr() string {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	return ":" + port
}
