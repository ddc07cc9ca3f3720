package config

import (
	"log/slog"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/ALEJO200244346760/KBNAdmin/models"
)

var DB *gorm.DB

// ConnectDB opens the postgres connection from DB_URL. Sin base de datos
// el servicio no tiene nada que hacer, así que el error es fatal.
func ConnectDB() {
	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		slog.Error("Error crítico: la variable de entorno DB_URL no está definida.")
		os.Exit(1)
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		slog.Error("Error al conectar a la base de datos", "error", err)
		os.Exit(1)
	}

	DB = db
	slog.Info("Conexión a la base de datos establecida")
}

// MigrateDB keeps the schema in sync with the models at boot.
func MigrateDB() {
	err := DB.AutoMigrate(
		&models.Rol{},
		&models.Usuario{},
		&models.Agenda{},
		&models.ClaseRegistro{},
	)
	if err != nil {
		slog.Error("Error al migrar el esquema", "error", err)
		os.Exit(1)
	}
}
