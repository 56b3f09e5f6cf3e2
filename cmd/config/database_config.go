package config

import (
	"EcoPanier/internal/utils"
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const defaultSQLitePath = "ecopanier.db"

// ConnectDB opens postgres unless DB_DRIVER selects sqlite.
func ConnectDB() (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch utils.GetConfig("DB_DRIVER") {
	case "sqlite":
		dialector = sqlite.Open(utils.GetConfigOr("DB_PATH", defaultSQLitePath))
	default:
		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=%s",
			utils.GetConfig("DB_HOST"),
			utils.GetConfig("DB_USER"),
			utils.GetConfig("DB_PASSWORD"),
			utils.GetConfig("DB_NAME"),
			utils.GetConfig("DB_PORT"),
			utils.GetConfigOr("TIMEZONE", "Europe/Paris"),
		)
		dialector = postgres.Open(dsn)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		log.Printf("Database connection failed: %v", err)
		return nil, err
	}
	return db, nil
}
