package config

import (
	"fmt"
	"log"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"garasjelogg/internal/models"
)

var (
	// DB is the globally accessible database handle
	DB *gorm.DB
)

// InitDB opens the database connection using environment variables and
// migrates the schema. DB_DRIVER selects postgres (default) or mysql.
func InitDB() {
	driver := getEnv("DB_DRIVER", "postgres")
	host := getEnv("DB_HOST", "localhost")
	port := getEnv("DB_PORT", defaultPort(driver))
	user := getEnv("DB_USER", driver)
	password := getEnv("DB_PASSWORD", "password")
	dbname := getEnv("DB_NAME", "garasjelogg")
	sslmode := getEnv("DB_SSLMODE", "disable")
	timezone := getEnv("DB_TIMEZONE", "UTC")

	var dialector gorm.Dialector
	switch driver {
	case "mysql":
		dsn := fmt.Sprintf(
			"%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=%s",
			user, password, host, port, dbname, timezone,
		)
		dialector = mysql.Open(dsn)
	case "postgres":
		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
			host, user, password, dbname, port, sslmode, timezone,
		)
		dialector = postgres.Open(dsn)
	default:
		log.Fatalf("unsupported DB_DRIVER %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := Migrate(db); err != nil {
		log.Fatalf("auto-migration failed: %v", err)
	}

	// Assign to global
	DB = db
}

// Migrate applies the schema for all persisted entities.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.Vehicle{}, &models.ServiceEntry{})
}

func defaultPort(driver string) string {
	if driver == "mysql" {
		return "3306"
	}
	return "5432"
}

// GetDB returns the initialized DB handle
func GetDB() *gorm.DB {
	return DB
}
