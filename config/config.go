package config

import (
	"os"
	"strconv"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"car-dealership-api/models"
)

// Config holds the environment-driven application configuration, loaded
// once at startup and passed down explicitly.
type Config struct {
	Port       string
	DBDriver   string // "sqlite" (default) or "mysql"
	DBPath     string // sqlite file
	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string
	JWTSecret  string
	JWTExpiry  time.Duration
	IsProd     bool
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Load reads .env if present and assembles the configuration.
func Load() *Config {
	_ = godotenv.Load()

	expiryHours := 24
	if v, err := strconv.Atoi(os.Getenv("JWT_EXPIRES_IN")); err == nil && v > 0 {
		expiryHours = v
	}

	return &Config{
		Port:       getEnv("PORT", "4404"),
		DBDriver:   getEnv("DB_DRIVER", "sqlite"),
		DBPath:     getEnv("DB_PATH", "car_dealership.db"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBHost:     getEnv("DB_HOST", "127.0.0.1"),
		DBPort:     getEnv("DB_PORT", "3306"),
		DBName:     os.Getenv("DB_NAME"),
		JWTSecret:  getEnv("JWT_SECRET", "car_dealership_dev_secret"),
		JWTExpiry:  time.Duration(expiryHours) * time.Hour,
		IsProd:     os.Getenv("IS_PROD") == "true",
	}
}

// OpenDB connects to the configured database and migrates the schema.
func OpenDB(cfg *Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "mysql":
		dsn := cfg.DBUser + ":" + cfg.DBPassword + "@tcp(" + cfg.DBHost + ":" + cfg.DBPort + ")/" + cfg.DBName + "?parseTime=true"
		dialector = mysql.Open(dsn)
	default:
		dialector = sqlite.Open(cfg.DBPath)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Car{},
		&models.Customer{},
		&models.Manager{},
		&models.Order{},
	); err != nil {
		return nil, err
	}

	return db, nil
}
