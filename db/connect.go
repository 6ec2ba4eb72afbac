package db

import (
	"fmt"
	"log"
	"strings"

	"github.com/MUTHUKUMARAN-K-01/FinanceTracker/confs"
	"github.com/MUTHUKUMARAN-K-01/FinanceTracker/entities"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the Postgres connection, tunes the pool and migrates the
// four tables. TranslateError is on so unique-constraint violations surface
// as gorm.ErrDuplicatedKey instead of a driver-specific error.
func Connect(cfg *confs.Config) (Database, error) {
	var dsn string

	if cfg.DatabaseURL != "" {
		// Hosted databases want SSL; add it when the URL doesn't say.
		dsn = cfg.DatabaseURL
		if !strings.Contains(dsn, "sslmode=") {
			if strings.Contains(dsn, "?") {
				dsn += "&sslmode=require"
			} else {
				dsn += "?sslmode=require"
			}
		}
		log.Println("Connecting to database using DB_URL...")
	} else {
		if cfg.DBHost == "" || cfg.DBPort == "" || cfg.DBUser == "" || cfg.DBPassword == "" || cfg.DBName == "" {
			return nil, fmt.Errorf("missing required database configuration: DB_URL or (DB_HOST, DB_PORT, DB_USER, DB_PASSWORD, DB_NAME)")
		}

		sslMode := "require"
		if cfg.DBHost == "localhost" || cfg.DBHost == "127.0.0.1" {
			sslMode = "disable"
		}

		dsn = fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
			cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort, sslMode)
		log.Printf("Connecting to database using individual parameters (sslmode=%s)...", sslMode)
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		PrepareStmt:    true,
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(0)

	log.Println("Database connection established successfully!")

	log.Println("Running database migrations...")
	if err := db.AutoMigrate(
		&entities.User{},
		&entities.FinancialProfile{},
		&entities.ChatMessage{},
		&entities.FinancialGoal{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	log.Println("Database migrations completed successfully!")

	return &GormDatabase{DB: db}, nil
}
