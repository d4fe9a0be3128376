package database

import (
	"cinevault/config"
	"cinevault/models"
	"fmt"
	"log"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// DbInstance struct holds the database connection instance
type DbInstance struct {
	Db *gorm.DB
}

// Database is the global database instance
var Database DbInstance

// ConnectDb establishes a connection using the driver named in config.
// Postgres is the default; mysql and sqlite are supported for
// alternative deployments and tests.
func ConnectDb() {
	cfg := config.AppConfig

	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "sqlite":
		dialector = sqlite.Open(cfg.DBName)
	case "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
		dialector = mysql.Open(dsn)
	default:
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			cfg.DBHost, cfg.DBUser, cfg.DBPass, cfg.DBName, cfg.DBPort)
		dialector = postgres.Open(dsn)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database (%s): %v", cfg.DBDriver, err)
	}

	// Set up connection pooling
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get database instance: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(0)

	runMigrations(db)

	Database = DbInstance{Db: db}
}

// runMigrations performs database migrations
func runMigrations(db *gorm.DB) {
	log.Println("Running Migrations...")

	err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Genre{},
		&models.Movie{},
		&models.Review{},
	)
	if err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Println("Migrations completed successfully.")
}

// DeleteMovieCascade removes a movie together with its reviews in one
// transaction. Either everything is deleted or nothing is.
func DeleteMovieCascade(db *gorm.DB, movieID uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("movie_id = ?", movieID).Delete(&models.Review{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&models.Movie{}, movieID).Error
	})
}

// DeleteUserCascade removes a user, the movies they own, reviews on
// those movies, and reviews the user authored elsewhere.
func DeleteUserCascade(db *gorm.DB, userID uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var movieIDs []uint
		if err := tx.Model(&models.Movie{}).Where("user_id = ?", userID).Pluck("id", &movieIDs).Error; err != nil {
			return err
		}
		if len(movieIDs) > 0 {
			if err := tx.Unscoped().Where("movie_id IN ?", movieIDs).Delete(&models.Review{}).Error; err != nil {
				return err
			}
			if err := tx.Unscoped().Where("id IN ?", movieIDs).Delete(&models.Movie{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Unscoped().Where("user_id = ?", userID).Delete(&models.Review{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&models.User{}, userID).Error
	})
}
