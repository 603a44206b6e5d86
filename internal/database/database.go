package database

import (
	"tamapet/config"
	"tamapet/internal/models"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewDB(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(cfg.DatabaseDSN), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	})
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	return db, nil
}

// AutoMigrate runs Gorm auto-migration for all models.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Animal{},
		&models.Action{},
		&models.CareLog{},
		&models.MoneyTransaction{},
		&models.AttendanceReward{},
		&models.AttendanceLog{},
		&models.BirthdayReward{},
		&models.Minigame{},
		&models.MinigameAttempt{},
		&models.UserMinigamePlay{},
		&models.EmotionMessage{},
		&models.AnimalPrice{},
	)
}
