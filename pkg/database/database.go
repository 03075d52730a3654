package database

import (
	"ecotrack_backend/internal/config"
	"ecotrack_backend/internal/model"
	"fmt"
	"log"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig, mode string) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	logLevel := logger.Warn
	if mode == "debug" {
		logLevel = logger.Info
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(time.Hour)

	log.Println("Database connection established")
	return db, nil
}

// Migrate 建表并写入默认挑战
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&model.User{},
		&model.DailyLog{},
		&model.Challenge{},
		&model.ChallengeParticipant{},
	)
	if err != nil {
		return err
	}

	log.Println("Database migration completed")

	return SeedChallenges(db, time.Now())
}

// DefaultChallenges 首次部署时写入的挑战，从 now 起持续 30 天
func DefaultChallenges(now time.Time) []model.Challenge {
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	end := start.AddDate(0, 0, 30)

	return []model.Challenge{
		{
			Name:         "Car-Free Week",
			Description:  "Walk, cycle or take public transport instead of driving for 7 days.",
			Category:     model.ChallengeTransportation,
			Difficulty:   model.DifficultyMedium,
			PointsReward: 30,
			TargetValue:  7,
			StartDate:    start,
			EndDate:      end,
		},
		{
			Name:         "Meatless Monday",
			Description:  "Replace 3 meat meals with vegetarian or vegan options.",
			Category:     model.ChallengeDiet,
			Difficulty:   model.DifficultyEasy,
			PointsReward: 10,
			TargetValue:  3,
			StartDate:    start,
			EndDate:      end,
		},
		{
			Name:         "Digital Detox",
			Description:  "Keep video streaming under 1 hour a day for 5 days.",
			Category:     model.ChallengeDigital,
			Difficulty:   model.DifficultyHard,
			PointsReward: 50,
			TargetValue:  5,
			StartDate:    start,
			EndDate:      end,
		},
	}
}

// SeedChallenges 挑战表为空时写入默认挑战
func SeedChallenges(db *gorm.DB, now time.Time) error {
	var count int64
	if err := db.Model(&model.Challenge{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	challenges := DefaultChallenges(now)
	return db.Create(&challenges).Error
}
