package repository

import (
	"ecotrack_backend/internal/model"
	"time"

	"gorm.io/gorm"
)

// DailyLogRepository 日志只追加，不提供修改和删除
type DailyLogRepository struct {
	DB *gorm.DB
}

func NewDailyLogRepository(db *gorm.DB) *DailyLogRepository {
	return &DailyLogRepository{DB: db}
}

func (r *DailyLogRepository) Create(tx *gorm.DB, log *model.DailyLog) error {
	if tx == nil {
		tx = r.DB
	}
	return tx.Create(log).Error
}

// FindSince 返回 since 之后创建的日志，最新的在前
func (r *DailyLogRepository) FindSince(userID uint, since time.Time) ([]model.DailyLog, error) {
	var logs []model.DailyLog
	err := r.DB.Where("user_id = ? AND created_at >= ?", userID, since).
		Order("created_at DESC").
		Order("id DESC").
		Find(&logs).Error
	return logs, err
}

// FindFirstSince 返回 since 之后最早的一条日志，没有时返回 nil
func (r *DailyLogRepository) FindFirstSince(userID uint, since time.Time) (*model.DailyLog, error) {
	var log model.DailyLog
	err := r.DB.Where("user_id = ? AND created_at >= ?", userID, since).
		Order("created_at ASC").
		Order("id ASC").
		First(&log).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &log, nil
}

func (r *DailyLogRepository) FindByUser(userID uint) ([]model.DailyLog, error) {
	var logs []model.DailyLog
	err := r.DB.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&logs).Error
	return logs, err
}
