package repository

import (
	"ecotrack_backend/internal/model"
	"ecotrack_backend/internal/util"
	"time"

	"gorm.io/gorm"
)

type ChallengeRepository struct {
	DB *gorm.DB
}

func NewChallengeRepository(db *gorm.DB) *ChallengeRepository {
	return &ChallengeRepository{DB: db}
}

func (r *ChallengeRepository) Create(challenge *model.Challenge) error {
	return r.DB.Create(challenge).Error
}

func (r *ChallengeRepository) FindByID(id uint) (*model.Challenge, error) {
	var challenge model.Challenge
	err := r.DB.Preload("Participants").First(&challenge, id).Error
	return &challenge, err
}

// FindActive 查询 at 时刻进行中的挑战（首尾都算）
func (r *ChallengeRepository) FindActive(at time.Time) ([]model.Challenge, error) {
	var challenges []model.Challenge
	err := r.DB.Where("start_date <= ? AND end_date >= ?", at, at).
		Order("end_date ASC").
		Find(&challenges).Error
	return challenges, err
}

// AddParticipant 同一用户重复加入返回 util.ErrAlreadyJoined
func (r *ChallengeRepository) AddParticipant(challengeID, userID uint) (*model.ChallengeParticipant, error) {
	participant := &model.ChallengeParticipant{
		ChallengeID: challengeID,
		UserID:      userID,
	}

	err := r.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.ChallengeParticipant{}).
			Where("challenge_id = ? AND user_id = ?", challengeID, userID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return util.ErrAlreadyJoined
		}
		return tx.Create(participant).Error
	})
	if err != nil {
		return nil, err
	}
	return participant, nil
}

// ParticipantCounts 一次查询各挑战的参与人数，没有参与者的挑战不在结果中
func (r *ChallengeRepository) ParticipantCounts(challengeIDs []uint) (map[uint]int64, error) {
	counts := make(map[uint]int64, len(challengeIDs))
	if len(challengeIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		ChallengeID uint
		Total       int64
	}
	err := r.DB.Model(&model.ChallengeParticipant{}).
		Select("challenge_id, COUNT(*) AS total").
		Where("challenge_id IN ?", challengeIDs).
		Group("challenge_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		counts[row.ChallengeID] = row.Total
	}
	return counts, nil
}
