package model

import (
	"time"
)

type ChallengeCategory string

const (
	ChallengeTransportation ChallengeCategory = "transportation"
	ChallengeDiet           ChallengeCategory = "diet"
	ChallengeDigital        ChallengeCategory = "digital"
	ChallengeGeneral        ChallengeCategory = "general"
)

type ChallengeDifficulty string

const (
	DifficultyEasy   ChallengeDifficulty = "easy"
	DifficultyMedium ChallengeDifficulty = "medium"
	DifficultyHard   ChallengeDifficulty = "hard"
)

// Challenge 限时环保挑战
// swagger:model Challenge
type Challenge struct {
	BaseModel
	Name         string                 `gorm:"size:150;not null" json:"name"`
	Description  string                 `gorm:"type:text" json:"description"`
	Category     ChallengeCategory      `gorm:"size:20;not null" json:"category"`
	Difficulty   ChallengeDifficulty    `gorm:"size:10;default:easy" json:"difficulty"`
	PointsReward int                    `gorm:"not null" json:"pointsReward"`
	TargetValue  float64                `json:"targetValue"` // 例如步行 5km、减少 3 顿肉食
	StartDate    time.Time              `gorm:"index" json:"startDate"`
	EndDate      time.Time              `gorm:"index" json:"endDate"`
	Participants []ChallengeParticipant `gorm:"foreignKey:ChallengeID" json:"participants,omitempty"`
}

func (Challenge) TableName() string {
	return "challenges"
}

// ChallengeParticipant 用户参与挑战的记录，同一用户对同一挑战只有一条
type ChallengeParticipant struct {
	ID          uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	ChallengeID uint       `gorm:"not null;uniqueIndex:idx_challenge_user" json:"challengeId"`
	UserID      uint       `gorm:"not null;uniqueIndex:idx_challenge_user" json:"userId"`
	Progress    float64    `gorm:"default:0" json:"progress"`
	Completed   bool       `gorm:"default:false" json:"completed"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	CreatedAt   time.Time  `json:"joinedAt"`
}

func (ChallengeParticipant) TableName() string {
	return "challenge_participants"
}
