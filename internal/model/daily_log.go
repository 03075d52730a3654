package model

import (
	"time"

	"ecotrack_backend/pkg/carbon"
)

// DailyLog 每次提交的活动记录与计算结果，创建后不再修改
// swagger:model DailyLog
type DailyLog struct {
	BaseModel
	UserID                  uint                   `gorm:"index;not null" json:"userId"`
	Date                    time.Time              `gorm:"index" json:"date"`
	Transportation          *carbon.Transportation `gorm:"serializer:json" json:"transportation,omitempty"`
	Meals                   []carbon.Meal          `gorm:"serializer:json" json:"meals"`
	DigitalWaste            *carbon.DigitalWaste   `gorm:"serializer:json" json:"digitalWaste,omitempty"`
	TransportationEmissions float64                `json:"transportationEmissions"`
	MealEmissions           float64                `json:"mealEmissions"`
	DigitalEmissions        float64                `json:"digitalEmissions"`
	TotalCarbonForDay       float64                `gorm:"default:0" json:"totalCarbonForDay"`
	SustainabilityScore     int                    `json:"sustainabilityScore"`
	ChallengesCompleted     []string               `gorm:"serializer:json" json:"challengesCompleted"`
}

func (DailyLog) TableName() string {
	return "daily_logs"
}
