package model

import (
	"time"
)

// swagger:model User
type User struct {
	BaseModel
	Name                 string    `gorm:"size:100;not null" json:"name"`
	Email                string    `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Password             string    `gorm:"size:100;not null" json:"-"`
	University           string    `gorm:"size:150;index" json:"university"`
	Department           string    `gorm:"size:150;index" json:"department"`
	Points               int       `gorm:"default:0;index" json:"points"`
	Level                int       `gorm:"default:1" json:"level"`
	DailyScore           int       `gorm:"default:0" json:"dailyScore"`
	TotalCarbonFootprint float64   `gorm:"default:0" json:"totalCarbonFootprint"` // 累计排放 kg CO2e
	Badges               []string  `gorm:"serializer:json" json:"badges"`
	LastSeen             time.Time `json:"lastSeen"`
}

func (User) TableName() string {
	return "users"
}
