// Package events 领域事件定义与投递
package events

import (
	"context"
	"time"
)

const (
	TypeFootprintLogged = "footprint.logged"
	TypeChallengeJoined = "challenge.joined"
)

// Envelope 所有事件共用的外层结构
type Envelope struct {
	ID         string      `json:"id"`
	Type       string      `json:"type"`
	OccurredAt time.Time   `json:"occurredAt"`
	UserID     uint        `json:"userId"`
	Payload    interface{} `json:"payload"`
}

// FootprintLogged 用户提交一次每日活动后发出
type FootprintLogged struct {
	DailyLogID              uint    `json:"dailyLogId"`
	TransportationEmissions float64 `json:"transportationEmissions"`
	MealEmissions           float64 `json:"mealEmissions"`
	DigitalEmissions        float64 `json:"digitalEmissions"`
	TotalEmissions          float64 `json:"totalEmissions"`
	SustainabilityScore     int     `json:"sustainabilityScore"`
}

// ChallengeJoined 用户加入挑战后发出
type ChallengeJoined struct {
	ChallengeID uint   `json:"challengeId"`
	Name        string `json:"name"`
}

// Publisher 事件投递接口
type Publisher interface {
	Publish(ctx context.Context, eventType string, userID uint, payload interface{}) error
	Close() error
}

// NopPublisher 未启用 Kafka 时使用
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, string, uint, interface{}) error { return nil }

func (NopPublisher) Close() error { return nil }
