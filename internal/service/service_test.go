package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"ecotrack_backend/internal/config"
	"ecotrack_backend/internal/repository"
	"ecotrack_backend/internal/testutil"

	"gorm.io/gorm"
)

type recordedEvent struct {
	Type    string
	UserID  uint
	Payload interface{}
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []recordedEvent
}

func (p *recordingPublisher) Publish(ctx context.Context, eventType string, userID uint, payload interface{}) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, recordedEvent{Type: eventType, UserID: userID, Payload: payload})
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

type fixture struct {
	db        *gorm.DB
	users     *repository.UserRepository
	logs      *repository.DailyLogRepository
	chals     *repository.ChallengeRepository
	cache     *repository.LeaderboardCache
	publisher *recordingPublisher
	storage   *StorageService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testutil.NewDB(t)
	return &fixture{
		db:        db,
		users:     repository.NewUserRepository(db),
		logs:      repository.NewDailyLogRepository(db),
		chals:     repository.NewChallengeRepository(db),
		cache:     repository.NewLeaderboardCache(nil, 30*time.Second),
		publisher: &recordingPublisher{},
		storage:   NewStorageService(&config.StorageConfig{Type: "local", LocalPath: t.TempDir()}),
	}
}

func (f *fixture) carbonService() *CarbonService {
	return NewCarbonService(f.db, f.users, f.logs, f.cache, f.publisher, f.storage)
}
