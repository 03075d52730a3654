// Package testutil 测试用的内存数据库
package testutil

import (
	"testing"

	"ecotrack_backend/internal/model"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB 每个测试独立的内存 SQLite，只保留一个连接，事务内必须使用 tx
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.DailyLog{},
		&model.Challenge{},
		&model.ChallengeParticipant{},
	))
	return db
}

// CreateUser 写入一个测试用户
func CreateUser(t *testing.T, db *gorm.DB, name, university, department string, points int) *model.User {
	t.Helper()
	user := &model.User{
		Name:       name,
		Email:      name + "@example.edu",
		Password:   "x",
		University: university,
		Department: department,
		Points:     points,
		Level:      1,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}
