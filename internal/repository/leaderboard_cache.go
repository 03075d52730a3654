package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/go-redis/redis/v8"
)

const leaderboardKeyPrefix = "leaderboard:"

// LeaderboardCache 排行榜结果缓存。Redis 未启用或 TTL 为 0 时所有操作都是空操作
type LeaderboardCache struct {
	Redis *redis.Client
	ttl   atomic.Int64
}

func NewLeaderboardCache(rdb *redis.Client, ttl time.Duration) *LeaderboardCache {
	c := &LeaderboardCache{Redis: rdb}
	c.SetTTL(ttl)
	return c
}

// SetTTL 配置热更新时调用
func (c *LeaderboardCache) SetTTL(ttl time.Duration) {
	c.ttl.Store(int64(ttl))
}

func (c *LeaderboardCache) TTL() time.Duration {
	return time.Duration(c.ttl.Load())
}

func (c *LeaderboardCache) enabled() bool {
	return c != nil && c.Redis != nil && c.TTL() > 0
}

// LeaderboardKey scope 为 global/university/department/rank
func LeaderboardKey(scope, value, sortKey string, limit int) string {
	return fmt.Sprintf("%s%s:%s:%s:%d", leaderboardKeyPrefix, scope, value, sortKey, limit)
}

// Get 命中时把缓存解码到 dest 并返回 true
func (c *LeaderboardCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	if !c.enabled() {
		return false, nil
	}
	raw, err := c.Redis.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		// 格式变化后的旧缓存直接丢弃
		c.Redis.Del(ctx, key)
		return false, nil
	}
	return true, nil
}

func (c *LeaderboardCache) Set(ctx context.Context, key string, value interface{}) error {
	if !c.enabled() {
		return nil
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.Redis.Set(ctx, key, raw, c.TTL()).Err()
}

// Invalidate 删除全部排行榜缓存，在提交日志或加入挑战后调用
func (c *LeaderboardCache) Invalidate(ctx context.Context) error {
	if c == nil || c.Redis == nil {
		return nil
	}

	var cursor uint64
	for {
		keys, next, err := c.Redis.Scan(ctx, cursor, leaderboardKeyPrefix+"*", 200).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := c.Redis.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = next
		if cursor == 0 {
			return nil
		}
	}
}
