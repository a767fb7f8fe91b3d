package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/BerniceZTT/product_console/utils"

	"github.com/go-redis/redis/v8"
)

// RedisStore 基于Redis的会话存储
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisClient 创建Redis客户端并检查连接
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("连接Redis失败: %w", err)
	}
	utils.Logger.Info().Str("addr", addr).Int("db", db).Msg("已连接到Redis")
	return client, nil
}

// NewRedisStore 创建Redis会话存储
func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	return &RedisStore{client: client, prefix: prefix}
}

func (s *RedisStore) key(k string) string {
	return s.prefix + k
}

// Get 读取
func (s *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := s.client.Get(ctx, s.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("读取会话 %s 失败: %w", key, err)
	}
	return v, true, nil
}

// Set 写入，不设置过期时间
func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, s.key(key), value, 0).Err(); err != nil {
		return fmt.Errorf("写入会话 %s 失败: %w", key, err)
	}
	return nil
}

// Remove 删除
func (s *RedisStore) Remove(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.key(key)).Err(); err != nil {
		return fmt.Errorf("删除会话 %s 失败: %w", key, err)
	}
	return nil
}

// Take 使用 GETDEL 原子地读取并删除
func (s *RedisStore) Take(ctx context.Context, key string) (string, bool, error) {
	v, err := s.client.GetDel(ctx, s.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("读取会话 %s 失败: %w", key, err)
	}
	return v, true, nil
}
