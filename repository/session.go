package repository

import (
	"context"
	"sync"

	"github.com/BerniceZTT/product_console/middleware"
	"github.com/BerniceZTT/product_console/models"
)

// SessionStore 会话键值存储，保存会话令牌和跨页面提示
type SessionStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
	// Take 读取并删除，用于一次性提示
	Take(ctx context.Context, key string) (string, bool, error)
}

// SessionTokenSource 从会话存储读取令牌
func SessionTokenSource(store SessionStore) middleware.TokenSource {
	return func(ctx context.Context) (string, error) {
		token, _, err := store.Get(ctx, models.SessionTokenKey)
		return token, err
	}
}

// MemoryStore 进程内会话存储
type MemoryStore struct {
	mu     sync.Mutex
	values map[string]string
}

// NewMemoryStore 创建进程内会话存储
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

// Get 读取
func (s *MemoryStore) Get(ctx context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok, nil
}

// Set 写入
func (s *MemoryStore) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

// Remove 删除
func (s *MemoryStore) Remove(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}

// Take 读取并删除
func (s *MemoryStore) Take(ctx context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	delete(s.values, key)
	return v, ok, nil
}
