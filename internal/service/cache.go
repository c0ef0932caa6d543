package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dangerclosesec/scholar/internal/cache"
	"github.com/dangerclosesec/scholar/internal/domain"
)

// CacheService keeps short-lived computed values such as dashboard counts.
type CacheService struct {
	cache *cache.InMemoryCache
}

type CacheConfig struct {
	TTL         time.Duration
	CleanupFreq time.Duration
}

// NewCacheService creates the cache and starts its sweeper, which runs until
// ctx is cancelled or Close is called.
func NewCacheService(ctx context.Context, config CacheConfig) *CacheService {
	c := cache.NewInMemoryCache(config.TTL, config.CleanupFreq)
	c.StartCleanup(ctx)
	return &CacheService{cache: c}
}

func (s *CacheService) Set(ctx context.Context, key string, value interface{}) error {
	if key == "" {
		return domain.ErrInvalidInput
	}
	s.cache.Set(ctx, key, value)
	return nil
}

// Get copies the cached value for key into result. A miss is domain.ErrNotFound.
func (s *CacheService) Get(ctx context.Context, key string, result interface{}) error {
	if key == "" {
		return domain.ErrInvalidInput
	}

	value, found := s.cache.Get(ctx, key)
	if !found {
		return domain.ErrNotFound
	}

	if raw, ok := value.([]byte); ok {
		if err := json.Unmarshal(raw, result); err != nil {
			return fmt.Errorf("unmarshaling cached %s: %w", key, err)
		}
		return nil
	}
	if err := assignValue(value, result); err != nil {
		return fmt.Errorf("assigning cached %s: %w", key, err)
	}
	return nil
}

// GetOrSet fills result from the cache, calling fetch and storing its value
// on a miss.
func (s *CacheService) GetOrSet(ctx context.Context, key string, result interface{}, fetch func(context.Context) (interface{}, error)) error {
	err := s.Get(ctx, key, result)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return err
	}

	value, err := fetch(ctx)
	if err != nil {
		return err
	}
	if err := s.Set(ctx, key, value); err != nil {
		return fmt.Errorf("storing %s: %w", key, err)
	}
	return assignValue(value, result)
}

func (s *CacheService) Delete(ctx context.Context, key string) error {
	if key == "" {
		return domain.ErrInvalidInput
	}
	s.cache.Delete(ctx, key)
	return nil
}

func (s *CacheService) Close() {
	s.cache.StopCleanup()
}

// assignValue copies src into dst, going through JSON when the types differ.
func assignValue(src interface{}, dst interface{}) error {
	if v, ok := dst.(*interface{}); ok {
		*v = src
		return nil
	}

	data, err := json.Marshal(src)
	if err != nil {
		return fmt.Errorf("marshaling value: %w", err)
	}
	return json.Unmarshal(data, dst)
}
