package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dangerclosesec/scholar/internal/domain"
	"github.com/dangerclosesec/scholar/internal/repository"
)

const homeStatsKey = "stats:home"

// HomeStats are the public dashboard counts.
type HomeStats struct {
	Users         int64 `json:"users"`
	Journals      int64 `json:"journals"`
	Conferences   int64 `json:"conferences"`
	Patents       int64 `json:"patents"`
	DeptAttended  int64 `json:"dept_attended"`
	DeptConducted int64 `json:"dept_conducted"`
}

// UserStats counts the research records a user owns or co-owns.
type UserStats struct {
	Journals    int64 `json:"journals"`
	Conferences int64 `json:"conferences"`
	Patents     int64 `json:"patents"`
}

type StatsService struct {
	cache   *CacheService
	users   repository.UserRepositoryIface
	catalog *Catalog
}

func NewStatsService(cache *CacheService, users repository.UserRepositoryIface, catalog *Catalog) *StatsService {
	return &StatsService{cache: cache, users: users, catalog: catalog}
}

// Home returns the dashboard counts, served from cache until the TTL lapses.
func (s *StatsService) Home(ctx context.Context) (HomeStats, error) {
	var stats HomeStats
	err := s.cache.GetOrSet(ctx, homeStatsKey, &stats, func(ctx context.Context) (interface{}, error) {
		return s.countHome(ctx)
	})
	if err != nil {
		slog.ErrorContext(ctx, "home stats failed", "error", err)
		return HomeStats{}, fmt.Errorf("home stats: %w", domain.ErrInternal)
	}
	return stats, nil
}

func (s *StatsService) countHome(ctx context.Context) (HomeStats, error) {
	var (
		stats HomeStats
		err   error
	)
	if stats.Users, err = s.users.Count(ctx); err != nil {
		return stats, err
	}
	if stats.Journals, err = s.catalog.Journals.CountAll(ctx); err != nil {
		return stats, err
	}
	if stats.Conferences, err = s.catalog.Conferences.CountAll(ctx); err != nil {
		return stats, err
	}
	if stats.Patents, err = s.catalog.Patents.CountAll(ctx); err != nil {
		return stats, err
	}
	if stats.DeptAttended, err = s.catalog.DeptAttended.CountAll(ctx); err != nil {
		return stats, err
	}
	if stats.DeptConducted, err = s.catalog.DeptConducted.CountAll(ctx); err != nil {
		return stats, err
	}
	return stats, nil
}

// ForUser returns the caller's own research counts. It is never cached.
func (s *StatsService) ForUser(ctx context.Context, p domain.Principal) (UserStats, error) {
	if p.ID == "" {
		return UserStats{}, domain.ErrUnauthorized
	}

	var (
		stats UserStats
		err   error
	)
	if stats.Journals, err = s.catalog.Journals.CountFor(ctx, p.ID); err != nil {
		return UserStats{}, err
	}
	if stats.Conferences, err = s.catalog.Conferences.CountFor(ctx, p.ID); err != nil {
		return UserStats{}, err
	}
	if stats.Patents, err = s.catalog.Patents.CountFor(ctx, p.ID); err != nil {
		return UserStats{}, err
	}
	return stats, nil
}
