package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	statsCacheKey = "dashboard:stats"
	statsCacheTTL = 60 * time.Second
)

//go:generate mockgen -source=dashboard_service.go -destination=mock/dashboard_service_mock.go -package=mock
type Service interface {
	Stats(ctx context.Context) (StatsResponse, error)
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	group  singleflight.Group
	logger *zap.Logger
}

// NewService builds the dashboard service. rdb may be nil, in which case
// every call hits the database directly.
func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("dashboard.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dashboard.service")
	}
	return &service{
		repo:   repo,
		rdb:    rdb,
		logger: l,
	}
}

func (s *service) Stats(ctx context.Context) (StatsResponse, error) {
	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, statsCacheKey).Result()
		switch {
		case err == nil:
			var resp StatsResponse
			if jsonErr := json.Unmarshal([]byte(cached), &resp); jsonErr == nil {
				return resp, nil
			}
			s.logger.Warn("dashboard cache entry unreadable, refreshing")
		case !errors.Is(err, redis.Nil):
			s.logger.Warn("dashboard cache read failed", zap.Error(err))
		}
	}

	// Collapse concurrent refills into one database round trip.
	v, err, _ := s.group.Do(statsCacheKey, func() (interface{}, error) {
		return s.compute(ctx)
	})
	if err != nil {
		return StatsResponse{}, err
	}
	resp := v.(StatsResponse)

	if s.rdb != nil {
		payload, jsonErr := json.Marshal(resp)
		if jsonErr == nil {
			if err := s.rdb.Set(ctx, statsCacheKey, payload, statsCacheTTL).Err(); err != nil {
				s.logger.Warn("dashboard cache write failed", zap.Error(err))
			}
		}
	}

	return resp, nil
}

func (s *service) compute(ctx context.Context) (StatsResponse, error) {
	summary, err := s.repo.Summary(ctx)
	if err != nil {
		s.logger.Error("dashboard summary query failed", zap.Error(err))
		return StatsResponse{}, err
	}

	statuses, err := s.repo.StatusDistribution(ctx)
	if err != nil {
		s.logger.Error("dashboard status distribution query failed", zap.Error(err))
		return StatsResponse{}, err
	}

	monthly, err := s.repo.MonthlyHiring(ctx)
	if err != nil {
		s.logger.Error("dashboard monthly hiring query failed", zap.Error(err))
		return StatsResponse{}, err
	}

	designations, err := s.repo.Designations(ctx)
	if err != nil {
		s.logger.Error("dashboard designation query failed", zap.Error(err))
		return StatsResponse{}, err
	}

	if statuses == nil {
		statuses = []StatusCount{}
	}
	if monthly == nil {
		monthly = []MonthlyCount{}
	}
	if designations == nil {
		designations = []DesignationCount{}
	}

	return StatsResponse{
		Summary:            summary,
		StatusDistribution: statuses,
		MonthlyHiring:      monthly,
		Designations:       designations,
	}, nil
}
