package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"nptel_prep_backend/internal/config"
	"nptel_prep_backend/internal/quiz"
	"nptel_prep_backend/internal/util"
	"nptel_prep_backend/pkg/logger"
	"nptel_prep_backend/pkg/monitoring"

	"github.com/go-redis/redis/v8"
	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const (
	coursesCacheKey      = "catalog:courses"
	courseCacheKeyPrefix = "catalog:course:"
)

// CatalogService proxies the upstream course catalog API, caching responses
// in redis so browsing and quiz-building do not hammer the upstream.
type CatalogService struct {
	Client *resty.Client
	Redis  *redis.Client
	Cfg    *config.Config
}

func NewCatalogService(cfg *config.Config, rdb *redis.Client) *CatalogService {
	client := resty.New().
		SetBaseURL(cfg.Catalog.BaseURL).
		SetTimeout(cfg.Catalog.RequestTimeout).
		SetHeader("Accept", "application/json")
	if cfg.Catalog.APIKey != "" {
		client.SetHeader("X-API-Key", cfg.Catalog.APIKey)
	}

	return &CatalogService{
		Client: client,
		Redis:  rdb,
		Cfg:    cfg,
	}
}

// CourseDetail is the upstream course payload, with the assignment list
// parsed out for the quiz engine. Materials pass through untouched.
type CourseDetail struct {
	CourseCode  string            `json:"course_code"`
	Title       string            `json:"title"`
	Materials   json.RawMessage   `json:"materials"`
	Assignments []quiz.Assignment `json:"assignments"`
}

// GetCourses returns the upstream course list as-is.
func (s *CatalogService) GetCourses(ctx context.Context) (json.RawMessage, error) {
	return s.fetch(ctx, "/courses", coursesCacheKey)
}

func (s *CatalogService) GetCourse(ctx context.Context, courseCode string) (*CourseDetail, error) {
	body, err := s.fetch(ctx, "/courses/"+courseCode, courseCacheKeyPrefix+courseCode)
	if err != nil {
		return nil, err
	}

	var detail CourseDetail
	if err := json.Unmarshal(body, &detail); err != nil {
		return nil, fmt.Errorf("decoding course %s: %w", courseCode, err)
	}
	if detail.CourseCode == "" {
		detail.CourseCode = courseCode
	}
	return &detail, nil
}

func (s *CatalogService) fetch(ctx context.Context, path, cacheKey string) (json.RawMessage, error) {
	ttl := s.Cfg.Catalog.CacheTTL
	if ttl > 0 {
		cached, err := s.Redis.Get(ctx, cacheKey).Bytes()
		if err == nil {
			monitoring.CatalogCacheCounter.WithLabelValues("hit").Inc()
			return cached, nil
		}
		if err != redis.Nil {
			logger.Log.Warn("catalog cache read failed", zap.String("key", cacheKey), zap.Error(err))
		}
	}
	monitoring.CatalogCacheCounter.WithLabelValues("miss").Inc()

	resp, err := s.Client.R().SetContext(ctx).Get(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", util.ErrCatalogUnavailable, err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return nil, util.ErrCourseNotFound
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("%w: upstream returned %d", util.ErrCatalogUnavailable, resp.StatusCode())
	}

	body := resp.Body()
	if ttl > 0 {
		if err := s.Redis.Set(ctx, cacheKey, body, ttl).Err(); err != nil {
			logger.Log.Warn("catalog cache write failed", zap.String("key", cacheKey), zap.Error(err))
		}
	}
	return body, nil
}

// InvalidateCourse drops a course's cached payload, forcing a refetch.
func (s *CatalogService) InvalidateCourse(ctx context.Context, courseCode string) {
	s.Redis.Del(ctx, courseCacheKeyPrefix+courseCode)
}
