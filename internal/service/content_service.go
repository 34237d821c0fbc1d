package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"sofreh_salawat_backend/internal/model"
	"sofreh_salawat_backend/internal/repository"
	"sofreh_salawat_backend/internal/util"
	"sofreh_salawat_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	contentCacheKeyPrefix = "content:list:"
	contentCacheTTL       = 10 * time.Minute
)

// ContentService serves the read-only catalog. List responses are
// cached in Redis; admin writes invalidate the whole prefix.
type ContentService struct {
	ContentRepo *repository.ContentRepository
	Redis       *redis.Client
}

func NewContentService(contentRepo *repository.ContentRepository, rdb *redis.Client) *ContentService {
	return &ContentService{
		ContentRepo: contentRepo,
		Redis:       rdb,
	}
}

type contentPage struct {
	Items []model.ReligiousContent `json:"items"`
	Total int64                    `json:"total"`
}

func (s *ContentService) List(ctx context.Context, contentType model.ContentType, page, limit int) ([]model.ReligiousContent, int64, error) {
	if contentType != "" && !model.ValidContentType(contentType) {
		return nil, 0, util.ErrInvalidContentType
	}

	key := fmt.Sprintf("%s%s:%d:%d", contentCacheKeyPrefix, contentType, page, limit)
	if s.Redis != nil {
		if val, err := s.Redis.Get(ctx, key).Result(); err == nil {
			var cached contentPage
			if json.Unmarshal([]byte(val), &cached) == nil {
				return cached.Items, cached.Total, nil
			}
		}
	}

	items, total, err := s.ContentRepo.ListActive(contentType, page, limit)
	if err != nil {
		return nil, 0, err
	}

	if s.Redis != nil {
		if payload, err := json.Marshal(contentPage{Items: items, Total: total}); err == nil {
			if err := s.Redis.Set(ctx, key, payload, contentCacheTTL).Err(); err != nil {
				logger.Log.Warn("content cache write failed", zap.Error(err))
			}
		}
	}

	return items, total, nil
}

func (s *ContentService) ListByType(contentType model.ContentType) ([]model.ReligiousContent, error) {
	if !model.ValidContentType(contentType) {
		return nil, util.ErrInvalidContentType
	}
	return s.ContentRepo.ListActiveByType(contentType)
}

func (s *ContentService) Create(content *model.ReligiousContent) error {
	if !model.ValidContentType(content.Type) {
		return util.ErrInvalidContentType
	}
	if err := s.ContentRepo.Create(content); err != nil {
		return err
	}
	s.invalidateCache(context.Background())
	return nil
}

func (s *ContentService) Update(id string, apply func(*model.ReligiousContent)) (*model.ReligiousContent, error) {
	content, err := s.ContentRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrContentNotFound
		}
		return nil, err
	}

	apply(content)
	if !model.ValidContentType(content.Type) {
		return nil, util.ErrInvalidContentType
	}

	if err := s.ContentRepo.Update(content); err != nil {
		return nil, err
	}
	s.invalidateCache(context.Background())
	return content, nil
}

func (s *ContentService) Delete(id string) error {
	if _, err := s.ContentRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrContentNotFound
		}
		return err
	}
	if err := s.ContentRepo.Delete(id); err != nil {
		return err
	}
	s.invalidateCache(context.Background())
	return nil
}

// SetAudioURL attaches an uploaded audio file to a content row.
func (s *ContentService) SetAudioURL(id, url string) (*model.ReligiousContent, error) {
	return s.Update(id, func(c *model.ReligiousContent) {
		c.AudioURL = url
	})
}

func (s *ContentService) invalidateCache(ctx context.Context) {
	if s.Redis == nil {
		return
	}
	keys, err := s.Redis.Keys(ctx, contentCacheKeyPrefix+"*").Result()
	if err != nil || len(keys) == 0 {
		return
	}
	if err := s.Redis.Del(ctx, keys...).Err(); err != nil {
		logger.Log.Warn("content cache invalidation failed", zap.Error(err))
	}
}
