package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"woofer/internal/app/ratelimit"
	"woofer/internal/app/sanitize"
	"woofer/internal/common"
	"woofer/internal/domain/model"
	"woofer/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// TimelineCache is the read-through cache in front of the woof list. A nil
// result with a nil error is a miss.
type TimelineCache interface {
	GetTimeline(ctx context.Context) ([]model.Woof, error)
	SetTimeline(ctx context.Context, list []model.Woof) error
	Invalidate(ctx context.Context) error
}

type WoofService struct {
	woofRepo  repository.WoofRepository
	limiter   *ratelimit.Limiter
	sanitizer *sanitize.Sanitizer
	cache     TimelineCache
	logger    *logrus.Logger
}

func NewWoofService(
	woofRepo repository.WoofRepository,
	limiter *ratelimit.Limiter,
	sanitizer *sanitize.Sanitizer,
	cache TimelineCache,
	logger *logrus.Logger,
) *WoofService {
	if logger == nil {
		logger = logrus.New()
	}
	return &WoofService{
		woofRepo:  woofRepo,
		limiter:   limiter,
		sanitizer: sanitizer,
		cache:     cache,
		logger:    logger,
	}
}

type CreateWoofRequest struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

// Create runs the write pipeline for one woof: validate, throttle, sanitize,
// stamp, persist. Validation runs before the rate-limit gate, so a rejected
// payload never consumes a window token. The sanitizer sees a copy of the
// already-validated input; validation always judges the raw fields.
func (s *WoofService) Create(ctx context.Context, clientKey string, req CreateWoofRequest) (*model.Woof, error) {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Content) == "" {
		return nil, fmt.Errorf("name and content are required: %w", common.ErrValidation)
	}

	if d := s.limiter.Allow(clientKey); !d.Allowed {
		return nil, &ratelimit.LimitExceededError{RetryAfter: d.RetryAfter}
	}

	woof := &model.Woof{
		ID:      uuid.NewString(),
		Name:    s.sanitizer.Clean(req.Name),
		Content: s.sanitizer.Clean(req.Content),
		Created: time.Now().UTC(),
	}
	if err := s.woofRepo.Insert(ctx, woof); err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			s.logger.WithError(err).Warn("failed to invalidate woof timeline cache")
		}
	}
	return woof, nil
}

// List returns the full timeline, serving from cache when possible. Cache
// failures degrade to the repository read and are only logged.
func (s *WoofService) List(ctx context.Context) ([]model.Woof, error) {
	if s.cache != nil {
		cached, err := s.cache.GetTimeline(ctx)
		if err != nil {
			s.logger.WithError(err).Warn("failed to read woof timeline cache")
		} else if cached != nil {
			return cached, nil
		}
	}

	woofs, err := s.woofRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetTimeline(ctx, woofs); err != nil {
			s.logger.WithError(err).Warn("failed to store woof timeline cache")
		}
	}
	return woofs, nil
}
