package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/caafimaad-ai/triage/pkg/common/logger"
	"github.com/caafimaad-ai/triage/pkg/common/models"
	"github.com/caafimaad-ai/triage/pkg/triage"
	"github.com/redis/go-redis/v9"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("assessment not found")

// AssessmentRecord is the persisted form of one assessment. The normalized
// feature row is kept as JSONB so past predictions stay auditable against
// schema changes.
type AssessmentRecord struct {
	ID             string            `gorm:"primaryKey"`
	Label          string            `gorm:"column:label"`
	Tier           string            `gorm:"column:tier"`
	Recommendation string            `gorm:"column:recommendation"`
	Notice         string            `gorm:"column:notice"`
	RedFlagCount   int               `gorm:"column:red_flag_count"`
	Record         datatypes.JSONMap `gorm:"type:jsonb"`
	CreatedAt      time.Time         `gorm:"column:created_at"`
}

func (AssessmentRecord) TableName() string {
	return "assessments"
}

// AssessmentStore persists assessments in Postgres with a read-through Redis
// cache. The cache is best-effort; cache failures never fail a request.
type AssessmentStore struct {
	db       *gorm.DB
	cache    *redis.Client
	cacheTTL time.Duration
}

func NewAssessmentStore(db *gorm.DB, cache *redis.Client, cacheTTL time.Duration) *AssessmentStore {
	return &AssessmentStore{db: db, cache: cache, cacheTTL: cacheTTL}
}

func (s *AssessmentStore) AutoMigrate() error {
	return s.db.AutoMigrate(&AssessmentRecord{})
}

func (s *AssessmentStore) Save(ctx context.Context, a *models.Assessment) error {
	rec := &AssessmentRecord{
		ID:             a.ID,
		Label:          a.Label,
		Tier:           a.Tier,
		Recommendation: a.Recommendation,
		Notice:         a.Notice,
		RedFlagCount:   a.RedFlagCount,
		Record:         datatypes.JSONMap(a.Record),
		CreatedAt:      a.CreatedAt,
	}
	if err := s.db.WithContext(ctx).Create(rec).Error; err != nil {
		return err
	}
	s.cachePut(ctx, a)
	return nil
}

func (s *AssessmentStore) Get(ctx context.Context, id string) (*models.Assessment, error) {
	if cached := s.cacheGet(ctx, id); cached != nil {
		return cached, nil
	}

	var rec AssessmentRecord
	result := s.db.WithContext(ctx).First(&rec, "id = ?", id)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if result.Error != nil {
		return nil, result.Error
	}

	a := &models.Assessment{
		ID:             rec.ID,
		Label:          rec.Label,
		Tier:           rec.Tier,
		Style:          triage.Tier(rec.Tier).Style(),
		Recommendation: rec.Recommendation,
		Notice:         rec.Notice,
		RedFlagCount:   rec.RedFlagCount,
		Record:         map[string]interface{}(rec.Record),
		CreatedAt:      rec.CreatedAt,
	}
	s.cachePut(ctx, a)
	return a, nil
}

func cacheKey(id string) string {
	return fmt.Sprintf("assessment:%s", id)
}

func (s *AssessmentStore) cachePut(ctx context.Context, a *models.Assessment) {
	if s.cache == nil {
		return
	}
	data, err := json.Marshal(a)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, cacheKey(a.ID), data, s.cacheTTL).Err(); err != nil {
		logger.Log.WithError(err).WithField("assessment_id", a.ID).Debug("failed to cache assessment")
	}
}

func (s *AssessmentStore) cacheGet(ctx context.Context, id string) *models.Assessment {
	if s.cache == nil {
		return nil
	}
	data, err := s.cache.Get(ctx, cacheKey(id)).Bytes()
	if err != nil {
		return nil
	}
	var a models.Assessment
	if err := json.Unmarshal(data, &a); err != nil {
		return nil
	}
	return &a
}
