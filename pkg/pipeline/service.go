package pipeline

import (
	"context"
	"errors"
	"strings"

	"github.com/caafimaad-ai/triage/pkg/common/logger"
	"github.com/caafimaad-ai/triage/pkg/common/models"
	"github.com/caafimaad-ai/triage/pkg/features"
	"github.com/caafimaad-ai/triage/pkg/storage"
)

var (
	errAgeRequired        = errors.New("age group required")
	errNoSymptoms         = errors.New("at least one symptom group required")
	ErrAssessmentNotFound = storage.ErrNotFound
)

type ValidationError struct {
	reason error
}

func (e ValidationError) Error() string {
	return e.reason.Error()
}

func (e ValidationError) Unwrap() error {
	return e.reason
}

func IsValidationError(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}

// EventPublisher publishes assessment lifecycle events. kafka.Producer
// satisfies it.
type EventPublisher interface {
	PublishEvent(ctx context.Context, eventType string, source string, data map[string]interface{}) error
}

// Service orchestrates one assessment request: intake validation, engine
// evaluation, persistence and event publication. Store and publisher are
// optional; evaluation succeeds without either.
type Service struct {
	engine    *Engine
	store     *storage.AssessmentStore
	publisher EventPublisher
}

func NewService(engine *Engine, store *storage.AssessmentStore, publisher EventPublisher) *Service {
	return &Service{engine: engine, store: store, publisher: publisher}
}

func (s *Service) Assess(ctx context.Context, req models.AssessRequest) (*models.Assessment, error) {
	if strings.TrimSpace(req.AgeGroup) == "" {
		return nil, ValidationError{reason: errAgeRequired}
	}
	if len(req.Symptoms) == 0 {
		return nil, ValidationError{reason: errNoSymptoms}
	}

	obs, err := features.BuildObservations(req.AgeGroup, req.Symptoms, req.Answers)
	if err != nil {
		return nil, ValidationError{reason: err}
	}

	assessment, err := s.engine.Evaluate(ctx, obs)
	if err != nil {
		return nil, err
	}

	if s.store != nil {
		if err := s.store.Save(ctx, assessment); err != nil {
			logger.Log.WithError(err).WithField("assessment_id", assessment.ID).Warn("failed to persist assessment")
		}
	}

	if s.publisher != nil {
		data := map[string]interface{}{
			"assessment_id":  assessment.ID,
			"label":          assessment.Label,
			"tier":           assessment.Tier,
			"red_flag_count": assessment.RedFlagCount,
		}
		if err := s.publisher.PublishEvent(ctx, "assessment.completed", "triage-service", data); err != nil {
			logger.Log.WithError(err).WithField("assessment_id", assessment.ID).Warn("failed to publish assessment event")
		}
	}

	return assessment, nil
}

func (s *Service) Get(ctx context.Context, id string) (*models.Assessment, error) {
	if s.store == nil {
		return nil, ErrAssessmentNotFound
	}
	return s.store.Get(ctx, id)
}
