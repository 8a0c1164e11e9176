package service

import (
	"context"
	"errors"
	"log"

	"talenthub/internal/cache"
	"talenthub/internal/form"
	"talenthub/internal/model"
	"talenthub/internal/repository"
)

var ErrJobNotFound = errors.New("job not found")

// AssessmentService is the persistence gateway for assessment documents:
// whole-document loads and saves over the Mongo repository with a Redis
// read-through cache in front.
type AssessmentService struct {
	assessmentRepo  repository.AssessmentRepo
	jobRepo         repository.JobRepo
	assessmentCache cache.AssessmentCache
}

// NewAssessmentService creates a new assessment service
func NewAssessmentService(assessmentRepo repository.AssessmentRepo, jobRepo repository.JobRepo, assessmentCache cache.AssessmentCache) *AssessmentService {
	return &AssessmentService{
		assessmentRepo:  assessmentRepo,
		jobRepo:         jobRepo,
		assessmentCache: assessmentCache,
	}
}

// LoadOrInit returns the job's stored assessment, or a fresh unsaved one
// titled after the job when none exists yet. ErrJobNotFound if the job id
// itself is unknown.
func (s *AssessmentService) LoadOrInit(ctx context.Context, jobID string) (*model.Assessment, error) {
	if s.assessmentCache != nil {
		if cached, err := s.assessmentCache.Get(ctx, jobID); err == nil && cached != nil {
			return cached, nil
		}
	}

	assessment, err := s.assessmentRepo.GetByJobID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if assessment != nil {
		s.cacheSet(ctx, assessment)
		return assessment, nil
	}

	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, ErrJobNotFound
	}

	fresh := form.NewAssessment(job.ID, job.Title)
	return &fresh, nil
}

// Get returns the stored assessment only, nil when none exists.
func (s *AssessmentService) Get(ctx context.Context, jobID string) (*model.Assessment, error) {
	if s.assessmentCache != nil {
		if cached, err := s.assessmentCache.Get(ctx, jobID); err == nil && cached != nil {
			return cached, nil
		}
	}
	assessment, err := s.assessmentRepo.GetByJobID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if assessment != nil {
		s.cacheSet(ctx, assessment)
	}
	return assessment, nil
}

// Save persists the whole document and refreshes the cache.
func (s *AssessmentService) Save(ctx context.Context, assessment *model.Assessment) error {
	if err := s.assessmentRepo.Save(ctx, assessment); err != nil {
		return err
	}
	s.cacheSet(ctx, assessment)
	return nil
}

// Delete removes the job's assessment; unknown job ids are a no-op.
func (s *AssessmentService) Delete(ctx context.Context, jobID string) error {
	assessment, err := s.assessmentRepo.GetByJobID(ctx, jobID)
	if err != nil {
		return err
	}
	if assessment == nil {
		return nil
	}
	if err := s.assessmentRepo.Delete(ctx, assessment.ID); err != nil {
		return err
	}
	s.cacheDel(ctx, jobID)
	return nil
}

func (s *AssessmentService) cacheSet(ctx context.Context, assessment *model.Assessment) {
	if s.assessmentCache == nil {
		return
	}
	if err := s.assessmentCache.Set(ctx, assessment); err != nil {
		log.Printf("assessment cache set failed: %v", err)
	}
}

func (s *AssessmentService) cacheDel(ctx context.Context, jobID string) {
	if s.assessmentCache == nil {
		return
	}
	if err := s.assessmentCache.Delete(ctx, jobID); err != nil {
		log.Printf("assessment cache delete failed: %v", err)
	}
}
