package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/hirewire/api/internal/cache"
	"github.com/hirewire/api/internal/pkg/log"
	"github.com/hirewire/api/jobs/models"
	"github.com/hirewire/api/jobs/repository"
)

// jobService implements JobService on top of the repository, with an
// optional read-through cache for single-job reads.
type jobService struct {
	repo     repository.JobRepository
	cache    cache.Cache
	cacheTTL time.Duration
}

// NewJobService creates a job service. cacheService may be nil to disable
// caching.
func NewJobService(repo repository.JobRepository, cacheService cache.Cache, cacheTTL time.Duration) JobService {
	return &jobService{
		repo:     repo,
		cache:    cacheService,
		cacheTTL: cacheTTL,
	}
}

func jobCacheKey(id int64) string {
	return "job:" + strconv.FormatInt(id, 10)
}

func (s *jobService) CreateJob(ctx context.Context, req *models.CreateJobRequest) (*models.Job, error) {
	job, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, err
	}
	return job, nil
}

func (s *jobService) QueryJobs(ctx context.Context, filter *models.JobFilter) ([]models.JobWithCompany, error) {
	jobs, err := s.repo.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	return jobs, nil
}

func (s *jobService) GetJob(ctx context.Context, id int64) (*models.JobDetails, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, jobCacheKey(id)); err == nil {
			var details models.JobDetails
			if err := json.Unmarshal(cached, &details); err == nil {
				return &details, nil
			}
			// A corrupt entry is dropped and served from the store.
			_ = s.cache.Delete(ctx, jobCacheKey(id))
		} else if !errors.Is(err, cache.ErrKeyNotFound) {
			log.WarnWithContext(ctx, "job cache read failed for %d: %v", id, err)
		}
	}

	details, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if encoded, err := json.Marshal(details); err == nil {
			if err := s.cache.Set(ctx, jobCacheKey(id), encoded, s.cacheTTL); err != nil {
				log.WarnWithContext(ctx, "job cache write failed for %d: %v", id, err)
			}
		}
	}

	return details, nil
}

func (s *jobService) UpdateJob(ctx context.Context, id int64, req *models.UpdateJobRequest) (*models.Job, error) {
	job, err := s.repo.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, id)
	return job, nil
}

func (s *jobService) DeleteJob(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete job: %w", err)
	}
	s.invalidate(ctx, id)
	return nil
}

func (s *jobService) invalidate(ctx context.Context, id int64) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, jobCacheKey(id)); err != nil {
		log.WarnWithContext(ctx, "job cache invalidation failed for %d: %v", id, err)
	}
}
