package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/hirewire/api/companies/models"
	"github.com/hirewire/api/companies/repository"
	"github.com/hirewire/api/internal/cache"
	"github.com/hirewire/api/internal/pkg/log"
)

// companyService implements CompanyService on top of the repository, with
// an optional read-through cache for single-company reads.
type companyService struct {
	repo     repository.CompanyRepository
	cache    cache.Cache
	cacheTTL time.Duration
}

// NewCompanyService creates a company service. cacheService may be nil to
// disable caching.
func NewCompanyService(repo repository.CompanyRepository, cacheService cache.Cache, cacheTTL time.Duration) CompanyService {
	return &companyService{
		repo:     repo,
		cache:    cacheService,
		cacheTTL: cacheTTL,
	}
}

func companyCacheKey(handle string) string {
	return "company:" + handle
}

func (s *companyService) CreateCompany(ctx context.Context, req *models.CreateCompanyRequest) (*models.Company, error) {
	company, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, err
	}
	return company, nil
}

func (s *companyService) QueryCompanies(ctx context.Context, filter *models.CompanyFilter) ([]models.Company, error) {
	companies, err := s.repo.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	return companies, nil
}

func (s *companyService) GetCompany(ctx context.Context, handle string) (*models.CompanyDetails, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, companyCacheKey(handle)); err == nil {
			var details models.CompanyDetails
			if err := json.Unmarshal(cached, &details); err == nil {
				return &details, nil
			}
			// A corrupt entry is dropped and served from the store.
			_ = s.cache.Delete(ctx, companyCacheKey(handle))
		} else if !errors.Is(err, cache.ErrKeyNotFound) {
			log.WarnWithContext(ctx, "company cache read failed for %s: %v", handle, err)
		}
	}

	details, err := s.repo.GetByHandle(ctx, handle)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if encoded, err := json.Marshal(details); err == nil {
			if err := s.cache.Set(ctx, companyCacheKey(handle), encoded, s.cacheTTL); err != nil {
				log.WarnWithContext(ctx, "company cache write failed for %s: %v", handle, err)
			}
		}
	}

	return details, nil
}

func (s *companyService) UpdateCompany(ctx context.Context, handle string, req *models.UpdateCompanyRequest) (*models.Company, error) {
	company, err := s.repo.Update(ctx, handle, req)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, handle)
	return company, nil
}

func (s *companyService) DeleteCompany(ctx context.Context, handle string) error {
	if err := s.repo.Delete(ctx, handle); err != nil {
		return fmt.Errorf("failed to delete company: %w", err)
	}
	s.invalidate(ctx, handle)
	return nil
}

func (s *companyService) invalidate(ctx context.Context, handle string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, companyCacheKey(handle)); err != nil {
		log.WarnWithContext(ctx, "company cache invalidation failed for %s: %v", handle, err)
	}
}
