package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jobvault/vacancy-service/internal/apperr"
	"github.com/jobvault/vacancy-service/internal/hh"
	"github.com/jobvault/vacancy-service/internal/models"
	"github.com/jobvault/vacancy-service/internal/repository"
)

// VacancySearcher is the outbound dependency of the bulk importer.
type VacancySearcher interface {
	Search(ctx context.Context, text string, limit int) ([]hh.Vacancy, error)
}

// JobInput carries the mutable vacancy fields for create and update calls.
type JobInput struct {
	Title          string `json:"title" binding:"required"`
	Status         string `json:"status"`
	CompanyName    string `json:"company_name"`
	CompanyAddress string `json:"company_address"`
	LogoURL        string `json:"logo_url"`
	Description    string `json:"description"`
}

// ImportResult reports how many upstream records became new rows.
type ImportResult struct {
	Added int `json:"added"`
}

// JobService handles vacancy CRUD and bulk import.
type JobService interface {
	Create(ctx context.Context, input JobInput) (*models.Job, error)
	Get(ctx context.Context, id int64) (*models.Job, error)
	List(ctx context.Context) ([]models.Job, error)
	Update(ctx context.Context, id int64, input JobInput) (*models.Job, error)
	Delete(ctx context.Context, id int64) error
	Import(ctx context.Context, text string, limit int) (*ImportResult, error)
}

type jobService struct {
	jobRepo  repository.JobRepository
	searcher VacancySearcher
	log      *slog.Logger
}

// NewJobService creates a new JobService instance.
func NewJobService(jobRepo repository.JobRepository, searcher VacancySearcher, log *slog.Logger) JobService {
	return &jobService{
		jobRepo:  jobRepo,
		searcher: searcher,
		log:      log,
	}
}

func (s *jobService) Create(ctx context.Context, input JobInput) (*models.Job, error) {
	// Title uniqueness via lookup, same race window as user registration.
	if _, err := s.jobRepo.FindByTitle(ctx, input.Title); err == nil {
		return nil, apperr.ErrAlreadyExists
	} else if !errors.Is(err, apperr.ErrNotFound) {
		return nil, err
	}

	job := &models.Job{
		Title:          input.Title,
		Status:         input.Status,
		CompanyName:    input.CompanyName,
		CompanyAddress: input.CompanyAddress,
		LogoURL:        input.LogoURL,
		Description:    input.Description,
	}
	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, err
	}

	s.log.Info("job created", "id", job.ID, "title", job.Title)
	return job, nil
}

func (s *jobService) Get(ctx context.Context, id int64) (*models.Job, error) {
	return s.jobRepo.FindByID(ctx, id)
}

func (s *jobService) List(ctx context.Context) ([]models.Job, error) {
	return s.jobRepo.List(ctx)
}

func (s *jobService) Update(ctx context.Context, id int64, input JobInput) (*models.Job, error) {
	job, err := s.jobRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	job.Title = input.Title
	job.Status = input.Status
	job.CompanyName = input.CompanyName
	job.CompanyAddress = input.CompanyAddress
	job.LogoURL = input.LogoURL
	job.Description = input.Description

	if err := s.jobRepo.Update(ctx, job); err != nil {
		return nil, err
	}

	s.log.Info("job updated", "id", job.ID)
	return job, nil
}

func (s *jobService) Delete(ctx context.Context, id int64) error {
	if err := s.jobRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("job deleted", "id", id)
	return nil
}

// Import fetches vacancies from the external search API and stores the ones
// whose titles are not present yet. An unreachable upstream aborts the whole
// call before anything is written; once the records are fetched, each one is
// handled best-effort.
func (s *jobService) Import(ctx context.Context, text string, limit int) (*ImportResult, error) {
	vacancies, err := s.searcher.Search(ctx, text, limit)
	if err != nil {
		return nil, err
	}

	added := 0
	for _, v := range vacancies {
		if _, err := s.jobRepo.FindByTitle(ctx, v.Title); err == nil {
			continue
		} else if !errors.Is(err, apperr.ErrNotFound) {
			s.log.Warn("skipping vacancy, title lookup failed", "title", v.Title, "error", err)
			continue
		}

		job := &models.Job{
			Title:          v.Title,
			Status:         v.Status,
			CompanyName:    v.CompanyName,
			CompanyAddress: v.CompanyAddress,
			LogoURL:        v.LogoURL,
			Description:    v.Description,
		}
		if err := s.jobRepo.Create(ctx, job); err != nil {
			s.log.Warn("skipping vacancy, insert failed", "title", v.Title, "error", err)
			continue
		}
		added++
	}

	s.log.Info("import finished", "text", text, "fetched", len(vacancies), "added", added)
	return &ImportResult{Added: added}, nil
}
