package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/jobvault/vacancy-service/internal/apperr"
	"github.com/jobvault/vacancy-service/internal/models"
)

// JobRepository defines the interface for vacancy data operations.
//
// FindByTitle backs the check-then-insert title uniqueness policy. The check
// and the insert are not wrapped in a transaction, so two concurrent creates
// with the same title can both pass the check. This mirrors the upstream
// design and is accepted rather than guarded here.
type JobRepository interface {
	FindByID(ctx context.Context, id int64) (*models.Job, error)
	FindByTitle(ctx context.Context, title string) (*models.Job, error)
	List(ctx context.Context) ([]models.Job, error)
	Create(ctx context.Context, job *models.Job) error
	Update(ctx context.Context, job *models.Job) error
	Delete(ctx context.Context, id int64) error
}

type jobRepository struct {
	db *gorm.DB
}

// NewJobRepository creates a new JobRepository instance.
func NewJobRepository(db *gorm.DB) JobRepository {
	return &jobRepository{db: db}
}

func (r *jobRepository) FindByID(ctx context.Context, id int64) (*models.Job, error) {
	var job models.Job
	err := r.db.WithContext(ctx).First(&job, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find job by id %d: %w", id, err)
	}
	return &job, nil
}

func (r *jobRepository) FindByTitle(ctx context.Context, title string) (*models.Job, error) {
	var job models.Job
	err := r.db.WithContext(ctx).Where("title = ?", title).First(&job).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find job by title %s: %w", title, err)
	}
	return &job, nil
}

func (r *jobRepository) List(ctx context.Context) ([]models.Job, error) {
	var jobs []models.Job
	if err := r.db.WithContext(ctx).Order("id").Find(&jobs).Error; err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	return jobs, nil
}

func (r *jobRepository) Create(ctx context.Context, job *models.Job) error {
	if err := r.db.WithContext(ctx).Create(job).Error; err != nil {
		return fmt.Errorf("failed to create job: %w", err)
	}
	return nil
}

func (r *jobRepository) Update(ctx context.Context, job *models.Job) error {
	if err := r.db.WithContext(ctx).Save(job).Error; err != nil {
		return fmt.Errorf("failed to update job id %d: %w", job.ID, err)
	}
	return nil
}

func (r *jobRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.Job{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete job id %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
