package service

import (
	"context"
	"errors"
	"testing"

	"github.com/jobvault/vacancy-service/internal/apperr"
	"github.com/jobvault/vacancy-service/internal/hh"
	"github.com/jobvault/vacancy-service/internal/models"
)

// =============================================================================
// Mock JobRepository
// =============================================================================

type mockJobRepository struct {
	findByIDFunc    func(ctx context.Context, id int64) (*models.Job, error)
	findByTitleFunc func(ctx context.Context, title string) (*models.Job, error)
	listFunc        func(ctx context.Context) ([]models.Job, error)
	createFunc      func(ctx context.Context, job *models.Job) error
	updateFunc      func(ctx context.Context, job *models.Job) error
	deleteFunc      func(ctx context.Context, id int64) error
}

func (m *mockJobRepository) FindByID(ctx context.Context, id int64) (*models.Job, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, errors.New("not implemented")
}

func (m *mockJobRepository) FindByTitle(ctx context.Context, title string) (*models.Job, error) {
	if m.findByTitleFunc != nil {
		return m.findByTitleFunc(ctx, title)
	}
	return nil, errors.New("not implemented")
}

func (m *mockJobRepository) List(ctx context.Context) ([]models.Job, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, errors.New("not implemented")
}

func (m *mockJobRepository) Create(ctx context.Context, job *models.Job) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, job)
	}
	return errors.New("not implemented")
}

func (m *mockJobRepository) Update(ctx context.Context, job *models.Job) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, job)
	}
	return errors.New("not implemented")
}

func (m *mockJobRepository) Delete(ctx context.Context, id int64) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return errors.New("not implemented")
}

type mockSearcher struct {
	searchFunc func(ctx context.Context, text string, limit int) ([]hh.Vacancy, error)
}

func (m *mockSearcher) Search(ctx context.Context, text string, limit int) ([]hh.Vacancy, error) {
	return m.searchFunc(ctx, text, limit)
}

// inMemoryJobStore backs import tests with a title-keyed map so skip
// behavior is observable.
func inMemoryJobStore(existing ...string) (*mockJobRepository, *[]models.Job) {
	titles := make(map[string]bool, len(existing))
	for _, t := range existing {
		titles[t] = true
	}
	var created []models.Job

	repo := &mockJobRepository{
		findByTitleFunc: func(ctx context.Context, title string) (*models.Job, error) {
			if titles[title] {
				return &models.Job{Title: title}, nil
			}
			return nil, apperr.ErrNotFound
		},
		createFunc: func(ctx context.Context, job *models.Job) error {
			titles[job.Title] = true
			job.ID = int64(len(created) + 1)
			created = append(created, *job)
			return nil
		},
	}
	return repo, &created
}

// =============================================================================
// CRUD Tests
// =============================================================================

func TestJobCreate_Success(t *testing.T) {
	repo, created := inMemoryJobStore()
	svc := NewJobService(repo, nil, testLogger())

	job, err := svc.Create(context.Background(), JobInput{
		Title:       "Go Developer",
		Status:      "open",
		CompanyName: "Acme",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if job.ID == 0 {
		t.Error("Create() did not assign an id")
	}
	if len(*created) != 1 || (*created)[0].Title != "Go Developer" {
		t.Errorf("stored jobs = %+v, want one Go Developer row", *created)
	}
}

func TestJobCreate_DuplicateTitle(t *testing.T) {
	repo, created := inMemoryJobStore("Go Developer")
	svc := NewJobService(repo, nil, testLogger())

	_, err := svc.Create(context.Background(), JobInput{Title: "Go Developer"})
	if !errors.Is(err, apperr.ErrAlreadyExists) {
		t.Errorf("Create() error = %v, want ErrAlreadyExists", err)
	}
	if len(*created) != 0 {
		t.Error("Create() inserted a duplicate row")
	}
}

func TestJobGet_Miss(t *testing.T) {
	repo := &mockJobRepository{
		findByIDFunc: func(ctx context.Context, id int64) (*models.Job, error) {
			return nil, apperr.ErrNotFound
		},
	}
	svc := NewJobService(repo, nil, testLogger())

	if _, err := svc.Get(context.Background(), 99); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("Get() error = %v, want ErrNotFound", err)
	}
}

func TestJobUpdate_ReplacesFields(t *testing.T) {
	var saved *models.Job
	repo := &mockJobRepository{
		findByIDFunc: func(ctx context.Context, id int64) (*models.Job, error) {
			return &models.Job{ID: id, Title: "Old", Status: "open"}, nil
		},
		updateFunc: func(ctx context.Context, job *models.Job) error {
			saved = job
			return nil
		},
	}
	svc := NewJobService(repo, nil, testLogger())

	job, err := svc.Update(context.Background(), 7, JobInput{Title: "New", Status: "closed"})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	if job.Title != "New" || job.Status != "closed" {
		t.Errorf("Update() = %+v, want replaced fields", job)
	}
	if saved == nil || saved.ID != 7 {
		t.Errorf("Update() saved %+v, want the row with id 7", saved)
	}
}

func TestJobUpdate_Miss(t *testing.T) {
	repo := &mockJobRepository{
		findByIDFunc: func(ctx context.Context, id int64) (*models.Job, error) {
			return nil, apperr.ErrNotFound
		},
	}
	svc := NewJobService(repo, nil, testLogger())

	if _, err := svc.Update(context.Background(), 99, JobInput{Title: "X"}); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("Update() error = %v, want ErrNotFound", err)
	}
}

func TestJobDelete_Miss(t *testing.T) {
	repo := &mockJobRepository{
		deleteFunc: func(ctx context.Context, id int64) error {
			return apperr.ErrNotFound
		},
	}
	svc := NewJobService(repo, nil, testLogger())

	if err := svc.Delete(context.Background(), 99); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("Delete() error = %v, want ErrNotFound", err)
	}
}

// =============================================================================
// Import Tests
// =============================================================================

func TestImport_AddsNewVacancies(t *testing.T) {
	repo, created := inMemoryJobStore()
	searcher := &mockSearcher{
		searchFunc: func(ctx context.Context, text string, limit int) ([]hh.Vacancy, error) {
			return []hh.Vacancy{
				{Title: "Go Developer", CompanyName: "Acme", Status: "Full time"},
				{Title: "Backend Engineer", CompanyName: "Not specified", Status: "Not specified"},
			}, nil
		},
	}
	svc := NewJobService(repo, searcher, testLogger())

	result, err := svc.Import(context.Background(), "go", 20)
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}

	if result.Added != 2 {
		t.Errorf("Import() added = %d, want 2", result.Added)
	}
	if len(*created) != 2 {
		t.Errorf("stored %d jobs, want 2", len(*created))
	}
	if (*created)[1].CompanyName != "Not specified" {
		t.Errorf("fallback company name = %q, want %q", (*created)[1].CompanyName, "Not specified")
	}
}

func TestImport_SkipsExistingTitles(t *testing.T) {
	repo, created := inMemoryJobStore("Go Developer")
	searcher := &mockSearcher{
		searchFunc: func(ctx context.Context, text string, limit int) ([]hh.Vacancy, error) {
			return []hh.Vacancy{
				{Title: "Go Developer"},
				{Title: "Backend Engineer"},
			}, nil
		},
	}
	svc := NewJobService(repo, searcher, testLogger())

	result, err := svc.Import(context.Background(), "go", 20)
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}

	if result.Added != 1 {
		t.Errorf("Import() added = %d, want 1", result.Added)
	}
	if len(*created) != 1 || (*created)[0].Title != "Backend Engineer" {
		t.Errorf("stored jobs = %+v, want only Backend Engineer", *created)
	}
}

func TestImport_UpstreamFailureAbortsBeforeWriting(t *testing.T) {
	repo, created := inMemoryJobStore()
	searcher := &mockSearcher{
		searchFunc: func(ctx context.Context, text string, limit int) ([]hh.Vacancy, error) {
			return nil, apperr.ErrUpstreamUnavailable
		},
	}
	svc := NewJobService(repo, searcher, testLogger())

	if _, err := svc.Import(context.Background(), "go", 20); !errors.Is(err, apperr.ErrUpstreamUnavailable) {
		t.Errorf("Import() error = %v, want ErrUpstreamUnavailable", err)
	}
	if len(*created) != 0 {
		t.Error("Import() wrote rows despite upstream failure")
	}
}

func TestImport_InsertFailureIsBestEffort(t *testing.T) {
	calls := 0
	repo := &mockJobRepository{
		findByTitleFunc: func(ctx context.Context, title string) (*models.Job, error) {
			return nil, apperr.ErrNotFound
		},
		createFunc: func(ctx context.Context, job *models.Job) error {
			calls++
			if job.Title == "Broken" {
				return errors.New("insert failed")
			}
			return nil
		},
	}
	searcher := &mockSearcher{
		searchFunc: func(ctx context.Context, text string, limit int) ([]hh.Vacancy, error) {
			return []hh.Vacancy{{Title: "Broken"}, {Title: "Fine"}}, nil
		},
	}
	svc := NewJobService(repo, searcher, testLogger())

	result, err := svc.Import(context.Background(), "go", 20)
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}

	if result.Added != 1 {
		t.Errorf("Import() added = %d, want 1", result.Added)
	}
	if calls != 2 {
		t.Errorf("Create called %d times, want 2", calls)
	}
}
