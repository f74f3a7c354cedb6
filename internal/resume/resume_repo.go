package resume

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=resume_repo.go -destination=mock/resume_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, r *Resume) error
	FindAll(ctx context.Context) ([]Resume, error)
	FindByCandidateStatus(ctx context.Context, status string) ([]Resume, error)
	FindByID(ctx context.Context, id string) (*Resume, error)
	Update(ctx context.Context, r *Resume) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, res *Resume) error {
	return r.db.WithContext(ctx).Create(res).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Resume, error) {
	var resumes []Resume
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&resumes).Error
	return resumes, err
}

func (r *repository) FindByCandidateStatus(ctx context.Context, status string) ([]Resume, error) {
	var resumes []Resume
	err := r.db.WithContext(ctx).
		Where("LOWER(candidate_status) = LOWER(?)", status).
		Order("created_at DESC").
		Find(&resumes).Error
	return resumes, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Resume, error) {
	var res Resume
	err := r.db.WithContext(ctx).
		First(&res, "id = ?", id).Error
	return &res, err
}

func (r *repository) Update(ctx context.Context, res *Resume) error {
	return r.db.WithContext(ctx).Save(res).Error
}
