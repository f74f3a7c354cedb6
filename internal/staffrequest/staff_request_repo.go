package staffrequest

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=staff_request_repo.go -destination=mock/staff_request_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, req *StaffRequest) error
	FindAll(ctx context.Context) ([]StaffRequest, error)
	FindByID(ctx context.Context, id string) (*StaffRequest, error)
	Update(ctx context.Context, req *StaffRequest) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		db: r.db,
		tx: tx,
	}
}

func (r *repository) Create(ctx context.Context, req *StaffRequest) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *repository) FindAll(ctx context.Context) ([]StaffRequest, error) {
	var reqs []StaffRequest
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&reqs).Error
	return reqs, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*StaffRequest, error) {
	var req StaffRequest
	err := r.db.WithContext(ctx).
		First(&req, "id = ?", id).Error
	return &req, err
}

func (r *repository) Update(ctx context.Context, req *StaffRequest) error {
	return r.db.WithContext(ctx).Save(req).Error
}
