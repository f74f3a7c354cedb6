package leaverequest

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=leave_request_repo.go -destination=mock/leave_request_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, req *LeaveRequest) error
	FindAll(ctx context.Context) ([]LeaveRequest, error)
	FindByManagerStatus(ctx context.Context, status string) ([]LeaveRequest, error)
	FindUndecided(ctx context.Context) ([]LeaveRequest, error)
	FindByID(ctx context.Context, id string) (*LeaveRequest, error)
	Update(ctx context.Context, req *LeaveRequest) error
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

func (r *repository) Create(ctx context.Context, req *LeaveRequest) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *repository) FindAll(ctx context.Context) ([]LeaveRequest, error) {
	var reqs []LeaveRequest
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&reqs).Error
	return reqs, err
}

func (r *repository) FindByManagerStatus(ctx context.Context, status string) ([]LeaveRequest, error) {
	var reqs []LeaveRequest
	err := r.db.WithContext(ctx).
		Where("LOWER(approved_by_status) = LOWER(?)", status).
		Order("created_at DESC").
		Find(&reqs).Error
	return reqs, err
}

// FindUndecided returns requests the manager stage has not ruled on yet.
// Department scoping happens in the service because the labels need
// whitespace normalization before comparison.
func (r *repository) FindUndecided(ctx context.Context) ([]LeaveRequest, error) {
	var reqs []LeaveRequest
	err := r.db.WithContext(ctx).
		Where("approved_by_status IS NULL OR approved_by_status = ''").
		Order("created_at DESC").
		Find(&reqs).Error
	return reqs, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*LeaveRequest, error) {
	var req LeaveRequest
	err := r.db.WithContext(ctx).
		First(&req, "id = ?", id).Error
	return &req, err
}

func (r *repository) Update(ctx context.Context, req *LeaveRequest) error {
	return r.db.WithContext(ctx).Save(req).Error
}
