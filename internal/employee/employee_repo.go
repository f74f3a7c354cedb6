package employee

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, emp *Employee) error
	FindAll(ctx context.Context) ([]Employee, error)
	FindByID(ctx context.Context, id string) (*Employee, error)
	FindByCode(ctx context.Context, code string) (*Employee, error)
	ListDepartments(ctx context.Context) ([]string, error)
	ListDesignations(ctx context.Context) ([]string, error)
	Update(ctx context.Context, emp *Employee) error
	Delete(ctx context.Context, id string) error
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

func (r *repository) Create(ctx context.Context, emp *Employee) error {
	return r.db.WithContext(ctx).Create(emp).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Employee, error) {
	var emps []Employee
	err := r.db.WithContext(ctx).
		Order("employee_code ASC").
		Find(&emps).Error
	return emps, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Employee, error) {
	var emp Employee
	err := r.db.WithContext(ctx).
		First(&emp, "id = ?", id).Error
	return &emp, err
}

func (r *repository) FindByCode(ctx context.Context, code string) (*Employee, error) {
	var emp Employee
	err := r.db.WithContext(ctx).
		First(&emp, "employee_code = ?", code).Error
	return &emp, err
}

func (r *repository) ListDepartments(ctx context.Context) ([]string, error) {
	var names []string
	err := r.db.WithContext(ctx).
		Model(&Employee{}).
		Distinct("department").
		Where("department <> ''").
		Order("department ASC").
		Pluck("department", &names).Error
	return names, err
}

func (r *repository) ListDesignations(ctx context.Context) ([]string, error) {
	var names []string
	err := r.db.WithContext(ctx).
		Model(&Employee{}).
		Distinct("designation").
		Where("designation <> ''").
		Order("designation ASC").
		Pluck("designation", &names).Error
	return names, err
}

func (r *repository) Update(ctx context.Context, emp *Employee) error {
	return r.db.WithContext(ctx).Save(emp).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Delete(&Employee{}, "id = ?", id).Error
}
