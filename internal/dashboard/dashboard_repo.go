package dashboard

import (
	"context"

	"hrfiles/internal/employee"

	"gorm.io/gorm"
)

//go:generate mockgen -source=dashboard_repo.go -destination=mock/dashboard_repo_mock.go -package=mock
type Repository interface {
	Summary(ctx context.Context) (Summary, error)
	StatusDistribution(ctx context.Context) ([]StatusCount, error)
	MonthlyHiring(ctx context.Context) ([]MonthlyCount, error)
	Designations(ctx context.Context) ([]DesignationCount, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Summary(ctx context.Context) (Summary, error) {
	var s Summary

	base := r.db.WithContext(ctx).Model(&employee.Employee{})

	if err := base.Session(&gorm.Session{}).Count(&s.TotalEmployees).Error; err != nil {
		return Summary{}, err
	}
	if err := base.Session(&gorm.Session{}).
		Where("status = ?", employee.StatusActive).
		Count(&s.ActiveEmployees).Error; err != nil {
		return Summary{}, err
	}
	if err := base.Session(&gorm.Session{}).
		Where("status = ?", employee.StatusResigned).
		Count(&s.ResignedEmployees).Error; err != nil {
		return Summary{}, err
	}
	if err := base.Session(&gorm.Session{}).
		Where("status = ?", employee.StatusResigned).
		Where("updated_at >= date_trunc('month', now())").
		Count(&s.LeftThisMonth).Error; err != nil {
		return Summary{}, err
	}

	return s, nil
}

func (r *repository) StatusDistribution(ctx context.Context) ([]StatusCount, error) {
	var rows []StatusCount
	err := r.db.WithContext(ctx).
		Model(&employee.Employee{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Order("status ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) MonthlyHiring(ctx context.Context) ([]MonthlyCount, error) {
	var rows []MonthlyCount
	err := r.db.WithContext(ctx).
		Model(&employee.Employee{}).
		Select("to_char(date_trunc('month', created_at), 'YYYY-MM') AS month, COUNT(*) AS count").
		Where("created_at >= date_trunc('month', now()) - interval '11 months'").
		Group("month").
		Order("month ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) Designations(ctx context.Context) ([]DesignationCount, error) {
	var rows []DesignationCount
	err := r.db.WithContext(ctx).
		Model(&employee.Employee{}).
		Select("designation, COUNT(*) AS count").
		Where("designation <> ''").
		Group("designation").
		Order("count DESC").
		Scan(&rows).Error
	return rows, err
}
