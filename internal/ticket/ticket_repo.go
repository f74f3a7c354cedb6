package ticket

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=ticket_repo.go -destination=mock/ticket_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, t *Ticket) error
	FindAll(ctx context.Context) ([]Ticket, error)
	FindByID(ctx context.Context, id string) (*Ticket, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, t *Ticket) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Ticket, error) {
	var tickets []Ticket
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&tickets).Error
	return tickets, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Ticket, error) {
	var t Ticket
	err := r.db.WithContext(ctx).
		First(&t, "id = ?", id).Error
	return &t, err
}
