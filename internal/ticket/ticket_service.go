package ticket

import (
	"context"
	"errors"
	"io"
	"time"

	"hrfiles/internal/authz"
	"hrfiles/internal/shared/contextutil"
	"hrfiles/internal/storage"
	ticketerrors "hrfiles/internal/ticket/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DeskAuthorizer answers whether a code belongs to the ticket booking desk.
type DeskAuthorizer interface {
	IsTicketDesk(code string) bool
}

// BillUpload carries the optional bill attachment of a booking.
type BillUpload struct {
	Filename    string
	ContentType string
	Body        io.Reader
}

//go:generate mockgen -source=ticket_service.go -destination=mock/ticket_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, caller authz.Caller, req CreateTicketRequest, bill *BillUpload) (TicketResponse, error)
	GetAll(ctx context.Context) ([]TicketResponse, error)
	GetByID(ctx context.Context, id string) (TicketResponse, error)
	OpenBill(ctx context.Context, id string) (io.ReadCloser, string, error)
}

type service struct {
	repo   Repository
	desk   DeskAuthorizer
	store  storage.Store
	logger *zap.Logger
}

func NewService(repo Repository, desk DeskAuthorizer, store storage.Store, logger ...*zap.Logger) Service {
	l := zap.L().Named("ticket.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("ticket.service")
	}
	return &service{
		repo:   repo,
		desk:   desk,
		store:  store,
		logger: l,
	}
}

func (s *service) Create(ctx context.Context, caller authz.Caller, req CreateTicketRequest, bill *BillUpload) (TicketResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	if !s.desk.IsTicketDesk(caller.Code) {
		s.logger.Warn("ticket booking by non-desk employee",
			zap.String("request_id", rid),
			zap.String("employee_code", caller.Code),
		)
		return TicketResponse{}, ticketerrors.ErrNotTicketDesk
	}

	ticket := &Ticket{
		ID:              uuid.New(),
		PersonName:      req.PersonName,
		PersonCode:      req.PersonCode,
		BookedByName:    caller.Name,
		BookedByCode:    caller.Code,
		BillNumber:      req.BillNumber,
		TravelsName:     req.TravelsName,
		TypeOfBill:      req.TypeOfBill,
		Charges:         req.Charges,
		PerTicketAmount: req.PerTicketAmount,
		TotalAmount:     req.TotalAmount,
		RequestStatus:   "Booked",
	}

	if bill != nil {
		key, err := s.store.Save(ctx, "bills", bill.Filename, bill.ContentType, bill.Body)
		if err != nil {
			s.logger.Error("store ticket bill failed", zap.Error(err))
			return TicketResponse{}, err
		}
		ticket.BillKey = key
		ticket.BillContentType = bill.ContentType
	}

	if err := s.repo.Create(ctx, ticket); err != nil {
		s.logger.Error("create ticket persist failed", zap.Error(err))
		return TicketResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("ticket booked",
		zap.String("request_id", rid),
		zap.String("ticket_id", ticket.ID.String()),
		zap.String("booked_by", caller.Code),
		zap.Bool("has_bill", ticket.BillKey != ""),
	)

	return mapToResponse(*ticket), nil
}

func (s *service) GetAll(ctx context.Context) ([]TicketResponse, error) {
	tickets, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all tickets failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(tickets), nil
}

func (s *service) GetByID(ctx context.Context, id string) (TicketResponse, error) {
	ticket, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return TicketResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*ticket), nil
}

// OpenBill streams the stored bill back with its persisted content type.
func (s *service) OpenBill(ctx context.Context, id string) (io.ReadCloser, string, error) {
	ticket, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, "", mapRepositoryError(err)
	}

	if ticket.BillKey == "" {
		return nil, "", ticketerrors.ErrBillNotAttached
	}

	body, contentType, err := s.store.Open(ctx, ticket.BillKey)
	if err != nil {
		s.logger.Error("open ticket bill failed",
			zap.String("ticket_id", id),
			zap.Error(err),
		)
		return nil, "", err
	}

	if ticket.BillContentType != "" {
		contentType = ticket.BillContentType
	}
	return body, contentType, nil
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ticketerrors.ErrTicketNotFound
	}
	return err
}

func mapToResponse(t Ticket) TicketResponse {
	return TicketResponse{
		ID:              t.ID.String(),
		PersonName:      t.PersonName,
		PersonCode:      t.PersonCode,
		BookedByName:    t.BookedByName,
		BookedByCode:    t.BookedByCode,
		BillNumber:      t.BillNumber,
		TravelsName:     t.TravelsName,
		TypeOfBill:      t.TypeOfBill,
		Charges:         t.Charges,
		PerTicketAmount: t.PerTicketAmount,
		TotalAmount:     t.TotalAmount,
		RequestStatus:   t.RequestStatus,
		HasBill:         t.BillKey != "",
		CreatedAt:       t.CreatedAt.Format(time.RFC3339),
	}
}

func mapToListResponse(tickets []Ticket) []TicketResponse {
	res := make([]TicketResponse, len(tickets))
	for i, t := range tickets {
		res[i] = mapToResponse(t)
	}
	return res
}
