package staffrequest

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"hrfiles/internal/authz"
	"hrfiles/internal/shared/apperror"
	"hrfiles/internal/shared/contextutil"
	"hrfiles/internal/shared/counter"
	staffrequesterrors "hrfiles/internal/staffrequest/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

//go:generate mockgen -source=staff_request_service.go -destination=mock/staff_request_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, caller authz.Caller, req CreateStaffRequest) (StaffRequestResponse, error)
	GetAll(ctx context.Context) ([]StaffRequestResponse, error)
	GetByID(ctx context.Context, id string) (StaffRequestResponse, error)
	Update(ctx context.Context, id string, req UpdateStaffRequest) (StaffRequestResponse, error)
}

type service struct {
	db      *sql.DB
	repo    Repository
	counter counter.Repository
	logger  *zap.Logger
}

func NewService(db *sql.DB, repo Repository, counterRepo counter.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("staffrequest.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("staffrequest.service")
	}
	return &service{
		db:      db,
		repo:    repo,
		counter: counterRepo,
		logger:  l,
	}
}

func (s *service) Create(ctx context.Context, caller authz.Caller, req CreateStaffRequest) (StaffRequestResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create staff request",
		zap.String("request_id", rid),
		zap.String("employee_code", caller.Code),
		zap.String("request_type", req.RequestType),
	)

	fromDate, err := parseOptionalDate(req.FromDate, "From date")
	if err != nil {
		return StaffRequestResponse{}, err
	}
	toDate, err := parseOptionalDate(req.ToDate, "To date")
	if err != nil {
		return StaffRequestResponse{}, err
	}
	departureDate, err := parseOptionalDate(req.DepartureDate, "Departure date")
	if err != nil {
		return StaffRequestResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create staff request begin tx failed", zap.Error(err))
		return StaffRequestResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	nextVal, err := s.counter.GetNextValue(ctx, counter.TypeStaffRequest)
	if err != nil {
		s.logger.Error("create staff request generate number failed", zap.Error(err))
		return StaffRequestResponse{}, err
	}

	request := &StaffRequest{
		ID:            uuid.New(),
		RequestNo:     fmt.Sprintf("REQ%05d", nextVal),
		EmployeeCode:  caller.Code,
		EmployeeName:  caller.Name,
		Department:    caller.Department,
		RequestType:   req.RequestType,
		TravelType:    req.TravelType,
		Reason:        req.Reason,
		Headcount:     req.Headcount,
		FromDate:      fromDate,
		ToDate:        toDate,
		DepartureDate: departureDate,
		RequestFor:    req.RequestFor,
		Quantity:      req.Quantity,
		Experience:    req.Experience,
		Education:     req.Education,
		Remarks:       req.Remarks,
		RequestStatus: StatusOpen,
	}

	if err := qtx.Create(ctx, request); err != nil {
		s.logger.Error("create staff request persist failed", zap.Error(err))
		return StaffRequestResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create staff request commit failed", zap.Error(err))
		return StaffRequestResponse{}, err
	}

	s.logger.Info("create staff request success",
		zap.String("request_id", rid),
		zap.String("request_no", request.RequestNo),
	)

	return mapToResponse(*request), nil
}

func (s *service) GetAll(ctx context.Context) ([]StaffRequestResponse, error) {
	reqs, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all staff requests failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(reqs), nil
}

func (s *service) GetByID(ctx context.Context, id string) (StaffRequestResponse, error) {
	req, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return StaffRequestResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*req), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateStaffRequest) (StaffRequestResponse, error) {
	s.logger.Debug("update staff request", zap.String("staff_request_id", id))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update staff request begin tx failed", zap.Error(err))
		return StaffRequestResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	request, err := qtx.FindByID(ctx, id)
	if err != nil {
		return StaffRequestResponse{}, mapRepositoryError(err)
	}

	if req.RequestStatus != nil {
		// Requests only close; a closed request never reopens.
		if strings.EqualFold(request.RequestStatus, StatusClosed) {
			return StaffRequestResponse{}, staffrequesterrors.ErrRequestAlreadyClosed
		}
		request.RequestStatus = *req.RequestStatus
	}
	if req.Remarks != nil {
		request.Remarks = *req.Remarks
	}

	if err := qtx.Update(ctx, request); err != nil {
		s.logger.Error("update staff request persist failed", zap.Error(err))
		return StaffRequestResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update staff request commit failed", zap.Error(err))
		return StaffRequestResponse{}, err
	}

	s.logger.Info("update staff request success",
		zap.String("staff_request_id", id),
		zap.String("request_status", request.RequestStatus),
	)

	return mapToResponse(*request), nil
}

func parseOptionalDate(value string, field string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	d, err := time.Parse(dateLayout, value)
	if err != nil {
		return nil, apperror.InvalidField(field)
	}
	return &d, nil
}

func formatOptionalDate(value *time.Time) string {
	if value == nil {
		return ""
	}
	return value.Format(dateLayout)
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return staffrequesterrors.ErrStaffRequestNotFound
	}
	return err
}

func mapToResponse(r StaffRequest) StaffRequestResponse {
	return StaffRequestResponse{
		ID:            r.ID.String(),
		RequestNo:     r.RequestNo,
		EmployeeCode:  r.EmployeeCode,
		EmployeeName:  r.EmployeeName,
		Department:    r.Department,
		RequestType:   r.RequestType,
		TravelType:    r.TravelType,
		Reason:        r.Reason,
		Headcount:     r.Headcount,
		FromDate:      formatOptionalDate(r.FromDate),
		ToDate:        formatOptionalDate(r.ToDate),
		DepartureDate: formatOptionalDate(r.DepartureDate),
		RequestFor:    r.RequestFor,
		Quantity:      r.Quantity,
		Experience:    r.Experience,
		Education:     r.Education,
		Remarks:       r.Remarks,
		RequestStatus: r.RequestStatus,
		CreatedAt:     r.CreatedAt.Format(time.RFC3339),
	}
}

func mapToListResponse(reqs []StaffRequest) []StaffRequestResponse {
	res := make([]StaffRequestResponse, len(reqs))
	for i, r := range reqs {
		res[i] = mapToResponse(r)
	}
	return res
}
