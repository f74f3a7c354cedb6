package leaverequest

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	"hrfiles/internal/authz"
	"hrfiles/internal/events"
	leaverequesterrors "hrfiles/internal/leaverequest/errors"
	"hrfiles/internal/messaging/kafka"
	"hrfiles/internal/shared/apperror"
	"hrfiles/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

//go:generate mockgen -source=leave_request_service.go -destination=mock/leave_request_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, caller authz.Caller, req CreateLeaveRequest) (LeaveRequestResponse, error)
	GetAll(ctx context.Context) ([]LeaveRequestResponse, error)
	GetByManagerStatus(ctx context.Context, status string) ([]LeaveRequestResponse, error)
	ListPendingForApprover(ctx context.Context, caller authz.Caller) ([]LeaveRequestResponse, error)
	ManagerDecide(ctx context.Context, caller authz.Caller, id string, decision string) (LeaveRequestResponse, error)
	HrApprove(ctx context.Context, caller authz.Caller, id string) (LeaveRequestResponse, error)
}

type service struct {
	db       *sql.DB
	repo     Repository
	provider authz.Provider
	outbox   kafka.OutboxRepository
	logger   *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	provider authz.Provider,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("leaverequest.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leaverequest.service")
	}
	return &service{
		db:       db,
		repo:     repo,
		provider: provider,
		outbox:   outboxRepo,
		logger:   l,
	}
}

func (s *service) Create(ctx context.Context, caller authz.Caller, req CreateLeaveRequest) (LeaveRequestResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create leave request",
		zap.String("request_id", rid),
		zap.String("employee_code", caller.Code),
	)

	fromDate, err := time.Parse(dateLayout, req.FromDate)
	if err != nil {
		return LeaveRequestResponse{}, apperror.InvalidField("From date")
	}
	toDate, err := time.Parse(dateLayout, req.ToDate)
	if err != nil {
		return LeaveRequestResponse{}, apperror.InvalidField("To date")
	}
	if fromDate.After(toDate) {
		return LeaveRequestResponse{}, leaverequesterrors.ErrInvalidDateRange
	}

	// Identity fields always come from the session, never the body; a
	// requester cannot file leave on someone else's behalf.
	leave := &LeaveRequest{
		ID:            uuid.New(),
		EmployeeCode:  caller.Code,
		EmployeeName:  caller.Name,
		Designation:   caller.Designation,
		Department:    caller.Department,
		FromDate:      fromDate,
		ToDate:        toDate,
		Reason:        req.Reason,
		MobileNumber:  req.MobileNumber,
		UrgentMobile:  req.UrgentMobile,
		RequestStatus: StatusPending,
	}

	if err := s.repo.Create(ctx, leave); err != nil {
		s.logger.Error("create leave request persist failed", zap.Error(err))
		return LeaveRequestResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("create leave request success",
		zap.String("request_id", rid),
		zap.String("leave_request_id", leave.ID.String()),
		zap.String("department", leave.Department),
	)

	return mapToResponse(*leave), nil
}

func (s *service) GetAll(ctx context.Context) ([]LeaveRequestResponse, error) {
	reqs, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all leave requests failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(reqs), nil
}

func (s *service) GetByManagerStatus(ctx context.Context, status string) ([]LeaveRequestResponse, error) {
	reqs, err := s.repo.FindByManagerStatus(ctx, status)
	if err != nil {
		s.logger.Error("get leave requests by manager status failed",
			zap.String("status", status),
			zap.Error(err),
		)
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(reqs), nil
}

// ListPendingForApprover returns undecided requests whose department falls in
// the caller's effective set. The set is resolved server-side from the
// caller's code, so a tampered client cannot widen its view.
func (s *service) ListPendingForApprover(ctx context.Context, caller authz.Caller) ([]LeaveRequestResponse, error) {
	if !s.provider.IsManagerApprover(caller.Code) {
		s.logger.Warn("pending approvals requested by non-approver",
			zap.String("employee_code", caller.Code),
		)
		return nil, leaverequesterrors.ErrNotManagerApprover
	}

	allowed := authz.NormalizeSet(s.provider.EffectiveDepartments(caller.Code, caller.Department))
	if len(allowed) == 0 {
		return []LeaveRequestResponse{}, nil
	}

	reqs, err := s.repo.FindUndecided(ctx)
	if err != nil {
		s.logger.Error("list undecided leave requests failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	visible := make([]LeaveRequest, 0, len(reqs))
	for _, r := range reqs {
		if _, ok := allowed[authz.Normalize(r.Department)]; ok {
			visible = append(visible, r)
		}
	}

	return mapToListResponse(visible), nil
}

func (s *service) ManagerDecide(ctx context.Context, caller authz.Caller, id string, decision string) (LeaveRequestResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	if decision != StatusApproved && decision != StatusRejected {
		return LeaveRequestResponse{}, leaverequesterrors.ErrInvalidDecision
	}
	if !s.provider.IsManagerApprover(caller.Code) {
		s.logger.Warn("manager decision by non-approver",
			zap.String("request_id", rid),
			zap.String("employee_code", caller.Code),
		)
		return LeaveRequestResponse{}, leaverequesterrors.ErrNotManagerApprover
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("manager decide begin tx failed", zap.Error(err))
		return LeaveRequestResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	leave, err := qtx.FindByID(ctx, id)
	if err != nil {
		return LeaveRequestResponse{}, mapRepositoryError(err)
	}

	allowed := authz.NormalizeSet(s.provider.EffectiveDepartments(caller.Code, caller.Department))
	if _, ok := allowed[authz.Normalize(leave.Department)]; !ok {
		s.logger.Warn("manager decision outside approval scope",
			zap.String("employee_code", caller.Code),
			zap.String("leave_department", leave.Department),
		)
		return LeaveRequestResponse{}, leaverequesterrors.ErrDepartmentNotAllowed
	}

	if strings.EqualFold(leave.ApprovedByStatus, StatusApproved) ||
		strings.EqualFold(leave.ApprovedByStatus, StatusRejected) {
		return LeaveRequestResponse{}, leaverequesterrors.ErrAlreadyDecided
	}

	// The manager stage records the approver's display name; the HR stage
	// records the approver's code. The SPA renders both as-is.
	leave.ApprovedBy = caller.Name
	leave.ApprovedByStatus = decision
	if decision == StatusRejected {
		leave.RequestStatus = StatusRejected
	}

	if err := qtx.Update(ctx, leave); err != nil {
		s.logger.Error("manager decide persist failed", zap.Error(err))
		return LeaveRequestResponse{}, mapRepositoryError(err)
	}

	if err := s.queueDecisionEvent(ctx, tx, rid, leave, events.LeaveStageManager, decision, caller.Code); err != nil {
		return LeaveRequestResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("manager decide commit failed", zap.Error(err))
		return LeaveRequestResponse{}, err
	}

	s.logger.Info("manager decision recorded",
		zap.String("request_id", rid),
		zap.String("leave_request_id", leave.ID.String()),
		zap.String("decision", decision),
		zap.String("decided_by", caller.Code),
	)

	return mapToResponse(*leave), nil
}

func (s *service) HrApprove(ctx context.Context, caller authz.Caller, id string) (LeaveRequestResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	if !s.provider.IsHrApprover(caller.Code) {
		s.logger.Warn("hr approval by non-approver",
			zap.String("request_id", rid),
			zap.String("employee_code", caller.Code),
		)
		return LeaveRequestResponse{}, leaverequesterrors.ErrNotHrApprover
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("hr approve begin tx failed", zap.Error(err))
		return LeaveRequestResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	leave, err := qtx.FindByID(ctx, id)
	if err != nil {
		return LeaveRequestResponse{}, mapRepositoryError(err)
	}

	if !strings.EqualFold(leave.ApprovedByStatus, StatusApproved) {
		return LeaveRequestResponse{}, leaverequesterrors.ErrManagerApprovalRequired
	}
	if strings.EqualFold(leave.HrApproval, StatusApproved) {
		return LeaveRequestResponse{}, leaverequesterrors.ErrAlreadyFinalized
	}

	leave.HrApproval = StatusApproved
	leave.RequestStatus = StatusApproved
	leave.ApprovalHr = caller.Code

	if err := qtx.Update(ctx, leave); err != nil {
		s.logger.Error("hr approve persist failed", zap.Error(err))
		return LeaveRequestResponse{}, mapRepositoryError(err)
	}

	if err := s.queueDecisionEvent(ctx, tx, rid, leave, events.LeaveStageHr, StatusApproved, caller.Code); err != nil {
		return LeaveRequestResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("hr approve commit failed", zap.Error(err))
		return LeaveRequestResponse{}, err
	}

	s.logger.Info("hr approval recorded",
		zap.String("request_id", rid),
		zap.String("leave_request_id", leave.ID.String()),
		zap.String("approved_by", caller.Code),
	)

	return mapToResponse(*leave), nil
}

func (s *service) queueDecisionEvent(
	ctx context.Context,
	tx *sql.Tx,
	rid string,
	leave *LeaveRequest,
	stage string,
	decision string,
	decidedBy string,
) error {
	if s.outbox == nil {
		return nil
	}

	event := events.LeaveDecisionEvent{
		EventType:      "leave_decision",
		LeaveRequestID: leave.ID.String(),
		EmployeeCode:   leave.EmployeeCode,
		EmployeeName:   leave.EmployeeName,
		Department:     leave.Department,
		Stage:          stage,
		Decision:       decision,
		DecidedBy:      decidedBy,
		OccurredAt:     time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		s.logger.Error("marshal leave decision event failed", zap.Error(err))
		return err
	}

	if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: "leave_request",
		AggregateID:   leave.ID.String(),
		EventType:     event.EventType,
		Topic:         events.LeaveDecisionTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}); err != nil {
		s.logger.Error("leave decision outbox persist failed",
			zap.String("leave_request_id", leave.ID.String()),
			zap.Error(err),
		)
		return err
	}

	return nil
}

func mapToResponse(l LeaveRequest) LeaveRequestResponse {
	return LeaveRequestResponse{
		ID:               l.ID.String(),
		EmployeeCode:     l.EmployeeCode,
		EmployeeName:     l.EmployeeName,
		Designation:      l.Designation,
		Department:       l.Department,
		FromDate:         l.FromDate.Format(dateLayout),
		ToDate:           l.ToDate.Format(dateLayout),
		Days:             inclusiveDays(l.FromDate, l.ToDate),
		Reason:           l.Reason,
		MobileNumber:     l.MobileNumber,
		UrgentMobile:     l.UrgentMobile,
		RequestStatus:    l.RequestStatus,
		ApprovedBy:       l.ApprovedBy,
		ApprovedByStatus: l.ApprovedByStatus,
		HrApproval:       l.HrApproval,
		ApprovalHr:       l.ApprovalHr,
		CreatedAt:        l.CreatedAt.Format(time.RFC3339),
	}
}

func mapToListResponse(reqs []LeaveRequest) []LeaveRequestResponse {
	res := make([]LeaveRequestResponse, len(reqs))
	for i, r := range reqs {
		res[i] = mapToResponse(r)
	}
	return res
}

// inclusiveDays counts both endpoints: a single-day leave is 1 day.
func inclusiveDays(from, to time.Time) int {
	days := int(to.Sub(from).Hours()/24) + 1
	if days < 1 {
		return 1
	}
	return days
}
