package employee

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	employeeerrors "hrfiles/internal/employee/errors"
	"hrfiles/internal/shared/contextutil"
	"hrfiles/internal/shared/counter"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
	Departments(ctx context.Context) ([]string, error)
	Designations(ctx context.Context) ([]string, error)
}

type service struct {
	db      *sql.DB
	repo    Repository
	counter counter.Repository
	logger  *zap.Logger
}

func NewService(db *sql.DB, repo Repository, counterRepo counter.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:      db,
		repo:    repo,
		counter: counterRepo,
		logger:  l,
	}
}

func (s *service) Login(ctx context.Context, req LoginRequest) (LoginResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("login requested",
		zap.String("request_id", rid),
		zap.String("employee_code", req.EmployeeCode),
	)

	emp, err := s.repo.FindByCode(ctx, req.EmployeeCode)
	if err != nil {
		s.logger.Warn("login unknown employee code",
			zap.String("request_id", rid),
			zap.String("employee_code", req.EmployeeCode),
		)
		return LoginResponse{}, employeeerrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(emp.Password), []byte(req.Password)); err != nil {
		s.logger.Warn("login password mismatch",
			zap.String("request_id", rid),
			zap.String("employee_code", req.EmployeeCode),
		)
		return LoginResponse{}, employeeerrors.ErrInvalidCredentials
	}

	if emp.Status != StatusActive {
		s.logger.Warn("login attempt on inactive account",
			zap.String("employee_code", req.EmployeeCode),
			zap.String("status", emp.Status),
		)
		return LoginResponse{}, employeeerrors.ErrEmployeeResigned
	}

	token, err := generateToken(emp, 24*time.Hour)
	if err != nil {
		s.logger.Error("login token generation failed", zap.Error(err))
		return LoginResponse{}, err
	}

	s.logger.Info("login success",
		zap.String("request_id", rid),
		zap.String("employee_code", emp.EmployeeCode),
	)

	return LoginResponse{
		Token:    token,
		Employee: mapToResponse(*emp),
	}, nil
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("employee_code", req.EmployeeCode),
		zap.String("department", req.Department),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create employee begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if req.EmployeeCode == "" {
		nextVal, err := s.counter.GetNextValue(ctx, counter.TypeEmployeeCode)
		if err != nil {
			s.logger.Error("create employee generate code failed", zap.Error(err))
			return EmployeeResponse{}, err
		}
		req.EmployeeCode = fmt.Sprintf("S%05d", nextVal)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return EmployeeResponse{}, err
	}

	role := req.Role
	if role == "" {
		role = RoleUser
	}
	status := req.Status
	if status == "" {
		status = StatusActive
	}

	emp := &Employee{
		ID:           uuid.New(),
		EmployeeCode: req.EmployeeCode,
		Name:         req.Name,
		Email:        req.Email,
		MobileNumber: req.MobileNumber,
		Department:   req.Department,
		Designation:  req.Designation,
		Role:         role,
		Status:       status,
		Password:     string(hashed),
	}

	if err := qtx.Create(ctx, emp); err != nil {
		s.logger.Error("create employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create employee commit failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("employee_code", emp.EmployeeCode),
	)

	return mapToResponse(*emp), nil
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	s.logger.Debug("get all employees requested")
	emps, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all employees failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(emps), nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	s.logger.Debug("get employee by id requested", zap.String("employee_id", id))
	emp, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("get employee by id failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*emp), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	s.logger.Debug("update employee requested", zap.String("employee_id", id))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update employee begin tx failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	emp, err := qtx.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("update employee fetch existing failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	emp.Name = req.Name
	emp.Email = req.Email
	emp.MobileNumber = req.MobileNumber
	emp.Department = req.Department
	emp.Designation = req.Designation
	if req.Role != "" {
		emp.Role = req.Role
	}
	if req.Status != "" {
		emp.Status = req.Status
	}
	if req.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return EmployeeResponse{}, err
		}
		emp.Password = string(hashed)
	}

	if err := qtx.Update(ctx, emp); err != nil {
		s.logger.Error("update employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update employee commit failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.logger.Info("update employee success", zap.String("employee_id", id))

	return mapToResponse(*emp), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	s.logger.Debug("delete employee requested", zap.String("employee_id", id))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete employee begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := qtx.Delete(ctx, id); err != nil {
		s.logger.Error("delete employee failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("delete employee commit failed", zap.Error(err))
		return err
	}

	s.logger.Info("delete employee success", zap.String("employee_id", id))
	return nil
}

func (s *service) Departments(ctx context.Context) ([]string, error) {
	names, err := s.repo.ListDepartments(ctx)
	if err != nil {
		s.logger.Error("list departments failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return names, nil
}

func (s *service) Designations(ctx context.Context) ([]string, error) {
	names, err := s.repo.ListDesignations(ctx)
	if err != nil {
		s.logger.Error("list designations failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return names, nil
}

// generateToken embeds the identity fields the approval workflows resolve
// against, so guards never trust values sent in request bodies.
func generateToken(emp *Employee, expiry time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"employee_code": emp.EmployeeCode,
		"employee_name": emp.Name,
		"department":    emp.Department,
		"designation":   emp.Designation,
		"role":          emp.Role,
		"exp":           time.Now().Add(expiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

func mapToResponse(emp Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:           emp.ID.String(),
		EmployeeCode: emp.EmployeeCode,
		Name:         emp.Name,
		Email:        emp.Email,
		MobileNumber: emp.MobileNumber,
		Department:   emp.Department,
		Designation:  emp.Designation,
		Role:         emp.Role,
		Status:       emp.Status,
	}
}

func mapToListResponse(emps []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(emps))
	for i, e := range emps {
		res[i] = mapToResponse(e)
	}
	return res
}
