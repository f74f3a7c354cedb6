package employee_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"hrfiles/internal/employee"
	employeeerrors "hrfiles/internal/employee/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeEmployeeRepo struct {
	createFn           func(ctx context.Context, emp *employee.Employee) error
	findAllFn          func(ctx context.Context) ([]employee.Employee, error)
	findByIDFn         func(ctx context.Context, id string) (*employee.Employee, error)
	findByCodeFn       func(ctx context.Context, code string) (*employee.Employee, error)
	listDepartmentsFn  func(ctx context.Context) ([]string, error)
	listDesignationsFn func(ctx context.Context) ([]string, error)
	updateFn           func(ctx context.Context, emp *employee.Employee) error
	deleteFn           func(ctx context.Context, id string) error
}

func (f *fakeEmployeeRepo) WithTx(tx *sql.Tx) employee.Repository { return f }
func (f *fakeEmployeeRepo) Create(ctx context.Context, emp *employee.Employee) error {
	return f.createFn(ctx, emp)
}
func (f *fakeEmployeeRepo) FindAll(ctx context.Context) ([]employee.Employee, error) {
	return f.findAllFn(ctx)
}
func (f *fakeEmployeeRepo) FindByID(ctx context.Context, id string) (*employee.Employee, error) {
	return f.findByIDFn(ctx, id)
}
func (f *fakeEmployeeRepo) FindByCode(ctx context.Context, code string) (*employee.Employee, error) {
	return f.findByCodeFn(ctx, code)
}
func (f *fakeEmployeeRepo) ListDepartments(ctx context.Context) ([]string, error) {
	return f.listDepartmentsFn(ctx)
}
func (f *fakeEmployeeRepo) ListDesignations(ctx context.Context) ([]string, error) {
	return f.listDesignationsFn(ctx)
}
func (f *fakeEmployeeRepo) Update(ctx context.Context, emp *employee.Employee) error {
	return f.updateFn(ctx, emp)
}
func (f *fakeEmployeeRepo) Delete(ctx context.Context, id string) error {
	return f.deleteFn(ctx, id)
}

type fakeCounterRepo struct {
	nextFn func(ctx context.Context, counterType string) (int64, error)
}

func (f *fakeCounterRepo) GetNextValue(ctx context.Context, counterType string) (int64, error) {
	return f.nextFn(ctx, counterType)
}

func hashPassword(t *testing.T, plain string) string {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hashed)
}

func TestEmployeeService_Login(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	ctx := context.Background()

	activeEmployee := &employee.Employee{
		ID:           uuid.New(),
		EmployeeCode: "S00002",
		Name:         "Arun Sharma",
		Department:   "IT",
		Designation:  "Manager",
		Role:         employee.RoleAdmin,
		Status:       employee.StatusActive,
	}

	t.Run("success issues token with identity claims", func(t *testing.T) {
		emp := *activeEmployee
		emp.Password = hashPassword(t, "secret123")
		repo := &fakeEmployeeRepo{
			findByCodeFn: func(ctx context.Context, code string) (*employee.Employee, error) {
				assert.Equal(t, "S00002", code)
				return &emp, nil
			},
		}
		svc := employee.NewService(nil, repo, nil)

		resp, err := svc.Login(ctx, employee.LoginRequest{EmployeeCode: "S00002", Password: "secret123"})

		assert.NoError(t, err)
		assert.Equal(t, "S00002", resp.Employee.EmployeeCode)
		assert.NotEmpty(t, resp.Token)

		token, err := jwt.Parse(resp.Token, func(token *jwt.Token) (interface{}, error) {
			return []byte("test-secret"), nil
		})
		assert.NoError(t, err)
		claims := token.Claims.(jwt.MapClaims)
		assert.Equal(t, "S00002", claims["employee_code"])
		assert.Equal(t, "Arun Sharma", claims["employee_name"])
		assert.Equal(t, "IT", claims["department"])
		assert.Equal(t, "admin", claims["role"])
	})

	t.Run("negative wrong password", func(t *testing.T) {
		emp := *activeEmployee
		emp.Password = hashPassword(t, "secret123")
		repo := &fakeEmployeeRepo{
			findByCodeFn: func(ctx context.Context, code string) (*employee.Employee, error) {
				return &emp, nil
			},
		}
		svc := employee.NewService(nil, repo, nil)

		_, err := svc.Login(ctx, employee.LoginRequest{EmployeeCode: "S00002", Password: "wrong"})
		assert.ErrorIs(t, err, employeeerrors.ErrInvalidCredentials)
	})

	t.Run("negative unknown code maps to invalid credentials", func(t *testing.T) {
		repo := &fakeEmployeeRepo{
			findByCodeFn: func(ctx context.Context, code string) (*employee.Employee, error) {
				return nil, gorm.ErrRecordNotFound
			},
		}
		svc := employee.NewService(nil, repo, nil)

		_, err := svc.Login(ctx, employee.LoginRequest{EmployeeCode: "S99999", Password: "secret123"})
		assert.ErrorIs(t, err, employeeerrors.ErrInvalidCredentials)
	})

	t.Run("negative resigned employee cannot login", func(t *testing.T) {
		emp := *activeEmployee
		emp.Status = employee.StatusResigned
		emp.Password = hashPassword(t, "secret123")
		repo := &fakeEmployeeRepo{
			findByCodeFn: func(ctx context.Context, code string) (*employee.Employee, error) {
				return &emp, nil
			},
		}
		svc := employee.NewService(nil, repo, nil)

		_, err := svc.Login(ctx, employee.LoginRequest{EmployeeCode: "S00002", Password: "secret123"})
		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeResigned)
	})
}

func TestEmployeeService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success - auto generates employee code", func(t *testing.T) {
		db, sqlMock, _ := sqlmock.New()
		defer db.Close()
		sqlMock.ExpectBegin()
		sqlMock.ExpectCommit()

		repo := &fakeEmployeeRepo{
			createFn: func(ctx context.Context, emp *employee.Employee) error {
				assert.Equal(t, "S00123", emp.EmployeeCode)
				assert.Equal(t, "Priya Verma", emp.Name)
				assert.Equal(t, employee.RoleUser, emp.Role)
				assert.Equal(t, employee.StatusActive, emp.Status)
				assert.NotEqual(t, "secret123", emp.Password)
				return nil
			},
		}
		counterRepo := &fakeCounterRepo{
			nextFn: func(ctx context.Context, counterType string) (int64, error) {
				assert.Equal(t, "employee_code", counterType)
				return 123, nil
			},
		}

		svc := employee.NewService(db, repo, counterRepo)

		resp, err := svc.Create(ctx, employee.CreateEmployeeRequest{
			Name:       "Priya Verma",
			Department: "HR",
			Password:   "secret123",
		})

		assert.NoError(t, err)
		assert.Equal(t, "S00123", resp.EmployeeCode)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("success - keeps provided employee code", func(t *testing.T) {
		db, sqlMock, _ := sqlmock.New()
		defer db.Close()
		sqlMock.ExpectBegin()
		sqlMock.ExpectCommit()

		repo := &fakeEmployeeRepo{
			createFn: func(ctx context.Context, emp *employee.Employee) error {
				assert.Equal(t, "S08046", emp.EmployeeCode)
				return nil
			},
		}
		counterRepo := &fakeCounterRepo{
			nextFn: func(ctx context.Context, counterType string) (int64, error) {
				t.Fatal("counter must not be consulted when a code is provided")
				return 0, nil
			},
		}

		svc := employee.NewService(db, repo, counterRepo)

		resp, err := svc.Create(ctx, employee.CreateEmployeeRequest{
			EmployeeCode: "S08046",
			Name:         "HR Desk",
			Department:   "HR",
			Password:     "secret123",
		})

		assert.NoError(t, err)
		assert.Equal(t, "S08046", resp.EmployeeCode)
	})

	t.Run("negative duplicate code maps to conflict", func(t *testing.T) {
		db, sqlMock, _ := sqlmock.New()
		defer db.Close()
		sqlMock.ExpectBegin()
		sqlMock.ExpectRollback()

		repo := &fakeEmployeeRepo{
			createFn: func(ctx context.Context, emp *employee.Employee) error {
				return &pgconn.PgError{Code: "23505", ConstraintName: "uq_employee_code"}
			},
		}

		svc := employee.NewService(db, repo, &fakeCounterRepo{})

		_, err := svc.Create(ctx, employee.CreateEmployeeRequest{
			EmployeeCode: "S00002",
			Name:         "Dup",
			Department:   "IT",
			Password:     "secret123",
		})

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeCodeAlreadyExists)
	})

	t.Run("negative counter failure rolls back", func(t *testing.T) {
		db, sqlMock, _ := sqlmock.New()
		defer db.Close()
		sqlMock.ExpectBegin()
		sqlMock.ExpectRollback()

		counterRepo := &fakeCounterRepo{
			nextFn: func(ctx context.Context, counterType string) (int64, error) {
				return 0, errors.New("counter unavailable")
			},
		}

		svc := employee.NewService(db, &fakeEmployeeRepo{}, counterRepo)

		_, err := svc.Create(ctx, employee.CreateEmployeeRequest{
			Name:       "No Code",
			Department: "IT",
			Password:   "secret123",
		})

		assert.Error(t, err)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})
}

func TestEmployeeService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("success keeps password when omitted", func(t *testing.T) {
		db, sqlMock, _ := sqlmock.New()
		defer db.Close()
		sqlMock.ExpectBegin()
		sqlMock.ExpectCommit()

		existingHash := hashPassword(t, "secret123")
		existing := &employee.Employee{
			ID:           uuid.New(),
			EmployeeCode: "S00016",
			Name:         "Old Name",
			Department:   "PIPE MILL",
			Role:         employee.RoleUser,
			Status:       employee.StatusActive,
			Password:     existingHash,
		}

		repo := &fakeEmployeeRepo{
			findByIDFn: func(ctx context.Context, id string) (*employee.Employee, error) {
				return existing, nil
			},
			updateFn: func(ctx context.Context, emp *employee.Employee) error {
				assert.Equal(t, "New Name", emp.Name)
				assert.Equal(t, existingHash, emp.Password)
				return nil
			},
		}

		svc := employee.NewService(db, repo, &fakeCounterRepo{})

		resp, err := svc.Update(ctx, existing.ID.String(), employee.UpdateEmployeeRequest{
			Name:       "New Name",
			Department: "PIPE MILL",
		})

		assert.NoError(t, err)
		assert.Equal(t, "New Name", resp.Name)
	})

	t.Run("negative not found", func(t *testing.T) {
		db, sqlMock, _ := sqlmock.New()
		defer db.Close()
		sqlMock.ExpectBegin()
		sqlMock.ExpectRollback()

		repo := &fakeEmployeeRepo{
			findByIDFn: func(ctx context.Context, id string) (*employee.Employee, error) {
				return nil, gorm.ErrRecordNotFound
			},
		}

		svc := employee.NewService(db, repo, &fakeCounterRepo{})

		_, err := svc.Update(ctx, uuid.New().String(), employee.UpdateEmployeeRequest{
			Name:       "X",
			Department: "IT",
		})

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})
}

func TestEmployeeService_Lookups(t *testing.T) {
	ctx := context.Background()

	t.Run("departments", func(t *testing.T) {
		repo := &fakeEmployeeRepo{
			listDepartmentsFn: func(ctx context.Context) ([]string, error) {
				return []string{"HR", "IT", "PIPE MILL"}, nil
			},
		}
		svc := employee.NewService(nil, repo, nil)

		names, err := svc.Departments(ctx)
		assert.NoError(t, err)
		assert.Equal(t, []string{"HR", "IT", "PIPE MILL"}, names)
	})

	t.Run("designations error propagates", func(t *testing.T) {
		repo := &fakeEmployeeRepo{
			listDesignationsFn: func(ctx context.Context) ([]string, error) {
				return nil, errors.New("db down")
			},
		}
		svc := employee.NewService(nil, repo, nil)

		_, err := svc.Designations(ctx)
		assert.Error(t, err)
	})
}
