package employee_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hrfiles/internal/employee"
	employeeerrors "hrfiles/internal/employee/errors"
	"hrfiles/internal/rbac"
	"hrfiles/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type apiEnvelope struct {
	Success bool                     `json:"success"`
	Data    json.RawMessage          `json:"data"`
	Meta    *response.PaginationMeta `json:"meta"`
	Message string                   `json:"message"`
}

func decodeEnvelope(t *testing.T, body []byte) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	err := json.Unmarshal(body, &env)
	assert.NoError(t, err)
	return env
}

type fakeEmployeeService struct {
	loginFn        func(ctx context.Context, req employee.LoginRequest) (employee.LoginResponse, error)
	createFn       func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error)
	getAllFn       func(ctx context.Context) ([]employee.EmployeeResponse, error)
	getByIDFn      func(ctx context.Context, id string) (employee.EmployeeResponse, error)
	updateFn       func(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error)
	deleteFn       func(ctx context.Context, id string) error
	departmentsFn  func(ctx context.Context) ([]string, error)
	designationsFn func(ctx context.Context) ([]string, error)
}

func (f *fakeEmployeeService) Login(ctx context.Context, req employee.LoginRequest) (employee.LoginResponse, error) {
	return f.loginFn(ctx, req)
}
func (f *fakeEmployeeService) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	return f.createFn(ctx, req)
}
func (f *fakeEmployeeService) GetAll(ctx context.Context) ([]employee.EmployeeResponse, error) {
	return f.getAllFn(ctx)
}
func (f *fakeEmployeeService) GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	return f.getByIDFn(ctx, id)
}
func (f *fakeEmployeeService) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	return f.updateFn(ctx, id, req)
}
func (f *fakeEmployeeService) Delete(ctx context.Context, id string) error {
	return f.deleteFn(ctx, id)
}
func (f *fakeEmployeeService) Departments(ctx context.Context) ([]string, error) {
	return f.departmentsFn(ctx)
}
func (f *fakeEmployeeService) Designations(ctx context.Context) ([]string, error) {
	return f.designationsFn(ctx)
}

func TestEmployeeHandler_Login(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeEmployeeService{
			loginFn: func(ctx context.Context, req employee.LoginRequest) (employee.LoginResponse, error) {
				assert.Equal(t, "S00002", req.EmployeeCode)
				return employee.LoginResponse{
					Token: "signed-token",
					Employee: employee.EmployeeResponse{
						EmployeeCode: req.EmployeeCode,
						Name:         "Arun Sharma",
						Department:   "IT",
					},
				}, nil
			},
		}

		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		body := `{"employee_code":"S00002","password":"secret123"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/employees/login", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Login(c)

		assert.Equal(t, http.StatusOK, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Success)
		var got employee.LoginResponse
		assert.NoError(t, json.Unmarshal(env.Data, &got))
		assert.Equal(t, "signed-token", got.Token)
		assert.Equal(t, "S00002", got.Employee.EmployeeCode)
	})

	t.Run("negative missing password", func(t *testing.T) {
		h := employee.NewHandler(&fakeEmployeeService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/employees/login", strings.NewReader(`{"employee_code":"S00002"}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Login(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Success)
		assert.Contains(t, env.Message, "required")
	})

	t.Run("negative invalid credentials", func(t *testing.T) {
		svc := &fakeEmployeeService{
			loginFn: func(ctx context.Context, req employee.LoginRequest) (employee.LoginResponse, error) {
				return employee.LoginResponse{}, employeeerrors.ErrInvalidCredentials
			},
		}
		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/employees/login", strings.NewReader(`{"employee_code":"S00002","password":"bad"}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Login(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Success)
		assert.Equal(t, "Invalid employee code or password", env.Message)
	})
}

func TestEmployeeHandler_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeEmployeeService{
			createFn: func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{
					ID:           uuid.New().String(),
					EmployeeCode: "S00123",
					Name:         req.Name,
					Department:   req.Department,
				}, nil
			},
		}

		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		body := `{"name":"Priya Verma","department":"HR","password":"secret123"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/employees", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Success)
		var got employee.EmployeeResponse
		assert.NoError(t, json.Unmarshal(env.Data, &got))
		assert.Equal(t, "S00123", got.EmployeeCode)
	})

	t.Run("negative duplicate conflict", func(t *testing.T) {
		svc := &fakeEmployeeService{
			createFn: func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, employeeerrors.ErrEmployeeCodeAlreadyExists
			},
		}
		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		body := `{"name":"Dup","department":"IT","password":"secret123"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/employees", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusConflict, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Success)
	})
}

func TestEmployeeHandler_GetAll(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeEmployeeService{
			getAllFn: func(ctx context.Context) ([]employee.EmployeeResponse, error) {
				return []employee.EmployeeResponse{
					{EmployeeCode: "S00002", Name: "Arun Sharma"},
					{EmployeeCode: "S00016", Name: "Meena Iyer"},
				}, nil
			},
		}
		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/employees", nil)

		h.GetAll(c)

		assert.Equal(t, http.StatusOK, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Success)
		var got []employee.EmployeeResponse
		assert.NoError(t, json.Unmarshal(env.Data, &got))
		assert.Len(t, got, 2)
	})

	t.Run("paged when page requested", func(t *testing.T) {
		svc := &fakeEmployeeService{
			getAllFn: func(ctx context.Context) ([]employee.EmployeeResponse, error) {
				return []employee.EmployeeResponse{
					{EmployeeCode: "S00002", Name: "Arun Sharma"},
					{EmployeeCode: "S00016", Name: "Meena Iyer"},
					{EmployeeCode: "S00019", Name: "Vikram Patel"},
				}, nil
			},
		}
		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/employees?page=2&page_size=2", nil)

		h.GetAll(c)

		assert.Equal(t, http.StatusOK, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Success)
		var got []employee.EmployeeResponse
		assert.NoError(t, json.Unmarshal(env.Data, &got))
		assert.Len(t, got, 1)
		assert.Equal(t, "S00019", got[0].EmployeeCode)
		if assert.NotNil(t, env.Meta) {
			assert.Equal(t, int64(3), env.Meta.Total)
			assert.Equal(t, 2, env.Meta.TotalPages)
			assert.Equal(t, 2, env.Meta.Page)
			assert.Equal(t, 2, env.Meta.PageSize)
		}
	})

	t.Run("negative service error", func(t *testing.T) {
		svc := &fakeEmployeeService{
			getAllFn: func(ctx context.Context) ([]employee.EmployeeResponse, error) {
				return nil, errors.New("db error")
			},
		}
		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/employees", nil)

		h.GetAll(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Success)
	})
}

func TestEmployeeRoutes_LookupPaths(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeEmployeeService{
		departmentsFn: func(ctx context.Context) ([]string, error) {
			return []string{"HR", "IT"}, nil
		},
		designationsFn: func(ctx context.Context) ([]string, error) {
			return []string{"Engineer"}, nil
		},
	}
	rbacService, err := rbac.NewService(zap.NewNop())
	assert.NoError(t, err)

	router := gin.New()
	api := router.Group("/api")
	employee.RegisterRoutes(api, employee.NewHandler(svc), rbacService, zap.NewNop())

	t.Run("department lookup works without a session", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/employees/departments", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Success)
		var got []string
		assert.NoError(t, json.Unmarshal(env.Data, &got))
		assert.Equal(t, []string{"HR", "IT"}, got)
	})

	t.Run("designation lookup works without a session", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/employees/designations", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Success)
	})

	t.Run("employee detail still requires a session", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/employees/"+uuid.NewString(), nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Success)
		assert.Equal(t, "Please login again.", env.Message)
	})
}

func TestEmployeeHandler_Lookups(t *testing.T) {
	t.Run("departments success", func(t *testing.T) {
		svc := &fakeEmployeeService{
			departmentsFn: func(ctx context.Context) ([]string, error) {
				return []string{"HR", "IT"}, nil
			},
		}
		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/departments", nil)

		h.Departments(c)

		assert.Equal(t, http.StatusOK, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Success)
		var got []string
		assert.NoError(t, json.Unmarshal(env.Data, &got))
		assert.Equal(t, []string{"HR", "IT"}, got)
	})
}
