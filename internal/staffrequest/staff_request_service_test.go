package staffrequest_test

import (
	"context"
	"database/sql"
	"testing"

	"hrfiles/internal/authz"
	"hrfiles/internal/staffrequest"
	staffrequesterrors "hrfiles/internal/staffrequest/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeStaffRepo struct {
	createFn   func(ctx context.Context, req *staffrequest.StaffRequest) error
	findAllFn  func(ctx context.Context) ([]staffrequest.StaffRequest, error)
	findByIDFn func(ctx context.Context, id string) (*staffrequest.StaffRequest, error)
	updateFn   func(ctx context.Context, req *staffrequest.StaffRequest) error
}

func (f *fakeStaffRepo) WithTx(tx *sql.Tx) staffrequest.Repository { return f }
func (f *fakeStaffRepo) Create(ctx context.Context, req *staffrequest.StaffRequest) error {
	return f.createFn(ctx, req)
}
func (f *fakeStaffRepo) FindAll(ctx context.Context) ([]staffrequest.StaffRequest, error) {
	return f.findAllFn(ctx)
}
func (f *fakeStaffRepo) FindByID(ctx context.Context, id string) (*staffrequest.StaffRequest, error) {
	return f.findByIDFn(ctx, id)
}
func (f *fakeStaffRepo) Update(ctx context.Context, req *staffrequest.StaffRequest) error {
	return f.updateFn(ctx, req)
}

type fakeCounterRepo struct {
	nextFn func(ctx context.Context, counterType string) (int64, error)
}

func (f *fakeCounterRepo) GetNextValue(ctx context.Context, counterType string) (int64, error) {
	return f.nextFn(ctx, counterType)
}

func strPtr(s string) *string { return &s }

func TestStaffRequestService_Create(t *testing.T) {
	ctx := context.Background()
	caller := authz.Caller{Code: "S12345", Name: "Ravi Kumar", Department: "IT"}

	t.Run("success - travel request gets generated number", func(t *testing.T) {
		db, sqlMock, _ := sqlmock.New()
		defer db.Close()
		sqlMock.ExpectBegin()
		sqlMock.ExpectCommit()

		repo := &fakeStaffRepo{
			createFn: func(ctx context.Context, req *staffrequest.StaffRequest) error {
				assert.Equal(t, "REQ00042", req.RequestNo)
				assert.Equal(t, staffrequest.TypeTravel, req.RequestType)
				assert.Equal(t, "S12345", req.EmployeeCode)
				assert.Equal(t, staffrequest.StatusOpen, req.RequestStatus)
				assert.NotNil(t, req.DepartureDate)
				return nil
			},
		}
		counterRepo := &fakeCounterRepo{
			nextFn: func(ctx context.Context, counterType string) (int64, error) {
				assert.Equal(t, "staff_request", counterType)
				return 42, nil
			},
		}

		svc := staffrequest.NewService(db, repo, counterRepo)

		resp, err := svc.Create(ctx, caller, staffrequest.CreateStaffRequest{
			RequestType:   staffrequest.TypeTravel,
			TravelType:    "Train",
			Reason:        "Client visit",
			Headcount:     2,
			DepartureDate: "2026-09-15",
		})

		assert.NoError(t, err)
		assert.Equal(t, "REQ00042", resp.RequestNo)
		assert.Equal(t, staffrequest.StatusOpen, resp.RequestStatus)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("negative - bad date format", func(t *testing.T) {
		svc := staffrequest.NewService(nil, &fakeStaffRepo{}, &fakeCounterRepo{})

		_, err := svc.Create(ctx, caller, staffrequest.CreateStaffRequest{
			RequestType: staffrequest.TypeTravel,
			FromDate:    "15-09-2026",
		})

		assert.Error(t, err)
	})
}

func TestStaffRequestService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("success - close open request", func(t *testing.T) {
		db, sqlMock, _ := sqlmock.New()
		defer db.Close()
		sqlMock.ExpectBegin()
		sqlMock.ExpectCommit()

		existing := &staffrequest.StaffRequest{
			ID:            uuid.New(),
			RequestNo:     "REQ00042",
			RequestType:   staffrequest.TypeStaffing,
			RequestStatus: staffrequest.StatusOpen,
		}
		repo := &fakeStaffRepo{
			findByIDFn: func(ctx context.Context, id string) (*staffrequest.StaffRequest, error) {
				return existing, nil
			},
			updateFn: func(ctx context.Context, req *staffrequest.StaffRequest) error {
				assert.Equal(t, staffrequest.StatusClosed, req.RequestStatus)
				assert.Equal(t, "Filled internally", req.Remarks)
				return nil
			},
		}

		svc := staffrequest.NewService(db, repo, &fakeCounterRepo{})

		resp, err := svc.Update(ctx, existing.ID.String(), staffrequest.UpdateStaffRequest{
			RequestStatus: strPtr(staffrequest.StatusClosed),
			Remarks:       strPtr("Filled internally"),
		})

		assert.NoError(t, err)
		assert.Equal(t, staffrequest.StatusClosed, resp.RequestStatus)
	})

	t.Run("negative - closed request never reopens", func(t *testing.T) {
		db, sqlMock, _ := sqlmock.New()
		defer db.Close()
		sqlMock.ExpectBegin()
		sqlMock.ExpectRollback()

		existing := &staffrequest.StaffRequest{
			ID:            uuid.New(),
			RequestStatus: staffrequest.StatusClosed,
		}
		repo := &fakeStaffRepo{
			findByIDFn: func(ctx context.Context, id string) (*staffrequest.StaffRequest, error) {
				return existing, nil
			},
		}

		svc := staffrequest.NewService(db, repo, &fakeCounterRepo{})

		_, err := svc.Update(ctx, existing.ID.String(), staffrequest.UpdateStaffRequest{
			RequestStatus: strPtr(staffrequest.StatusOpen),
		})

		assert.ErrorIs(t, err, staffrequesterrors.ErrRequestAlreadyClosed)
	})

	t.Run("negative - not found", func(t *testing.T) {
		db, sqlMock, _ := sqlmock.New()
		defer db.Close()
		sqlMock.ExpectBegin()
		sqlMock.ExpectRollback()

		repo := &fakeStaffRepo{
			findByIDFn: func(ctx context.Context, id string) (*staffrequest.StaffRequest, error) {
				return nil, gorm.ErrRecordNotFound
			},
		}

		svc := staffrequest.NewService(db, repo, &fakeCounterRepo{})

		_, err := svc.Update(ctx, uuid.NewString(), staffrequest.UpdateStaffRequest{
			Remarks: strPtr("x"),
		})

		assert.ErrorIs(t, err, staffrequesterrors.ErrStaffRequestNotFound)
	})
}
