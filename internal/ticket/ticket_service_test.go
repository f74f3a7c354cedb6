package ticket_test

import (
	"context"
	"io"
	"strings"
	"testing"

	"hrfiles/internal/authz"
	"hrfiles/internal/ticket"
	ticketerrors "hrfiles/internal/ticket/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeTicketRepo struct {
	createFn   func(ctx context.Context, t *ticket.Ticket) error
	findAllFn  func(ctx context.Context) ([]ticket.Ticket, error)
	findByIDFn func(ctx context.Context, id string) (*ticket.Ticket, error)
}

func (f *fakeTicketRepo) Create(ctx context.Context, t *ticket.Ticket) error {
	return f.createFn(ctx, t)
}
func (f *fakeTicketRepo) FindAll(ctx context.Context) ([]ticket.Ticket, error) {
	return f.findAllFn(ctx)
}
func (f *fakeTicketRepo) FindByID(ctx context.Context, id string) (*ticket.Ticket, error) {
	return f.findByIDFn(ctx, id)
}

type fakeStore struct {
	saveFn func(ctx context.Context, prefix, filename, contentType string, body io.Reader) (string, error)
	openFn func(ctx context.Context, key string) (io.ReadCloser, string, error)
}

func (f *fakeStore) Save(ctx context.Context, prefix, filename, contentType string, body io.Reader) (string, error) {
	return f.saveFn(ctx, prefix, filename, contentType, body)
}
func (f *fakeStore) Open(ctx context.Context, key string) (io.ReadCloser, string, error) {
	return f.openFn(ctx, key)
}

var (
	deskCaller    = authz.Caller{Code: "S09191", Name: "Ticket Desk", Department: "ADMIN"}
	nonDeskCaller = authz.Caller{Code: "S00002", Name: "Arun Sharma", Department: "IT"}
)

func TestTicketService_Create(t *testing.T) {
	ctx := context.Background()
	provider := authz.NewStaticProvider()

	t.Run("success - desk member books with bill", func(t *testing.T) {
		repo := &fakeTicketRepo{
			createFn: func(ctx context.Context, tk *ticket.Ticket) error {
				assert.Equal(t, "S09191", tk.BookedByCode)
				assert.Equal(t, "bills/stored-key.pdf", tk.BillKey)
				assert.Equal(t, "application/pdf", tk.BillContentType)
				return nil
			},
		}
		store := &fakeStore{
			saveFn: func(ctx context.Context, prefix, filename, contentType string, body io.Reader) (string, error) {
				assert.Equal(t, "bills", prefix)
				assert.Equal(t, "bill.pdf", filename)
				return "bills/stored-key.pdf", nil
			},
		}

		svc := ticket.NewService(repo, provider, store)

		resp, err := svc.Create(ctx, deskCaller, ticket.CreateTicketRequest{
			PersonName:  "Ravi Kumar",
			TravelsName: "Shree Travels",
			TotalAmount: 4200,
		}, &ticket.BillUpload{
			Filename:    "bill.pdf",
			ContentType: "application/pdf",
			Body:        strings.NewReader("%PDF-"),
		})

		assert.NoError(t, err)
		assert.True(t, resp.HasBill)
		assert.Equal(t, "S09191", resp.BookedByCode)
	})

	t.Run("success - bill is optional", func(t *testing.T) {
		repo := &fakeTicketRepo{
			createFn: func(ctx context.Context, tk *ticket.Ticket) error {
				assert.Empty(t, tk.BillKey)
				return nil
			},
		}

		svc := ticket.NewService(repo, provider, &fakeStore{})

		resp, err := svc.Create(ctx, deskCaller, ticket.CreateTicketRequest{PersonName: "Ravi"}, nil)

		assert.NoError(t, err)
		assert.False(t, resp.HasBill)
	})

	t.Run("negative - non-desk employee is refused", func(t *testing.T) {
		svc := ticket.NewService(&fakeTicketRepo{}, provider, &fakeStore{})

		_, err := svc.Create(ctx, nonDeskCaller, ticket.CreateTicketRequest{PersonName: "Ravi"}, nil)

		assert.ErrorIs(t, err, ticketerrors.ErrNotTicketDesk)
	})
}

func TestTicketService_OpenBill(t *testing.T) {
	ctx := context.Background()
	provider := authz.NewStaticProvider()

	t.Run("success - persisted content type wins", func(t *testing.T) {
		ticketID := uuid.New()
		repo := &fakeTicketRepo{
			findByIDFn: func(ctx context.Context, id string) (*ticket.Ticket, error) {
				return &ticket.Ticket{
					ID:              ticketID,
					BillKey:         "bills/stored-key.pdf",
					BillContentType: "application/pdf",
				}, nil
			},
		}
		store := &fakeStore{
			openFn: func(ctx context.Context, key string) (io.ReadCloser, string, error) {
				assert.Equal(t, "bills/stored-key.pdf", key)
				return io.NopCloser(strings.NewReader("%PDF-")), "application/octet-stream", nil
			},
		}

		svc := ticket.NewService(repo, provider, store)

		body, contentType, err := svc.OpenBill(ctx, ticketID.String())

		assert.NoError(t, err)
		assert.Equal(t, "application/pdf", contentType)
		data, _ := io.ReadAll(body)
		assert.Equal(t, "%PDF-", string(data))
		body.Close()
	})

	t.Run("negative - no bill attached", func(t *testing.T) {
		repo := &fakeTicketRepo{
			findByIDFn: func(ctx context.Context, id string) (*ticket.Ticket, error) {
				return &ticket.Ticket{ID: uuid.New()}, nil
			},
		}

		svc := ticket.NewService(repo, provider, &fakeStore{})

		_, _, err := svc.OpenBill(ctx, uuid.NewString())

		assert.ErrorIs(t, err, ticketerrors.ErrBillNotAttached)
	})

	t.Run("negative - unknown ticket", func(t *testing.T) {
		repo := &fakeTicketRepo{
			findByIDFn: func(ctx context.Context, id string) (*ticket.Ticket, error) {
				return nil, gorm.ErrRecordNotFound
			},
		}

		svc := ticket.NewService(repo, provider, &fakeStore{})

		_, _, err := svc.OpenBill(ctx, uuid.NewString())

		assert.ErrorIs(t, err, ticketerrors.ErrTicketNotFound)
	})
}
