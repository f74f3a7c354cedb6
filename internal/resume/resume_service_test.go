package resume_test

import (
	"context"
	"io"
	"strings"
	"testing"

	"hrfiles/internal/resume"
	resumeerrors "hrfiles/internal/resume/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeResumeRepo struct {
	createFn                func(ctx context.Context, r *resume.Resume) error
	findAllFn               func(ctx context.Context) ([]resume.Resume, error)
	findByCandidateStatusFn func(ctx context.Context, status string) ([]resume.Resume, error)
	findByIDFn              func(ctx context.Context, id string) (*resume.Resume, error)
	updateFn                func(ctx context.Context, r *resume.Resume) error
}

func (f *fakeResumeRepo) Create(ctx context.Context, r *resume.Resume) error {
	return f.createFn(ctx, r)
}
func (f *fakeResumeRepo) FindAll(ctx context.Context) ([]resume.Resume, error) {
	return f.findAllFn(ctx)
}
func (f *fakeResumeRepo) FindByCandidateStatus(ctx context.Context, status string) ([]resume.Resume, error) {
	return f.findByCandidateStatusFn(ctx, status)
}
func (f *fakeResumeRepo) FindByID(ctx context.Context, id string) (*resume.Resume, error) {
	return f.findByIDFn(ctx, id)
}
func (f *fakeResumeRepo) Update(ctx context.Context, r *resume.Resume) error {
	return f.updateFn(ctx, r)
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

func strPtr(s string) *string { return &s }

func TestResumeService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success - stores file and intake fields", func(t *testing.T) {
		repo := &fakeResumeRepo{
			createFn: func(ctx context.Context, r *resume.Resume) error {
				assert.Equal(t, "Anita Desai", r.Name)
				assert.Equal(t, "REQ00007", r.ReqID)
				assert.Equal(t, "resumes/stored.pdf", r.FileKey)
				assert.Empty(t, r.CandidateStatus)
				return nil
			},
		}
		store := &fakeStore{
			saveFn: func(ctx context.Context, prefix, filename, contentType string, body io.Reader) (string, error) {
				assert.Equal(t, "resumes", prefix)
				return "resumes/stored.pdf", nil
			},
		}

		svc := resume.NewService(repo, store)

		resp, err := svc.Create(ctx, resume.CreateResumeRequest{
			ReqID:                 "REQ00007",
			Name:                  "Anita Desai",
			AppliedForDesignation: "Engineer",
		}, &resume.FileUpload{
			Filename:    "cv.pdf",
			ContentType: "application/pdf",
			Body:        strings.NewReader("%PDF-"),
		})

		assert.NoError(t, err)
		assert.True(t, resp.HasFile)
		assert.Equal(t, "Anita Desai", resp.Name)
	})

	t.Run("success - file optional", func(t *testing.T) {
		repo := &fakeResumeRepo{
			createFn: func(ctx context.Context, r *resume.Resume) error {
				assert.Empty(t, r.FileKey)
				return nil
			},
		}

		svc := resume.NewService(repo, &fakeStore{})

		resp, err := svc.Create(ctx, resume.CreateResumeRequest{Name: "Walk In"}, nil)

		assert.NoError(t, err)
		assert.False(t, resp.HasFile)
	})
}

func TestResumeService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("success - partial update touches only sent fields", func(t *testing.T) {
		existing := &resume.Resume{
			ID:                 uuid.New(),
			Name:               "Anita Desai",
			InterviewerPlanned: "Mr. Rao",
			CandidateStatus:    "",
		}
		repo := &fakeResumeRepo{
			findByIDFn: func(ctx context.Context, id string) (*resume.Resume, error) {
				return existing, nil
			},
			updateFn: func(ctx context.Context, r *resume.Resume) error {
				assert.Equal(t, "Mr. Rao", r.InterviewerPlanned)
				assert.Equal(t, resume.CandidateStatusSelected, r.CandidateStatus)
				return nil
			},
		}

		svc := resume.NewService(repo, &fakeStore{})

		resp, err := svc.Update(ctx, existing.ID.String(), resume.UpdateResumeRequest{
			CandidateStatus: strPtr(resume.CandidateStatusSelected),
		})

		assert.NoError(t, err)
		assert.Equal(t, resume.CandidateStatusSelected, resp.CandidateStatus)
		assert.Equal(t, "Mr. Rao", resp.InterviewerPlanned)
	})

	t.Run("negative - not found", func(t *testing.T) {
		repo := &fakeResumeRepo{
			findByIDFn: func(ctx context.Context, id string) (*resume.Resume, error) {
				return nil, gorm.ErrRecordNotFound
			},
		}

		svc := resume.NewService(repo, &fakeStore{})

		_, err := svc.Update(ctx, uuid.NewString(), resume.UpdateResumeRequest{
			JoinedStatus: strPtr("Joined"),
		})

		assert.ErrorIs(t, err, resumeerrors.ErrResumeNotFound)
	})
}

func TestResumeService_GetSelected(t *testing.T) {
	ctx := context.Background()

	repo := &fakeResumeRepo{
		findByCandidateStatusFn: func(ctx context.Context, status string) ([]resume.Resume, error) {
			assert.Equal(t, resume.CandidateStatusSelected, status)
			return []resume.Resume{
				{ID: uuid.New(), Name: "Anita Desai", CandidateStatus: resume.CandidateStatusSelected},
			}, nil
		},
	}

	svc := resume.NewService(repo, &fakeStore{})

	resp, err := svc.GetSelected(ctx)

	assert.NoError(t, err)
	assert.Len(t, resp, 1)
	assert.Equal(t, resume.CandidateStatusSelected, resp[0].CandidateStatus)
}

func TestResumeService_OpenFile(t *testing.T) {
	ctx := context.Background()

	t.Run("negative - no file attached", func(t *testing.T) {
		repo := &fakeResumeRepo{
			findByIDFn: func(ctx context.Context, id string) (*resume.Resume, error) {
				return &resume.Resume{ID: uuid.New()}, nil
			},
		}

		svc := resume.NewService(repo, &fakeStore{})

		_, _, err := svc.OpenFile(ctx, uuid.NewString())

		assert.ErrorIs(t, err, resumeerrors.ErrFileNotAttached)
	})

	t.Run("success", func(t *testing.T) {
		repo := &fakeResumeRepo{
			findByIDFn: func(ctx context.Context, id string) (*resume.Resume, error) {
				return &resume.Resume{
					ID:              uuid.New(),
					FileKey:         "resumes/stored.pdf",
					FileContentType: "application/pdf",
				}, nil
			},
		}
		store := &fakeStore{
			openFn: func(ctx context.Context, key string) (io.ReadCloser, string, error) {
				return io.NopCloser(strings.NewReader("%PDF-")), "", nil
			},
		}

		svc := resume.NewService(repo, store)

		body, contentType, err := svc.OpenFile(ctx, uuid.NewString())

		assert.NoError(t, err)
		assert.Equal(t, "application/pdf", contentType)
		body.Close()
	})
}
