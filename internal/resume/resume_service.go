package resume

import (
	"context"
	"errors"
	"io"
	"time"

	resumeerrors "hrfiles/internal/resume/errors"
	"hrfiles/internal/shared/contextutil"
	"hrfiles/internal/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// FileUpload carries the optional resume document of an intake.
type FileUpload struct {
	Filename    string
	ContentType string
	Body        io.Reader
}

//go:generate mockgen -source=resume_service.go -destination=mock/resume_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateResumeRequest, file *FileUpload) (ResumeResponse, error)
	GetAll(ctx context.Context) ([]ResumeResponse, error)
	GetSelected(ctx context.Context) ([]ResumeResponse, error)
	GetByID(ctx context.Context, id string) (ResumeResponse, error)
	Update(ctx context.Context, id string, req UpdateResumeRequest) (ResumeResponse, error)
	OpenFile(ctx context.Context, id string) (io.ReadCloser, string, error)
}

type service struct {
	repo   Repository
	store  storage.Store
	logger *zap.Logger
}

func NewService(repo Repository, store storage.Store, logger ...*zap.Logger) Service {
	l := zap.L().Named("resume.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("resume.service")
	}
	return &service{
		repo:   repo,
		store:  store,
		logger: l,
	}
}

func (s *service) Create(ctx context.Context, req CreateResumeRequest, file *FileUpload) (ResumeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create resume",
		zap.String("request_id", rid),
		zap.String("name", req.Name),
		zap.String("req_id", req.ReqID),
	)

	res := &Resume{
		ID:                    uuid.New(),
		ReqID:                 req.ReqID,
		Name:                  req.Name,
		Email:                 req.Email,
		Mobile:                req.Mobile,
		AppliedForDesignation: req.AppliedForDesignation,
		Experience:            req.Experience,
		PreviousCompany:       req.PreviousCompany,
		PreviousSalary:        req.PreviousSalary,
		MaritalStatus:         req.MaritalStatus,
		Reference:             req.Reference,
		PresentAddress:        req.PresentAddress,
		ReasonForChanging:     req.ReasonForChanging,
	}

	if file != nil {
		key, err := s.store.Save(ctx, "resumes", file.Filename, file.ContentType, file.Body)
		if err != nil {
			s.logger.Error("store resume file failed", zap.Error(err))
			return ResumeResponse{}, err
		}
		res.FileKey = key
		res.FileContentType = file.ContentType
	}

	if err := s.repo.Create(ctx, res); err != nil {
		s.logger.Error("create resume persist failed", zap.Error(err))
		return ResumeResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("resume received",
		zap.String("request_id", rid),
		zap.String("resume_id", res.ID.String()),
	)

	return mapToResponse(*res), nil
}

func (s *service) GetAll(ctx context.Context) ([]ResumeResponse, error) {
	resumes, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all resumes failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(resumes), nil
}

func (s *service) GetSelected(ctx context.Context) ([]ResumeResponse, error) {
	resumes, err := s.repo.FindByCandidateStatus(ctx, CandidateStatusSelected)
	if err != nil {
		s.logger.Error("get selected resumes failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(resumes), nil
}

func (s *service) GetByID(ctx context.Context, id string) (ResumeResponse, error) {
	res, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return ResumeResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*res), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateResumeRequest) (ResumeResponse, error) {
	s.logger.Debug("update resume", zap.String("resume_id", id))

	res, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return ResumeResponse{}, mapRepositoryError(err)
	}

	if req.InterviewerPlanned != nil {
		res.InterviewerPlanned = *req.InterviewerPlanned
	}
	if req.InterviewerActual != nil {
		res.InterviewerActual = *req.InterviewerActual
	}
	if req.InterviewerStatus != nil {
		res.InterviewerStatus = *req.InterviewerStatus
	}
	if req.CandidateStatus != nil {
		res.CandidateStatus = *req.CandidateStatus
	}
	if req.JoinedStatus != nil {
		res.JoinedStatus = *req.JoinedStatus
	}

	if err := s.repo.Update(ctx, res); err != nil {
		s.logger.Error("update resume persist failed", zap.Error(err))
		return ResumeResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("resume updated",
		zap.String("resume_id", id),
		zap.String("candidate_status", res.CandidateStatus),
	)

	return mapToResponse(*res), nil
}

func (s *service) OpenFile(ctx context.Context, id string) (io.ReadCloser, string, error) {
	res, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, "", mapRepositoryError(err)
	}

	if res.FileKey == "" {
		return nil, "", resumeerrors.ErrFileNotAttached
	}

	body, contentType, err := s.store.Open(ctx, res.FileKey)
	if err != nil {
		s.logger.Error("open resume file failed",
			zap.String("resume_id", id),
			zap.Error(err),
		)
		return nil, "", err
	}

	if res.FileContentType != "" {
		contentType = res.FileContentType
	}
	return body, contentType, nil
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return resumeerrors.ErrResumeNotFound
	}
	return err
}

func mapToResponse(r Resume) ResumeResponse {
	return ResumeResponse{
		ID:                    r.ID.String(),
		ReqID:                 r.ReqID,
		Name:                  r.Name,
		Email:                 r.Email,
		Mobile:                r.Mobile,
		AppliedForDesignation: r.AppliedForDesignation,
		Experience:            r.Experience,
		PreviousCompany:       r.PreviousCompany,
		PreviousSalary:        r.PreviousSalary,
		MaritalStatus:         r.MaritalStatus,
		Reference:             r.Reference,
		PresentAddress:        r.PresentAddress,
		ReasonForChanging:     r.ReasonForChanging,
		InterviewerPlanned:    r.InterviewerPlanned,
		InterviewerActual:     r.InterviewerActual,
		InterviewerStatus:     r.InterviewerStatus,
		CandidateStatus:       r.CandidateStatus,
		JoinedStatus:          r.JoinedStatus,
		HasFile:               r.FileKey != "",
		CreatedAt:             r.CreatedAt.Format(time.RFC3339),
	}
}

func mapToListResponse(resumes []Resume) []ResumeResponse {
	res := make([]ResumeResponse, len(resumes))
	for i, r := range resumes {
		res[i] = mapToResponse(r)
	}
	return res
}
