package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/Nickname-is-not-avaliable/planing-system/pkg/metrics"
	"github.com/Nickname-is-not-avaliable/planing-system/pkg/model"
	"github.com/Nickname-is-not-avaliable/planing-system/pkg/store"
)

type DocumentService struct {
	documents store.DocumentStore
	reports   store.ReportStore
	users     store.UserStore
	logger    *zap.Logger
}

func NewDocumentService(documents store.DocumentStore, reports store.ReportStore, users store.UserStore, logger *zap.Logger) *DocumentService {
	return &DocumentService{documents: documents, reports: reports, users: users, logger: logger}
}

// DocumentInput carries the ids as pointers: a missing id is a
// validation failure, distinct from a dangling reference.
type DocumentInput struct {
	ReportID         *int64
	UploadedByUserID *int64
	Filename         string
	FilePath         string
}

func (s *DocumentService) Create(ctx context.Context, in DocumentInput) (*model.Document, error) {
	report, uploader, err := s.resolveRefs(ctx, in)
	if err != nil {
		return nil, err
	}

	doc := &model.Document{
		ReportID:         report.ID,
		UploadedByUserID: uploader.ID,
		Filename:         in.Filename,
		FilePath:         in.FilePath,
	}
	if err := s.documents.Create(ctx, doc); err != nil {
		s.logger.Error("failed to save document", zap.Error(err))
		return nil, Internal("failed to save document", err)
	}

	metrics.EntityOps.WithLabelValues("document", "create").Inc()
	s.logger.Info("created document",
		zap.Int64("id", doc.ID),
		zap.Int64("report_id", doc.ReportID))
	return doc, nil
}

func (s *DocumentService) GetByID(ctx context.Context, id int64) (*model.Document, error) {
	return resolve(ctx, s.documents.GetByID, "document", id)
}

func (s *DocumentService) List(ctx context.Context) ([]model.Document, error) {
	docs, err := s.documents.List(ctx)
	if err != nil {
		return nil, Internal("failed to list documents", err)
	}
	return docs, nil
}

func (s *DocumentService) Update(ctx context.Context, id int64, in DocumentInput) (*model.Document, error) {
	doc, err := resolve(ctx, s.documents.GetByID, "document", id)
	if err != nil {
		return nil, err
	}
	report, uploader, err := s.resolveRefs(ctx, in)
	if err != nil {
		return nil, err
	}

	doc.ReportID = report.ID
	doc.UploadedByUserID = uploader.ID
	doc.Filename = in.Filename
	doc.FilePath = in.FilePath

	if err := s.documents.Update(ctx, doc); err != nil {
		return nil, Internal("failed to update document", err)
	}

	metrics.EntityOps.WithLabelValues("document", "update").Inc()
	return doc, nil
}

func (s *DocumentService) Delete(ctx context.Context, id int64) error {
	if err := s.documents.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return NotFoundf("document not found with id %d", id)
		}
		return Internal("failed to delete document", err)
	}
	metrics.EntityOps.WithLabelValues("document", "delete").Inc()
	return nil
}

func (s *DocumentService) resolveRefs(ctx context.Context, in DocumentInput) (*model.QuarterlyReport, *model.User, error) {
	if in.ReportID == nil {
		return nil, nil, Invalidf("report id must not be null")
	}
	if in.UploadedByUserID == nil {
		return nil, nil, Invalidf("uploaded user id must not be null")
	}
	if in.Filename == "" {
		return nil, nil, Invalidf("filename must not be blank")
	}
	if in.FilePath == "" {
		return nil, nil, Invalidf("file path must not be blank")
	}

	report, err := resolve(ctx, s.reports.GetByID, "report", *in.ReportID)
	if err != nil {
		return nil, nil, err
	}
	uploader, err := resolve(ctx, s.users.GetByID, "user", *in.UploadedByUserID)
	if err != nil {
		return nil, nil, err
	}
	return report, uploader, nil
}
