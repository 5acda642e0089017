package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/Nickname-is-not-avaliable/planing-system/pkg/metrics"
	"github.com/Nickname-is-not-avaliable/planing-system/pkg/model"
	"github.com/Nickname-is-not-avaliable/planing-system/pkg/store"
)

type CommentService struct {
	comments store.CommentStore
	reports  store.ReportStore
	users    store.UserStore
	logger   *zap.Logger
}

func NewCommentService(comments store.CommentStore, reports store.ReportStore, users store.UserStore, logger *zap.Logger) *CommentService {
	return &CommentService{comments: comments, reports: reports, users: users, logger: logger}
}

type CommentInput struct {
	ReportID int64
	UserID   int64
	Text     string
}

func (s *CommentService) Create(ctx context.Context, in CommentInput) (*model.Comment, error) {
	if in.Text == "" {
		return nil, Invalidf("comment text must not be blank")
	}
	report, err := resolve(ctx, s.reports.GetByID, "report", in.ReportID)
	if err != nil {
		return nil, err
	}
	user, err := resolve(ctx, s.users.GetByID, "user", in.UserID)
	if err != nil {
		return nil, err
	}

	comment := &model.Comment{
		ReportID: report.ID,
		UserID:   user.ID,
		Text:     in.Text,
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, Internal("failed to create comment", err)
	}

	metrics.EntityOps.WithLabelValues("comment", "create").Inc()
	return comment, nil
}

func (s *CommentService) GetByID(ctx context.Context, id int64) (*model.Comment, error) {
	return resolve(ctx, s.comments.GetByID, "comment", id)
}

func (s *CommentService) List(ctx context.Context) ([]model.Comment, error) {
	comments, err := s.comments.List(ctx)
	if err != nil {
		return nil, Internal("failed to list comments", err)
	}
	return comments, nil
}

func (s *CommentService) Update(ctx context.Context, id int64, in CommentInput) (*model.Comment, error) {
	comment, err := resolve(ctx, s.comments.GetByID, "comment", id)
	if err != nil {
		return nil, err
	}
	if in.Text == "" {
		return nil, Invalidf("comment text must not be blank")
	}
	report, err := resolve(ctx, s.reports.GetByID, "report", in.ReportID)
	if err != nil {
		return nil, err
	}
	user, err := resolve(ctx, s.users.GetByID, "user", in.UserID)
	if err != nil {
		return nil, err
	}

	comment.ReportID = report.ID
	comment.UserID = user.ID
	comment.Text = in.Text

	if err := s.comments.Update(ctx, comment); err != nil {
		return nil, Internal("failed to update comment", err)
	}

	metrics.EntityOps.WithLabelValues("comment", "update").Inc()
	return comment, nil
}

func (s *CommentService) Delete(ctx context.Context, id int64) error {
	if err := s.comments.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return NotFoundf("comment not found with id %d", id)
		}
		return Internal("failed to delete comment", err)
	}
	metrics.EntityOps.WithLabelValues("comment", "delete").Inc()
	return nil
}
