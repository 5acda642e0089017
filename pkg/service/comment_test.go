package service

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/Nickname-is-not-avaliable/planing-system/pkg/model"
)

func newCommentFixture(t *testing.T) (*CommentService, *model.QuarterlyReport, *model.User) {
	t.Helper()
	f := newReportFixture(t)
	creator := createUser(t, f.users, "creator@example.com", model.RoleAnalyst)
	executor := createUser(t, f.users, "exec@example.com", model.RoleExecutor)
	plan := f.plan(t, creator, executor)
	report, err := f.reports.Create(context.Background(), ReportInput{
		PlanID:          plan.ID,
		ReportingUserID: executor.ID,
		Year:            2024,
		Quarter:         1,
	})
	if err != nil {
		t.Fatalf("failed to create report: %v", err)
	}
	comments := NewCommentService(f.stores.Comments, f.stores.Reports, f.stores.Users, zap.NewNop())
	return comments, report, creator
}

func TestCommentCreateBlankText(t *testing.T) {
	comments, report, author := newCommentFixture(t)

	_, err := comments.Create(context.Background(), CommentInput{
		ReportID: report.ID,
		UserID:   author.ID,
	})
	if KindOf(err) != KindValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCommentCreateMissingReport(t *testing.T) {
	comments, _, author := newCommentFixture(t)

	_, err := comments.Create(context.Background(), CommentInput{
		ReportID: 404,
		UserID:   author.ID,
		Text:     "looks good",
	})
	if KindOf(err) != KindNotFound {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestCommentRoundTrip(t *testing.T) {
	comments, report, author := newCommentFixture(t)

	comment, err := comments.Create(context.Background(), CommentInput{
		ReportID: report.ID,
		UserID:   author.ID,
		Text:     "needs a revised target",
	})
	if err != nil {
		t.Fatalf("failed to create comment: %v", err)
	}

	got, err := comments.GetByID(context.Background(), comment.ID)
	if err != nil {
		t.Fatalf("failed to load comment: %v", err)
	}
	if got.Text != "needs a revised target" || got.ReportID != report.ID {
		t.Fatalf("unexpected comment: %+v", got)
	}

	if err := comments.Delete(context.Background(), comment.ID); err != nil {
		t.Fatalf("failed to delete comment: %v", err)
	}
	if err := comments.Delete(context.Background(), comment.ID); KindOf(err) != KindNotFound {
		t.Fatalf("expected not-found on second delete, got %v", err)
	}
}
