package service

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/Nickname-is-not-avaliable/planing-system/pkg/model"
)

func newDocumentFixture(t *testing.T) (*DocumentService, *reportFixture, *model.QuarterlyReport, *model.User) {
	t.Helper()
	f := newReportFixture(t)
	creator := createUser(t, f.users, "creator@example.com", model.RoleAnalyst)
	executor := createUser(t, f.users, "exec@example.com", model.RoleExecutor)
	plan := f.plan(t, creator, executor)
	report, err := f.reports.Create(context.Background(), ReportInput{
		PlanID:          plan.ID,
		ReportingUserID: executor.ID,
		Year:            2024,
		Quarter:         2,
		ActualValue:     100,
	})
	if err != nil {
		t.Fatalf("failed to create report: %v", err)
	}
	docs := NewDocumentService(f.stores.Documents, f.stores.Reports, f.stores.Users, zap.NewNop())
	return docs, f, report, executor
}

func TestDocumentCreateNilIDsAreValidationErrors(t *testing.T) {
	docs, _, report, uploader := newDocumentFixture(t)

	_, err := docs.Create(context.Background(), DocumentInput{
		UploadedByUserID: &uploader.ID,
		Filename:         "report.pdf",
		FilePath:         "/data/report.pdf",
	})
	if KindOf(err) != KindValidation {
		t.Fatalf("expected validation error for nil report id, got %v", err)
	}

	_, err = docs.Create(context.Background(), DocumentInput{
		ReportID: &report.ID,
		Filename: "report.pdf",
		FilePath: "/data/report.pdf",
	})
	if KindOf(err) != KindValidation {
		t.Fatalf("expected validation error for nil uploader id, got %v", err)
	}
}

func TestDocumentCreateDanglingRefIsNotFound(t *testing.T) {
	docs, _, _, uploader := newDocumentFixture(t)

	missing := int64(404)
	_, err := docs.Create(context.Background(), DocumentInput{
		ReportID:         &missing,
		UploadedByUserID: &uploader.ID,
		Filename:         "report.pdf",
		FilePath:         "/data/report.pdf",
	})
	if KindOf(err) != KindNotFound {
		t.Fatalf("expected not-found for missing report, got %v", err)
	}
}

func TestDocumentCreateAndUpdate(t *testing.T) {
	docs, _, report, uploader := newDocumentFixture(t)

	doc, err := docs.Create(context.Background(), DocumentInput{
		ReportID:         &report.ID,
		UploadedByUserID: &uploader.ID,
		Filename:         "report.pdf",
		FilePath:         "/data/report-1.pdf",
	})
	if err != nil {
		t.Fatalf("failed to create document: %v", err)
	}
	if doc.ID == 0 {
		t.Fatal("expected assigned id")
	}

	updated, err := docs.Update(context.Background(), doc.ID, DocumentInput{
		ReportID:         &report.ID,
		UploadedByUserID: &uploader.ID,
		Filename:         "revised.pdf",
		FilePath:         "/data/revised-1.pdf",
	})
	if err != nil {
		t.Fatalf("failed to update document: %v", err)
	}
	if updated.Filename != "revised.pdf" || updated.FilePath != "/data/revised-1.pdf" {
		t.Fatalf("update not applied: %+v", updated)
	}
}

func TestDocumentDeleteMissing(t *testing.T) {
	docs, _, _, _ := newDocumentFixture(t)

	err := docs.Delete(context.Background(), 99)
	if KindOf(err) != KindNotFound {
		t.Fatalf("expected not-found error, got %v", err)
	}
}
