package service

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/Nickname-is-not-avaliable/planing-system/pkg/model"
	"github.com/Nickname-is-not-avaliable/planing-system/pkg/store"
)

type reportFixture struct {
	users   *UserService
	plans   *PlanService
	reports *ReportService
	stores  store.Stores
}

func newReportFixture(t *testing.T) *reportFixture {
	t.Helper()
	stores := newTestStores()
	return &reportFixture{
		users:   NewUserService(stores.Users, zap.NewNop()),
		plans:   NewPlanService(stores.Plans, stores.Users, zap.NewNop()),
		reports: NewReportService(stores.Reports, stores.Plans, stores.Users, zap.NewNop()),
		stores:  stores,
	}
}

func (f *reportFixture) plan(t *testing.T, creator, executor *model.User) *model.Plan {
	t.Helper()
	plan, err := f.plans.Create(context.Background(), PlanInput{
		Name:            "plan",
		TargetValue:     100,
		ExecutorUserIDs: []int64{executor.ID},
		CreatedByUserID: creator.ID,
	})
	if err != nil {
		t.Fatalf("failed to create plan: %v", err)
	}
	return plan
}

func TestReportCreateMissingPlan(t *testing.T) {
	f := newReportFixture(t)
	reporter := createUser(t, f.users, "reporter@example.com", model.RoleExecutor)

	_, err := f.reports.Create(context.Background(), ReportInput{
		PlanID:          404,
		ReportingUserID: reporter.ID,
		Year:            2024,
		Quarter:         2,
		ActualValue:     50,
	})
	if KindOf(err) != KindNotFound {
		t.Fatalf("expected not-found error, got %v", err)
	}

	existing, listErr := f.stores.Reports.List(context.Background())
	if listErr != nil {
		t.Fatalf("list failed: %v", listErr)
	}
	if len(existing) != 0 {
		t.Fatalf("expected no reports persisted, got %d", len(existing))
	}
}

func TestReportCreateValidatesPeriod(t *testing.T) {
	f := newReportFixture(t)
	creator := createUser(t, f.users, "creator@example.com", model.RoleAnalyst)
	executor := createUser(t, f.users, "exec@example.com", model.RoleExecutor)
	plan := f.plan(t, creator, executor)

	cases := []struct {
		name    string
		year    int
		quarter int
	}{
		{"year too early", 1999, 1},
		{"quarter zero", 2024, 0},
		{"quarter five", 2024, 5},
	}
	for _, tc := range cases {
		_, err := f.reports.Create(context.Background(), ReportInput{
			PlanID:          plan.ID,
			ReportingUserID: executor.ID,
			Year:            tc.year,
			Quarter:         tc.quarter,
		})
		if KindOf(err) != KindValidation {
			t.Fatalf("%s: expected validation error, got %v", tc.name, err)
		}
	}
}

func TestReportCreateWithAssessor(t *testing.T) {
	f := newReportFixture(t)
	creator := createUser(t, f.users, "creator@example.com", model.RoleAnalyst)
	executor := createUser(t, f.users, "exec@example.com", model.RoleExecutor)
	plan := f.plan(t, creator, executor)

	report, err := f.reports.Create(context.Background(), ReportInput{
		PlanID:           plan.ID,
		ReportingUserID:  executor.ID,
		AssessedByUserID: &creator.ID,
		Year:             2024,
		Quarter:          2,
		ActualValue:      100,
	})
	if err != nil {
		t.Fatalf("failed to create report: %v", err)
	}
	if report.AssessedByUserID == nil || *report.AssessedByUserID != creator.ID {
		t.Fatalf("assessor not persisted: %v", report.AssessedByUserID)
	}

	missing := int64(404)
	_, err = f.reports.Create(context.Background(), ReportInput{
		PlanID:           plan.ID,
		ReportingUserID:  executor.ID,
		AssessedByUserID: &missing,
		Year:             2024,
		Quarter:          3,
	})
	if KindOf(err) != KindNotFound {
		t.Fatalf("expected not-found for missing assessor, got %v", err)
	}
}

func TestReportUpdateReResolvesRefs(t *testing.T) {
	f := newReportFixture(t)
	creator := createUser(t, f.users, "creator@example.com", model.RoleAnalyst)
	executor := createUser(t, f.users, "exec@example.com", model.RoleExecutor)
	plan := f.plan(t, creator, executor)

	report, err := f.reports.Create(context.Background(), ReportInput{
		PlanID:          plan.ID,
		ReportingUserID: executor.ID,
		Year:            2024,
		Quarter:         1,
		ActualValue:     10,
	})
	if err != nil {
		t.Fatalf("failed to create report: %v", err)
	}

	_, err = f.reports.Update(context.Background(), report.ID, ReportInput{
		PlanID:          777,
		ReportingUserID: executor.ID,
		Year:            2024,
		Quarter:         1,
	})
	if KindOf(err) != KindNotFound {
		t.Fatalf("expected not-found for missing plan on update, got %v", err)
	}

	updated, err := f.reports.Update(context.Background(), report.ID, ReportInput{
		PlanID:          plan.ID,
		ReportingUserID: executor.ID,
		Year:            2025,
		Quarter:         4,
		ActualValue:     42,
	})
	if err != nil {
		t.Fatalf("failed to update report: %v", err)
	}
	if updated.Year != 2025 || updated.Quarter != 4 || updated.ActualValue != 42 {
		t.Fatalf("scalar fields not overwritten: %+v", updated)
	}
	if updated.AssessedByUserID != nil {
		t.Fatal("assessor should be cleared when absent from the update")
	}
}

func TestReportDeleteMissing(t *testing.T) {
	f := newReportFixture(t)

	err := f.reports.Delete(context.Background(), 55)
	if KindOf(err) != KindNotFound {
		t.Fatalf("expected not-found error, got %v", err)
	}
}
