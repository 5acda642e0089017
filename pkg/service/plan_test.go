package service

import (
	"context"
	"sort"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/Nickname-is-not-avaliable/planing-system/pkg/model"
	"github.com/Nickname-is-not-avaliable/planing-system/pkg/store"
)

func newPlanFixture(t *testing.T) (*PlanService, *UserService, store.Stores) {
	t.Helper()
	stores := newTestStores()
	users := NewUserService(stores.Users, zap.NewNop())
	plans := NewPlanService(stores.Plans, stores.Users, zap.NewNop())
	return plans, users, stores
}

func TestPlanCreateReturnsExecutorSet(t *testing.T) {
	plans, users, _ := newPlanFixture(t)
	creator := createUser(t, users, "creator@example.com", model.RoleAnalyst)
	execA := createUser(t, users, "a@example.com", model.RoleExecutor)
	execB := createUser(t, users, "b@example.com", model.RoleExecutor)

	plan, err := plans.Create(context.Background(), PlanInput{
		Name:            "Q3 growth",
		TargetValue:     500,
		StartDate:       time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
		EndDate:         time.Date(2024, 9, 30, 0, 0, 0, 0, time.UTC),
		ExecutorUserIDs: []int64{execB.ID, execA.ID},
		CreatedByUserID: creator.ID,
	})
	if err != nil {
		t.Fatalf("failed to create plan: %v", err)
	}

	got := plan.ExecutorIDs()
	want := []int64{execA.ID, execB.ID}
	sort.Slice(got, func(i, j int) bool { return got[i] < got[j] })
	sort.Slice(want, func(i, j int) bool { return want[i] < want[j] })
	if len(got) != len(want) {
		t.Fatalf("expected %d executors, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("executor set mismatch: got %v, want %v", got, want)
		}
	}
	if plan.CreatedAt.IsZero() {
		t.Fatal("createdAt not stamped")
	}
}

func TestPlanCreateMissingExecutor(t *testing.T) {
	plans, users, stores := newPlanFixture(t)
	creator := createUser(t, users, "creator@example.com", model.RoleAnalyst)

	_, err := plans.Create(context.Background(), PlanInput{
		Name:            "doomed",
		ExecutorUserIDs: []int64{creator.ID, 999},
		CreatedByUserID: creator.ID,
	})
	if KindOf(err) != KindNotFound {
		t.Fatalf("expected not-found error, got %v", err)
	}

	existing, listErr := stores.Plans.List(context.Background())
	if listErr != nil {
		t.Fatalf("list failed: %v", listErr)
	}
	if len(existing) != 0 {
		t.Fatalf("expected no plans persisted, got %d", len(existing))
	}
}

func TestPlanCreateEmptyExecutorSet(t *testing.T) {
	plans, users, _ := newPlanFixture(t)
	creator := createUser(t, users, "creator@example.com", model.RoleAnalyst)

	_, err := plans.Create(context.Background(), PlanInput{
		Name:            "no hands",
		ExecutorUserIDs: nil,
		CreatedByUserID: creator.ID,
	})
	if KindOf(err) != KindValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestPlanUpdateKeepsCreator(t *testing.T) {
	plans, users, _ := newPlanFixture(t)
	creator := createUser(t, users, "creator@example.com", model.RoleAnalyst)
	exec := createUser(t, users, "exec@example.com", model.RoleExecutor)
	other := createUser(t, users, "other@example.com", model.RoleExecutor)

	plan, err := plans.Create(context.Background(), PlanInput{
		Name:            "original",
		ExecutorUserIDs: []int64{exec.ID},
		CreatedByUserID: creator.ID,
	})
	if err != nil {
		t.Fatalf("failed to create plan: %v", err)
	}

	updated, err := plans.Update(context.Background(), plan.ID, PlanInput{
		Name:            "renamed",
		TargetValue:     900,
		ExecutorUserIDs: []int64{other.ID},
		CreatedByUserID: other.ID, // must be ignored
	})
	if err != nil {
		t.Fatalf("failed to update plan: %v", err)
	}

	if updated.Name != "renamed" {
		t.Fatalf("expected renamed plan, got %q", updated.Name)
	}
	if updated.CreatedByUserID != creator.ID {
		t.Fatalf("creator changed on update: got %d, want %d", updated.CreatedByUserID, creator.ID)
	}
	ids := updated.ExecutorIDs()
	if len(ids) != 1 || ids[0] != other.ID {
		t.Fatalf("executor set not replaced: %v", ids)
	}
}

func TestPlanDeleteMissingIsNoOp(t *testing.T) {
	plans, _, _ := newPlanFixture(t)

	if err := plans.Delete(context.Background(), 12345); err != nil {
		t.Fatalf("deleting a missing plan must be a no-op, got %v", err)
	}
}

func TestPlanGetMissing(t *testing.T) {
	plans, _, _ := newPlanFixture(t)

	_, err := plans.GetByID(context.Background(), 7)
	if KindOf(err) != KindNotFound {
		t.Fatalf("expected not-found error, got %v", err)
	}
}
