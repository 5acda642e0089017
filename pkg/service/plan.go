package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/Nickname-is-not-avaliable/planing-system/pkg/metrics"
	"github.com/Nickname-is-not-avaliable/planing-system/pkg/model"
	"github.com/Nickname-is-not-avaliable/planing-system/pkg/store"
)

type PlanService struct {
	plans  store.PlanStore
	users  store.UserStore
	logger *zap.Logger
}

func NewPlanService(plans store.PlanStore, users store.UserStore, logger *zap.Logger) *PlanService {
	return &PlanService{plans: plans, users: users, logger: logger}
}

type PlanInput struct {
	Name            string
	Description     string
	TargetValue     float64
	StartDate       time.Time
	EndDate         time.Time
	ExecutorUserIDs []int64
	CreatedByUserID int64
}

func (s *PlanService) Create(ctx context.Context, in PlanInput) (*model.Plan, error) {
	if in.Name == "" {
		return nil, Invalidf("plan name must not be blank")
	}

	creator, err := resolve(ctx, s.users.GetByID, "user", in.CreatedByUserID)
	if err != nil {
		return nil, err
	}
	executors, err := s.resolveExecutors(ctx, in.ExecutorUserIDs)
	if err != nil {
		return nil, err
	}

	plan := &model.Plan{
		Name:            in.Name,
		Description:     in.Description,
		TargetValue:     in.TargetValue,
		StartDate:       in.StartDate,
		EndDate:         in.EndDate,
		CreatedByUserID: creator.ID,
		Executors:       executors,
		CreatedAt:       time.Now(),
	}
	if err := s.plans.Create(ctx, plan); err != nil {
		return nil, Internal("failed to create plan", err)
	}

	metrics.EntityOps.WithLabelValues("plan", "create").Inc()
	s.logger.Info("created plan",
		zap.Int64("id", plan.ID),
		zap.Int("executors", len(plan.Executors)))
	return plan, nil
}

func (s *PlanService) GetByID(ctx context.Context, id int64) (*model.Plan, error) {
	return resolve(ctx, s.plans.GetByID, "plan", id)
}

func (s *PlanService) List(ctx context.Context) ([]model.Plan, error) {
	plans, err := s.plans.List(ctx)
	if err != nil {
		return nil, Internal("failed to list plans", err)
	}
	return plans, nil
}

// Update overwrites scalar fields and the executor set. The creator is
// immutable after creation and is not re-resolved here.
func (s *PlanService) Update(ctx context.Context, id int64, in PlanInput) (*model.Plan, error) {
	plan, err := resolve(ctx, s.plans.GetByID, "plan", id)
	if err != nil {
		return nil, err
	}
	if in.Name == "" {
		return nil, Invalidf("plan name must not be blank")
	}
	executors, err := s.resolveExecutors(ctx, in.ExecutorUserIDs)
	if err != nil {
		return nil, err
	}

	plan.Name = in.Name
	plan.Description = in.Description
	plan.TargetValue = in.TargetValue
	plan.StartDate = in.StartDate
	plan.EndDate = in.EndDate
	plan.Executors = executors

	if err := s.plans.Update(ctx, plan); err != nil {
		return nil, Internal("failed to update plan", err)
	}

	metrics.EntityOps.WithLabelValues("plan", "update").Inc()
	return plan, nil
}

// Delete is a no-op when the plan does not exist. The other registries
// report not-found on delete; plans intentionally do not.
func (s *PlanService) Delete(ctx context.Context, id int64) error {
	if err := s.plans.Delete(ctx, id); err != nil {
		return Internal("failed to delete plan", err)
	}
	metrics.EntityOps.WithLabelValues("plan", "delete").Inc()
	return nil
}

func (s *PlanService) resolveExecutors(ctx context.Context, ids []int64) ([]model.User, error) {
	seen := make(map[int64]struct{}, len(ids))
	executors := make([]model.User, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		user, err := s.users.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil, NotFoundf("executor user not found: %d", id)
			}
			return nil, Internal("failed to load executor user", err)
		}
		executors = append(executors, *user)
	}
	if len(executors) == 0 {
		return nil, Invalidf("executor set must not be empty")
	}
	return executors, nil
}
