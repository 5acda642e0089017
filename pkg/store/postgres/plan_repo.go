package postgres

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Nickname-is-not-avaliable/planing-system/pkg/model"
)

type PlanRepository struct {
	db *gorm.DB
}

func NewPlanRepository(db *gorm.DB) *PlanRepository {
	return &PlanRepository{db: db}
}

func (r *PlanRepository) Create(ctx context.Context, plan *model.Plan) error {
	// gorm persists the plan row and the plan_executors join rows in one
	// transaction.
	return translate(r.db.WithContext(ctx).Create(plan).Error)
}

func (r *PlanRepository) GetByID(ctx context.Context, id int64) (*model.Plan, error) {
	var plan model.Plan
	err := r.db.WithContext(ctx).
		Preload("Executors").
		First(&plan, "id = ?", id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &plan, nil
}

func (r *PlanRepository) List(ctx context.Context) ([]model.Plan, error) {
	var plans []model.Plan
	err := r.db.WithContext(ctx).Preload("Executors").Find(&plans).Error
	return plans, translate(err)
}

func (r *PlanRepository) Update(ctx context.Context, plan *model.Plan) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(plan).Association("Executors").Replace(plan.Executors); err != nil {
			return err
		}
		return tx.Omit("Executors", "CreatedAt").Save(plan).Error
	})
	return translate(err)
}

func (r *PlanRepository) Delete(ctx context.Context, id int64) error {
	// Unconditional delete: absent ids are a no-op. Select(Associations)
	// clears the plan_executors join rows.
	err := r.db.WithContext(ctx).
		Select(clause.Associations).
		Delete(&model.Plan{ID: id}).Error
	return translate(err)
}
