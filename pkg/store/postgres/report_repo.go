package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/Nickname-is-not-avaliable/planing-system/pkg/model"
	"github.com/Nickname-is-not-avaliable/planing-system/pkg/store"
)

type ReportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

func (r *ReportRepository) Create(ctx context.Context, report *model.QuarterlyReport) error {
	return translate(r.db.WithContext(ctx).Create(report).Error)
}

func (r *ReportRepository) GetByID(ctx context.Context, id int64) (*model.QuarterlyReport, error) {
	var report model.QuarterlyReport
	if err := r.db.WithContext(ctx).First(&report, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &report, nil
}

func (r *ReportRepository) List(ctx context.Context) ([]model.QuarterlyReport, error) {
	var reports []model.QuarterlyReport
	err := r.db.WithContext(ctx).Find(&reports).Error
	return reports, translate(err)
}

func (r *ReportRepository) Update(ctx context.Context, report *model.QuarterlyReport) error {
	return translate(r.db.WithContext(ctx).Save(report).Error)
}

func (r *ReportRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&model.QuarterlyReport{}, "id = ?", id)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}
