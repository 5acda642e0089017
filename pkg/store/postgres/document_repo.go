package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/Nickname-is-not-avaliable/planing-system/pkg/model"
	"github.com/Nickname-is-not-avaliable/planing-system/pkg/store"
)

type DocumentRepository struct {
	db *gorm.DB
}

func NewDocumentRepository(db *gorm.DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

func (r *DocumentRepository) Create(ctx context.Context, doc *model.Document) error {
	return translate(r.db.WithContext(ctx).Create(doc).Error)
}

func (r *DocumentRepository) GetByID(ctx context.Context, id int64) (*model.Document, error) {
	var doc model.Document
	if err := r.db.WithContext(ctx).First(&doc, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &doc, nil
}

func (r *DocumentRepository) List(ctx context.Context) ([]model.Document, error) {
	var docs []model.Document
	err := r.db.WithContext(ctx).Find(&docs).Error
	return docs, translate(err)
}

func (r *DocumentRepository) Update(ctx context.Context, doc *model.Document) error {
	return translate(r.db.WithContext(ctx).Save(doc).Error)
}

func (r *DocumentRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&model.Document{}, "id = ?", id)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}
