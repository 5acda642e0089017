package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/Nickname-is-not-avaliable/planing-system/pkg/model"
	"github.com/Nickname-is-not-avaliable/planing-system/pkg/store"
)

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) Create(ctx context.Context, comment *model.Comment) error {
	return translate(r.db.WithContext(ctx).Create(comment).Error)
}

func (r *CommentRepository) GetByID(ctx context.Context, id int64) (*model.Comment, error) {
	var comment model.Comment
	if err := r.db.WithContext(ctx).First(&comment, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &comment, nil
}

func (r *CommentRepository) List(ctx context.Context) ([]model.Comment, error) {
	var comments []model.Comment
	err := r.db.WithContext(ctx).Find(&comments).Error
	return comments, translate(err)
}

func (r *CommentRepository) Update(ctx context.Context, comment *model.Comment) error {
	return translate(r.db.WithContext(ctx).Save(comment).Error)
}

func (r *CommentRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&model.Comment{}, "id = ?", id)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}
