package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/Nickname-is-not-avaliable/planing-system/pkg/model"
)

type FileRepository struct {
	db *gorm.DB
}

func NewFileRepository(db *gorm.DB) *FileRepository {
	return &FileRepository{db: db}
}

func (r *FileRepository) Create(ctx context.Context, meta *model.FileMetadata) error {
	return translate(r.db.WithContext(ctx).Create(meta).Error)
}

func (r *FileRepository) GetByFilename(ctx context.Context, filename string) (*model.FileMetadata, error) {
	var meta model.FileMetadata
	if err := r.db.WithContext(ctx).First(&meta, "filename = ?", filename).Error; err != nil {
		return nil, translate(err)
	}
	return &meta, nil
}
