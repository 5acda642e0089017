package store

import (
	"context"
	"errors"

	"github.com/Nickname-is-not-avaliable/planing-system/pkg/model"
)

var (
	// ErrNotFound is returned when a record with the given key does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when an insert or update violates a unique
	// constraint (user email, stored filename).
	ErrDuplicate = errors.New("duplicate record")
)

type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id int64) (*model.User, error)
	// GetByEmail expects an already normalized (lower-cased, trimmed) email.
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	Update(ctx context.Context, user *model.User) error
	Delete(ctx context.Context, id int64) error
}

type PlanStore interface {
	Create(ctx context.Context, plan *model.Plan) error
	// GetByID returns the plan with its executor set loaded.
	GetByID(ctx context.Context, id int64) (*model.Plan, error)
	List(ctx context.Context) ([]model.Plan, error)
	// Update replaces scalar fields and the full executor set.
	Update(ctx context.Context, plan *model.Plan) error
	// Delete is unconditional: deleting an absent plan is a no-op.
	Delete(ctx context.Context, id int64) error
}

type ReportStore interface {
	Create(ctx context.Context, report *model.QuarterlyReport) error
	GetByID(ctx context.Context, id int64) (*model.QuarterlyReport, error)
	List(ctx context.Context) ([]model.QuarterlyReport, error)
	Update(ctx context.Context, report *model.QuarterlyReport) error
	Delete(ctx context.Context, id int64) error
}

type DocumentStore interface {
	Create(ctx context.Context, doc *model.Document) error
	GetByID(ctx context.Context, id int64) (*model.Document, error)
	List(ctx context.Context) ([]model.Document, error)
	Update(ctx context.Context, doc *model.Document) error
	Delete(ctx context.Context, id int64) error
}

type CommentStore interface {
	Create(ctx context.Context, comment *model.Comment) error
	GetByID(ctx context.Context, id int64) (*model.Comment, error)
	List(ctx context.Context) ([]model.Comment, error)
	Update(ctx context.Context, comment *model.Comment) error
	Delete(ctx context.Context, id int64) error
}

type FileMetadataStore interface {
	Create(ctx context.Context, meta *model.FileMetadata) error
	GetByFilename(ctx context.Context, filename string) (*model.FileMetadata, error)
}

// Stores bundles one store per entity type. Both the postgres and the
// in-memory drivers provide the full bundle.
type Stores struct {
	Users     UserStore
	Plans     PlanStore
	Reports   ReportStore
	Documents DocumentStore
	Comments  CommentStore
	Files     FileMetadataStore
}
