package service

import (
	"context"
	"errors"

	"github.com/Nickname-is-not-avaliable/planing-system/pkg/store"
)

// resolve loads a referenced entity by id or fails the whole operation.
// Every registry funnels its foreign-key lookups through here so the
// not-found wrapping lives in one place.
func resolve[T any](ctx context.Context, get func(context.Context, int64) (*T, error), entity string, id int64) (*T, error) {
	v, err := get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, NotFoundf("%s not found with id %d", entity, id)
		}
		return nil, Internal("failed to load "+entity, err)
	}
	return v, nil
}
