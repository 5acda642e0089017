package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/Nickname-is-not-avaliable/planing-system/pkg/metrics"
	"github.com/Nickname-is-not-avaliable/planing-system/pkg/model"
	"github.com/Nickname-is-not-avaliable/planing-system/pkg/store"
)

type UserService struct {
	users  store.UserStore
	logger *zap.Logger
}

func NewUserService(users store.UserStore, logger *zap.Logger) *UserService {
	return &UserService{users: users, logger: logger}
}

type CreateUserInput struct {
	Email    string
	Password string
	FullName string
	Role     model.UserRole
}

type PartialUserUpdate struct {
	Email    *string
	FullName *string
	Role     *model.UserRole
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *UserService) Create(ctx context.Context, in CreateUserInput) (*model.User, error) {
	email := normalizeEmail(in.Email)
	if email == "" {
		return nil, Invalidf("email must not be blank")
	}
	if in.Password == "" {
		return nil, Invalidf("password must not be blank")
	}
	if !in.Role.Valid() {
		return nil, Invalidf("unknown user role: %s", in.Role)
	}

	if err := s.checkEmailFree(ctx, email, 0); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, Internal("failed to hash password", err)
	}

	user := &model.User{
		Email:        email,
		PasswordHash: string(hash),
		FullName:     in.FullName,
		Role:         in.Role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		// The unique index is the last line of defense behind the racy
		// pre-check above.
		if errors.Is(err, store.ErrDuplicate) {
			return nil, Invalidf("email already in use: %s", email)
		}
		return nil, Internal("failed to create user", err)
	}

	metrics.EntityOps.WithLabelValues("user", "create").Inc()
	s.logger.Info("created user", zap.Int64("id", user.ID), zap.String("role", string(user.Role)))
	return user, nil
}

func (s *UserService) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return resolve(ctx, s.users.GetByID, "user", id)
}

func (s *UserService) List(ctx context.Context) ([]model.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, Internal("failed to list users", err)
	}
	return users, nil
}

// Update is a full replace; an empty password keeps the stored hash.
func (s *UserService) Update(ctx context.Context, id int64, in CreateUserInput) (*model.User, error) {
	user, err := resolve(ctx, s.users.GetByID, "user", id)
	if err != nil {
		return nil, err
	}

	email := normalizeEmail(in.Email)
	if email == "" {
		return nil, Invalidf("email must not be blank")
	}
	if !in.Role.Valid() {
		return nil, Invalidf("unknown user role: %s", in.Role)
	}
	if email != user.Email {
		if err := s.checkEmailFree(ctx, email, id); err != nil {
			return nil, err
		}
	}

	user.Email = email
	user.FullName = in.FullName
	user.Role = in.Role
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, Internal("failed to hash password", err)
		}
		user.PasswordHash = string(hash)
	}

	if err := s.users.Update(ctx, user); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, Invalidf("email already in use: %s", email)
		}
		return nil, Internal("failed to update user", err)
	}

	metrics.EntityOps.WithLabelValues("user", "update").Inc()
	return user, nil
}

// PartialUpdate applies only the provided fields. The password is never
// touched by this path. The save is skipped when nothing changed.
func (s *UserService) PartialUpdate(ctx context.Context, id int64, in PartialUserUpdate) (*model.User, error) {
	user, err := resolve(ctx, s.users.GetByID, "user", id)
	if err != nil {
		return nil, err
	}

	updated := false

	if in.Email != nil {
		email := normalizeEmail(*in.Email)
		if email == "" {
			return nil, Invalidf("email must not be blank")
		}
		if email != user.Email {
			if err := s.checkEmailFree(ctx, email, id); err != nil {
				return nil, err
			}
			user.Email = email
			updated = true
		}
	}
	if in.FullName != nil {
		user.FullName = *in.FullName
		updated = true
	}
	if in.Role != nil {
		if !in.Role.Valid() {
			return nil, Invalidf("unknown user role: %s", *in.Role)
		}
		user.Role = *in.Role
		updated = true
	}

	if !updated {
		return user, nil
	}

	if err := s.users.Update(ctx, user); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, Invalidf("email already in use: %s", user.Email)
		}
		return nil, Internal("failed to update user", err)
	}

	metrics.EntityOps.WithLabelValues("user", "update").Inc()
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, id int64) error {
	if err := s.users.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return NotFoundf("user not found with id %d", id)
		}
		return Internal("failed to delete user", err)
	}
	metrics.EntityOps.WithLabelValues("user", "delete").Inc()
	return nil
}

// Authenticate verifies credentials against the stored bcrypt hash and
// returns the matching user.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*model.User, error) {
	normalized := normalizeEmail(email)
	user, err := s.users.GetByEmail(ctx, normalized)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, NotFoundf("user not found with email: %s", normalized)
		}
		return nil, Internal("failed to load user", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, Unauthorizedf("invalid credentials")
	}
	return user, nil
}

func (s *UserService) checkEmailFree(ctx context.Context, email string, selfID int64) error {
	existing, err := s.users.GetByEmail(ctx, email)
	if err == nil {
		if existing.ID != selfID {
			return Invalidf("email already in use: %s", email)
		}
		return nil
	}
	if errors.Is(err, store.ErrNotFound) {
		return nil
	}
	return Internal("failed to check email", err)
}
