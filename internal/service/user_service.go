package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"taskriser/internal/cache"
	apperrors "taskriser/internal/errors"
	"taskriser/internal/model"
	"taskriser/internal/repository"
)

const profileCacheTTL = 5 * time.Minute

// UserService exposes profile operations scoped to the authenticated user.
type UserService interface {
	GetProfile(ctx context.Context, userID uint) (*model.User, error)
	UpdateProfile(ctx context.Context, userID uint, update *model.UserUpdate) (*model.User, error)
	UpdateExp(ctx context.Context, userID uint, exp *int) (*model.User, error)
}

type userService struct {
	repo  repository.UserRepository
	cache *cache.Client
}

// NewUserService builds a UserService with repository and cache.
func NewUserService(repo repository.UserRepository, cache *cache.Client) UserService {
	return &userService{repo: repo, cache: cache}
}

func (s *userService) cacheKey(id uint) string {
	return fmt.Sprintf("user:%d", id)
}

// GetProfile loads the caller's record, read-through cached.
func (s *userService) GetProfile(ctx context.Context, userID uint) (*model.User, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(userID)); data != nil {
		var cached model.User
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(user); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(userID), payload, profileCacheTTL)
	}
	return user, nil
}

// UpdateProfile applies the present fields and persists. Absent fields are
// left untouched. Uniqueness is not re-checked on this path.
func (s *userService) UpdateProfile(ctx context.Context, userID uint, update *model.UserUpdate) (*model.User, error) {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	update.Apply(user)
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(userID))
	return user, nil
}

// UpdateExp overwrites the total experience when exp is present. A nil exp
// is a no-op that still returns the current record.
func (s *userService) UpdateExp(ctx context.Context, userID uint, exp *int) (*model.User, error) {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if exp != nil {
		user.TotalExp = *exp
		if err := s.repo.Update(ctx, user); err != nil {
			return nil, fmt.Errorf("update exp: %w", err)
		}
		_ = s.cache.Delete(ctx, s.cacheKey(userID))
	}
	return user, nil
}

func (s *userService) findUser(ctx context.Context, userID uint) (*model.User, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}
