package user

import (
	"context"
	"fmt"
	"time"

	userRepo "clinicportal/database/repository/user"
	"clinicportal/models"
	"clinicportal/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// roleCacheTTL bounds how stale a cached admin flag can be after an
// out-of-band promotion.
const roleCacheTTL = 30 * time.Second

// UserService manages portal accounts and the admin role flag.
type UserService interface {
	// IsAdmin reports whether a user with this email exists and carries the
	// admin role. A missing user is simply not an admin, never an error.
	IsAdmin(ctx context.Context, email string) (bool, error)
	// GetAll retrieves all users.
	GetAll(ctx context.Context) ([]models.User, error)
	// Create inserts a new user and returns its hex id.
	Create(ctx context.Context, user *models.User) (string, error)
	// Promote grants the admin role to the user with the given hex id.
	Promote(ctx context.Context, id string) error
	// Demote removes the user record with the given hex id.
	Demote(ctx context.Context, id string) error
}

// DefaultUserService implements UserService over the user repository with a
// short-TTL redis cache in front of the role lookup. A nil Cache disables
// caching; every lookup then hits the store.
type DefaultUserService struct {
	Repo  userRepo.UserRepository
	Cache *redis.Client
}

// IsAdmin looks up the user's role, serving repeat checks from the cache.
func (s *DefaultUserService) IsAdmin(ctx context.Context, email string) (bool, error) {
	logger := utils.GetLogger()

	if s.Cache != nil {
		cached, err := s.Cache.Get(ctx, utils.RoleCachePrefix+email).Result()
		if err == nil {
			return cached == models.RoleAdmin, nil
		}
		if err != redis.Nil {
			logger.Warn("role cache unavailable, falling through to store", zap.Error(err))
		}
	}

	usr, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return false, fmt.Errorf("failed to look up role for %s: %w", email, err)
	}

	role := models.RoleNone
	if usr != nil {
		role = usr.Role
	}
	if s.Cache != nil {
		if err := s.Cache.Set(ctx, utils.RoleCachePrefix+email, role, roleCacheTTL).Err(); err != nil {
			logger.Warn("failed to cache role flag", zap.String("email", email), zap.Error(err))
		}
	}
	return usr.IsAdmin(), nil
}

// GetAll retrieves all users.
func (s *DefaultUserService) GetAll(ctx context.Context) ([]models.User, error) {
	users, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// Create inserts a new user. The role field always starts empty; promotion
// is a separate explicit operation.
func (s *DefaultUserService) Create(ctx context.Context, user *models.User) (string, error) {
	user.Role = models.RoleNone
	id, err := s.Repo.Create(ctx, user)
	if err != nil {
		return "", fmt.Errorf("failed to create user: %w", err)
	}
	s.invalidateRole(ctx, user.Email)
	return id, nil
}

// Promote grants the admin role by id, upserting as the legacy portal did.
func (s *DefaultUserService) Promote(ctx context.Context, id string) error {
	if err := s.Repo.SetRole(ctx, id, models.RoleAdmin); err != nil {
		return fmt.Errorf("failed to promote user %s: %w", id, err)
	}
	s.invalidateRoleByID(ctx, id)
	return nil
}

// Demote deletes the user record, which also clears any admin role.
func (s *DefaultUserService) Demote(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to remove user %s: %w", id, err)
	}
	s.invalidateRoleByID(ctx, id)
	return nil
}

func (s *DefaultUserService) invalidateRole(ctx context.Context, email string) {
	if s.Cache == nil || email == "" {
		return
	}
	if err := s.Cache.Del(ctx, utils.RoleCachePrefix+email).Err(); err != nil {
		utils.GetLogger().Warn("failed to invalidate role cache", zap.String("email", email), zap.Error(err))
	}
}

// invalidateRoleByID resolves the email behind an id mutation so the cached
// flag cannot outlive the TTL after a promotion or removal.
func (s *DefaultUserService) invalidateRoleByID(ctx context.Context, id string) {
	if s.Cache == nil {
		return
	}
	users, err := s.Repo.GetAll(ctx)
	if err != nil {
		utils.GetLogger().Warn("failed to resolve user for cache invalidation", zap.String("id", id), zap.Error(err))
		return
	}
	for _, u := range users {
		if u.ID.Hex() == id {
			s.invalidateRole(ctx, u.Email)
			return
		}
	}
}
