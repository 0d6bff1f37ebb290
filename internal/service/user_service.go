package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"usersvc/internal/cache"
	apperrors "usersvc/internal/errors"
	"usersvc/internal/model"
	"usersvc/internal/repository"
)

const userCacheTTL = 5 * time.Minute

// UserService orchestrates repository calls for the user resource and maps
// repository outcomes into the domain error taxonomy.
type UserService interface {
	CreateUser(ctx context.Context, dto *model.UserDto) (*model.UserDto, error)
	UpdateUser(ctx context.Context, dto *model.UserDto) (*model.UserDto, error)
	GetUser(ctx context.Context, id int64) (*model.UserDto, error)
	ListUsers(ctx context.Context) []model.UserDto
	DeleteUser(ctx context.Context, id int64) error
}

type userService struct {
	repo  repository.Repository[model.User, int64]
	cache *cache.Client
}

// NewUserService builds a UserService over the given repository and cache.
func NewUserService(repo repository.Repository[model.User, int64], cache *cache.Client) UserService {
	return &userService{repo: repo, cache: cache}
}

func (s *userService) cacheKey(id int64) string {
	return fmt.Sprintf("user:%d", id)
}

// CreateUser persists a new user. Clients may not choose an id; the storage
// engine assigns one.
func (s *userService) CreateUser(ctx context.Context, dto *model.UserDto) (*model.UserDto, error) {
	if dto.ID != nil {
		log.Printf("unable to create new user with existing id %d", *dto.ID)
		return nil, apperrors.ErrCannotCreateExistingUser
	}

	created := s.repo.Create(ctx, model.UserFromDto(dto))
	if created == nil {
		return nil, apperrors.NewFailedRequest("Failed to create user")
	}

	_ = s.cache.Delete(ctx, s.cacheKey(created.ID))
	return created.AsDto(), nil
}

// UpdateUser persists changes to an existing user identified by dto.ID.
func (s *userService) UpdateUser(ctx context.Context, dto *model.UserDto) (*model.UserDto, error) {
	if dto.ID == nil {
		log.Printf("unable to update a user without an existing id")
		return nil, apperrors.ErrMissingID
	}

	updated := s.repo.Update(ctx, model.UserFromDto(dto))
	if updated == nil {
		return nil, apperrors.NewFailedRequest("Failed to update user")
	}

	_ = s.cache.Delete(ctx, s.cacheKey(updated.ID))
	return updated.AsDto(), nil
}

// GetUser retrieves a user by id, serving repeated reads from the fail-safe
// cache.
func (s *userService) GetUser(ctx context.Context, id int64) (*model.UserDto, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.UserDto
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	user := s.repo.FindByID(ctx, id)
	if user == nil {
		return nil, apperrors.ErrNotFound
	}

	dto := user.AsDto()
	if payload, err := json.Marshal(dto); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, userCacheTTL)
	}
	return dto, nil
}

// ListUsers returns all users ordered by id. An empty store yields an empty
// slice, never an error.
func (s *userService) ListUsers(ctx context.Context) []model.UserDto {
	users := s.repo.FindAll(ctx)

	dtos := make([]model.UserDto, 0, len(users))
	for i := range users {
		dtos = append(dtos, *users[i].AsDto())
	}
	return dtos
}

// DeleteUser removes a user by id. Deleting twice is safe, but the second
// call reports not found.
func (s *userService) DeleteUser(ctx context.Context, id int64) error {
	if affected := s.repo.DeleteByID(ctx, id); affected == 0 {
		return apperrors.ErrNotFound
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return nil
}
