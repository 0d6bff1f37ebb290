package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"usersvc/internal/model"
)

// memoryUserRepository is an in-memory stand-in for the SQL-backed user
// repository, interchangeable from the manager's perspective. It enforces
// the same not-null constraint on user_name that the user_account table does.
type memoryUserRepository struct {
	mu     sync.Mutex
	users  map[int64]model.User
	nextID int64
}

// NewMemoryUserRepository builds an empty in-memory user repository.
func NewMemoryUserRepository() Repository[model.User, int64] {
	return &memoryUserRepository{users: make(map[int64]model.User)}
}

func (r *memoryUserRepository) FindByID(_ context.Context, id int64) *model.User {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return nil
	}
	return &user
}

func (r *memoryUserRepository) FindAll(_ context.Context) []model.User {
	r.mu.Lock()
	defer r.mu.Unlock()

	users := make([]model.User, 0, len(r.users))
	for _, user := range r.users {
		users = append(users, user)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users
}

func (r *memoryUserRepository) Create(_ context.Context, entity *model.User) *model.User {
	if entity.UserName == nil {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	now := time.Now()
	user := model.User{
		ID:        r.nextID,
		UserName:  entity.UserName,
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.users[user.ID] = user
	return &user
}

func (r *memoryUserRepository) Update(_ context.Context, entity *model.User) *model.User {
	if entity.UserName == nil {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.users[entity.ID]
	if !ok {
		return nil
	}

	existing.UserName = entity.UserName
	existing.UpdatedAt = time.Now()
	r.users[entity.ID] = existing
	return &existing
}

func (r *memoryUserRepository) DeleteByID(_ context.Context, id int64) int64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[id]; !ok {
		return 0
	}
	delete(r.users, id)
	return 1
}
