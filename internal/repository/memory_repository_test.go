package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"usersvc/internal/model"
)

func namedUser(name string) *model.User {
	return &model.User{UserName: &name}
}

func TestMemoryRepository_Create(t *testing.T) {
	repo := NewMemoryUserRepository()

	user := repo.Create(context.Background(), namedUser("foo"))

	assert.NotNil(t, user)
	assert.NotZero(t, user.ID)
	assert.Equal(t, "foo", *user.UserName)
	assert.False(t, user.CreatedAt.IsZero())
	assert.False(t, user.UpdatedAt.IsZero())
}

func TestMemoryRepository_CreateWithoutUserName(t *testing.T) {
	repo := NewMemoryUserRepository()

	user := repo.Create(context.Background(), &model.User{})

	assert.Nil(t, user)
}

func TestMemoryRepository_FindByID(t *testing.T) {
	repo := NewMemoryUserRepository()
	created := repo.Create(context.Background(), namedUser("foo"))

	found := repo.FindByID(context.Background(), created.ID)
	assert.NotNil(t, found)
	assert.Equal(t, "foo", *found.UserName)

	assert.Nil(t, repo.FindByID(context.Background(), 23423423))
}

func TestMemoryRepository_FindAllOrdered(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()

	for _, name := range []string{"foobar", "foobaz", "bazbar"} {
		assert.NotNil(t, repo.Create(ctx, namedUser(name)))
	}

	users := repo.FindAll(ctx)
	assert.Len(t, users, 3)

	names := make([]string, 0, len(users))
	for i := range users {
		names = append(names, *users[i].UserName)
	}
	assert.Equal(t, []string{"foobar", "foobaz", "bazbar"}, names)
}

func TestMemoryRepository_FindAllEmpty(t *testing.T) {
	repo := NewMemoryUserRepository()

	users := repo.FindAll(context.Background())

	assert.NotNil(t, users)
	assert.Empty(t, users)
}

func TestMemoryRepository_Update(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()
	created := repo.Create(ctx, namedUser("foo"))

	updatedName := "bar"
	updated := repo.Update(ctx, &model.User{ID: created.ID, UserName: &updatedName})

	assert.NotNil(t, updated)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "bar", *updated.UserName)
}

func TestMemoryRepository_UpdateMissing(t *testing.T) {
	repo := NewMemoryUserRepository()

	updated := repo.Update(context.Background(), namedUser("foo"))

	assert.Nil(t, updated)
}

func TestMemoryRepository_DeleteByID(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()
	created := repo.Create(ctx, namedUser("foo"))

	assert.Equal(t, int64(1), repo.DeleteByID(ctx, created.ID))
	assert.Equal(t, int64(0), repo.DeleteByID(ctx, created.ID))
}
