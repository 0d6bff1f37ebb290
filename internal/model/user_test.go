package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUserDtoRoundTrip(t *testing.T) {
	name := "foo"
	id := int64(42)

	dto := &UserDto{ID: &id, UserName: &name}
	assert.Equal(t, dto, UserFromDto(dto).AsDto())

	unsaved := &UserDto{UserName: &name}
	assert.Equal(t, unsaved, UserFromDto(unsaved).AsDto())
}

func TestUserAsDtoDropsTimestamps(t *testing.T) {
	name := "foo"
	user := &User{
		ID:        1,
		UserName:  &name,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	dto := user.AsDto()
	assert.Equal(t, int64(1), *dto.ID)
	assert.Equal(t, "foo", *dto.UserName)
}

func TestUserFromDtoLeavesServerFieldsZero(t *testing.T) {
	name := "foo"
	user := UserFromDto(&UserDto{UserName: &name})

	assert.Zero(t, user.ID)
	assert.True(t, user.CreatedAt.IsZero())
	assert.True(t, user.UpdatedAt.IsZero())
}
