package model

import "time"

// User represents a persisted user account. The id and timestamps are
// assigned by the storage engine on create; a zero ID means the entity has
// not been persisted yet.
type User struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserName  *string   `json:"user_name" gorm:"size:255;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_timestamp;autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_timestamp;autoUpdateTime"`
}

// TableName maps the entity onto the user_account table.
func (User) TableName() string {
	return "user_account"
}

// UserDto is the wire-facing projection of User. Timestamps are dropped;
// id and user_name stay optional so create requests can omit the id.
type UserDto struct {
	ID       *int64  `json:"id,omitempty"`
	UserName *string `json:"user_name,omitempty"`
}

// AsDto converts the entity to its wire shape.
func (u *User) AsDto() *UserDto {
	dto := &UserDto{UserName: u.UserName}
	if u.ID != 0 {
		id := u.ID
		dto.ID = &id
	}
	return dto
}

// UserFromDto converts a wire shape back to an entity. Server-assigned
// fields are left zero for the repository to populate.
func UserFromDto(dto *UserDto) *User {
	user := &User{UserName: dto.UserName}
	if dto.ID != nil {
		user.ID = *dto.ID
	}
	return user
}
