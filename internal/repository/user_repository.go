package repository

import (
	"context"
	"errors"
	"log"

	"gorm.io/gorm"

	"usersvc/internal/model"
)

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository builds a GORM-backed user repository. Infrastructure
// errors never escape this boundary: they are logged and surfaced to callers
// as absent results or zero counts.
func NewUserRepository(db *gorm.DB) Repository[model.User, int64] {
	return &userRepository{db: db}
}

func (r *userRepository) FindByID(ctx context.Context, id int64) *model.User {
	var user model.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("user repository: find by id %d: %v", id, err)
		}
		return nil
	}
	return &user
}

func (r *userRepository) FindAll(ctx context.Context) []model.User {
	var users []model.User
	if err := r.db.WithContext(ctx).Order("id asc").Find(&users).Error; err != nil {
		log.Printf("user repository: find all: %v", err)
		return []model.User{}
	}
	if users == nil {
		users = []model.User{}
	}
	return users
}

func (r *userRepository) Create(ctx context.Context, entity *model.User) *model.User {
	user := model.User{UserName: entity.UserName}
	if err := r.db.WithContext(ctx).Create(&user).Error; err != nil {
		// Includes the not-null violation for an absent user_name.
		log.Printf("user repository: create: %v", err)
		return nil
	}
	return &user
}

func (r *userRepository) Update(ctx context.Context, entity *model.User) *model.User {
	existing := r.FindByID(ctx, entity.ID)
	if existing == nil {
		return nil
	}

	if err := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", entity.ID).
		Update("user_name", entity.UserName).Error; err != nil {
		log.Printf("user repository: update %d: %v", entity.ID, err)
		return nil
	}
	return r.FindByID(ctx, entity.ID)
}

func (r *userRepository) DeleteByID(ctx context.Context, id int64) int64 {
	res := r.db.WithContext(ctx).Delete(&model.User{}, id)
	if res.Error != nil {
		log.Printf("user repository: delete %d: %v", id, res.Error)
		return 0
	}
	return res.RowsAffected
}
