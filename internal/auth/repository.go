package auth

import (
	"context"

	"gorm.io/gorm"
)

// Repository stores accounts. Lookups preload the role so callers can
// authorize without a second query.
type Repository interface {
	Create(ctx context.Context, user *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id uint) (*User, error)
	EmailTaken(ctx context.Context, email string) (bool, error)
	RoleByName(ctx context.Context, name string) (*UserRole, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) withRole(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Role")
}

func (r *repository) Create(ctx context.Context, user *User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	u := new(User)
	if err := r.withRole(ctx).Where("email = ?", email).Take(u).Error; err != nil {
		return nil, err
	}
	return u, nil
}

func (r *repository) FindByID(ctx context.Context, id uint) (*User, error) {
	u := new(User)
	if err := r.withRole(ctx).Take(u, id).Error; err != nil {
		return nil, err
	}
	return u, nil
}

func (r *repository) EmailTaken(ctx context.Context, email string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&User{}).Where("email = ?", email).Count(&n).Error
	return n > 0, err
}

func (r *repository) RoleByName(ctx context.Context, name string) (*UserRole, error) {
	role := new(UserRole)
	if err := r.db.WithContext(ctx).Where("role_name = ?", name).Take(role).Error; err != nil {
		return nil, err
	}
	return role, nil
}
