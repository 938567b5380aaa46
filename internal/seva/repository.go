package seva

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, seva *Seva) error
	GetByID(ctx context.Context, id uint) (*Seva, error)
	ListActive(ctx context.Context) ([]Seva, error)
	ListAll(ctx context.Context) ([]Seva, error)
	Update(ctx context.Context, seva *Seva) error
	Delete(ctx context.Context, id uint) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, seva *Seva) error {
	return r.db.WithContext(ctx).Create(seva).Error
}

func (r *repository) GetByID(ctx context.Context, id uint) (*Seva, error) {
	var seva Seva
	if err := r.db.WithContext(ctx).First(&seva, id).Error; err != nil {
		return nil, err
	}
	return &seva, nil
}

func (r *repository) ListActive(ctx context.Context) ([]Seva, error) {
	var sevas []Seva
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at ASC").
		Find(&sevas).Error
	return sevas, err
}

func (r *repository) ListAll(ctx context.Context) ([]Seva, error) {
	var sevas []Seva
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&sevas).Error
	return sevas, err
}

func (r *repository) Update(ctx context.Context, seva *Seva) error {
	return r.db.WithContext(ctx).Save(seva).Error
}

func (r *repository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Unscoped().Delete(&Seva{}, id).Error
}
