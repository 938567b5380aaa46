package hero

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	List(ctx context.Context) ([]Slide, error)
	GetByID(ctx context.Context, id uint) (*Slide, error)
	Create(ctx context.Context, s *Slide) error
	Update(ctx context.Context, s *Slide) error
	Delete(ctx context.Context, id uint) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context) ([]Slide, error) {
	var slides []Slide
	err := r.db.WithContext(ctx).Order("sort_order ASC").Order("id ASC").Find(&slides).Error
	return slides, err
}

func (r *repository) GetByID(ctx context.Context, id uint) (*Slide, error) {
	var s Slide
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repository) Create(ctx context.Context, s *Slide) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *repository) Update(ctx context.Context, s *Slide) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *repository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&Slide{}, id).Error
}
