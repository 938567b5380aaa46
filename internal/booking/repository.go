package booking

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, b *Booking) error
	GetByID(ctx context.Context, id uint) (*Booking, error)
	GetView(ctx context.Context, id uint) (*BookingView, error)
	ListByUser(ctx context.Context, userID uint) ([]BookingView, error)
	ListAll(ctx context.Context) ([]BookingView, error)
	FindByPhone(ctx context.Context, phone string) ([]BookingView, error)
	Update(ctx context.Context, b *Booking) error
	Delete(ctx context.Context, id uint) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

const viewColumns = `b.*,
	COALESCE(s.title_en, '') AS seva_title_en,
	COALESCE(s.title_kn, '') AS seva_title_kn,
	COALESCE(s.temple_name_en, '') AS seva_temple_name_en,
	COALESCE(s.temple_name_kn, '') AS seva_temple_name_kn,
	COALESCE(s.location_en, '') AS seva_location_en,
	COALESCE(s.location_kn, '') AS seva_location_kn,
	COALESCE(s.image, '') AS seva_image,
	COALESCE(u.name, '') AS owner_name,
	COALESCE(u.email, '') AS owner_email`

func (r *repository) viewQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("bookings AS b").
		Select(viewColumns).
		Joins("LEFT JOIN sevas s ON s.id = b.seva_id").
		Joins("LEFT JOIN users u ON u.id = b.user_id")
}

func (r *repository) Create(ctx context.Context, b *Booking) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *repository) GetByID(ctx context.Context, id uint) (*Booking, error) {
	var b Booking
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *repository) GetView(ctx context.Context, id uint) (*BookingView, error) {
	var rows []bookingRow
	if err := r.viewQuery(ctx).Where("b.id = ?", id).Limit(1).Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	v := rows[0].view(true, true)
	return &v, nil
}

func (r *repository) ListByUser(ctx context.Context, userID uint) ([]BookingView, error) {
	var rows []bookingRow
	err := r.viewQuery(ctx).
		Where("b.user_id = ?", userID).
		Order("b.created_at DESC").
		Scan(&rows).Error
	return toViews(rows, false, false), err
}

func (r *repository) ListAll(ctx context.Context) ([]BookingView, error) {
	var rows []bookingRow
	err := r.viewQuery(ctx).
		Order("b.created_at DESC").
		Scan(&rows).Error
	return toViews(rows, false, true), err
}

// FindByPhone matches guest_phone exactly; no normalization is applied.
func (r *repository) FindByPhone(ctx context.Context, phone string) ([]BookingView, error) {
	var rows []bookingRow
	err := r.viewQuery(ctx).
		Where("b.guest_phone = ?", phone).
		Order("b.created_at DESC").
		Scan(&rows).Error
	return toViews(rows, true, false), err
}

func (r *repository) Update(ctx context.Context, b *Booking) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *repository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&Booking{}, id).Error
}

func toViews(rows []bookingRow, withImage, withOwner bool) []BookingView {
	views := make([]BookingView, 0, len(rows))
	for _, row := range rows {
		views = append(views, row.view(withImage, withOwner))
	}
	return views
}
