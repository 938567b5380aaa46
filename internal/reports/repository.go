package reports

import (
	"context"

	"gorm.io/gorm"
)

// ReportRepository reads the booking data behind the admin reports.
type ReportRepository interface {
	GetSankalpaRows(ctx context.Context, filter SankalpaFilter) ([]SankalpaRow, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) ReportRepository {
	return &repository{db: db}
}

// GetSankalpaRows lists bookings in ritual order: by booking date, then seva,
// then devotee.
func (r *repository) GetSankalpaRows(ctx context.Context, filter SankalpaFilter) ([]SankalpaRow, error) {
	var rows []SankalpaRow

	query := r.db.WithContext(ctx).
		Table("bookings AS b").
		Select(`b.reference, b.devotee_name, b.gothram, b.rashi, b.nakshatra,
			COALESCE(NULLIF(s.title_en, ''), NULLIF(s.title_kn, ''), 'Seva') AS seva_title,
			b.booking_date, b.count, b.guest_name AS contact_name, b.guest_phone AS contact_phone, b.status`).
		Joins("LEFT JOIN sevas s ON s.id = b.seva_id")

	if filter.From != nil {
		query = query.Where("b.booking_date >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("b.booking_date <= ?", *filter.To)
	}
	if filter.SevaID != 0 {
		query = query.Where("b.seva_id = ?", filter.SevaID)
	}
	if filter.Status != "" {
		query = query.Where("b.status = ?", filter.Status)
	}

	err := query.
		Order("b.booking_date ASC").
		Order("seva_title ASC").
		Order("b.devotee_name ASC").
		Scan(&rows).Error
	return rows, err
}
