package auditlog

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, entry *AuditLog) error
	List(ctx context.Context, f Filter) ([]Entry, int64, error)
	Trail(ctx context.Context, resource string, resourceID uint) ([]Entry, error)
	GetByID(ctx context.Context, id uint) (*Entry, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, entry *AuditLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *repository) entries(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("audit_logs AS al").
		Select("al.*, COALESCE(u.name, '') AS user_name").
		Joins("LEFT JOIN users u ON u.id = al.user_id")
}

func matching(f Filter) func(*gorm.DB) *gorm.DB {
	return func(q *gorm.DB) *gorm.DB {
		if f.UserID != nil {
			q = q.Where("al.user_id = ?", *f.UserID)
		}
		if f.Resource != "" {
			q = q.Where("al.resource = ?", f.Resource)
		}
		if f.Action != "" {
			q = q.Where("al.action ILIKE ?", "%"+f.Action+"%")
		}
		if f.Status != "" {
			q = q.Where("al.status = ?", f.Status)
		}
		if f.From != nil {
			q = q.Where("al.created_at >= ?", *f.From)
		}
		if f.To != nil {
			q = q.Where("al.created_at <= ?", *f.To)
		}
		return q
	}
}

// List returns one page of entries, newest first, plus the total match count.
func (r *repository) List(ctx context.Context, f Filter) ([]Entry, int64, error) {
	f.normalize()

	var total int64
	if err := r.db.WithContext(ctx).Table("audit_logs AS al").Scopes(matching(f)).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []Entry
	err := r.entries(ctx).
		Scopes(matching(f)).
		Order("al.created_at DESC").
		Limit(f.Limit).
		Offset((f.Page - 1) * f.Limit).
		Scan(&rows).Error
	return rows, total, err
}

// Trail is the full history of one booking, seva or slide, oldest first.
func (r *repository) Trail(ctx context.Context, resource string, resourceID uint) ([]Entry, error) {
	var rows []Entry
	err := r.entries(ctx).
		Where("al.resource = ? AND al.resource_id = ?", resource, resourceID).
		Order("al.created_at ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) GetByID(ctx context.Context, id uint) (*Entry, error) {
	var rows []Entry
	if err := r.entries(ctx).Where("al.id = ?", id).Limit(1).Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &rows[0], nil
}
