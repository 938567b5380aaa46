package auditlog

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"github.com/sharath018/seva-booking-backend/internal/apperr"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var ErrEntryNotFound = apperr.NotFound("Audit log")

type Service interface {
	LogAction(ctx context.Context, userID *uint, resource string, resourceID *uint, action string, details map[string]interface{}, ip string, status string) error
	List(ctx context.Context, f Filter) (*Page, error)
	Trail(ctx context.Context, resource string, resourceID uint) ([]Entry, error)
	GetByID(ctx context.Context, id uint) (*Entry, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// LogAction records one action. Callers ignore the error; it is logged here.
func (s *service) LogAction(ctx context.Context, userID *uint, resource string, resourceID *uint, action string, details map[string]interface{}, ip string, status string) error {
	if details == nil {
		details = map[string]interface{}{}
	}
	payload, err := json.Marshal(details)
	if err != nil {
		payload = []byte("{}")
	}

	err = s.repo.Create(ctx, &AuditLog{
		UserID:     userID,
		Resource:   resource,
		ResourceID: resourceID,
		Action:     action,
		Details:    datatypes.JSON(payload),
		IPAddress:  ip,
		Status:     status,
	})
	if err != nil {
		log.Printf("⚠️ Audit %s on %s not recorded: %v", action, resource, err)
	}
	return err
}

func (s *service) List(ctx context.Context, f Filter) (*Page, error) {
	f.normalize()

	rows, total, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	pages := int((total + int64(f.Limit) - 1) / int64(f.Limit))
	return &Page{Data: rows, Total: total, Page: f.Page, Limit: f.Limit, TotalPages: pages}, nil
}

func (s *service) Trail(ctx context.Context, resource string, resourceID uint) ([]Entry, error) {
	return s.repo.Trail(ctx, resource, resourceID)
}

func (s *service) GetByID(ctx context.Context, id uint) (*Entry, error) {
	e, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrEntryNotFound
	}
	return e, err
}
