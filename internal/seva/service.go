package seva

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/gosimple/slug"
	"github.com/sharath018/seva-booking-backend/internal/apperr"
	"github.com/sharath018/seva-booking-backend/internal/auditlog"
	"gorm.io/gorm"
)

var ErrSevaNotFound = apperr.NotFound("Seva")

type CreateInput struct {
	TitleEn       string
	TitleKn       string
	TempleNameEn  string
	TempleNameKn  string
	LocationEn    string
	LocationKn    string
	DescriptionEn string
	DescriptionKn string
	Price         float64
	Image         string
	Category      string
}

// UpdateInput applies a field only when it is non-empty. Price is applied when
// positive and IsActive whenever it is set.
type UpdateInput struct {
	CreateInput
	IsActive *bool
}

type Service interface {
	Create(ctx context.Context, in CreateInput, userID *uint, ip string) (*Seva, error)
	GetByID(ctx context.Context, id uint) (*Seva, error)
	ListActive(ctx context.Context) ([]Seva, error)
	ListAll(ctx context.Context) ([]Seva, error)
	Update(ctx context.Context, id uint, in UpdateInput, userID *uint, ip string) (*Seva, error)
	Delete(ctx context.Context, id uint, userID *uint, ip string) error

	SetCache(c Cache)
}

type service struct {
	repo     Repository
	auditSvc auditlog.Service
	cache    Cache
}

func NewService(repo Repository, auditSvc auditlog.Service) Service {
	return &service{repo: repo, auditSvc: auditSvc}
}

// SetCache enables Redis caching of the public listing.
func (s *service) SetCache(c Cache) {
	s.cache = c
}

func (s *service) Create(ctx context.Context, in CreateInput, userID *uint, ip string) (*Seva, error) {
	if strings.TrimSpace(in.Image) == "" {
		return nil, apperr.Invalid("image", "Image is required")
	}
	if strings.TrimSpace(in.Category) == "" {
		return nil, apperr.Invalid("category", "Category is required")
	}
	if in.Price < 0 {
		return nil, apperr.Invalid("price", "Price cannot be negative")
	}

	seva := &Seva{
		TitleEn:       in.TitleEn,
		TitleKn:       in.TitleKn,
		TempleNameEn:  in.TempleNameEn,
		TempleNameKn:  in.TempleNameKn,
		LocationEn:    in.LocationEn,
		LocationKn:    in.LocationKn,
		DescriptionEn: in.DescriptionEn,
		DescriptionKn: in.DescriptionKn,
		Price:         in.Price,
		Image:         in.Image,
		Category:      in.Category,
		Slug:          makeSlug(in.TitleEn, in.TitleKn),
		IsActive:      true,
	}

	if err := s.repo.Create(ctx, seva); err != nil {
		s.audit(ctx, userID, nil, "SEVA_CREATE_FAILED", map[string]interface{}{"title": in.TitleEn, "error": err.Error()}, ip, auditlog.StatusFailure)
		return nil, err
	}

	s.invalidate(ctx)
	s.audit(ctx, userID, &seva.ID, "SEVA_CREATED", map[string]interface{}{
		"title":    seva.TitleEn,
		"price":    seva.Price,
		"category": seva.Category,
	}, ip, auditlog.StatusSuccess)
	return seva, nil
}

func (s *service) GetByID(ctx context.Context, id uint) (*Seva, error) {
	seva, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSevaNotFound
		}
		return nil, err
	}
	return seva, nil
}

func (s *service) ListActive(ctx context.Context) ([]Seva, error) {
	if s.cache != nil {
		if sevas, ok, err := s.cache.GetActive(ctx); err != nil {
			log.Printf("⚠️ Seva cache read failed: %v", err)
		} else if ok {
			return sevas, nil
		}
	}

	sevas, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetActive(ctx, sevas); err != nil {
			log.Printf("⚠️ Seva cache write failed: %v", err)
		}
	}
	return sevas, nil
}

func (s *service) ListAll(ctx context.Context) ([]Seva, error) {
	return s.repo.ListAll(ctx)
}

func (s *service) Update(ctx context.Context, id uint, in UpdateInput, userID *uint, ip string) (*Seva, error) {
	seva, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	setIfPresent(&seva.TitleEn, in.TitleEn)
	setIfPresent(&seva.TitleKn, in.TitleKn)
	setIfPresent(&seva.TempleNameEn, in.TempleNameEn)
	setIfPresent(&seva.TempleNameKn, in.TempleNameKn)
	setIfPresent(&seva.LocationEn, in.LocationEn)
	setIfPresent(&seva.LocationKn, in.LocationKn)
	setIfPresent(&seva.DescriptionEn, in.DescriptionEn)
	setIfPresent(&seva.DescriptionKn, in.DescriptionKn)
	setIfPresent(&seva.Image, in.Image)
	setIfPresent(&seva.Category, in.Category)
	if in.Price > 0 {
		seva.Price = in.Price
	}
	if in.IsActive != nil {
		seva.IsActive = *in.IsActive
	}
	if in.TitleEn != "" || in.TitleKn != "" {
		seva.Slug = makeSlug(seva.TitleEn, seva.TitleKn)
	}

	if err := s.repo.Update(ctx, seva); err != nil {
		s.audit(ctx, userID, &id, "SEVA_UPDATE_FAILED", map[string]interface{}{"error": err.Error()}, ip, auditlog.StatusFailure)
		return nil, err
	}

	s.invalidate(ctx)
	s.audit(ctx, userID, &id, "SEVA_UPDATED", map[string]interface{}{
		"title":     seva.TitleEn,
		"price":     seva.Price,
		"is_active": seva.IsActive,
	}, ip, auditlog.StatusSuccess)
	return seva, nil
}

func (s *service) Delete(ctx context.Context, id uint, userID *uint, ip string) error {
	seva, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidate(ctx)
	s.audit(ctx, userID, &id, "SEVA_DELETED", map[string]interface{}{"title": seva.TitleEn}, ip, auditlog.StatusSuccess)
	return nil
}

func (s *service) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		log.Printf("⚠️ Seva cache invalidation failed: %v", err)
	}
}

func (s *service) audit(ctx context.Context, userID *uint, sevaID *uint, action string, details map[string]interface{}, ip, status string) {
	if s.auditSvc == nil {
		return
	}
	_ = s.auditSvc.LogAction(ctx, userID, auditlog.ResourceSeva, sevaID, action, details, ip, status)
}

func setIfPresent(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func makeSlug(titleEn, titleKn string) string {
	if titleEn != "" {
		return slug.Make(titleEn)
	}
	return slug.Make(titleKn)
}
