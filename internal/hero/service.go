package hero

import (
	"context"
	"errors"
	"strings"

	"github.com/sharath018/seva-booking-backend/internal/apperr"
	"github.com/sharath018/seva-booking-backend/internal/auditlog"
	"gorm.io/gorm"
)

var ErrSlideNotFound = apperr.NotFound("Slide")

type SlideInput struct {
	Image      string `json:"image"`
	TitleEn    string `json:"titleEn"`
	TitleKn    string `json:"titleKn"`
	SubtitleEn string `json:"subtitleEn"`
	SubtitleKn string `json:"subtitleKn"`
	LocationEn string `json:"locationEn"`
	LocationKn string `json:"locationKn"`
	Order      *int   `json:"order"`
}

type Service interface {
	List(ctx context.Context) ([]Slide, error)
	Create(ctx context.Context, in SlideInput, userID *uint, ip string) (*Slide, error)
	Update(ctx context.Context, id uint, in SlideInput, userID *uint, ip string) (*Slide, error)
	Delete(ctx context.Context, id uint, userID *uint, ip string) error
}

type service struct {
	repo     Repository
	auditSvc auditlog.Service
}

func NewService(repo Repository, auditSvc auditlog.Service) Service {
	return &service{repo: repo, auditSvc: auditSvc}
}

func (s *service) List(ctx context.Context) ([]Slide, error) {
	return s.repo.List(ctx)
}

func (s *service) Create(ctx context.Context, in SlideInput, userID *uint, ip string) (*Slide, error) {
	if strings.TrimSpace(in.Image) == "" {
		return nil, apperr.Invalid("image", "Image is required")
	}

	slide := &Slide{
		Image:      in.Image,
		TitleEn:    in.TitleEn,
		TitleKn:    in.TitleKn,
		SubtitleEn: in.SubtitleEn,
		SubtitleKn: in.SubtitleKn,
		LocationEn: in.LocationEn,
		LocationKn: in.LocationKn,
	}
	if in.Order != nil {
		slide.Order = *in.Order
	}

	if err := s.repo.Create(ctx, slide); err != nil {
		return nil, err
	}
	s.audit(ctx, userID, &slide.ID, "HERO_SLIDE_CREATED", ip)
	return slide, nil
}

// Update applies non-empty strings; Order is applied whenever it is sent,
// so a slide can be moved back to position 0.
func (s *service) Update(ctx context.Context, id uint, in SlideInput, userID *uint, ip string) (*Slide, error) {
	slide, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	for _, f := range []struct {
		dst *string
		v   string
	}{
		{&slide.Image, in.Image},
		{&slide.TitleEn, in.TitleEn},
		{&slide.TitleKn, in.TitleKn},
		{&slide.SubtitleEn, in.SubtitleEn},
		{&slide.SubtitleKn, in.SubtitleKn},
		{&slide.LocationEn, in.LocationEn},
		{&slide.LocationKn, in.LocationKn},
	} {
		if f.v != "" {
			*f.dst = f.v
		}
	}
	if in.Order != nil {
		slide.Order = *in.Order
	}

	if err := s.repo.Update(ctx, slide); err != nil {
		return nil, err
	}
	s.audit(ctx, userID, &id, "HERO_SLIDE_UPDATED", ip)
	return slide, nil
}

func (s *service) Delete(ctx context.Context, id uint, userID *uint, ip string) error {
	if _, err := s.get(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.audit(ctx, userID, &id, "HERO_SLIDE_DELETED", ip)
	return nil
}

func (s *service) get(ctx context.Context, id uint) (*Slide, error) {
	slide, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSlideNotFound
		}
		return nil, err
	}
	return slide, nil
}

func (s *service) audit(ctx context.Context, userID *uint, slideID *uint, action, ip string) {
	if s.auditSvc == nil {
		return
	}
	_ = s.auditSvc.LogAction(ctx, userID, auditlog.ResourceHero, slideID, action, nil, ip, auditlog.StatusSuccess)
}
