package notification

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/sharath018/seva-booking-backend/internal/apperr"
	"github.com/sharath018/seva-booking-backend/internal/settings"
	"gorm.io/gorm"
)

var ErrNotificationNotFound = apperr.NotFound("Notification")

// DefaultListLimit is how many notifications the admin badge fetches.
const DefaultListLimit = 20

type Service interface {
	EmitBooking(ctx context.Context, bookingID uint, sevaTitle, actorName string) (*Notification, error)
	ConfirmDevotee(ctx context.Context, c BookingConfirmation) error
	ListRecent(ctx context.Context, limit int) ([]Notification, error)
	MarkRead(ctx context.Context, id uint) error
	MarkAllRead(ctx context.Context) (int64, error)
	UnreadCount(ctx context.Context) (int64, error)

	AddBroadcaster(b Broadcaster)
	SetEmailSender(m EmailSender, settingsSvc settings.Service)
}

type service struct {
	repo         Repository
	broadcasters []Broadcaster
	mailer       EmailSender
	settings     settings.Service
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// AddBroadcaster registers a live delivery channel (Redis, FCM).
func (s *service) AddBroadcaster(b Broadcaster) {
	s.broadcasters = append(s.broadcasters, b)
}

// SetEmailSender enables devotee confirmation emails. The settings service
// decides per booking whether they are sent.
func (s *service) SetEmailSender(m EmailSender, settingsSvc settings.Service) {
	s.mailer = m
	s.settings = settingsSvc
}

// BookingMessage formats the admin notification text for a new booking.
func BookingMessage(sevaTitle, actorName string) string {
	return fmt.Sprintf("New booking for %s by %s", sevaTitle, actorName)
}

// EmitBooking stores one booking notification and then fans it out. Fan-out
// failures are logged and never returned.
func (s *service) EmitBooking(ctx context.Context, bookingID uint, sevaTitle, actorName string) (*Notification, error) {
	id := bookingID
	n := &Notification{
		Type:      TypeBooking,
		Message:   BookingMessage(sevaTitle, actorName),
		BookingID: &id,
		IsRead:    false,
	}
	if err := s.repo.Create(ctx, n); err != nil {
		return nil, err
	}

	for _, b := range s.broadcasters {
		if err := b.Broadcast(ctx, n); err != nil {
			log.Printf("⚠️ Notification %d broadcast failed: %v", n.ID, err)
		}
	}
	return n, nil
}

// ConfirmDevotee emails the devotee when an address is known and the temple
// has devotee notifications switched on.
func (s *service) ConfirmDevotee(ctx context.Context, c BookingConfirmation) error {
	if s.mailer == nil || c.Email == "" {
		return nil
	}

	templeName := settings.Defaults().TempleName
	if s.settings != nil {
		cfg, err := s.settings.Get(ctx)
		if err != nil {
			return err
		}
		if !cfg.NotifyDevotee {
			return nil
		}
		templeName = cfg.TempleName
	}

	return s.mailer.Send(c.Email, confirmationSubject(c), confirmationBody(templeName, c))
}

func (s *service) ListRecent(ctx context.Context, limit int) ([]Notification, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	return s.repo.ListRecent(ctx, limit)
}

// MarkRead is idempotent: an already-read notification stays read.
func (s *service) MarkRead(ctx context.Context, id uint) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotificationNotFound
		}
		return err
	}
	return s.repo.MarkRead(ctx, id)
}

func (s *service) MarkAllRead(ctx context.Context) (int64, error) {
	return s.repo.MarkAllRead(ctx)
}

func (s *service) UnreadCount(ctx context.Context) (int64, error) {
	return s.repo.CountUnread(ctx)
}
