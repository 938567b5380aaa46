package booking

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/sharath018/seva-booking-backend/internal/apperr"
	"github.com/sharath018/seva-booking-backend/internal/auditlog"
	"github.com/sharath018/seva-booking-backend/internal/notification"
	"github.com/sharath018/seva-booking-backend/internal/seva"
	"github.com/sharath018/seva-booking-backend/middleware"
	"gorm.io/gorm"
)

var ErrBookingNotFound = apperr.NotFound("Booking")

const (
	EventCreated = "booking.created"
	EventUpdated = "booking.updated"
	EventDeleted = "booking.deleted"
)

// SevaLookup resolves the seva a booking is made against.
type SevaLookup interface {
	GetByID(ctx context.Context, id uint) (*seva.Seva, error)
}

// Notifier is the part of the notification service bookings depend on.
type Notifier interface {
	EmitBooking(ctx context.Context, bookingID uint, sevaTitle, actorName string) (*notification.Notification, error)
	ConfirmDevotee(ctx context.Context, c notification.BookingConfirmation) error
}

// EventPublisher emits booking lifecycle events to the message bus.
type EventPublisher interface {
	Publish(ctx context.Context, key string, payload interface{}) error
}

// Event is the payload published for every booking write.
type Event struct {
	Type        string    `json:"type"`
	BookingID   uint      `json:"bookingId"`
	Reference   string    `json:"reference"`
	SevaID      uint      `json:"sevaId"`
	Status      string    `json:"status"`
	TotalAmount float64   `json:"totalAmount"`
	OccurredAt  time.Time `json:"occurredAt"`
}

type CreateRequest struct {
	SevaID      uint
	DevoteeName string
	Gothram     string
	Rashi       string
	Nakshatra   string
	BookingDate *time.Time
	BookingType string
	Count       int
	TotalAmount float64
	Guest       GuestContact
}

// UpdateRequest fields are applied only when non-empty, so a field cannot be
// cleared through Update.
type UpdateRequest struct {
	DevoteeName string
	Gothram     string
	Rashi       string
	Nakshatra   string
	BookingDate *time.Time
	Status      string
	GuestName   string
	GuestEmail  string
	GuestPhone  string
}

type Service interface {
	Create(ctx context.Context, actor *middleware.AccessContext, req CreateRequest, ip string) (*Booking, error)
	GetByID(ctx context.Context, id uint) (*Booking, error)
	GetDetail(ctx context.Context, id uint) (*BookingView, error)
	ListMine(ctx context.Context, userID uint) ([]BookingView, error)
	ListAll(ctx context.Context) ([]BookingView, error)
	FindByPhone(ctx context.Context, phone string) ([]BookingView, error)
	Update(ctx context.Context, id uint, req UpdateRequest, userID *uint, ip string) (*Booking, error)
	Delete(ctx context.Context, id uint, userID *uint, ip string) error

	SetNotifService(n Notifier)
	SetEventPublisher(p EventPublisher)
}

type service struct {
	repo     Repository
	sevas    SevaLookup
	auditSvc auditlog.Service
	notifSvc Notifier
	events   EventPublisher
	pricing  PricingPolicy
	enforce  bool
}

// NewService builds the booking service. With enforce set, a submitted total
// that differs from the policy's total is rejected instead of stored.
func NewService(repo Repository, sevas SevaLookup, auditSvc auditlog.Service, pricing PricingPolicy, enforce bool) Service {
	if pricing == nil {
		pricing = PerHeadPolicy{}
	}
	return &service{
		repo:     repo,
		sevas:    sevas,
		auditSvc: auditSvc,
		pricing:  pricing,
		enforce:  enforce,
	}
}

func (s *service) SetNotifService(n Notifier) {
	s.notifSvc = n
}

func (s *service) SetEventPublisher(p EventPublisher) {
	s.events = p
}

// ========================= CREATE =============================

func (s *service) Create(ctx context.Context, actor *middleware.AccessContext, req CreateRequest, ip string) (*Booking, error) {
	if req.SevaID == 0 {
		return nil, apperr.Invalid("sevaId", "No seva items")
	}
	if strings.TrimSpace(req.DevoteeName) == "" {
		return nil, apperr.Invalid("devoteeName", "Devotee name is required")
	}
	if actor == nil && strings.TrimSpace(req.Guest.Phone) == "" {
		return nil, apperr.Invalid("guestPhone", "Phone number is required for guest bookings")
	}

	sv, err := s.sevas.GetByID(ctx, req.SevaID)
	if err != nil {
		return nil, err
	}

	who := ResolveIdentity(actor, req.Guest)

	count := ClampCount(req.Count)
	bookingType := req.BookingType
	if bookingType == "" {
		bookingType = TypeIndividual
	}

	total := req.TotalAmount
	if s.enforce {
		expected := s.pricing.Total(sv.Price, count, bookingType)
		if math.Abs(expected-req.TotalAmount) > 0.005 {
			return nil, apperr.Invalid("totalAmount", fmt.Sprintf("Total amount mismatch: expected %.2f", expected))
		}
		total = expected
	}

	bookingDate := time.Now()
	if req.BookingDate != nil && !req.BookingDate.IsZero() {
		bookingDate = *req.BookingDate
	}

	b := &Booking{
		Reference:   NewReference(),
		UserID:      who.UserID,
		GuestName:   who.GuestName,
		GuestEmail:  who.GuestEmail,
		GuestPhone:  who.GuestPhone,
		SevaID:      sv.ID,
		DevoteeName: req.DevoteeName,
		Gothram:     req.Gothram,
		Rashi:       req.Rashi,
		Nakshatra:   req.Nakshatra,
		BookingDate: bookingDate,
		BookingType: bookingType,
		Count:       count,
		TotalAmount: total,
		IsPaid:      true,
		Status:      StatusConfirmed,
	}

	if err := s.repo.Create(ctx, b); err != nil {
		s.audit(ctx, who.UserID, nil, "BOOKING_CREATE_FAILED", map[string]interface{}{
			"seva_id": sv.ID,
			"error":   err.Error(),
		}, ip, auditlog.StatusFailure)
		return nil, err
	}

	// The booking is committed; nothing below may fail the request.
	if s.notifSvc != nil {
		if _, err := s.notifSvc.EmitBooking(ctx, b.ID, sv.DisplayTitle(), who.DisplayName(b.DevoteeName)); err != nil {
			log.Printf("⚠️ Booking %d saved but admin notification failed: %v", b.ID, err)
		}
		if err := s.notifSvc.ConfirmDevotee(ctx, notification.BookingConfirmation{
			Email:       b.GuestEmail,
			Reference:   b.Reference,
			DevoteeName: b.DevoteeName,
			SevaTitle:   sv.DisplayTitle(),
			BookingDate: b.BookingDate,
			TotalAmount: b.TotalAmount,
		}); err != nil {
			log.Printf("⚠️ Booking %d confirmation email failed: %v", b.ID, err)
		}
	}

	s.audit(ctx, who.UserID, &b.ID, "BOOKING_CREATED", map[string]interface{}{
		"reference":    b.Reference,
		"seva_id":      b.SevaID,
		"count":        b.Count,
		"total_amount": b.TotalAmount,
		"guest":        who.UserID == nil,
	}, ip, auditlog.StatusSuccess)
	s.publish(ctx, EventCreated, b)

	return b, nil
}

// ========================= READ =============================

func (s *service) GetByID(ctx context.Context, id uint) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return b, nil
}

func (s *service) GetDetail(ctx context.Context, id uint) (*BookingView, error) {
	v, err := s.repo.GetView(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return v, nil
}

func (s *service) ListMine(ctx context.Context, userID uint) ([]BookingView, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *service) ListAll(ctx context.Context) ([]BookingView, error) {
	return s.repo.ListAll(ctx)
}

func (s *service) FindByPhone(ctx context.Context, phone string) ([]BookingView, error) {
	return s.repo.FindByPhone(ctx, phone)
}

// ========================= WRITE =============================

func (s *service) Update(ctx context.Context, id uint, req UpdateRequest, userID *uint, ip string) (*Booking, error) {
	b, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	previousStatus := b.Status
	setIfPresent(&b.DevoteeName, req.DevoteeName)
	setIfPresent(&b.Gothram, req.Gothram)
	setIfPresent(&b.Rashi, req.Rashi)
	setIfPresent(&b.Nakshatra, req.Nakshatra)
	setIfPresent(&b.Status, req.Status)
	setIfPresent(&b.GuestName, req.GuestName)
	setIfPresent(&b.GuestEmail, req.GuestEmail)
	setIfPresent(&b.GuestPhone, req.GuestPhone)
	if req.BookingDate != nil && !req.BookingDate.IsZero() {
		b.BookingDate = *req.BookingDate
	}

	if err := s.repo.Update(ctx, b); err != nil {
		s.audit(ctx, userID, &id, "BOOKING_UPDATE_FAILED", map[string]interface{}{"error": err.Error()}, ip, auditlog.StatusFailure)
		return nil, err
	}

	s.audit(ctx, userID, &id, "BOOKING_UPDATED", map[string]interface{}{
		"reference":       b.Reference,
		"previous_status": previousStatus,
		"status":          b.Status,
	}, ip, auditlog.StatusSuccess)
	s.publish(ctx, EventUpdated, b)
	return b, nil
}

func (s *service) Delete(ctx context.Context, id uint, userID *uint, ip string) error {
	b, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		s.audit(ctx, userID, &id, "BOOKING_DELETE_FAILED", map[string]interface{}{"error": err.Error()}, ip, auditlog.StatusFailure)
		return err
	}

	s.audit(ctx, userID, &id, "BOOKING_DELETED", map[string]interface{}{
		"reference":    b.Reference,
		"devotee_name": b.DevoteeName,
	}, ip, auditlog.StatusSuccess)
	s.publish(ctx, EventDeleted, b)
	return nil
}

// ========================= HELPERS =============================

func (s *service) publish(ctx context.Context, eventType string, b *Booking) {
	if s.events == nil {
		return
	}
	err := s.events.Publish(ctx, strconv.FormatUint(uint64(b.ID), 10), Event{
		Type:        eventType,
		BookingID:   b.ID,
		Reference:   b.Reference,
		SevaID:      b.SevaID,
		Status:      b.Status,
		TotalAmount: b.TotalAmount,
		OccurredAt:  time.Now(),
	})
	if err != nil {
		log.Printf("⚠️ Failed to publish %s for booking %d: %v", eventType, b.ID, err)
	}
}

func (s *service) audit(ctx context.Context, userID *uint, bookingID *uint, action string, details map[string]interface{}, ip, status string) {
	if s.auditSvc == nil {
		return
	}
	_ = s.auditSvc.LogAction(ctx, userID, auditlog.ResourceBooking, bookingID, action, details, ip, status)
}

func setIfPresent(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
