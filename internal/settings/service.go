package settings

import (
	"context"

	"github.com/sharath018/seva-booking-backend/internal/auditlog"
)

// UpdateInput uses pointers for flags and numbers so that an explicit false
// or zero is applied. Strings apply only when non-empty.
type UpdateInput struct {
	TempleName          string `json:"templeName"`
	ContactEmail        string `json:"contactEmail"`
	ContactPhone        string `json:"contactPhone"`
	Address             string `json:"address"`
	Website             string `json:"website"`
	Currency            string `json:"currency"`
	Timezone            string `json:"timezone"`
	RitualHours         string `json:"ritualHours"`
	AllowSameDayBooking *bool  `json:"allowSameDayBooking"`
	NotifyDevotee       *bool  `json:"notifyDevotee"`
	AdvanceBookingDays  *int   `json:"advanceBookingDays" binding:"omitempty,gte=0"`
	CancellationAllowed *bool  `json:"cancellationAllowed"`
}

type Service interface {
	Get(ctx context.Context) (*Settings, error)
	// Update returns created=true when this call created the row.
	Update(ctx context.Context, in UpdateInput, userID *uint, ip string) (s *Settings, created bool, err error)
}

type service struct {
	repo     Repository
	auditSvc auditlog.Service
}

func NewService(repo Repository, auditSvc auditlog.Service) Service {
	return &service{repo: repo, auditSvc: auditSvc}
}

func (s *service) Get(ctx context.Context) (*Settings, error) {
	stored, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		d := Defaults()
		return &d, nil
	}
	return stored, nil
}

func (s *service) Update(ctx context.Context, in UpdateInput, userID *uint, ip string) (*Settings, bool, error) {
	stored, err := s.repo.Get(ctx)
	if err != nil {
		return nil, false, err
	}

	created := stored == nil
	if created {
		d := Defaults()
		stored = &d
	}

	apply(stored, in)

	if err := s.repo.Save(ctx, stored); err != nil {
		if s.auditSvc != nil {
			_ = s.auditSvc.LogAction(ctx, userID, auditlog.ResourceSettings, nil, "SETTINGS_UPDATE_FAILED", map[string]interface{}{"error": err.Error()}, ip, auditlog.StatusFailure)
		}
		return nil, false, err
	}

	if s.auditSvc != nil {
		_ = s.auditSvc.LogAction(ctx, userID, auditlog.ResourceSettings, nil, "SETTINGS_UPDATED", map[string]interface{}{
			"temple_name":    stored.TempleName,
			"notify_devotee": stored.NotifyDevotee,
			"created":        created,
		}, ip, auditlog.StatusSuccess)
	}
	return stored, created, nil
}

func apply(dst *Settings, in UpdateInput) {
	for _, f := range []struct {
		dst *string
		v   string
	}{
		{&dst.TempleName, in.TempleName},
		{&dst.ContactEmail, in.ContactEmail},
		{&dst.ContactPhone, in.ContactPhone},
		{&dst.Address, in.Address},
		{&dst.Website, in.Website},
		{&dst.Currency, in.Currency},
		{&dst.Timezone, in.Timezone},
		{&dst.RitualHours, in.RitualHours},
	} {
		if f.v != "" {
			*f.dst = f.v
		}
	}
	if in.AllowSameDayBooking != nil {
		dst.AllowSameDayBooking = *in.AllowSameDayBooking
	}
	if in.NotifyDevotee != nil {
		dst.NotifyDevotee = *in.NotifyDevotee
	}
	if in.AdvanceBookingDays != nil {
		dst.AdvanceBookingDays = *in.AdvanceBookingDays
	}
	if in.CancellationAllowed != nil {
		dst.CancellationAllowed = *in.CancellationAllowed
	}
}
