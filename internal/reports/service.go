package reports

import (
	"context"
	"log"

	"github.com/sharath018/seva-booking-backend/internal/apperr"
	"github.com/sharath018/seva-booking-backend/internal/auditlog"
	"github.com/sharath018/seva-booking-backend/internal/booking"
	"github.com/sharath018/seva-booking-backend/internal/settings"
)

// BookingReader is the slice of the booking service receipts need.
type BookingReader interface {
	GetDetail(ctx context.Context, id uint) (*booking.BookingView, error)
}

// ReportService coordinates the repository, the exporter and the audit trail.
type ReportService interface {
	GetSankalpaList(ctx context.Context, filter SankalpaFilter) ([]SankalpaRow, error)
	ExportSankalpaList(ctx context.Context, format string, filter SankalpaFilter, userID *uint, ip string) (*Export, error)
	BookingReceipt(ctx context.Context, bookingID uint, userID *uint, ip string) (*Export, error)
}

type reportService struct {
	repo     ReportRepository
	exporter ReportExporter
	bookings BookingReader
	settings settings.Service
	auditSvc auditlog.Service
}

func NewReportService(repo ReportRepository, exporter ReportExporter, bookings BookingReader, settingsSvc settings.Service, auditSvc auditlog.Service) ReportService {
	return &reportService{
		repo:     repo,
		exporter: exporter,
		bookings: bookings,
		settings: settingsSvc,
		auditSvc: auditSvc,
	}
}

func validFormat(format string) bool {
	switch format {
	case FormatPDF, FormatExcel, FormatCSV:
		return true
	}
	return false
}

func (s *reportService) GetSankalpaList(ctx context.Context, filter SankalpaFilter) ([]SankalpaRow, error) {
	return s.repo.GetSankalpaRows(ctx, filter)
}

func (s *reportService) ExportSankalpaList(ctx context.Context, format string, filter SankalpaFilter, userID *uint, ip string) (*Export, error) {
	if !validFormat(format) {
		return nil, apperr.Invalid("format", "format must be one of pdf, excel, csv")
	}

	rows, err := s.repo.GetSankalpaRows(ctx, filter)
	if err != nil {
		return nil, err
	}

	out, err := s.exporter.ExportSankalpa(format, rows)
	if err != nil {
		s.audit(ctx, userID, nil, "SANKALPA_EXPORT_FAILED", map[string]interface{}{"format": format, "error": err.Error()}, ip, auditlog.StatusFailure)
		return nil, err
	}

	s.audit(ctx, userID, nil, "SANKALPA_EXPORTED", map[string]interface{}{
		"format": format,
		"rows":   len(rows),
	}, ip, auditlog.StatusSuccess)
	return out, nil
}

func (s *reportService) BookingReceipt(ctx context.Context, bookingID uint, userID *uint, ip string) (*Export, error) {
	v, err := s.bookings.GetDetail(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	templeName := settings.Defaults().TempleName
	if s.settings != nil {
		if cfg, err := s.settings.Get(ctx); err != nil {
			log.Printf("⚠️ Receipt for booking %d uses default temple name: %v", bookingID, err)
		} else {
			templeName = cfg.TempleName
		}
	}

	out, err := s.exporter.ExportReceipt(templeName, v)
	if err != nil {
		return nil, err
	}

	s.audit(ctx, userID, &bookingID, "RECEIPT_GENERATED", map[string]interface{}{"reference": v.Reference}, ip, auditlog.StatusSuccess)
	return out, nil
}

func (s *reportService) audit(ctx context.Context, userID *uint, resourceID *uint, action string, details map[string]interface{}, ip, status string) {
	if s.auditSvc == nil {
		return
	}
	_ = s.auditSvc.LogAction(ctx, userID, auditlog.ResourceReport, resourceID, action, details, ip, status)
}
