package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"math"

	razorpay "github.com/razorpay/razorpay-go"
	"github.com/sharath018/seva-booking-backend/config"
	"github.com/sharath018/seva-booking-backend/internal/apperr"
	"github.com/sharath018/seva-booking-backend/internal/auditlog"
	"github.com/sharath018/seva-booking-backend/internal/booking"
	"github.com/sharath018/seva-booking-backend/internal/seva"
)

var ErrNotConfigured = errors.New("online payments are not configured")

// OrderCreator is satisfied by the Razorpay client's Order resource.
type OrderCreator interface {
	Create(data map[string]interface{}, extraHeaders map[string]string) (map[string]interface{}, error)
}

// SevaLookup resolves the seva being paid for.
type SevaLookup interface {
	GetByID(ctx context.Context, id uint) (*seva.Seva, error)
}

// OrderRequest is the checkout intent sent before a booking is placed.
type OrderRequest struct {
	SevaID      uint   `json:"sevaId" binding:"required"`
	Count       int    `json:"count"`
	BookingType string `json:"bookingType"`
}

// OrderResponse carries what the Razorpay checkout widget needs.
type OrderResponse struct {
	OrderID     string  `json:"orderId"`
	Amount      float64 `json:"amount"`
	AmountPaise int64   `json:"amountPaise"`
	Currency    string  `json:"currency"`
	RazorpayKey string  `json:"razorpayKey"`
}

type VerifyRequest struct {
	OrderID     string `json:"orderId" binding:"required"`
	PaymentID   string `json:"paymentId" binding:"required"`
	RazorpaySig string `json:"razorpaySig" binding:"required"`
}

type Service interface {
	Enabled() bool
	CreateOrder(ctx context.Context, req OrderRequest, userID *uint, ip string) (*OrderResponse, error)
	VerifySignature(ctx context.Context, req VerifyRequest, userID *uint, ip string) (bool, error)
}

type service struct {
	orders   OrderCreator
	key      string
	secret   string
	sevas    SevaLookup
	pricing  booking.PricingPolicy
	auditSvc auditlog.Service
}

// NewService creates the Razorpay-backed service. Without credentials every
// call reports ErrNotConfigured.
func NewService(cfg *config.Config, sevas SevaLookup, pricing booking.PricingPolicy, auditSvc auditlog.Service) Service {
	s := &service{
		key:      cfg.RazorpayKey,
		secret:   cfg.RazorpaySecret,
		sevas:    sevas,
		pricing:  pricing,
		auditSvc: auditSvc,
	}
	if cfg.RazorpayKey != "" && cfg.RazorpaySecret != "" {
		s.orders = razorpay.NewClient(cfg.RazorpayKey, cfg.RazorpaySecret).Order
	}
	return s
}

func (s *service) Enabled() bool {
	return s.orders != nil
}

func (s *service) CreateOrder(ctx context.Context, req OrderRequest, userID *uint, ip string) (*OrderResponse, error) {
	if !s.Enabled() {
		return nil, ErrNotConfigured
	}

	sv, err := s.sevas.GetByID(ctx, req.SevaID)
	if err != nil {
		return nil, err
	}
	if !sv.IsActive {
		return nil, apperr.Invalid("sevaId", "Seva is not available for booking")
	}

	bookingType := req.BookingType
	if bookingType == "" {
		bookingType = booking.TypeIndividual
	}
	amount := s.pricing.Total(sv.Price, req.Count, bookingType)
	amountInPaise := int64(math.Round(amount * 100))

	data := map[string]interface{}{
		"amount":          amountInPaise,
		"currency":        "INR",
		"payment_capture": 1,
		"notes": map[string]interface{}{
			"seva_id":      sv.ID,
			"count":        booking.ClampCount(req.Count),
			"booking_type": bookingType,
		},
	}

	order, err := s.orders.Create(data, nil)
	if err != nil {
		s.audit(ctx, userID, "PAYMENT_ORDER_FAILED", map[string]interface{}{"seva_id": sv.ID, "amount": amount, "error": err.Error()}, ip, auditlog.StatusFailure)
		return nil, fmt.Errorf("razorpay order creation failed: %w", err)
	}

	orderID, ok := order["id"].(string)
	if !ok {
		s.audit(ctx, userID, "PAYMENT_ORDER_FAILED", map[string]interface{}{"seva_id": sv.ID, "error": "missing order id"}, ip, auditlog.StatusFailure)
		return nil, errors.New("unable to extract order_id from Razorpay response")
	}

	s.audit(ctx, userID, "PAYMENT_ORDER_CREATED", map[string]interface{}{
		"seva_id":  sv.ID,
		"amount":   amount,
		"order_id": orderID,
	}, ip, auditlog.StatusSuccess)

	return &OrderResponse{
		OrderID:     orderID,
		Amount:      amount,
		AmountPaise: amountInPaise,
		Currency:    "INR",
		RazorpayKey: s.key,
	}, nil
}

// VerifySignature checks the checkout callback signature,
// hex(HMAC-SHA256(secret, orderId|paymentId)).
func (s *service) VerifySignature(ctx context.Context, req VerifyRequest, userID *uint, ip string) (bool, error) {
	if !s.Enabled() {
		return false, ErrNotConfigured
	}

	mac := hmac.New(sha256.New, []byte(s.secret))
	mac.Write([]byte(req.OrderID + "|" + req.PaymentID))
	expected := hex.EncodeToString(mac.Sum(nil))

	ok := hmac.Equal([]byte(expected), []byte(req.RazorpaySig))
	status := auditlog.StatusSuccess
	if !ok {
		status = auditlog.StatusFailure
	}
	s.audit(ctx, userID, "PAYMENT_VERIFIED", map[string]interface{}{
		"order_id":   req.OrderID,
		"payment_id": req.PaymentID,
		"valid":      ok,
	}, ip, status)
	return ok, nil
}

func (s *service) audit(ctx context.Context, userID *uint, action string, details map[string]interface{}, ip, status string) {
	if s.auditSvc == nil {
		return
	}
	_ = s.auditSvc.LogAction(ctx, userID, auditlog.ResourcePayment, nil, action, details, ip, status)
}
