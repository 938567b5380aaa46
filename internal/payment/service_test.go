package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/sharath018/seva-booking-backend/config"
	"github.com/sharath018/seva-booking-backend/internal/apperr"
	"github.com/sharath018/seva-booking-backend/internal/booking"
	"github.com/sharath018/seva-booking-backend/internal/seva"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrders struct {
	mock.Mock
}

func (m *MockOrders) Create(data map[string]interface{}, extraHeaders map[string]string) (map[string]interface{}, error) {
	args := m.Called(data, extraHeaders)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]interface{}), args.Error(1)
}

type sevaMap map[uint]*seva.Seva

func (m sevaMap) GetByID(_ context.Context, id uint) (*seva.Seva, error) {
	sv, ok := m[id]
	if !ok {
		return nil, seva.ErrSevaNotFound
	}
	return sv, nil
}

func newTestService(orders OrderCreator) *service {
	return &service{
		orders:  orders,
		key:     "rzp_test_key",
		secret:  "test_secret",
		pricing: booking.PerHeadPolicy{},
		sevas: sevaMap{
			1: {ID: 1, TitleEn: "Rudra Abhisheka", Price: 350, IsActive: true},
			2: {ID: 2, TitleEn: "Retired", Price: 100, IsActive: false},
		},
	}
}

func sign(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestNotConfigured(t *testing.T) {
	svc := NewService(&config.Config{}, sevaMap{}, booking.PerHeadPolicy{}, nil)
	assert.False(t, svc.Enabled())

	_, err := svc.CreateOrder(context.Background(), OrderRequest{SevaID: 1}, nil, "")
	assert.ErrorIs(t, err, ErrNotConfigured)

	_, err = svc.VerifySignature(context.Background(), VerifyRequest{OrderID: "o", PaymentID: "p", RazorpaySig: "s"}, nil, "")
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestConfiguredWithKeys(t *testing.T) {
	svc := NewService(&config.Config{RazorpayKey: "rzp_test_key", RazorpaySecret: "secret"}, sevaMap{}, booking.PerHeadPolicy{}, nil)
	assert.True(t, svc.Enabled())
}

func TestCreateOrderChargesPolicyTotalInPaise(t *testing.T) {
	orders := new(MockOrders)
	orders.On("Create", mock.MatchedBy(func(data map[string]interface{}) bool {
		return data["amount"] == int64(105000) && data["currency"] == "INR"
	}), mock.Anything).Return(map[string]interface{}{"id": "order_123"}, nil)

	res, err := newTestService(orders).CreateOrder(context.Background(), OrderRequest{SevaID: 1, Count: 3}, nil, "")
	require.NoError(t, err)
	assert.Equal(t, "order_123", res.OrderID)
	assert.Equal(t, 1050.0, res.Amount)
	assert.Equal(t, int64(105000), res.AmountPaise)
	assert.Equal(t, "rzp_test_key", res.RazorpayKey)
	orders.AssertExpectations(t)
}

func TestCreateOrderRejections(t *testing.T) {
	orders := new(MockOrders)
	svc := newTestService(orders)

	_, err := svc.CreateOrder(context.Background(), OrderRequest{SevaID: 2, Count: 1}, nil, "")
	assert.True(t, apperr.IsValidation(err))

	_, err = svc.CreateOrder(context.Background(), OrderRequest{SevaID: 9, Count: 1}, nil, "")
	assert.True(t, apperr.IsNotFound(err))

	orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateOrderGatewayFailure(t *testing.T) {
	orders := new(MockOrders)
	orders.On("Create", mock.Anything, mock.Anything).Return(nil, errors.New("gateway timeout"))

	_, err := newTestService(orders).CreateOrder(context.Background(), OrderRequest{SevaID: 1, Count: 1}, nil, "")
	assert.Error(t, err)
}

func TestVerifySignature(t *testing.T) {
	svc := newTestService(new(MockOrders))

	ok, err := svc.VerifySignature(context.Background(), VerifyRequest{
		OrderID:     "order_123",
		PaymentID:   "pay_456",
		RazorpaySig: sign("test_secret", "order_123", "pay_456"),
	}, nil, "")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.VerifySignature(context.Background(), VerifyRequest{
		OrderID:     "order_123",
		PaymentID:   "pay_456",
		RazorpaySig: sign("wrong_secret", "order_123", "pay_456"),
	}, nil, "")
	require.NoError(t, err)
	assert.False(t, ok)
}
