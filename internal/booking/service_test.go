package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sharath018/seva-booking-backend/internal/apperr"
	"github.com/sharath018/seva-booking-backend/internal/notification"
	"github.com/sharath018/seva-booking-backend/internal/seva"
	"github.com/sharath018/seva-booking-backend/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	repo     *memoryRepo
	notifs   *notificationStore
	notifSvc notification.Service
	svc      Service
}

func newFixture(t *testing.T, enforce bool) *fixture {
	t.Helper()
	sv := rudraAbhisheka()
	repo := newMemoryRepo(sv)
	sevaSvc := seva.NewService(newSevaStore(sv), nil)

	notifs := &notificationStore{}
	notifSvc := notification.NewService(notifs)

	svc := NewService(repo, sevaSvc, nil, PerHeadPolicy{}, enforce)
	svc.SetNotifService(notifSvc)
	return &fixture{repo: repo, notifs: notifs, notifSvc: notifSvc, svc: svc}
}

func guestRequest(devotee, phone string, count int, total float64) CreateRequest {
	return CreateRequest{
		SevaID:      1,
		DevoteeName: devotee,
		Count:       count,
		TotalAmount: total,
		Guest:       GuestContact{Phone: phone},
	}
}

func TestCreateGuestBookingEndToEnd(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()

	b, err := f.svc.Create(ctx, nil, guestRequest("Ramesh Kumar", "9876543210", 1, 350), "127.0.0.1")
	require.NoError(t, err)

	assert.Equal(t, StatusConfirmed, b.Status)
	assert.True(t, b.IsPaid)
	assert.Nil(t, b.UserID)
	assert.Equal(t, 350.0, b.TotalAmount)
	assert.Regexp(t, `^SB-[0-9A-F]{8}$`, b.Reference)

	require.Len(t, f.notifs.items, 1)
	n := f.notifs.items[0]
	assert.Contains(t, n.Message, "Rudra Abhisheka")
	assert.Contains(t, n.Message, "Ramesh Kumar")
	assert.False(t, n.IsRead)
	require.NotNil(t, n.BookingID)
	assert.Equal(t, b.ID, *n.BookingID)

	found, err := f.svc.FindByPhone(ctx, "9876543210")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, b.ID, found[0].ID)
	require.NotNil(t, found[0].Seva)
	assert.Equal(t, "Rudra Abhisheka", found[0].Seva.TitleEn)
	assert.Equal(t, "/images/rudra.jpg", found[0].Seva.Image)
}

func TestCreateMissingSevaLeavesNoTrace(t *testing.T) {
	f := newFixture(t, false)
	req := guestRequest("Ramesh Kumar", "9876543210", 1, 350)
	req.SevaID = 99

	b, err := f.svc.Create(context.Background(), nil, req, "")
	assert.Nil(t, b)
	assert.True(t, apperr.IsNotFound(err))
	assert.Equal(t, 0, f.repo.count())
	assert.Empty(t, f.notifs.items)
}

func TestCreateValidation(t *testing.T) {
	tests := []struct {
		name  string
		actor *middleware.AccessContext
		req   CreateRequest
	}{
		{"no seva", nil, CreateRequest{DevoteeName: "A", Guest: GuestContact{Phone: "1"}}},
		{"no devotee name", nil, CreateRequest{SevaID: 1, DevoteeName: "  ", Guest: GuestContact{Phone: "1"}}},
		{"guest without phone", nil, CreateRequest{SevaID: 1, DevoteeName: "A"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, false)
			_, err := f.svc.Create(context.Background(), tt.actor, tt.req, "")
			assert.True(t, apperr.IsValidation(err), "got %v", err)
			assert.Equal(t, 0, f.repo.count())
			assert.Empty(t, f.notifs.items)
		})
	}
}

func TestCreateSignedInUsesAccountContact(t *testing.T) {
	f := newFixture(t, false)
	actor := &middleware.AccessContext{UserID: 7, Name: "Lakshmi", Email: "lakshmi@example.com", Phone: "9000000001"}
	req := CreateRequest{
		SevaID:      1,
		DevoteeName: "Lakshmi",
		Count:       2,
		TotalAmount: 700,
		Guest:       GuestContact{Name: "Someone Else", Phone: "1111111111"},
	}

	b, err := f.svc.Create(context.Background(), actor, req, "")
	require.NoError(t, err)
	require.NotNil(t, b.UserID)
	assert.Equal(t, uint(7), *b.UserID)
	assert.Equal(t, "9000000001", b.GuestPhone)
	assert.Equal(t, "lakshmi@example.com", b.GuestEmail)

	mine, err := f.svc.ListMine(context.Background(), 7)
	require.NoError(t, err)
	assert.Len(t, mine, 1)
}

func TestCreateNonPositiveCountStoredAsOne(t *testing.T) {
	f := newFixture(t, false)
	b, err := f.svc.Create(context.Background(), nil, guestRequest("Ramesh Kumar", "9876543210", 0, 350), "")
	require.NoError(t, err)
	assert.Equal(t, 1, b.Count)
	assert.Equal(t, TypeIndividual, b.BookingType)
}

func TestCreateStoresSubmittedTotalWhenNotEnforced(t *testing.T) {
	f := newFixture(t, false)
	b, err := f.svc.Create(context.Background(), nil, guestRequest("Ramesh Kumar", "9876543210", 3, 1), "")
	require.NoError(t, err)
	assert.Equal(t, 1.0, b.TotalAmount)
}

func TestCreateEnforcedTotal(t *testing.T) {
	f := newFixture(t, true)

	_, err := f.svc.Create(context.Background(), nil, guestRequest("Ramesh Kumar", "9876543210", 3, 1000), "")
	assert.True(t, apperr.IsValidation(err))
	assert.Equal(t, 0, f.repo.count())

	b, err := f.svc.Create(context.Background(), nil, guestRequest("Ramesh Kumar", "9876543210", 3, 1050), "")
	require.NoError(t, err)
	assert.Equal(t, 1050.0, b.TotalAmount)
}

func TestCreateStoresClampedCount(t *testing.T) {
	f := newFixture(t, true)

	b, err := f.svc.Create(context.Background(), nil, guestRequest("Ramesh Kumar", "9876543210", 15, 3500), "")
	require.NoError(t, err)
	assert.Equal(t, MaxCount, b.Count)
	assert.Equal(t, 3500.0, b.TotalAmount)

	stored, err := f.svc.GetByID(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, MaxCount, stored.Count)
}

func TestCreateSurvivesNotifierFailure(t *testing.T) {
	sv := rudraAbhisheka()
	repo := newMemoryRepo(sv)
	svc := NewService(repo, seva.NewService(newSevaStore(sv), nil), nil, nil, false)

	notifier := new(MockNotifier)
	notifier.On("EmitBooking", mock.Anything, uint(1), "Rudra Abhisheka", "Ramesh Kumar").
		Return(nil, errors.New("db down"))
	notifier.On("ConfirmDevotee", mock.Anything, mock.AnythingOfType("notification.BookingConfirmation")).
		Return(errors.New("smtp down"))
	svc.SetNotifService(notifier)

	publisher := new(MockPublisher)
	publisher.On("Publish", mock.Anything, "1", mock.MatchedBy(func(e Event) bool {
		return e.Type == EventCreated && e.BookingID == 1
	})).Return(errors.New("broker down"))
	svc.SetEventPublisher(publisher)

	b, err := svc.Create(context.Background(), nil, guestRequest("Ramesh Kumar", "9876543210", 1, 350), "")
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, b.Status)
	assert.Equal(t, 1, repo.count())
	notifier.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestFindByPhoneExactMatchNewestFirst(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()

	first, err := f.svc.Create(ctx, nil, guestRequest("First", "9876543210", 1, 350), "")
	require.NoError(t, err)
	_, err = f.svc.Create(ctx, nil, guestRequest("Other", "+919876543210", 1, 350), "")
	require.NoError(t, err)
	second, err := f.svc.Create(ctx, nil, guestRequest("Second", "9876543210", 1, 350), "")
	require.NoError(t, err)

	found, err := f.svc.FindByPhone(ctx, "9876543210")
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, second.ID, found[0].ID)
	assert.Equal(t, first.ID, found[1].ID)

	none, err := f.svc.FindByPhone(ctx, "98765")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestUpdateIgnoresEmptyFields(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()
	req := guestRequest("Ramesh Kumar", "9876543210", 1, 350)
	req.Gothram = "Kashyapa"
	b, err := f.svc.Create(ctx, nil, req, "")
	require.NoError(t, err)

	updated, err := f.svc.Update(ctx, b.ID, UpdateRequest{DevoteeName: ""}, nil, "")
	require.NoError(t, err)
	assert.Equal(t, "Ramesh Kumar", updated.DevoteeName)
	assert.Equal(t, "Kashyapa", updated.Gothram)
}

func TestUpdateStatusOnly(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()
	req := guestRequest("Ramesh Kumar", "9876543210", 2, 700)
	req.Rashi = "Mesha"
	date := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	req.BookingDate = &date
	b, err := f.svc.Create(ctx, nil, req, "")
	require.NoError(t, err)

	updated, err := f.svc.Update(ctx, b.ID, UpdateRequest{Status: StatusCompleted}, nil, "")
	require.NoError(t, err)

	assert.Equal(t, StatusCompleted, updated.Status)
	assert.Equal(t, b.DevoteeName, updated.DevoteeName)
	assert.Equal(t, b.Rashi, updated.Rashi)
	assert.Equal(t, b.GuestPhone, updated.GuestPhone)
	assert.Equal(t, b.Count, updated.Count)
	assert.Equal(t, b.TotalAmount, updated.TotalAmount)
	assert.True(t, b.BookingDate.Equal(updated.BookingDate))
	assert.Equal(t, b.Reference, updated.Reference)

	all, err := f.svc.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, b.ID, all[0].ID)
	assert.Equal(t, StatusCompleted, all[0].Status)
	assert.Equal(t, "Mesha", all[0].Rashi)
}

func TestUpdateAndDeleteMissingBooking(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()

	_, err := f.svc.Update(ctx, 42, UpdateRequest{Status: StatusCancelled}, nil, "")
	assert.ErrorIs(t, err, ErrBookingNotFound)

	err = f.svc.Delete(ctx, 42, nil, "")
	assert.ErrorIs(t, err, ErrBookingNotFound)

	_, err = f.svc.GetDetail(ctx, 42)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestDeleteRemovesBooking(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()
	b, err := f.svc.Create(ctx, nil, guestRequest("Ramesh Kumar", "9876543210", 1, 350), "")
	require.NoError(t, err)

	require.NoError(t, f.svc.Delete(ctx, b.ID, nil, ""))
	found, err := f.svc.FindByPhone(ctx, "9876543210")
	require.NoError(t, err)
	assert.Empty(t, found)
}
