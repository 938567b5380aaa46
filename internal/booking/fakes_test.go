package booking

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/sharath018/seva-booking-backend/internal/notification"
	"github.com/sharath018/seva-booking-backend/internal/seva"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// memoryRepo keeps bookings in memory and stamps CreatedAt one second apart so
// ordering is deterministic.
type memoryRepo struct {
	mu       sync.Mutex
	bookings []*Booking
	sevas    map[uint]*seva.Seva
	clock    time.Time
}

func newMemoryRepo(sevas ...*seva.Seva) *memoryRepo {
	r := &memoryRepo{
		sevas: map[uint]*seva.Seva{},
		clock: time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC),
	}
	for _, s := range sevas {
		r.sevas[s.ID] = s
	}
	return r
}

func (r *memoryRepo) Create(_ context.Context, b *Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clock = r.clock.Add(time.Second)
	b.ID = uint(len(r.bookings) + 1)
	b.CreatedAt = r.clock
	b.UpdatedAt = r.clock
	cp := *b
	r.bookings = append(r.bookings, &cp)
	return nil
}

func (r *memoryRepo) find(id uint) *Booking {
	for _, b := range r.bookings {
		if b.ID == id {
			return b
		}
	}
	return nil
}

func (r *memoryRepo) GetByID(_ context.Context, id uint) (*Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b := r.find(id)
	if b == nil {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *b
	return &cp, nil
}

func (r *memoryRepo) view(b *Booking, withImage, withOwner bool) BookingView {
	row := bookingRow{Booking: *b}
	if s, ok := r.sevas[b.SevaID]; ok {
		row.SevaTitleEn = s.TitleEn
		row.SevaTitleKn = s.TitleKn
		row.SevaTempleNameEn = s.TempleNameEn
		row.SevaLocationEn = s.LocationEn
		row.SevaImage = s.Image
	}
	return row.view(withImage, withOwner)
}

func (r *memoryRepo) GetView(_ context.Context, id uint) (*BookingView, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b := r.find(id)
	if b == nil {
		return nil, gorm.ErrRecordNotFound
	}
	v := r.view(b, true, true)
	return &v, nil
}

func (r *memoryRepo) list(match func(*Booking) bool, withImage, withOwner bool) []BookingView {
	r.mu.Lock()
	defer r.mu.Unlock()
	views := []BookingView{}
	for _, b := range r.bookings {
		if match(b) {
			views = append(views, r.view(b, withImage, withOwner))
		}
	}
	sort.SliceStable(views, func(i, j int) bool {
		return views[i].CreatedAt.After(views[j].CreatedAt)
	})
	return views
}

func (r *memoryRepo) ListByUser(_ context.Context, userID uint) ([]BookingView, error) {
	return r.list(func(b *Booking) bool { return b.UserID != nil && *b.UserID == userID }, false, false), nil
}

func (r *memoryRepo) ListAll(_ context.Context) ([]BookingView, error) {
	return r.list(func(*Booking) bool { return true }, false, true), nil
}

func (r *memoryRepo) FindByPhone(_ context.Context, phone string) ([]BookingView, error) {
	return r.list(func(b *Booking) bool { return b.GuestPhone == phone }, true, false), nil
}

func (r *memoryRepo) Update(_ context.Context, b *Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing := r.find(b.ID)
	if existing == nil {
		return gorm.ErrRecordNotFound
	}
	*existing = *b
	return nil
}

func (r *memoryRepo) Delete(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, b := range r.bookings {
		if b.ID == id {
			r.bookings = append(r.bookings[:i], r.bookings[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *memoryRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.bookings)
}

// sevaStore implements seva.Repository for the real seva service.
type sevaStore struct {
	items map[uint]*seva.Seva
}

func newSevaStore(items ...*seva.Seva) *sevaStore {
	s := &sevaStore{items: map[uint]*seva.Seva{}}
	for _, it := range items {
		s.items[it.ID] = it
	}
	return s
}

func (s *sevaStore) Create(_ context.Context, sv *seva.Seva) error {
	sv.ID = uint(len(s.items) + 1)
	s.items[sv.ID] = sv
	return nil
}

func (s *sevaStore) GetByID(_ context.Context, id uint) (*seva.Seva, error) {
	sv, ok := s.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *sv
	return &cp, nil
}

func (s *sevaStore) ListActive(context.Context) ([]seva.Seva, error) {
	var out []seva.Seva
	for _, sv := range s.items {
		if sv.IsActive {
			out = append(out, *sv)
		}
	}
	return out, nil
}

func (s *sevaStore) ListAll(context.Context) ([]seva.Seva, error) {
	var out []seva.Seva
	for _, sv := range s.items {
		out = append(out, *sv)
	}
	return out, nil
}

func (s *sevaStore) Update(_ context.Context, sv *seva.Seva) error {
	s.items[sv.ID] = sv
	return nil
}

func (s *sevaStore) Delete(_ context.Context, id uint) error {
	delete(s.items, id)
	return nil
}

// notificationStore implements notification.Repository for the real
// notification service.
type notificationStore struct {
	items []*notification.Notification
}

func (s *notificationStore) Create(_ context.Context, n *notification.Notification) error {
	n.ID = uint(len(s.items) + 1)
	n.CreatedAt = time.Now()
	s.items = append(s.items, n)
	return nil
}

func (s *notificationStore) ListRecent(_ context.Context, limit int) ([]notification.Notification, error) {
	var out []notification.Notification
	for i := len(s.items) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, *s.items[i])
	}
	return out, nil
}

func (s *notificationStore) GetByID(_ context.Context, id uint) (*notification.Notification, error) {
	for _, n := range s.items {
		if n.ID == id {
			return n, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *notificationStore) MarkRead(_ context.Context, id uint) error {
	for _, n := range s.items {
		if n.ID == id {
			n.IsRead = true
		}
	}
	return nil
}

func (s *notificationStore) MarkAllRead(context.Context) (int64, error) {
	var updated int64
	for _, n := range s.items {
		if !n.IsRead {
			n.IsRead = true
			updated++
		}
	}
	return updated, nil
}

func (s *notificationStore) CountUnread(context.Context) (int64, error) {
	var count int64
	for _, n := range s.items {
		if !n.IsRead {
			count++
		}
	}
	return count, nil
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) EmitBooking(ctx context.Context, bookingID uint, sevaTitle, actorName string) (*notification.Notification, error) {
	args := m.Called(ctx, bookingID, sevaTitle, actorName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*notification.Notification), args.Error(1)
}

func (m *MockNotifier) ConfirmDevotee(ctx context.Context, c notification.BookingConfirmation) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, key string, payload interface{}) error {
	args := m.Called(ctx, key, payload)
	return args.Error(0)
}

func rudraAbhisheka() *seva.Seva {
	return &seva.Seva{
		ID:           1,
		TitleEn:      "Rudra Abhisheka",
		TempleNameEn: "Shree Kshetra Ramtirtha",
		LocationEn:   "Karnataka",
		Price:        350,
		Image:        "/images/rudra.jpg",
		Category:     "Abhisheka",
		IsActive:     true,
	}
}
