package auth

import (
	"context"
	"testing"

	"github.com/sharath018/seva-booking-backend/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type memoryRepo struct {
	users []*User
	roles map[string]*UserRole
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{roles: map[string]*UserRole{
		RoleDevotee: {ID: 1, RoleName: RoleDevotee},
		RoleAdmin:   {ID: 2, RoleName: RoleAdmin},
	}}
}

func (r *memoryRepo) Create(_ context.Context, u *User) error {
	u.ID = uint(len(r.users) + 1)
	cp := *u
	r.users = append(r.users, &cp)
	return nil
}

func (r *memoryRepo) find(match func(*User) bool) (*User, error) {
	for _, u := range r.users {
		if match(u) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memoryRepo) FindByEmail(_ context.Context, email string) (*User, error) {
	return r.find(func(u *User) bool { return u.Email == email })
}

func (r *memoryRepo) FindByID(_ context.Context, id uint) (*User, error) {
	return r.find(func(u *User) bool { return u.ID == id })
}

func (r *memoryRepo) EmailTaken(_ context.Context, email string) (bool, error) {
	_, err := r.find(func(u *User) bool { return u.Email == email })
	return err == nil, nil
}

func (r *memoryRepo) RoleByName(_ context.Context, name string) (*UserRole, error) {
	role, ok := r.roles[name]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return role, nil
}

func newTestService() Service {
	return NewService(newMemoryRepo(), &config.Config{JWTAccessSecret: "test-secret", JWTAccessTTLHours: 1})
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	u, err := svc.Register(ctx, RegisterInput{Name: " Ramesh Kumar ", Email: "Ramesh@Example.com", Password: "secret123", Phone: "+91 98765-43210"})
	require.NoError(t, err)
	assert.Equal(t, "Ramesh Kumar", u.Name)
	assert.Equal(t, "ramesh@example.com", u.Email)
	assert.Equal(t, "9876543210", u.Phone)
	assert.Equal(t, RoleDevotee, u.Role.RoleName)
	assert.NotEqual(t, "secret123", u.PasswordHash)

	_, err = svc.Register(ctx, RegisterInput{Name: "Again", Email: "ramesh@example.com", Password: "x"})
	assert.ErrorIs(t, err, ErrEmailTaken)

	token, logged, err := svc.Login(ctx, LoginInput{Email: "RAMESH@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, u.ID, logged.ID)

	_, _, err = svc.Login(ctx, LoginInput{Email: "ramesh@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login(ctx, LoginInput{Email: "nobody@example.com", Password: "secret123"})
	assert.ErrorIs(t, err, ErrUserNotFound)

	found, err := svc.GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "ramesh@example.com", found.Email)

	_, err = svc.GetUserByID(ctx, 404)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestCleanPhone(t *testing.T) {
	tests := map[string]string{
		"9876543210":      "9876543210",
		"+91 98765 43210": "9876543210",
		"(987) 654-3210":  "9876543210",
		"919876543210":    "9876543210",
	}
	for in, want := range tests {
		got, err := cleanPhone(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}

	_, err := cleanPhone("12345")
	assert.ErrorIs(t, err, ErrInvalidPhone)
}
