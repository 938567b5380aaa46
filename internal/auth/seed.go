package auth

import (
	"errors"
	"log"
	"strings"

	"github.com/sharath018/seva-booking-backend/config"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedUserRoles makes sure the devotee and admin roles exist.
func SeedUserRoles(db *gorm.DB) error {
	roles := []UserRole{
		{RoleName: RoleDevotee, Description: "Books sevas and tracks own bookings"},
		{RoleName: RoleAdmin, Description: "Manages sevas, bookings and temple content"},
	}
	for _, role := range roles {
		r := role
		if err := db.Where(UserRole{RoleName: r.RoleName}).FirstOrCreate(&r).Error; err != nil {
			return err
		}
	}
	log.Println("✅ User roles seeded")
	return nil
}

// SeedAdminUser creates the admin account from ADMIN_EMAIL / ADMIN_PASSWORD once.
func SeedAdminUser(db *gorm.DB, cfg *config.Config) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Println("ℹ️ ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin seed")
		return nil
	}

	email := strings.ToLower(cfg.AdminEmail)
	var existing User
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	var role UserRole
	if err := db.Where("role_name = ?", RoleAdmin).First(&role).Error; err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := User{
		Name:         "Temple Admin",
		Email:        email,
		PasswordHash: string(hash),
		RoleID:       role.ID,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	log.Printf("✅ Admin user seeded: %s", email)
	return nil
}
