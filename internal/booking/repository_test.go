package booking

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestRepositoryFindByPhone(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRepository(db)
	created := time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{
		"id", "reference", "user_id", "guest_phone", "seva_id", "devotee_name", "count", "total_amount", "status", "created_at",
		"seva_title_en", "seva_title_kn", "seva_temple_name_en", "seva_temple_name_kn", "seva_location_en", "seva_location_kn", "seva_image",
		"owner_name", "owner_email",
	}).AddRow(
		2, "SB-0000AAAA", nil, "9876543210", 1, "Ramesh Kumar", 1, 350.0, "Confirmed", created,
		"Rudra Abhisheka", "", "Shree Kshetra Ramtirtha", "", "Karnataka", "", "/images/rudra.jpg",
		"", "",
	)
	mock.ExpectQuery(`FROM bookings AS b LEFT JOIN sevas s ON s.id = b.seva_id LEFT JOIN users u ON u.id = b.user_id WHERE b.guest_phone = \$1 ORDER BY b.created_at DESC`).
		WithArgs("9876543210").
		WillReturnRows(rows)

	views, err := repo.FindByPhone(context.Background(), "9876543210")
	require.NoError(t, err)
	require.Len(t, views, 1)

	v := views[0]
	assert.Equal(t, uint(2), v.ID)
	assert.Equal(t, "Ramesh Kumar", v.DevoteeName)
	require.NotNil(t, v.Seva)
	assert.Equal(t, "Rudra Abhisheka", v.Seva.TitleEn)
	assert.Equal(t, "/images/rudra.jpg", v.Seva.Image)
	assert.Nil(t, v.User)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryGetViewMissing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRepository(db)

	mock.ExpectQuery(`FROM bookings AS b .* WHERE b.id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetView(context.Background(), 7)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryDelete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRepository(db)

	mock.ExpectExec(`DELETE FROM "bookings" WHERE "bookings"."id" = \$1`).
		WithArgs(3).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), 3))
	assert.NoError(t, mock.ExpectationsWereMet())
}
