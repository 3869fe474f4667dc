package services

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: conn}), &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	require.NoError(t, err)

	return gormDB, mock
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func roomColumns() []string {
	return []string{
		"id", "room_no", "room_type", "room_image_url", "room_image_public_id",
		"status", "price", "capacity", "created_at", "updated_at",
	}
}

func bookingColumns() []string {
	return []string{
		"id", "check_in_date", "check_out_date", "guests", "special_request",
		"status", "total_price", "room_id", "user_id", "receipt_url",
		"created_at", "updated_at",
	}
}
