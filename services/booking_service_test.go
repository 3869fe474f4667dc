package services

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/visheshkakadiya/hotel-management/models"
)

func TestBookRoomCreatesConfirmedBooking(t *testing.T) {
	db, mock := newMockDB(t)

	roomID := uuid.New()
	userID := uuid.New()
	bookingID := uuid.New()
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "rooms" WHERE id = (.+) FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows(roomColumns()).
			AddRow(roomID, "101", models.RoomTypeStandard, "https://img/101.png", "hotelManagement/101",
				models.RoomStatusAvailable, 100.0, 2, now, now))
	mock.ExpectQuery(`SELECT (.+) FROM "bookings" WHERE room_id = (.+)`).
		WillReturnRows(sqlmock.NewRows(bookingColumns()))
	mock.ExpectQuery(`INSERT INTO "bookings"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(bookingID))
	mock.ExpectCommit()

	checkIn := date(2030, time.January, 1)
	checkOut := date(2030, time.January, 4)

	booking, err := BookRoom(db, roomID, userID, BookRoomInput{
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		Guests:       2,
	})
	require.NoError(t, err)

	assert.Equal(t, models.BookingStatusConfirmed, booking.Status)
	assert.InDelta(t, 345.0, booking.TotalPrice, 0.001)
	assert.Equal(t, roomID, booking.RoomID)
	assert.Equal(t, userID, booking.UserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookRoomRejectsOverlap(t *testing.T) {
	db, mock := newMockDB(t)

	roomID := uuid.New()
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "rooms" WHERE id = (.+) FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows(roomColumns()).
			AddRow(roomID, "101", models.RoomTypeStandard, "https://img/101.png", "hotelManagement/101",
				models.RoomStatusAvailable, 100.0, 2, now, now))
	mock.ExpectQuery(`SELECT (.+) FROM "bookings" WHERE room_id = (.+)`).
		WillReturnRows(sqlmock.NewRows(bookingColumns()).
			AddRow(uuid.New(), date(2030, time.January, 1), date(2030, time.January, 4), 2, "",
				models.BookingStatusConfirmed, 345.0, roomID, uuid.New(), nil, now, now))
	mock.ExpectRollback()

	_, err := BookRoom(db, roomID, uuid.New(), BookRoomInput{
		CheckInDate:  date(2030, time.January, 2),
		CheckOutDate: date(2030, time.January, 3),
		Guests:       2,
	})

	assert.ErrorIs(t, err, ErrDateConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookRoomAllowsBackToBackStay(t *testing.T) {
	db, mock := newMockDB(t)

	roomID := uuid.New()
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "rooms" WHERE id = (.+) FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows(roomColumns()).
			AddRow(roomID, "101", models.RoomTypeStandard, "https://img/101.png", "hotelManagement/101",
				models.RoomStatusAvailable, 100.0, 2, now, now))
	mock.ExpectQuery(`SELECT (.+) FROM "bookings" WHERE room_id = (.+)`).
		WillReturnRows(sqlmock.NewRows(bookingColumns()).
			AddRow(uuid.New(), date(2030, time.January, 10), date(2030, time.January, 12), 2, "",
				models.BookingStatusConfirmed, 230.0, roomID, uuid.New(), nil, now, now))
	mock.ExpectQuery(`INSERT INTO "bookings"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.New()))
	mock.ExpectCommit()

	// new stay starts exactly on the existing check-out day
	booking, err := BookRoom(db, roomID, uuid.New(), BookRoomInput{
		CheckInDate:  date(2030, time.January, 12),
		CheckOutDate: date(2030, time.January, 14),
		Guests:       2,
	})

	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusConfirmed, booking.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookRoomRejectsPastDates(t *testing.T) {
	db, mock := newMockDB(t)

	roomID := uuid.New()
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "rooms" WHERE id = (.+) FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows(roomColumns()).
			AddRow(roomID, "101", models.RoomTypeStandard, "https://img/101.png", "hotelManagement/101",
				models.RoomStatusAvailable, 100.0, 2, now, now))
	mock.ExpectRollback()

	_, err := BookRoom(db, roomID, uuid.New(), BookRoomInput{
		CheckInDate:  date(2020, time.January, 1),
		CheckOutDate: date(2020, time.January, 4),
		Guests:       2,
	})

	assert.ErrorIs(t, err, ErrDatesInPast)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookRoomRejectsTooManyGuests(t *testing.T) {
	db, mock := newMockDB(t)

	roomID := uuid.New()
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "rooms" WHERE id = (.+) FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows(roomColumns()).
			AddRow(roomID, "101", models.RoomTypeStandard, "https://img/101.png", "hotelManagement/101",
				models.RoomStatusAvailable, 100.0, 2, now, now))
	mock.ExpectRollback()

	_, err := BookRoom(db, roomID, uuid.New(), BookRoomInput{
		CheckInDate:  date(2030, time.January, 1),
		CheckOutDate: date(2030, time.January, 4),
		Guests:       3,
	})

	assert.ErrorIs(t, err, ErrGuestCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// The server quote is authoritative: a client total that disagrees with
// nights x price x 1.15 is rejected outright.
func TestBookRoomRejectsClientPriceMismatch(t *testing.T) {
	db, mock := newMockDB(t)

	roomID := uuid.New()
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "rooms" WHERE id = (.+) FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows(roomColumns()).
			AddRow(roomID, "101", models.RoomTypeStandard, "https://img/101.png", "hotelManagement/101",
				models.RoomStatusAvailable, 100.0, 2, now, now))
	mock.ExpectQuery(`SELECT (.+) FROM "bookings" WHERE room_id = (.+)`).
		WillReturnRows(sqlmock.NewRows(bookingColumns()))
	mock.ExpectRollback()

	lowball := 1.0
	_, err := BookRoom(db, roomID, uuid.New(), BookRoomInput{
		CheckInDate:  date(2030, time.January, 1),
		CheckOutDate: date(2030, time.January, 4),
		Guests:       2,
		TotalPrice:   &lowball,
	})

	assert.ErrorIs(t, err, ErrPriceMismatch)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookRoomAcceptsMatchingClientPrice(t *testing.T) {
	db, mock := newMockDB(t)

	roomID := uuid.New()
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "rooms" WHERE id = (.+) FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows(roomColumns()).
			AddRow(roomID, "101", models.RoomTypeStandard, "https://img/101.png", "hotelManagement/101",
				models.RoomStatusAvailable, 100.0, 2, now, now))
	mock.ExpectQuery(`SELECT (.+) FROM "bookings" WHERE room_id = (.+)`).
		WillReturnRows(sqlmock.NewRows(bookingColumns()))
	mock.ExpectQuery(`INSERT INTO "bookings"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.New()))
	mock.ExpectCommit()

	total := 345.0
	booking, err := BookRoom(db, roomID, uuid.New(), BookRoomInput{
		CheckInDate:  date(2030, time.January, 1),
		CheckOutDate: date(2030, time.January, 4),
		Guests:       2,
		TotalPrice:   &total,
	})

	require.NoError(t, err)
	assert.InDelta(t, 345.0, booking.TotalPrice, 0.001)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookRoomMissingRoom(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "rooms" WHERE id = (.+) FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows(roomColumns()))
	mock.ExpectRollback()

	_, err := BookRoom(db, uuid.New(), uuid.New(), BookRoomInput{
		CheckInDate:  date(2030, time.January, 1),
		CheckOutDate: date(2030, time.January, 4),
		Guests:       1,
	})

	assert.ErrorIs(t, err, ErrRoomNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancelBookingZeroesPriceAndFreesRoom(t *testing.T) {
	db, mock := newMockDB(t)

	roomID := uuid.New()
	bookingID := uuid.New()
	userID := uuid.New()
	now := time.Now()

	mock.ExpectQuery(`SELECT (.+) FROM "rooms" WHERE id = (.+)`).
		WillReturnRows(sqlmock.NewRows(roomColumns()).
			AddRow(roomID, "101", models.RoomTypeStandard, "https://img/101.png", "hotelManagement/101",
				models.RoomStatusOccupied, 100.0, 2, now, now))
	mock.ExpectQuery(`SELECT (.+) FROM "bookings" WHERE id = (.+)`).
		WillReturnRows(sqlmock.NewRows(bookingColumns()).
			AddRow(bookingID, date(2030, time.January, 1), date(2030, time.January, 4), 2, "",
				models.BookingStatusConfirmed, 345.0, roomID, userID, nil, now, now))
	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE (.+)`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "full_name", "email"}).
			AddRow(userID, "Guest One", "guest@example.com"))
	mock.ExpectExec(`UPDATE "bookings" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "rooms" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	booking, err := CancelBooking(db, roomID, bookingID)
	require.NoError(t, err)

	assert.Equal(t, models.BookingStatusCancelled, booking.Status)
	assert.Equal(t, 0.0, booking.TotalPrice)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancelBookingMissingBooking(t *testing.T) {
	db, mock := newMockDB(t)

	roomID := uuid.New()
	now := time.Now()

	mock.ExpectQuery(`SELECT (.+) FROM "rooms" WHERE id = (.+)`).
		WillReturnRows(sqlmock.NewRows(roomColumns()).
			AddRow(roomID, "101", models.RoomTypeStandard, "https://img/101.png", "hotelManagement/101",
				models.RoomStatusOccupied, 100.0, 2, now, now))
	mock.ExpectQuery(`SELECT (.+) FROM "bookings" WHERE id = (.+)`).
		WillReturnRows(sqlmock.NewRows(bookingColumns()))

	_, err := CancelBooking(db, roomID, uuid.New())

	assert.ErrorIs(t, err, ErrBookingNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCompletePastBookingsIsIdempotent(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec(`UPDATE "bookings" SET`).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`UPDATE "bookings" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	count, err := CompletePastBookings(db)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	// second pass finds nothing left to transition
	count, err = CompletePastBookings(db)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOccupiedDatesReturnsActiveRanges(t *testing.T) {
	db, mock := newMockDB(t)

	roomID := uuid.New()
	checkIn := date(2030, time.January, 10)
	checkOut := date(2030, time.January, 12)

	mock.ExpectQuery(`SELECT "check_in_date","check_out_date" FROM "bookings" WHERE room_id = (.+)`).
		WillReturnRows(sqlmock.NewRows([]string{"check_in_date", "check_out_date"}).
			AddRow(checkIn, checkOut))

	ranges, err := OccupiedDates(db, roomID)
	require.NoError(t, err)

	require.Len(t, ranges, 1)
	assert.True(t, ranges[0].CheckInDate.Equal(checkIn))
	assert.True(t, ranges[0].CheckOutDate.Equal(checkOut))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingHistoryJoinsRoomProjection(t *testing.T) {
	db, mock := newMockDB(t)

	roomID := uuid.New()
	userID := uuid.New()
	now := time.Now()

	mock.ExpectQuery(`SELECT (.+) FROM "bookings" WHERE user_id = (.+)`).
		WillReturnRows(sqlmock.NewRows(bookingColumns()).
			AddRow(uuid.New(), date(2030, time.January, 1), date(2030, time.January, 4), 2, "",
				models.BookingStatusConfirmed, 345.0, roomID, userID, nil, now, now))
	mock.ExpectQuery(`SELECT (.+) FROM "rooms" WHERE (.+)`).
		WillReturnRows(sqlmock.NewRows(roomColumns()).
			AddRow(roomID, "101", models.RoomTypeDeluxe, "https://img/101.png", "hotelManagement/101",
				models.RoomStatusOccupied, 100.0, 2, now, now))

	history, err := BookingHistory(db, userID)
	require.NoError(t, err)

	require.Len(t, history, 1)
	assert.Equal(t, "101", history[0].RoomNo)
	assert.Equal(t, models.RoomTypeDeluxe, history[0].RoomType)
	assert.InDelta(t, 345.0, history[0].TotalPrice, 0.001)
	assert.NoError(t, mock.ExpectationsWereMet())
}
