package handlers

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/visheshkakadiya/hotel-management/database"
	"github.com/visheshkakadiya/hotel-management/models"
	"github.com/visheshkakadiya/hotel-management/notifications"
	"github.com/visheshkakadiya/hotel-management/services"
	"github.com/visheshkakadiya/hotel-management/utils"
)

type BookRoomRequest struct {
	CheckInDate    string   `json:"checkInDate" validate:"required,datetime=2006-01-02"`
	CheckOutDate   string   `json:"checkOutDate" validate:"required,datetime=2006-01-02"`
	Guests         int      `json:"guests" validate:"required,min=1"`
	SpecialRequest string   `json:"specialRequest"`
	TotalPrice     *float64 `json:"totalPrice,omitempty"`
}

func BookRoom(c *fiber.Ctx) error {
	roomID, err := uuid.Parse(c.Params("roomId"))
	if err != nil {
		return utils.RespondError(c, fiber.StatusBadRequest, "Room id is required")
	}
	userID := currentUserID(c)

	var req BookRoomRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.RespondError(c, fiber.StatusBadRequest, "Cannot parse JSON")
	}
	if err := validate.Struct(req); err != nil {
		return utils.RespondError(c, fiber.StatusBadRequest, "Invalid booking request", err.Error())
	}

	checkIn, _ := time.Parse("2006-01-02", req.CheckInDate)
	checkOut, _ := time.Parse("2006-01-02", req.CheckOutDate)

	booking, err := services.BookRoom(database.DB, roomID, userID, services.BookRoomInput{
		CheckInDate:    checkIn,
		CheckOutDate:   checkOut,
		Guests:         req.Guests,
		SpecialRequest: req.SpecialRequest,
		TotalPrice:     req.TotalPrice,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrRoomNotFound):
			return utils.RespondError(c, fiber.StatusNotFound, err.Error())
		case errors.Is(err, services.ErrDateConflict):
			return utils.RespondError(c, fiber.StatusConflict, err.Error())
		case errors.Is(err, services.ErrDatesInPast),
			errors.Is(err, services.ErrCheckOutNotAfter),
			errors.Is(err, services.ErrGuestCount),
			errors.Is(err, services.ErrPriceMismatch):
			return utils.RespondError(c, fiber.StatusBadRequest, err.Error())
		}
		return utils.RespondError(c, fiber.StatusInternalServerError, "Something went wrong while booking room")
	}

	var user models.User
	var room models.Room
	_ = database.DB.First(&user, "id = ?", booking.UserID).Error
	_ = database.DB.First(&room, "id = ?", booking.RoomID).Error
	go notifications.SendEmail(
		user.FullName,
		user.Email,
		"Your Booking is Confirmed!",
		fmt.Sprintf("<h1>Booking Confirmed</h1><p>Room %s is reserved for you from %s to %s.</p>",
			room.RoomNo,
			booking.CheckInDate.Format("January 2, 2006"),
			booking.CheckOutDate.Format("January 2, 2006")),
	)

	return utils.Respond(c, fiber.StatusCreated, booking, "Room booked successfully")
}

func CancelBooking(c *fiber.Ctx) error {
	roomID, err := uuid.Parse(c.Params("roomId"))
	if err != nil {
		return utils.RespondError(c, fiber.StatusBadRequest, "Booking id and room id is required")
	}
	bookingID, err := uuid.Parse(c.Params("bookingId"))
	if err != nil {
		return utils.RespondError(c, fiber.StatusBadRequest, "Booking id and room id is required")
	}

	booking, err := services.CancelBooking(database.DB, roomID, bookingID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrRoomNotFound),
			errors.Is(err, services.ErrBookingNotFound):
			return utils.RespondError(c, fiber.StatusNotFound, err.Error())
		}
		return utils.RespondError(c, fiber.StatusInternalServerError, "Something went wrong while cancelling booking")
	}

	go notifications.SendEmail(
		booking.User.FullName,
		booking.User.Email,
		"Your Booking Has Been Cancelled",
		"<h1>Booking Cancelled</h1><p>Your booking has been cancelled and no charges apply.</p>",
	)

	return utils.Respond(c, fiber.StatusOK, fiber.Map{}, "Booking cancelled successfully")
}

func GetBookingHistory(c *fiber.Ctx) error {
	userID := currentUserID(c)

	history, err := services.BookingHistory(database.DB, userID)
	if err != nil {
		return utils.RespondError(c, fiber.StatusInternalServerError, "Something went wrong while fetching bookings")
	}

	return utils.Respond(c, fiber.StatusOK, history, "Bookings fetched successfully")
}

func CompletePastBookings(c *fiber.Ctx) error {
	count, err := services.CompletePastBookings(database.DB)
	if err != nil {
		return utils.RespondError(c, fiber.StatusInternalServerError, "Something went wrong while completing bookings")
	}

	return utils.Respond(c, fiber.StatusOK, fiber.Map{"modifiedCount": count}, "Bookings marked as completed successfully")
}

func GetRoomOccupiedDates(c *fiber.Ctx) error {
	roomID, err := uuid.Parse(c.Params("roomId"))
	if err != nil {
		return utils.RespondError(c, fiber.StatusBadRequest, "Room id is required")
	}

	ranges, err := services.OccupiedDates(database.DB, roomID)
	if err != nil {
		return utils.RespondError(c, fiber.StatusInternalServerError, "Something went wrong while fetching room occupied dates")
	}

	return utils.Respond(c, fiber.StatusOK, ranges, "Room occupied dates fetched successfully")
}

func UpdateRoomsStatus(c *fiber.Ctx) error {
	rooms, err := services.ReconcileRoomStatuses(database.DB)
	if err != nil {
		return utils.RespondError(c, fiber.StatusInternalServerError, "Something went wrong while updating rooms status")
	}

	return utils.Respond(c, fiber.StatusOK, rooms, "Rooms status updated successfully")
}

func GetBookingReceipt(c *fiber.Ctx) error {
	bookingID, err := uuid.Parse(c.Params("bookingId"))
	if err != nil {
		return utils.RespondError(c, fiber.StatusBadRequest, "Booking id is required")
	}
	userID := currentUserID(c)

	receiptURL, err := services.GenerateBookingReceipt(database.DB, bookingID, userID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrBookingNotFound):
			return utils.RespondError(c, fiber.StatusNotFound, err.Error())
		case errors.Is(err, services.ErrNotBookingOwner):
			return utils.RespondError(c, fiber.StatusUnauthorized, err.Error())
		case errors.Is(err, services.ErrBookingNotActive):
			return utils.RespondError(c, fiber.StatusBadRequest, err.Error())
		}
		return utils.RespondError(c, fiber.StatusInternalServerError, "Something went wrong while generating receipt")
	}

	return utils.Respond(c, fiber.StatusOK, fiber.Map{"receiptUrl": receiptURL}, "Receipt generated successfully")
}
