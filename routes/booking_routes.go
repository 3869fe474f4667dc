package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/visheshkakadiya/hotel-management/handlers"
	"github.com/visheshkakadiya/hotel-management/middleware"
)

func BookingRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	bookings := api.Group("/bookings", middleware.Protected())
	bookings.Post("/book-room/:roomId", handlers.BookRoom)
	bookings.Patch("/cancel-booking/:roomId/:bookingId", handlers.CancelBooking)
	bookings.Get("/booking-history", handlers.GetBookingHistory)
	bookings.Patch("/complete-past-bookings", handlers.CompletePastBookings)
	bookings.Get("/occupied-dates/:roomId", handlers.GetRoomOccupiedDates)
	bookings.Patch("/update-rooms-status", handlers.UpdateRoomsStatus)
	bookings.Get("/receipt/:bookingId", handlers.GetBookingReceipt)
}
