package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/visheshkakadiya/hotel-management/handlers"
	"github.com/visheshkakadiya/hotel-management/middleware"
)

func RoomRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	rooms := api.Group("/rooms", middleware.Protected())
	rooms.Get("/all-rooms", handlers.GetRooms)
	rooms.Get("/room/:roomId", handlers.GetRoomByID)

	rooms.Post("/create-room", middleware.AdminRequired(), handlers.CreateRoom)
	rooms.Patch("/update-room/:roomId", middleware.AdminRequired(), handlers.UpdateRoom)
	rooms.Delete("/delete-room/:roomId", middleware.AdminRequired(), handlers.DeleteRoom)
}
