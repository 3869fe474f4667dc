package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/visheshkakadiya/hotel-management/handlers"
	"github.com/visheshkakadiya/hotel-management/middleware"
)

func CustomerRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	customers := api.Group("/customers", middleware.Protected(), middleware.AdminRequired())
	customers.Get("", handlers.GetAllCustomers)
}
