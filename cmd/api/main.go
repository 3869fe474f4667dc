package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/robfig/cron/v3"
	config "github.com/visheshkakadiya/hotel-management/configs"
	"github.com/visheshkakadiya/hotel-management/database"
	"github.com/visheshkakadiya/hotel-management/jobs"
	"github.com/visheshkakadiya/hotel-management/notifications"
	"github.com/visheshkakadiya/hotel-management/routes"
	"github.com/visheshkakadiya/hotel-management/utils"
)

func main() {
	database.ConnectDB()
	database.Migrate()
	database.SeedAdmin()
	notifications.InitEmailService()

	// The booking endpoints also run these transitions on demand; the
	// cron keeps status fields fresh between client visits.
	c := cron.New()
	c.AddFunc("*/10 * * * *", jobs.CompleteElapsedStays)
	c.AddFunc("*/10 * * * *", jobs.ReconcileRoomOccupancy)
	go c.Start()
	log.Println("✅ Cron jobs for booking reconciliation scheduled successfully.")

	app := fiber.New(fiber.Config{
		AppName:       "Hotel Management",
		CaseSensitive: true,
		StrictRouting: true,
		ReadTimeout:   15 * time.Second,
		WriteTimeout:  15 * time.Second,
		IdleTimeout:   60 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}

			log.Printf("[ERROR] %v | Path: %s | Method: %s", err, c.Path(), c.Method())
			return utils.RespondError(c, code, "Something went wrong")
		},
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     config.Config("CORS_ORIGIN"),
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	routes.AuthRoutes(app)
	routes.RoomRoutes(app)
	routes.BookingRoutes(app)
	routes.CustomerRoutes(app)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
		})
	})

	port := config.Config("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("✅ Server is running on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("🔥 Server failed to start: %v", err)
	}
}
