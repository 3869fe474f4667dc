package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/visheshkakadiya/hotel-management/database"
	"github.com/visheshkakadiya/hotel-management/models"
	"github.com/visheshkakadiya/hotel-management/utils"
)

func GetAllCustomers(c *fiber.Ctx) error {
	var users []models.User
	if err := database.DB.Find(&users).Error; err != nil {
		return utils.RespondError(c, fiber.StatusInternalServerError, "Something went wrong while getting users")
	}

	return utils.Respond(c, fiber.StatusOK, users, "Users fetched successfully")
}
