package handlers

import (
	"errors"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/visheshkakadiya/hotel-management/database"
	"github.com/visheshkakadiya/hotel-management/models"
	"github.com/visheshkakadiya/hotel-management/services"
	"github.com/visheshkakadiya/hotel-management/utils"
	"gorm.io/gorm"
)

type RoomRequest struct {
	RoomNo   string `form:"roomNo" validate:"required"`
	RoomType string `form:"roomType" validate:"required,oneof=standard deluxe luxury"`
	Status   string `form:"status" validate:"omitempty,oneof=available maintenance occupied"`
	Price    string `form:"price" validate:"required"`
	Capacity string `form:"capacity" validate:"required"`
}

func CreateRoom(c *fiber.Ctx) error {
	var req RoomRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.RespondError(c, fiber.StatusBadRequest, "Cannot parse form")
	}
	if err := validate.Struct(req); err != nil {
		return utils.RespondError(c, fiber.StatusBadRequest, "All fields are required", err.Error())
	}

	price, err := strconv.ParseFloat(req.Price, 64)
	if err != nil || price < 0 {
		return utils.RespondError(c, fiber.StatusBadRequest, "Price must be a non-negative number")
	}
	capacity, err := strconv.Atoi(req.Capacity)
	if err != nil || capacity < 0 {
		return utils.RespondError(c, fiber.StatusBadRequest, "Capacity must be a non-negative number")
	}

	imageFile, err := c.FormFile("roomImage")
	if err != nil {
		return utils.RespondError(c, fiber.StatusBadRequest, "Room image is required")
	}

	image, err := services.UploadImage(imageFile)
	if err != nil {
		return utils.RespondError(c, fiber.StatusInternalServerError, "Something went wrong while uploading room image")
	}

	status := req.Status
	if status == "" {
		status = models.RoomStatusMaintenance
	}

	room := models.Room{
		RoomNo:            req.RoomNo,
		RoomType:          req.RoomType,
		RoomImageURL:      image.URL,
		RoomImagePublicID: image.PublicID,
		Status:            status,
		Price:             price,
		Capacity:          capacity,
	}
	if err := database.DB.Create(&room).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return utils.RespondError(c, fiber.StatusBadRequest, "Room with this number already exists")
		}
		return utils.RespondError(c, fiber.StatusInternalServerError, "Something went wrong while creating room")
	}

	return utils.Respond(c, fiber.StatusCreated, room, "Room created successfully")
}

func GetRooms(c *fiber.Ctx) error {
	var rooms []models.Room
	if err := database.DB.Find(&rooms).Error; err != nil {
		return utils.RespondError(c, fiber.StatusInternalServerError, "Something went wrong while getting rooms")
	}

	return utils.Respond(c, fiber.StatusOK, rooms, "Rooms fetched successfully")
}

func GetRoomByID(c *fiber.Ctx) error {
	roomID, err := uuid.Parse(c.Params("roomId"))
	if err != nil {
		return utils.RespondError(c, fiber.StatusBadRequest, "Room id is required")
	}
	userID := currentUserID(c)

	var room models.Room
	if err := database.DB.First(&room, "id = ?", roomID).Error; err != nil {
		return utils.RespondError(c, fiber.StatusNotFound, "Room not found")
	}

	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		return utils.RespondError(c, fiber.StatusNotFound, "User not found")
	}

	return utils.Respond(c, fiber.StatusOK, fiber.Map{"room": room, "user": user}, "Room fetched successfully")
}

func UpdateRoom(c *fiber.Ctx) error {
	roomID, err := uuid.Parse(c.Params("roomId"))
	if err != nil {
		return utils.RespondError(c, fiber.StatusBadRequest, "Room id is required")
	}

	var req RoomRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.RespondError(c, fiber.StatusBadRequest, "Cannot parse form")
	}
	if err := validate.Struct(req); err != nil {
		return utils.RespondError(c, fiber.StatusBadRequest, "All fields are required", err.Error())
	}

	price, err := strconv.ParseFloat(req.Price, 64)
	if err != nil || price < 0 {
		return utils.RespondError(c, fiber.StatusBadRequest, "Price must be a non-negative number")
	}
	capacity, err := strconv.Atoi(req.Capacity)
	if err != nil || capacity < 0 {
		return utils.RespondError(c, fiber.StatusBadRequest, "Capacity must be a non-negative number")
	}

	var room models.Room
	if err := database.DB.First(&room, "id = ?", roomID).Error; err != nil {
		return utils.RespondError(c, fiber.StatusNotFound, "Room not found")
	}

	updatedFields := map[string]interface{}{
		"room_no":   req.RoomNo,
		"room_type": req.RoomType,
		"price":     price,
		"capacity":  capacity,
	}
	if req.Status != "" {
		updatedFields["status"] = req.Status
	}

	if imageFile, ferr := c.FormFile("roomImage"); ferr == nil {
		image, uerr := services.UploadImage(imageFile)
		if uerr != nil {
			return utils.RespondError(c, fiber.StatusInternalServerError, "Something went wrong while uploading room image")
		}
		updatedFields["room_image_url"] = image.URL
		updatedFields["room_image_public_id"] = image.PublicID

		if derr := services.DeleteImage(room.RoomImagePublicID); derr != nil {
			log.Printf("Failed to delete old room image %s: %v", room.RoomImagePublicID, derr)
		}
	}

	if err := database.DB.Model(&room).Updates(updatedFields).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return utils.RespondError(c, fiber.StatusBadRequest, "Room with this number already exists")
		}
		return utils.RespondError(c, fiber.StatusInternalServerError, "Something went wrong while updating room")
	}

	return utils.Respond(c, fiber.StatusOK, room, "Room updated successfully")
}

func DeleteRoom(c *fiber.Ctx) error {
	roomID, err := uuid.Parse(c.Params("roomId"))
	if err != nil {
		return utils.RespondError(c, fiber.StatusBadRequest, "Room id is required")
	}

	var room models.Room
	if err := database.DB.First(&room, "id = ?", roomID).Error; err != nil {
		return utils.RespondError(c, fiber.StatusNotFound, "Room not found")
	}

	if err := database.DB.Delete(&room).Error; err != nil {
		return utils.RespondError(c, fiber.StatusInternalServerError, "Something went wrong while deleting room")
	}

	if err := services.DeleteImage(room.RoomImagePublicID); err != nil {
		log.Printf("Failed to delete room image %s: %v", room.RoomImagePublicID, err)
	}

	return utils.Respond(c, fiber.StatusOK, fiber.Map{}, "Room deleted successfully")
}
