package handlers

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	config "github.com/visheshkakadiya/hotel-management/configs"
	"github.com/visheshkakadiya/hotel-management/database"
	"github.com/visheshkakadiya/hotel-management/models"
	"github.com/visheshkakadiya/hotel-management/services"
	"github.com/visheshkakadiya/hotel-management/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var validate = validator.New()

type RegisterRequest struct {
	FullName      string `form:"fullName" validate:"required,min=3"`
	Email         string `form:"email" validate:"required,email"`
	Password      string `form:"password" validate:"required,min=6"`
	ContactNumber string `form:"contactNumber" validate:"required"`
	Address       string `form:"address" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UpdateProfileRequest struct {
	FullName      string `json:"fullName" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	ContactNumber string `json:"contactNumber" validate:"required"`
	Address       string `json:"address" validate:"required"`
}

func RegisterUser(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.RespondError(c, fiber.StatusBadRequest, "Cannot parse form")
	}
	if err := validate.Struct(req); err != nil {
		return utils.RespondError(c, fiber.StatusBadRequest, "All fields are required", err.Error())
	}

	var existing models.User
	if err := database.DB.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return utils.RespondError(c, fiber.StatusBadRequest, "User already exists")
	}

	avatarFile, err := c.FormFile("avatar")
	if err != nil {
		return utils.RespondError(c, fiber.StatusBadRequest, "Avatar is required")
	}

	avatar, err := services.UploadImage(avatarFile)
	if err != nil {
		return utils.RespondError(c, fiber.StatusInternalServerError, "Something went wrong while uploading avatar")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return utils.RespondError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	user := models.User{
		FullName:       req.FullName,
		Email:          req.Email,
		Password:       string(hashedPassword),
		ContactNumber:  req.ContactNumber,
		Address:        req.Address,
		Role:           models.RoleUser,
		AvatarURL:      avatar.URL,
		AvatarPublicID: avatar.PublicID,
	}
	if err := database.DB.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return utils.RespondError(c, fiber.StatusBadRequest, "User already exists")
		}
		return utils.RespondError(c, fiber.StatusInternalServerError, "Something went wrong while registering user")
	}

	return utils.Respond(c, fiber.StatusCreated, user, "User registered successfully")
}

func LoginUser(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.RespondError(c, fiber.StatusBadRequest, "Cannot parse JSON")
	}
	if err := validate.Struct(req); err != nil {
		return utils.RespondError(c, fiber.StatusBadRequest, "All fields are required", err.Error())
	}

	var user models.User
	if err := database.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		return utils.RespondError(c, fiber.StatusBadRequest, "User not found")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return utils.RespondError(c, fiber.StatusBadRequest, "Invalid credentials")
	}

	claims := jwt.MapClaims{
		"user_id": user.ID.String(),
		"role":    user.Role,
		"exp":     time.Now().Add(time.Hour * 72).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	t, err := token.SignedString([]byte(config.Config("JWT_SECRET")))
	if err != nil {
		return utils.RespondError(c, fiber.StatusInternalServerError, "Failed to create token")
	}

	c.Cookie(&fiber.Cookie{
		Name:     "accessToken",
		Value:    t,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
		Expires:  time.Now().Add(7 * 24 * time.Hour),
	})

	return utils.Respond(c, fiber.StatusOK, fiber.Map{"user": user, "accessToken": t}, "User logged in successfully")
}

func LogoutUser(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "accessToken",
		Value:    "",
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
		Expires:  time.Now().Add(-time.Hour),
	})

	return utils.Respond(c, fiber.StatusOK, fiber.Map{}, "User logged out successfully")
}

func Me(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		return utils.RespondError(c, fiber.StatusNotFound, "User not found")
	}

	return utils.Respond(c, fiber.StatusOK, user, "User details fetched successfully")
}

func UpdateProfile(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var req UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.RespondError(c, fiber.StatusBadRequest, "Cannot parse JSON")
	}
	if err := validate.Struct(req); err != nil {
		return utils.RespondError(c, fiber.StatusBadRequest, "All fields are required", err.Error())
	}

	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		return utils.RespondError(c, fiber.StatusNotFound, "User not found")
	}

	if err := database.DB.Model(&user).Updates(map[string]interface{}{
		"full_name":      req.FullName,
		"email":          req.Email,
		"contact_number": req.ContactNumber,
		"address":        req.Address,
	}).Error; err != nil {
		return utils.RespondError(c, fiber.StatusInternalServerError, "Something went wrong while updating profile")
	}

	return utils.Respond(c, fiber.StatusOK, user, "User profile updated successfully")
}

// currentUserID pulls the caller's id out of the verified JWT. The
// middleware guarantees the token and claims are present.
func currentUserID(c *fiber.Ctx) uuid.UUID {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	userID, _ := uuid.Parse(claims["user_id"].(string))
	return userID
}
