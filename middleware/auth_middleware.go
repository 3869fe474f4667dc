package middleware

import (
	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v3"
	"github.com/golang-jwt/jwt/v4"
	config "github.com/visheshkakadiya/hotel-management/configs"
	"github.com/visheshkakadiya/hotel-management/models"
	"github.com/visheshkakadiya/hotel-management/utils"
)

// Protected verifies the access token from the Authorization header or
// the accessToken cookie (browser clients use the cookie).
func Protected() fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:   []byte(config.Config("JWT_SECRET")),
		TokenLookup:  "header:Authorization,cookie:accessToken",
		AuthScheme:   "Bearer",
		ErrorHandler: jwtError,
	})
}

func jwtError(c *fiber.Ctx, err error) error {
	return utils.RespondError(c, fiber.StatusUnauthorized, "Invalid or expired token")
}

func AdminRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Locals("user").(*jwt.Token)
		claims := token.Claims.(jwt.MapClaims)
		role, _ := claims["role"].(string)

		if role != models.RoleAdmin {
			return utils.RespondError(c, fiber.StatusUnauthorized, "you are not authorized to perform this action")
		}
		return c.Next()
	}
}
