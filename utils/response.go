package utils

import (
	"github.com/gofiber/fiber/v2"
)

type ApiResponse struct {
	StatusCode int         `json:"statusCode"`
	Data       interface{} `json:"data"`
	Message    string      `json:"message"`
	Success    bool        `json:"success"`
}

type ApiError struct {
	StatusCode int      `json:"statusCode"`
	Message    string   `json:"message"`
	Errors     []string `json:"errors"`
	Success    bool     `json:"success"`
}

func Respond(c *fiber.Ctx, statusCode int, data interface{}, message string) error {
	return c.Status(statusCode).JSON(ApiResponse{
		StatusCode: statusCode,
		Data:       data,
		Message:    message,
		Success:    true,
	})
}

func RespondError(c *fiber.Ctx, statusCode int, message string, errs ...string) error {
	if errs == nil {
		errs = []string{}
	}
	return c.Status(statusCode).JSON(ApiError{
		StatusCode: statusCode,
		Message:    message,
		Errors:     errs,
		Success:    false,
	})
}
