package handlers

import (
	"errors"

	"github.com/HirokiTakaya/Dine-Saver-Web/internal/apperrors"
	"github.com/gofiber/fiber/v2"
)

// ErrorResponse is the JSON error body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ErrorHandler maps typed failures to HTTP statuses: validation 400,
// auth 401, not-found 404, and everything else, upstream failures
// included, 500.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := err.Error()

	var appErr *apperrors.Error
	var fiberErr *fiber.Error

	switch {
	case errors.As(err, &appErr):
		switch appErr.Kind {
		case apperrors.Validation:
			code = fiber.StatusBadRequest
		case apperrors.Auth:
			code = fiber.StatusUnauthorized
		case apperrors.NotFound:
			code = fiber.StatusNotFound
		}
		message = appErr.Message
	case errors.As(err, &fiberErr):
		code = fiberErr.Code
		message = fiberErr.Message
	}

	return c.Status(code).JSON(ErrorResponse{Error: message})
}
