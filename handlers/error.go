package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/parts-pile/vehicles/vehicle"
)

// ErrorResponse is the body of every error reply.
type ErrorResponse struct {
	Error string `json:"error"`
}

// CustomErrorHandler maps errors returned by handlers to JSON error replies.
func CustomErrorHandler(ctx *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := err.Error()

	var (
		fe *fiber.Error
		ve *vehicle.ValidationError
		nf *vehicle.NotFoundError
	)
	switch {
	case errors.As(err, &ve):
		code = fiber.StatusBadRequest
	case errors.As(err, &nf):
		code = fiber.StatusNotFound
	case errors.As(err, &fe):
		code = fe.Code
		message = fe.Message
	}

	if code >= fiber.StatusInternalServerError {
		log.Printf("[api] %s %s: %v", ctx.Method(), ctx.OriginalURL(), err)
	}

	return ctx.Status(code).JSON(ErrorResponse{Error: message})
}
