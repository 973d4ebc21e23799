package handler

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/roastify/api/internal/model"
	"github.com/roastify/api/internal/service"
	"github.com/roastify/api/pkg/response"
)

type RoastHandler struct {
	service   *service.RoastService
	validator *validator.Validate
}

func NewRoastHandler(svc *service.RoastService, v *validator.Validate) *RoastHandler {
	return &RoastHandler{
		service:   svc,
		validator: v,
	}
}

// Generate handles POST /api/roast. The body carries the single-use Spotify
// authorization code; the response is the full roast payload or one opaque
// error body. Callers never see upstream details.
func (h *RoastHandler) Generate(c *fiber.Ctx) error {
	var req model.RoastRequest
	if err := c.BodyParser(&req); err != nil {
		return response.ValidationError(c, "Invalid request body", nil)
	}

	if err := h.validator.Struct(&req); err != nil {
		return response.ValidationError(c, "Validation failed", formatValidationErrors(err))
	}

	result, err := h.service.GenerateRoast(c.Context(), req.Code)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAuthFailed):
			return response.AuthFailed(c, "Spotify authentication failed, please log in again")
		case errors.Is(err, service.ErrInsufficientData):
			return response.InsufficientData(c, "Not enough listening history to roast")
		case errors.Is(err, service.ErrSpotifyUnavailable):
			return response.UpstreamError(c, "Spotify is not responding")
		case errors.Is(err, service.ErrAIGeneration):
			return response.AIError(c, "Roast generation failed")
		default:
			return response.ServiceError(c, "Internal server error")
		}
	}

	return response.OK(c, result)
}

// formatValidationErrors formats validator errors for response
func formatValidationErrors(err error) interface{} {
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		errors := make(map[string]string)
		for _, e := range validationErrors {
			errors[e.Field()] = e.Tag()
		}
		return errors
	}
	return nil
}
