package handler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/rsoguitar/api/internal/model"
	"github.com/rsoguitar/api/internal/service"
	"github.com/rsoguitar/api/pkg/response"
)

type CAGEDHandler struct {
	service        *service.CAGEDService
	validator      *validator.Validate
	defaultMaxFret int
}

func NewCAGEDHandler(svc *service.CAGEDService, v *validator.Validate, defaultMaxFret int) *CAGEDHandler {
	return &CAGEDHandler{
		service:        svc,
		validator:      v,
		defaultMaxFret: defaultMaxFret,
	}
}

// Shapes handles POST /api/caged/shapes
func (h *CAGEDHandler) Shapes(c *fiber.Ctx) error {
	var req model.CAGEDRequest
	if err := c.BodyParser(&req); err != nil {
		return response.ValidationError(c, "Invalid request body", nil)
	}
	if req.MaxFret == 0 {
		req.MaxFret = h.defaultMaxFret
	}

	if err := h.validator.Struct(&req); err != nil {
		return response.ValidationError(c, "Validation failed", formatValidationErrors(err))
	}

	result, err := h.service.Shapes(c.Context(), &req)
	if err != nil {
		return response.EngineError(c, err.Error())
	}

	return response.OK(c, result)
}
