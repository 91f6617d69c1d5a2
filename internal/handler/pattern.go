package handler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/rsoguitar/api/internal/model"
	"github.com/rsoguitar/api/internal/service"
	"github.com/rsoguitar/api/pkg/response"
)

type PatternHandler struct {
	service        *service.PatternService
	validator      *validator.Validate
	defaultMaxFret int
}

func NewPatternHandler(svc *service.PatternService, v *validator.Validate, defaultMaxFret int) *PatternHandler {
	return &PatternHandler{
		service:        svc,
		validator:      v,
		defaultMaxFret: defaultMaxFret,
	}
}

// Spiral handles POST /api/patterns/spiral
func (h *PatternHandler) Spiral(c *fiber.Ctx) error {
	var req model.SpiralRequest
	if err := c.BodyParser(&req); err != nil {
		return response.ValidationError(c, "Invalid request body", nil)
	}
	if req.MaxFret == 0 {
		req.MaxFret = h.defaultMaxFret
	}

	if err := h.validator.Struct(&req); err != nil {
		return response.ValidationError(c, "Validation failed", formatValidationErrors(err))
	}

	result, err := h.service.Spiral(c.Context(), &req)
	if err != nil {
		return response.EngineError(c, err.Error())
	}

	return response.OK(c, result)
}

// Jumping handles POST /api/patterns/jumping
func (h *PatternHandler) Jumping(c *fiber.Ctx) error {
	var req model.JumpingRequest
	if err := c.BodyParser(&req); err != nil {
		return response.ValidationError(c, "Invalid request body", nil)
	}
	if req.MaxFret == 0 {
		req.MaxFret = h.defaultMaxFret
	}

	if err := h.validator.Struct(&req); err != nil {
		return response.ValidationError(c, "Validation failed", formatValidationErrors(err))
	}

	result, err := h.service.Jumping(c.Context(), &req)
	if err != nil {
		return response.EngineError(c, err.Error())
	}

	return response.OK(c, result)
}

// Family handles POST /api/patterns/chords
func (h *PatternHandler) Family(c *fiber.Ctx) error {
	var req model.FamilyRequest
	if err := c.BodyParser(&req); err != nil {
		return response.ValidationError(c, "Invalid request body", nil)
	}
	if req.MaxFret == 0 {
		req.MaxFret = h.defaultMaxFret
	}

	if err := h.validator.Struct(&req); err != nil {
		return response.ValidationError(c, "Validation failed", formatValidationErrors(err))
	}

	result, err := h.service.Family(c.Context(), &req)
	if err != nil {
		return response.EngineError(c, err.Error())
	}

	return response.OK(c, result)
}

// Hierarchy handles POST /api/patterns/hierarchy
func (h *PatternHandler) Hierarchy(c *fiber.Ctx) error {
	var req model.HierarchyRequest
	if err := c.BodyParser(&req); err != nil {
		return response.ValidationError(c, "Invalid request body", nil)
	}
	if req.MaxFret == 0 {
		req.MaxFret = h.defaultMaxFret
	}

	if err := h.validator.Struct(&req); err != nil {
		return response.ValidationError(c, "Validation failed", formatValidationErrors(err))
	}

	result, err := h.service.Hierarchy(c.Context(), &req)
	if err != nil {
		return response.EngineError(c, err.Error())
	}

	return response.OK(c, result)
}

// ModeShape handles POST /api/patterns/modes
func (h *PatternHandler) ModeShape(c *fiber.Ctx) error {
	var req model.ModeShapeRequest
	if err := c.BodyParser(&req); err != nil {
		return response.ValidationError(c, "Invalid request body", nil)
	}
	if req.MaxFret == 0 {
		req.MaxFret = h.defaultMaxFret
	}

	if err := h.validator.Struct(&req); err != nil {
		return response.ValidationError(c, "Validation failed", formatValidationErrors(err))
	}

	result, err := h.service.ModeShape(c.Context(), &req)
	if err != nil {
		return response.EngineError(c, err.Error())
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
