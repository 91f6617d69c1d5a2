package handler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/rsoguitar/api/internal/model"
	"github.com/rsoguitar/api/internal/service"
	"github.com/rsoguitar/api/pkg/response"
)

type BlockHandler struct {
	service        *service.BlockService
	validator      *validator.Validate
	defaultMaxFret int
}

func NewBlockHandler(svc *service.BlockService, v *validator.Validate, defaultMaxFret int) *BlockHandler {
	return &BlockHandler{
		service:        svc,
		validator:      v,
		defaultMaxFret: defaultMaxFret,
	}
}

// Search handles POST /api/blocks/search
func (h *BlockHandler) Search(c *fiber.Ctx) error {
	var req model.BlockSearchRequest
	if err := c.BodyParser(&req); err != nil {
		return response.ValidationError(c, "Invalid request body", nil)
	}
	if req.MaxFret == 0 {
		req.MaxFret = h.defaultMaxFret
	}

	if err := h.validator.Struct(&req); err != nil {
		return response.ValidationError(c, "Validation failed", formatValidationErrors(err))
	}

	block, err := h.service.Search(c.Context(), &req)
	if err != nil {
		if err.Error() == "no block found" {
			return response.NotFound(c, "No block anchors at this position")
		}
		return response.EngineError(c, err.Error())
	}

	return response.OK(c, model.BlockSearchResponse{Block: block})
}

// Reanchor handles POST /api/blocks/reanchor
func (h *BlockHandler) Reanchor(c *fiber.Ctx) error {
	var req model.ReanchorRequest
	if err := c.BodyParser(&req); err != nil {
		return response.ValidationError(c, "Invalid request body", nil)
	}
	if req.MaxFret == 0 {
		req.MaxFret = h.defaultMaxFret
	}

	if err := h.validator.Struct(&req); err != nil {
		return response.ValidationError(c, "Validation failed", formatValidationErrors(err))
	}

	result, err := h.service.Reanchor(c.Context(), &req)
	if err != nil {
		return response.EngineError(c, err.Error())
	}

	return response.OK(c, result)
}
