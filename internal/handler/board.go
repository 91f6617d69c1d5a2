package handler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/rsoguitar/api/internal/model"
	"github.com/rsoguitar/api/internal/service"
	"github.com/rsoguitar/api/pkg/response"
)

type BoardHandler struct {
	service        *service.BoardService
	validator      *validator.Validate
	defaultMaxFret int
}

func NewBoardHandler(svc *service.BoardService, v *validator.Validate, defaultMaxFret int) *BoardHandler {
	return &BoardHandler{
		service:        svc,
		validator:      v,
		defaultMaxFret: defaultMaxFret,
	}
}

// Generate handles POST /api/boards/generate
func (h *BoardHandler) Generate(c *fiber.Ctx) error {
	var req model.BoardGenerateRequest
	if err := c.BodyParser(&req); err != nil {
		return response.ValidationError(c, "Invalid request body", nil)
	}
	if req.MaxFret == 0 {
		req.MaxFret = h.defaultMaxFret
	}

	if err := h.validator.Struct(&req); err != nil {
		return response.ValidationError(c, "Validation failed", formatValidationErrors(err))
	}

	result, err := h.service.Generate(c.Context(), &req)
	if err != nil {
		return response.ServiceError(c, err.Error())
	}

	return response.Accepted(c, result)
}

// Status handles GET /api/boards/status/:jobId
func (h *BoardHandler) Status(c *fiber.Ctx) error {
	jobID := c.Params("jobId")
	if jobID == "" {
		return response.ValidationError(c, "Job ID is required", nil)
	}

	result, err := h.service.GetStatus(c.Context(), jobID)
	if err != nil {
		if err.Error() == "job not found" {
			return response.NotFound(c, "Job not found")
		}
		return response.ServiceError(c, err.Error())
	}

	return response.OK(c, result)
}

// Result handles GET /api/boards/result/:jobId
func (h *BoardHandler) Result(c *fiber.Ctx) error {
	jobID := c.Params("jobId")
	if jobID == "" {
		return response.ValidationError(c, "Job ID is required", nil)
	}

	result, err := h.service.GetResult(c.Context(), jobID)
	if err != nil {
		if err.Error() == "job not found" {
			return response.NotFound(c, "Job not found")
		}
		if err.Error() == "job not completed" {
			return response.ValidationError(c, "Job not completed yet", nil)
		}
		return response.ServiceError(c, err.Error())
	}

	return response.OK(c, result)
}
