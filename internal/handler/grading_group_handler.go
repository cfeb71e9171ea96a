package handler

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/aksara-labs/gradewise-api/internal/dto"
	"github.com/aksara-labs/gradewise-api/internal/service"
	"github.com/aksara-labs/gradewise-api/internal/utils"
)

// GradingGroupHandler exposes the canonical grading group listing.
type GradingGroupHandler struct {
	service   service.GradingGroupService
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewGradingGroupHandler creates a new handler instance.
func NewGradingGroupHandler(service service.GradingGroupService, validator *validator.Validate, logger zerolog.Logger) *GradingGroupHandler {
	return &GradingGroupHandler{
		service:   service,
		validator: validator,
		logger:    logger.With().Str("component", "grading_group_handler").Logger(),
	}
}

// Register attaches the listing endpoint.
func (h *GradingGroupHandler) Register(router fiber.Router) {
	router.Get("/", h.listCanonical)
}

func (h *GradingGroupHandler) listCanonical(c *fiber.Ctx) error {
	request := dto.GroupListRequest{Semester: strings.TrimSpace(c.Query("semester"))}
	if err := h.validator.Struct(request); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid semester filter")
	}

	groups, err := h.service.ListCanonical(c.Context(), request.Semester)
	if err != nil {
		h.logger.Error().Err(err).Str("semester", request.Semester).Msg("failed to list grading groups")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to list grading groups")
	}

	return utils.SendSuccess(c, "grading groups retrieved", groups)
}
