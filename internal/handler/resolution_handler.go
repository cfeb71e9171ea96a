package handler

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/aksara-labs/gradewise-api/internal/dto"
	"github.com/aksara-labs/gradewise-api/internal/service"
	"github.com/aksara-labs/gradewise-api/internal/utils"
)

// ResolutionHandler exposes resolved grades over HTTP for table, export,
// and dashboard consumers.
type ResolutionHandler struct {
	service   service.GradeResolutionService
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewResolutionHandler creates a new handler instance.
func NewResolutionHandler(service service.GradeResolutionService, validator *validator.Validate, logger zerolog.Logger) *ResolutionHandler {
	return &ResolutionHandler{
		service:   service,
		validator: validator,
		logger:    logger.With().Str("component", "resolution_handler").Logger(),
	}
}

// RegisterAssessmentRoutes attaches the class-assessment scoped endpoints.
func (h *ResolutionHandler) RegisterAssessmentRoutes(router fiber.Router) {
	router.Get("/:assessmentID/students/:studentID/grade", h.getAssessmentGrade)
}

// RegisterGroupRoutes attaches the grading-group scoped endpoints.
func (h *ResolutionHandler) RegisterGroupRoutes(router fiber.Router) {
	router.Get("/:groupID/students/:studentID/grade", h.getGroupGrade)
	router.Get("/:groupID/roster", h.getRoster)
}

func (h *ResolutionHandler) getAssessmentGrade(c *fiber.Ctx) error {
	assessmentID, err := parseUintParam(c, "assessmentID")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}
	studentID, err := parseUintParam(c, "studentID")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	request := dto.AssessmentGradeRequest{ClassAssessmentID: assessmentID, StudentID: studentID}
	if err := h.validator.Struct(request); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request")
	}

	resolved, err := h.service.ResolveForAssessment(c.Context(), request.ClassAssessmentID, request.StudentID)
	if err != nil {
		if errors.Is(err, service.ErrAssessmentNotFound) {
			return utils.SendError(c, fiber.StatusNotFound, "class assessment not found")
		}
		h.logger.Error().Err(err).Uint("class_assessment_id", request.ClassAssessmentID).Uint("student_id", request.StudentID).Msg("failed to resolve grade")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to resolve grade")
	}

	return utils.SendSuccess(c, "grade resolved", resolved)
}

func (h *ResolutionHandler) getGroupGrade(c *fiber.Ctx) error {
	groupID, err := parseUintParam(c, "groupID")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}
	studentID, err := parseUintParam(c, "studentID")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	request := dto.GroupGradeRequest{GradingGroupID: groupID, StudentID: studentID}
	if err := h.validator.Struct(request); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request")
	}

	resolved, err := h.service.ResolveForGroup(c.Context(), request.GradingGroupID, request.StudentID)
	if err != nil {
		if errors.Is(err, service.ErrGradingGroupNotFound) {
			return utils.SendError(c, fiber.StatusNotFound, "grading group not found")
		}
		h.logger.Error().Err(err).Uint("grading_group_id", request.GradingGroupID).Uint("student_id", request.StudentID).Msg("failed to resolve grade")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to resolve grade")
	}

	return utils.SendSuccess(c, "grade resolved", resolved)
}

func (h *ResolutionHandler) getRoster(c *fiber.Ctx) error {
	groupID, err := parseUintParam(c, "groupID")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	request := dto.RosterRequest{GradingGroupID: groupID}
	if err := h.validator.Struct(request); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request")
	}

	roster, err := h.service.ResolveRoster(c.Context(), request.GradingGroupID)
	if err != nil {
		if errors.Is(err, service.ErrGradingGroupNotFound) {
			return utils.SendError(c, fiber.StatusNotFound, "grading group not found")
		}
		h.logger.Error().Err(err).Uint("grading_group_id", request.GradingGroupID).Msg("failed to resolve roster")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to resolve roster")
	}

	return utils.SendSuccess(c, "roster resolved", roster)
}
