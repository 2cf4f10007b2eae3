package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/synapse-hq/synapse/api/http/presenter"
	"github.com/synapse-hq/synapse/pkg/profile"
)

type AssessmentHandler struct {
	useCase profile.UseCase
}

func NewAssessmentHandler(useCase profile.UseCase) *AssessmentHandler {
	return &AssessmentHandler{useCase: useCase}
}

type assessmentResponse struct {
	Answers *profile.AssessmentAnswers `json:"answers"`
}

// Get returns the stored assessment answers (null when not answered yet).
// @Summary  Get assessment
// @Tags     assessment
// @Produce  json
// @Security BearerAuth
// @Success  200 {object} assessmentResponse
// @Router   /assessment [get]
func (h *AssessmentHandler) Get(c *fiber.Ctx) error {
	uid, err := currentUser(c)
	if err != nil {
		return writeError(c, err, "")
	}
	answers, err := h.useCase.GetAssessment(c.Context(), uid)
	if err != nil {
		return writeError(c, err, "failed to load assessment")
	}
	return presenter.JSON(c, http.StatusOK, assessmentResponse{Answers: answers})
}

// Save replaces the assessment answers and marks the assessment completed.
// @Summary  Save assessment
// @Tags     assessment
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    input body profile.AssessmentAnswers true "answers"
// @Success  200 {object} assessmentResponse
// @Failure  400 {object} presenter.ErrorResponse
// @Router   /assessment [put]
func (h *AssessmentHandler) Save(c *fiber.Ctx) error {
	uid, err := currentUser(c)
	if err != nil {
		return writeError(c, err, "")
	}
	var req profile.AssessmentAnswers
	if err := c.BodyParser(&req); err != nil {
		return writeError(c, errInvalidPayload, "")
	}
	if err := h.useCase.SaveAssessment(c.Context(), uid, req); err != nil {
		return writeError(c, err, "failed to save assessment")
	}
	return presenter.JSON(c, http.StatusOK, assessmentResponse{Answers: &req})
}
