package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/synapse-hq/synapse/api/http/presenter"
	"github.com/synapse-hq/synapse/pkg/onboarding"
)

type OnboardingHandler struct {
	useCase onboarding.UseCase
}

func NewOnboardingHandler(useCase onboarding.UseCase) *OnboardingHandler {
	return &OnboardingHandler{useCase: useCase}
}

// Status reports onboarding flags, the next step and dashboard access.
// @Summary  Onboarding status
// @Tags     onboarding
// @Produce  json
// @Security BearerAuth
// @Success  200 {object} onboarding.Status
// @Router   /onboarding [get]
func (h *OnboardingHandler) Status(c *fiber.Ctx) error {
	uid, err := currentUser(c)
	if err != nil {
		return writeError(c, err, "")
	}
	st, err := h.useCase.Status(c.Context(), uid)
	if err != nil {
		return writeError(c, err, "failed to load onboarding status")
	}
	return presenter.JSON(c, http.StatusOK, st)
}

// CompleteStep marks one onboarding step as done.
// @Summary  Complete onboarding step
// @Tags     onboarding
// @Produce  json
// @Security BearerAuth
// @Param    step path string true "linkedin | resume | video | completed"
// @Success  200 {object} onboarding.Status
// @Failure  400 {object} presenter.ErrorResponse
// @Failure  409 {object} presenter.ErrorResponse
// @Router   /onboarding/steps/{step} [post]
func (h *OnboardingHandler) CompleteStep(c *fiber.Ctx) error {
	uid, err := currentUser(c)
	if err != nil {
		return writeError(c, err, "")
	}
	step, err := onboarding.ParseStep(c.Params("step"))
	if err != nil {
		return writeError(c, err, "")
	}
	st, err := h.useCase.CompleteStep(c.Context(), uid, step)
	if err != nil {
		return writeError(c, err, "failed to update onboarding")
	}
	return presenter.JSON(c, http.StatusOK, st)
}
