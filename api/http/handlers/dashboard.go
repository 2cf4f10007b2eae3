package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/synapse-hq/synapse/api/http/presenter"
	"github.com/synapse-hq/synapse/pkg/dashboard"
)

type DashboardHandler struct {
	useCase dashboard.UseCase
}

func NewDashboardHandler(useCase dashboard.UseCase) *DashboardHandler {
	return &DashboardHandler{useCase: useCase}
}

// Get returns the dashboard; a limited view until onboarding is done.
// @Summary  Dashboard
// @Tags     dashboard
// @Produce  json
// @Security BearerAuth
// @Success  200 {object} dashboard.View
// @Router   /dashboard [get]
func (h *DashboardHandler) Get(c *fiber.Ctx) error {
	uid, err := currentUser(c)
	if err != nil {
		return writeError(c, err, "")
	}
	v, err := h.useCase.Get(c.Context(), uid)
	if err != nil {
		return writeError(c, err, "failed to load dashboard")
	}
	return presenter.JSON(c, http.StatusOK, v)
}
