package handlers

import (
	"context"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/synapse-hq/synapse/api/http/presenter"
	"github.com/synapse-hq/synapse/pkg/linkedin"
)

type LinkedinValidator interface {
	Validate(ctx context.Context, raw string) (linkedin.Result, error)
}

type LinkedinHandler struct {
	validator LinkedinValidator
}

func NewLinkedinHandler(v LinkedinValidator) *LinkedinHandler {
	return &LinkedinHandler{validator: v}
}

type validateLinkedinRequest struct {
	URL string `json:"url"`
}

// Validate checks a LinkedIn profile URL and returns the display name.
// User mistakes come back as 200 with valid=false and a reason.
// @Summary Validate LinkedIn URL
// @Tags    linkedin
// @Accept  json
// @Produce json
// @Param   input body validateLinkedinRequest true "profile url"
// @Success 200 {object} linkedin.Result
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /linkedin/validate [post]
func (h *LinkedinHandler) Validate(c *fiber.Ctx) error {
	var req validateLinkedinRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	res, err := h.validator.Validate(c.Context(), req.URL)
	if err != nil {
		return writeError(c, err, "failed to validate profile")
	}
	return presenter.JSON(c, http.StatusOK, res)
}
