package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/synapse-hq/synapse/api/http/presenter"
	"github.com/synapse-hq/synapse/pkg/auth"
	"github.com/synapse-hq/synapse/pkg/career"
	"github.com/synapse-hq/synapse/pkg/careerml"
	"github.com/synapse-hq/synapse/pkg/document"
	"github.com/synapse-hq/synapse/pkg/logger"
	"github.com/synapse-hq/synapse/pkg/onboarding"
	"github.com/synapse-hq/synapse/pkg/portfolio"
	"github.com/synapse-hq/synapse/pkg/profile"
	"github.com/synapse-hq/synapse/pkg/project"
	"github.com/synapse-hq/synapse/pkg/trajectory"
)

var errorStatus = []struct {
	err    error
	status int
}{
	{errUnauthenticated, http.StatusUnauthorized},
	{errInvalidID, http.StatusBadRequest},
	{errFileRequired, http.StatusBadRequest},
	{errInvalidPayload, http.StatusBadRequest},
	{auth.ErrInvalidCredentials, http.StatusUnauthorized},
	{auth.ErrNotFound, http.StatusNotFound},
	{auth.ErrUserAlreadyExists, http.StatusConflict},
	{auth.ErrInvalidName, http.StatusBadRequest},
	{onboarding.ErrUnknownStep, http.StatusBadRequest},
	{onboarding.ErrOnboardingIncomplete, http.StatusConflict},
	{profile.ErrNotFound, http.StatusNotFound},
	{profile.ErrUploadNotFound, http.StatusNotFound},
	{profile.ErrEmptyResume, http.StatusBadRequest},
	{profile.ErrInvalidData, http.StatusBadRequest},
	{document.ErrUnsupportedFormat, http.StatusBadRequest},
	{document.ErrEmpty, http.StatusBadRequest},
	{document.ErrUnreadable, http.StatusBadRequest},
	{document.ErrTooLarge, http.StatusRequestEntityTooLarge},
	{trajectory.ErrNotFound, http.StatusNotFound},
	{project.ErrNotFound, http.StatusNotFound},
	{project.ErrFeedbackNotFound, http.StatusNotFound},
	{project.ErrInvalidTransition, http.StatusConflict},
	{project.ErrValidation, http.StatusBadRequest},
	{portfolio.ErrNotFound, http.StatusNotFound},
	{portfolio.ErrAlreadyInPortfolio, http.StatusConflict},
	{portfolio.ErrProjectNotCompleted, http.StatusConflict},
	{career.ErrDreamRoleRequired, http.StatusBadRequest},
	{careerml.ErrTimeout, http.StatusGatewayTimeout},
}

// writeError maps domain errors to HTTP statuses. Unknown errors become a
// 500 carrying fallback; the cause is left for the request logger.
func writeError(c *fiber.Ctx, err error, fallback string) error {
	var apiErr *careerml.APIError
	if errors.As(err, &apiErr) {
		return presenter.Error(c, http.StatusBadGateway, apiErr.Message)
	}
	for _, m := range errorStatus {
		if errors.Is(err, m.err) {
			return presenter.Error(c, m.status, err.Error())
		}
	}
	c.Locals(logger.LocalError, err)
	return presenter.Error(c, http.StatusInternalServerError, fallback)
}
