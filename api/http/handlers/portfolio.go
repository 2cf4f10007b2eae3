package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/synapse-hq/synapse/api/http/presenter"
	"github.com/synapse-hq/synapse/pkg/portfolio"
)

type PortfolioHandler struct {
	useCase portfolio.UseCase
}

func NewPortfolioHandler(useCase portfolio.UseCase) *PortfolioHandler {
	return &PortfolioHandler{useCase: useCase}
}

// List returns all of the caller's portfolio entries.
// @Summary  List portfolio
// @Tags     portfolio
// @Produce  json
// @Security BearerAuth
// @Success  200 {array} portfolio.Entry
// @Router   /portfolio [get]
func (h *PortfolioHandler) List(c *fiber.Ctx) error {
	uid, err := currentUser(c)
	if err != nil {
		return writeError(c, err, "")
	}
	items, err := h.useCase.List(c.Context(), uid)
	if err != nil {
		return writeError(c, err, "failed to list portfolio")
	}
	return presenter.JSON(c, http.StatusOK, items)
}

// Public returns the public entries of any user; no authentication.
// @Summary Public portfolio
// @Tags    portfolio
// @Produce json
// @Param   id path string true "user id"
// @Success 200 {array} portfolio.Entry
// @Router  /users/{id}/portfolio [get]
func (h *PortfolioHandler) Public(c *fiber.Ctx) error {
	uid, err := uuidParam(c, "id")
	if err != nil {
		return writeError(c, err, "")
	}
	items, err := h.useCase.ListPublic(c.Context(), uid)
	if err != nil {
		return writeError(c, err, "failed to list portfolio")
	}
	return presenter.JSON(c, http.StatusOK, items)
}

type addPortfolioRequest struct {
	ProjectID     uuid.UUID `json:"projectId"`
	Title         string    `json:"title"`
	Role          string    `json:"role"`
	Description   string    `json:"description"`
	CoverImageURL string    `json:"coverImageUrl"`
	IsPublic      bool      `json:"isPublic"`
}

// Add publishes a completed project to the portfolio.
// @Summary  Add portfolio entry
// @Tags     portfolio
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    input body addPortfolioRequest true "entry"
// @Success  201 {object} portfolio.Entry
// @Failure  404 {object} presenter.ErrorResponse
// @Failure  409 {object} presenter.ErrorResponse
// @Router   /portfolio [post]
func (h *PortfolioHandler) Add(c *fiber.Ctx) error {
	uid, err := currentUser(c)
	if err != nil {
		return writeError(c, err, "")
	}
	var req addPortfolioRequest
	if err := c.BodyParser(&req); err != nil {
		return writeError(c, errInvalidPayload, "")
	}
	e, err := h.useCase.Add(c.Context(), uid, portfolio.AddInput{
		ProjectID:     req.ProjectID,
		Title:         req.Title,
		Role:          req.Role,
		Description:   req.Description,
		CoverImageURL: req.CoverImageURL,
		IsPublic:      req.IsPublic,
	})
	if err != nil {
		return writeError(c, err, "failed to add portfolio entry")
	}
	return presenter.JSON(c, http.StatusCreated, e)
}

// Delete removes a portfolio entry.
// @Summary  Delete portfolio entry
// @Tags     portfolio
// @Security BearerAuth
// @Param    id path string true "entry id"
// @Success  204
// @Failure  404 {object} presenter.ErrorResponse
// @Router   /portfolio/{id} [delete]
func (h *PortfolioHandler) Delete(c *fiber.Ctx) error {
	uid, err := currentUser(c)
	if err != nil {
		return writeError(c, err, "")
	}
	id, err := uuidParam(c, "id")
	if err != nil {
		return writeError(c, err, "")
	}
	if err := h.useCase.Delete(c.Context(), uid, id); err != nil {
		return writeError(c, err, "failed to delete portfolio entry")
	}
	return c.SendStatus(http.StatusNoContent)
}
