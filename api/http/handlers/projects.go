package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/synapse-hq/synapse/api/http/presenter"
	"github.com/synapse-hq/synapse/pkg/project"
)

type ProjectsHandler struct {
	useCase project.UseCase
}

func NewProjectsHandler(useCase project.UseCase) *ProjectsHandler {
	return &ProjectsHandler{useCase: useCase}
}

// List returns the caller's projects.
// @Summary  List projects
// @Tags     projects
// @Produce  json
// @Security BearerAuth
// @Success  200 {array} project.Project
// @Router   /projects [get]
func (h *ProjectsHandler) List(c *fiber.Ctx) error {
	uid, err := currentUser(c)
	if err != nil {
		return writeError(c, err, "")
	}
	items, err := h.useCase.List(c.Context(), uid)
	if err != nil {
		return writeError(c, err, "failed to list projects")
	}
	return presenter.JSON(c, http.StatusOK, items)
}

type createProjectRequest struct {
	TrajectoryID uuid.UUID `json:"trajectoryId"`
	Title        string    `json:"title"`
	Brief        string    `json:"brief"`
	Role         string    `json:"role"`
}

// Create starts a micro-internship project for one of the caller's trajectories.
// @Summary  Create project
// @Tags     projects
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    input body createProjectRequest true "project"
// @Success  201 {object} project.Project
// @Failure  400 {object} presenter.ErrorResponse
// @Failure  404 {object} presenter.ErrorResponse
// @Router   /projects [post]
func (h *ProjectsHandler) Create(c *fiber.Ctx) error {
	uid, err := currentUser(c)
	if err != nil {
		return writeError(c, err, "")
	}
	var req createProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return writeError(c, errInvalidPayload, "")
	}
	p, err := h.useCase.Create(c.Context(), uid, project.CreateInput{
		TrajectoryID: req.TrajectoryID,
		Title:        req.Title,
		Brief:        req.Brief,
		Role:         req.Role,
	})
	if err != nil {
		return writeError(c, err, "failed to create project")
	}
	return presenter.JSON(c, http.StatusCreated, p)
}

// Get returns one project.
// @Summary  Get project
// @Tags     projects
// @Produce  json
// @Security BearerAuth
// @Param    id path string true "project id"
// @Success  200 {object} project.Project
// @Failure  404 {object} presenter.ErrorResponse
// @Router   /projects/{id} [get]
func (h *ProjectsHandler) Get(c *fiber.Ctx) error {
	uid, err := currentUser(c)
	if err != nil {
		return writeError(c, err, "")
	}
	id, err := uuidParam(c, "id")
	if err != nil {
		return writeError(c, err, "")
	}
	p, err := h.useCase.Get(c.Context(), uid, id)
	if err != nil {
		return writeError(c, err, "failed to load project")
	}
	return presenter.JSON(c, http.StatusOK, p)
}

type updateContentRequest struct {
	Content string `json:"content"`
}

// UpdateContent saves the work in progress.
// @Summary  Save project work
// @Tags     projects
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    id    path string true "project id"
// @Param    input body updateContentRequest true "work content"
// @Success  200 {object} project.Project
// @Failure  409 {object} presenter.ErrorResponse
// @Router   /projects/{id}/content [put]
func (h *ProjectsHandler) UpdateContent(c *fiber.Ctx) error {
	uid, err := currentUser(c)
	if err != nil {
		return writeError(c, err, "")
	}
	id, err := uuidParam(c, "id")
	if err != nil {
		return writeError(c, err, "")
	}
	var req updateContentRequest
	if err := c.BodyParser(&req); err != nil {
		return writeError(c, errInvalidPayload, "")
	}
	p, err := h.useCase.UpdateContent(c.Context(), uid, id, req.Content)
	if err != nil {
		return writeError(c, err, "failed to save project")
	}
	return presenter.JSON(c, http.StatusOK, p)
}

// Submit hands the project in and returns the mentor feedback.
// @Summary  Submit project
// @Tags     projects
// @Produce  json
// @Security BearerAuth
// @Param    id path string true "project id"
// @Success  200 {object} project.Feedback
// @Failure  409 {object} presenter.ErrorResponse
// @Router   /projects/{id}/submit [post]
func (h *ProjectsHandler) Submit(c *fiber.Ctx) error {
	uid, err := currentUser(c)
	if err != nil {
		return writeError(c, err, "")
	}
	id, err := uuidParam(c, "id")
	if err != nil {
		return writeError(c, err, "")
	}
	fb, err := h.useCase.Submit(c.Context(), uid, id)
	if err != nil {
		return writeError(c, err, "failed to submit project")
	}
	return presenter.JSON(c, http.StatusOK, fb)
}

// Feedback returns the mentor feedback of a submitted project.
// @Summary  Project feedback
// @Tags     projects
// @Produce  json
// @Security BearerAuth
// @Param    id path string true "project id"
// @Success  200 {object} project.Feedback
// @Failure  404 {object} presenter.ErrorResponse
// @Router   /projects/{id}/feedback [get]
func (h *ProjectsHandler) Feedback(c *fiber.Ctx) error {
	uid, err := currentUser(c)
	if err != nil {
		return writeError(c, err, "")
	}
	id, err := uuidParam(c, "id")
	if err != nil {
		return writeError(c, err, "")
	}
	fb, err := h.useCase.Feedback(c.Context(), uid, id)
	if err != nil {
		return writeError(c, err, "failed to load feedback")
	}
	return presenter.JSON(c, http.StatusOK, fb)
}
