package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/synapse-hq/synapse/api/http/presenter"
	"github.com/synapse-hq/synapse/pkg/skill"
	"github.com/synapse-hq/synapse/pkg/trajectory"
)

type SkillsHandler struct {
	useCase skill.UseCase
}

func NewSkillsHandler(useCase skill.UseCase) *SkillsHandler {
	return &SkillsHandler{useCase: useCase}
}

// List returns the caller's skills.
// @Summary  List skills
// @Tags     skills
// @Produce  json
// @Security BearerAuth
// @Success  200 {array} skill.Skill
// @Router   /skills [get]
func (h *SkillsHandler) List(c *fiber.Ctx) error {
	uid, err := currentUser(c)
	if err != nil {
		return writeError(c, err, "")
	}
	items, err := h.useCase.List(c.Context(), uid)
	if err != nil {
		return writeError(c, err, "failed to list skills")
	}
	return presenter.JSON(c, http.StatusOK, items)
}

// Generate replaces the caller's skills with a fresh analysis.
// @Summary  Generate skills
// @Tags     skills
// @Produce  json
// @Security BearerAuth
// @Success  200 {array} skill.Skill
// @Router   /skills/generate [post]
func (h *SkillsHandler) Generate(c *fiber.Ctx) error {
	uid, err := currentUser(c)
	if err != nil {
		return writeError(c, err, "")
	}
	items, err := h.useCase.Generate(c.Context(), uid)
	if err != nil {
		return writeError(c, err, "failed to generate skills")
	}
	return presenter.JSON(c, http.StatusOK, items)
}

type TrajectoriesHandler struct {
	useCase trajectory.UseCase
}

func NewTrajectoriesHandler(useCase trajectory.UseCase) *TrajectoriesHandler {
	return &TrajectoriesHandler{useCase: useCase}
}

// List returns the caller's career trajectories.
// @Summary  List trajectories
// @Tags     trajectories
// @Produce  json
// @Security BearerAuth
// @Success  200 {array} trajectory.Trajectory
// @Router   /trajectories [get]
func (h *TrajectoriesHandler) List(c *fiber.Ctx) error {
	uid, err := currentUser(c)
	if err != nil {
		return writeError(c, err, "")
	}
	items, err := h.useCase.List(c.Context(), uid)
	if err != nil {
		return writeError(c, err, "failed to list trajectories")
	}
	return presenter.JSON(c, http.StatusOK, items)
}

// Generate replaces the caller's trajectories.
// @Summary  Generate trajectories
// @Tags     trajectories
// @Produce  json
// @Security BearerAuth
// @Success  200 {array} trajectory.Trajectory
// @Router   /trajectories/generate [post]
func (h *TrajectoriesHandler) Generate(c *fiber.Ctx) error {
	uid, err := currentUser(c)
	if err != nil {
		return writeError(c, err, "")
	}
	items, err := h.useCase.Generate(c.Context(), uid)
	if err != nil {
		return writeError(c, err, "failed to generate trajectories")
	}
	return presenter.JSON(c, http.StatusOK, items)
}
