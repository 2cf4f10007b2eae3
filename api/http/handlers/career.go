package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/synapse-hq/synapse/pkg/career"
)

type CareerHandler struct {
	useCase career.UseCase
}

func NewCareerHandler(useCase career.UseCase) *CareerHandler {
	return &CareerHandler{useCase: useCase}
}

type careerPlanRequest struct {
	ProfileData json.RawMessage `json:"profile_data,omitempty"`
	QuizData    json.RawMessage `json:"quiz_data,omitempty"`
}

// Plan asks the ML service for a career plan. An empty body uses the stored profile.
// @Summary  Career plan
// @Tags     career
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    input body careerPlanRequest false "optional overrides"
// @Success  200 {object} map[string]any
// @Failure  502 {object} presenter.ErrorResponse
// @Failure  504 {object} presenter.ErrorResponse
// @Router   /career/plan [post]
func (h *CareerHandler) Plan(c *fiber.Ctx) error {
	uid, err := currentUser(c)
	if err != nil {
		return writeError(c, err, "")
	}
	var req careerPlanRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, errInvalidPayload, "")
		}
	}
	out, err := h.useCase.Plan(c.Context(), uid, career.PlanInput{ProfileData: req.ProfileData, QuizData: req.QuizData})
	return sendRaw(c, out, err, "failed to generate career plan")
}

type gapAnalysisRequest struct {
	UserSkills   []string `json:"user_skills"`
	DreamRole    string   `json:"dream_role"`
	DreamCompany string   `json:"dream_company"`
}

// GapAnalysis compares skills against a dream role. Missing user_skills
// defaults to the stored skills.
// @Summary  Gap analysis
// @Tags     career
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    input body gapAnalysisRequest true "target role"
// @Success  200 {object} map[string]any
// @Failure  400 {object} presenter.ErrorResponse
// @Failure  502 {object} presenter.ErrorResponse
// @Router   /career/gap-analysis [post]
func (h *CareerHandler) GapAnalysis(c *fiber.Ctx) error {
	uid, err := currentUser(c)
	if err != nil {
		return writeError(c, err, "")
	}
	var req gapAnalysisRequest
	if err := c.BodyParser(&req); err != nil {
		return writeError(c, errInvalidPayload, "")
	}
	out, err := h.useCase.GapAnalysis(c.Context(), uid, career.GapInput{
		UserSkills:   req.UserSkills,
		DreamRole:    req.DreamRole,
		DreamCompany: req.DreamCompany,
	})
	return sendRaw(c, out, err, "failed to run gap analysis")
}

// LegacyAPI is the older REST backend.
type LegacyAPI interface {
	Onboard(ctx context.Context, userID string, userData any) (json.RawMessage, error)
	Recommend(ctx context.Context, skills []string, projectDescription string) (json.RawMessage, error)
	Profile(ctx context.Context, userID string) (json.RawMessage, error)
}

type LegacyHandler struct {
	api LegacyAPI
}

func NewLegacyHandler(api LegacyAPI) *LegacyHandler {
	return &LegacyHandler{api: api}
}

type legacyOnboardRequest struct {
	UserData json.RawMessage `json:"user_data"`
}

// Onboard forwards the caller's data to the legacy backend.
// @Summary  Legacy onboard
// @Tags     legacy
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    input body legacyOnboardRequest true "user data"
// @Success  200 {object} map[string]any
// @Router   /legacy/onboard [post]
func (h *LegacyHandler) Onboard(c *fiber.Ctx) error {
	uid, err := currentUser(c)
	if err != nil {
		return writeError(c, err, "")
	}
	var req legacyOnboardRequest
	if err := c.BodyParser(&req); err != nil {
		return writeError(c, errInvalidPayload, "")
	}
	var userData any = req.UserData
	if len(req.UserData) == 0 {
		userData = map[string]any{}
	}
	out, err := h.api.Onboard(c.Context(), uid.String(), userData)
	return sendRaw(c, out, err, "legacy onboard failed")
}

type legacyRecommendRequest struct {
	Skills             []string `json:"skills"`
	ProjectDescription string   `json:"project_description"`
}

// Recommend forwards a recommendation request to the legacy backend.
// @Summary  Legacy recommend
// @Tags     legacy
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    input body legacyRecommendRequest true "skills and project"
// @Success  200 {object} map[string]any
// @Router   /legacy/recommend [post]
func (h *LegacyHandler) Recommend(c *fiber.Ctx) error {
	if _, err := currentUser(c); err != nil {
		return writeError(c, err, "")
	}
	var req legacyRecommendRequest
	if err := c.BodyParser(&req); err != nil {
		return writeError(c, errInvalidPayload, "")
	}
	out, err := h.api.Recommend(c.Context(), req.Skills, req.ProjectDescription)
	return sendRaw(c, out, err, "legacy recommend failed")
}

// Profile reads a profile from the legacy backend.
// @Summary  Legacy profile
// @Tags     legacy
// @Produce  json
// @Security BearerAuth
// @Param    userId path string true "user id"
// @Success  200 {object} map[string]any
// @Router   /legacy/profile/{userId} [get]
func (h *LegacyHandler) Profile(c *fiber.Ctx) error {
	if _, err := currentUser(c); err != nil {
		return writeError(c, err, "")
	}
	out, err := h.api.Profile(c.Context(), c.Params("userId"))
	return sendRaw(c, out, err, "legacy profile failed")
}

// sendRaw writes an upstream JSON document as-is.
func sendRaw(c *fiber.Ctx, out json.RawMessage, err error, fallback string) error {
	if err != nil {
		return writeError(c, err, fallback)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Status(http.StatusOK).Send(out)
}
