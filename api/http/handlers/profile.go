package handlers

import (
	"context"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/synapse-hq/synapse/api/http/presenter"
	"github.com/synapse-hq/synapse/pkg/document"
	"github.com/synapse-hq/synapse/pkg/profile"
)

type ProfileHandler struct {
	useCase profile.UseCase
}

func NewProfileHandler(useCase profile.UseCase) *ProfileHandler {
	return &ProfileHandler{useCase: useCase}
}

// Get returns the caller's profile; empty when nothing was stored yet.
// @Summary  Get profile
// @Tags     profile
// @Produce  json
// @Security BearerAuth
// @Success  200 {object} profile.Profile
// @Router   /profile [get]
func (h *ProfileHandler) Get(c *fiber.Ctx) error {
	uid, err := currentUser(c)
	if err != nil {
		return writeError(c, err, "")
	}
	p, err := h.useCase.Get(c.Context(), uid)
	if err != nil {
		return writeError(c, err, "failed to load profile")
	}
	return presenter.JSON(c, http.StatusOK, p)
}

// SaveLinkedin stores LinkedIn data and completes the linkedin step.
// @Summary  Save LinkedIn data
// @Tags     profile
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    input body profile.LinkedinData true "linkedin data"
// @Success  200 {object} profile.Profile
// @Failure  400 {object} presenter.ErrorResponse
// @Router   /profile/linkedin [put]
func (h *ProfileHandler) SaveLinkedin(c *fiber.Ctx) error {
	uid, err := currentUser(c)
	if err != nil {
		return writeError(c, err, "")
	}
	var req profile.LinkedinData
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	p, err := h.useCase.SaveLinkedin(c.Context(), uid, req)
	if err != nil {
		return writeError(c, err, "failed to save linkedin data")
	}
	return presenter.JSON(c, http.StatusOK, p)
}

// UploadResume stores a PDF/DOCX resume and extracts its text.
// @Summary  Upload resume
// @Tags     profile
// @Accept   multipart/form-data
// @Produce  json
// @Security BearerAuth
// @Param    file formData file true "resume (pdf or docx, up to 15MB)"
// @Success  201 {object} profile.Upload
// @Failure  400 {object} presenter.ErrorResponse
// @Failure  413 {object} presenter.ErrorResponse
// @Router   /profile/resume [post]
func (h *ProfileHandler) UploadResume(c *fiber.Ctx) error {
	return h.upload(c, document.KindResume, h.useCase.UploadResume)
}

// UploadVideo stores the intro video.
// @Summary  Upload video
// @Tags     profile
// @Accept   multipart/form-data
// @Produce  json
// @Security BearerAuth
// @Param    file formData file true "video (mp4, webm or mov, up to 100MB)"
// @Success  201 {object} profile.Upload
// @Failure  400 {object} presenter.ErrorResponse
// @Failure  413 {object} presenter.ErrorResponse
// @Router   /profile/video [post]
func (h *ProfileHandler) UploadVideo(c *fiber.Ctx) error {
	return h.upload(c, document.KindVideo, h.useCase.UploadVideo)
}

type uploadFunc func(ctx context.Context, userID uuid.UUID, in profile.UploadInput) (profile.Upload, error)

func (h *ProfileHandler) upload(c *fiber.Ctx, kind document.Kind, save uploadFunc) error {
	uid, err := currentUser(c)
	if err != nil {
		return writeError(c, err, "")
	}
	in, err := readUpload(c, kind)
	if err != nil {
		return writeError(c, err, "failed to read file")
	}
	up, err := save(c.Context(), uid, in)
	if err != nil {
		return writeError(c, err, "failed to store "+string(kind))
	}
	return presenter.JSON(c, http.StatusCreated, up)
}

// Download streams the caller's stored resume or video.
// @Summary  Download uploaded file
// @Tags     profile
// @Produce  octet-stream
// @Security BearerAuth
// @Param    kind path string true "resume | video"
// @Success  200 {file} file
// @Failure  404 {object} presenter.ErrorResponse
// @Router   /profile/files/{kind} [get]
func (h *ProfileHandler) Download(c *fiber.Ctx) error {
	uid, err := currentUser(c)
	if err != nil {
		return writeError(c, err, "")
	}
	kind := document.Kind(c.Params("kind"))
	if kind != document.KindResume && kind != document.KindVideo {
		return presenter.Error(c, http.StatusBadRequest, "kind must be resume or video")
	}
	up, err := h.useCase.File(c.Context(), uid, kind)
	if err != nil {
		return writeError(c, err, "failed to load file")
	}
	return c.Download(up.StorageURI, up.Filename)
}
