package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/synapse-hq/synapse/api/http/presenter"
	"github.com/synapse-hq/synapse/pkg/auth"
	"github.com/synapse-hq/synapse/pkg/career"
	"github.com/synapse-hq/synapse/pkg/careerml"
	"github.com/synapse-hq/synapse/pkg/document"
	"github.com/synapse-hq/synapse/pkg/linkedin"
	"github.com/synapse-hq/synapse/pkg/onboarding"
	"github.com/synapse-hq/synapse/pkg/portfolio"
	"github.com/synapse-hq/synapse/pkg/profile"
	"github.com/synapse-hq/synapse/pkg/project"
	"github.com/synapse-hq/synapse/pkg/security/jwt"
	"github.com/synapse-hq/synapse/pkg/storage/files"
)

var testUser = uuid.MustParse("7b0c2f0e-4f7e-4d0e-9c8a-0a4a7e1d2b11")

// asUser stands in for the JWT middleware.
func asUser(c *fiber.Ctx) error {
	c.Locals(jwt.LocalUserID, testUser.String())
	return c.Next()
}

func do(t *testing.T, app *fiber.App, method, path string, body any) (int, map[string]any) {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out map[string]any
	_ = json.Unmarshal(raw, &out)
	return resp.StatusCode, out
}

type fakeAuth struct {
	users map[string]auth.User
}

func (f *fakeAuth) Register(_ context.Context, email, _ string) (auth.AuthResult, error) {
	if _, ok := f.users[email]; ok {
		return auth.AuthResult{}, auth.ErrUserAlreadyExists
	}
	u := auth.User{ID: testUser, Email: email, Role: auth.RoleUser}
	f.users[email] = u
	return auth.AuthResult{User: u, Token: "tok"}, nil
}

func (f *fakeAuth) Login(_ context.Context, email, password string) (auth.AuthResult, error) {
	u, ok := f.users[email]
	if !ok || password != "secret" {
		return auth.AuthResult{}, auth.ErrInvalidCredentials
	}
	return auth.AuthResult{User: u, Token: "tok"}, nil
}

func (f *fakeAuth) Me(_ context.Context, id uuid.UUID) (auth.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return auth.User{}, auth.ErrNotFound
}

func (f *fakeAuth) SetName(ctx context.Context, id uuid.UUID, name string) (auth.User, error) {
	if name == "" {
		return auth.User{}, auth.ErrInvalidName
	}
	u, err := f.Me(ctx, id)
	u.Name = name
	return u, err
}

func TestAuthFlow(t *testing.T) {
	h := NewAuthHandler(&fakeAuth{users: map[string]auth.User{}})
	app := fiber.New()
	app.Post("/register", h.Register)
	app.Post("/login", h.Login)
	app.Get("/me", asUser, h.Me)
	app.Get("/anon", h.Me)
	app.Patch("/me", asUser, h.UpdateMe)

	status, body := do(t, app, http.MethodPost, "/register", credentialsRequest{Email: "ada@example.com", Password: "secret"})
	assert.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "tok", body["token"])

	status, _ = do(t, app, http.MethodPost, "/register", credentialsRequest{Email: "ada@example.com", Password: "secret"})
	assert.Equal(t, http.StatusConflict, status)

	status, _ = do(t, app, http.MethodPost, "/register", credentialsRequest{Email: " "})
	assert.Equal(t, http.StatusBadRequest, status)

	status, body = do(t, app, http.MethodPost, "/login", credentialsRequest{Email: "ada@example.com", Password: "wrong"})
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "invalid credentials", body["message"])

	status, body = do(t, app, http.MethodGet, "/me", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ada@example.com", body["email"])

	status, _ = do(t, app, http.MethodGet, "/anon", nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	status, body = do(t, app, http.MethodPatch, "/me", updateMeRequest{Name: "Ada"})
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Ada", body["name"])

	status, _ = do(t, app, http.MethodPatch, "/me", updateMeRequest{})
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestWriteErrorMapping(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("wrapped: %w", project.ErrInvalidTransition), http.StatusConflict},
		{project.ErrNotFound, http.StatusNotFound},
		{portfolio.ErrProjectNotCompleted, http.StatusConflict},
		{onboarding.ErrOnboardingIncomplete, http.StatusConflict},
		{document.ErrTooLarge, http.StatusRequestEntityTooLarge},
		{careerml.ErrTimeout, http.StatusGatewayTimeout},
		{&careerml.APIError{StatusCode: 500, Message: "model offline"}, http.StatusBadGateway},
		{career.ErrDreamRoleRequired, http.StatusBadRequest},
		{errors.New("pq: connection reset"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.err.Error(), func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error { return writeError(c, tc.err, "internal") })
			status, body := do(t, app, http.MethodGet, "/", nil)
			assert.Equal(t, tc.want, status)
			if tc.want == http.StatusInternalServerError {
				assert.Equal(t, "internal", body["message"])
			}
		})
	}
}

type fakeOnboarding struct{ flags auth.Flags }

func (f *fakeOnboarding) Status(context.Context, uuid.UUID) (onboarding.Status, error) {
	return onboarding.StatusOf(f.flags), nil
}

func (f *fakeOnboarding) CompleteStep(_ context.Context, _ uuid.UUID, step onboarding.Step) (onboarding.Status, error) {
	if step == onboarding.StepCompleted && !onboarding.StatusOf(f.flags).CanAccessDashboard {
		return onboarding.StatusOf(f.flags), onboarding.ErrOnboardingIncomplete
	}
	return onboarding.StatusOf(f.flags), nil
}

func TestOnboardingHandler(t *testing.T) {
	h := NewOnboardingHandler(&fakeOnboarding{})
	app := fiber.New()
	app.Get("/onboarding", asUser, h.Status)
	app.Post("/onboarding/steps/:step", asUser, h.CompleteStep)

	status, body := do(t, app, http.MethodGet, "/onboarding", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "linkedin", body["nextStep"])
	assert.Equal(t, false, body["canAccessDashboard"])

	status, _ = do(t, app, http.MethodPost, "/onboarding/steps/bogus", nil)
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = do(t, app, http.MethodPost, "/onboarding/steps/completed", nil)
	assert.Equal(t, http.StatusConflict, status)
}

type fakeValidator struct{}

func (fakeValidator) Validate(_ context.Context, raw string) (linkedin.Result, error) {
	if err := linkedin.CheckShape(raw); err != nil {
		return linkedin.Result{Reason: err.Error()}, nil
	}
	return linkedin.Result{Valid: true, Name: "Jane Doe"}, nil
}

func TestLinkedinValidate(t *testing.T) {
	app := fiber.New()
	app.Post("/validate", NewLinkedinHandler(fakeValidator{}).Validate)

	status, body := do(t, app, http.MethodPost, "/validate", validateLinkedinRequest{URL: "https://www.linkedin.com/in/jane"})
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["valid"])
	assert.Equal(t, "Jane Doe", body["name"])

	status, body = do(t, app, http.MethodPost, "/validate", validateLinkedinRequest{URL: "nope"})
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, false, body["valid"])
	assert.Equal(t, linkedin.ReasonInvalidURL, body["reason"])
}

type fakeProfile struct {
	profile.UseCase
	uploads []profile.UploadInput
}

func (f *fakeProfile) UploadResume(_ context.Context, userID uuid.UUID, in profile.UploadInput) (profile.Upload, error) {
	f.uploads = append(f.uploads, in)
	return profile.Upload{ID: uuid.New(), OwnerID: userID, Kind: document.KindResume, Filename: in.Filename, Size: int64(len(in.Data))}, nil
}

func multipartRequest(t *testing.T, path, filename string, data []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if filename != "" {
		fw, err := mw.CreateFormFile("file", filename)
		require.NoError(t, err)
		_, err = fw.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestUploadResume(t *testing.T) {
	fp := &fakeProfile{}
	app := fiber.New()
	app.Post("/profile/resume", asUser, NewProfileHandler(fp).UploadResume)

	resp, err := app.Test(multipartRequest(t, "/profile/resume", "cv.pdf", []byte("%PDF-1.4")))
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	require.Len(t, fp.uploads, 1)
	assert.Equal(t, "cv.pdf", fp.uploads[0].Filename)

	resp, err = app.Test(multipartRequest(t, "/profile/resume", "cv.txt", []byte("hello")))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, err = app.Test(multipartRequest(t, "/profile/resume", "", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Len(t, fp.uploads, 1)
}

// untouchedRepo fails the test if an upload gets past text extraction.
type untouchedRepo struct {
	profile.Repository
	t *testing.T
}

func (r untouchedRepo) AttachUpload(context.Context, profile.Upload, string) error {
	r.t.Fatal("unreadable resume reached storage")
	return nil
}

type noFlags struct{}

func (noFlags) SetFlag(context.Context, uuid.UUID, auth.Flag) error { return nil }

func TestUploadUnreadableResume(t *testing.T) {
	svc := profile.NewService(untouchedRepo{t: t}, files.NewLocalStore(t.TempDir()), &fakeOnboarding{}, noFlags{}, zap.NewNop())
	app := fiber.New()
	app.Post("/profile/resume", asUser, NewProfileHandler(svc).UploadResume)

	for _, name := range []string{"cv.pdf", "cv.docx"} {
		t.Run(name, func(t *testing.T) {
			resp, err := app.Test(multipartRequest(t, "/profile/resume", name, []byte("definitely not a document")))
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

			var body presenter.ErrorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Contains(t, body.Message, document.ErrUnreadable.Error())
		})
	}
}

type fakeProjects struct {
	project.UseCase
	submitted map[uuid.UUID]bool
}

func (f *fakeProjects) Submit(_ context.Context, _ uuid.UUID, id uuid.UUID) (project.Feedback, error) {
	if f.submitted[id] {
		return project.Feedback{}, fmt.Errorf("%w: project is completed", project.ErrInvalidTransition)
	}
	f.submitted[id] = true
	return project.Feedback{ProjectID: id, OverallScore: 87}, nil
}

func TestSubmitProjectTwice(t *testing.T) {
	app := fiber.New()
	app.Post("/projects/:id/submit", asUser, NewProjectsHandler(&fakeProjects{submitted: map[uuid.UUID]bool{}}).Submit)
	id := uuid.New()

	status, body := do(t, app, http.MethodPost, "/projects/"+id.String()+"/submit", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 87, body["overallScore"])

	status, _ = do(t, app, http.MethodPost, "/projects/"+id.String()+"/submit", nil)
	assert.Equal(t, http.StatusConflict, status)

	status, body = do(t, app, http.MethodPost, "/projects/not-a-uuid/submit", nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, body["message"], "invalid id")
}

type fakePortfolio struct {
	portfolio.UseCase
	publicFor uuid.UUID
}

func (f *fakePortfolio) ListPublic(_ context.Context, userID uuid.UUID) ([]portfolio.Entry, error) {
	f.publicFor = userID
	return []portfolio.Entry{}, nil
}

func TestPublicPortfolioNeedsNoAuth(t *testing.T) {
	fp := &fakePortfolio{}
	app := fiber.New()
	app.Get("/users/:id/portfolio", NewPortfolioHandler(fp).Public)

	owner := uuid.New()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/users/"+owner.String()+"/portfolio", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, owner, fp.publicFor)
}

type fakeCareer struct {
	gapErr error
	gapIn  career.GapInput
}

func (f *fakeCareer) Plan(context.Context, uuid.UUID, career.PlanInput) (json.RawMessage, error) {
	return json.RawMessage(`{"steps":["ship a mod"]}`), nil
}

func (f *fakeCareer) GapAnalysis(_ context.Context, _ uuid.UUID, in career.GapInput) (json.RawMessage, error) {
	f.gapIn = in
	return json.RawMessage(`{"gaps":[]}`), f.gapErr
}

func TestCareerHandler(t *testing.T) {
	fc := &fakeCareer{}
	h := NewCareerHandler(fc)
	app := fiber.New()
	app.Post("/plan", asUser, h.Plan)
	app.Post("/gap", asUser, h.GapAnalysis)

	status, body := do(t, app, http.MethodPost, "/plan", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, []any{"ship a mod"}, body["steps"])

	status, _ = do(t, app, http.MethodPost, "/gap", gapAnalysisRequest{DreamRole: "Producer"})
	assert.Equal(t, http.StatusOK, status)
	assert.Nil(t, fc.gapIn.UserSkills)
	assert.Equal(t, "Producer", fc.gapIn.DreamRole)

	fc.gapErr = &careerml.APIError{StatusCode: 422, Message: "unknown role"}
	status, body = do(t, app, http.MethodPost, "/gap", gapAnalysisRequest{DreamRole: "Wizard"})
	assert.Equal(t, http.StatusBadGateway, status)
	assert.Equal(t, "unknown role", body["message"])

	fc.gapErr = careerml.ErrTimeout
	status, _ = do(t, app, http.MethodPost, "/gap", gapAnalysisRequest{DreamRole: "Producer"})
	assert.Equal(t, http.StatusGatewayTimeout, status)
}

type fakeLegacy struct{ onboardedAs string }

func (f *fakeLegacy) Onboard(_ context.Context, userID string, _ any) (json.RawMessage, error) {
	f.onboardedAs = userID
	return json.RawMessage(`{"ok":true}`), nil
}

func (f *fakeLegacy) Recommend(context.Context, []string, string) (json.RawMessage, error) {
	return nil, &careerml.APIError{StatusCode: 400, Message: "API error: 400"}
}

func (f *fakeLegacy) Profile(_ context.Context, userID string) (json.RawMessage, error) {
	return json.RawMessage(`{"user_id":"` + userID + `"}`), nil
}

func TestLegacyHandler(t *testing.T) {
	fl := &fakeLegacy{}
	h := NewLegacyHandler(fl)
	app := fiber.New()
	app.Post("/onboard", asUser, h.Onboard)
	app.Post("/recommend", asUser, h.Recommend)
	app.Get("/profile/:userId", asUser, h.Profile)

	status, body := do(t, app, http.MethodPost, "/onboard", map[string]any{"user_data": map[string]any{"name": "Ada"}})
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, testUser.String(), fl.onboardedAs)

	status, body = do(t, app, http.MethodPost, "/recommend", legacyRecommendRequest{Skills: []string{"go"}})
	assert.Equal(t, http.StatusBadGateway, status)
	assert.Equal(t, "API error: 400", body["message"])

	status, body = do(t, app, http.MethodGet, "/profile/u42", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "u42", body["user_id"])
}
