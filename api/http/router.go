package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/synapse-hq/synapse/api/http/handlers"
)

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	Auth         *handlers.AuthHandler
	Health       *handlers.HealthHandler
	Onboarding   *handlers.OnboardingHandler
	Linkedin     *handlers.LinkedinHandler
	Profile      *handlers.ProfileHandler
	Assessment   *handlers.AssessmentHandler
	Skills       *handlers.SkillsHandler
	Trajectories *handlers.TrajectoriesHandler
	Projects     *handlers.ProjectsHandler
	Portfolio    *handlers.PortfolioHandler
	Dashboard    *handlers.DashboardHandler
	Career       *handlers.CareerHandler
	Legacy       *handlers.LegacyHandler
}

// Register wires all HTTP routes onto given Fiber app.
func Register(app *fiber.App, h Handlers, authMW fiber.Handler) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", h.Health.Health)
	v1.Get("/ready", h.Health.Ready)

	a := v1.Group("/auth")
	a.Post("/register", h.Auth.Register)
	a.Post("/login", h.Auth.Login)

	// Public endpoints
	v1.Post("/linkedin/validate", h.Linkedin.Validate)
	v1.Get("/users/:id/portfolio", h.Portfolio.Public)

	v1.Get("/me", authMW, h.Auth.Me)
	v1.Patch("/me", authMW, h.Auth.UpdateMe)

	ob := v1.Group("/onboarding", authMW)
	ob.Get("/", h.Onboarding.Status)
	ob.Post("/steps/:step", h.Onboarding.CompleteStep)

	pr := v1.Group("/profile", authMW)
	pr.Get("/", h.Profile.Get)
	pr.Put("/linkedin", h.Profile.SaveLinkedin)
	pr.Post("/resume", h.Profile.UploadResume)
	pr.Post("/video", h.Profile.UploadVideo)
	pr.Get("/files/:kind", h.Profile.Download)

	as := v1.Group("/assessment", authMW)
	as.Get("/", h.Assessment.Get)
	as.Put("/", h.Assessment.Save)

	sk := v1.Group("/skills", authMW)
	sk.Get("/", h.Skills.List)
	sk.Post("/generate", h.Skills.Generate)

	tr := v1.Group("/trajectories", authMW)
	tr.Get("/", h.Trajectories.List)
	tr.Post("/generate", h.Trajectories.Generate)

	pj := v1.Group("/projects", authMW)
	pj.Get("/", h.Projects.List)
	pj.Post("/", h.Projects.Create)
	pj.Get("/:id", h.Projects.Get)
	pj.Put("/:id/content", h.Projects.UpdateContent)
	pj.Post("/:id/submit", h.Projects.Submit)
	pj.Get("/:id/feedback", h.Projects.Feedback)

	pf := v1.Group("/portfolio", authMW)
	pf.Get("/", h.Portfolio.List)
	pf.Post("/", h.Portfolio.Add)
	pf.Delete("/:id", h.Portfolio.Delete)

	v1.Get("/dashboard", authMW, h.Dashboard.Get)

	cr := v1.Group("/career", authMW)
	cr.Post("/plan", h.Career.Plan)
	cr.Post("/gap-analysis", h.Career.GapAnalysis)

	lg := v1.Group("/legacy", authMW)
	lg.Post("/onboard", h.Legacy.Onboard)
	lg.Post("/recommend", h.Legacy.Recommend)
	lg.Get("/profile/:userId", h.Legacy.Profile)
}
