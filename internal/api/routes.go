package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/", handler.Root)
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Get("/me", handler.AuthRequired, handler.Me)

	api.Get("/symptoms", handler.AuthRequired, handler.SymptomCatalog)

	triage := api.Group("/triage", handler.AuthRequired)
	triage.Post("", handler.SubmitTriage)
	triage.Post("/submit", handler.SubmitTriage)
	triage.Get("/history", handler.TriageHistory)
	triage.Get("/results/:id", handler.TriageResult)
}
