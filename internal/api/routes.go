package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Get("/setup-status", handler.SetupStatus)
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Get("/me", handler.AuthRequired, handler.CurrentAccount)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)

	intents := api.Group("/intents", handler.AuthRequired)
	intents.Get("", handler.ListIntents)
	intents.Post("", handler.CreateIntent)
	intents.Get("/:id", handler.GetIntent)
	intents.Patch("/:id", handler.UpdateIntent)
	intents.Delete("/:id", handler.DeleteIntent)
	intents.Post("/:id/checkin", handler.SubmitCheckIn)
	intents.Get("/:id/eligibility", handler.CheckInEligibility)
	intents.Post("/:id/hatch", handler.HatchIntent)
	intents.Get("/:id/nudge", handler.PreviewNudge)

	stats := api.Group("/stats", handler.AuthRequired)
	stats.Get("/overview", handler.GetStatsOverview)

	profile := api.Group("/profile", handler.AuthRequired)
	profile.Get("", handler.GetProfile)
	profile.Put("", handler.UpdateProfile)
}
