package routes

import (
	"github.com/antigravity/teampulse-api/internal/handlers"
	"github.com/antigravity/teampulse-api/internal/middleware"
	"github.com/gofiber/fiber/v2"
)

func Setup(app *fiber.App) {
	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handlers.Register)
	auth.Post("/login", handlers.Login)
	auth.Post("/claim", handlers.ClaimMember)

	// Template catalog and submission links are public: the tokenized
	// check-in link is opened without a session.
	api.Get("/templates", handlers.GetTemplates)
	api.Get("/checkin-links/:token", handlers.ResolveCheckInLink)
	api.Get("/badges", handlers.GetBadgeCatalog)

	protected := api.Group("/", middleware.Protected())

	protected.Get("/me", handlers.GetMe)
	protected.Put("/me", handlers.UpdateProfile)

	teams := protected.Group("/teams")
	teams.Get("/", handlers.GetTeams)
	teams.Post("/", handlers.CreateTeam)
	teams.Get("/:id", handlers.GetTeam)
	teams.Put("/:id", handlers.UpdateTeam)
	teams.Delete("/:id", handlers.DeleteTeam)

	teams.Get("/:id/members", handlers.GetMembers)
	teams.Post("/:id/members", handlers.AddMember)
	teams.Put("/:id/members/:memberId/role", handlers.ChangeMemberRole)
	teams.Delete("/:id/members/:memberId", handlers.RemoveMember)

	teams.Get("/:id/checkins", handlers.GetTeamCheckIns)
	teams.Get("/:id/analytics", handlers.GetTeamAnalytics)
	teams.Get("/:id/summary", handlers.GetTeamSummary)
	teams.Get("/:id/risks", handlers.GetTeamRisks)
	teams.Get("/:id/patterns", handlers.GetTeamPatterns)
	teams.Get("/:id/kudos", handlers.GetTeamKudos)
	teams.Get("/:id/export", handlers.ExportTeam)

	teams.Get("/:id/action-items", handlers.GetActionItems)
	teams.Post("/:id/action-items", handlers.CreateActionItem)
	teams.Put("/:id/action-items/:itemId", handlers.UpdateActionItem)
	teams.Delete("/:id/action-items/:itemId", handlers.DeleteActionItem)

	protected.Post("/checkins", handlers.SubmitCheckIn)
	protected.Post("/checkins/:id/action-items/extract", handlers.ExtractActionItems)

	protected.Post("/kudos", handlers.GiveKudos)

	members := protected.Group("/members")
	members.Put("/:id", handlers.UpdateMember)
	members.Get("/:id/kudos", handlers.GetMemberKudos)
	members.Get("/:id/badges", handlers.GetMemberBadges)
	members.Post("/:id/badges/evaluate", handlers.EvaluateMemberBadges)
	members.Post("/:id/badges", handlers.GrantBadge)
	members.Get("/:id/highlights", handlers.GetMemberHighlights)

	notifications := protected.Group("/notifications")
	notifications.Get("/", handlers.GetNotifications)
	notifications.Put("/:id/read", handlers.MarkNotificationRead)
	notifications.Post("/read-all", handlers.MarkAllRead)
	notifications.Delete("/:id", handlers.DeleteNotification)
	notifications.Delete("/", handlers.ClearNotifications)

	protected.Get("/reminder-settings", handlers.GetReminderSettings)
	protected.Put("/reminder-settings", handlers.UpdateReminderSettings)
	protected.Post("/reminders/send", handlers.SendReminder)

	// Profile photo upload
	protected.Post("/upload", handlers.UploadPhoto)
	app.Static("/uploads", "./uploads")
}
