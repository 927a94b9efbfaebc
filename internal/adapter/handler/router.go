package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/johnquangdev/mom-ai/internal/infrastructure/http/middleware"
)

// Router holds all handlers
type Router struct {
	authMw        *middleware.AuthMiddleware
	auth          *Auth
	meeting       *Meeting
	transcription *Transcription
	integration   *Integration
	hook          *Hook
	admin         *Admin
	share         *Share
}

// NewRouter creates a new router with all handlers
func NewRouter(
	authMw *middleware.AuthMiddleware,
	auth *Auth,
	meeting *Meeting,
	transcription *Transcription,
	integration *Integration,
	hook *Hook,
	admin *Admin,
	share *Share,
) *Router {
	return &Router{
		authMw:        authMw,
		auth:          auth,
		meeting:       meeting,
		transcription: transcription,
		integration:   integration,
		hook:          hook,
		admin:         admin,
		share:         share,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	e.GET("/health", rt.healthCheck)
	e.GET("/share/mom/:shareId", rt.share.Page)

	api := e.Group("/api")
	api.POST("/auth/login", rt.auth.Login)
	// The hook authenticates with its own shared key, not a bearer token.
	api.POST("/hooks/meeting-context", rt.hook.MeetingContext)

	authed := api.Group("", rt.authMw.Authenticate)
	authed.GET("/auth/me", rt.auth.Me)

	rt.setupIntegrationRoutes(authed)
	rt.setupMeetingRoutes(authed)
	rt.setupAdminRoutes(authed)
}

func (rt *Router) setupIntegrationRoutes(g *echo.Group) {
	integrations := g.Group("/integrations")
	integrations.GET("/platforms", rt.integration.Platforms)
	integrations.GET("/:platform/events", rt.integration.Events)
	integrations.POST("/start-from-event", rt.integration.StartFromEvent)
}

func (rt *Router) setupMeetingRoutes(g *echo.Group) {
	meetings := g.Group("/meetings")
	meetings.POST("/start", rt.meeting.Start)
	meetings.GET("/:id", rt.meeting.Get)
	meetings.POST("/:id/end", rt.meeting.End)
	meetings.POST("/:id/notes", rt.meeting.AddNote)
	meetings.POST("/:id/presence", rt.meeting.RegisterPresence)
	meetings.GET("/:id/attendance", rt.meeting.Attendance)
	meetings.POST("/:id/insights", rt.meeting.RecomputeInsights)
	meetings.POST("/:id/share-mom", rt.meeting.CreateShare)
	meetings.GET("/:id/share-mom", rt.meeting.GetShare)
	meetings.POST("/:id/send-mom", rt.meeting.SendMom)
	meetings.POST("/:id/reminders", rt.meeting.QueueReminders)
	meetings.GET("/:id/versions", rt.meeting.ListVersions)
	meetings.POST("/:id/versions/diff", rt.meeting.DiffVersions)

	meetings.POST("/:id/transcription/start", rt.transcription.Start)
	meetings.POST("/:id/transcription/chunks", rt.transcription.AddChunk)
	meetings.POST("/:id/transcription/stop", rt.transcription.Stop)
	meetings.POST("/:id/transcription/simulate", rt.transcription.Simulate)
	meetings.GET("/:id/transcription", rt.transcription.Get)
	meetings.GET("/:id/transcription/export", rt.transcription.Export)
}

func (rt *Router) setupAdminRoutes(g *echo.Group) {
	admin := g.Group("/admin", rt.authMw.RequireAdmin)
	admin.GET("/analytics", rt.admin.Analytics)
	admin.GET("/audit", rt.admin.Audit)
	admin.GET("/users", rt.admin.ListUsers)
	admin.POST("/users", rt.admin.CreateUser)
	admin.GET("/jobs", rt.admin.ListJobs)
	admin.GET("/jobs/:id", rt.admin.GetJob)
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status": "ok",
	})
}
