package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"pawhaven/internal/handler/api"
	"pawhaven/internal/handler/middleware"
	"pawhaven/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	adoptionHandler *api.AdoptionHandler,
	rescueHandler *api.RescueHandler,
	notificationHandler *api.NotificationHandler,
	activityHandler *api.ActivityHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, adoptionHandler, rescueHandler, notificationHandler, activityHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	adoptionHandler *api.AdoptionHandler,
	rescueHandler *api.RescueHandler,
	notificationHandler *api.NotificationHandler,
	activityHandler *api.ActivityHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth())
	{
		adoptions := apiGroup.Group("/adoptions")
		{
			addRoutes(adoptions, []route{
				{Method: http.MethodPost, Path: "", Handler: adoptionHandler.CreateAdoption},
				{Method: http.MethodGet, Path: "", Handler: adoptionHandler.GetUserAdoptions},
				{Method: http.MethodGet, Path: "/:id", Handler: adoptionHandler.GetAdoption},
				{Method: http.MethodPost, Path: "/:id/confirmation", Handler: adoptionHandler.SendConfirmation},
				{Method: http.MethodPost, Path: "/:id/confirm", Handler: adoptionHandler.ConfirmAdoption},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: adoptionHandler.CancelAdoption},
				{Method: http.MethodPost, Path: "/:id/complete", Handler: adoptionHandler.CompleteAdoption},
			})
		}

		rescues := apiGroup.Group("/rescues")
		{
			addRoutes(rescues, []route{
				{Method: http.MethodPost, Path: "", Handler: rescueHandler.CreateRescue},
				{Method: http.MethodGet, Path: "", Handler: rescueHandler.ListRescues},
				{Method: http.MethodGet, Path: "/mine", Handler: rescueHandler.GetUserRescues},
				{Method: http.MethodGet, Path: "/:id", Handler: rescueHandler.GetRescue},
				{Method: http.MethodPost, Path: "/:id/participants", Handler: rescueHandler.AddParticipant},
				{Method: http.MethodDelete, Path: "/:id/participants/:userId", Handler: rescueHandler.RemoveParticipant},
				{Method: http.MethodPost, Path: "/:id/reports", Handler: rescueHandler.AddReport},
				{Method: http.MethodDelete, Path: "/:id/reports/:reportId", Handler: rescueHandler.RemoveReport},
				{Method: http.MethodPatch, Path: "/:id/reports/:reportId", Handler: rescueHandler.UpdateReportProgress},
				{Method: http.MethodPost, Path: "/:id/start", Handler: rescueHandler.StartRescue},
				{Method: http.MethodPost, Path: "/:id/complete", Handler: rescueHandler.CompleteRescue},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: rescueHandler.CancelRescue},
			})
		}

		reports := apiGroup.Group("/reports")
		{
			addRoutes(reports, []route{
				{Method: http.MethodPost, Path: "/:reportId/claim", Handler: rescueHandler.ClaimReport},
			})
		}

		notifications := apiGroup.Group("/notifications")
		{
			addRoutes(notifications, []route{
				{Method: http.MethodGet, Path: "", Handler: notificationHandler.GetUserNotifications},
				{Method: http.MethodPost, Path: "/:id/read", Handler: notificationHandler.MarkRead},
				{Method: http.MethodPost, Path: "/read-all", Handler: notificationHandler.MarkAllRead},
			})
		}

		activity := apiGroup.Group("/activity")
		{
			addRoutes(activity, []route{
				{Method: http.MethodGet, Path: "", Handler: activityHandler.GetRecentActivity},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(group *gin.RouterGroup, routes []route) {
	for _, r := range routes {
		handlers := append(r.Mw, r.Handler)
		group.Handle(r.Method, r.Path, handlers...)
	}
}
