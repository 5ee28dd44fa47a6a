package router

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"paytrack/internal/interfaces/api/handler"
	"paytrack/internal/pkg/logger"
)

// Config holds the dependencies for the router.
type Config struct {
	UserHandler         *handler.UserHandler
	ReminderHandler     *handler.ReminderHandler
	AssetHandler        *handler.AssetHandler
	TransactionHandler  *handler.TransactionHandler
	GoalHandler         *handler.GoalHandler
	ReportHandler       *handler.ReportHandler
	NotificationHandler *handler.NotificationHandler
	Logger              logger.Logger
}

// NewRouter creates and configures a new Echo router.
func NewRouter(cfg *Config) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(middleware.RequestID())
	// Use custom logger that integrates with our logger interface
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogHost:      true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			cfg.Logger.Info(fmt.Sprintf("REQUEST: method=%s, uri=%s, status=%d, latency=%s, req_id=%s",
				v.Method, v.URI, v.Status, v.Latency, v.RequestID,
			))
			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Routes
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	api := e.Group("/api")

	users := api.Group("/users")
	users.POST("", cfg.UserHandler.Register)
	users.GET("/:id", cfg.UserHandler.Get)
	users.PUT("/:id/notify-time", cfg.UserHandler.UpdateNotifyTime)
	users.POST("/line-link", cfg.UserHandler.LinkLine)
	users.DELETE("/:id", cfg.UserHandler.Delete)

	reminders := api.Group("/reminders")
	reminders.POST("", cfg.ReminderHandler.Create)
	reminders.GET("", cfg.ReminderHandler.List)
	reminders.PUT("/:id", cfg.ReminderHandler.Update)
	reminders.POST("/:id/toggle", cfg.ReminderHandler.Toggle)
	reminders.DELETE("/:id", cfg.ReminderHandler.Delete)

	assets := api.Group("/assets")
	assets.POST("", cfg.AssetHandler.Create)
	assets.GET("", cfg.AssetHandler.List)
	assets.PUT("/:id", cfg.AssetHandler.Update)
	assets.DELETE("/:id", cfg.AssetHandler.Delete)

	transactions := api.Group("/transactions")
	transactions.POST("", cfg.TransactionHandler.Create)
	transactions.GET("", cfg.TransactionHandler.ListMonth)
	transactions.DELETE("/:id", cfg.TransactionHandler.Delete)

	goals := api.Group("/goals")
	goals.POST("", cfg.GoalHandler.Create)
	goals.GET("", cfg.GoalHandler.List)
	goals.POST("/:id/contribute", cfg.GoalHandler.Contribute)
	goals.DELETE("/:id", cfg.GoalHandler.Delete)

	api.GET("/reports/monthly", cfg.ReportHandler.Monthly)

	notifications := api.Group("/notifications")
	notifications.GET("/permissions", cfg.NotificationHandler.Permissions)
	notifications.GET("/scheduled", cfg.NotificationHandler.ListScheduled)
	notifications.POST("/test", cfg.NotificationHandler.SendTest)
	notifications.DELETE("/scheduled", cfg.NotificationHandler.CancelAll)

	cfg.Logger.Info("Router initialized with routes.")
	return e
}
