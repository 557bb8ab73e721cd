package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Babismam/gym-frontend/internal/auth"
	"github.com/Babismam/gym-frontend/internal/booking"
	"github.com/Babismam/gym-frontend/internal/config"
	"github.com/Babismam/gym-frontend/internal/gymapi"
	"github.com/Babismam/gym-frontend/internal/notify"
)

type Server struct {
	router  *gin.Engine
	http    *http.Server
	config  *config.Config
	manager *booking.Manager
}

func New(cfg *config.Config, apiClient *gymapi.Client, notifyService *notify.Service) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())
	router.Use(RateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst))

	manager := booking.NewManager(
		func(session auth.Session) booking.API {
			return apiClient.Authenticated(session.Token)
		},
		notifyService,
		booking.AlwaysConfirm,
	)

	authMiddleware := auth.AuthMiddleware(cfg.JWTSecret)

	memberRoutes := router.Group("/")
	memberRoutes.Use(authMiddleware, auth.RequireRole(auth.RoleMember))
	{
		memberRoutes.GET("/schedule/weekly", WeeklySchedule(manager))
		memberRoutes.POST("/bookings", BookClass(manager))
		memberRoutes.DELETE("/bookings", CancelBooking(manager))
		memberRoutes.GET("/attendance", AttendanceHistory(apiClient))
		memberRoutes.GET("/notifications", Notifications(notifyService))
		memberRoutes.POST("/logout", Logout(manager))
	}

	trainerRoutes := router.Group("/")
	trainerRoutes.Use(authMiddleware, auth.RequireRole(auth.RoleTrainer))
	{
		trainerRoutes.GET("/my-schedule", TrainerSchedule(apiClient))
	}

	router.GET("/health", Health)
	router.GET("/metrics", Metrics())

	return &Server{
		router:  router,
		config:  cfg,
		manager: manager,
	}
}

func (s *Server) Start(port string) error {
	s.http = &http.Server{
		Addr:    ":" + port,
		Handler: s.router,
	}
	return s.http.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

// Router is exposed for handler tests.
func (s *Server) Router() http.Handler {
	return s.router
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
