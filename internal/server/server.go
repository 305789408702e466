package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"gymdash/internal/activity"
	"gymdash/internal/auth"
	"gymdash/internal/checkin"
	"gymdash/internal/config"
	"gymdash/internal/dashboard"
	"gymdash/internal/gympackage"
	"gymdash/internal/jobs"
	"gymdash/internal/membership"
	"gymdash/internal/payment"
	"gymdash/internal/pt"
	"gymdash/internal/schedule"
	"gymdash/internal/user"

	"github.com/gin-gonic/gin"
)

// Stores are the loaded domain stores the API serves.
type Stores struct {
	Users       *user.Store
	Packages    *gympackage.Store
	Memberships *membership.Store
	Payments    *payment.Store
	PT          *pt.Store
	CheckIns    *checkin.Store
	Schedules   *schedule.Store
	Activity    *activity.Store
}

type Server struct {
	router  *gin.Engine
	http    *http.Server
	limiter *RateLimiter
	config  *config.Config
}

// New wires every handler. scheduler may be nil when no mail queue is
// configured.
func New(cfg *config.Config, st Stores, gate *auth.Gate, scheduler *jobs.Scheduler) *Server {
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery(), RequestLoggingMiddleware(), MetricsMiddleware(), corsMiddleware())

	authHandler := auth.NewHandler(gate, st.Users, cfg.JWTSecret)
	userHandler := user.NewHandler(st.Users, st.Activity)
	activityHandler := activity.NewHandler(st.Activity)
	packageHandler := gympackage.NewHandler(st.Packages, st.Activity)
	membershipHandler := membership.NewHandler(st.Memberships, st.Packages, st.Users, st.Activity)
	paymentHandler := payment.NewHandler(st.Payments, st.Users, st.Activity)
	ptHandler := pt.NewHandler(st.PT, st.Users, st.Activity)
	checkinHandler := checkin.NewHandler(st.CheckIns, st.Users, st.Activity)
	scheduleHandler := schedule.NewHandler(st.Schedules, st.Activity)
	dashboardHandler := dashboard.NewHandler(dashboard.NewService(st.Users, st.Payments, st.Memberships, st.CheckIns, st.Activity))

	limiter := NewRateLimiter(cfg.LoginRateRPS, cfg.LoginRateBurst, 3*time.Minute)

	router.GET("/health", Health)
	router.GET("/metrics", Metrics())

	public := router.Group("/auth")
	{
		public.POST("/login", limiter.Middleware(), authHandler.Login)
		public.POST("/refresh", authHandler.Refresh)
		public.GET("/guard", authHandler.Navigate)
	}

	authMiddleware := auth.AuthMiddleware(cfg.JWTSecret, gate)
	protected := router.Group("/")
	protected.Use(authMiddleware)
	{
		protected.POST("/auth/logout", authHandler.Logout)
		protected.GET("/me", authHandler.Me)
		protected.PATCH("/me", authHandler.UpdateMe)
		protected.POST("/me/password", authHandler.ChangePassword)

		protected.GET("/dashboard", dashboardHandler.GetOverview)
		protected.GET("/dashboard/stats", dashboardHandler.GetStats)

		protected.GET("/users", userHandler.ListUsers)
		protected.GET("/users/:id", userHandler.GetUser)
		protected.POST("/users", userHandler.CreateUser)
		protected.PATCH("/users/:id", userHandler.UpdateUser)
		protected.DELETE("/users/:id", userHandler.DeleteUser)
		protected.GET("/users/:id/membership", membershipHandler.GetActiveByMember)
		protected.GET("/users/:id/pt-subscription", ptHandler.GetActiveByMember)
		protected.GET("/users/:id/checkin-status", checkinHandler.CheckInStatus)

		protected.GET("/packages", packageHandler.ListPackages)
		protected.GET("/packages/:id", packageHandler.GetPackage)
		protected.POST("/packages", packageHandler.CreatePackage)
		protected.PATCH("/packages/:id", packageHandler.UpdatePackage)
		protected.DELETE("/packages/:id", packageHandler.DeletePackage)

		protected.GET("/memberships", membershipHandler.ListMemberships)
		protected.GET("/memberships/expiring", membershipHandler.ListExpiring)
		protected.GET("/memberships/:id", membershipHandler.GetMembership)
		protected.POST("/memberships", membershipHandler.CreateMembership)
		protected.PATCH("/memberships/:id", membershipHandler.UpdateMembership)
		protected.PATCH("/memberships/:id/status", membershipHandler.UpdateStatus)
		protected.DELETE("/memberships/:id", membershipHandler.DeleteMembership)

		protected.GET("/payments", paymentHandler.ListPayments)
		protected.GET("/payments/revenue", paymentHandler.GetRevenue)
		protected.GET("/payments/:id", paymentHandler.GetPayment)
		protected.POST("/payments", paymentHandler.CreatePayment)
		protected.PATCH("/payments/:id", paymentHandler.UpdatePayment)
		protected.DELETE("/payments/:id", paymentHandler.DeletePayment)

		protected.GET("/pt/packages", ptHandler.ListPackages)
		protected.GET("/pt/packages/:id", ptHandler.GetPackage)
		protected.POST("/pt/packages", ptHandler.CreatePackage)
		protected.PATCH("/pt/packages/:id", ptHandler.UpdatePackage)
		protected.DELETE("/pt/packages/:id", ptHandler.DeletePackage)
		protected.GET("/pt/subscriptions", ptHandler.ListSubscriptions)
		protected.GET("/pt/subscriptions/:id", ptHandler.GetSubscription)
		protected.POST("/pt/subscriptions", ptHandler.CreateSubscription)
		protected.PATCH("/pt/subscriptions/:id", ptHandler.UpdateSubscription)
		protected.POST("/pt/subscriptions/:id/sessions", ptHandler.AddSession)
		protected.PATCH("/pt/subscriptions/:id/status", ptHandler.UpdateStatus)
		protected.DELETE("/pt/subscriptions/:id", ptHandler.DeleteSubscription)

		protected.GET("/checkins", checkinHandler.ListCheckIns)
		protected.POST("/checkins", checkinHandler.CheckIn)
		protected.POST("/checkins/:id/checkout", checkinHandler.CheckOut)

		protected.GET("/classes", scheduleHandler.ListClasses)
		protected.GET("/classes/by-category", scheduleHandler.ClassesByCategory)
		protected.GET("/classes/:id", scheduleHandler.GetClass)
		protected.POST("/classes", scheduleHandler.CreateClass)
		protected.PATCH("/classes/:id", scheduleHandler.UpdateClass)
		protected.DELETE("/classes/:id", scheduleHandler.DeleteClass)
		protected.GET("/schedules", scheduleHandler.ListSchedules)
		protected.GET("/schedules/:id", scheduleHandler.GetSchedule)
		protected.POST("/schedules", scheduleHandler.CreateSchedule)
		protected.PATCH("/schedules/:id", scheduleHandler.UpdateSchedule)
		protected.DELETE("/schedules/:id", scheduleHandler.DeleteSchedule)

		protected.GET("/activity/recent", activityHandler.RecentLogs)
		protected.GET("/activity/today", activityHandler.TodayLogs)
	}

	adminMiddleware := auth.RequireRole(string(user.RoleAdmin))
	admin := router.Group("/admin")
	admin.Use(authMiddleware, adminMiddleware)
	{
		admin.POST("/users", userHandler.CreateAnyUser)
		admin.PATCH("/users/:id", userHandler.UpdateAnyUser)
		admin.DELETE("/users/:id", userHandler.DeleteAnyUser)
		admin.POST("/users/:id/reset-password", userHandler.ResetPassword)
		admin.POST("/users/:id/toggle-active", userHandler.ToggleActive)

		admin.GET("/activity", activityHandler.ListLogs)
		admin.DELETE("/activity", activityHandler.ClearLogs)

		admin.POST("/reminders/run", RunReminders(scheduler))
	}

	return &Server{
		router: router,
		http: &http.Server{
			Addr:              ":" + cfg.Port,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
		limiter: limiter,
		config:  cfg,
	}
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Start() error {
	err := s.http.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.limiter.Close()
	return s.http.Shutdown(ctx)
}
