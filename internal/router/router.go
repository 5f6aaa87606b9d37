package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/AsanTolepov/softwash/internal/config"
	"github.com/AsanTolepov/softwash/internal/handler"
	"github.com/AsanTolepov/softwash/internal/middleware"
	"github.com/AsanTolepov/softwash/internal/model"
	"github.com/AsanTolepov/softwash/internal/service"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Cache ← Remote store
func New(cfg *config.Config, svc *service.Service, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())

	// ── Handlers ─────────────────────────────────────────────────────────────
	ttl := time.Duration(cfg.JWTExpirationHours) * time.Hour
	authH := handler.NewAuthHandler(svc.Auth(), cfg.JWTSecret, ttl)
	tenantsH := handler.NewTenantHandler(svc)
	ordersH := handler.NewOrderHandler(svc)
	staffH := handler.NewStaffHandler(svc)
	expensesH := handler.NewExpenseHandler(svc)
	settingsH := handler.NewSettingsHandler(svc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	// Auth (public). Login carries no rate limit: credentials have no
	// lockout semantics, and a limiter would change observable behavior.
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", authH.Login)
	}

	// Walk-in order intake — public, tenant named in the URL.
	r.POST("/v1/public/:tenantId/orders", middleware.RateLimiter(60, time.Minute), ordersH.Intake)

	// Protected routes
	sessionMW := middleware.SessionAuth(cfg.JWTSecret)
	v1 := r.Group("/v1", sessionMW)
	{
		v1.POST("/auth/logout", authH.Logout)
		v1.GET("/auth/me", authH.Me)

		// Tenant administration — superadmin only
		tenants := v1.Group("/tenants", middleware.RequireTier(model.TierSuperadmin))
		{
			tenants.GET("", tenantsH.List)
			tenants.GET("/:id", tenantsH.Get)
			tenants.POST("", tenantsH.Create)
			tenants.PATCH("/:id", tenantsH.Update)
			tenants.DELETE("/:id", tenantsH.Delete)
		}

		// Orders — staff gated on the orders capability
		orders := v1.Group("/orders", middleware.RequireCapability(model.CapViewOrders))
		{
			orders.GET("", ordersH.List)
			orders.GET("/:id", ordersH.Get)
			orders.PATCH("/:id/status", ordersH.UpdateStatus)
			orders.PATCH("/:id/payment", ordersH.UpdatePayment)
			orders.DELETE("/:id", ordersH.Delete)
		}

		// Staff management — staff gated on the staff capability
		staff := v1.Group("/staff", middleware.RequireCapability(model.CapViewStaff))
		{
			staff.GET("", staffH.List)
			staff.POST("", staffH.Create)
			staff.PATCH("/:id", staffH.Update)
			staff.PUT("/:id/attendance", staffH.Attendance)
			staff.DELETE("/:id", staffH.Delete)
		}

		// Expenses — staff gated on the expenses capability
		expenses := v1.Group("/expenses", middleware.RequireCapability(model.CapViewExpenses))
		{
			expenses.GET("", expensesH.List)
			expenses.POST("", expensesH.Create)
			expenses.PATCH("/:id", expensesH.Update)
			expenses.DELETE("/:id", expensesH.Delete)
		}

		// Preferences — any session may read, staff gated on settings to write
		v1.GET("/settings", settingsH.Get)
		v1.PATCH("/settings", middleware.RequireCapability(model.CapViewSettings), settingsH.Update)
	}

	return r
}
