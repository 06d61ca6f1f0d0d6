package router

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/khadamat/backend/internal/handlers"
	"github.com/khadamat/backend/internal/middleware"
	"github.com/khadamat/backend/internal/service"
	"github.com/khadamat/backend/internal/token"
	"go.uber.org/zap"
)

type Handlers struct {
	Auth    *handlers.AuthHandler
	Profile *handlers.ProfileHandler
	Catalog *handlers.CatalogHandler
	Orders  *handlers.OrderHandler
}

func New(h Handlers, tokens *token.HSProvider, sessions service.SessionStore, devMode bool, log *zap.Logger) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authed := middleware.AuthRequired(tokens, sessions, log)

	api := r.Group("/api")
	{
		api.POST("/auth/signup", h.Auth.SignUp)
		api.POST("/auth/signin", h.Auth.SignIn)
		api.POST("/auth/signout", authed, h.Auth.SignOut)

		api.GET("/services", h.Catalog.List)
		api.GET("/services/calculate_cost", h.Catalog.CalculateCost)
		api.GET("/services/:id", h.Catalog.Get)

		profile := api.Group("/profile", authed)
		{
			profile.GET("", h.Profile.Get)
			profile.PATCH("/update", h.Profile.Update)
			profile.POST("/change-password", h.Profile.ChangePassword)
		}

		orders := api.Group("/orders", authed)
		{
			orders.GET("", h.Orders.List)
			orders.POST("/checkout", h.Orders.Checkout)
			orders.GET("/:id", h.Orders.Get)
			orders.GET("/:id/track", h.Orders.Track)
			orders.PUT("/:id/status", h.Orders.UpdateStatus)
		}

		if devMode {
			// Never routed outside dev mode.
			api.GET("/debug/users", h.Auth.DebugUsers)
		}
	}

	return r
}
