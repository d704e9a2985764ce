package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"pta-storefront/internal/domain/user"
	"pta-storefront/internal/handler/api"
	"pta-storefront/internal/handler/middleware"
	"pta-storefront/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth        *api.AuthHandler
	Event       *api.EventHandler
	Cart        *api.CartHandler
	Checkout    *api.CheckoutHandler
	Webhook     *api.WebhookHandler
	Transaction *api.AdminTransactionHandler
}

func NewHandlers(
	auth *api.AuthHandler,
	event *api.EventHandler,
	cart *api.CartHandler,
	checkout *api.CheckoutHandler,
	webhook *api.WebhookHandler,
	transaction *api.AdminTransactionHandler,
) Handlers {
	return Handlers{
		Auth:        auth,
		Event:       event,
		Cart:        cart,
		Checkout:    checkout,
		Webhook:     webhook,
		Transaction: transaction,
	}
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, cfg, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		addRoutes(apiGroup.Group("/events"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Event.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Event.Get},
		})

		// signature-authenticated; no visitor session
		addRoutes(apiGroup.Group("/webhooks"), []route{
			{Method: http.MethodPost, Path: "/stripe", Handler: h.Webhook.Stripe},
		})

		shop := apiGroup.Group("")
		shop.Use(middleware.VisitorSession(cfg))
		{
			addRoutes(shop.Group("/cart"), []route{
				{Method: http.MethodGet, Path: "", Handler: h.Cart.Get},
				{Method: http.MethodDelete, Path: "", Handler: h.Cart.Clear},
				{Method: http.MethodPost, Path: "/items", Handler: h.Cart.AddItem},
				{Method: http.MethodPatch, Path: "/items", Handler: h.Cart.UpdateItems},
				{Method: http.MethodDelete, Path: "/items", Handler: h.Cart.RemoveItems},
			})
			addRoutes(shop.Group("/checkout"), []route{
				{Method: http.MethodPost, Path: "", Handler: h.Checkout.Start},
				{Method: http.MethodGet, Path: "/sessions/:id", Handler: h.Checkout.Confirm},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth())
		{
			operator := []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(user.RoleOperator)}
			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "/transactions", Handler: h.Transaction.List, Mw: operator},
				{Method: http.MethodGet, Path: "/transactions/:id", Handler: h.Transaction.Get, Mw: operator},
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

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
