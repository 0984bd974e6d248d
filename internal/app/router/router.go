// Package router assembles the gin engine: middleware chain and route table.
package router

import (
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authhandler "restaurant_backend/internal/feature/auth/transport/handler"
	clienthandler "restaurant_backend/internal/feature/client/transport/handler"
	commandehandler "restaurant_backend/internal/feature/commande/transport/handler"
	menuhandler "restaurant_backend/internal/feature/menu/transport/handler"
	plathandler "restaurant_backend/internal/feature/plat/transport/handler"
	"restaurant_backend/internal/platform/authz"
	jwtmw "restaurant_backend/internal/platform/jwt"
	"restaurant_backend/internal/platform/metrics"
	"restaurant_backend/internal/shared/apperror"
	"restaurant_backend/internal/shared/ratelimiter"
)

// Handlers are the endpoint handlers mounted by NewRouter.
type Handlers struct {
	Auth      *authhandler.AuthHandler
	Clients   *clienthandler.ClientHandler
	Plats     *plathandler.PlatHandler
	Menus     *menuhandler.MenuHandler
	Commandes *commandehandler.CommandeHandler

	Health  gin.HandlerFunc
	Info    gin.HandlerFunc
	Contact gin.HandlerFunc
}

// Options configure the middleware chain. Metrics and AuthLimiter are optional.
type Options struct {
	Verifier    jwtmw.Verifier
	Policy      *authz.Policy
	Metrics     *metrics.Collector
	AuthLimiter ratelimiter.RateLimiterInterface
	CORSOrigins []string
}

// NewRouter builds the engine. Every request runs through, in order: the error
// envelope renderer, panic recovery, metrics, CORS, token authentication and
// the authorization policy.
func NewRouter(h Handlers, opts Options) *gin.Engine {
	r := gin.New()
	if gin.Mode() != gin.TestMode {
		r.Use(gin.Logger())
	}

	r.Use(apperror.Handler(), apperror.Recovery())
	if opts.Metrics != nil {
		r.Use(opts.Metrics.Middleware())
	}
	r.Use(cors.New(corsConfig(opts.CORSOrigins)))

	policy := opts.Policy
	if policy == nil {
		policy = authz.DefaultPolicy()
	}
	r.Use(jwtmw.Authenticate(opts.Verifier), policy.Enforce())

	// Public
	r.GET("/healthz", h.Health)
	r.HEAD("/healthz", h.Health)
	r.GET("/api/info", h.Info)
	r.GET("/api/contact", h.Contact)

	auth := r.Group("/api/auth")
	if opts.AuthLimiter != nil {
		auth.Use(ratelimiter.Middleware(opts.AuthLimiter))
	}
	{
		auth.POST("/register", h.Auth.Register)
		auth.POST("/login", h.Auth.Login)
	}

	// Guarded by the policy
	h.Clients.Register(r.Group("/api/clients"))
	h.Plats.Register(r.Group("/api/plats"))
	h.Menus.Register(r.Group("/api/menus"))
	h.Commandes.Register(r.Group("/api/commandes"))

	r.NoRoute(func(c *gin.Context) {
		_ = c.Error(&apperror.Error{Kind: apperror.KindNotFound, Message: "no handler for " + c.Request.Method + " " + c.Request.URL.Path})
	})

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "HEAD"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
