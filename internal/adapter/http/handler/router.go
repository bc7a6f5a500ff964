package handler

import (
	"fare-validator/internal/adapter/http/middleware"
	redisStore "fare-validator/internal/adapter/storage/redis"
	"fare-validator/internal/core/domain"
	"fare-validator/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	AuthSvc        ports.AuthService
	TicketingSvc   ports.TicketingService
	Catalog        *domain.Catalog
	TokenSvc       ports.TokenService
	ValidatorKeys  ports.ValidatorKeyring
	SigSvc         ports.SignatureService
	NonceStore     ports.NonceStore           // nil = every tap is refused
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	AuditSvc       ports.AuditService // nil = audit logging disabled
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(64 << 10))

	if deps.AuditSvc != nil {
		r.Use(middleware.AuditLog(deps.AuditSvc))
	}

	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	rules := middleware.DefaultRateLimitRules()
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	v1 := r.Group("/api/v1")

	// --- Public routes ---
	authHandler := NewAuthHandler(deps.AuthSvc)
	v1.POST("/auth/login", rl("auth_login"), authHandler.Login)

	tierHandler := NewTierHandler(deps.Catalog)
	v1.GET("/tiers", rl("tiers"), tierHandler.List)

	// --- Validator routes (HMAC) ---
	validatorAuth := middleware.ValidatorAuth(deps.ValidatorKeys, deps.SigSvc, deps.NonceStore, deps.Logger)
	tapHandler := NewTapHandler(deps.TicketingSvc)
	v1.POST("/taps", validatorAuth, rl("taps"), tapHandler.Tap)

	// --- Operator routes (JWT) ---
	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)
	cardHandler := NewCardHandler(deps.TicketingSvc)

	cards := v1.Group("/cards", jwtAuth)
	{
		cards.POST("", rl("cards_issue"), cardHandler.Issue)
		cards.GET("/:cardID", rl("cards_read"), cardHandler.Get)
		cards.POST("/:cardID/credit", rl("cards_credit"), cardHandler.Credit)
		cards.GET("/:cardID/history", rl("cards_read"), cardHandler.History)
	}

	return r
}
