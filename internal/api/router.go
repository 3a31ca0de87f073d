package api

import (
	echoprometheus "github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/heathcliff2012/MERN-ConnectLive/internal/api/handler"
	"github.com/heathcliff2012/MERN-ConnectLive/internal/api/metrics"
	"github.com/heathcliff2012/MERN-ConnectLive/internal/api/middleware"
	"github.com/heathcliff2012/MERN-ConnectLive/internal/core/ports"
	"github.com/heathcliff2012/MERN-ConnectLive/internal/core/service"
	"github.com/heathcliff2012/MERN-ConnectLive/internal/infrastructure/config"
	mongodb "github.com/heathcliff2012/MERN-ConnectLive/internal/infrastructure/db/mongo"
	redisdb "github.com/heathcliff2012/MERN-ConnectLive/internal/infrastructure/db/redis"
	"github.com/heathcliff2012/MERN-ConnectLive/internal/infrastructure/http/handlers"
	"github.com/heathcliff2012/MERN-ConnectLive/pkg/logger"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The side-channel adapters (email, image store, chat) are constructed in
// main because they carry external credentials.
func NewRouter(
	db *mongo.Database,
	rdb *redis.Client,
	cfg *config.Config,
	email ports.EmailSender,
	images ports.ImageStore,
	chat ports.ChatProvider,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(logger.Get())

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("connectlive"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	requestRepo := mongodb.NewFriendRequestRepository(db)
	postRepo := mongodb.NewPostRepository(db)
	commentRepo := mongodb.NewCommentRepository(db)
	pairLock := redisdb.NewPairLock(rdb)

	tokens := service.NewTokenIssuer(cfg.JWTSecret, 0)
	authService := service.NewAuthService(
		userRepo, tokens, metrics.InstrumentEmailSender(email), images, chat,
		cfg.AppURL, cfg.RequireVerifiedEmail, logger.Get(),
	)
	friendService := service.NewFriendService(userRepo, requestRepo, pairLock, logger.Get())
	postService := service.NewPostService(postRepo, commentRepo, userRepo, images, logger.Get())

	authHandler := handler.NewAuthHandler(authService, cfg.IsProduction())
	userHandler := handler.NewUserHandler(friendService)
	postHandler := handler.NewPostHandler(postService)
	chatHandler := handler.NewChatHandler(chat)
	requireAuth := middleware.Auth(tokens, userRepo)

	// --- Auth routes ---
	auth := e.Group("/auth")
	auth.POST("/signup", authHandler.Signup)
	auth.POST("/verify-email", authHandler.VerifyEmail)
	auth.POST("/login", authHandler.Login)
	auth.POST("/logout", authHandler.Logout)
	auth.POST("/forgot-password", authHandler.ForgotPassword)
	auth.POST("/reset-password/:token", authHandler.ResetPassword)
	auth.POST("/onboarding", authHandler.Onboarding, requireAuth)
	auth.GET("/me", authHandler.Me, requireAuth)

	// --- User routes ---
	users := e.Group("/users", requireAuth)
	users.GET("", userHandler.Recommended)
	users.GET("/friends", userHandler.Friends)
	users.GET("/search", userHandler.Search)
	users.POST("/friend-request/:id", userHandler.SendFriendRequest)
	users.PUT("/friend-request/:id/accept", userHandler.AcceptFriendRequest)
	users.PUT("/friend-request/:id/decline", userHandler.DeclineFriendRequest)
	users.GET("/friend-request", userHandler.FriendRequests)
	users.GET("/outgoing-friend-request", userHandler.OutgoingFriendRequests)

	// --- Post routes ---
	posts := e.Group("/posts", requireAuth)
	posts.POST("", postHandler.Create)
	posts.GET("/friend-posts", postHandler.FriendFeed)
	posts.GET("/explore-posts", postHandler.ExploreFeed)
	posts.GET("/user/:id", postHandler.UserProfile)
	posts.POST("/:id/like", postHandler.Like)
	posts.POST("/:id/comments", postHandler.AddComment)
	posts.GET("/:id/comments", postHandler.ListComments)
	posts.POST("/comments/:id/like", postHandler.LikeComment)
	posts.DELETE("/:id", postHandler.Delete)
	posts.DELETE("/:postId/comments/:commentId", postHandler.DeleteComment)

	// --- Chat routes ---
	e.GET("/chat/token", chatHandler.Token, requireAuth)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
