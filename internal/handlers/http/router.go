package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/rafabene/yamdb-backend/docs"
	"github.com/rafabene/yamdb-backend/internal/domain/policies"
	"github.com/rafabene/yamdb-backend/internal/domain/ports"
	"github.com/rafabene/yamdb-backend/internal/handlers/dto"
	"github.com/rafabene/yamdb-backend/internal/handlers/middleware"
	"github.com/rafabene/yamdb-backend/internal/infrastructure/i18n"
)

// RouterConfig reúne os parâmetros de montagem das rotas
type RouterConfig struct {
	Env            string
	BaseURL        string
	AllowedOrigins string
	RateLimit      int
	RateWindow     time.Duration
	Swagger        bool
}

// Handlers reúne as dependências do router
type Handlers struct {
	Auth          *AuthHandler
	Users         *UserHandler
	Catalog       *CatalogHandler
	Titles        *TitleHandler
	Reviews       *ReviewHandler
	Comments      *CommentHandler
	Authenticator *middleware.Authenticator
	I18n          *i18n.Service
	RateCounter   middleware.Counter
	Logger        ports.Logger
}

// NewRouter monta o engine gin com middlewares globais e as rotas /api/v1
func NewRouter(cfg RouterConfig, h Handlers) *gin.Engine {
	dto.RegisterJSONTagNames()

	router := gin.New()
	router.HandleMethodNotAllowed = true

	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(h.Logger))
	router.Use(middleware.BaseURL(cfg.BaseURL))
	router.Use(middleware.Language(h.I18n))
	router.Use(middleware.CORS(cfg.AllowedOrigins))

	router.NoRoute(func(c *gin.Context) {
		dto.AbortWithProblem(c, dto.NotFoundErrorResponseI18n(c, "error.not_found.title"))
	})

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"env":    cfg.Env,
		})
	})

	if cfg.Swagger {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	v1 := router.Group("/api/v1")
	v1.Use(h.Authenticator.Authenticate())
	{
		auth := v1.Group("/auth")
		auth.Use(middleware.RateLimit(h.RateCounter, cfg.RateLimit, cfg.RateWindow, h.Logger))
		{
			auth.POST("/signup", h.Auth.Signup)
			auth.POST("/token", h.Auth.Token)
		}

		me := v1.Group("/users/me", middleware.RequireUser())
		{
			me.GET("", h.Users.GetMe)
			me.PATCH("", h.Users.UpdateMe)
		}

		users := v1.Group("/users", middleware.Permit(policies.AdminOnly))
		{
			users.GET("", h.Users.ListUsers)
			users.POST("", h.Users.CreateUser)
			users.GET("/:username", h.Users.GetUser)
			users.PATCH("/:username", h.Users.UpdateUser)
			users.DELETE("/:username", h.Users.DeleteUser)
		}

		adminWrite := middleware.Permit(policies.ReadOpenWriteAdmin)

		categories := v1.Group("/categories", adminWrite)
		{
			categories.GET("", h.Catalog.ListCategories)
			categories.POST("", h.Catalog.CreateCategory)
			categories.DELETE("/:slug", h.Catalog.DeleteCategory)
		}

		genres := v1.Group("/genres", adminWrite)
		{
			genres.GET("", h.Catalog.ListGenres)
			genres.POST("", h.Catalog.CreateGenre)
			genres.DELETE("/:slug", h.Catalog.DeleteGenre)
		}

		titles := v1.Group("/titles")
		{
			titles.GET("", adminWrite, h.Titles.ListTitles)
			titles.POST("", adminWrite, h.Titles.CreateTitle)
			titles.GET("/:title_id", adminWrite, h.Titles.GetTitle)
			titles.PATCH("/:title_id", adminWrite, h.Titles.UpdateTitle)
			titles.DELETE("/:title_id", adminWrite, h.Titles.DeleteTitle)
		}

		authorWrite := middleware.Permit(policies.ReadOpenWriteAuthor)

		reviews := titles.Group("/:title_id/reviews", authorWrite)
		{
			reviews.GET("", h.Reviews.ListReviews)
			reviews.POST("", h.Reviews.CreateReview)
			reviews.GET("/:review_id", h.Reviews.GetReview)
			reviews.PATCH("/:review_id", h.Reviews.UpdateReview)
			reviews.DELETE("/:review_id", h.Reviews.DeleteReview)
		}

		comments := reviews.Group("/:review_id/comments")
		{
			comments.GET("", h.Comments.ListComments)
			comments.POST("", h.Comments.CreateComment)
			comments.GET("/:comment_id", h.Comments.GetComment)
			comments.PATCH("/:comment_id", h.Comments.UpdateComment)
			comments.DELETE("/:comment_id", h.Comments.DeleteComment)
		}
	}

	return router
}
