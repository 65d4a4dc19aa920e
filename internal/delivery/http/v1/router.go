package v1

import (
	"net/http"

	"go-user-directory/config"
	"go-user-directory/internal/delivery/http/middleware"
	"go-user-directory/internal/delivery/http/response"
	"go-user-directory/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	DirectoryUC domain.DirectoryUsecase
	EditorUC    domain.EditorUsecase
	Config      *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())
	if deps.Config.MetricsEnabled {
		r.Use(middleware.Metrics())
		r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Form metadata consumed by the frontend selects
	v1.GET("/meta/experience-options", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "Experience options", domain.ExperienceOptions())
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	NewUserHandler(v1, deps.DirectoryUC)
	NewSessionHandler(v1, deps.EditorUC)

	return r
}
