package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/yoockh/chatrelay/internal/api/handlers"
	"github.com/yoockh/chatrelay/internal/api/middleware"
)

const ServiceName = "chatrelay"

// Version is set at build time with -ldflags.
var Version = "dev"

type Deps struct {
	Logger      *logrus.Logger
	Interaction *handlers.InteractionHandler
	// Completion is nil when the relay endpoint is switched off.
	Completion *handlers.CompletionHandler
}

func NewRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(d.Logger), middleware.Metrics(), middleware.CORS())
	RegisterRoutes(r, d)
	return r
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"service": ServiceName, "version": Version})
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.POST("/log", d.Interaction.Log)

	if d.Completion != nil {
		r.POST("/azure-openai", d.Completion.Complete)
	}
}
