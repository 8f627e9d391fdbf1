package http

import (
	"fmt"
	stdhttp "net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/roams-app/roams-server/internal/config"
	"github.com/roams-app/roams-server/internal/core"
	"github.com/roams-app/roams-server/internal/guide"
	"github.com/roams-app/roams-server/internal/store"
)

// NewServer builds the HTTP server: REST API plus the realtime endpoint.
func NewServer(hub *core.Hub, st store.CommentStore, gen *guide.Client, cfg config.Config, logger *zerolog.Logger) *stdhttp.Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(LoggerMiddleware(logger), gin.Recovery())

	router.GET("/health", healthHandler)
	router.GET("/ws", gin.WrapH(NewWSHandler(hub, logger)))

	commentHandlers := NewCommentHandlers(st, logger)
	router.GET("/api/comments/:place", commentHandlers.ListComments)

	guideHandlers := NewGuideHandlers(gen, logger)
	api := router.Group("/api/guide")
	{
		api.POST("/country", guideHandlers.CountryGuide)
		api.POST("/travel-info", guideHandlers.TravelInfo)
		api.POST("/itinerary", guideHandlers.Itinerary)
		api.POST("/nearby", guideHandlers.Nearby)
	}

	return &stdhttp.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}
}

func healthHandler(c *gin.Context) {
	_, _ = fmt.Fprint(c.Writer, "ok")
}
