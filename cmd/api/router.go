package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"fotoscavet-backend/internal/shared/middleware"
	"fotoscavet-backend/internal/shared/response"
	"fotoscavet-backend/pkg/container"
)

// ReadyMessage is returned for GET requests without a known action.
const ReadyMessage = "FotosCavet integration is ready."

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(c.Config.CORS.AllowedOrigin),
	)

	// Action endpoint, mounted at the root and at /exec
	dispatch := actionDispatcher(c)
	for _, path := range []string{"/", "/exec"} {
		router.GET(path, dispatch)
		router.POST(path, c.CardHandler.SaveCardFromBody)
	}

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))
	}

	return router
}

// ========================================
// ACTION DISPATCH
// ========================================

// actionDispatcher routes GET requests by the "action" query parameter.
func actionDispatcher(c *container.Container) gin.HandlerFunc {
	actions := map[string]gin.HandlerFunc{
		"login":           c.UserHandler.Login,
		"testUsers":       c.UserHandler.TestUsers,
		"getCards":        c.CardHandler.GetCards,
		"getCard":         c.CardHandler.GetCard,
		"saveCard":        c.CardHandler.SaveCardFromQuery,
		"unadoptCard":     c.CardHandler.UnadoptCard,
		"setupCardsSheet": c.CardHandler.SetupCards,
	}

	return func(ctx *gin.Context) {
		if handle, ok := actions[ctx.Query("action")]; ok {
			handle(ctx)
			return
		}
		response.Text(ctx, ReadyMessage)
	}
}

// ========================================
// HEALTH CHECK
// ========================================
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		services := appCtx.HealthCheck(ctx)

		status := "ok"
		statusCode := http.StatusOK
		if services["store"] != "ok" {
			status = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, gin.H{
			"status":    status,
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
			"services":  services,
		})
	}
}
