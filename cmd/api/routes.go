package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

func (app *application) routes() http.Handler {
	r := gin.New()
	r.Use(gin.Recovery())

	// simple logger middleware that uses zap
	r.Use(func(c *gin.Context) {
		start := time.Now()
		c.Next()
		app.Logger.Sugar().Infow("http", "method", c.Request.Method, "path", c.Request.URL.Path, "status", c.Writer.Status(), "duration", time.Since(start))
	})

	// CORS middleware; the kiosk frontend is the only allowed origin
	frontend := app.Config.CORS.FrontendURL
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", frontend)
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	r.GET("/", app.Handler.Health)

	api := r.Group("/api")
	{
		visitor := api.Group("/visitor")
		{
			visitor.POST("/checkin-step", app.Handler.CheckinStep)
			visitor.POST("/checkin-finalize", app.Handler.CheckinFinalize)
			visitor.POST("/checkout/:visit_id", app.Handler.Checkout)
		}

		api.POST("/ocr/upload-id", app.Handler.UploadID)

		speech := api.Group("/speech")
		{
			speech.POST("/stt", app.Handler.SpeechToText)
			speech.POST("/tts", app.Handler.TextToSpeech)
		}

		api.POST("/notifications/notify-host", app.Handler.NotifyHost)

		admin := api.Group("/admin")
		{
			admin.GET("/visitors", app.Handler.ListVisitors)
			admin.GET("/visitlogs", app.Handler.ListVisitLogs)
			admin.GET("/hosts", app.Handler.ListHosts)
			admin.GET("/users", app.Handler.ListAdminUsers)
		}

		api.POST("/validation/validate-field", app.Handler.ValidateField)
		api.GET("/docs/websocket-usage", app.Handler.WebsocketUsage)
	}

	return r
}
